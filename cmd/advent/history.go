package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/fentz26/advent/internal/models"
	"github.com/fentz26/advent/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	RunE:  runHistory,
}

var (
	historyDay   int
	historyLimit int
)

func init() {
	historyCmd.Flags().IntVarP(&historyDay, "day", "d", 0, "Only show runs of this day")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs")
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := store.New(cfg.ResolvedDBPath())
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer s.Close()

	runs, err := s.ListRuns(models.RunFilter{Day: historyDay, Limit: historyLimit})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDAY\tPART\tSTATUS\tANSWER\tINPUT\tWHEN")
	for _, run := range runs {
		hash := run.InputHash
		if len(hash) > 12 {
			hash = hash[:12]
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			truncateID(run.ID), run.Day, run.Part, run.Status,
			truncate(run.Answer, 32), hash, humanize.Time(run.StartedAt))
	}
	return w.Flush()
}

func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
