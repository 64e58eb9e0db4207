package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered days",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tTITLE\tINPUT")
	for _, s := range reg.List() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.Day(), s.Title(), cfg.InputPath(s.Day()))
	}
	return w.Flush()
}
