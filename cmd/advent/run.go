package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fentz26/advent/internal/models"
	"github.com/fentz26/advent/internal/puzzle"
	"github.com/fentz26/advent/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve days and check their answers",
	Long:  `Solves the given days (every registered day when none are given), records each run and exits non-zero if any answer is wrong or any solve fails.`,
	RunE:  runRun,
}

var (
	runPart int
	runJSON bool
)

func init() {
	runCmd.Flags().IntVarP(&runPart, "part", "p", 0, "Solve only this part (1 or 2)")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Print runs as JSON")
}

func runRun(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	jobs, err := a.runner.Jobs(days, puzzle.Part(runPart))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runs, err := a.runner.Run(ctx, jobs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if runJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(runs); err != nil {
			return err
		}
	} else {
		printRuns(out, runs)
	}

	summary := runner.Summarize(runs)
	if !summary.OK() {
		return fmt.Errorf("%s", summary)
	}
	return nil
}

// parseDays converts day arguments into numbers.
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		days = append(days, n)
	}
	return days, nil
}

func printRuns(out io.Writer, runs []models.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tPART\tANSWER\tEXPECTED\tSTATUS\tTIME")
	for _, run := range runs {
		answer := run.Answer
		if run.Status == models.RunStatusError {
			answer = run.Error
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%dms\n",
			run.Day, run.Part, truncate(answer, 48), run.Expected, run.Status, run.DurationMs)
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintln(out, runner.Summarize(runs))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
