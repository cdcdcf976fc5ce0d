package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [scenario]",
	Short: "Show recent viewing runs",
	Long: `Display recent viewing sessions: which scenario, how much simulated
time was covered, and how long the session lasted.

Examples:
  orbitarium runs
  orbitarium runs earth-moon
  orbitarium runs --limit 50`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	scenarioID := ""
	if len(args) > 0 {
		scenarioID = args[0]
	}

	store := openStoreOrExit()
	defer store.Close()

	runs, err := store.RecentRuns(scenarioID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("View a scenario with 'orbitarium run <id>' to record one.")
		return
	}

	maxIDLen := 8 // "Scenario" header
	for _, r := range runs {
		if len(r.ScenarioID) > maxIDLen {
			maxIDLen = len(r.ScenarioID)
		}
	}

	fmt.Printf("  %-*s  %-14s  %-10s  %s\n", maxIDLen, "Scenario", "Simulated", "Watched", "Date")
	fmt.Printf("  %-*s  %-14s  %-10s  %s\n", maxIDLen, "--------", "---------", "-------", "----")

	for _, r := range runs {
		fmt.Printf("  %-*s  %-14s  %-10s  %s\n",
			maxIDLen, r.ScenarioID,
			fmtSeconds(r.SimSeconds),
			fmtSeconds(r.WallSeconds),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}

// fmtSeconds renders a duration in seconds compactly for the runs table.
func fmtSeconds(s float64) string {
	switch {
	case s < 60:
		return fmt.Sprintf("%.0fs", s)
	case s < 3600:
		return fmt.Sprintf("%.1fm", s/60)
	case s < 86400:
		return fmt.Sprintf("%.1fh", s/3600)
	case s < 86400*365:
		return fmt.Sprintf("%.1fd", s/86400)
	default:
		return fmt.Sprintf("%.1fy", s/(86400*365))
	}
}
