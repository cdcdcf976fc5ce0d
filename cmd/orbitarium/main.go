// orbitarium is a terminal N-body gravity viewer.
//
// Usage:
//
//	orbitarium list                   - List available scenarios
//	orbitarium run <scenario>         - View a scenario in the terminal
//	orbitarium scenario save <file>   - Save a scenario to the library
//	orbitarium scenario show <id>     - Print a saved scenario definition
//	orbitarium scenario delete <id>   - Remove a scenario from the library
//	orbitarium runs [scenario]        - Show recent viewing runs
//	orbitarium serve                  - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>  - Set tick rate (default: 30)
//	--db <path>   - Set database path (default: ~/.orbitarium/orbitarium.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orbitarium",
	Short: "Orbitarium - Newtonian gravity in your terminal",
	Long: `Orbitarium simulates Newtonian gravity between celestial bodies and
renders their orbits live in your terminal.

Available commands:
  list      - Show all available scenarios
  run       - View a scenario
  scenario  - Manage the saved scenario library
  runs      - Show recent viewing runs
  serve     - Start SSH server for remote viewing

Examples:
  orbitarium list
  orbitarium run earth-moon
  orbitarium run inner-system --speed 1w
  orbitarium scenario save ./my-system.yaml
  orbitarium serve --ssh :2222 --scenario binary-pair`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.orbitarium/orbitarium.db", "Path to scenario/run database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
