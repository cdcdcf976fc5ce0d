package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"orbitarium/internal/core"
	"orbitarium/internal/platform/tui"
	"orbitarium/internal/scenario"
	"orbitarium/internal/storage"
)

var (
	flagScenarioFile string
	flagSpeed        string
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "View a scenario",
	Long: `Build a universe from the named scenario and view it live.

Controls:
  [ / ]        - Slower / faster time scale
  + / -        - Zoom in / out
  Arrows/WASD  - Pan the camera
  Tab          - Follow the next body
  Esc          - Release the camera
  Space        - Pause
  T            - Toggle orbit trails
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Scenario resolution order: --scenario-file, ~/.orbitarium/scenarios/,
./scenarios/, the saved library in the database, then built-ins.

Examples:
  orbitarium run earth-moon
  orbitarium run inner-system --speed 1w
  orbitarium run custom --scenario-file ./my-system.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagScenarioFile, "scenario-file", "", "Path to a scenario YAML file")
	runCmd.Flags().StringVar(&flagSpeed, "speed", "", "Initial time scale: preset label (1m, 1h, 1d, 1w...) or simulated seconds per second")
}

func runRun(cmd *cobra.Command, args []string) {
	scenarioID := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - viewing still works
		store = nil
	}

	scn, err := resolveScenario(scenarioID, flagScenarioFile, store)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'orbitarium list' to see available scenarios.")
		os.Exit(1)
	}

	if flagSpeed != "" {
		scale, speedErr := parseSpeed(flagSpeed)
		if speedErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", speedErr)
			os.Exit(1)
		}
		scn.TimeScale = scale
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	runErr := tui.Run(scn, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveScenario finds a scenario by id, checking files and built-ins
// first, then the saved library in storage.
func resolveScenario(id, customPath string, store *storage.Store) (*scenario.Scenario, error) {
	scn, err := scenario.Load(id, customPath)
	if err == nil {
		return scn, nil
	}
	if customPath != "" || store == nil {
		return nil, err
	}

	definition, dbErr := store.Scenario(id)
	if dbErr != nil || definition == nil {
		return nil, err
	}
	return scenario.Parse(definition)
}

// parseSpeed turns a preset label like "1d" or a bare number into a time
// scale in simulated seconds per real second.
func parseSpeed(s string) (float64, error) {
	for _, preset := range tui.Speeds {
		if preset.Label == s {
			return preset.Scale, nil
		}
	}
	if scale, err := strconv.ParseFloat(s, 64); err == nil && scale > 0 {
		return scale, nil
	}
	return 0, fmt.Errorf("unknown speed %q (use a preset like 1m, 1h, 1d, 1w or a positive number)", s)
}
