package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"orbitarium/internal/scenario"
	"orbitarium/internal/storage"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage the saved scenario library",
	Long: `Save, inspect, and delete scenario definitions in the library.

Saved scenarios live in the database and can be viewed by id with
'orbitarium run', same as built-ins.`,
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Validate a scenario file and save it to the library",
	Long: `Parse and validate the YAML scenario file, then store it under
its id. Saving again with the same id replaces the definition.

Examples:
  orbitarium scenario save ./my-system.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runScenarioSave,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a scenario definition",
	Args:  cobra.ExactArgs(1),
	Run:   runScenarioShow,
}

var scenarioDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a scenario from the library",
	Args:  cobra.ExactArgs(1),
	Run:   runScenarioDelete,
}

func init() {
	scenarioCmd.AddCommand(scenarioSaveCmd)
	scenarioCmd.AddCommand(scenarioShowCmd)
	scenarioCmd.AddCommand(scenarioDeleteCmd)
}

func openStoreOrExit() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScenarioSave(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	scn, err := scenario.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Building catches problems Validate cannot see, like coincident
	// body positions.
	if _, err := scn.Build(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStoreOrExit()
	defer store.Close()

	if err := store.SaveScenario(scn.ID, data); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving scenario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved scenario %q (%d bodies).\n", scn.ID, len(scn.Bodies))
	fmt.Printf("Run 'orbitarium run %s' to view it.\n", scn.ID)
}

func runScenarioShow(cmd *cobra.Command, args []string) {
	id := args[0]

	store := openStoreOrExit()
	defer store.Close()

	definition, err := store.Scenario(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scenario: %v\n", err)
		os.Exit(1)
	}
	if definition == nil {
		// Fall back to built-ins so 'show earth-moon' works too.
		scn, ok := scenario.Get(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", id)
			os.Exit(1)
		}
		definition, err = scn.Definition()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	os.Stdout.Write(definition)
}

func runScenarioDelete(cmd *cobra.Command, args []string) {
	id := args[0]

	store := openStoreOrExit()
	defer store.Close()

	if err := store.DeleteScenario(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting scenario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Deleted scenario %q from the library.\n", id)
}
