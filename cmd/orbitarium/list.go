package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"orbitarium/internal/scenario"
	"orbitarium/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenarios",
	Long:  `Shows built-in scenarios and scenarios saved in the library.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	builtins := scenario.List()

	var saved []storage.ScenarioEntry
	if store, err := storage.Open(flagDBPath); err == nil {
		saved, _ = store.ListScenarios()
		store.Close()
	}

	if len(builtins) == 0 && len(saved) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, s := range builtins {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}
	for _, s := range saved {
		if len(s.ScenarioID) > maxIDLen {
			maxIDLen = len(s.ScenarioID)
		}
	}

	fmt.Println("Built-in scenarios:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")
	for _, s := range builtins {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Name)
	}

	if len(saved) > 0 {
		fmt.Println()
		fmt.Println("Saved scenarios:")
		fmt.Println()
		for _, s := range saved {
			name := ""
			if scn, err := scenario.Parse([]byte(s.Definition)); err == nil {
				name = scn.Name
			}
			fmt.Printf("  %-*s  %s\n", maxIDLen, s.ScenarioID, name)
		}
	}

	fmt.Println()
	fmt.Println("Run 'orbitarium run <id>' to view a scenario.")
}
