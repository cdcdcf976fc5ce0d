package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"orbitarium/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeScn    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH viewing server",
	Long: `Start an SSH server that lets users watch a scenario remotely.

Each SSH connection gets its own universe built from the configured
scenario, with the same controls as the local viewer. Runs are recorded
in the shared database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.orbitarium/host_key

Examples:
  orbitarium serve                          # earth-moon on :23234
  orbitarium serve --ssh :2222              # Listen on port 2222
  orbitarium serve --scenario binary-pair   # Serve another scenario
  orbitarium serve --host-key ./my_host_key # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeScn, "scenario", "earth-moon", "Scenario id to serve")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		ScenarioID:  flagServeScn,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting orbitarium SSH server on %s (scenario %s)\n", cfg.Address, cfg.ScenarioID)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
