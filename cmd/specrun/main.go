package main

import (
	"fmt"
	"os"

	"specrun/internal/cli"
	"specrun/internal/cli/commands"
	"specrun/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "specrun",
		Short:   "Minimal behavior-driven suite runner",
		Long:    `A minimal behavior-driven test declaration and run tool. Declare groups of named cases, run them in declaration order and inspect the outcome of every case.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()
	if cfg.NoColor {
		color.NoColor = true
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
