package commands

import (
	"specrun/internal/cli"
	"specrun/internal/config"
	"specrun/internal/storage"
	"specrun/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Demo     *DemoCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, jsonStorage)
	viewer := ui.NewFailureViewer(jsonStorage)

	return &Commands{
		Demo:     NewDemoCommand(cfg, jsonStorage, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Demo command
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in FizzBuzz showcase suite",
		Long:  "Declare and run the FizzBuzz showcase suite, stream its results and save the run record",
		RunE:  c.Demo.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	demoCmd.Flags().StringVarP(&flags.Format, "format", "o", config.DefaultFormat, "Report format: text or tap")
	demoCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while the suite runs")
	demoCmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not save the run record")
	demoCmd.Flags().BoolVar(&flags.WithFailures, "with-failures", false, "Include deliberately failing and erroring cases")
	rootCmd.AddCommand(demoCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failures from the last run interactively",
		Long:  "Display failed and errored cases from the last saved run record in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
