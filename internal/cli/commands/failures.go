package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"specrun/internal/config"
	"specrun/internal/storage"
	"specrun/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *FailuresCommand {
	return &FailuresCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	rec, err := fc.storage.Load()
	if err != nil {
		return fmt.Errorf("no saved run found (run 'specrun demo' first): %w", err)
	}
	return fc.viewer.View(rec)
}
