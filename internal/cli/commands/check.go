package commands

import (
	"github.com/spf13/cobra"

	"fixcheck/internal/config"
	"fixcheck/internal/execution"
	"fixcheck/internal/ui"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config *config.Config
	loader *execution.Loader
	viewer ui.Viewer
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(cfg *config.Config, loader *execution.Loader, viewer ui.Viewer) *CheckCommand {
	return &CheckCommand{
		config: cfg,
		loader: loader,
		viewer: viewer,
	}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	// The target is captured once for the whole session
	target, err := targetFromConfig(cc.config)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cc.loader, false)
	if err != nil {
		return err
	}

	return cc.viewer.Run(catalog, target)
}
