package commands

import (
	"github.com/spf13/cobra"

	"fixcheck/internal/config"
	"fixcheck/internal/execution"
	"fixcheck/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	loader    *execution.Loader
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, loader *execution.Loader, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		loader:    loader,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	target, err := targetFromConfig(lc.config)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(lc.loader, false)
	if err != nil {
		return err
	}

	lc.formatter.SetOutput(cmd.OutOrStdout())
	return lc.formatter.PrintFixtures(catalog, target)
}
