package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fixcheck/internal/config"
	"fixcheck/internal/execution"
	"fixcheck/internal/storage"
	"fixcheck/internal/ui"
)

// LintCommand handles the lint command
type LintCommand struct {
	config    *config.Config
	loader    *execution.Loader
	formatter *ui.Formatter
}

// NewLintCommand creates a new LintCommand
func NewLintCommand(cfg *config.Config, loader *execution.Loader, formatter *ui.Formatter) *LintCommand {
	return &LintCommand{
		config:    cfg,
		loader:    loader,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *LintCommand) Execute(cmd *cobra.Command, args []string) error {
	files, err := lc.loader.Discover()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No fixture files found")
		return nil
	}

	progress := ui.NewProgressBar(len(files))
	start := time.Now()
	results, err := lc.loader.Load(files, progress)
	if err != nil {
		return err
	}

	duration := time.Since(start)

	if path := lc.config.GetReportPath(); path != "" {
		if err := storage.NewJSONStorage(path).Save(results, duration, lc.config.Workers); err != nil {
			return err
		}
		color.Cyan("Report written to %s", path)
	}

	lc.formatter.SetOutput(cmd.OutOrStdout())
	if failed := lc.formatter.PrintLintResults(results, duration); failed > 0 {
		return fmt.Errorf("%d invalid fixture file(s)", failed)
	}
	return nil
}
