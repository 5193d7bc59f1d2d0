package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fixcheck/internal/cli"
	"fixcheck/internal/config"
	"fixcheck/internal/discovery"
	"fixcheck/internal/domain"
	"fixcheck/internal/execution"
	"fixcheck/internal/query"
	"fixcheck/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Serve *ServeCommand
	List  *ListCommand
	Check *CheckCommand
	Lint  *LintCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	parser := discovery.NewParser()
	runner := execution.NewRunner(parser)
	pool := execution.NewWorkerPool(cfg, runner)
	loader := execution.NewLoader(cfg, scanner, filter, pool)
	formatter := ui.NewFormatter(cfg)
	checklist := ui.NewChecklist(cfg)

	return &Commands{
		Serve: NewServeCommand(cfg, loader),
		List:  NewListCommand(cfg, loader, formatter),
		Check: NewCheckCommand(cfg, loader, checklist),
		Lint:  NewLintCommand(cfg, loader, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		return nil
	}

	rootCmd.PersistentFlags().StringVarP(&flags.FixturesPath, "fixtures", "d", "", "Directory containing fixture files (default \""+config.DefaultFixturesPath+"\")")
	rootCmd.PersistentFlags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixture files by name pattern (supports wildcards, e.g. '*inputs*')")
	rootCmd.PersistentFlags().IntVarP(&flags.Workers, "workers", "w", 0, "Number of workers used to load fixtures")

	// Serve command
	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve fixture pages over HTTP",
		Long:    "Load every fixture and serve them as web pages. Pick the target version with ?version=X.Y.Z in the page URL.",
		Args:    cobra.NoArgs,
		RunE:    c.Serve.Execute,
		PreRunE: applyFlags,
	}
	serveCmd.Flags().StringVarP(&flags.Addr, "addr", "a", "", "Listen address (default \""+config.DefaultListenAddr+"\")")
	serveCmd.Flags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List test cases",
		Long:    "Print every test case with its completion state for the target version",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	addTargetFlags(listCmd, flags)
	rootCmd.AddCommand(listCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:     "check",
		Short:   "Work through test cases interactively",
		Long:    "Open an interactive checklist of test cases. Checks are kept in memory only.",
		Args:    cobra.NoArgs,
		RunE:    c.Check.Execute,
		PreRunE: applyFlags,
	}
	addTargetFlags(checkCmd, flags)
	rootCmd.AddCommand(checkCmd)

	// Lint command
	lintCmd := &cobra.Command{
		Use:     "lint",
		Short:   "Validate fixture files",
		Long:    "Load every fixture file and report missing fields and malformed versions",
		Args:    cobra.NoArgs,
		RunE:    c.Lint.Execute,
		PreRunE: applyFlags,
	}
	lintCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on the first invalid fixture")
	lintCmd.Flags().StringVarP(&flags.ReportPath, "report", "r", "", "Write a JSON lint report to this file")
	rootCmd.AddCommand(lintCmd)
}

func addTargetFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.Target, "target", "t", "", "Target version, e.g. 16.3.0")
	cmd.Flags().StringVarP(&flags.URL, "url", "u", "", "Page URL to read the version query parameter from")
	cmd.MarkFlagsMutuallyExclusive("target", "url")
}

// loadCatalog loads all fixtures, optionally drawing a progress bar
func loadCatalog(loader *execution.Loader, showProgress bool) (*domain.Catalog, error) {
	if !showProgress {
		return loader.Catalog(nil)
	}

	files, err := loader.Discover()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no fixture files found")
	}

	results, err := loader.Load(files, ui.NewProgressBar(len(files)))
	if err != nil {
		return nil, err
	}
	return execution.CatalogFromResults(results)
}

// targetFromConfig reads the target version from --url or --target
func targetFromConfig(cfg *config.Config) (query.Target, error) {
	raw := cfg.GetTargetURL()
	if raw == "" {
		return query.Target{}, nil
	}
	return query.TargetFromURL(raw)
}
