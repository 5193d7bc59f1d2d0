package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fixcheck/internal/config"
	"fixcheck/internal/execution"
	"fixcheck/internal/logging"
	"fixcheck/internal/server"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	config *config.Config
	loader *execution.Loader
}

// NewServeCommand creates a new ServeCommand
func NewServeCommand(cfg *config.Config, loader *execution.Loader) *ServeCommand {
	return &ServeCommand{
		config: cfg,
		loader: loader,
	}
}

// Execute runs the command
func (sc *ServeCommand) Execute(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(sc.loader, true)
	if err != nil {
		return err
	}

	logger, err := logging.New(sc.config.Debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	srv := server.New(sc.config, catalog, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	color.Green("✓ Serving %d fixture(s) on http://%s", catalog.Len(), srv.Addr())

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
