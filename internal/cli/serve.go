package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	httpAdapter "github.com/aretw0/sbmltab/internal/adapters/http"
	"github.com/aretw0/sbmltab/internal/adapters/mcp"
	"github.com/aretw0/sbmltab/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP API on addr until ctx is cancelled.
func Serve(ctx context.Context, opts RunOptions, addr string) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := loadSettings(opts)
	if err != nil {
		return exitErrorFor(ctx, err)
	}
	logger := createLogger(opts.Debug, cfg, opts.Stderr)

	srv := &http.Server{
		Addr: addr,
		Handler: httpAdapter.NewHandler(httpAdapter.Config{
			Logger:      logger,
			Metrics:     metrics.New(),
			Palette:     cfg.Colors,
			FoldTagCase: cfg.FoldTagCase,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		if !opts.Quiet {
			printSystemMessage(opts.Stdout, "Starting sbmltab server on %s", srv.Addr)
		}
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return &ExitError{Code: 1, Message: fmt.Sprintf("Server error: %v", err), Err: err}

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return exitErrorFor(ctx, fmt.Errorf("error killing server: %w", err))
			}
		}
		if !opts.Quiet {
			printSystemMessage(opts.Stdout, "Server stopped gracefully")
		}
		return nil
	}
}

// ServeMCP runs the MCP server over stdio. Stdout belongs to the JSON-RPC
// stream, so every log line goes to stderr.
func ServeMCP(opts RunOptions) error {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := loadSettings(opts)
	if err != nil {
		return exitErrorFor(context.Background(), err)
	}
	logger := createLogger(opts.Debug, cfg, opts.Stderr)

	log.SetOutput(opts.Stderr)
	srv := mcp.NewServer(mcp.Options{
		Logger:      logger,
		Palette:     cfg.Colors,
		FoldTagCase: cfg.FoldTagCase,
	})

	logger.Info("Starting sbmltab MCP server (stdio)")
	if err := srv.ServeStdio(); err != nil {
		logger.Error("MCP server execution failed", "error", err)
		return &ExitError{Code: 1, Message: fmt.Sprintf("MCP server error: %v", err), Err: err}
	}
	return nil
}
