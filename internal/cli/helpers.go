package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/sbmltab/internal/logging"
	"github.com/aretw0/sbmltab/internal/presentation/tui"
	"github.com/aretw0/sbmltab/internal/settings"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// --debug wins; otherwise log_level from the settings file enables logging.
// Without either, logs are discarded so stdout/stderr only carry user output.
func createLogger(debug bool, cfg settings.Settings, w io.Writer) *slog.Logger {
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug, cfg.LogFormat)
	}
	if cfg.LogLevel != "" {
		return logging.NewWithWriter(w, logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// printNextSteps prints the notebook hints, through glamour when rich is set.
func printNextSteps(w io.Writer, rich bool, output string) {
	if rich {
		rendered, err := tui.NewRenderer()(tui.NextStepsMarkdown(output))
		if err == nil {
			fmt.Fprint(w, rendered)
			return
		}
	}
	fmt.Fprint(w, tui.NextSteps())
}
