package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/sbmltab"
	"github.com/aretw0/sbmltab/internal/args"
	"github.com/aretw0/sbmltab/internal/companion"
	"github.com/aretw0/sbmltab/internal/metrics"
	"github.com/aretw0/sbmltab/internal/presentation/tui"
	"github.com/aretw0/sbmltab/internal/settings"
	"github.com/aretw0/sbmltab/pkg/domain"
)

// RunOptions contains all the configuration for the generate command.
type RunOptions struct {
	Prog string
	// Args are the positional arguments: config, companion and colors.
	Args []string

	SettingsPath     string
	SettingsExplicit bool
	// Overrides holds flag values that were set explicitly, keyed like the
	// settings file.
	Overrides map[string]any

	Debug bool
	Quiet bool
	Rich  bool // Render hints with glamour

	Stdout io.Writer
	Stderr io.Writer
}

// Execute runs the whole pipeline: resolve arguments, patch the companion file,
// generate the module and print the next steps.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	inv, err := args.New(opts.Prog).Resolve(opts.Args)
	if err != nil {
		return exitErrorFor(ctx, err)
	}

	cfg, err := loadSettings(opts)
	if err != nil {
		return exitErrorFor(ctx, err)
	}

	logger := createLogger(opts.Debug, cfg, opts.Stderr)
	logger.Debug("Resolved arguments", "num_args", len(opts.Args), "config", inv.ConfigPath, "companion", inv.CompanionPath)

	palette := cfg.Colors
	if inv.PaletteExplicit {
		palette = inv.Palette
	}

	out := opts.Stdout
	if !opts.Quiet {
		if !inv.ConfigExplicit {
			fmt.Fprintf(out, "\n*** NOTE:  using %s  ***\n", domain.DefaultConfigFile)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "config_file = ", inv.ConfigPath)
		fmt.Fprintln(out, "colorname1 = ", palette.Primary)
		fmt.Fprintln(out, "colorname2 = ", palette.Secondary)
		fmt.Fprintln(out)
	}

	if inv.HasCompanion() {
		if err := companion.PatchFile(inv.CompanionPath, inv.ConfigPath); err != nil {
			return exitErrorFor(ctx, err)
		}
		logger.Info("Patched companion file", "path", inv.CompanionPath, "config", inv.ConfigPath)
	}

	var collector *metrics.Collector
	if cfg.MetricsFile != "" {
		collector = metrics.New()
	}

	gen := createGenerator(logger, palette, cfg, collector)

	start := time.Now()
	res, err := gen.GenerateFile(ctx, inv.ConfigPath, cfg.Output)
	if collector != nil {
		if werr := collector.WriteTextfile(cfg.MetricsFile); werr != nil {
			logger.Warn("Failed to write metrics", "path", cfg.MetricsFile, "error", werr)
		}
	}
	if err != nil {
		logger.Error("Generation failed", "config", inv.ConfigPath, "error", err)
		return exitErrorFor(ctx, err)
	}
	logger.Info("Generation complete", "entries", len(res.Model.Entries), "elapsed", time.Since(start))

	if opts.Quiet {
		return nil
	}

	fmt.Fprintln(out, "\n --------------------------------- ")
	fmt.Fprintln(out, "Generated a new: ", tui.Status(out, true, filepath.ToSlash(res.Output)))
	printNextSteps(out, opts.Rich, res.Output)
	return nil
}

// Generate is the entry point of the default command.
func Generate(opts RunOptions) error {
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if !opts.Quiet && opts.Rich {
		w := opts.Stdout
		if w == nil {
			w = os.Stdout
		}
		tui.PrintBanner(w, sbmltab.Version)
	}
	return Execute(sigCtx, opts)
}

func loadSettings(opts RunOptions) (settings.Settings, error) {
	path := opts.SettingsPath
	if path == "" {
		path = settings.DefaultFile
	}
	cfg, err := settings.Load(path, opts.SettingsExplicit)
	if err != nil {
		return cfg, err
	}
	if len(opts.Overrides) > 0 {
		if err := settings.Decode(opts.Overrides, &cfg); err != nil {
			return cfg, fmt.Errorf("invalid flag value: %w", err)
		}
	}
	return cfg, nil
}
