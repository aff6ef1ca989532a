package cli

import (
	"log/slog"

	"github.com/aretw0/sbmltab"
	"github.com/aretw0/sbmltab/internal/metrics"
	"github.com/aretw0/sbmltab/internal/settings"
	"github.com/aretw0/sbmltab/pkg/domain"
)

// createGenerator initializes a Generator with standard CLI conventions.
func createGenerator(logger *slog.Logger, palette domain.Palette, cfg settings.Settings, collector *metrics.Collector) *sbmltab.Generator {
	opts := []sbmltab.Option{
		sbmltab.WithLogger(logger),
		sbmltab.WithPalette(palette),
		sbmltab.WithFoldTagCase(cfg.FoldTagCase),
	}
	if collector != nil {
		opts = append(opts, sbmltab.WithMetrics(collector))
	}
	return sbmltab.New(opts...)
}
