package sbmltab

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/sbmltab/internal/codegen"
	"github.com/aretw0/sbmltab/internal/emitter"
	"github.com/aretw0/sbmltab/internal/logging"
	"github.com/aretw0/sbmltab/internal/metrics"
	"github.com/aretw0/sbmltab/internal/xmltree"
	"github.com/aretw0/sbmltab/pkg/domain"
	"github.com/beevik/etree"
)

// Generator is the high-level entry point of the library.
// It wires the XML loader, the code generator and the emitter together and is
// safe to share between goroutines: every call builds its own model.
type Generator struct {
	logger      *slog.Logger
	palette     domain.Palette
	foldTagCase bool
	metrics     *metrics.Collector
}

// Result is the outcome of one generation.
type Result struct {
	Model *domain.TabModel
	Code  []byte
	// Output is the file the code was written to, empty for in-memory runs.
	Output string
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithPalette sets the two row colors.
func WithPalette(p domain.Palette) Option {
	return func(g *Generator) {
		g.palette = p
	}
}

// WithFoldTagCase enables case-insensitive matching of the map tag.
func WithFoldTagCase(fold bool) Option {
	return func(g *Generator) {
		g.foldTagCase = fold
	}
}

// WithMetrics records every generation in c.
func WithMetrics(c *metrics.Collector) Option {
	return func(g *Generator) {
		g.metrics = c
	}
}

// New initializes a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{palette: domain.DefaultPalette()}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logging.NewNop()
	}
	return g
}

// Model parses data and builds the tab model without rendering it.
// name identifies the document in error messages.
func (g *Generator) Model(ctx context.Context, name string, data []byte) (*domain.TabModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	root, err := xmltree.ParseBytes(name, data)
	if err != nil {
		return nil, err
	}
	return g.build(root)
}

// Generate parses data and renders the module in memory.
func (g *Generator) Generate(ctx context.Context, name string, data []byte) (*Result, error) {
	start := time.Now()
	res, err := g.generate(ctx, name, data)
	g.observe(res, err, start)
	return res, err
}

// GenerateFile reads configPath and writes the module to outputPath, replacing
// any previous content. outputPath is not touched when any step fails.
func (g *Generator) GenerateFile(ctx context.Context, configPath, outputPath string) (*Result, error) {
	start := time.Now()
	res, err := g.generateFile(ctx, configPath, outputPath)
	g.observe(res, err, start)
	return res, err
}

func (g *Generator) generateFile(ctx context.Context, configPath, outputPath string) (*Result, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.MissingFileError{Path: configPath}
		}
		return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	res, err := g.generate(ctx, configPath, data)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(outputPath, res.Code, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	res.Output = outputPath
	g.logger.Info("Wrote module", "path", outputPath, "bytes", len(res.Code))
	return res, nil
}

func (g *Generator) generate(ctx context.Context, name string, data []byte) (*Result, error) {
	model, err := g.Model(ctx, name, data)
	if err != nil {
		return nil, err
	}

	code, err := emitter.Bytes(model)
	if err != nil {
		return nil, err
	}
	return &Result{Model: model, Code: code}, nil
}

func (g *Generator) build(root *etree.Element) (*domain.TabModel, error) {
	gen := codegen.New(
		codegen.WithLogger(g.logger),
		codegen.WithPalette(g.palette),
		codegen.WithFoldTagCase(g.foldTagCase),
	)
	return gen.Generate(root)
}

func (g *Generator) observe(res *Result, err error, start time.Time) {
	if g.metrics == nil {
		return
	}
	var model *domain.TabModel
	if res != nil {
		model = res.Model
	}
	g.metrics.Observe(model, err, time.Since(start))
}
