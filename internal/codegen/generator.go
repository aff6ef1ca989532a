// Package codegen walks the intracellular section of a configuration tree and
// builds the widget tab model from its map children.
package codegen

import (
	"log/slog"
	"strings"

	"github.com/aretw0/sbmltab/internal/logging"
	"github.com/aretw0/sbmltab/internal/xmltree"
	"github.com/aretw0/sbmltab/pkg/domain"
	"github.com/beevik/etree"
)

// Generator turns a configuration tree into a domain.TabModel.
type Generator struct {
	logger      *slog.Logger
	palette     domain.Palette
	foldTagCase bool
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-child diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithPalette sets the row colors carried by the model.
func WithPalette(p domain.Palette) Option {
	return func(g *Generator) {
		g.palette = p
	}
}

// WithFoldTagCase makes <MAP>, <Map> and <map> equivalent.
func WithFoldTagCase(fold bool) Option {
	return func(g *Generator) {
		g.foldTagCase = fold
	}
}

// New creates a Generator. Tag matching is case-sensitive unless
// WithFoldTagCase(true) is given.
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

// Generate locates the entry point under root and builds the model from its
// direct children. Only map children produce entries; everything else is logged
// and skipped.
func (g *Generator) Generate(root *etree.Element) (*domain.TabModel, error) {
	uep := xmltree.FindFirst(root, domain.EntryPointTag)
	if uep == nil {
		return nil, domain.ErrEntryPointNotFound
	}

	b := NewBuilder(g.palette)
	for _, child := range uep.ChildElements() {
		g.logger.Debug("Child", "tag", child.Tag, "attrs", xmltree.AttrMap(child))

		if !xmltree.Unqualified(child) || !g.isMap(child.Tag) {
			g.logger.Debug("Skipping child", "tag", child.FullTag(), "path", child.GetPath())
			b.Skip()
			continue
		}

		species, ok := xmltree.Attr(child, domain.SpeciesAttr)
		if !ok {
			return nil, &domain.MissingAttributeError{Index: b.Next(), Attribute: domain.SpeciesAttr}
		}
		substrate, ok := xmltree.Attr(child, domain.SubstrateAttr)
		if !ok {
			return nil, &domain.MissingAttributeError{Index: b.Next(), Attribute: domain.SubstrateAttr}
		}

		e := b.Add(species, substrate)
		g.logger.Debug("Map entry", "index", e.Index, "species", e.Species, "substrate", e.Substrate)
	}

	model := b.Build()
	g.logger.Info("Generated tab model", "entries", len(model.Entries), "skipped", model.Skipped)
	return model, nil
}

func (g *Generator) isMap(tag string) bool {
	if g.foldTagCase {
		return strings.EqualFold(tag, domain.MapTag)
	}
	return tag == domain.MapTag
}
