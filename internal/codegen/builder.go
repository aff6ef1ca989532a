package codegen

import "github.com/aretw0/sbmltab/pkg/domain"

// Builder accumulates map entries in document order and numbers them.
type Builder struct {
	entries []domain.MapEntry
	skipped int
	palette domain.Palette
}

// NewBuilder creates an empty builder for the given palette.
func NewBuilder(palette domain.Palette) *Builder {
	return &Builder{palette: palette}
}

// Next returns the index the next added entry will receive.
func (b *Builder) Next() int {
	return len(b.entries) + 1
}

// Add appends a species/substrate pair and returns the numbered entry.
func (b *Builder) Add(species, substrate string) domain.MapEntry {
	e := domain.MapEntry{
		Index:     b.Next(),
		Species:   species,
		Substrate: substrate,
	}
	b.entries = append(b.entries, e)
	return e
}

// Skip records a child that produced no widgets.
func (b *Builder) Skip() {
	b.skipped++
}

// Build returns the finished model. The builder can keep being used; the model
// does not share its entry slice.
func (b *Builder) Build() *domain.TabModel {
	entries := make([]domain.MapEntry, len(b.entries))
	copy(entries, b.entries)
	return &domain.TabModel{
		Entries: entries,
		Palette: b.palette,
		Skipped: b.skipped,
	}
}
