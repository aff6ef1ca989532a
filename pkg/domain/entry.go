package domain

import "fmt"

// MapEntry is a single <map species=".." substrate=".."/> element.
// Index is the 1-based position among the map siblings; it is the only identity
// an entry has, so two entries with equal attributes are still distinct.
type MapEntry struct {
	Index     int    `json:"index" yaml:"index"`
	Species   string `json:"species" yaml:"species"`
	Substrate string `json:"substrate" yaml:"substrate"`
}

// SpeciesWidget returns the attribute name of the species Text widget.
func (e MapEntry) SpeciesWidget() string {
	return fmt.Sprintf("self.species%d", e.Index)
}

// SubstrateWidget returns the attribute name of the substrate Text widget.
func (e MapEntry) SubstrateWidget() string {
	return fmt.Sprintf("self.substrate%d", e.Index)
}

// RowName returns the local variable holding the widget pair.
func (e MapEntry) RowName() string {
	return fmt.Sprintf("row%d", e.Index)
}

// BoxName returns the local variable holding the row container.
func (e MapEntry) BoxName() string {
	return fmt.Sprintf("box%d", e.Index)
}

// Palette holds the two color names used for alternating rows.
type Palette struct {
	Primary   string `json:"primary" yaml:"primary" mapstructure:"primary"`
	Secondary string `json:"secondary" yaml:"secondary" mapstructure:"secondary"`
}

// DefaultPalette returns lightgreen/tan.
func DefaultPalette() Palette {
	return Palette{Primary: DefaultColor1, Secondary: DefaultColor2}
}
