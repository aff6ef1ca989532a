package domain

// Invocation is the result of resolving the positional CLI arguments.
type Invocation struct {
	ConfigPath string
	// ConfigExplicit is false when ConfigPath fell back to DefaultConfigFile.
	ConfigExplicit bool
	// CompanionPath is empty unless a GUI module should be patched.
	CompanionPath string
	Palette       Palette
	// PaletteExplicit reports whether the colors came from the arguments.
	PaletteExplicit bool
}

// HasCompanion reports whether a companion file was supplied.
func (i Invocation) HasCompanion() bool {
	return i.CompanionPath != ""
}
