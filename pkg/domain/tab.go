package domain

// HeaderBox is the container of the column headings, always the first vbox member
// after the SBML filename widget.
const HeaderBox = "box0"

// FilenameWidget is the read-only Text widget showing the SBML file name.
const FilenameWidget = "self.sbml_filename"

// TabModel is everything the emitter needs to write the SBMLDefTab module.
// It is assembled once by the code generator and never mutated afterwards.
type TabModel struct {
	Entries []MapEntry `json:"entries"`
	Palette Palette    `json:"palette"`
	// Skipped counts children of the entry point that were not map elements.
	Skipped int `json:"skipped"`
}

// VBoxMembers returns the identifiers of the outer VBox in declaration order.
func (m *TabModel) VBoxMembers() []string {
	members := make([]string, 0, len(m.Entries)+2)
	members = append(members, FilenameWidget, HeaderBox)
	for _, e := range m.Entries {
		members = append(members, e.BoxName())
	}
	return members
}
