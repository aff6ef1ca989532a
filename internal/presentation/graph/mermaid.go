package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/sbmltab/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the widget tree that the
// generated SBMLDefTab builds. Shapes:
// - VBox: ((Circle))
// - Box: [[Subroutine]]
// - Text widget: [/Parallelogram/]
// Rows in the primary and secondary palette colors alternate like table rows.
func GenerateMermaid(model *domain.TabModel) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("    tab((\"self.tab VBox\"))\n")

	for _, member := range model.VBoxMembers() {
		fmt.Fprintf(&sb, "    tab --> %s\n", sanitizeMermaidID(member))
	}

	fmt.Fprintf(&sb, "    %s[/\"%s\"/]\n", sanitizeMermaidID(domain.FilenameWidget), domain.FilenameWidget)
	fmt.Fprintf(&sb, "    %s[[\"%s: Species | Substrate\"]]\n", domain.HeaderBox, domain.HeaderBox)

	for _, e := range model.Entries {
		box := e.BoxName()
		sp := sanitizeMermaidID(e.SpeciesWidget())
		su := sanitizeMermaidID(e.SubstrateWidget())

		fmt.Fprintf(&sb, "    %s[[\"%s\"]]\n", box, box)
		fmt.Fprintf(&sb, "    %s --> %s[/\"%s\"/]\n", box, sp, escapeLabel(e.Species))
		fmt.Fprintf(&sb, "    %s --> %s[/\"%s\"/]\n", box, su, escapeLabel(e.Substrate))
	}

	if len(model.Entries) > 0 && model.Palette != (domain.Palette{}) {
		sb.WriteString("\n    %% Row colors\n")
		fmt.Fprintf(&sb, "    classDef primary fill:%s,color:#000;\n", model.Palette.Primary)
		fmt.Fprintf(&sb, "    classDef secondary fill:%s,color:#000;\n", model.Palette.Secondary)
		for i, e := range model.Entries {
			class := "primary"
			if i%2 == 1 {
				class = "secondary"
			}
			fmt.Fprintf(&sb, "    class %s %s;\n", e.BoxName(), class)
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
