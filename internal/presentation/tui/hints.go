package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/sbmltab/pkg/domain"
)

// NextSteps is shown after a successful generation.
func NextSteps() string {
	return `
Test the minimal GUI via:  jupyter notebook test_gui.ipynb
run the Jupyter menu item:  Cell -> Run All

(or, if you already have a previous GUI running and want to see new params:
run the Jupyter menu item:  Kernel -> Restart & Run All)
`
}

// NextStepsMarkdown is the rich-terminal variant of NextSteps.
func NextStepsMarkdown(output string) string {
	return fmt.Sprintf("## Next steps\n\n"+
		"1. Test the minimal GUI: `jupyter notebook test_gui.ipynb`\n"+
		"2. Run the Jupyter menu item **Cell -> Run All**\n\n"+
		"If a previous GUI is already running, use **Kernel -> Restart & Run All** to load the new `%s`.\n", output)
}

// EntriesTable renders the map entries as a markdown table.
func EntriesTable(entries []domain.MapEntry) string {
	if len(entries) == 0 {
		return "_No map entries under <" + domain.EntryPointTag + ">._\n"
	}

	var sb strings.Builder
	sb.WriteString("| # | Species | Substrate | Widgets |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "| %d | %s | %s | `%s`, `%s` |\n",
			e.Index, escapeCell(e.Species), escapeCell(e.Substrate), e.SpeciesWidget(), e.SubstrateWidget())
	}
	return sb.String()
}

func escapeCell(s string) string {
	if s == "" {
		return "_(empty)_"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
