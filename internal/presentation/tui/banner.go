package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the one-line program banner.
// Colors degrade to plain text when w is not a color terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	name := out.String("sbmltab").Bold().Foreground(out.Color("#34d399"))
	tag := out.String("PhysiCell SBML tab generator").Foreground(out.Color("#a3a3a3"))
	fmt.Fprintf(w, "%s %s %s\n", name, strings.TrimSpace(version), tag)
}

// Status formats a short colored status word such as "generated" or "failed".
func Status(w io.Writer, ok bool, msg string) string {
	out := termenv.NewOutput(w)
	color := "#34d399"
	if !ok {
		color = "#f87171"
	}
	return out.String(msg).Foreground(out.Color(color)).String()
}
