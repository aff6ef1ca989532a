// Package emitter serializes a domain.TabModel as the sbml_def.py Python module.
package emitter

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/aretw0/sbmltab/pkg/domain"
)

//go:embed templates/sbml_def.py.tmpl
var tabSource string

var tabTemplate = template.Must(template.New("sbml_def.py").Funcs(template.FuncMap{
	"py": PyString,
}).Parse(tabSource))

type tabData struct {
	Entries    []domain.MapEntry
	VBox       []string
	EntryPoint string
	MapTag     string
}

// Render writes the module for m to w.
func Render(w io.Writer, m *domain.TabModel) error {
	data := tabData{
		Entries:    m.Entries,
		VBox:       m.VBoxMembers(),
		EntryPoint: domain.EntryPointTag,
		MapTag:     domain.MapTag,
	}
	if err := tabTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", tabTemplate.Name(), err)
	}
	return nil
}

// Bytes renders the module into memory.
func Bytes(m *domain.TabModel) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var pyEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// PyString returns s as a single-quoted Python string literal.
func PyString(s string) string {
	return "'" + pyEscaper.Replace(s) + "'"
}
