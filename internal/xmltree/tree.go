// Package xmltree loads an XML configuration as an element tree.
//
// The generator only ever reads a small, fixed fragment of a PhysiCell
// configuration, so instead of mirroring the full schema in structs the document is
// kept as an etree element tree and the interesting parts are looked up by tag.
package xmltree

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/sbmltab/pkg/domain"
	"github.com/beevik/etree"
)

// ParseFile reads and parses the XML document at path and returns its root element.
func ParseFile(path string) (*etree.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &domain.MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(path, f)
}

// ParseBytes parses an in-memory document. name is only used in error messages.
func ParseBytes(name string, data []byte) (*etree.Element, error) {
	return Parse(name, strings.NewReader(string(data)))
}

// Parse reads a whole document from r and returns its root element.
// Anything that is not a single well-formed element tree is reported as a
// *domain.ParseError carrying name.
func Parse(name string, r io.Reader) (*etree.Element, error) {
	root, err := parse(r)
	if err != nil {
		return nil, &domain.ParseError{Path: name, Err: err}
	}
	return root, nil
}

func parse(r io.Reader) (*etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveDuplicateAttrs = true
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}

	// etree accepts a forest; a configuration must have exactly one root.
	var root *etree.Element
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if root != nil {
				return nil, fmt.Errorf("junk after document element <%s>", root.Tag)
			}
			root = t
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return nil, errors.New("character data outside the document element")
			}
		}
	}
	if root == nil {
		return nil, errors.New("no element found")
	}
	if err := checkNames(root); err != nil {
		return nil, err
	}
	return root, nil
}

// checkNames rejects what etree lets through but a conforming parser does not:
// repeated attributes and prefixes that no enclosing element declares.
func checkNames(e *etree.Element) error {
	seen := make(map[string]struct{}, len(e.Attr))
	for i := range e.Attr {
		a := &e.Attr[i]
		key := a.FullKey()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate attribute %q on <%s>", key, e.FullTag())
		}
		seen[key] = struct{}{}
		if a.Space != "" && a.Space != "xmlns" && a.Space != "xml" && a.NamespaceURI() == "" {
			return fmt.Errorf("unbound prefix %q on attribute %q of <%s>", a.Space, key, e.FullTag())
		}
	}
	if e.Space != "" && e.Space != "xml" && e.NamespaceURI() == "" {
		return fmt.Errorf("unbound prefix %q on <%s>", e.Space, e.FullTag())
	}
	for _, c := range e.ChildElements() {
		if err := checkNames(c); err != nil {
			return err
		}
	}
	return nil
}

// Unqualified reports whether e belongs to no namespace, either through a
// prefix or an inherited default xmlns.
func Unqualified(e *etree.Element) bool {
	return e.Space == "" && e.NamespaceURI() == ""
}

// FindFirst returns the first element tagged tag in document order, starting
// with e itself, or nil. Namespaced elements never match.
func FindFirst(e *etree.Element, tag string) *etree.Element {
	if e == nil {
		return nil
	}
	if e.Tag == tag && Unqualified(e) {
		return e
	}
	for _, c := range e.ChildElements() {
		if found := FindFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// Attr returns the value of the unprefixed attribute name.
func Attr(e *etree.Element, name string) (string, bool) {
	for _, a := range e.Attr {
		if a.Space == "" && a.Key == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrMap returns the attributes keyed by name, for diagnostics.
func AttrMap(e *etree.Element) map[string]string {
	m := make(map[string]string, len(e.Attr))
	for _, a := range e.Attr {
		m[a.FullKey()] = a.Value
	}
	return m
}
