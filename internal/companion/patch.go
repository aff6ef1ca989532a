// Package companion rewrites the configuration filename constant of a GUI module.
package companion

import (
	"bytes"
	"fmt"
	"os"

	"github.com/aretw0/sbmltab/internal/emitter"
	"github.com/aretw0/sbmltab/pkg/domain"
)

// Rewrite replaces everything from the first occurrence of the marker up to the
// end of its line with an assignment of configPath, quoted as a Python literal. Bytes before the marker and
// from the line break onwards are kept as they are.
func Rewrite(src []byte, configPath string) ([]byte, error) {
	marker := []byte(domain.CompanionMarker)
	idx := bytes.Index(src, marker)
	if idx < 0 {
		return nil, domain.ErrMarkerNotFound
	}

	end := len(src)
	if nl := bytes.IndexByte(src[idx:], '\n'); nl >= 0 {
		end = idx + nl
	}

	var out bytes.Buffer
	out.Grow(len(src) + len(configPath))
	out.Write(src[:idx])
	fmt.Fprintf(&out, "%s = %s", domain.CompanionMarker, emitter.PyString(configPath))
	out.Write(src[end:])
	return out.Bytes(), nil
}

// PatchFile applies Rewrite to the file at path in place.
// The file is left untouched when the marker is missing.
func PatchFile(path, configPath string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("companion file: %w", err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("companion file: %w", err)
	}

	out, err := Rewrite(src, configPath)
	if err != nil {
		return fmt.Errorf("companion file %s: %w", path, err)
	}

	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("companion file: %w", err)
	}
	return nil
}
