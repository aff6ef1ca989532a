// Package args turns the positional command line into a domain.Invocation.
package args

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aretw0/sbmltab/pkg/domain"
)

// MaxArgs is the largest number of positional arguments accepted.
const MaxArgs = 4

// Usage returns the accepted call pattern for the given program name.
func Usage(prog string) string {
	return fmt.Sprintf("Usage: %s <config-file.xml> [<gui-file.py>] [<colorname1> <colorname2>]", prog)
}

// StatFunc reports file information; os.Stat in production.
type StatFunc func(name string) (fs.FileInfo, error)

// Resolver maps 0..4 positional arguments onto an Invocation.
type Resolver struct {
	Prog string
	Stat StatFunc
}

// New returns a Resolver that checks files on the real filesystem.
func New(prog string) *Resolver {
	return &Resolver{Prog: prog, Stat: os.Stat}
}

// Resolve applies the positional table:
//
//	0: defaults
//	1: config
//	2: config companion
//	3: config color1 color2
//	4: config companion color1 color2
//
// An explicit config path must name an existing file.
func (r *Resolver) Resolve(argv []string) (domain.Invocation, error) {
	inv := domain.Invocation{
		ConfigPath: domain.DefaultConfigFile,
		Palette:    domain.DefaultPalette(),
	}

	if len(argv) > MaxArgs {
		return inv, &domain.UsageError{Got: len(argv), Usage: Usage(r.Prog)}
	}

	if len(argv) >= 1 {
		inv.ConfigPath = argv[0]
		inv.ConfigExplicit = true
		if err := r.checkExists(inv.ConfigPath); err != nil {
			return inv, err
		}
	}

	switch len(argv) {
	case 2:
		inv.CompanionPath = argv[1]
	case 3:
		inv.Palette = domain.Palette{Primary: argv[1], Secondary: argv[2]}
		inv.PaletteExplicit = true
	case 4:
		inv.CompanionPath = argv[1]
		inv.Palette = domain.Palette{Primary: argv[2], Secondary: argv[3]}
		inv.PaletteExplicit = true
	}

	return inv, nil
}

func (r *Resolver) checkExists(path string) error {
	stat := r.Stat
	if stat == nil {
		stat = os.Stat
	}
	info, err := stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.MissingFileError{Path: path, Usage: Usage(r.Prog)}
		}
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.IsDir() {
		return &domain.MissingFileError{Path: path, Usage: Usage(r.Prog)}
	}
	return nil
}
