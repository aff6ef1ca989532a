package domain

import (
	"errors"
	"fmt"
)

// ErrEntryPointNotFound is returned when the configuration has no intracellular element.
var ErrEntryPointNotFound = errors.New("entry point <" + EntryPointTag + "> not found")

// ErrMarkerNotFound is returned when a companion file lacks the filename marker.
var ErrMarkerNotFound = errors.New("marker " + CompanionMarker + " not found")

// UsageError reports a wrong number of positional arguments.
type UsageError struct {
	Got   int    // Number of positional arguments supplied
	Usage string // Accepted call pattern
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("too many arguments (%d)\n%s", e.Got, e.Usage)
}

// MissingFileError reports an explicit configuration path that does not exist.
type MissingFileError struct {
	Path  string
	Usage string
}

func (e *MissingFileError) Error() string {
	if e.Usage == "" {
		return fmt.Sprintf("%s does not exist", e.Path)
	}
	return fmt.Sprintf("%s does not exist\n%s", e.Path, e.Usage)
}

// ParseError reports configuration content that is not well-formed XML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Cannot parse %s - check it's XML syntax: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingAttributeError reports a map element without a required attribute.
type MissingAttributeError struct {
	Index     int    // 1-based position among the map siblings
	Attribute string // species or substrate
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("<%s> #%d: missing required attribute %q", MapTag, e.Index, e.Attribute)
}
