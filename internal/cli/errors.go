package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/aretw0/sbmltab/pkg/domain"
)

// ExitError carries the message and process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitErrorFor maps a pipeline error onto the message printed to the user.
// Every failure exits with status 1. When ctx is a *SignalContext, a
// cancellation names the signal that caused it.
func exitErrorFor(ctx context.Context, err error) *ExitError {
	var (
		usage   *domain.UsageError
		missing *domain.MissingFileError
		parse   *domain.ParseError
		attr    *domain.MissingAttributeError
	)

	msg := err.Error()
	switch {
	case errors.As(err, &usage):
		msg = usage.Usage
	case errors.As(err, &missing):
		msg = missing.Error()
	case errors.As(err, &parse):
		msg = fmt.Sprintf("Cannot parse %s - check it's XML syntax.\n%v", parse.Path, parse.Err)
	case errors.As(err, &attr):
		msg = "Invalid map entry: " + attr.Error()
	case errors.Is(err, domain.ErrEntryPointNotFound):
		msg = "No <" + domain.EntryPointTag + "> element found; nothing to generate."
	case errors.Is(err, domain.ErrMarkerNotFound):
		msg = fmt.Sprintf("%v\nThe GUI module must contain a line assigning %s.", err, domain.CompanionMarker)
	case errors.Is(err, context.Canceled):
		msg = "Interrupted."
		if sc, ok := ctx.(*SignalContext); ok && sc.Signal() != nil {
			msg = fmt.Sprintf("Interrupted (%s).", signalName(sc.Signal()))
		}
	}
	return &ExitError{Code: 1, Message: msg, Err: err}
}

func signalName(sig os.Signal) string {
	switch sig {
	case os.Interrupt:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	}
	return sig.String()
}
