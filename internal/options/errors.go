package options

import (
	"errors"
	"fmt"
)

// UsageError indicates the command line itself is malformed: a missing
// positional argument, a half-specified flag pair, or a missing required
// flag combination.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// ValidationError indicates a flag value that parsed but failed a domain
// check: wrong list arity, a value outside a closed enumeration, or bounds
// outside the envelope of the selected phase.
type ValidationError struct {
	Flag string
	Msg  string
}

func (e *ValidationError) Error() string {
	if e.Flag == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Flag, e.Msg)
}

// InputError indicates the station database path does not exist.
type InputError struct {
	Path string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input file %s does not exist", e.Path)
}

func usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

func invalidf(flag, format string, args ...any) error {
	return &ValidationError{Flag: flag, Msg: fmt.Sprintf(format, args...)}
}

// ExitCode maps a resolution error to a process exit code. A missing input
// file exits 1; everything else — usage and validation failures, but also
// flag-parsing errors raised by the CLI library itself — is a usage failure
// and exits 2.
func ExitCode(err error) int {
	var input *InputError
	if errors.As(err, &input) {
		return 1
	}
	return 2
}
