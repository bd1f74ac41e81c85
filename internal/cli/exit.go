package cli

import "errors"

// Exit codes, one per failure stage, so scripts can tell what went wrong
// without parsing stderr.
const (
	ExitOK       = 0
	ExitInternal = 1
	ExitUsage    = 2
	ExitConfig   = 3
	ExitProfile  = 4
	ExitConnect  = 5
	ExitQuery    = 6
	ExitFetch    = 7
)

// exitError pins a failure to the exit code of the stage it came from.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode maps err to the process exit status. Stage failures keep their
// code; anything uncoded came from argument or flag parsing and counts as
// a usage error.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var coded *exitError
	if errors.As(err, &coded) {
		return coded.code
	}
	return ExitUsage
}
