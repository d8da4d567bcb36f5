package cli

import "fmt"

// Process exit codes.
const (
	ExitOK     = 0
	ExitConfig = 1 // Bad flags, config file or log file.
	ExitRoot   = 2 // Root directory missing or not a directory.
)

// ExitError carries a non-zero exit code out of RunE without calling os.Exit.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the wrapped error message.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
