package dialog

import (
	"errors"
	"fmt"
)

var (
	// ErrSetup matches every *SetupError.
	ErrSetup = errors.New("text box setup failed")
	// ErrTeardown matches every *TeardownError.
	ErrTeardown = errors.New("text box teardown failed")
	// ErrUnsupported is returned when no dialog backend exists on this platform.
	ErrUnsupported = errors.New("text box is not supported on this platform")

	errNulInTitle   = errors.New("title contains a NUL character")
	errNoMainThread = errors.New("not on the main thread and no event loop is running")
)

// SetupError reports that the dialog could not be shown. Step names the
// call that failed.
type SetupError struct {
	Step string
	Err  error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("call to %s failed: %v", e.Step, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

func (e *SetupError) Is(target error) bool { return target == ErrSetup }

// TeardownError reports that cleanup failed after the text was captured.
type TeardownError struct {
	Err error
}

func (e *TeardownError) Error() string {
	return fmt.Sprintf("call to UnregisterClass failed: %v", e.Err)
}

func (e *TeardownError) Unwrap() error { return e.Err }

func (e *TeardownError) Is(target error) bool { return target == ErrTeardown }
