package dialog

import (
	"errors"
	"syscall"
	"testing"
)

func TestSetupError(t *testing.T) {
	cause := syscall.Errno(1410)
	err := error(&SetupError{Step: "RegisterClassEx", Err: cause})

	if !errors.Is(err, ErrSetup) {
		t.Errorf("errors.Is(%v, ErrSetup) = false, want true", err)
	}
	if errors.Is(err, ErrTeardown) {
		t.Errorf("errors.Is(%v, ErrTeardown) = true, want false", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, cause) = false, want true", err)
	}

	var se *SetupError
	if !errors.As(err, &se) || se.Step != "RegisterClassEx" {
		t.Errorf("errors.As did not recover step, got %+v", se)
	}
}

func TestTeardownError(t *testing.T) {
	cause := errors.New("class still has windows")
	err := error(&TeardownError{Err: cause})

	if !errors.Is(err, ErrTeardown) {
		t.Errorf("errors.Is(%v, ErrTeardown) = false, want true", err)
	}
	if errors.Is(err, ErrSetup) {
		t.Errorf("errors.Is(%v, ErrSetup) = true, want false", err)
	}
	if want := "call to UnregisterClass failed: class still has windows"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
