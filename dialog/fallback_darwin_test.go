//go:build darwin

package dialog

import (
	"errors"
	"runtime"
	"testing"
)

// Keep the main thread on the main goroutine so tests always run elsewhere.
func init() {
	runtime.LockOSThread()
}

func TestOpenOffMainThreadWithoutRunLoop(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		_, err := Open(Request{Title: "Enter name", Width: 800, Height: 600})
		done <- err
	}()

	err := <-done
	var se *SetupError
	if !errors.As(err, &se) || se.Step != "NSAlert" {
		t.Fatalf("Open err = %v, want *SetupError step NSAlert", err)
	}
	if !errors.Is(err, errNoMainThread) {
		t.Fatalf("Open err = %v, want errNoMainThread", err)
	}
}
