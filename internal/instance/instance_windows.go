//go:build windows

package instance

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// Lock is held until Release is called or the process exits.
type Lock struct {
	path   string
	handle windows.Handle
}

// Acquire takes a named mutex derived from the lock file name and writes
// the PID to path. It returns ErrRunning when another holder exists.
func Acquire(path string) (*Lock, error) {
	name := "Global\\" + filepath.Base(path) + "-single-instance"
	mutexName, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create mutex name: %w", err)
	}

	handle, err := windows.CreateMutex(nil, false, mutexName)
	if err != nil {
		if err == windows.ERROR_ALREADY_EXISTS {
			if handle != 0 {
				windows.CloseHandle(handle)
			}
			return nil, ErrRunning
		}
		return nil, fmt.Errorf("failed to create mutex: %w", err)
	}

	// WAIT_OBJECT_0 means we own the mutex
	event, err := windows.WaitForSingleObject(handle, 0)
	if err != nil || event != windows.WAIT_OBJECT_0 {
		windows.CloseHandle(handle)
		return nil, ErrRunning
	}

	writePIDFile(path)
	return &Lock{path: path, handle: handle}, nil
}

// Release drops the mutex and removes the PID file.
func (l *Lock) Release() {
	if l == nil || l.handle == 0 {
		return
	}
	windows.ReleaseMutex(l.handle)
	windows.CloseHandle(l.handle)
	l.handle = 0
	os.Remove(l.path)
}

func writePIDFile(path string) {
	os.MkdirAll(filepath.Dir(path), 0755)
	f, err := os.Create(path)
	if err == nil {
		fmt.Fprintf(f, "%d\n", os.Getpid())
		f.Close()
	}
}
