// Package instance keeps a single tray host running per user.
package instance

import (
	"errors"
	"os"
	"path/filepath"
)

// Name identifies the tray host lock.
const Name = "textbox"

// ErrRunning is returned when another process already holds the lock.
var ErrRunning = errors.New("another instance of textbox is already running")

// LockPath returns the lock file used for name.
func LockPath(name string) string {
	// Use a standard location for the lock file
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".config", name+".lock")
}
