//go:build darwin

package main

import "os/exec"

// openPath opens a file or folder with its default application
func openPath(path string) error {
	return exec.Command("open", path).Start()
}
