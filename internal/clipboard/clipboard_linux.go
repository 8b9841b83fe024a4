//go:build linux

package clipboard

import (
	"os/exec"
	"strings"
)

func copyPlatform(text string) error {
	// Try xclip first, then xsel
	cmd := exec.Command("xclip", "-selection", "clipboard")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err == nil {
		return nil
	}

	cmd = exec.Command("xsel", "--clipboard", "--input")
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

func pastePlatform() error {
	return exec.Command("xdotool", "key", "--clearmodifiers", "ctrl+v").Run()
}
