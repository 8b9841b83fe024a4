//go:build !darwin && !windows && !linux

package clipboard

import "fmt"

func copyPlatform(text string) error {
	return fmt.Errorf("clipboard not supported on this platform")
}

func pastePlatform() error {
	return fmt.Errorf("paste not supported on this platform")
}
