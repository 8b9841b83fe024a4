// Package clipboard copies confirmed text to the system clipboard and can
// paste it into the focused window.
package clipboard

import "time"

// pasteDelay gives the previously focused window time to regain focus
// after the dialog closes.
const pasteDelay = 50 * time.Millisecond

// Copy places text on the system clipboard.
func Copy(text string) error {
	return copyPlatform(text)
}

// Paste simulates the platform paste shortcut in the focused window.
func Paste() error {
	time.Sleep(pasteDelay)
	return pastePlatform()
}
