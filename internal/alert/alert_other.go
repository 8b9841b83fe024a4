//go:build !windows

package alert

// Elsewhere the failure is only logged.
func showPlatform(title, message string) {}
