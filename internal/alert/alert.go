// Package alert reports dialog failures to the user.
package alert

import "textbox/internal/logger"

// Show logs the failure and, where the platform has one, raises a blocking
// error box. It matches the notifier signature accepted by dialog.WithNotifier.
func Show(title, message string) {
	logger.LogError("%s: %s", title, message)
	showPlatform(title, message)
}
