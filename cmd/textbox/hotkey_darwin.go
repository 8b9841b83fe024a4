//go:build darwin

package main

import "golang.design/x/hotkey"

// modifierFor maps config names to macOS modifiers.
func modifierFor(name string) (hotkey.Modifier, bool) {
	switch name {
	case "ctrl":
		return hotkey.ModCtrl, true
	case "alt", "option":
		return hotkey.ModOption, true
	case "shift":
		return hotkey.ModShift, true
	case "cmd", "win":
		return hotkey.ModCmd, true
	}
	return 0, false
}
