//go:build linux

package main

import "golang.design/x/hotkey"

// modifierFor maps config names to X11 modifiers.
// Mod1 is typically Alt and Mod4 the Super key on X11.
func modifierFor(name string) (hotkey.Modifier, bool) {
	switch name {
	case "ctrl":
		return hotkey.ModCtrl, true
	case "alt", "option":
		return hotkey.Mod1, true
	case "shift":
		return hotkey.ModShift, true
	case "win", "cmd":
		return hotkey.Mod4, true
	}
	return 0, false
}
