//go:build windows

package main

import "golang.design/x/hotkey"

// modifierFor maps config names to Windows modifiers.
// cmd is treated as the Windows key and option as Alt.
func modifierFor(name string) (hotkey.Modifier, bool) {
	switch name {
	case "ctrl":
		return hotkey.ModCtrl, true
	case "alt", "option":
		return hotkey.ModAlt, true
	case "shift":
		return hotkey.ModShift, true
	case "win", "cmd":
		return hotkey.ModWin, true
	}
	return 0, false
}
