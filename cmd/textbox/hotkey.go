package main

import (
	"fmt"
	"strings"
	"sync"

	"golang.design/x/hotkey"

	"textbox/internal/config"
	"textbox/internal/logger"
)

var (
	hotkeyMu   sync.Mutex
	textHotkey *hotkey.Hotkey
	hotkeyStop chan struct{}
)

var hotkeyKeys = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
}

// parseHotkey converts the config names into library values.
func parseHotkey(hc config.HotkeyConfig) ([]hotkey.Modifier, hotkey.Key, error) {
	if err := hc.Validate(); err != nil {
		return nil, 0, err
	}
	mods := make([]hotkey.Modifier, 0, len(hc.Modifiers))
	for _, name := range hc.Modifiers {
		m, ok := modifierFor(strings.ToLower(name))
		if !ok {
			return nil, 0, fmt.Errorf("modifier %q is not available on this platform", name)
		}
		mods = append(mods, m)
	}
	key, ok := hotkeyKeys[strings.ToLower(hc.Key)]
	if !ok {
		return nil, 0, fmt.Errorf("unknown hotkey key %q", hc.Key)
	}
	return mods, key, nil
}

// registerHotkey binds the configured shortcut to fn, replacing any
// previous binding.
func registerHotkey(hc config.HotkeyConfig, fn func()) error {
	mods, key, err := parseHotkey(hc)
	if err != nil {
		return err
	}

	CleanupHotkey()

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register %s: %w", hc.String(), err)
	}

	stop := make(chan struct{})
	hotkeyMu.Lock()
	textHotkey = hk
	hotkeyStop = stop
	hotkeyMu.Unlock()

	desc := hc.String()
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-hk.Keydown():
				logger.LogHotkeyTriggered(desc)
				fn()
			}
		}
	}()

	logger.LogInfo("Registered hotkey %s", desc)
	return nil
}

// CleanupHotkey unregisters the shortcut
func CleanupHotkey() {
	hotkeyMu.Lock()
	defer hotkeyMu.Unlock()
	if hotkeyStop != nil {
		close(hotkeyStop)
		hotkeyStop = nil
	}
	if textHotkey != nil {
		textHotkey.Unregister()
		textHotkey = nil
	}
}
