//go:build windows

package dialog

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// forceForeground brings hwnd to the front even when another process owns
// the foreground. The calling thread's input queue is attached to the
// foreground thread's queue for the duration of SetForegroundWindow, which
// sidesteps the foreground lock. This is racy and best effort.
func forceForeground(hwnd uintptr) {
	current := windows.GetCurrentThreadId()

	var target uint32
	if fg, _, _ := procGetForegroundWindow.Call(); fg != 0 {
		tid, _, _ := procGetWindowThreadProcessId.Call(fg, 0)
		target = uint32(tid)
	}

	if target != 0 && target != current {
		procAttachThreadInput.Call(uintptr(current), uintptr(target), 1)
		defer procAttachThreadInput.Call(uintptr(current), uintptr(target), 0)
	}

	procSetForegroundWindow.Call(hwnd)
}

// ForegroundRect returns the bounds of the window that currently holds the
// foreground, or the primary screen when there is none.
func ForegroundRect() (Rect, bool) {
	if fg, _, _ := procGetForegroundWindow.Call(); fg != 0 {
		var r rect
		if ok, _, _ := procGetWindowRect.Call(fg, uintptr(unsafe.Pointer(&r))); ok != 0 {
			return Rect{
				X:      uint32(r.left),
				Y:      uint32(r.top),
				Width:  uint32(r.right - r.left),
				Height: uint32(r.bottom - r.top),
			}, true
		}
	}

	cx, _, _ := procGetSystemMetrics.Call(smCxScreen)
	cy, _, _ := procGetSystemMetrics.Call(smCyScreen)
	return Rect{Width: uint32(cx), Height: uint32(cy)}, true
}
