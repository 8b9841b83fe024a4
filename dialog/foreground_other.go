//go:build !windows

package dialog

// forceForeground is a no-op where the window manager owns focus.
func forceForeground(hwnd uintptr) {}

// ForegroundRect is only available on Windows.
func ForegroundRect() (Rect, bool) {
	return Rect{}, false
}
