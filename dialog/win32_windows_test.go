//go:build windows

package dialog

import (
	"testing"

	"golang.org/x/sys/windows"
)

func TestWindowTitleRoundTrip(t *testing.T) {
	static, err := windows.UTF16PtrFromString("STATIC")
	if err != nil {
		t.Fatal(err)
	}

	titles := []string{
		"Enter name",
		"What is your name ?",
		"勇者の名前",
		"Ünïcödé ☢ ♫",
		"emoji 😀 pair",
	}

	for _, title := range titles {
		p, err := windows.UTF16PtrFromString(title)
		if err != nil {
			t.Fatalf("UTF16PtrFromString(%q): %v", title, err)
		}
		hwnd, err := createWindow(0, static, p, 0, Bounds{Width: DialogWidth, Height: DialogHeight}, 0, 0, moduleHandle(), 0)
		if err != nil {
			t.Fatalf("createWindow(%q): %v", title, err)
		}

		buf := make([]uint16, 256)
		n := getWindowText(hwnd, buf)
		destroyWindow(hwnd)

		if got := windows.UTF16ToString(buf[:n]); got != title {
			t.Errorf("title round trip = %q, want %q", got, title)
		}
	}
}
