//go:build windows

package clipboard

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard    = user32.NewProc("OpenClipboard")
	procCloseClipboard   = user32.NewProc("CloseClipboard")
	procEmptyClipboard   = user32.NewProc("EmptyClipboard")
	procSetClipboardData = user32.NewProc("SetClipboardData")
	procSendInput        = user32.NewProc("SendInput")

	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalFree   = kernel32.NewProc("GlobalFree")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
)

const (
	cfUnicodeText = 13
	gmemMoveable  = 0x0002

	inputKeyboard = 1
	keyeventfUp   = 0x0002
	vkControl     = 0x11
	vkV           = 0x56
)

type keybdInput struct {
	vk        uint16
	scan      uint16
	flags     uint32
	time      uint32
	extraInfo uintptr
}

// input mirrors INPUT. The padding covers the larger MOUSEINPUT member of
// the union.
type input struct {
	typ uint32
	ki  keybdInput
	_   [8]byte
}

func copyPlatform(text string) error {
	units, err := windows.UTF16FromString(text)
	if err != nil {
		return err
	}

	mem, err := globalText(units)
	if err != nil {
		return err
	}

	if r, _, err := procOpenClipboard.Call(0); r == 0 {
		procGlobalFree.Call(mem)
		return fmt.Errorf("OpenClipboard: %w", err)
	}
	defer procCloseClipboard.Call()

	procEmptyClipboard.Call()
	if r, _, err := procSetClipboardData.Call(cfUnicodeText, mem); r == 0 {
		procGlobalFree.Call(mem)
		return fmt.Errorf("SetClipboardData: %w", err)
	}
	// The clipboard owns mem from here on.
	return nil
}

// globalText copies units, including the terminator, into a movable global
// memory block.
func globalText(units []uint16) (uintptr, error) {
	size := uintptr(len(units)) * unsafe.Sizeof(units[0])
	mem, _, err := procGlobalAlloc.Call(gmemMoveable, size)
	if mem == 0 {
		return 0, fmt.Errorf("GlobalAlloc: %w", err)
	}
	p, _, err := procGlobalLock.Call(mem)
	if p == 0 {
		procGlobalFree.Call(mem)
		return 0, fmt.Errorf("GlobalLock: %w", err)
	}
	copy(unsafe.Slice((*uint16)(unsafe.Pointer(p)), len(units)), units)
	procGlobalUnlock.Call(mem)
	return mem, nil
}

func key(vk uint16, up bool) input {
	in := input{typ: inputKeyboard, ki: keybdInput{vk: vk}}
	if up {
		in.ki.flags = keyeventfUp
	}
	return in
}

// pastePlatform presses Ctrl+V in the focused window.
func pastePlatform() error {
	seq := []input{
		key(vkControl, false),
		key(vkV, false),
		key(vkV, true),
		key(vkControl, true),
	}
	n, _, err := procSendInput.Call(
		uintptr(len(seq)),
		uintptr(unsafe.Pointer(&seq[0])),
		unsafe.Sizeof(seq[0]),
	)
	if int(n) != len(seq) {
		return fmt.Errorf("SendInput: %w", err)
	}
	return nil
}
