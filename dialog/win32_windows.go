//go:build windows

package dialog

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	// Window class and lifetime
	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procUnregisterClassW = user32.NewProc("UnregisterClassW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procShowWindow       = user32.NewProc("ShowWindow")
	procUpdateWindow     = user32.NewProc("UpdateWindow")
	procSetFocus         = user32.NewProc("SetFocus")
	procLoadCursorW      = user32.NewProc("LoadCursorW")
	procLoadIconW        = user32.NewProc("LoadIconW")
	procSetWindowLongPtr = user32.NewProc(longPtrProc("SetWindowLong"))
	procGetWindowLongPtr = user32.NewProc(longPtrProc("GetWindowLong"))

	// Messages
	procGetMessageW      = user32.NewProc("GetMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
	procPostMessageW     = user32.NewProc("PostMessageW")
	procSendMessageW     = user32.NewProc("SendMessageW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")

	// Text
	procGetWindowTextW = user32.NewProc("GetWindowTextW")
	procSetWindowTextW = user32.NewProc("SetWindowTextW")

	// Foreground
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetSystemMetrics         = user32.NewProc("GetSystemMetrics")

	// GDI
	procCreateFontIndirectW = gdi32.NewProc("CreateFontIndirectW")
	procDeleteObject        = gdi32.NewProc("DeleteObject")

	procGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")
)

const (
	wmDestroy  = 0x0002
	wmClose    = 0x0010
	wmSetFont  = 0x0030
	wmNCCreate = 0x0081
	wmCommand  = 0x0111

	wsChild   = 0x40000000
	wsVisible = 0x10000000
	wsBorder  = 0x00800000
	wsSysMenu = 0x00080000
	wsTabStop = 0x00010000

	wsExTopmost = 0x00000008

	esLeft        = 0x0000
	esMultiline   = 0x0004
	esAutoVScroll = 0x0040

	bsPushButton = 0x00000000
	bsFlat       = 0x00008000

	csVRedraw = 0x0001
	csHRedraw = 0x0002

	colorWindow    = 5
	idcArrow       = 32512
	idiApplication = 32512

	gwlpUserData = -21

	swShowNormal = 1

	defaultCharset = 1

	smCxScreen = 0
	smCyScreen = 1
)

type wndClassEx struct {
	size       uint32
	style      uint32
	wndProc    uintptr
	clsExtra   int32
	wndExtra   int32
	instance   windows.Handle
	icon       windows.Handle
	cursor     windows.Handle
	background windows.Handle
	menuName   *uint16
	className  *uint16
	iconSm     windows.Handle
}

type point struct {
	x, y int32
}

type msg struct {
	hwnd    windows.HWND
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      point
}

type rect struct {
	left, top, right, bottom int32
}

// createStruct mirrors the leading field of CREATESTRUCTW.
type createStruct struct {
	createParams uintptr
}

type logFont struct {
	height         int32
	width          int32
	escapement     int32
	orientation    int32
	weight         int32
	italic         byte
	underline      byte
	strikeOut      byte
	charSet        byte
	outPrecision   byte
	clipPrecision  byte
	quality        byte
	pitchAndFamily byte
	faceName       [32]uint16
}

// longPtrProc picks the pointer-sized variant; 32-bit user32 only exports
// the plain Long functions.
func longPtrProc(base string) string {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return base + "PtrW"
	}
	return base + "W"
}

func moduleHandle() windows.Handle {
	h, _, _ := procGetModuleHandleW.Call(0)
	return windows.Handle(h)
}

func registerClass(wc *wndClassEx) error {
	wc.size = uint32(unsafe.Sizeof(*wc))
	atom, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(wc)))
	if atom == 0 {
		return err
	}
	return nil
}

func unregisterClass(className *uint16, instance windows.Handle) error {
	ok, _, err := procUnregisterClassW.Call(uintptr(unsafe.Pointer(className)), uintptr(instance))
	if ok == 0 {
		return err
	}
	return nil
}

func createWindow(exStyle uint32, className, title *uint16, style uint32, b Bounds,
	parent windows.HWND, menu uintptr, instance windows.Handle, param uintptr) (windows.HWND, error) {
	hwnd, _, err := procCreateWindowExW.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(title)),
		uintptr(style),
		uintptr(b.X),
		uintptr(b.Y),
		uintptr(b.Width),
		uintptr(b.Height),
		uintptr(parent),
		menu,
		uintptr(instance),
		param,
	)
	if hwnd == 0 {
		return 0, err
	}
	return windows.HWND(hwnd), nil
}

func destroyWindow(hwnd windows.HWND) {
	procDestroyWindow.Call(uintptr(hwnd))
}

func defWindowProc(hwnd windows.HWND, message uint32, wParam, lParam uintptr) uintptr {
	ret, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(message), wParam, lParam)
	return ret
}

func setWindowLongPtr(hwnd windows.HWND, index int32, value uintptr) {
	procSetWindowLongPtr.Call(uintptr(hwnd), uintptr(index), value)
}

func getWindowLongPtr(hwnd windows.HWND, index int32) uintptr {
	ret, _, _ := procGetWindowLongPtr.Call(uintptr(hwnd), uintptr(index))
	return ret
}

func sendMessage(hwnd windows.HWND, message uint32, wParam, lParam uintptr) uintptr {
	ret, _, _ := procSendMessageW.Call(uintptr(hwnd), uintptr(message), wParam, lParam)
	return ret
}

func postMessage(hwnd windows.HWND, message uint32, wParam, lParam uintptr) {
	procPostMessageW.Call(uintptr(hwnd), uintptr(message), wParam, lParam)
}

func getWindowText(hwnd windows.HWND, buf []uint16) int {
	n, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return int(n)
}

func setWindowText(hwnd windows.HWND, text *uint16) {
	procSetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(text)))
}

func loadCursor(id uintptr) windows.Handle {
	h, _, _ := procLoadCursorW.Call(0, id)
	return windows.Handle(h)
}

func loadIcon(id uintptr) windows.Handle {
	h, _, _ := procLoadIconW.Call(0, id)
	return windows.Handle(h)
}

func createFont(face string, height int32) (windows.Handle, error) {
	lf := logFont{
		height:  height,
		charSet: defaultCharset,
	}
	name, err := windows.UTF16FromString(face)
	if err != nil {
		return 0, err
	}
	copy(lf.faceName[:len(lf.faceName)-1], name)

	h, _, err := procCreateFontIndirectW.Call(uintptr(unsafe.Pointer(&lf)))
	if h == 0 {
		return 0, err
	}
	return windows.Handle(h), nil
}

func deleteObject(h windows.Handle) {
	procDeleteObject.Call(uintptr(h))
}

func loWord(v uintptr) uint16 {
	return uint16(v & 0xffff)
}
