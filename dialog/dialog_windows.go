//go:build windows

package dialog

import (
	"runtime"
	"unsafe"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

var wndProcCallback = windows.NewCallback(wndProc)

// window is the live Win32 dialog. It implements controls for the session.
type window struct {
	hwnd     windows.HWND
	edit     windows.HWND
	ok       windows.HWND
	clear    windows.HWND
	instance windows.Handle
}

func (w *window) EditText() []uint16 {
	buf := make([]uint16, MaxTextLength+1)
	n := getWindowText(w.edit, buf)
	return buf[:n]
}

func (w *window) SetEditText(text []uint16) {
	terminated := make([]uint16, len(text)+1)
	copy(terminated, text)
	setWindowText(w.edit, &terminated[0])
}

func (w *window) RequestClose() {
	postMessage(w.hwnd, wmClose, 0, 0)
}

func (w *window) Quit() {
	procPostQuitMessage.Call(0)
}

func (w *window) createControls() error {
	edit, err := windows.UTF16PtrFromString("EDIT")
	if err != nil {
		return &SetupError{Step: "CreateWindowEx (edit)", Err: err}
	}
	button, err := windows.UTF16PtrFromString("BUTTON")
	if err != nil {
		return &SetupError{Step: "CreateWindowEx (button)", Err: err}
	}
	okLabel, _ := windows.UTF16PtrFromString("OK")
	clearLabel, _ := windows.UTF16PtrFromString("Clear")

	w.edit, err = createWindow(0, edit, nil,
		wsChild|wsVisible|wsBorder|wsTabStop|esMultiline|esLeft|esAutoVScroll,
		editBounds, w.hwnd, 0, w.instance, 0)
	if err != nil {
		return &SetupError{Step: "CreateWindowEx (edit)", Err: err}
	}

	w.ok, err = createWindow(0, button, okLabel,
		wsVisible|wsChild|wsTabStop|bsPushButton|bsFlat,
		okBounds, w.hwnd, IDConfirm, w.instance, 0)
	if err != nil {
		return &SetupError{Step: "CreateWindowEx (OK button)", Err: err}
	}

	w.clear, err = createWindow(0, button, clearLabel,
		wsVisible|wsChild|wsTabStop|bsPushButton|bsFlat,
		clearBounds, w.hwnd, IDClear, w.instance, 0)
	if err != nil {
		return &SetupError{Step: "CreateWindowEx (Clear button)", Err: err}
	}
	return nil
}

func (w *window) setFont(font windows.Handle) {
	for _, c := range []windows.HWND{w.ok, w.clear, w.edit} {
		sendMessage(c, wmSetFont, uintptr(font), 1)
	}
}

func openPlatform(id string, req Request, o options, log logrus.FieldLogger) (string, error) {
	// The message queue belongs to the thread that created the window.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	title, err := windows.UTF16PtrFromString(req.Title)
	if err != nil {
		return "", &SetupError{Step: "title", Err: err}
	}
	className, err := windows.UTF16PtrFromString(ClassName + " " + id)
	if err != nil {
		return "", &SetupError{Step: "RegisterClassEx", Err: err}
	}

	s := newSession(id, log)
	handle := registerSession(s)
	defer unregisterSession(handle)

	instance := moduleHandle()
	wc := wndClassEx{
		style:      csHRedraw | csVRedraw,
		wndProc:    wndProcCallback,
		instance:   instance,
		icon:       loadIcon(idiApplication),
		cursor:     loadCursor(idcArrow),
		background: windows.Handle(colorWindow + 1),
		className:  className,
		iconSm:     loadIcon(idiApplication),
	}
	if err := registerClass(&wc); err != nil {
		return "", &SetupError{Step: "RegisterClassEx", Err: err}
	}

	fail := func(hwnd windows.HWND, err error) (string, error) {
		if hwnd != 0 {
			s.abandon()
			destroyWindow(hwnd)
		}
		if uerr := unregisterClass(className, instance); uerr != nil {
			log.WithError(uerr).Debug("Unregistering class after failed setup")
		}
		return "", err
	}

	hwnd, err := createWindow(wsExTopmost, className, title, wsSysMenu,
		Place(req), 0, 0, instance, handle)
	if err != nil {
		return fail(0, &SetupError{Step: "CreateWindowEx", Err: err})
	}

	w := &window{hwnd: hwnd, instance: instance}
	if err := w.createControls(); err != nil {
		return fail(hwnd, err)
	}

	font, err := createFont(FontFace, FontHeight)
	if err != nil {
		return fail(hwnd, &SetupError{Step: "CreateFontIndirect", Err: err})
	}
	defer deleteObject(font)
	w.setFont(font)

	s.attach(w)

	o.foreground(uintptr(hwnd))
	procShowWindow.Call(uintptr(hwnd), swShowNormal)
	procUpdateWindow.Call(uintptr(hwnd))
	procSetFocus.Call(uintptr(w.edit))

	log.Debug("Text box shown")

	if err := pumpMessages(); err != nil {
		return fail(hwnd, &SetupError{Step: "GetMessage", Err: err})
	}

	text := s.result()
	if err := unregisterClass(className, instance); err != nil {
		return text, &TeardownError{Err: err}
	}
	return text, nil
}

// pumpMessages runs the thread's message loop until WM_QUIT.
func pumpMessages() error {
	var m msg
	for {
		ret, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(ret) {
		case -1:
			return err
		case 0:
			return nil
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func wndProc(hwnd windows.HWND, message uint32, wParam, lParam uintptr) uintptr {
	switch message {
	case wmNCCreate:
		cs := (*createStruct)(unsafe.Pointer(lParam))
		setWindowLongPtr(hwnd, gwlpUserData, cs.createParams)

	case wmCommand:
		if s := lookupSession(getWindowLongPtr(hwnd, gwlpUserData)); s != nil {
			if s.command(int(loWord(wParam))) {
				return 0
			}
		}

	case wmDestroy:
		if s := lookupSession(getWindowLongPtr(hwnd, gwlpUserData)); s != nil {
			s.destroy()
			return 0
		}
	}
	return defWindowProc(hwnd, message, wParam, lParam)
}
