//go:build darwin

package clipboard

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa

#import <Cocoa/Cocoa.h>
#include <stdlib.h>

void copyToClipboardNative(const char *text) {
    NSString *str = [NSString stringWithUTF8String:text];
    NSPasteboard *pasteboard = [NSPasteboard generalPasteboard];
    [pasteboard clearContents];
    [pasteboard setString:str forType:NSPasteboardTypeString];
}
*/
import "C"
import (
	"os/exec"
	"unsafe"
)

func copyPlatform(text string) error {
	cstr := C.CString(text)
	defer C.free(unsafe.Pointer(cstr))
	C.copyToClipboardNative(cstr)
	return nil
}

func pastePlatform() error {
	return exec.Command("osascript", "-e",
		`tell application "System Events" to keystroke "v" using command down`).Run()
}
