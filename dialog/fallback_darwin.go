//go:build darwin

package dialog

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa

#import <Cocoa/Cocoa.h>
#include <stdlib.h>

// canShowAlert reports whether a modal alert can run: either this is the
// main thread, or a Cocoa run loop is servicing the main queue.
int canShowAlert(void) {
    if ([NSThread isMainThread]) {
        return 1;
    }
    return (NSApp != nil && [NSApp isRunning]) ? 1 : 0;
}

// showTextBox displays an NSAlert with a text field as accessory view.
// Returns "1:<text>" when OK was clicked and "0:" otherwise.
char* showTextBox(const char* title) {
    @autoreleasepool {
        __block NSString* result = nil;
        __block BOOL confirmed = NO;

        void (^showAlert)(void) = ^{
            NSAlert *alert = [[NSAlert alloc] init];
            [alert setMessageText:[NSString stringWithUTF8String:title]];
            [alert addButtonWithTitle:@"OK"];
            [alert addButtonWithTitle:@"Cancel"];
            [alert setAlertStyle:NSAlertStyleInformational];

            NSTextField *input = [[NSTextField alloc] initWithFrame:NSMakeRect(0, 0, 250, 24)];
            [input setFont:[NSFont fontWithName:@"Courier New" size:14]];
            [alert setAccessoryView:input];
            [[alert window] setInitialFirstResponder:input];
            [[alert window] setLevel:NSFloatingWindowLevel];

            [NSApp activateIgnoringOtherApps:YES];
            NSModalResponse response = [alert runModal];

            if (response == NSAlertFirstButtonReturn) {
                result = [input stringValue];
                confirmed = YES;
            }
        };

        if ([NSThread isMainThread]) {
            showAlert();
        } else {
            dispatch_sync(dispatch_get_main_queue(), showAlert);
        }

        if (confirmed && result != nil) {
            NSString *prefixed = [NSString stringWithFormat:@"1:%@", result];
            return strdup([prefixed UTF8String]);
        }
        return strdup("0:");
    }
}
*/
import "C"
import (
	"strings"
	"unsafe"

	"github.com/sirupsen/logrus"
)

func openPlatform(id string, req Request, o options, log logrus.FieldLogger) (string, error) {
	// dispatch_sync to the main queue never returns when nothing runs it.
	if C.canShowAlert() == 0 {
		return "", &SetupError{Step: "NSAlert", Err: errNoMainThread}
	}

	log.Debug("Showing NSAlert text box")

	cTitle := C.CString(req.Title)
	defer C.free(unsafe.Pointer(cTitle))

	cResult := C.showTextBox(cTitle)
	defer C.free(unsafe.Pointer(cResult))

	var buf Buffer
	if out := C.GoString(cResult); strings.HasPrefix(out, "1:") {
		buf.CommitString(out[2:])
	}
	return buf.String(), nil
}
