// Package dialog shows a small modal text-entry window and returns what the
// user confirmed.
//
// On Windows the dialog is a native Win32 window (edit box, OK and Clear
// buttons) pumped by the calling thread. Linux and macOS fall back to
// zenity/kdialog and NSAlert respectively.
package dialog

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Request describes one dialog invocation. The dialog centers its fixed
// footprint inside the rectangle (X, Y, Width, Height).
type Request struct {
	Title  string
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
}

// Rect is a screen rectangle in the unsigned form the host boundary uses.
type Rect struct {
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
}

// NewRequest builds a request that centers the dialog inside r.
func NewRequest(title string, r Rect) Request {
	return Request{Title: title, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Outcome is delivered by OpenAsync once the session ends.
type Outcome struct {
	Text string
	Err  error
}

// Option configures a single Open call.
type Option func(*options)

type options struct {
	log        logrus.FieldLogger
	notify     func(title, message string)
	foreground func(hwnd uintptr)
}

// WithLogger sets the logger used for session lifecycle events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithNotifier installs a hook that is told about setup and teardown
// failures, e.g. to show a blocking alert box.
func WithNotifier(fn func(title, message string)) Option {
	return func(o *options) {
		o.notify = fn
	}
}

// WithForeground replaces the foreground-forcing primitive. Passing a no-op
// function leaves focus handling to the window manager.
func WithForeground(fn func(hwnd uintptr)) Option {
	return func(o *options) {
		if fn != nil {
			o.foreground = fn
		}
	}
}

func newOptions(opts []Option) options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	o := options{
		log:        discard,
		foreground: forceForeground,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Open shows the dialog and blocks until the user dismisses it. It returns
// the text committed with OK, or "" when nothing was confirmed.
//
// A *SetupError means no dialog was shown. A *TeardownError is returned
// together with the captured text.
func Open(req Request, opts ...Option) (string, error) {
	o := newOptions(opts)
	id := uuid.NewString()
	log := o.log.WithField("session", id)

	b := Place(req)
	log.WithFields(logrus.Fields{
		"x":      b.X,
		"y":      b.Y,
		"width":  b.Width,
		"height": b.Height,
	}).Debug("Opening text box")

	var text string
	err := validateTitle(req.Title)
	if err == nil {
		text, err = openPlatform(id, req, o, log)
	}
	if err != nil {
		log.WithError(err).Warn("Text box failed")
		if o.notify != nil {
			o.notify("Error", err.Error())
		}
		return text, err
	}

	log.WithField("length", len([]rune(text))).Debug("Text box closed")
	return text, nil
}

func validateTitle(title string) error {
	if strings.IndexByte(title, 0) >= 0 {
		return &SetupError{Step: "title", Err: errNulInTitle}
	}
	return nil
}

// OpenAsync runs Open on its own goroutine. The returned channel receives
// exactly one Outcome and is then closed.
func OpenAsync(req Request, opts ...Option) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		text, err := Open(req, opts...)
		ch <- Outcome{Text: text, Err: err}
	}()
	return ch
}
