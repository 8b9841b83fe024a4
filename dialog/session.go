package dialog

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type state int

const (
	stateOpen state = iota
	stateClosed
)

// controls is the live window as seen by the event handler.
type controls interface {
	EditText() []uint16
	SetEditText(text []uint16)
	RequestClose()
	Quit()
}

// session is the per-window context: it owns the committed text and
// reacts to button commands and the destroy notification.
type session struct {
	id    string
	buf   Buffer
	state state
	ui    controls
	log   logrus.FieldLogger
}

func newSession(id string, log logrus.FieldLogger) *session {
	return &session{id: id, log: log}
}

func (s *session) attach(ui controls) {
	s.ui = ui
}

// command handles a WM_COMMAND control identifier. It reports false for
// identifiers the session does not own so the caller can fall through to
// default handling.
func (s *session) command(id int) bool {
	if s.state != stateOpen || s.ui == nil {
		return false
	}

	switch id {
	case IDConfirm:
		n := s.buf.Commit(s.ui.EditText())
		s.log.WithField("length", n).Debug("Text confirmed")
		s.ui.RequestClose()
		return true
	case IDClear:
		s.buf.Reset()
		s.ui.SetEditText(nil)
		s.log.Debug("Text cleared")
		return true
	}
	return false
}

// destroy ends the message loop. Later events are ignored.
func (s *session) destroy() {
	if s.state == stateClosed {
		return
	}
	s.state = stateClosed
	if s.ui != nil {
		s.ui.Quit()
	}
}

// abandon closes the session without posting a quit message, for windows
// torn down during setup.
func (s *session) abandon() {
	s.state = stateClosed
}

func (s *session) result() string {
	return s.buf.String()
}

// Sessions are looked up from the handle stored in the window's user data
// slot, never from a Go pointer handed to the OS.
var sessions = struct {
	sync.Mutex
	next uintptr
	m    map[uintptr]*session
}{m: make(map[uintptr]*session)}

func registerSession(s *session) uintptr {
	sessions.Lock()
	defer sessions.Unlock()
	sessions.next++
	h := sessions.next
	sessions.m[h] = s
	return h
}

func lookupSession(h uintptr) *session {
	if h == 0 {
		return nil
	}
	sessions.Lock()
	defer sessions.Unlock()
	return sessions.m[h]
}

func unregisterSession(h uintptr) {
	sessions.Lock()
	defer sessions.Unlock()
	delete(sessions.m, h)
}
