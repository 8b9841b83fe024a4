package dialog

import (
	"io"
	"testing"
	"unicode/utf16"

	"github.com/sirupsen/logrus"
)

// fakeWindow records what the event handler asks of the window.
type fakeWindow struct {
	edit   []uint16
	closes int
	quits  int
	clears int
}

func (f *fakeWindow) typeText(s string) { f.edit = utf16.Encode([]rune(s)) }

func (f *fakeWindow) EditText() []uint16 {
	// The real edit control is read with a MaxTextLength+1 buffer.
	if len(f.edit) > MaxTextLength {
		return f.edit[:MaxTextLength]
	}
	return f.edit
}

func (f *fakeWindow) SetEditText(text []uint16) {
	f.edit = append([]uint16(nil), text...)
	f.clears++
}

func (f *fakeWindow) RequestClose() { f.closes++ }

func (f *fakeWindow) Quit() { f.quits++ }

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestSession() (*session, *fakeWindow) {
	s := newSession("test", testLogger())
	w := &fakeWindow{}
	s.attach(w)
	return s, w
}

func TestSessionConfirm(t *testing.T) {
	s, w := newTestSession()
	w.typeText("Alice")

	if !s.command(IDConfirm) {
		t.Fatal("command(IDConfirm) = false, want true")
	}
	if w.closes != 1 {
		t.Fatalf("close requests = %d, want 1", w.closes)
	}
	s.destroy()
	if got := s.result(); got != "Alice" {
		t.Fatalf("result() = %q, want %q", got, "Alice")
	}
}

func TestSessionClearThenConfirm(t *testing.T) {
	s, w := newTestSession()
	w.typeText("temp")

	if !s.command(IDClear) {
		t.Fatal("command(IDClear) = false, want true")
	}
	if len(w.edit) != 0 {
		t.Fatalf("edit text after Clear = %q, want empty", string(utf16.Decode(w.edit)))
	}
	if w.closes != 0 {
		t.Fatalf("Clear requested %d closes, want 0", w.closes)
	}

	s.command(IDConfirm)
	s.destroy()
	if got := s.result(); got != "" {
		t.Fatalf("result() = %q, want empty", got)
	}
}

func TestSessionClearDiscardsConfirmedText(t *testing.T) {
	s, w := newTestSession()
	w.typeText("first")
	s.command(IDConfirm)
	s.command(IDClear)
	s.destroy()
	if got := s.result(); got != "" {
		t.Fatalf("result() = %q, want empty", got)
	}
}

func TestSessionCloseWithoutConfirm(t *testing.T) {
	tests := []struct {
		name  string
		typed string
	}{
		{name: "nothing typed", typed: ""},
		{name: "typed but not confirmed", typed: "unsent"},
	}

	for _, tt := range tests {
		s, w := newTestSession()
		w.typeText(tt.typed)
		s.destroy()
		if got := s.result(); got != "" {
			t.Errorf("%s: result() = %q, want empty", tt.name, got)
		}
		if w.quits != 1 {
			t.Errorf("%s: quits = %d, want 1", tt.name, w.quits)
		}
	}
}

func TestSessionKeepsLastConfirmedText(t *testing.T) {
	s, w := newTestSession()
	w.typeText("kept")
	s.command(IDConfirm)
	w.typeText("typed after confirm")
	s.destroy()
	if got := s.result(); got != "kept" {
		t.Fatalf("result() = %q, want %q", got, "kept")
	}
}

func TestSessionTruncatesLongText(t *testing.T) {
	s, w := newTestSession()
	long := make([]rune, MaxTextLength+100)
	for i := range long {
		long[i] = 'x'
	}
	w.typeText(string(long))
	s.command(IDConfirm)
	s.destroy()
	if got := len(s.result()); got != MaxTextLength {
		t.Fatalf("len(result()) = %d, want %d", got, MaxTextLength)
	}
}

func TestSessionIgnoresEventsAfterDestroy(t *testing.T) {
	s, w := newTestSession()
	s.destroy()
	s.destroy()
	if w.quits != 1 {
		t.Fatalf("quits = %d, want 1", w.quits)
	}

	w.typeText("late")
	if s.command(IDConfirm) {
		t.Fatal("command(IDConfirm) after destroy = true, want false")
	}
	if got := s.result(); got != "" {
		t.Fatalf("result() = %q, want empty", got)
	}
}

func TestSessionUnknownCommand(t *testing.T) {
	s, w := newTestSession()
	if s.command(42) {
		t.Fatal("command(42) = true, want false")
	}
	if w.closes != 0 || w.clears != 0 {
		t.Fatalf("unknown command touched the window: closes=%d clears=%d", w.closes, w.clears)
	}
}

func TestSessionAbandonDoesNotQuit(t *testing.T) {
	s, w := newTestSession()
	s.abandon()
	s.destroy()
	if w.quits != 0 {
		t.Fatalf("quits = %d, want 0", w.quits)
	}
}

func TestSequentialSessionsAreIndependent(t *testing.T) {
	first, w1 := newTestSession()
	w1.typeText("Alice")
	first.command(IDConfirm)
	first.destroy()

	second, _ := newTestSession()
	second.destroy()

	if got := first.result(); got != "Alice" {
		t.Errorf("first result() = %q, want %q", got, "Alice")
	}
	if got := second.result(); got != "" {
		t.Errorf("second result() = %q, want empty", got)
	}
}

func TestSessionRegistry(t *testing.T) {
	a := newSession("a", testLogger())
	b := newSession("b", testLogger())

	ha := registerSession(a)
	hb := registerSession(b)
	if ha == 0 || hb == 0 || ha == hb {
		t.Fatalf("handles = %d, %d, want distinct non-zero", ha, hb)
	}
	if got := lookupSession(ha); got != a {
		t.Errorf("lookupSession(%d) = %v, want session a", ha, got)
	}
	if got := lookupSession(hb); got != b {
		t.Errorf("lookupSession(%d) = %v, want session b", hb, got)
	}

	unregisterSession(ha)
	if got := lookupSession(ha); got != nil {
		t.Errorf("lookupSession(%d) after unregister = %v, want nil", ha, got)
	}
	if got := lookupSession(0); got != nil {
		t.Errorf("lookupSession(0) = %v, want nil", got)
	}
	unregisterSession(hb)
}
