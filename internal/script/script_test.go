package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestNewEngineCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scripts")
	e, err := NewEngine(dir)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		t.Fatalf("scripts dir not created: %v", err)
	}
	if e.Dir() != dir {
		t.Fatalf("Dir() = %q, want %q", e.Dir(), dir)
	}
}

func TestTransform(t *testing.T) {
	dir := t.TempDir()
	e, err := NewEngine(dir)
	if err != nil {
		t.Fatal(err)
	}
	writeScript(t, dir, "upper.lua", `result = string.upper(ctx.text)`)
	writeScript(t, dir, "tag.lua", `result = "[" .. ctx.title .. "] " .. ctx.text`)
	writeScript(t, dir, "noop.lua", `textbox.log("saw " .. ctx.text)`)
	writeScript(t, dir, "env.lua", `result = textbox.env("TEXTBOX_SCRIPT_TEST")`)
	t.Setenv("TEXTBOX_SCRIPT_TEST", "from env")

	tests := []struct {
		script string
		want   string
	}{
		{"upper.lua", "ALICE"},
		{"tag.lua", "[Enter name] Alice"},
		{"noop.lua", "Alice"},
		{"env.lua", "from env"},
	}

	for _, tt := range tests {
		got, err := e.Transform(tt.script, "Enter name", "Alice")
		if err != nil {
			t.Errorf("Transform(%s): %v", tt.script, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Transform(%s) = %q, want %q", tt.script, got, tt.want)
		}
	}
}

func TestRunResultFlag(t *testing.T) {
	dir := t.TempDir()
	e, _ := NewEngine(dir)
	writeScript(t, dir, "empty.lua", `result = ""`)
	writeScript(t, dir, "none.lua", `local x = 1`)

	if got, ok, err := e.Run("empty.lua", nil); err != nil || !ok || got != "" {
		t.Errorf("empty.lua = (%q, %v, %v), want (\"\", true, nil)", got, ok, err)
	}
	if got, ok, err := e.Run("none.lua", nil); err != nil || ok || got != "" {
		t.Errorf("none.lua = (%q, %v, %v), want (\"\", false, nil)", got, ok, err)
	}
}

func TestCopyHook(t *testing.T) {
	dir := t.TempDir()
	e, _ := NewEngine(dir)
	writeScript(t, dir, "copy.lua", `local ok, err = textbox.copy(ctx.text)
if ok then result = "copied" else result = err end`)

	if got, _, _ := e.Run("copy.lua", map[string]string{"text": "x"}); got != "clipboard not available" {
		t.Errorf("without Copy = %q", got)
	}

	var copied string
	e.Copy = func(text string) error {
		copied = text
		return nil
	}
	if got, _, _ := e.Run("copy.lua", map[string]string{"text": "hello"}); got != "copied" || copied != "hello" {
		t.Errorf("with Copy = %q, copied %q", got, copied)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	e, _ := NewEngine(dir)
	writeScript(t, dir, "broken.lua", `result = (`)

	if _, _, err := e.Run("missing.lua", nil); err == nil || !strings.Contains(err.Error(), "script not found") {
		t.Errorf("missing script err = %v", err)
	}
	if _, _, err := e.Run("broken.lua", nil); err == nil || !strings.Contains(err.Error(), "script error") {
		t.Errorf("syntax error err = %v", err)
	}

	// Transform keeps the original text on failure.
	got, err := e.Transform("broken.lua", "t", "keep me")
	if err == nil || got != "keep me" {
		t.Errorf("Transform on error = (%q, %v)", got, err)
	}
}

func TestPath(t *testing.T) {
	e := &Engine{dir: "/scripts"}
	abs, _ := filepath.Abs(filepath.Join(t.TempDir(), "x.lua"))
	if got := e.Path(abs); got != abs {
		t.Errorf("Path(abs) = %q", got)
	}
	if got := e.Path("x.lua"); got != filepath.Join("/scripts", "x.lua") {
		t.Errorf("Path(rel) = %q", got)
	}
}
