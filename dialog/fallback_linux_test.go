//go:build linux

package dialog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeTool installs an executable shell script named name as the only
// program on PATH.
func fakeTool(t *testing.T, name, body string) {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)
}

func TestFallbackPromptResults(t *testing.T) {
	tests := []struct {
		tool     string
		body     string
		want     string
		wantStep string
	}{
		{tool: "zenity", body: "echo Alice", want: "Alice"},
		{tool: "zenity", body: "exit 1", want: ""},
		{tool: "zenity", body: "echo 'cannot open display' >&2; exit 255", wantStep: "zenity"},
		{tool: "zenity", body: "exit 5", wantStep: "zenity"},
		{tool: "kdialog", body: "echo Bob", want: "Bob"},
		{tool: "kdialog", body: "exit 1", want: ""},
		{tool: "kdialog", body: "exit 254", wantStep: "kdialog"},
	}

	for _, tt := range tests {
		fakeTool(t, tt.tool, tt.body)

		got, err := Open(Request{Title: "x", Width: 800, Height: 600})
		if tt.wantStep == "" {
			if err != nil || got != tt.want {
				t.Errorf("%s %q: Open = (%q, %v), want (%q, nil)", tt.tool, tt.body, got, err, tt.want)
			}
			continue
		}

		var se *SetupError
		if !errors.As(err, &se) || se.Step != tt.wantStep {
			t.Errorf("%s %q: Open err = %v, want *SetupError step %q", tt.tool, tt.body, err, tt.wantStep)
		}
		if !errors.Is(err, ErrSetup) {
			t.Errorf("%s %q: errors.Is(err, ErrSetup) = false", tt.tool, tt.body)
		}
	}
}

func TestFallbackSetupErrorKeepsStderr(t *testing.T) {
	fakeTool(t, "zenity", "echo 'cannot open display' >&2; exit 255")

	_, err := Open(Request{Title: "x"})
	if err == nil || !strings.Contains(err.Error(), "cannot open display") {
		t.Fatalf("Open err = %v, want tool stderr in message", err)
	}
}

func TestFallbackNoTool(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if _, err := Open(Request{Title: "x"}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Open err = %v, want ErrUnsupported", err)
	}
}
