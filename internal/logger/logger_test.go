package logger

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"textbox/internal/config"
)

func TestLoggerBeforeInit(t *testing.T) {
	log = nil
	// Helpers must be safe to call before InitLogger.
	LogInfo("ignored %d", 1)
	LogDialogResult("open", "text", nil)
	LogScriptExecuted("x.lua", nil)
	SetLogLevel(true)

	if Logger() == nil {
		t.Fatal("Logger() = nil before init")
	}
}

func TestInitLoggerWithConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultLogConfig()
	cfg.Compress = false

	if err := InitLoggerWithConfig(cfg, dir); err != nil {
		t.Fatalf("InitLoggerWithConfig: %v", err)
	}
	t.Cleanup(func() { Close() })

	LogDialogResult("tray", "secret words", nil)
	LogDialogResult("open", "", errors.New("call to RegisterClassEx failed"))
	LogDebug("hidden at info level")

	SetLogLevel(true)
	if got := log.GetLevel(); got != logrus.DebugLevel {
		t.Fatalf("level after SetLogLevel(true) = %v, want debug", got)
	}
	LogHotkeyTriggered("Ctrl+Alt+T")

	data, err := os.ReadFile(GetLogPath(dir))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"Logger initialized",
		"Text box closed",
		"length=12",
		"RegisterClassEx",
		"Hotkey triggered: Ctrl+Alt+T",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"secret words", "hidden at info level"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("log unexpectedly contains %q", unwanted)
		}
	}
}

func TestShutdown(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultLogConfig()
	cfg.Compress = false

	if err := InitLoggerWithConfig(cfg, dir); err != nil {
		t.Fatalf("InitLoggerWithConfig: %v", err)
	}
	LogDialogResult("open", "", errors.New("call to zenity failed: exit status 255"))

	if err := Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if log != nil || rotator != nil {
		t.Fatal("Shutdown left the logger open")
	}
	// A second call, or a call without init, is a no-op.
	if err := Shutdown(); err != nil {
		t.Fatalf("second Shutdown: %v", err)
	}

	data, err := os.ReadFile(GetLogPath(dir))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"Text box failed", "textbox shutting down"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
