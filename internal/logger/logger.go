// Package logger sets up the rotating log file shared by the textbox host.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"textbox/internal/config"
)

// LogFileName is the log file created inside the log directory.
const LogFileName = "textbox.log"

var (
	log     *logrus.Logger
	rotator *lumberjack.Logger
)

// InitLoggerWithConfig initializes the logger with the provided configuration,
// writing into dir
func InitLoggerWithConfig(cfg config.LogConfig, dir string) error {
	l := logrus.New()

	// Create log directory if needed
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// Configure lumberjack for log rotation
	lj := &lumberjack.Logger{
		Filename:   GetLogPath(dir),
		MaxSize:    cfg.MaxSizeMB,  // MB - rotate when file reaches this size
		MaxBackups: cfg.MaxBackups, // Number of backup files to keep
		MaxAge:     cfg.MaxAgeDays, // Days to keep old files
		Compress:   cfg.Compress,   // Compress rotated files
		LocalTime:  true,           // Use local time for rotation
	}

	// Write to file, and optionally to stderr. Stdout carries dialog results.
	if cfg.ToStdout {
		l.SetOutput(io.MultiWriter(lj, os.Stderr))
	} else {
		l.SetOutput(lj)
	}

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true, // No colors in log file
	})

	// Default to Info level, Debug mode will change this
	l.SetLevel(logrus.InfoLevel)
	log = l
	rotator = lj

	log.WithFields(logrus.Fields{
		"max_size_mb":  cfg.MaxSizeMB,
		"max_backups":  cfg.MaxBackups,
		"max_age_days": cfg.MaxAgeDays,
		"compress":     cfg.Compress,
		"to_stdout":    cfg.ToStdout,
	}).Info("Logger initialized")
	return nil
}

// Close flushes and closes the log file
func Close() error {
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	log = nil
	return err
}

// Logger returns the shared logger for libraries that take a
// logrus.FieldLogger. Before initialization it returns a logger that
// discards everything.
func Logger() logrus.FieldLogger {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return log
}

// SetLogLevel sets the logging level based on debug mode
func SetLogLevel(debug bool) {
	if log == nil {
		return
	}
	if debug {
		log.SetLevel(logrus.DebugLevel)
		log.Debug("Debug logging enabled")
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.Info("Debug logging disabled")
	}
}

// LogInfo logs an info level message (always logged)
func LogInfo(format string, args ...interface{}) {
	if log != nil {
		log.Infof(format, args...)
	}
}

// LogDebug logs a debug level message (only when debug mode is on)
func LogDebug(format string, args ...interface{}) {
	if log != nil {
		log.Debugf(format, args...)
	}
}

// LogWarn logs a warning level message
func LogWarn(format string, args ...interface{}) {
	if log != nil {
		log.Warnf(format, args...)
	}
}

// LogError logs an error level message
func LogError(format string, args ...interface{}) {
	if log != nil {
		log.Errorf(format, args...)
	}
}

// LogAction logs a user action (always logged at info level)
func LogAction(action string, details string) {
	if log != nil {
		log.WithFields(logrus.Fields{
			"action": action,
		}).Info(details)
	}
}

// LogStartup logs application startup information
func LogStartup(mode, version, commit, buildDate string) {
	if log == nil {
		return
	}
	log.WithFields(logrus.Fields{
		"mode":       mode,
		"version":    version,
		"commit":     commit,
		"build_date": buildDate,
		"pid":        os.Getpid(),
	}).Info("textbox starting")
}

// LogShutdown logs application shutdown
func LogShutdown() {
	if log != nil {
		log.Info("textbox shutting down")
	}
}

// LogConfigLoaded logs when configuration is loaded
func LogConfigLoaded(path string, cfg *config.Config) {
	if log != nil {
		log.WithFields(logrus.Fields{
			"path":   path,
			"title":  cfg.GetTitle(),
			"hotkey": cfg.GetHotkey().String(),
			"script": cfg.Script,
		}).Info("Configuration loaded")
	}
}

// LogDialogResult logs how a dialog session ended (without exposing the text)
func LogDialogResult(source string, text string, err error) {
	if log == nil {
		return
	}
	fields := logrus.Fields{
		"action": "dialog_closed",
		"source": source,
		"length": len([]rune(text)),
	}
	if err != nil {
		fields["error"] = err.Error()
		log.WithFields(fields).Warn("Text box failed")
		return
	}
	log.WithFields(fields).Info("Text box closed")
}

// LogClipboardCopy logs clipboard operations (without exposing content)
func LogClipboardCopy(itemType string, length int) {
	LogAction("clipboard_copy", fmt.Sprintf("Copied %s (%d chars)", itemType, length))
}

// LogScriptExecuted logs when a Lua script is executed
func LogScriptExecuted(scriptName string, err error) {
	if log == nil {
		return
	}
	status := "success"
	fields := logrus.Fields{
		"action": "script_executed",
		"script": scriptName,
	}
	if err != nil {
		status = "failed"
		fields["error"] = err.Error()
	}
	fields["status"] = status
	log.WithFields(fields).Info(fmt.Sprintf("Script executed: %s", scriptName))
}

// LogHotkeyTriggered logs when the hotkey is pressed
func LogHotkeyTriggered(hotkey string) {
	LogDebug("Hotkey triggered: %s", hotkey)
}

// Shutdown logs the shutdown and closes the log file. Safe to call when
// the logger was never initialized.
func Shutdown() error {
	LogShutdown()
	return Close()
}

// GetLogPath returns the path to the log file inside dir
func GetLogPath(dir string) string {
	return filepath.Join(dir, LogFileName)
}
