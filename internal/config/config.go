// Package config loads the textbox configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTitle is used when neither the config nor the caller sets a title.
const DefaultTitle = "Input text window"

// DefaultHistoryMinutes is how long confirmed texts stay in memory.
const DefaultHistoryMinutes = 10

// LogConfig represents logging configuration
type LogConfig struct {
	MaxSizeMB  int  `json:"max_size_mb,omitempty"`  // Max log file size in MB before rotation (default: 10)
	MaxBackups int  `json:"max_backups,omitempty"`  // Max number of old log files to keep (default: 7)
	MaxAgeDays int  `json:"max_age_days,omitempty"` // Max days to retain old log files (default: 7)
	Compress   bool `json:"compress,omitempty"`     // Compress rotated log files (default: true)
	ToStdout   bool `json:"to_stdout,omitempty"`    // Also write logs to stdout (default: false)
}

// DefaultLogConfig returns the default logging configuration
func DefaultLogConfig() LogConfig {
	return LogConfig{
		MaxSizeMB:  10,
		MaxBackups: 7,
		MaxAgeDays: 7,
		Compress:   true,
		ToStdout:   false,
	}
}

// HotkeyConfig names the global shortcut that opens the dialog from the tray.
type HotkeyConfig struct {
	Modifiers []string `json:"modifiers,omitempty"` // ctrl, alt, shift, win, cmd, option
	Key       string   `json:"key,omitempty"`       // a-z or 0-9
}

// DefaultHotkey returns Ctrl+Alt+T.
func DefaultHotkey() HotkeyConfig {
	return HotkeyConfig{Modifiers: []string{"ctrl", "alt"}, Key: "t"}
}

var knownModifiers = map[string]bool{
	"ctrl":   true,
	"alt":    true,
	"shift":  true,
	"win":    true,
	"cmd":    true,
	"option": true,
}

// Validate checks the modifiers and key names.
func (h HotkeyConfig) Validate() error {
	if len(h.Modifiers) == 0 {
		return fmt.Errorf("hotkey needs at least one modifier")
	}
	for _, m := range h.Modifiers {
		if !knownModifiers[strings.ToLower(m)] {
			return fmt.Errorf("unknown hotkey modifier %q", m)
		}
	}
	if len(h.Key) != 1 {
		return fmt.Errorf("hotkey key must be a single letter or digit, got %q", h.Key)
	}
	k := strings.ToLower(h.Key)[0]
	if !(k >= 'a' && k <= 'z') && !(k >= '0' && k <= '9') {
		return fmt.Errorf("hotkey key must be a single letter or digit, got %q", h.Key)
	}
	return nil
}

// String renders the hotkey the way it is shown in the tray menu.
func (h HotkeyConfig) String() string {
	parts := make([]string, 0, len(h.Modifiers)+1)
	for _, m := range h.Modifiers {
		m = strings.ToLower(m)
		if m == "" {
			continue
		}
		parts = append(parts, strings.ToUpper(m[:1])+m[1:])
	}
	parts = append(parts, strings.ToUpper(h.Key))
	return strings.Join(parts, "+")
}

// Config represents the application configuration
type Config struct {
	Title             string        `json:"title,omitempty"`               // Dialog title used by the tray and by open without --title
	Hotkey            *HotkeyConfig `json:"hotkey,omitempty"`              // Tray shortcut (default: Ctrl+Alt+T)
	PasteAfterConfirm bool          `json:"paste_after_confirm,omitempty"` // Paste the confirmed text into the window that had focus
	AlertOnFailure    bool          `json:"alert_on_failure,omitempty"`    // Show a blocking alert when the dialog cannot be shown
	HistoryMinutes    int           `json:"history_minutes,omitempty"`     // How long confirmed texts are kept in memory (default: 10)
	Script            string        `json:"script,omitempty"`              // Optional Lua script applied to confirmed text (filename in scripts folder)
	Logging           *LogConfig    `json:"logging,omitempty"`
}

// GetTitle returns the dialog title with the default applied
func (c *Config) GetTitle() string {
	if c == nil || c.Title == "" {
		return DefaultTitle
	}
	return c.Title
}

// GetHotkey returns the tray hotkey with the default applied
func (c *Config) GetHotkey() HotkeyConfig {
	if c == nil || c.Hotkey == nil || (len(c.Hotkey.Modifiers) == 0 && c.Hotkey.Key == "") {
		return DefaultHotkey()
	}
	return *c.Hotkey
}

// HistoryExpiration returns how long confirmed texts are remembered
func (c *Config) HistoryExpiration() time.Duration {
	if c == nil || c.HistoryMinutes <= 0 {
		return DefaultHistoryMinutes * time.Minute
	}
	return time.Duration(c.HistoryMinutes) * time.Minute
}

// GetLogConfigWithDefaults returns log config, using defaults if logging section is absent
func (c *Config) GetLogConfigWithDefaults() LogConfig {
	if c == nil || c.Logging == nil {
		return DefaultLogConfig()
	}

	cfg := DefaultLogConfig()

	// Override with user values if set
	if c.Logging.MaxSizeMB > 0 {
		cfg.MaxSizeMB = c.Logging.MaxSizeMB
	}
	if c.Logging.MaxBackups > 0 {
		cfg.MaxBackups = c.Logging.MaxBackups
	}
	if c.Logging.MaxAgeDays > 0 {
		cfg.MaxAgeDays = c.Logging.MaxAgeDays
	}
	// For booleans, only override if the logging section exists
	// This allows users to explicitly set false
	cfg.Compress = c.Logging.Compress
	cfg.ToStdout = c.Logging.ToStdout

	return cfg
}

// ConfigDir returns the configuration directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "textbox")
}

// ScriptsDir returns the Lua scripts directory path
func ScriptsDir() string {
	return filepath.Join(ConfigDir(), "scripts")
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "textbox.json")
}

// LoadConfig loads configuration from the specified path
// If path is empty, uses the default path
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.GetHotkey().Validate(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to the specified path
// If path is empty, uses the default path
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// CreateDefaultConfig creates a default configuration file if it doesn't exist
func CreateDefaultConfig(path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		// Config already exists
		return nil
	}

	hk := DefaultHotkey()
	cfg := &Config{
		Title:          DefaultTitle,
		Hotkey:         &hk,
		HistoryMinutes: DefaultHistoryMinutes,
	}

	return SaveConfig(cfg, path)
}
