package main

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/getlantern/systray"
	"github.com/spf13/cobra"

	"textbox/dialog"
	"textbox/internal/clipboard"
	"textbox/internal/config"
	"textbox/internal/history"
	"textbox/internal/instance"
	"textbox/internal/logger"
	"textbox/internal/script"
)

var (
	// Global state
	stateMutex sync.RWMutex
	busy       atomic.Bool
	lock       *instance.Lock
	texts      *history.History
	engine     *script.Engine

	// Menu items
	mStatus    *systray.MenuItem
	mOpen      *systray.MenuItem
	mCopyLast  *systray.MenuItem
	mClearHist *systray.MenuItem
	mDebug     *systray.MenuItem
	mReloadCfg *systray.MenuItem
	mEditCfg   *systray.MenuItem
	mScripts   *systray.MenuItem
	mHotkey    *systray.MenuItem
	mAbout     *systray.MenuItem
	mQuit      *systray.MenuItem
)

var trayCmd = &cobra.Command{
	Use:   "tray",
	Short: "Stay in the system tray and open the prompt from a hotkey",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		// Ensure only one instance is running
		l, err := instance.Acquire(instance.LockPath(instance.Name))
		if err != nil {
			return err
		}
		lock = l

		logger.LogStartup("tray", Version, commit, buildDate)

		texts = history.New(currentConfig().HistoryExpiration())

		if e, err := script.NewEngine(config.ScriptsDir()); err != nil {
			logger.LogWarn("Failed to initialize Lua engine: %v", err)
		} else {
			e.Copy = clipboard.Copy
			engine = e
		}

		systray.Run(onReady, onExit)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trayCmd)
}

func currentConfig() *config.Config {
	stateMutex.RLock()
	defer stateMutex.RUnlock()
	return appConfig
}

func onReady() {
	systray.SetIcon(getIcon())
	systray.SetTitle("")
	systray.SetTooltip("Text Box")

	// Status display as submenu (kept enabled for better contrast)
	mStatusMenu := systray.AddMenuItem("Status", "Current status")
	mStatus = mStatusMenu.AddSubMenuItem("Ready", "")

	systray.AddSeparator()

	mOpen = systray.AddMenuItem("Open Text Box", "Show the prompt")
	mCopyLast = systray.AddMenuItem("Copy Last Text", "Copy the most recent confirmed text")
	mCopyLast.Disable()
	mClearHist = systray.AddMenuItem("Clear History", "Forget all confirmed texts")

	systray.AddSeparator()

	// Settings
	mDebug = systray.AddMenuItemCheckbox("Debug Mode", "Enable debug output", debugMode)
	mReloadCfg = systray.AddMenuItem("Reload Config", "Reload configuration from file")
	mEditCfg = systray.AddMenuItem("Edit Config", "Open the configuration file")
	mScripts = systray.AddMenuItem("Open Scripts Folder", "Open the Lua scripts folder")

	systray.AddSeparator()

	mHotkeys := systray.AddMenuItem("Hotkeys", "Keyboard shortcuts")
	mHotkey = mHotkeys.AddSubMenuItem("", "Open the prompt")

	systray.AddSeparator()

	// About submenu with version info
	mAbout = systray.AddMenuItem("About", "About textbox")
	_ = mAbout.AddSubMenuItem(fmt.Sprintf("Version: %s", Version), "")
	_ = mAbout.AddSubMenuItem(fmt.Sprintf("Commit: %s", getShortCommit()), "")
	_ = mAbout.AddSubMenuItem(fmt.Sprintf("Build: %s", getBuildDate()), "")
	_ = mAbout.AddSubMenuItem(fmt.Sprintf("Config: %s", configFile()), "Configuration file location")

	systray.AddSeparator()

	mQuit = systray.AddMenuItem("Quit", "Quit the application")

	go handleMenuClicks()

	go func() {
		// Small delay to ensure systray is fully initialized
		time.Sleep(500 * time.Millisecond)
		bindHotkey()
	}()
}

func onExit() {
	CleanupHotkey()
	lock.Release()
}

func handleMenuClicks() {
	for {
		select {
		case <-mOpen.ClickedCh:
			go openFromTray()

		case <-mCopyLast.ClickedCh:
			copyLastText()

		case <-mClearHist.ClickedCh:
			clearHistory()

		case <-mDebug.ClickedCh:
			toggleDebug()

		case <-mReloadCfg.ClickedCh:
			reloadConfig()

		case <-mEditCfg.ClickedCh:
			launch("config", configFile())

		case <-mScripts.ClickedCh:
			launch("scripts", scriptsDir())

		case <-mQuit.ClickedCh:
			systray.Quit()
			return
		}
	}
}

func bindHotkey() {
	hc := currentConfig().GetHotkey()
	if err := registerHotkey(hc, func() { go openFromTray() }); err != nil {
		logger.LogError("Hotkey registration failed: %v", err)
		mHotkey.SetTitle(fmt.Sprintf("Hotkey error: %s", truncateError(err)))
		mStatus.SetTitle("Hotkey unavailable")
		return
	}
	mHotkey.SetTitle(fmt.Sprintf("Open Text Box: %s", hc.String()))
	mStatus.SetTitle(fmt.Sprintf("Ready: %s", hc.String()))
}

// openFromTray runs one prompt session. Presses that arrive while a prompt
// is already showing are dropped.
func openFromTray() {
	if !busy.CompareAndSwap(false, true) {
		logger.LogDebug("Text box already open")
		return
	}
	defer busy.Store(false)

	cfg := currentConfig()
	title := cfg.GetTitle()

	var rect dialog.Rect
	if r, ok := dialog.ForegroundRect(); ok {
		rect = r
	}

	mStatus.SetTitle("Waiting for text...")
	text, err := dialog.Open(dialog.NewRequest(title, rect), dialogOptions()...)
	logger.LogDialogResult("tray", text, err)
	if err != nil {
		if !errors.Is(err, dialog.ErrTeardown) {
			mStatus.SetTitle(fmt.Sprintf("Error: %s", truncateError(err)))
			return
		}
		logger.LogWarn("Continuing after teardown failure: %v", err)
	}
	if text == "" {
		mStatus.SetTitle("No text entered")
		return
	}

	if cfg.Script != "" && engine != nil {
		out, err := engine.Transform(cfg.Script, title, text)
		if err != nil {
			mStatus.SetTitle(fmt.Sprintf("Script error: %s", truncateError(err)))
			return
		}
		text = out
	}

	texts.Add(title, text)
	logger.LogDebug("%s", texts.Stats())
	mCopyLast.Enable()

	if err := clipboard.Copy(text); err != nil {
		logger.LogError("Failed to copy text: %v", err)
		mStatus.SetTitle(fmt.Sprintf("Copy failed: %s", truncateError(err)))
		return
	}
	logger.LogClipboardCopy("text", len([]rune(text)))

	if cfg.PasteAfterConfirm {
		if err := clipboard.Paste(); err != nil {
			logger.LogError("Failed to paste text: %v", err)
			mStatus.SetTitle(fmt.Sprintf("Paste failed: %s", truncateError(err)))
			return
		}
		mStatus.SetTitle(fmt.Sprintf("Pasted %d chars", len([]rune(text))))
		return
	}
	mStatus.SetTitle(fmt.Sprintf("Copied %d chars - %s", len([]rune(text)), time.Now().Format("15:04:05")))
}

// copyLastText prefers the last text entered under the current title.
func copyLastText() {
	entry, ok := texts.ForTitle(currentConfig().GetTitle())
	if !ok {
		entry, ok = texts.Last()
	}
	if !ok {
		mCopyLast.Disable()
		mStatus.SetTitle("History expired")
		return
	}
	if err := clipboard.Copy(entry.Text); err != nil {
		logger.LogError("Failed to copy last text: %v", err)
		mStatus.SetTitle(fmt.Sprintf("Copy failed: %v", truncateError(err)))
		return
	}
	logger.LogClipboardCopy("last_text", len([]rune(entry.Text)))
	mStatus.SetTitle(fmt.Sprintf("Copied last text (%s)", entry.At.Format("15:04:05")))
}

func clearHistory() {
	n := texts.ItemCount()
	texts.Clear()
	mCopyLast.Disable()
	logger.LogAction("clear_history", fmt.Sprintf("Cleared %d entries", n))
	mStatus.SetTitle("History cleared")
}

func scriptsDir() string {
	if engine != nil {
		return engine.Dir()
	}
	return config.ScriptsDir()
}

func toggleDebug() {
	debugMode = !debugMode
	if debugMode {
		mDebug.Check()
	} else {
		mDebug.Uncheck()
	}
	logger.SetLogLevel(debugMode)
}

func reloadConfig() {
	path := configFile()
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logger.LogError("Config reload failed: %v", err)
		mStatus.SetTitle(fmt.Sprintf("Config error: %v", truncateError(err)))
		return
	}

	stateMutex.Lock()
	appConfig = cfg
	stateMutex.Unlock()

	logger.LogConfigLoaded(path, cfg)
	bindHotkey()
	mStatus.SetTitle(fmt.Sprintf("Config reloaded (%s)", cfg.GetHotkey().String()))
}

func launch(what, path string) {
	if err := openPath(path); err != nil {
		logger.LogError("Failed to open %s %s: %v", what, path, err)
		mStatus.SetTitle(fmt.Sprintf("Failed to open %s", what))
		return
	}
	logger.LogAction("open_"+what, path)
}

func configFile() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

func truncateError(err error) string {
	s := err.Error()
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
