// Command textbox shows a modal single-line text prompt and prints what the
// user confirmed. It can also stay resident in the system tray and open the
// prompt from a global hotkey.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"textbox/dialog"
	"textbox/internal/config"
	"textbox/internal/logger"
)

var (
	configPath string
	debugMode  bool

	// appConfig is loaded once per invocation; tray reloads replace it.
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "textbox",
	Short: "Modal text entry prompt",
	Long: `textbox - a small always-on-top prompt with an edit field, OK and Clear.

"textbox open" prints the confirmed text on stdout. "textbox tray" keeps an
icon in the notification area and opens the prompt from a global hotkey.`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Name() == "tray")
	},
}

func init() {
	// The macOS prompt and the tray both need the main thread.
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/textbox/textbox.json)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
}

// setup loads the config and starts the logger. A missing config file is
// not an error; the tray creates a default one.
func setup(createDefault bool) error {
	path := configFile()

	cfg, err := config.LoadConfig(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		cfg = &config.Config{}
		if createDefault {
			if createErr := config.CreateDefaultConfig(path); createErr == nil {
				if loaded, loadErr := config.LoadConfig(path); loadErr == nil {
					cfg = loaded
				}
			}
		}
	}
	appConfig = cfg

	if err := logger.InitLoggerWithConfig(cfg.GetLogConfigWithDefaults(), config.ConfigDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to initialize logger: %v\n", err)
	}
	logger.SetLogLevel(debugMode)
	logger.LogConfigLoaded(path, cfg)
	return nil
}

// exitCode maps command errors to the process status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, dialog.ErrTeardown):
		return 2
	default:
		return 1
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		logger.LogError("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	logger.Shutdown()
	os.Exit(exitCode(err))
}
