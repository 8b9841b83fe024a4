package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"textbox/dialog"
	"textbox/internal/alert"
	"textbox/internal/logger"
)

var (
	openTitle string
	openRect  dialog.Rect
	openAsync bool
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Show the prompt and print the confirmed text",
	Long: `Show the prompt centered on a rectangle and print the confirmed text.

Without --x/--y/--width/--height the prompt is centered on the window that
currently has the foreground. Closing without pressing OK prints an empty line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		title := openTitle
		if !cmd.Flags().Changed("title") {
			title = currentConfig().GetTitle()
		}

		rect := openRect
		if !rectFlagsChanged(cmd) {
			if r, ok := dialog.ForegroundRect(); ok {
				rect = r
			}
		}

		req := dialog.NewRequest(title, rect)
		opts := dialogOptions()

		var text string
		var err error
		if openAsync && runtime.GOOS == "darwin" {
			// The alert must run on the locked main thread here.
			logger.LogDebug("Ignoring --async on macOS")
			text, err = dialog.Open(req, opts...)
		} else if openAsync {
			logger.LogDebug("Waiting for asynchronous text box")
			out := <-dialog.OpenAsync(req, opts...)
			text, err = out.Text, out.Err
		} else {
			text, err = dialog.Open(req, opts...)
		}
		logger.LogDialogResult("open", text, err)

		if err != nil && !errors.Is(err, dialog.ErrTeardown) {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	},
}

func init() {
	f := openCmd.Flags()
	f.StringVar(&openTitle, "title", "", "window title (default from config)")
	f.Uint32Var(&openRect.X, "x", 0, "left edge of the rectangle to center on")
	f.Uint32Var(&openRect.Y, "y", 0, "top edge of the rectangle to center on")
	f.Uint32Var(&openRect.Width, "width", 0, "width of the rectangle to center on")
	f.Uint32Var(&openRect.Height, "height", 0, "height of the rectangle to center on")
	f.BoolVar(&openAsync, "async", false, "run the prompt on its own goroutine and wait for the result")
	rootCmd.AddCommand(openCmd)
}

func rectFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"x", "y", "width", "height"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// dialogOptions wires the dialog library to the host logger and alerts.
func dialogOptions() []dialog.Option {
	opts := []dialog.Option{dialog.WithLogger(logger.Logger())}
	if cfg := currentConfig(); cfg != nil && cfg.AlertOnFailure {
		opts = append(opts, dialog.WithNotifier(alert.Show))
	}
	return opts
}
