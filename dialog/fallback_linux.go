//go:build linux

package dialog

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// openPlatform asks zenity (GTK) or kdialog (KDE) for the text. OK yields
// the typed text; cancelling or closing the prompt yields "".
func openPlatform(id string, req Request, o options, log logrus.FieldLogger) (string, error) {
	var buf Buffer

	if path, err := exec.LookPath("zenity"); err == nil {
		args := []string{"--entry", "--title", req.Title, "--text", "", "--width", "400"}
		out, err := runPrompt(path, args)
		if err != nil {
			return "", &SetupError{Step: "zenity", Err: err}
		}
		buf.CommitString(out)
		return buf.String(), nil
	}

	if path, err := exec.LookPath("kdialog"); err == nil {
		args := []string{"--title", req.Title, "--inputbox", ""}
		out, err := runPrompt(path, args)
		if err != nil {
			return "", &SetupError{Step: "kdialog", Err: err}
		}
		buf.CommitString(out)
		return buf.String(), nil
	}

	log.Warn("No dialog tool found (install zenity or kdialog)")
	return "", ErrUnsupported
}

// exitCancelled is the status zenity and kdialog use for Cancel or a
// closed prompt. Any other failure means the prompt never appeared.
const exitCancelled = 1

// runPrompt runs a prompt tool and returns the typed text.
func runPrompt(path string, args []string) (string, error) {
	out, err := exec.Command(path, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.ExitCode() == exitCancelled {
				return "", nil
			}
			if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
				return "", fmt.Errorf("%w: %s", err, msg)
			}
		}
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(out), "\n"), "\r"), nil
}
