//go:build !windows && !linux && !darwin

package dialog

import "github.com/sirupsen/logrus"

func openPlatform(id string, req Request, o options, log logrus.FieldLogger) (string, error) {
	return "", ErrUnsupported
}
