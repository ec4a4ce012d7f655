package player

import (
	"io"

	"github.com/sirupsen/logrus"
)

// nopLogger returns a logger that discards everything, used when a player is created without one.
func nopLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
