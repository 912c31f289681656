package app

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the diagnostics logger. It writes to stderr so it never
// mixes with probe output, and stays quiet below warnings unless debug is set.
func NewLogger(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
