// Package logging builds the logrus logger used for diagnostics.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to w at the given level. An empty level falls
// back to LOG_LEVEL, then to info. "off" silences the logger.
func New(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	switch strings.ToLower(level) {
	case "off":
		logger.SetOutput(io.Discard)
	case "":
		logger.SetLevel(logrus.InfoLevel)
	default:
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			logger.SetLevel(logrus.InfoLevel)
			logger.Warnf("unknown log level %q, using info", level)
			return logger
		}
		logger.SetLevel(lvl)
	}
	return logger
}
