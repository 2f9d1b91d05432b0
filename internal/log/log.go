// Package log configures the logrus logger used by the command line tool.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// EnvLevel names the environment variable consulted when neither the flag
// nor the config file sets a level.
const EnvLevel = "BALDE_TEMPLATE_LOG_LEVEL"

// DefaultLevel keeps successful builds quiet.
const DefaultLevel = logrus.WarnLevel

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{TimestampFormat: time.RFC3339Nano, FullTimestamp: true}
	logger.SetOutput(w)
	logger.SetLevel(level)

	return logger
}

// ParseLevel maps a level name to a logrus level. Unknown names fall back to
// DefaultLevel.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return DefaultLevel
	}
}

// ResolveLevel picks the first non-empty candidate, then the environment.
func ResolveLevel(candidates ...string) logrus.Level {
	for _, c := range candidates {
		if c != "" {
			return ParseLevel(c)
		}
	}

	return ParseLevel(os.Getenv(EnvLevel))
}
