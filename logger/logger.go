package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures Log. An empty level falls back to LOG_LEVEL, then "info".
// LOG_FORMAT=json switches to the JSON formatter.
func Init(level string) {
	Configure(Log, level, os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure applies level, format and output to l
func Configure(l *logrus.Logger, level, format string, out io.Writer) {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	l.SetOutput(out)
}

// For returns an entry tagged with the subsystem name
func For(system string) *logrus.Entry {
	return Log.WithField("system", system)
}
