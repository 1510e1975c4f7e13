// Package logger holds the application-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init and discards output
// until configured, since the terminal belongs to the renderer.
var Log = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures the global logger from the environment.
//
//   - LOG_LEVEL: logrus level name, "info" by default.
//   - LOG_FORMAT: "json" for JSON lines, anything else for text.
//   - LOG_FILE: file to append to. Without it logs are discarded.
//
// The returned closer releases the log file and is never nil.
func Init() (io.Closer, error) {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	path := os.Getenv("LOG_FILE")
	if path == "" {
		Log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.NopCloser(nil), fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	Log.SetOutput(f)
	return f, nil
}
