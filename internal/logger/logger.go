// Package logger holds the application-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultFile is where logs go when LOG_FILE is not set. The terminal is
// owned by the game screen, so logs never go to stdout.
const DefaultFile = "lamplight.log"

// Log is the global logger. It discards output until Init is called.
var Log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures Log from the environment:
//   - LOG_LEVEL: logrus level name, default "info"
//   - LOG_FORMAT: "json" or "text", default "text"
//   - LOG_FILE: output path, default DefaultFile; "-" discards output
//
// It returns a function that closes the log file.
func Init() (closeFn func() error, err error) {
	Log = logrus.New()

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
	switch path {
	case "-":
		Log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	case "":
		path = DefaultFile
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		Log.SetOutput(io.Discard)
		return func() error { return nil }, fmt.Errorf("open log file %s: %w", path, err)
	}
	Log.SetOutput(f)
	return f.Close, nil
}
