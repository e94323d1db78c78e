// Package logger holds the process-wide structured logger.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures Log from the environment. Call once from main.
//
// LOG_LEVEL selects the level (default "info"); LOG_FORMAT=json switches to
// the JSON formatter, anything else uses the text formatter.
func Init() {
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
		})
	}

	Log.SetOutput(os.Stdout)
}
