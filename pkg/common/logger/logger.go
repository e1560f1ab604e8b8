package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	Log.SetLevel(logLevel)
}

func ensure() *logrus.Logger {
	if Log == nil {
		Init()
	}
	return Log
}

func WithField(key string, value interface{}) *logrus.Entry {
	return ensure().WithField(key, value)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return ensure().WithFields(fields)
}

func WithError(err error) *logrus.Entry {
	return ensure().WithError(err)
}
