// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import "github.com/sirupsen/logrus"

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain, unsorted text lines at debug level.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewWithLevel is like New, but only logs entries at or above level.
func NewWithLevel(level logrus.Level) Logger {
	l := New().(*logrus.Logger)
	l.SetLevel(level)
	return l
}
