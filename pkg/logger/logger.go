package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"pdf-ask-server/internal/domain"

	"github.com/sirupsen/logrus"
)

// AppLogger implements the domain.Logger interface on top of logrus
type AppLogger struct {
	logger *logrus.Logger
}

// NewLogger creates a new logger writing to stdout
func NewLogger(levelStr, format string) domain.Logger {
	return NewLoggerWithOutput(os.Stdout, levelStr, format)
}

// NewLoggerWithOutput creates a logger writing to out
func NewLoggerWithOutput(out io.Writer, levelStr, format string) domain.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(parseLogLevel(levelStr))

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			DisableColors:   true,
		})
	}

	return &AppLogger{logger: l}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.entry(fields...).Info(msg)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	l.entry(fields...).WithError(err).Error(msg)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.entry(fields...).Debug(msg)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.entry(fields...).Warn(msg)
}

// entry turns key/value pairs into logrus fields. A trailing key without a
// value is dropped.
func (l *AppLogger) entry(fields ...interface{}) *logrus.Entry {
	if len(fields) < 2 {
		return logrus.NewEntry(l.logger)
	}
	data := make(logrus.Fields, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		data[fmt.Sprint(fields[i])] = fields[i+1]
	}
	return l.logger.WithFields(data)
}

// parseLogLevel converts string log level to a logrus level
func parseLogLevel(levelStr string) logrus.Level {
	level, err := logrus.ParseLevel(strings.TrimSpace(levelStr))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
