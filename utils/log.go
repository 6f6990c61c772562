package utils

import "github.com/sirupsen/logrus"

// Logger the logger interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoopLogger a noop logger.
type NoopLogger struct{}

// Debug noop.
func (*NoopLogger) Debug(string, ...any) {}

// Info noop.
func (*NoopLogger) Info(string, ...any) {}

// Warn noop.
func (*NoopLogger) Warn(string, ...any) {}

// Error noop.
func (*NoopLogger) Error(string, ...any) {}

// LogrusLogger forwards to a logrus logger. The zero value uses the logrus
// standard logger, which writes to stderr.
type LogrusLogger struct {
	Logger *logrus.Logger
}

func (l *LogrusLogger) logger() *logrus.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return logrus.StandardLogger()
}

// Debug forwards to logrus.
func (l *LogrusLogger) Debug(msg string, args ...any) { l.logger().Debugf(msg, args...) }

// Info forwards to logrus.
func (l *LogrusLogger) Info(msg string, args ...any) { l.logger().Infof(msg, args...) }

// Warn forwards to logrus.
func (l *LogrusLogger) Warn(msg string, args ...any) { l.logger().Warnf(msg, args...) }

// Error forwards to logrus.
func (l *LogrusLogger) Error(msg string, args ...any) { l.logger().Errorf(msg, args...) }
