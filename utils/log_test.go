package utils

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogrusLoggerForwardsAllLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.Out = buf
	l.SetLevel(logrus.DebugLevel)

	var logger Logger = &LogrusLogger{Logger: l}
	logger.Debug("debug line %d", 1)
	logger.Info("info line %d", 2)
	logger.Warn("warn line %d", 3)
	logger.Error("error line %d", 4)

	out := buf.String()
	assert.Contains(t, out, "debug line 1")
	assert.Contains(t, out, "info line 2")
	assert.Contains(t, out, "warn line 3")
	assert.Contains(t, out, "error line 4")
}

func TestLogrusLoggerZeroValue(t *testing.T) {
	l := &LogrusLogger{}
	assert.Equal(t, logrus.StandardLogger(), l.logger())
}

func TestNoopLogger(t *testing.T) {
	var logger Logger = &NoopLogger{}

	logger.Debug("dropped %d", 1)
	logger.Info("dropped %d", 2)
	logger.Warn("dropped %d", 3)
	logger.Error("dropped %d", 4)
}
