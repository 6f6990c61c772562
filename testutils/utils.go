// Package testutils holds helpers shared by the datekit test suites.
package testutils

import (
	"fmt"
	"sync"
	"time"

	"github.com/mailgun/timetools"
)

// GetClock returns a frozen clock at a fixed instant, useful for asserting
// now-relative operations.
func GetClock() *timetools.FreezedTime {
	return &timetools.FreezedTime{
		CurrentTime: time.Date(2012, 3, 4, 5, 6, 7, 0, time.UTC),
	}
}

// RecordingLogger captures log lines so tests can assert on the diagnostic
// side channel, e.g. that nothing was emitted on success.
type RecordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *RecordingLogger) record(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(msg, args...))
}

// Entries returns the captured lines.
func (l *RecordingLogger) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Debug records the line.
func (l *RecordingLogger) Debug(msg string, args ...any) { l.record(msg, args...) }

// Info records the line.
func (l *RecordingLogger) Info(msg string, args ...any) { l.record(msg, args...) }

// Warn records the line.
func (l *RecordingLogger) Warn(msg string, args ...any) { l.record(msg, args...) }

// Error records the line.
func (l *RecordingLogger) Error(msg string, args ...any) { l.record(msg, args...) }
