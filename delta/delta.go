// Package delta implements the date/time delta calculator: parsing of date
// strings with ordered layout fallback, absolute differences between two
// instants (or between an instant and the current clock reading), and
// rendering of elapsed time as unit counts, wall-clock triples, localized
// dates or approximate human-readable phrases.
//
// The core API reports failures as errors; the sentinel-compatible surface
// in sentinel.go keeps the historical -1 / "00:00:00" / echo-input contract
// for callers that depend on it.
package delta

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"
	"github.com/mailgun/timetools"

	"github.com/elegido/datekit/layout"
	"github.com/elegido/datekit/locale"
	"github.com/elegido/datekit/utils"
)

// Unit selects the granularity of a converted duration.
type Unit int

const (
	Millis Unit = iota
	Seconds
	Minutes
	Hours
	Days
)

// String returns the unit name for diagnostics.
func (u Unit) String() string {
	switch u {
	case Millis:
		return "milliseconds"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	}
	return "unknown"
}

// Calculator parses date strings and computes absolute time deltas. It holds
// no mutable state; a single Calculator is safe for concurrent use.
type Calculator struct {
	clock      timetools.TimeProvider
	log        utils.Logger
	candidates []string
	lenient    bool
}

// New creates a Calculator.
func New(opts ...Option) (*Calculator, error) {
	c := &Calculator{}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}

	if c.clock == nil {
		c.clock = &timetools.RealTime{}
	}
	if c.log == nil {
		c.log = &utils.LogrusLogger{}
	}
	if c.candidates == nil {
		c.candidates = layout.DefaultCandidates()
	}

	return c, nil
}

// Parse parses input with exactly one layout, no fallback.
func (c *Calculator) Parse(input, lay string) (time.Time, error) {
	t, err := time.Parse(lay, input)
	if err != nil {
		return time.Time{}, &ParseError{Input: input, Layouts: []string{lay}, Err: err}
	}
	return t, nil
}

// ParseAny tries the calculator's candidate layouts in order and returns the
// result of the first one that accepts the input. An input that could match
// more than one candidate gets the first candidate's interpretation. With
// the Lenient option set, inputs rejected by every candidate are handed to
// dateparse format detection before giving up.
func (c *Calculator) ParseAny(input string) (time.Time, error) {
	return c.ParseAnyWith(input, c.candidates...)
}

// ParseAnyWith is ParseAny with a per-call candidate list. Supplying no
// layouts falls back to the calculator's candidates.
func (c *Calculator) ParseAnyWith(input string, candidates ...string) (time.Time, error) {
	if len(candidates) == 0 {
		candidates = c.candidates
	}

	for _, lay := range candidates {
		if t, err := time.Parse(lay, input); err == nil {
			return t, nil
		}
	}

	if c.lenient {
		if t, err := dateparse.ParseAny(input); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &ParseError{Input: input, Layouts: candidates}
}

// Between returns the absolute difference between two instants.
// Between(a, b) == Between(b, a), and the result is zero iff a equals b.
func (c *Calculator) Between(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d
}

// Since returns the absolute difference between t and the current clock
// reading. The clock is read on every call, so repeated calls with the same
// instant grow with wall-clock time.
func (c *Calculator) Since(t time.Time) time.Duration {
	return c.Between(t, c.clock.UtcNow())
}

// SinceString parses input with the given layout and returns the elapsed
// time between the parsed instant and now.
func (c *Calculator) SinceString(input, lay string) (time.Duration, error) {
	t, err := c.Parse(input, lay)
	if err != nil {
		return 0, err
	}
	return c.Since(t), nil
}

// BetweenStrings parses both inputs with the same layout and returns their
// absolute difference.
func (c *Calculator) BetweenStrings(from, to, lay string) (time.Duration, error) {
	a, err := c.Parse(from, lay)
	if err != nil {
		return 0, err
	}
	b, err := c.Parse(to, lay)
	if err != nil {
		return 0, err
	}
	return c.Between(a, b), nil
}

// Convert converts a duration to a count of the requested unit using floor
// division, so 3 days converts to 72 hours and 90000ms to 1 minute.
func (c *Calculator) Convert(d time.Duration, unit Unit) (int64, error) {
	ms := d.Milliseconds()
	switch unit {
	case Millis:
		return ms, nil
	case Seconds:
		return ms / 1000, nil
	case Minutes:
		return ms / 60000, nil
	case Hours:
		return ms / 3600000, nil
	case Days:
		return ms / 86400000, nil
	}
	return 0, &UnitError{Unit: unit}
}

// ClockFormat renders a duration as a zero-padded HH:mm:ss triple. The hour
// component wraps at 24: a 30 hour delta renders as "06:00:00" with the day
// component discarded. Use Convert with Hours for an unwrapped total.
func (c *Calculator) ClockFormat(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = -ms
	}

	secs := ms / 1000 % 60
	mins := ms / 60000 % 60
	hours := ms / 3600000 % 24

	return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
}

// Reformat parses input with inLayout and renders it with outLayout.
func (c *Calculator) Reformat(input, inLayout, outLayout string) (string, error) {
	t, err := c.Parse(input, inLayout)
	if err != nil {
		return "", err
	}
	return t.Format(outLayout), nil
}

// Current returns the current clock reading rendered with the given layout.
func (c *Calculator) Current(lay string) string {
	return c.clock.UtcNow().Format(lay)
}

// Localize renders t as a localized date string for the given language and
// region at the requested style level.
func (c *Calculator) Localize(t time.Time, language, region string, style locale.Style) string {
	return locale.Format(t, language, region, style)
}

// Approx returns an approximate human-readable phrase for the distance
// between t and now, e.g. "3 days ago".
func (c *Calculator) Approx(t time.Time) string {
	return humanize.RelTime(t, c.clock.UtcNow(), "ago", "from now")
}
