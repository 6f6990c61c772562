package delta

import (
	"fmt"

	"github.com/mailgun/timetools"

	"github.com/elegido/datekit/utils"
)

// Option represents an option you can pass to New.
type Option func(*Calculator) error

// Logger defines the logger used for parse-failure diagnostics. The default
// is a logrus logger writing to stderr; pass &utils.NoopLogger{} to silence
// the side channel.
func Logger(l utils.Logger) Option {
	return func(c *Calculator) error {
		c.log = l
		return nil
	}
}

// Clock defines the time provider used by now-relative operations. The
// default is the system clock.
func Clock(clock timetools.TimeProvider) Option {
	return func(c *Calculator) error {
		c.clock = clock
		return nil
	}
}

// Candidates defines the ordered layout list tried by ParseAny. Order is
// significant: the first layout that accepts an input wins. The default is
// layout.DefaultCandidates.
func Candidates(layouts ...string) Option {
	return func(c *Calculator) error {
		if len(layouts) == 0 {
			return fmt.Errorf("at least one candidate layout is required")
		}
		c.candidates = layouts
		return nil
	}
}

// Lenient enables format detection for inputs rejected by every candidate
// layout, at the cost of accepting layouts the caller never declared.
func Lenient(lenient bool) Option {
	return func(c *Calculator) error {
		c.lenient = lenient
		return nil
	}
}
