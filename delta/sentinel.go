package delta

import "github.com/elegido/datekit/locale"

// Sentinel values returned by the compatibility surface below. All valid
// numeric results are non-negative, which keeps Failed unambiguous.
const (
	Failed      = -1
	FailedClock = "00:00:00"
)

// The methods in this file keep the historical sentinel contract: a parse
// failure never surfaces as an error, only as Failed, FailedClock or the
// unmodified input. Each failure emits one diagnostic line through the
// calculator's logger; nothing is emitted on success.

// HoursSince returns the whole hours elapsed between the parsed input and
// now, or Failed if the input does not match the layout.
func (c *Calculator) HoursSince(input, lay string) int64 {
	return c.UnitSince(input, lay, Hours)
}

// UnitSince returns the elapsed time between the parsed input and now
// converted to the requested unit, or Failed if the input does not match
// the layout or the unit is unrecognized.
func (c *Calculator) UnitSince(input, lay string, unit Unit) int64 {
	d, err := c.SinceString(input, lay)
	if err != nil {
		c.log.Error("datekit: %v", err)
		return Failed
	}

	v, err := c.Convert(d, unit)
	if err != nil {
		return Failed
	}
	return v
}

// HoursBetween returns the whole hours between two date strings sharing one
// layout, or Failed if either fails to parse.
func (c *Calculator) HoursBetween(from, to, lay string) int64 {
	d, err := c.BetweenStrings(from, to, lay)
	if err != nil {
		c.log.Error("datekit: %v", err)
		return Failed
	}

	v, _ := c.Convert(d, Hours)
	return v
}

// FormattedTimeSince renders the elapsed time between the parsed input and
// now as a wrapped HH:mm:ss triple, or FailedClock if the input does not
// match the layout.
func (c *Calculator) FormattedTimeSince(input, lay string) string {
	d, err := c.SinceString(input, lay)
	if err != nil {
		c.log.Error("datekit: %v", err)
		return FailedClock
	}
	return c.ClockFormat(d)
}

// ReformatString converts input from one layout to another, echoing the
// input unchanged if it does not match inLayout.
func (c *Calculator) ReformatString(input, inLayout, outLayout string) string {
	out, err := c.Reformat(input, inLayout, outLayout)
	if err != nil {
		c.log.Error("datekit: %v", err)
		return input
	}
	return out
}

// LocalizedString parses input and renders it as a localized date for the
// given language and region. If the input does not match the layout the
// current date is localized instead, matching the historical behavior of
// this operation.
func (c *Calculator) LocalizedString(input, lay, language, region string, style locale.Style) string {
	t, err := c.Parse(input, lay)
	if err != nil {
		c.log.Error("datekit: %v", err)
		t = c.clock.UtcNow()
	}
	return locale.Format(t, language, region, style)
}
