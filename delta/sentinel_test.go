package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elegido/datekit/layout"
	"github.com/elegido/datekit/locale"
	"github.com/elegido/datekit/testutils"
)

func newSentinelCalculator(t *testing.T) (*Calculator, *testutils.RecordingLogger) {
	t.Helper()

	rec := &testutils.RecordingLogger{}
	c, err := New(Clock(testutils.GetClock()), Logger(rec))
	require.NoError(t, err)
	return c, rec
}

func TestHoursSince(t *testing.T) {
	c, rec := newSentinelCalculator(t)

	// Frozen now is 2012-03-04 05:06:07 UTC.
	assert.EqualValues(t, 77, c.HoursSince("2012-03-01", layout.DateOnly))
	assert.Empty(t, rec.Entries(), "no diagnostic on success")
}

func TestHoursSinceFailure(t *testing.T) {
	c, rec := newSentinelCalculator(t)

	assert.EqualValues(t, Failed, c.HoursSince("garbage", layout.DateOnly))
	assert.Len(t, rec.Entries(), 1)
}

func TestUnitSince(t *testing.T) {
	c, _ := newSentinelCalculator(t)

	assert.EqualValues(t, 3, c.UnitSince("2012-03-01 05:06:07", layout.Timestamp, Days))
	assert.EqualValues(t, 72, c.UnitSince("2012-03-01 05:06:07", layout.Timestamp, Hours))
}

func TestUnitSinceUnknownUnit(t *testing.T) {
	c, _ := newSentinelCalculator(t)

	assert.EqualValues(t, Failed, c.UnitSince("2012-03-01", layout.DateOnly, Unit(99)))
}

func TestHoursBetween(t *testing.T) {
	c, rec := newSentinelCalculator(t)

	assert.EqualValues(t, 72, c.HoursBetween("2012-03-01", "2012-03-04", layout.DateOnly))
	assert.Empty(t, rec.Entries())

	assert.EqualValues(t, Failed, c.HoursBetween("2012-03-01", "garbage", layout.DateOnly))
	assert.Len(t, rec.Entries(), 1)
}

func TestFormattedTimeSince(t *testing.T) {
	c, _ := newSentinelCalculator(t)

	assert.Equal(t, "01:01:30", c.FormattedTimeSince("2012-03-04 04:04:37", layout.Timestamp))
	// 30 hours before now: the hour component wraps at 24.
	assert.Equal(t, "06:00:00", c.FormattedTimeSince("2012-03-02 23:06:07", layout.Timestamp))
}

func TestFormattedTimeSinceFailure(t *testing.T) {
	c, rec := newSentinelCalculator(t)

	assert.Equal(t, FailedClock, c.FormattedTimeSince("garbage", layout.Timestamp))
	assert.Len(t, rec.Entries(), 1)
}

func TestReformatString(t *testing.T) {
	c, rec := newSentinelCalculator(t)

	out := c.ReformatString("2024-01-12",
		layout.FromSimpleDateFormat("yyyy-MM-dd"),
		layout.FromSimpleDateFormat("dd/MM/yyyy"))
	assert.Equal(t, "12/01/2024", out)
	assert.Empty(t, rec.Entries())
}

func TestReformatStringEchoesInputOnFailure(t *testing.T) {
	c, rec := newSentinelCalculator(t)

	assert.Equal(t, "not-a-date", c.ReformatString("not-a-date", layout.DateOnly, layout.DateEuropean))
	assert.Len(t, rec.Entries(), 1)
}

func TestLocalizedString(t *testing.T) {
	c, _ := newSentinelCalculator(t)

	out := c.LocalizedString("2012-03-02", layout.DateOnly, "en", "US", locale.Full)
	assert.Equal(t, "Friday, March 2, 2012", out)
}

func TestLocalizedStringFallsBackToNow(t *testing.T) {
	c, rec := newSentinelCalculator(t)

	// Unparseable input localizes the current date instead of failing.
	out := c.LocalizedString("garbage", layout.DateOnly, "en", "US", locale.Full)
	assert.Equal(t, "Sunday, March 4, 2012", out)
	assert.Len(t, rec.Entries(), 1)
}
