// Package layout defines the format catalog shared by the datekit packages.
//
// Layouts use the Go reference-time vocabulary understood by time.Parse and
// time.Format. Upstream data sources often describe the same formats with the
// yyyy-MM-dd pattern vocabulary; FromSimpleDateFormat translates those
// patterns into Go layouts so both spellings can be used at call sites.
package layout

import "strings"

// The catalog of common formats, from the most precise timestamp down to
// single calendar components and two region-flavored date spellings.
const (
	TimestampMicro  = "2006-01-02 15:04:05.000000"
	Timestamp       = "2006-01-02 15:04:05"
	TimestampMinute = "2006-01-02 15:04"
	TimestampHour   = "2006-01-02 15"
	DateOnly        = "2006-01-02"
	YearMonth       = "2006-01"
	Year            = "2006"
	Month           = "01"
	Day             = "02"
	YearDay         = "2006-02"
	Hour            = "15"
	HourMinute      = "15:04"
	TimeOnly        = "15:04:05"
	TimeMicro       = "15:04:05.000000"
	DateSlash       = "2006/01/02"
	DateEuropean    = "02/01/2006"
)

// DefaultCandidates returns the standard ordered layout list used for
// fallback parsing. Most specific layouts come first so a fully qualified
// timestamp is never truncated by a shorter prefix pattern; within equally
// specific layouts the order decides ambiguous inputs (first match wins).
func DefaultCandidates() []string {
	return []string{
		TimestampMicro,
		Timestamp,
		TimestampMinute,
		TimestampHour,
		DateOnly,
		DateSlash,
		DateEuropean,
		YearMonth,
		TimeMicro,
		TimeOnly,
		HourMinute,
		Year,
	}
}

// Longer tokens must come before their prefixes, otherwise "yyyy" would be
// consumed as two "yy" replacements.
var simpleDateFormat = strings.NewReplacer(
	"yyyy", "2006",
	"yy", "06",
	"MMMM", "January",
	"MMM", "Jan",
	"MM", "01",
	"M", "1",
	"dd", "02",
	"d", "2",
	"EEEE", "Monday",
	"EEE", "Mon",
	"HH", "15",
	"mm", "04",
	"ss", "05",
	"SSSSSS", "000000",
	"SSS", "000",
	"a", "PM",
	"Z", "-0700",
	"z", "MST",
)

// FromSimpleDateFormat translates a yyyy-MM-dd style pattern into a Go
// reference layout, e.g. "yyyy-MM-dd HH:mm:ss" becomes
// "2006-01-02 15:04:05". Tokens outside the supported set are passed
// through unchanged.
func FromSimpleDateFormat(pattern string) string {
	return simpleDateFormat.Replace(pattern)
}
