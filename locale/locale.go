// Package locale renders instants as localized human-readable dates. It is a
// thin delegation: locale data (month and weekday names) comes from
// goodsign/monday, and language/region pairs are resolved with x/text
// language matching so unsupported combinations degrade to en_US instead of
// failing.
package locale

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Style selects the verbosity of a localized date, mirroring the full/long/
// medium/short levels of platform date formatters.
type Style int

const (
	Full Style = iota
	Long
	Medium
	Short
)

var styleLayouts = map[Style]string{
	Full:   "Monday, January 2, 2006",
	Long:   "January 2, 2006",
	Medium: "Jan 2, 2006",
	Short:  "1/2/06",
}

var (
	locales []monday.Locale
	matcher language.Matcher
)

func init() {
	// en_US goes first: the matcher falls back to the first tag when nothing
	// else matches.
	locales = append(locales, monday.LocaleEnUS)
	for _, loc := range monday.ListLocales() {
		if loc != monday.LocaleEnUS {
			locales = append(locales, loc)
		}
	}

	tags := make([]language.Tag, len(locales))
	for i, loc := range locales {
		tags[i] = language.Make(strings.Replace(string(loc), "_", "-", 1))
	}
	matcher = language.NewMatcher(tags)
}

// Format renders t at the requested style, localized for the given language
// and region codes (e.g. "es", "MX"). Unknown styles render as Full.
func Format(t time.Time, lang, region string, style Style) string {
	lay, ok := styleLayouts[style]
	if !ok {
		lay = styleLayouts[Full]
	}
	return monday.Format(t, lay, Resolve(lang, region))
}

// Resolve maps a language/region pair to the closest supported locale,
// falling back to en_US.
func Resolve(lang, region string) monday.Locale {
	desired := lang
	if region != "" {
		desired += "-" + region
	}

	_, i, conf := matcher.Match(language.Make(desired))
	if conf == language.No {
		return monday.LocaleEnUS
	}
	return locales[i]
}
