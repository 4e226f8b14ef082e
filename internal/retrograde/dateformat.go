package retrograde

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// parseLayouts are tried in order when reading a date-like string.
//
//nolint:gochecknoglobals // Read-only lookup table.
var parseLayouts = []string{
	RequestDateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// monthAbbrevs holds short month names per supported language.
//
//nolint:gochecknoglobals // Read-only lookup table.
var monthAbbrevs = map[language.Tag][12]string{
	language.English: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	language.German:  {"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	language.French:  {"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	language.Spanish: {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
}

//nolint:gochecknoglobals // Matcher is immutable once built.
var localeMatcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.German,
	language.French,
	language.Spanish,
})

// ParseLocale resolves a BCP 47 locale string to a supported language.
// Empty or unknown locales resolve to English.
func ParseLocale(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	return matchTag(language.Make(locale))
}

func matchTag(tag language.Tag) language.Tag {
	_, idx, _ := localeMatcher.Match(tag)
	switch idx {
	case 1:
		return language.German
	case 2: //nolint:mnd // Matcher index.
		return language.French
	case 3: //nolint:mnd // Matcher index.
		return language.Spanish
	default:
		return language.English
	}
}

// FormatDateLabel renders raw as a localized "Month Day, Year" label.
// Strings that cannot be read as a date are returned unchanged.
func FormatDateLabel(raw string, locale language.Tag) string {
	if raw == "" {
		return ""
	}
	t, ok := parseDate(raw)
	if !ok {
		return raw
	}

	tag := matchTag(locale)
	month := monthAbbrevs[tag][t.Month()-1]
	switch tag {
	case language.German:
		return fmt.Sprintf("%d. %s %d", t.Day(), month, t.Year())
	case language.French, language.Spanish:
		return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
	default:
		return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
	}
}

// parseDate reads the calendar date from raw. Timestamps keep the calendar
// date they were written with rather than being shifted to the local zone.
func parseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
