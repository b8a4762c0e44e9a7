package scraper

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Days lists the English day names in week order. It is the key order used
// everywhere a WeekSchedule is walked.
var Days = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// romanianDays maps folded Romanian day names to English ones.
var romanianDays = map[string]string{
	"luni":     "Monday",
	"marti":    "Tuesday",
	"miercuri": "Wednesday",
	"joi":      "Thursday",
	"vineri":   "Friday",
	"sambata":  "Saturday",
	"duminica": "Sunday",
}

// diacriticFold lowercases and strips combining marks, so "Sâmbătă"
// becomes "sambata".
var diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldDay normalizes a day label for lookup.
func FoldDay(label string) string {
	folded, _, err := transform.String(diacriticFold, label)
	if err != nil {
		folded = label
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// EnglishDay maps a Romanian day label (any casing, with or without
// diacritics) to its English name, or "" when the text names no day.
func EnglishDay(label string) string {
	folded := FoldDay(label)
	for ro, en := range romanianDays {
		if strings.Contains(folded, ro) {
			return en
		}
	}
	return ""
}

// DayFromText returns the first English day name contained in the text,
// or "". Used on theme headings, which embed the day name.
func DayFromText(text string) string {
	for _, day := range Days {
		if strings.Contains(text, day) {
			return day
		}
	}
	return ""
}
