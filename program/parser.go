// Package program turns the free-form schedule text embedded in activity
// detail pages into structured {days, location, time} rows.
package program

import (
	"regexp"
	"strings"
)

// Row is one parsed schedule line triple. Days may be empty when the text
// never named a day before the first time line.
type Row struct {
	Days     string `json:"days"`
	Location string `json:"location"`
	Time     string `json:"time"`
}

// timeLine matches "18:00" or "18:00 - 19:30" style lines.
var timeLine = regexp.MustCompile(`^\d{1,2}:\d{2}(\s*-\s*\d{1,2}:\d{2})?$`)

// dayTokens are the Romanian weekday names the site writes, with and
// without diacritics.
var dayTokens = []string{
	"luni", "marti", "marți", "miercuri", "joi", "vineri",
	"sambata", "sâmbătă", "duminica", "duminică",
}

func isTimeLine(line string) bool {
	return timeLine.MatchString(line)
}

func isDaysLine(line string) bool {
	lower := strings.ToLower(line)
	for _, token := range dayTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// state of the line walk: whether a location line is pending a time line.
type state int

const (
	awaitingLocation state = iota
	haveLocation
)

// Parse classifies each non-empty line of the program text and emits rows
// in source order. A leading "Program" line is dropped, as is a following
// line equal to the activity's own title. A time line only emits a row
// when a location line preceded it; the last location before the time
// wins, and a days line resets any pending location.
func Parse(text, title string) []Row {
	if text == "" {
		return nil
	}

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	if strings.EqualFold(lines[0], "program") {
		lines = lines[1:]
	}
	if title != "" && len(lines) > 0 && strings.EqualFold(lines[0], title) {
		lines = lines[1:]
	}

	var rows []Row
	var days, location string
	st := awaitingLocation

	for _, line := range lines {
		if isTimeLine(line) {
			if st == haveLocation {
				rows = append(rows, Row{Days: days, Location: location, Time: line})
				location = ""
				st = awaitingLocation
			}
			continue
		}
		if isDaysLine(line) {
			days = line
			location = ""
			st = awaitingLocation
			continue
		}
		location = line
		st = haveLocation
	}

	return rows
}
