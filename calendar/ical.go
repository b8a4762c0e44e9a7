// Package calendar exports the weekly schedule as an iCalendar feed.
package calendar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"therme-scraper/scraper"
)

const calendarTimezone = "Europe/Bucharest"

// BuildCalendar turns the weekly schedule into a calendar with one event
// per entry that carries a parseable time. Events land on the matching
// weekday of the week containing now.
func BuildCalendar(week scraper.WeekSchedule, now time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetName("Therme Activities")

	loc, err := time.LoadLocation(calendarTimezone)
	if err != nil {
		loc = time.Local
	}
	weekStart := startOfWeek(now.In(loc))

	for dayIndex, day := range scraper.Days {
		daySchedule := week[day]
		if daySchedule == nil {
			continue
		}
		eventDate := weekStart.AddDate(0, 0, dayIndex)

		for _, entry := range daySchedule.Activities {
			start, end, err := eventTimes(eventDate, entry.Time, loc)
			if err != nil {
				continue
			}

			event := cal.AddEvent(eventID(entry.Name, day, entry.Time))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(entry.Name)
			if entry.Location != "" {
				event.SetLocation(entry.Location)
			}
			if entry.Tier != "" {
				event.SetDescription(entry.Tier)
			}
		}
	}

	return cal
}

// WriteCalendar serializes the weekly schedule to an .ics file.
func WriteCalendar(filename string, week scraper.WeekSchedule, now time.Time) error {
	cal := BuildCalendar(week, now)
	if err := os.WriteFile(filename, []byte(cal.Serialize()), 0644); err != nil {
		return fmt.Errorf("error writing ICS file: %v", err)
	}
	return nil
}

// startOfWeek returns midnight of the Monday of now's week.
func startOfWeek(now time.Time) time.Time {
	offset := int(time.Monday - now.Weekday())
	if offset > 0 {
		offset = -6
	}
	day := now.AddDate(0, 0, offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}

// eventTimes parses an "18:00" or "18:00 - 19:30" time string into start
// and end times on the event date. A missing end time means one hour.
func eventTimes(eventDate time.Time, timeStr string, loc *time.Location) (time.Time, time.Time, error) {
	startStr, endStr := strings.TrimSpace(timeStr), ""
	if strings.Contains(timeStr, "-") {
		parts := strings.SplitN(timeStr, "-", 2)
		startStr, endStr = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}

	startTime, err := time.ParseInLocation("15:04", startStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("error parsing start time: %v", err)
	}
	start := time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(),
		startTime.Hour(), startTime.Minute(), 0, 0, loc)

	end := start.Add(time.Hour)
	if endStr != "" {
		endTime, err := time.ParseInLocation("15:04", endStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("error parsing end time: %v", err)
		}
		end = time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(),
			endTime.Hour(), endTime.Minute(), 0, 0, loc)
	}

	return start, end, nil
}

// eventID derives a stable UID from the entry's identifying fields.
func eventID(name, day, timeStr string) string {
	hash := md5.Sum([]byte(name + day + timeStr))
	return hex.EncodeToString(hash[:])
}
