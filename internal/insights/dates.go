// Package insights generates proactive digest lines from a forecast
// dataset: the warmest hour coming up, the next rain, a windy day ahead.
// Each insight pairs prose with an icon name for the consumer to render.
package insights

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay buckets an hour into the conversational part of day.
func TimeOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return "morning"
	case h >= 12 && h < 17:
		return "afternoon"
	case h >= 17 && h < 21:
		return "evening"
	default:
		return "night"
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// DayPhrase names a future date the way a person would: "today",
// "tomorrow", "this weekend on saturday", "friday next week". Past dates
// come back empty.
func DayPhrase(d, ref time.Time) string {
	if d.Before(startOfDay(ref)) {
		return ""
	}
	if sameDay(d, ref) {
		return "today"
	}
	if sameDay(d, ref.AddDate(0, 0, 1)) {
		return "tomorrow"
	}

	weekStart := startOfDay(ref.AddDate(0, 0, -mondayIndex(ref.Weekday())))
	weekEnd := weekStart.AddDate(0, 0, 7)
	nextWeekEnd := weekStart.AddDate(0, 0, 14)
	dayName := strings.ToLower(d.Format("Monday"))

	switch {
	case d.Before(weekEnd):
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			return "this weekend on " + dayName
		}
		return dayName
	case d.Before(nextWeekEnd):
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			return "next weekend on " + dayName
		}
		return dayName + " next week"
	default:
		return dayName
	}
}

// HourPhrase names a future instant with its part of day and clock time,
// e.g. "tomorrow afternoon at 3 PM".
func HourPhrase(t, ref time.Time) string {
	clock := t.Format("3 PM")
	if t.Minute() > 0 {
		clock = t.Format("3:04 PM")
	}

	day := DayPhrase(t, ref)
	if day == "" {
		day = strings.ToLower(t.Format("Monday"))
	}
	return fmt.Sprintf("%s %s at %s", day, TimeOfDay(t), clock)
}
