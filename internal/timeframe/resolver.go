// Package timeframe resolves natural-language time expressions into concrete
// intervals on the absolute timeline. Resolution is pure and deterministic
// given a reference instant: the same (category, phrase, reference) triple
// always produces the same interval, and unresolvable phrases fall back to a
// category default rather than returning an error.
package timeframe

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/types"
)

// clockPattern matches "<hour>[:<minute>] [am|pm]" clock tokens.
var clockPattern = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

var weekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Resolve converts a (category, phrase) pair plus a reference instant into an
// absolute interval. Start is always <= End. Unknown categories and empty
// phrases resolve to the reference's whole calendar day.
func Resolve(category types.TimeframeCategory, phrase string, ref time.Time) types.Interval {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if category == types.TimeframeNone || phrase == "" {
		return dayRange(ref)
	}

	switch category {
	case types.TimeframeAbsoluteDay:
		return resolveAbsoluteDay(phrase, ref)
	case types.TimeframeRelativeDay:
		return resolveRelativeDay(phrase, ref)
	case types.TimeframeAbsoluteTime:
		return resolveAbsoluteTime(phrase, ref)
	case types.TimeframeRelativeTime:
		return resolveRelativeTime(phrase, ref)
	default:
		return dayRange(ref)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func dayRange(t time.Time) types.Interval {
	return types.Interval{Start: startOfDay(t), End: endOfDay(t)}
}

// mondayIndex maps time.Weekday (Sunday=0) onto a Monday=0 week, matching
// the weekday list above.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func startOfWeek(t time.Time) time.Time {
	return startOfDay(t.AddDate(0, 0, -mondayIndex(t.Weekday())))
}

func resolveAbsoluteDay(phrase string, ref time.Time) types.Interval {
	// Longest phrases first: "day after tomorrow" contains "tomorrow".
	switch {
	case strings.Contains(phrase, "today"):
		return dayRange(ref)
	case strings.Contains(phrase, "day after tomorrow"):
		return dayRange(ref.AddDate(0, 0, 2))
	case strings.Contains(phrase, "tomorrow"):
		return dayRange(ref.AddDate(0, 0, 1))
	case strings.Contains(phrase, "yesterday"):
		return dayRange(ref.AddDate(0, 0, -1))
	}

	for idx, name := range weekdayNames {
		if !strings.Contains(phrase, name) {
			continue
		}
		offset := (idx - mondayIndex(ref.Weekday()) + 7) % 7
		// A bare or "next"-qualified weekday that lands on the reference day
		// means the same weekday next week; "this <weekday>" keeps it today.
		if offset == 0 && !strings.Contains(phrase, "this") {
			offset = 7
		}
		if strings.Contains(phrase, "last") {
			offset -= 7
		}
		return dayRange(ref.AddDate(0, 0, offset))
	}

	return dayRange(ref)
}

func resolveRelativeDay(phrase string, ref time.Time) types.Interval {
	if strings.Contains(phrase, "weekend") {
		// time.Weekday has Saturday=6, so this is days until the coming
		// Saturday, with 0 when the reference already is one.
		daysUntilSaturday := (6 - int(ref.Weekday()) + 7) % 7
		if daysUntilSaturday == 0 && strings.Contains(phrase, "next") {
			daysUntilSaturday = 7
		}
		saturday := startOfDay(ref.AddDate(0, 0, daysUntilSaturday))
		return types.Interval{Start: saturday, End: endOfDay(saturday.AddDate(0, 0, 1))}
	}

	if strings.Contains(phrase, "week") {
		var anchor time.Time
		switch {
		case strings.Contains(phrase, "next"):
			anchor = ref.AddDate(0, 0, 7)
		case strings.Contains(phrase, "last"):
			anchor = ref.AddDate(0, 0, -7)
		default:
			anchor = ref
		}
		start := startOfWeek(anchor)
		return types.Interval{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}
	}

	// "few days", "coming days" and friends: a multi-day lookahead.
	return types.Interval{Start: startOfDay(ref), End: endOfDay(ref.AddDate(0, 0, 3))}
}

func resolveAbsoluteTime(phrase string, ref time.Time) types.Interval {
	hour, minute := 12, 0 // default noon when nothing parses

	if m := clockPattern.FindStringSubmatch(phrase); m != nil {
		if h, min, ok := parseClock(m); ok {
			hour, minute = h, min
		}
	} else if strings.Contains(phrase, "midnight") {
		hour = 0
	} else if strings.Contains(phrase, "noon") || strings.Contains(phrase, "midday") {
		hour = 12
	}

	start := startOfDay(ref).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return types.Interval{Start: start, End: start.Add(time.Hour)}
}

// parseClock converts a clock-pattern match into a 24-hour (hour, minute)
// pair. Out-of-range values ("25pm", "7:75") are rejected so the caller
// falls back to the noon default.
func parseClock(m []string) (hour, minute int, ok bool) {
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	meridiem := m[3]

	if minute > 59 {
		return 0, 0, false
	}
	if meridiem != "" {
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if meridiem == "pm" && hour < 12 {
			hour += 12
		}
		if meridiem == "am" && hour == 12 {
			hour = 0
		}
	} else if hour > 23 {
		return 0, 0, false
	}

	return hour, minute, true
}

func resolveRelativeTime(phrase string, ref time.Time) types.Interval {
	var hour int
	switch {
	case strings.Contains(phrase, "morning"):
		hour = 6
	case strings.Contains(phrase, "afternoon"):
		hour = 12
	case strings.Contains(phrase, "evening"):
		hour = 18
	case strings.Contains(phrase, "night"): // tonight, overnight, night
		hour = 20
	default:
		// No keyword: a short lookahead from the reference instant itself.
		return types.Interval{Start: ref, End: ref.Add(3 * time.Hour)}
	}

	start := startOfDay(ref).Add(time.Duration(hour) * time.Hour)
	return types.Interval{Start: start, End: start.Add(3 * time.Hour)}
}
