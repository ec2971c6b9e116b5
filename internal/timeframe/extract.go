package timeframe

import (
	"regexp"
	"strings"

	"github.com/ctrln3rd/lunara-watch/internal/types"
)

// meridiemClockPattern requires a meridiem so extraction doesn't grab bare
// numbers like "3 days".
var meridiemClockPattern = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)

// categoryKeywords lists the recognizable phrases per timeframe category.
// Order matters: longer phrases come first so "day after tomorrow" wins
// over "tomorrow" and "next weekend" over "weekend".
var categoryKeywords = map[types.TimeframeCategory][]string{
	types.TimeframeAbsoluteDay: {
		"the day after tomorrow",
		"day after tomorrow",
		"tomorrow",
		"yesterday",
		"today",
		"next monday", "next tuesday", "next wednesday", "next thursday",
		"next friday", "next saturday", "next sunday",
		"this monday", "this tuesday", "this wednesday", "this thursday",
		"this friday", "this saturday", "this sunday",
		"last monday", "last tuesday", "last wednesday", "last thursday",
		"last friday", "last saturday", "last sunday",
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	},
	types.TimeframeRelativeDay: {
		"over the weekend",
		"next weekend",
		"this weekend",
		"weekend",
		"next week",
		"this week",
		"last week",
		"next few days",
		"coming days",
		"few days",
		"several days",
		"couple of days",
	},
	types.TimeframeAbsoluteTime: {
		"at midnight",
		"at noon",
		"midnight",
		"noon",
		"midday",
	},
	types.TimeframeRelativeTime: {
		"tonight",
		"this morning",
		"this afternoon",
		"this evening",
		"early morning",
		"late morning",
		"late afternoon",
		"late evening",
		"morning",
		"afternoon",
		"evening",
		"overnight",
		"night",
	},
}

// ExtractPhrase returns the timeframe phrase within query that drives
// resolution for the given category, or "" when nothing matches.
func ExtractPhrase(query string, category types.TimeframeCategory) string {
	if category == types.TimeframeNone {
		return ""
	}

	q := strings.ToLower(query)
	for _, keyword := range categoryKeywords[category] {
		if containsWord(q, keyword) {
			return keyword
		}
	}

	if category == types.TimeframeAbsoluteTime {
		if m := meridiemClockPattern.FindString(q); m != "" {
			return m
		}
	}

	return ""
}

// DetectCategory scans the query for timeframe keywords and returns the
// matching category together with the matched phrase. Clock times are
// checked first as the most specific expression, then day-level phrases,
// then times of day. Returns TimeframeNone when nothing matches.
func DetectCategory(query string) (types.TimeframeCategory, string) {
	q := strings.ToLower(query)

	if m := meridiemClockPattern.FindString(q); m != "" {
		return types.TimeframeAbsoluteTime, m
	}

	ordered := []types.TimeframeCategory{
		types.TimeframeAbsoluteTime,
		types.TimeframeAbsoluteDay,
		types.TimeframeRelativeDay,
		types.TimeframeRelativeTime,
	}
	for _, category := range ordered {
		if phrase := ExtractPhrase(q, category); phrase != "" {
			return category, phrase
		}
	}

	return types.TimeframeNone, ""
}

// containsWord reports whether phrase occurs in s on word boundaries, so
// "noon" does not match inside "afternoon" and "night" does not match
// inside "tonight".
func containsWord(s, phrase string) bool {
	for idx := strings.Index(s, phrase); idx != -1; {
		before := idx == 0 || !isWordChar(s[idx-1])
		end := idx + len(phrase)
		after := end == len(s) || !isWordChar(s[end])
		if before && after {
			return true
		}
		next := strings.Index(s[idx+1:], phrase)
		if next == -1 {
			break
		}
		idx += 1 + next
	}
	return false
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
