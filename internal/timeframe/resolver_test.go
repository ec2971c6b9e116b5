package timeframe

import (
	"testing"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/types"
)

// Wednesday, June 11 2025, 09:30 UTC
var ref = time.Date(2025, 6, 11, 9, 30, 0, 0, time.UTC)

func TestResolveAbsoluteDay(t *testing.T) {
	tests := []struct {
		name      string
		phrase    string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "today",
			phrase:    "today",
			wantStart: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:      "tomorrow",
			phrase:    "tomorrow",
			wantStart: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:      "day after tomorrow",
			phrase:    "day after tomorrow",
			wantStart: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:      "yesterday",
			phrase:    "yesterday",
			wantStart: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			// Reference is a Wednesday; Friday is two days ahead.
			name:      "weekday ahead in same week",
			phrase:    "friday",
			wantStart: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			// Monday already passed this week, so it wraps to next week.
			name:      "weekday behind wraps forward",
			phrase:    "monday",
			wantStart: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			// Same weekday as the reference defaults to next week.
			name:      "same weekday means next week",
			phrase:    "wednesday",
			wantStart: time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			// "this" pins the same weekday to the reference day itself.
			name:      "this same weekday stays today",
			phrase:    "this wednesday",
			wantStart: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:      "last weekday",
			phrase:    "last friday",
			wantStart: time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:      "unresolvable falls back to today",
			phrase:    "someday",
			wantStart: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(types.TimeframeAbsoluteDay, tt.phrase, ref)
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, expected %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, expected %v", got.End, tt.wantEnd)
			}
		})
	}
}

func TestResolveWeekendAlwaysSaturdayToSunday(t *testing.T) {
	// Property: "this weekend" starts on a Saturday and ends on a Sunday
	// regardless of the reference weekday.
	for day := 0; day < 7; day++ {
		r := ref.AddDate(0, 0, day)
		got := Resolve(types.TimeframeRelativeDay, "this weekend", r)

		if got.Start.Weekday() != time.Saturday {
			t.Errorf("ref %v: Start weekday = %v, expected Saturday", r.Weekday(), got.Start.Weekday())
		}
		if got.End.Weekday() != time.Sunday {
			t.Errorf("ref %v: End weekday = %v, expected Sunday", r.Weekday(), got.End.Weekday())
		}
		if got.End.Before(got.Start) {
			t.Errorf("ref %v: End %v before Start %v", r.Weekday(), got.End, got.Start)
		}
	}
}

func TestResolveRelativeDay(t *testing.T) {
	tests := []struct {
		name      string
		phrase    string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			// Week containing the reference, Monday through Sunday.
			name:      "this week",
			phrase:    "this week",
			wantStart: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:      "next week",
			phrase:    "next week",
			wantStart: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:      "last week",
			phrase:    "last week",
			wantStart: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:      "few days lookahead",
			phrase:    "next few days",
			wantStart: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(types.TimeframeRelativeDay, tt.phrase, ref)
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, expected %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, expected %v", got.End, tt.wantEnd)
			}
		})
	}
}

func TestResolveAbsoluteTime(t *testing.T) {
	tests := []struct {
		name     string
		phrase   string
		wantHour int
		wantMin  int
	}{
		{name: "3pm", phrase: "3pm", wantHour: 15},
		{name: "3:45 pm", phrase: "3:45 pm", wantHour: 15, wantMin: 45},
		{name: "12pm stays noon", phrase: "12pm", wantHour: 12},
		{name: "12am is midnight", phrase: "12am", wantHour: 0},
		{name: "9am", phrase: "9 am", wantHour: 9},
		{name: "bare 24h clock", phrase: "18:00", wantHour: 18},
		{name: "midnight", phrase: "at midnight", wantHour: 0},
		{name: "noon", phrase: "at noon", wantHour: 12},
		{name: "midday", phrase: "midday", wantHour: 12},
		{name: "out of range hour falls back to noon", phrase: "25pm", wantHour: 12},
		{name: "out of range minute falls back to noon", phrase: "7:75pm", wantHour: 12},
		{name: "no clock token falls back to noon", phrase: "sometime", wantHour: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(types.TimeframeAbsoluteTime, tt.phrase, ref)

			wantStart := time.Date(2025, 6, 11, tt.wantHour, tt.wantMin, 0, 0, time.UTC)
			if !got.Start.Equal(wantStart) {
				t.Errorf("Start = %v, expected %v", got.Start, wantStart)
			}
			if want := wantStart.Add(time.Hour); !got.End.Equal(want) {
				t.Errorf("End = %v, expected %v", got.End, want)
			}
		})
	}
}

func TestResolveRelativeTime(t *testing.T) {
	tests := []struct {
		name     string
		phrase   string
		wantHour int
	}{
		{name: "morning", phrase: "this morning", wantHour: 6},
		{name: "afternoon", phrase: "this afternoon", wantHour: 12},
		{name: "evening", phrase: "late evening", wantHour: 18},
		{name: "tonight", phrase: "tonight", wantHour: 20},
		{name: "overnight", phrase: "overnight", wantHour: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(types.TimeframeRelativeTime, tt.phrase, ref)

			wantStart := time.Date(2025, 6, 11, tt.wantHour, 0, 0, 0, time.UTC)
			if !got.Start.Equal(wantStart) {
				t.Errorf("Start = %v, expected %v", got.Start, wantStart)
			}
			if want := wantStart.Add(3 * time.Hour); !got.End.Equal(want) {
				t.Errorf("End = %v, expected %v", got.End, want)
			}
		})
	}

	t.Run("no keyword starts from reference instant", func(t *testing.T) {
		got := Resolve(types.TimeframeRelativeTime, "in a bit", ref)
		if !got.Start.Equal(ref) {
			t.Errorf("Start = %v, expected reference %v", got.Start, ref)
		}
		if want := ref.Add(3 * time.Hour); !got.End.Equal(want) {
			t.Errorf("End = %v, expected %v", got.End, want)
		}
	})
}

func TestResolveStartNeverAfterEnd(t *testing.T) {
	categories := []types.TimeframeCategory{
		types.TimeframeAbsoluteDay,
		types.TimeframeRelativeDay,
		types.TimeframeAbsoluteTime,
		types.TimeframeRelativeTime,
		types.TimeframeNone,
	}
	phrases := []string{
		"", "today", "tomorrow", "day after tomorrow", "yesterday",
		"monday", "next friday", "last sunday", "this weekend", "next weekend",
		"next week", "last week", "few days", "3pm", "12am", "25pm", "noon",
		"midnight", "tonight", "morning", "evening", "gibberish",
	}

	for day := 0; day < 14; day++ {
		r := ref.AddDate(0, 0, day)
		for _, c := range categories {
			for _, p := range phrases {
				got := Resolve(c, p, r)
				if got.End.Before(got.Start) {
					t.Errorf("Resolve(%q, %q, %v): End %v before Start %v", c, p, r, got.End, got.Start)
				}
			}
		}
	}
}

func TestExtractPhrase(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category types.TimeframeCategory
		want     string
	}{
		{
			name:     "longest phrase wins",
			query:    "will it rain the day after tomorrow?",
			category: types.TimeframeAbsoluteDay,
			want:     "the day after tomorrow",
		},
		{
			name:     "next weekend before weekend",
			query:    "what about next weekend",
			category: types.TimeframeRelativeDay,
			want:     "next weekend",
		},
		{
			name:     "clock time with meridiem",
			query:    "temperature at 3:30pm please",
			category: types.TimeframeAbsoluteTime,
			want:     "3:30pm",
		},
		{
			name:     "tonight",
			query:    "will it be windy tonight",
			category: types.TimeframeRelativeTime,
			want:     "tonight",
		},
		{
			name:     "no match",
			query:    "how are you",
			category: types.TimeframeAbsoluteDay,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPhrase(tt.query, tt.category); got != tt.want {
				t.Errorf("ExtractPhrase() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		query        string
		wantCategory types.TimeframeCategory
		wantPhrase   string
	}{
		{"will it rain tomorrow", types.TimeframeAbsoluteDay, "tomorrow"},
		{"plans for this weekend", types.TimeframeRelativeDay, "this weekend"},
		{"temperature at 5pm", types.TimeframeAbsoluteTime, "5pm"},
		{"is it cold tonight", types.TimeframeRelativeTime, "tonight"},
		{"how humid is it", types.TimeframeNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			category, phrase := DetectCategory(tt.query)
			if category != tt.wantCategory || phrase != tt.wantPhrase {
				t.Errorf("DetectCategory(%q) = (%q, %q), expected (%q, %q)",
					tt.query, category, phrase, tt.wantCategory, tt.wantPhrase)
			}
		})
	}
}
