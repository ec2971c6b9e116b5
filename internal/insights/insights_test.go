package insights

import (
	"strings"
	"testing"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/types"
)

// Wednesday, 2025-06-11 09:00 UTC.
var ref = time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

func TestDayPhrase(t *testing.T) {
	tests := []struct {
		name string
		d    time.Time
		want string
	}{
		{"today", ref, "today"},
		{"tomorrow", ref.AddDate(0, 0, 1), "tomorrow"},
		{"friday this week", ref.AddDate(0, 0, 2), "friday"},
		{"saturday this week", ref.AddDate(0, 0, 3), "this weekend on saturday"},
		{"sunday this week", ref.AddDate(0, 0, 4), "this weekend on sunday"},
		{"tuesday next week", ref.AddDate(0, 0, 6), "tuesday next week"},
		{"saturday next week", ref.AddDate(0, 0, 10), "next weekend on saturday"},
		{"far future", ref.AddDate(0, 0, 15), "thursday"},
		{"past", ref.AddDate(0, 0, -2), ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayPhrase(tc.d, ref); got != tc.want {
				t.Errorf("DayPhrase(%s) = %q, want %q", tc.d.Format("Mon Jan 2"), got, tc.want)
			}
		})
	}
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, "morning"}, {11, "morning"},
		{12, "afternoon"}, {16, "afternoon"},
		{17, "evening"}, {20, "evening"},
		{21, "night"}, {3, "night"},
	}
	for _, tc := range tests {
		d := time.Date(2025, 6, 11, tc.hour, 0, 0, 0, time.UTC)
		if got := TimeOfDay(d); got != tc.want {
			t.Errorf("TimeOfDay(hour %d) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestHourPhrase(t *testing.T) {
	at := time.Date(2025, 6, 12, 15, 0, 0, 0, time.UTC)
	if got := HourPhrase(at, ref); got != "tomorrow afternoon at 3 PM" {
		t.Errorf("HourPhrase = %q, want %q", got, "tomorrow afternoon at 3 PM")
	}

	withMinutes := time.Date(2025, 6, 11, 18, 30, 0, 0, time.UTC)
	if got := HourPhrase(withMinutes, ref); got != "today evening at 6:30 PM" {
		t.Errorf("HourPhrase = %q, want %q", got, "today evening at 6:30 PM")
	}
}

func insightTexts(in []Insight) []string {
	out := make([]string, len(in))
	for i, ins := range in {
		out[i] = ins.Text
	}
	return out
}

func containsText(in []Insight, substr string) bool {
	for _, ins := range in {
		if strings.Contains(ins.Text, substr) {
			return true
		}
	}
	return false
}

func TestTemperatureInsights(t *testing.T) {
	ds := &types.ForecastDataset{}
	for hour := 0; hour < 24; hour++ {
		temp := 15.0
		if hour == 14 {
			temp = 27
		}
		if hour == 4 {
			temp = 8
		}
		ds.Hourly = append(ds.Hourly, types.HourlyPoint{
			Timestamp:   ref.Add(time.Duration(hour) * time.Hour),
			Temperature: temp,
		})
	}
	// Day maxes: 20, 21, 28 (sharp rise), 20 (sharp drop).
	for i, max := range []float64{20, 21, 28, 20} {
		ds.Daily = append(ds.Daily, types.DailyPoint{
			Date:           ref.AddDate(0, 0, i),
			TemperatureMax: max,
			TemperatureMin: max - 10,
		})
	}

	got := Temperature(ds, ref)

	for _, want := range []string{
		"warmest time at 27°C",
		"coldest time at 8°C",
		"warmest day at 28°C",
		"Sharp temperature rise expected on friday (up to 28°C).",
		"Sharp temperature drop expected on this weekend on saturday (down to 20°C).",
	} {
		if !containsText(got, want) {
			t.Errorf("insights missing %q; got %q", want, insightTexts(got))
		}
	}
}

func TestTemperatureTrend(t *testing.T) {
	mk := func(maxes ...float64) *types.ForecastDataset {
		ds := &types.ForecastDataset{}
		for i, m := range maxes {
			ds.Daily = append(ds.Daily, types.DailyPoint{Date: ref.AddDate(0, 0, i), TemperatureMax: m})
		}
		return ds
	}

	if got := Temperature(mk(20, 20.5, 21), ref); !containsText(got, "stay steady") {
		t.Errorf("expected steady trend; got %q", insightTexts(got))
	}
	if got := Temperature(mk(18, 20, 23), ref); !containsText(got, "Warming trend") {
		t.Errorf("expected warming trend; got %q", insightTexts(got))
	}
	if got := Temperature(mk(23, 20, 18), ref); !containsText(got, "Cooling trend") {
		t.Errorf("expected cooling trend; got %q", insightTexts(got))
	}
}

func TestPrecipitationInsights(t *testing.T) {
	ds := &types.ForecastDataset{
		Hourly: []types.HourlyPoint{
			{Timestamp: ref.Add(2 * time.Hour), PrecipitationProbability: 0.02},
			{Timestamp: ref.Add(5 * time.Hour), PrecipitationProbability: 0.6, PrecipitationType: types.PrecipRain},
			{Timestamp: ref.Add(6 * time.Hour), PrecipitationProbability: 0.01},
		},
		Daily: []types.DailyPoint{
			{Date: ref, PrecipitationProbability: 0.6, PrecipitationType: types.PrecipRain},
			{Date: ref.AddDate(0, 0, 1), PrecipitationProbability: 0.02},
		},
	}

	got := Precipitation(ds, ref)

	if !containsText(got, "rain expected today afternoon at 2 PM") {
		t.Errorf("missing next-rain-hour insight; got %q", insightTexts(got))
	}
	if !containsText(got, "rain expected on today") {
		t.Errorf("missing next-rain-day insight; got %q", insightTexts(got))
	}
	if !containsText(got, "taper off by today afternoon") {
		t.Errorf("missing taper-off insight; got %q", insightTexts(got))
	}
	if !containsText(got, "Scattered precipitation") {
		t.Errorf("missing outlook insight; got %q", insightTexts(got))
	}
}

func TestPrecipitationDryOutlook(t *testing.T) {
	ds := &types.ForecastDataset{
		Daily: []types.DailyPoint{
			{Date: ref, PrecipitationProbability: 0.02},
			{Date: ref.AddDate(0, 0, 1), PrecipitationProbability: 0.05},
		},
	}
	if got := Precipitation(ds, ref); !containsText(got, "Mostly dry conditions") {
		t.Errorf("expected dry outlook; got %q", insightTexts(got))
	}
}

func TestOtherInsights(t *testing.T) {
	ds := &types.ForecastDataset{
		Hourly: []types.HourlyPoint{
			{Timestamp: ref.Add(3 * time.Hour), WindSpeed: 16},
			{Timestamp: ref.Add(8 * time.Hour), Condition: types.ConditionThunderstorm},
		},
		Daily: []types.DailyPoint{
			{Date: ref, TemperatureMax: 36, MoonPhase: types.MoonFull},
			{Date: ref.AddDate(0, 0, 1), TemperatureMax: 4},
		},
	}

	got := Other(ds, ref)

	for _, want := range []string{
		"Full moon is on today.",
		"Strong winds expected today afternoon at 12 PM.",
		"Very hot conditions expected on today.",
		"Cold day expected on tomorrow.",
		"Thunderstorm risk today evening.",
	} {
		if !containsText(got, want) {
			t.Errorf("insights missing %q; got %q", want, insightTexts(got))
		}
	}
}

func TestInsightsNilDataset(t *testing.T) {
	if got := All(nil, ref); len(got) != 0 {
		t.Errorf("All(nil) = %q, want empty", insightTexts(got))
	}
}
