package classify

import (
	"testing"

	"github.com/ctrln3rd/lunara-watch/internal/types"
)

func TestClassifyTopics(t *testing.T) {
	c := NewRuleClassifier(nil)

	tests := []struct {
		query string
		topic types.Topic
		sub   string
	}{
		{"what's the temperature tomorrow?", types.TopicTemperature, ""},
		{"how hot will it get today?", types.TopicTemperature, ""},
		{"what's the hottest it will get?", types.TopicTemperature, "max"},
		{"coldest temperature this week", types.TopicTemperature, "min"},
		{"will it rain this evening?", types.TopicPrecipitation, "rain"},
		{"is it going to snow on friday?", types.TopicPrecipitation, "snow"},
		{"do I need an umbrella?", types.TopicPrecipitation, ""},
		{"how windy is it tomorrow?", types.TopicWind, ""},
		{"which direction is the wind blowing?", types.TopicWind, "direction"},
		{"how humid will it be?", types.TopicHumidity, ""},
		{"what's the barometric pressure?", types.TopicPressure, ""},
		{"do I need sunscreen today?", types.TopicUV, ""},
		{"peak uv index this afternoon", types.TopicUV, "max"},
		{"will it be cloudy later?", types.TopicCloudCover, ""},
		{"how is the visibility tonight?", types.TopicVisibility, ""},
		{"is it foggy out there?", types.TopicVisibility, ""},
		{"when is sunset today?", types.TopicSun, "set"},
		{"what time does the sun rise tomorrow?", types.TopicSun, "rise"},
		{"what phase is the moon in?", types.TopicMoon, ""},
		{"any weather warnings for tomorrow?", types.TopicAlerts, ""},
		{"are there thunderstorms coming?", types.TopicAlerts, ""},
		{"what's the weather like tomorrow?", types.TopicGeneral, ""},
		{"give me the forecast for next week", types.TopicGeneral, ""},
		{"hello there", types.TopicGreeting, ""},
		{"good morning!", types.TopicGreeting, "morning"},
		{"hey", types.TopicGreeting, "casual"},
		{"qwerty asdfgh", types.TopicUnknown, ""},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got := c.Classify(tc.query)
			if got.Topic != tc.topic {
				t.Errorf("topic = %q, want %q", got.Topic, tc.topic)
			}
			if got.SubIntent != tc.sub {
				t.Errorf("sub_intent = %q, want %q", got.SubIntent, tc.sub)
			}
		})
	}
}

func TestClassifyWeatherKeywordBeatsGreeting(t *testing.T) {
	c := NewRuleClassifier(nil)
	got := c.Classify("good morning, will it rain today?")
	if got.Topic != types.TopicPrecipitation {
		t.Errorf("topic = %q, want precipitation over greeting", got.Topic)
	}
}

func TestClassifyTimeframe(t *testing.T) {
	c := NewRuleClassifier(nil)

	tests := []struct {
		query    string
		category types.TimeframeCategory
		phrase   string
	}{
		{"temperature tomorrow", types.TimeframeAbsoluteDay, "tomorrow"},
		{"rain the day after tomorrow", types.TimeframeAbsoluteDay, "the day after tomorrow"},
		{"forecast for next week", types.TimeframeRelativeDay, "next week"},
		{"weather this weekend", types.TimeframeRelativeDay, "this weekend"},
		{"temperature at 3pm", types.TimeframeAbsoluteTime, "3pm"},
		{"wind at noon", types.TimeframeAbsoluteTime, "at noon"},
		{"will it rain tonight", types.TimeframeRelativeTime, "tonight"},
		{"what's the weather", types.TimeframeNone, ""},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got := c.Classify(tc.query)
			if got.TimeframeCategory != tc.category {
				t.Errorf("category = %q, want %q", got.TimeframeCategory, tc.category)
			}
			if got.TimeframePhrase != tc.phrase {
				t.Errorf("phrase = %q, want %q", got.TimeframePhrase, tc.phrase)
			}
		})
	}
}

func TestClassifyGranularity(t *testing.T) {
	c := NewRuleClassifier(nil)

	tests := []struct {
		query string
		want  types.Granularity
	}{
		{"temperature at 3pm", types.GranularityHourly},
		{"will it rain tonight", types.GranularityHourly},
		{"forecast for next week", types.GranularityDaily},
		{"temperature tomorrow", types.GranularityDaily},
		{"temperature tomorrow morning", types.GranularityHourly},
		{"what's the weather", types.GranularityAll},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			if got := c.Classify(tc.query); got.Granularity != tc.want {
				t.Errorf("granularity = %q, want %q", got.Granularity, tc.want)
			}
		})
	}
}

func TestClassifyConfidence(t *testing.T) {
	c := NewRuleClassifier(nil)

	known := c.Classify("will it rain tomorrow?")
	unknown := c.Classify("qwerty asdfgh")
	if known.Confidence <= unknown.Confidence {
		t.Errorf("keyword match confidence %v should exceed unknown %v",
			known.Confidence, unknown.Confidence)
	}
	if known.Confidence > 1 {
		t.Errorf("confidence %v exceeds 1", known.Confidence)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"What's   the WEATHER?!", "what's the weather?"},
		{"won't rain", "will not rain"},
		{"I'm cold", "i am cold"},
	}
	for _, tc := range tests {
		if got := normalize(tc.in); got != tc.want {
			t.Errorf("normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
