// Package classify turns a free-text weather query into a structured intent.
// The production pipeline fronts this with an on-device model; RuleClassifier
// is the deterministic keyword engine behind the same interface, so the two
// can be swapped without touching the interpretation side.
package classify

import (
	"regexp"
	"strings"

	"github.com/ctrln3rd/lunara-watch/internal/timeframe"
	"github.com/ctrln3rd/lunara-watch/internal/types"
	"go.uber.org/zap"
)

// Classifier produces an intent for a query.
type Classifier interface {
	Classify(query string) types.Intent
}

// topicKeywords maps each topic to its trigger words. Scoring counts hits
// per topic; ties resolve in topicOrder, most specific first.
var topicKeywords = map[types.Topic][]string{
	types.TopicTemperature: {
		"temperature", "hot", "cold", "warm", "cool", "degrees", "heat",
		"chilly", "freezing", "mild", "hottest", "coldest", "warmest",
	},
	types.TopicPrecipitation: {
		"rain", "raining", "rainy", "snow", "snowing", "precipitation",
		"drizzle", "shower", "showers", "umbrella", "hail", "sleet", "wet",
	},
	types.TopicWind: {
		"wind", "windy", "winds", "breeze", "breezy", "gust", "gusts", "gusty",
	},
	types.TopicHumidity: {
		"humidity", "humid", "muggy", "sticky", "moisture",
	},
	types.TopicPressure: {
		"pressure", "barometer", "barometric",
	},
	types.TopicUV: {
		"uv", "sunburn", "sunscreen", "ultraviolet",
	},
	types.TopicCloudCover: {
		"cloud", "clouds", "cloudy", "overcast", "sunny", "skies", "sky",
	},
	types.TopicVisibility: {
		"visibility", "fog", "foggy", "haze", "hazy", "mist", "misty",
	},
	types.TopicSun: {
		"sunrise", "sunset", "daylight", "sun rise", "sun set", "golden hour",
	},
	types.TopicMoon: {
		"moon", "lunar", "moonlight", "full moon", "new moon",
	},
	types.TopicAlerts: {
		"alert", "alerts", "warning", "warnings", "severe", "dangerous",
		"thunderstorm", "thunderstorms", "storm", "storms", "hazard",
	},
	types.TopicGreeting: {
		"hello", "hi", "hey", "greetings", "good morning", "good afternoon",
		"good evening", "good night", "howdy", "yo",
	},
	types.TopicGeneral: {
		"weather", "forecast", "conditions", "outlook", "like outside",
	},
}

// topicOrder is the tie-break priority: specific topics beat the broad ones,
// and greeting sits last among keyword topics so "good morning, will it
// rain?" classifies as precipitation.
var topicOrder = []types.Topic{
	types.TopicSun,
	types.TopicMoon,
	types.TopicAlerts,
	types.TopicPrecipitation,
	types.TopicTemperature,
	types.TopicWind,
	types.TopicHumidity,
	types.TopicPressure,
	types.TopicUV,
	types.TopicVisibility,
	types.TopicCloudCover,
	types.TopicGeneral,
	types.TopicGreeting,
}

// subIntentKeywords refines a topic with a statistic or kind qualifier.
// Checked in order within each topic.
var subIntentKeywords = map[types.Topic][]struct {
	sub   string
	words []string
}{
	types.TopicTemperature: {
		{"max", []string{"hottest", "warmest", "highest", "maximum", "max", "high"}},
		{"min", []string{"coldest", "lowest", "minimum", "min", "low"}},
		{"avg", []string{"average", "avg", "typical", "usually"}},
	},
	types.TopicPrecipitation: {
		{"snow", []string{"snow", "snowing", "sleet"}},
		{"rain", []string{"rain", "raining", "rainy", "drizzle", "shower", "showers"}},
	},
	types.TopicWind: {
		{"direction", []string{"direction", "which way", "where is the wind", "from the"}},
		{"speed", []string{"speed", "how fast", "how strong"}},
	},
	types.TopicUV: {
		{"max", []string{"peak", "highest", "maximum", "max"}},
	},
	types.TopicSun: {
		{"rise", []string{"sunrise", "sun rise", "come up"}},
		{"set", []string{"sunset", "sun set", "go down"}},
	},
	types.TopicGreeting: {
		{"morning", []string{"good morning", "morning"}},
		{"afternoon", []string{"good afternoon", "afternoon"}},
		{"evening", []string{"good evening", "evening"}},
		{"night", []string{"good night", "night"}},
		{"casual", []string{"hey", "yo", "howdy"}},
		{"formal", []string{"greetings"}},
	},
}

// timeOfDayHint marks absolute-day queries that still care about a specific
// part of the day, which pushes the granularity down to hourly.
var timeOfDayHint = regexp.MustCompile(`\b(morning|afternoon|evening|night|noon|midnight|\d{1,2}\s*(am|pm))\b`)

var contractions = strings.NewReplacer(
	"won't", "will not",
	"can't", "cannot",
	"n't", " not",
	"'re", " are",
	"'ve", " have",
	"'ll", " will",
	"'d", " would",
	"'m", " am",
)

var nonWord = regexp.MustCompile(`[^a-z0-9\s?']`)
var spaces = regexp.MustCompile(`\s+`)

// normalize lowercases the query, expands contractions and strips
// punctuation so keyword matching sees clean word boundaries.
func normalize(query string) string {
	q := strings.ToLower(query)
	q = contractions.Replace(q)
	q = nonWord.ReplaceAllString(q, " ")
	return strings.TrimSpace(spaces.ReplaceAllString(q, " "))
}

// RuleClassifier is the keyword-scoring implementation of Classifier.
type RuleClassifier struct {
	logger *zap.SugaredLogger
}

// NewRuleClassifier returns a ready classifier. A nil logger disables
// telemetry.
func NewRuleClassifier(logger *zap.SugaredLogger) *RuleClassifier {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RuleClassifier{logger: logger}
}

// Classify maps a query to an intent. It never fails: a query with no
// recognizable keywords comes back as TopicUnknown with low confidence.
func (c *RuleClassifier) Classify(query string) types.Intent {
	q := normalize(query)

	topic, hits := c.scoreTopic(q)
	category, phrase := timeframe.DetectCategory(q)

	intent := types.Intent{
		Topic:             topic,
		SubIntent:         c.subIntent(topic, q),
		TimeframeCategory: category,
		TimeframePhrase:   phrase,
		Granularity:       inferGranularity(category, q),
		Confidence:        confidence(topic, hits),
	}

	c.logger.Debugw("classified query",
		"topic", intent.Topic,
		"sub_intent", intent.SubIntent,
		"timeframe", intent.TimeframeCategory,
		"phrase", intent.TimeframePhrase,
		"granularity", intent.Granularity,
		"confidence", intent.Confidence)

	return intent
}

func (c *RuleClassifier) scoreTopic(q string) (types.Topic, int) {
	best, bestHits := types.TopicUnknown, 0
	for _, topic := range topicOrder {
		hits := 0
		for _, kw := range topicKeywords[topic] {
			if containsWord(q, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = topic, hits
		}
	}
	return best, bestHits
}

func (c *RuleClassifier) subIntent(topic types.Topic, q string) string {
	for _, entry := range subIntentKeywords[topic] {
		for _, kw := range entry.words {
			if containsWord(q, kw) {
				return entry.sub
			}
		}
	}
	return ""
}

// inferGranularity picks the forecast series the answer should read. Hour
// and time-of-day expressions want the hourly series; multi-day phrases want
// the daily one; a single named day goes hourly only when the query also
// mentions a part of that day.
func inferGranularity(category types.TimeframeCategory, q string) types.Granularity {
	switch category {
	case types.TimeframeAbsoluteTime, types.TimeframeRelativeTime:
		return types.GranularityHourly
	case types.TimeframeRelativeDay:
		return types.GranularityDaily
	case types.TimeframeAbsoluteDay:
		if timeOfDayHint.MatchString(q) {
			return types.GranularityHourly
		}
		return types.GranularityDaily
	default:
		return types.GranularityAll
	}
}

// confidence is a coarse stand-in for the model's softmax score: more
// keyword hits mean a stronger match.
func confidence(topic types.Topic, hits int) float64 {
	if topic == types.TopicUnknown {
		return 0.2
	}
	score := 0.6 + 0.15*float64(hits)
	if score > 0.95 {
		score = 0.95
	}
	return score
}

// containsWord reports whether phrase occurs in s on word boundaries.
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
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}
