package types

// Topic is the main category of a classified weather query. The set is
// closed: the interpreter dispatch table is keyed on these values and
// anything unrecognized falls back to the general interpreter.
type Topic string

const (
	TopicTemperature   Topic = "temperature"
	TopicPrecipitation Topic = "precipitation"
	TopicWind          Topic = "wind"
	TopicCloudCover    Topic = "cloud_cover"
	TopicUV            Topic = "uv"
	TopicHumidity      Topic = "humidity"
	TopicPressure      Topic = "pressure"
	TopicVisibility    Topic = "visibility"
	TopicSun           Topic = "sun"
	TopicMoon          Topic = "moon"
	TopicAlerts        Topic = "alerts"
	TopicActivity      Topic = "activity"
	TopicGreeting      Topic = "greeting"
	TopicFeedback      Topic = "feedback"
	TopicFarewell      Topic = "farewell"
	TopicGeneral       Topic = "general"
	TopicUnknown       Topic = "unknown"
)

// TimeframeCategory is the coarse class of a time expression. It selects
// the resolution strategy that turns the matched phrase into an interval.
type TimeframeCategory string

const (
	TimeframeAbsoluteDay  TimeframeCategory = "absolute_day"  // "tomorrow", "next friday"
	TimeframeRelativeDay  TimeframeCategory = "relative_day"  // "this weekend", "next week"
	TimeframeAbsoluteTime TimeframeCategory = "absolute_time" // "3pm", "at noon"
	TimeframeRelativeTime TimeframeCategory = "relative_time" // "tonight", "this morning"
	TimeframeNone         TimeframeCategory = "none"
)

// Granularity selects which series of the forecast dataset to read.
type Granularity string

const (
	GranularityHourly Granularity = "hourly"
	GranularityDaily  Granularity = "daily"
	GranularityAll    Granularity = "all"
)

// Intent is the classifier's structured output for a single query.
// TimeframePhrase is the raw matched phrase driving timeframe resolution;
// it is empty when TimeframeCategory is TimeframeNone. Resolution degrades
// to a default interval when the phrase is empty regardless of category.
type Intent struct {
	Topic             Topic             `json:"intent"`
	SubIntent         string            `json:"sub_intent,omitempty"`
	TimeframeCategory TimeframeCategory `json:"timeframe_category"`
	TimeframePhrase   string            `json:"timeframe_phrase,omitempty"`
	Granularity       Granularity       `json:"forecast_granularity"`
	Confidence        float64           `json:"confidence"`
}
