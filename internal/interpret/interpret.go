// Package interpret turns a filtered forecast subset plus a classified
// intent into a natural-language answer. One interpreter exists per topic;
// dispatch falls back to the general interpreter for unmapped topics, and
// every failure mode degrades to a fixed textual response.
package interpret

import (
	"math/rand"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/timeframe"
	"github.com/ctrln3rd/lunara-watch/internal/types"
	"go.uber.org/zap"
)

// Fixed responses for the dispatcher's terminal states.
const (
	MsgNoDataset = "No weather data available to interpret."
	MsgNoTopic   = "Sorry, I couldn't determine the type of weather info you're asking for."
	MsgNoMatch   = "No matching weather data found for the specified timeframe."
	MsgFailure   = "There was an issue interpreting the weather data. Please try again."
)

type interpretFunc func(*forecast.FilteredResult, *types.Intent) string

// Interpreter dispatches classified intents to topic interpreters. The
// clock and random source are injectable so callers and tests can pin the
// reference instant and the greeting selection.
type Interpreter struct {
	logger   *zap.SugaredLogger
	now      func() time.Time
	rng      *rand.Rand
	handlers map[types.Topic]interpretFunc
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithClock overrides the reference-time source used for timeframe
// resolution.
func WithClock(now func() time.Time) Option {
	return func(it *Interpreter) { it.now = now }
}

// WithRand overrides the random source used by the greeting interpreter.
func WithRand(rng *rand.Rand) Option {
	return func(it *Interpreter) { it.rng = rng }
}

// WithLogger sets the logger used for dispatch telemetry.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(it *Interpreter) { it.logger = logger }
}

// New creates an Interpreter with all topic handlers registered.
func New(opts ...Option) *Interpreter {
	it := &Interpreter{
		logger: zap.NewNop().Sugar(),
		now:    time.Now,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(it)
	}

	it.handlers = map[types.Topic]interpretFunc{
		types.TopicTemperature:   it.temperature,
		types.TopicPrecipitation: it.precipitation,
		types.TopicWind:          it.wind,
		types.TopicHumidity:      it.humidity,
		types.TopicPressure:      it.pressure,
		types.TopicUV:            it.uv,
		types.TopicCloudCover:    it.cloudCover,
		types.TopicVisibility:    it.visibility,
		types.TopicSun:           it.sun,
		types.TopicMoon:          it.moon,
		types.TopicAlerts:        it.alerts,
		types.TopicGeneral:       it.general,
		types.TopicGreeting:      it.greeting,
	}
	return it
}

// Interpret runs the full pipeline for one intent: resolve the timeframe,
// filter the dataset, dispatch to the topic interpreter. It never returns
// an empty string and never panics past this boundary.
func (it *Interpreter) Interpret(ds *types.ForecastDataset, intent *types.Intent) string {
	answer, _ := it.Respond(ds, intent)
	return answer
}

// Respond is Interpret plus the matched-point count for telemetry.
func (it *Interpreter) Respond(ds *types.ForecastDataset, intent *types.Intent) (answer string, count int) {
	if ds == nil {
		return MsgNoDataset, 0
	}
	if intent == nil || intent.Topic == "" {
		return MsgNoTopic, 0
	}

	topic := intent.Topic
	defer func() {
		if r := recover(); r != nil {
			it.logger.Errorw("interpreter panic", "topic", topic, "panic", r)
			answer = MsgFailure
		}
	}()

	iv := timeframe.Resolve(intent.TimeframeCategory, intent.TimeframePhrase, it.now())
	result := forecast.Filter(ds, iv, intent.Granularity)
	count = result.Count

	it.logger.Debugw("filtered forecast",
		"topic", topic,
		"timeframe", intent.TimeframeCategory,
		"phrase", intent.TimeframePhrase,
		"granularity", intent.Granularity,
		"count", count)

	// Greetings don't read forecast data, so an empty filter result
	// shouldn't block them.
	if topic != types.TopicGreeting && count == 0 {
		return MsgNoMatch, 0
	}

	handler := it.handlers[topic]
	if handler == nil {
		handler = it.general
	}

	answer = handler(result, intent)
	if answer == "" {
		answer = "No detailed insight available for that request."
	}
	return answer, count
}
