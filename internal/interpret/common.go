package interpret

import (
	"fmt"
	"math"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/types"
	"gonum.org/v1/gonum/stat"
)

// renderCategory is the render-time reinterpretation of the resolution-time
// timeframe category. It only selects which prose template an interpreter
// uses: "relative" and "exact" report a single instant, "range" reports a
// span, "unknown" reports an overall summary.
type renderCategory int

const (
	catRelative renderCategory = iota
	catExact
	catRange
	catUnknown
)

func renderCategoryFor(tc types.TimeframeCategory) renderCategory {
	switch tc {
	case types.TimeframeRelativeTime, types.TimeframeRelativeDay:
		return catRelative
	case types.TimeframeAbsoluteTime:
		return catExact
	case types.TimeframeAbsoluteDay:
		return catRange
	default:
		return catUnknown
	}
}

// formatPointTime renders a point's timestamp for prose: hour-of-day for
// hourly granularity, weekday name for daily, full date-time otherwise.
func formatPointTime(p forecast.DataPoint, g types.Granularity) string {
	switch g {
	case types.GranularityHourly:
		return p.Time.Format("3 PM")
	case types.GranularityDaily:
		return p.Time.Format("Monday")
	default:
		return p.Time.Format("Mon, Jan 2 at 3 PM")
	}
}

// fieldFunc selects an optional field from a data point.
type fieldFunc func(forecast.DataPoint) *float64

// meanOf averages a field over the points that define it. Points lacking
// the field are skipped, not counted as zero.
func meanOf(points []forecast.DataPoint, field fieldFunc) (float64, bool) {
	vals := make([]float64, 0, len(points))
	for _, p := range points {
		if v := field(p); v != nil {
			vals = append(vals, *v)
		}
	}
	if len(vals) == 0 {
		return 0, false
	}
	return stat.Mean(vals, nil), true
}

// minOf takes the minimum of the primary field, falling back per point to
// the fallback field when the primary is absent.
func minOf(points []forecast.DataPoint, primary, fallback fieldFunc) (float64, bool) {
	min, found := math.Inf(1), false
	for _, p := range points {
		v := primary(p)
		if v == nil && fallback != nil {
			v = fallback(p)
		}
		if v == nil {
			continue
		}
		found = true
		if *v < min {
			min = *v
		}
	}
	return min, found
}

// maxOf mirrors minOf for the maximum.
func maxOf(points []forecast.DataPoint, primary, fallback fieldFunc) (float64, bool) {
	max, found := math.Inf(-1), false
	for _, p := range points {
		v := primary(p)
		if v == nil && fallback != nil {
			v = fallback(p)
		}
		if v == nil {
			continue
		}
		found = true
		if *v > max {
			max = *v
		}
	}
	return max, found
}

// dominantCondition returns the most frequent non-empty condition tag.
// Ties go to the condition encountered first.
func dominantCondition(points []forecast.DataPoint) types.Condition {
	counts := make(map[types.Condition]int)
	var order []types.Condition
	for _, p := range points {
		if p.Condition == types.ConditionUnknown {
			continue
		}
		if counts[p.Condition] == 0 {
			order = append(order, p.Condition)
		}
		counts[p.Condition]++
	}

	best, bestCount := types.ConditionUnknown, 0
	for _, c := range order {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best
}

// describeClouds buckets a mean cloud cover percentage into prose.
func describeClouds(avgCloud float64) string {
	switch {
	case avgCloud < 20:
		return "mostly clear skies"
	case avgCloud < 50:
		return "partly cloudy conditions"
	case avgCloud < 80:
		return "mostly cloudy skies"
	default:
		return "overcast conditions"
	}
}

// describePrecipChance buckets a mean precipitation probability (0-1).
func describePrecipChance(avgProb float64) string {
	switch {
	case avgProb > 0.6:
		return "a high chance of precipitation"
	case avgProb > 0.3:
		return "some chance of precipitation"
	default:
		return "little to no precipitation expected"
	}
}

// compassDirections are the 16-point compass names, each covering 22.5°.
var compassDirections = []string{
	"North", "North-Northeast", "Northeast", "East-Northeast",
	"East", "East-Southeast", "Southeast", "South-Southeast",
	"South", "South-Southwest", "Southwest", "West-Southwest",
	"West", "West-Northwest", "Northwest", "North-Northwest",
}

func formatWindDirection(deg float64) string {
	idx := int(math.Floor((deg+11.25)/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassDirections[idx]
}

func round(v float64) int {
	return int(math.Round(v))
}

func pct(v float64) string {
	return fmt.Sprintf("%d%%", round(v*100))
}

// Field selectors shared by interpreters.
func fTemperature(p forecast.DataPoint) *float64   { return p.Temperature }
func fTempMin(p forecast.DataPoint) *float64       { return p.TemperatureMin }
func fTempMax(p forecast.DataPoint) *float64       { return p.TemperatureMax }
func fHumidity(p forecast.DataPoint) *float64      { return p.Humidity }
func fPressure(p forecast.DataPoint) *float64      { return p.Pressure }
func fUVIndex(p forecast.DataPoint) *float64       { return p.UVIndex }
func fVisibility(p forecast.DataPoint) *float64    { return p.Visibility }
func fWindSpeed(p forecast.DataPoint) *float64     { return p.WindSpeed }
func fWindDirection(p forecast.DataPoint) *float64 { return p.WindDirection }
func fPrecip(p forecast.DataPoint) *float64        { return p.Precipitation }
func fPrecipProb(p forecast.DataPoint) *float64    { return p.PrecipitationProbability }
func fCloudCover(p forecast.DataPoint) *float64    { return p.CloudCover }
