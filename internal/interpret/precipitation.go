package interpret

import (
	"fmt"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/types"
)

// describePointPrecip renders one point's precipitation outlook. The
// sub-intent names the precipitation kind when the classifier caught one
// ("rain", "snow"); otherwise the point's own type is used.
func describePointPrecip(p forecast.DataPoint, subIntent string) string {
	kind := subIntent
	if kind == "" {
		if p.PrecipitationType != "" && p.PrecipitationType != types.PrecipNone {
			kind = string(p.PrecipitationType)
		} else {
			kind = "precipitation"
		}
	}

	probability := "some chance"
	if p.PrecipitationProbability != nil && *p.PrecipitationProbability > 0 {
		probability = fmt.Sprintf("%s chance", pct(*p.PrecipitationProbability))
	}

	intensity := "light"
	if p.Precipitation != nil && *p.Precipitation > 0 {
		intensity = fmt.Sprintf("%.1f mm", *p.Precipitation)
	}

	return fmt.Sprintf("%s of %s with %s intensity", probability, kind, intensity)
}

func (it *Interpreter) precipitation(res *forecast.FilteredResult, intent *types.Intent) string {
	if res.Count == 0 {
		return "I couldn't find any precipitation data for that period."
	}

	first, last := res.First(), res.Last()

	switch renderCategoryFor(intent.TimeframeCategory) {
	case catRelative:
		return fmt.Sprintf("There's a %s around %s.",
			describePointPrecip(first, intent.SubIntent),
			formatPointTime(first, intent.Granularity))
	case catExact:
		return fmt.Sprintf("At %s, %s is expected.",
			formatPointTime(first, intent.Granularity),
			describePointPrecip(first, intent.SubIntent))
	case catRange:
		return fmt.Sprintf("Between %s and %s, expect %s, and later %s.",
			formatPointTime(first, intent.Granularity),
			formatPointTime(last, intent.Granularity),
			describePointPrecip(first, intent.SubIntent),
			describePointPrecip(last, intent.SubIntent))
	default:
		avgProb, _ := meanOf(res.Points, fPrecipProb)
		avgIntensity, _ := meanOf(res.Points, fPrecip)
		kind := intent.SubIntent
		if kind == "" {
			kind = "precipitation"
		}
		return fmt.Sprintf("Overall, there's an average %s chance of %s with about %.1f mm intensity.",
			pct(avgProb), kind, avgIntensity)
	}
}
