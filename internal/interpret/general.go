package interpret

import (
	"fmt"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/types"
)

// general is the broad-summary interpreter and the dispatch fallback for
// topics without a dedicated handler. It folds sky, temperature, wind and
// precipitation into a single overview sentence.
func (it *Interpreter) general(res *forecast.FilteredResult, intent *types.Intent) string {
	if res.Count == 0 {
		return "I couldn't find forecast data for that time."
	}

	avgTemp, _ := meanOf(res.Points, func(p forecast.DataPoint) *float64 {
		if p.Temperature != nil {
			return p.Temperature
		}
		if p.TemperatureMax != nil {
			return p.TemperatureMax
		}
		return p.TemperatureMin
	})
	minTemp, _ := minOf(res.Points, fTempMin, fTemperature)
	maxTemp, _ := maxOf(res.Points, fTempMax, fTemperature)

	avgCloud, _ := meanOf(res.Points, fCloudCover)
	avgWind, _ := meanOf(res.Points, fWindSpeed)
	avgPrecipProb, _ := meanOf(res.Points, fPrecipProb)

	cloudDesc := describeClouds(avgCloud)
	if cond := dominantCondition(res.Points); cond == types.ConditionFog {
		cloudDesc = "foggy conditions"
	}

	switch renderCategoryFor(intent.TimeframeCategory) {
	case catRelative:
		return fmt.Sprintf("Around %s, expect %s. Temperatures will be around %d°C, with highs near %d°C. There is %s chance of precipitation.",
			formatPointTime(res.First(), intent.Granularity),
			cloudDesc, round(avgTemp), round(maxTemp), pct(avgPrecipProb))
	case catExact:
		return fmt.Sprintf("At %s, the weather will feature %s. Expect about %d°C, with winds around %d m/s and %s rain chance.",
			formatPointTime(res.First(), intent.Granularity),
			cloudDesc, round(avgTemp), round(avgWind), pct(avgPrecipProb))
	case catRange:
		return fmt.Sprintf("From %s to %s, the overall forecast includes %s. Temperatures will range from about %d°C to %d°C. There is %s chance of precipitation and winds near %d m/s.",
			formatPointTime(res.First(), intent.Granularity),
			formatPointTime(res.Last(), intent.Granularity),
			cloudDesc, round(minTemp), round(maxTemp), pct(avgPrecipProb), round(avgWind))
	default:
		return fmt.Sprintf("Overall, expect %s with temperatures averaging around %d°C (low of %d°C, high of %d°C). There is %s chance of precipitation and typical winds of %d m/s.",
			cloudDesc, round(avgTemp), round(minTemp), round(maxTemp), pct(avgPrecipProb), round(avgWind))
	}
}
