package interpret

import (
	"fmt"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/types"
)

// temperature answers temperature queries. The sub-intent picks which
// statistic gets quoted: min and max lean on the daily min/max fields with
// the instantaneous value as the single-point fallback.
func (it *Interpreter) temperature(res *forecast.FilteredResult, intent *types.Intent) string {
	if res.Count == 0 {
		return "I couldn't find temperature data for that time."
	}

	// Daily points have no instantaneous temperature, so the average falls
	// back to their max, then min.
	avg, _ := meanOf(res.Points, func(p forecast.DataPoint) *float64 {
		if p.Temperature != nil {
			return p.Temperature
		}
		if p.TemperatureMax != nil {
			return p.TemperatureMax
		}
		return p.TemperatureMin
	})
	min, _ := minOf(res.Points, fTempMin, fTemperature)
	max, _ := maxOf(res.Points, fTempMax, fTemperature)

	describe := func() string {
		switch intent.SubIntent {
		case "min":
			return fmt.Sprintf("a minimum of %d°C", round(min))
		case "max":
			return fmt.Sprintf("a maximum of %d°C", round(max))
		case "avg":
			return fmt.Sprintf("an average of %d°C", round(avg))
		default:
			return fmt.Sprintf("around %d°C", round(avg))
		}
	}

	switch renderCategoryFor(intent.TimeframeCategory) {
	case catRelative:
		return fmt.Sprintf("Around %s, expect %s.", formatPointTime(res.First(), intent.Granularity), describe())
	case catExact:
		return fmt.Sprintf("At %s, expect %s.", formatPointTime(res.First(), intent.Granularity), describe())
	case catRange:
		return fmt.Sprintf("From %s to %s, temperatures will be %s.",
			formatPointTime(res.First(), intent.Granularity),
			formatPointTime(res.Last(), intent.Granularity),
			describe())
	default:
		return fmt.Sprintf("Overall, temperatures will be %s.", describe())
	}
}
