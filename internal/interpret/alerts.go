package interpret

import (
	"fmt"
	"strings"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/types"
)

// Alert thresholds, metric units.
const (
	alertWindSpeed  = 17.0 // m/s, near gale on the Beaufort scale
	alertPrecipRate = 7.5  // mm/hr, heavy rain
	alertHeat       = 35.0 // °C
	alertCold       = -10.0
	alertUVIndex    = 8.0
	alertVisibility = 1000.0 // meters
)

// alerts scans the matched points for hazardous conditions and lists what
// it finds, worst conditions first.
func (it *Interpreter) alerts(res *forecast.FilteredResult, intent *types.Intent) string {
	if res.Count == 0 {
		return "I couldn't find forecast data to check for alerts."
	}

	var found []string
	add := func(msg string) {
		for _, f := range found {
			if f == msg {
				return
			}
		}
		found = append(found, msg)
	}

	for _, p := range res.Points {
		when := formatPointTime(p, intent.Granularity)
		if p.Condition == types.ConditionThunderstorm {
			add(fmt.Sprintf("thunderstorms around %s", when))
		}
		if p.WindSpeed != nil && *p.WindSpeed >= alertWindSpeed {
			add(fmt.Sprintf("very strong winds (up to %d m/s) around %s", round(*p.WindSpeed), when))
		}
		if p.Precipitation != nil && *p.Precipitation >= alertPrecipRate {
			kind := "rainfall"
			if p.PrecipitationType == types.PrecipSnow {
				kind = "snowfall"
			}
			add(fmt.Sprintf("heavy %s around %s", kind, when))
		}
		if p.Temperature != nil && *p.Temperature >= alertHeat ||
			p.TemperatureMax != nil && *p.TemperatureMax >= alertHeat {
			add(fmt.Sprintf("extreme heat around %s", when))
		}
		if p.Temperature != nil && *p.Temperature <= alertCold ||
			p.TemperatureMin != nil && *p.TemperatureMin <= alertCold {
			add(fmt.Sprintf("severe cold around %s", when))
		}
		if p.UVIndex != nil && *p.UVIndex >= alertUVIndex {
			add(fmt.Sprintf("very high UV levels around %s", when))
		}
		if p.Visibility != nil && *p.Visibility <= alertVisibility {
			add(fmt.Sprintf("poor visibility around %s", when))
		}
	}

	if len(found) == 0 {
		return "No significant weather alerts for that time. Conditions look safe."
	}
	return fmt.Sprintf("Heads up: expect %s.", strings.Join(found, "; "))
}
