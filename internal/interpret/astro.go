package interpret

import (
	"fmt"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/types"
	"github.com/ctrln3rd/lunara-watch/pkg/lunar"
)

// firstDaily returns the earliest daily point in the result, since only the
// daily series carries astronomical fields.
func firstDaily(res *forecast.FilteredResult) (forecast.DataPoint, bool) {
	for _, p := range res.Points {
		if p.Daily {
			return p, true
		}
	}
	return forecast.DataPoint{}, false
}

func (it *Interpreter) sun(res *forecast.FilteredResult, intent *types.Intent) string {
	day, ok := firstDaily(res)
	if !ok || (day.SunRise.IsZero() && day.SunSet.IsZero()) {
		return "I couldn't find sunrise and sunset data for that time."
	}

	dayName := day.Time.Format("Monday")
	rise := day.SunRise.Format("3:04 PM")
	set := day.SunSet.Format("3:04 PM")

	switch intent.SubIntent {
	case "rise":
		if day.SunRise.IsZero() {
			return "I couldn't find sunrise data for that time."
		}
		return fmt.Sprintf("On %s, the sun rises at %s.", dayName, rise)
	case "set":
		if day.SunSet.IsZero() {
			return "I couldn't find sunset data for that time."
		}
		return fmt.Sprintf("On %s, the sun sets at %s.", dayName, set)
	default:
		return fmt.Sprintf("On %s, the sun rises at %s and sets at %s.", dayName, rise, set)
	}
}

// moon reports the lunar phase. When the provider didn't supply one, the
// phase is computed locally for the point's date.
func (it *Interpreter) moon(res *forecast.FilteredResult, intent *types.Intent) string {
	day, ok := firstDaily(res)
	if !ok {
		return "I couldn't find moon data for that time."
	}

	phase := day.MoonPhase
	if phase == "" {
		phase = types.MoonPhaseName(lunar.Calculate(day.Time).Name)
	}

	dayName := day.Time.Format("Monday")
	return fmt.Sprintf("On %s, the moon will be in its %s phase.", dayName, phase)
}
