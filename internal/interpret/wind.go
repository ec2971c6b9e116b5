package interpret

import (
	"fmt"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/types"
)

func describeWindStrength(speed float64) string {
	// m/s buckets, roughly calm / breezy / windy / very windy.
	switch {
	case speed < 3:
		return "calm"
	case speed < 8:
		return "breezy"
	case speed < 14:
		return "windy"
	default:
		return "very windy"
	}
}

func (it *Interpreter) wind(res *forecast.FilteredResult, intent *types.Intent) string {
	if res.Count == 0 {
		return "I couldn't find wind data for that time."
	}

	avgSpeed, _ := meanOf(res.Points, fWindSpeed)
	avgDir, dirOK := meanOf(res.Points, fWindDirection)

	describe := func() string {
		switch intent.SubIntent {
		case "direction":
			if dirOK {
				return fmt.Sprintf("winds from the %s", formatWindDirection(avgDir))
			}
			return "winds from a variable direction"
		case "speed":
			return fmt.Sprintf("wind speeds around %.0f m/s", avgSpeed)
		default:
			s := fmt.Sprintf("%s conditions with winds around %.0f m/s", describeWindStrength(avgSpeed), avgSpeed)
			if dirOK {
				s += fmt.Sprintf(" from the %s", formatWindDirection(avgDir))
			}
			return s
		}
	}

	switch renderCategoryFor(intent.TimeframeCategory) {
	case catRelative:
		return fmt.Sprintf("Around %s, expect %s.", formatPointTime(res.First(), intent.Granularity), describe())
	case catExact:
		return fmt.Sprintf("At %s, expect %s.", formatPointTime(res.First(), intent.Granularity), describe())
	case catRange:
		return fmt.Sprintf("From %s to %s, expect %s.",
			formatPointTime(res.First(), intent.Granularity),
			formatPointTime(res.Last(), intent.Granularity),
			describe())
	default:
		return fmt.Sprintf("Overall, expect %s.", describe())
	}
}
