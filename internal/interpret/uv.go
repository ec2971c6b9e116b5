package interpret

import (
	"fmt"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/types"
)

// describeUVRisk maps a UV index onto the WHO exposure categories.
func describeUVRisk(index float64) string {
	switch {
	case index < 3:
		return "low"
	case index < 6:
		return "moderate"
	case index < 8:
		return "high"
	case index < 11:
		return "very high"
	default:
		return "extreme"
	}
}

func (it *Interpreter) uv(res *forecast.FilteredResult, intent *types.Intent) string {
	if res.Count == 0 {
		return "I couldn't find UV data for that time."
	}

	avg, ok := meanOf(res.Points, fUVIndex)
	if !ok {
		return "I couldn't find UV data for that time."
	}
	peak, _ := maxOf(res.Points, fUVIndex, nil)

	describe := func() string {
		if intent.SubIntent == "max" {
			return fmt.Sprintf("a peak UV index of %d (%s)", round(peak), describeUVRisk(peak))
		}
		return fmt.Sprintf("a UV index around %d (%s exposure risk)", round(avg), describeUVRisk(avg))
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
