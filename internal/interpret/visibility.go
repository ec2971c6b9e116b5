package interpret

import (
	"fmt"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/types"
)

func describeVisibility(km float64) string {
	switch {
	case km >= 10:
		return "excellent"
	case km >= 5:
		return "good"
	case km >= 2:
		return "moderate"
	default:
		return "poor"
	}
}

// visibility reports the mean visibility. Only the hourly series carries a
// visibility field, so daily-only results come back empty-handed.
func (it *Interpreter) visibility(res *forecast.FilteredResult, intent *types.Intent) string {
	if res.Count == 0 {
		return "I couldn't find visibility data for that time."
	}

	avg, ok := meanOf(res.Points, fVisibility)
	if !ok {
		return "I couldn't find visibility data for that time."
	}

	km := avg / 1000
	describe := fmt.Sprintf("%s visibility around %.1f km", describeVisibility(km), km)

	switch renderCategoryFor(intent.TimeframeCategory) {
	case catRelative:
		return fmt.Sprintf("Around %s, expect %s.", formatPointTime(res.First(), intent.Granularity), describe)
	case catExact:
		return fmt.Sprintf("At %s, expect %s.", formatPointTime(res.First(), intent.Granularity), describe)
	case catRange:
		return fmt.Sprintf("From %s to %s, expect %s.",
			formatPointTime(res.First(), intent.Granularity),
			formatPointTime(res.Last(), intent.Granularity),
			describe)
	default:
		return fmt.Sprintf("Overall, expect %s.", describe)
	}
}
