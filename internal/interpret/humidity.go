package interpret

import (
	"fmt"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/types"
)

func describeHumidity(pctValue float64) string {
	switch {
	case pctValue < 30:
		return "dry"
	case pctValue < 60:
		return "comfortable"
	case pctValue < 80:
		return "humid"
	default:
		return "very humid"
	}
}

func (it *Interpreter) humidity(res *forecast.FilteredResult, intent *types.Intent) string {
	if res.Count == 0 {
		return "I couldn't find humidity data for that time."
	}

	avg, ok := meanOf(res.Points, fHumidity)
	if !ok {
		return "I couldn't find humidity data for that time."
	}

	describe := fmt.Sprintf("%s air with humidity around %d%%", describeHumidity(avg), round(avg))

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
