package interpret

import (
	"fmt"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/types"
)

func (it *Interpreter) cloudCover(res *forecast.FilteredResult, intent *types.Intent) string {
	if res.Count == 0 {
		return "I couldn't find cloud cover data for that time."
	}

	avg, ok := meanOf(res.Points, fCloudCover)
	if !ok {
		return "I couldn't find cloud cover data for that time."
	}

	describe := fmt.Sprintf("%s with about %d%% cloud cover", describeClouds(avg), round(avg))

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
