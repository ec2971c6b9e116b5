package interpret

import (
	"fmt"

	"github.com/ctrln3rd/lunara-watch/internal/forecast"
	"github.com/ctrln3rd/lunara-watch/internal/types"
)

func (it *Interpreter) pressure(res *forecast.FilteredResult, intent *types.Intent) string {
	if res.Count == 0 {
		return "I couldn't find pressure data for that time."
	}

	avg, ok := meanOf(res.Points, fPressure)
	if !ok {
		return "I couldn't find pressure data for that time."
	}

	// Trend reads the first and last points that define the field.
	trend := ""
	firstP, lastP := (*float64)(nil), (*float64)(nil)
	for _, p := range res.Points {
		if p.Pressure == nil {
			continue
		}
		if firstP == nil {
			firstP = p.Pressure
		}
		lastP = p.Pressure
	}
	if firstP != nil && lastP != nil {
		switch delta := *lastP - *firstP; {
		case delta > 2:
			trend = ", rising"
		case delta < -2:
			trend = ", falling"
		}
	}

	describe := fmt.Sprintf("pressure around %d hPa%s", round(avg), trend)

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
