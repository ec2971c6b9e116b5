package insights

import (
	"fmt"
	"math"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/types"
	"gonum.org/v1/gonum/floats"
)

// Insight is one digest line plus an icon name for the consumer's UI.
type Insight struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// Thresholds for the digest generators, metric units.
const (
	precipLikelyProb  = 0.1  // probability above which precipitation counts
	precipClearProb   = 0.05 // probability under which it has tapered off
	strongWindSpeed   = 14.0 // m/s
	hotDayTemperature = 35.0 // °C daily max
	coldDayMaxTemp    = 5.0  // °C daily max
	sharpTempJump     = 5.0  // °C day-over-day change
)

// Temperature digests the warmest and coldest times ahead, the multi-day
// trend, and sharp day-over-day swings.
func Temperature(ds *types.ForecastDataset, ref time.Time) []Insight {
	var out []Insight
	if ds == nil {
		return out
	}

	if len(ds.Hourly) > 0 {
		day := ds.Hourly
		if len(day) > 24 {
			day = day[:24]
		}
		temps := make([]float64, len(day))
		for i, h := range day {
			temps[i] = h.Temperature
		}

		hottest := day[floats.MaxIdx(temps)]
		coldest := day[floats.MinIdx(temps)]
		out = append(out,
			Insight{
				Text: fmt.Sprintf("%s %s will be the next warmest time at %d°C.",
					DayPhrase(hottest.Timestamp, ref), TimeOfDay(hottest.Timestamp), round(hottest.Temperature)),
				Icon: "ThermometerSun",
			},
			Insight{
				Text: fmt.Sprintf("%s %s will be the next coldest time at %d°C.",
					DayPhrase(coldest.Timestamp, ref), TimeOfDay(coldest.Timestamp), round(coldest.Temperature)),
				Icon: "ThermometerSnowflake",
			})
	}

	if len(ds.Daily) > 0 {
		maxes := make([]float64, len(ds.Daily))
		for i, d := range ds.Daily {
			maxes[i] = d.TemperatureMax
		}

		warmest := ds.Daily[floats.MaxIdx(maxes)]
		coldest := ds.Daily[floats.MinIdx(maxes)]
		out = append(out,
			Insight{
				Text: fmt.Sprintf("%s is the warmest day at %d°C.",
					DayPhrase(warmest.Date, ref), round(warmest.TemperatureMax)),
				Icon: "Sun",
			},
			Insight{
				Text: fmt.Sprintf("%s is the coldest day at %d°C.",
					DayPhrase(coldest.Date, ref), round(coldest.TemperatureMax)),
				Icon: "Snowflake",
			})

		if len(ds.Daily) >= 3 {
			diff := maxes[len(maxes)-1] - maxes[0]
			switch {
			case math.Abs(diff) < 2:
				out = append(out, Insight{Text: "Temperatures will stay steady over the coming days.", Icon: "ArrowLeftRight"})
			case diff > 0:
				out = append(out, Insight{Text: "Warming trend over the next few days.", Icon: "TrendingUp"})
			default:
				out = append(out, Insight{Text: "Cooling trend over the next few days.", Icon: "TrendingDown"})
			}
		}

		for i := 1; i < len(ds.Daily); i++ {
			jump := maxes[i] - maxes[i-1]
			if jump >= sharpTempJump {
				out = append(out, Insight{
					Text: fmt.Sprintf("Sharp temperature rise expected on %s (up to %d°C).",
						DayPhrase(ds.Daily[i].Date, ref), round(maxes[i])),
					Icon: "ArrowUp",
				})
			} else if jump <= -sharpTempJump {
				out = append(out, Insight{
					Text: fmt.Sprintf("Sharp temperature drop expected on %s (down to %d°C).",
						DayPhrase(ds.Daily[i].Date, ref), round(maxes[i])),
					Icon: "ArrowDown",
				})
			}
		}
	}

	return out
}

func precipLabel(pt types.PrecipType) (string, string) {
	switch pt {
	case types.PrecipRain:
		return "rain", "CloudRain"
	case types.PrecipSnow:
		return "snow", "Snowflake"
	default:
		return "precipitation", "Cloud"
	}
}

// Precipitation digests the next wet hour and day, when current rain
// tapers off, and the wet/dry outlook over the daily span.
func Precipitation(ds *types.ForecastDataset, ref time.Time) []Insight {
	var out []Insight
	if ds == nil {
		return out
	}

	for _, h := range ds.Hourly {
		if h.PrecipitationProbability > precipLikelyProb && h.PrecipitationType != types.PrecipNone && h.PrecipitationType != "" {
			label, icon := precipLabel(h.PrecipitationType)
			out = append(out, Insight{
				Text: fmt.Sprintf("%s expected %s.", label, HourPhrase(h.Timestamp, ref)),
				Icon: icon,
			})
			break
		}
	}

	for _, d := range ds.Daily {
		if d.PrecipitationProbability > precipLikelyProb && d.PrecipitationType != types.PrecipNone && d.PrecipitationType != "" {
			label, icon := precipLabel(d.PrecipitationType)
			out = append(out, Insight{
				Text: fmt.Sprintf("%s expected on %s.", label, DayPhrase(d.Date, ref)),
				Icon: icon,
			})
			break
		}
	}

	for i := 0; i+1 < len(ds.Hourly); i++ {
		curr, next := ds.Hourly[i], ds.Hourly[i+1]
		if curr.PrecipitationProbability > precipLikelyProb && next.PrecipitationProbability < precipClearProb {
			label, _ := precipLabel(curr.PrecipitationType)
			out = append(out, Insight{
				Text: fmt.Sprintf("%s will taper off by %s %s.",
					label, DayPhrase(next.Timestamp, ref), TimeOfDay(next.Timestamp)),
				Icon: "CloudOff",
			})
			break
		}
	}

	wetDays := 0
	for _, d := range ds.Daily {
		if d.PrecipitationProbability > precipLikelyProb {
			wetDays++
		}
	}
	switch {
	case wetDays >= 3:
		out = append(out, Insight{Text: "Unsettled weather with precipitation likely over several days.", Icon: "CloudRain"})
	case wetDays >= 1:
		out = append(out, Insight{Text: "Scattered precipitation expected in the coming days.", Icon: "CloudRain"})
	default:
		out = append(out, Insight{Text: "Mostly dry conditions expected in the coming days.", Icon: "CloudOff"})
	}

	return out
}

// moonHighlights are the phases worth calling out in a digest.
var moonHighlights = map[types.MoonPhaseName]string{
	types.MoonNew:          "New moon",
	types.MoonFirstQuarter: "First quarter moon",
	types.MoonFull:         "Full moon",
	types.MoonLastQuarter:  "Last quarter moon",
}

// Other digests everything else: notable moon phases, strong winds,
// extreme heat and cold, thunderstorm risk.
func Other(ds *types.ForecastDataset, ref time.Time) []Insight {
	var out []Insight
	if ds == nil {
		return out
	}

	for _, d := range ds.Daily {
		if name, ok := moonHighlights[d.MoonPhase]; ok {
			out = append(out, Insight{
				Text: fmt.Sprintf("%s is on %s.", name, DayPhrase(d.Date, ref)),
				Icon: "Moon",
			})
		}
	}

	for _, h := range ds.Hourly {
		if h.WindSpeed > strongWindSpeed {
			out = append(out, Insight{
				Text: fmt.Sprintf("Strong winds expected %s.", HourPhrase(h.Timestamp, ref)),
				Icon: "Wind",
			})
			break
		}
	}
	for _, d := range ds.Daily {
		if d.WindSpeed > strongWindSpeed {
			out = append(out, Insight{
				Text: fmt.Sprintf("Windy conditions expected on %s.", DayPhrase(d.Date, ref)),
				Icon: "Wind",
			})
			break
		}
	}

	for _, d := range ds.Daily {
		if d.TemperatureMax >= hotDayTemperature {
			out = append(out, Insight{
				Text: fmt.Sprintf("Very hot conditions expected on %s.", DayPhrase(d.Date, ref)),
				Icon: "ThermometerSun",
			})
		}
		if d.TemperatureMax <= coldDayMaxTemp {
			out = append(out, Insight{
				Text: fmt.Sprintf("Cold day expected on %s.", DayPhrase(d.Date, ref)),
				Icon: "ThermometerSnowflake",
			})
		}
	}

	for _, h := range ds.Hourly {
		if h.Condition == types.ConditionThunderstorm {
			out = append(out, Insight{
				Text: fmt.Sprintf("Thunderstorm risk %s %s.", DayPhrase(h.Timestamp, ref), TimeOfDay(h.Timestamp)),
				Icon: "Zap",
			})
			break
		}
	}

	return out
}

// All concatenates every digest for a dataset.
func All(ds *types.ForecastDataset, ref time.Time) []Insight {
	var out []Insight
	out = append(out, Temperature(ds, ref)...)
	out = append(out, Precipitation(ds, ref)...)
	out = append(out, Other(ds, ref)...)
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}
