// Package forecast filters the canonical forecast dataset down to the data
// points inside a resolved interval. Filtering never fails: an interval that
// matches nothing produces an empty result, which downstream interpreters
// treat as a first-class outcome.
package forecast

import (
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/types"
)

// DataPoint is the unified view of an hourly or daily forecast point that
// interpreters consume. Optional fields are pointers so "absent" stays
// distinguishable from zero: hourly points carry no min/max temperatures,
// daily points carry no instantaneous temperature or visibility.
type DataPoint struct {
	Time                     time.Time
	Temperature              *float64
	TemperatureMin           *float64
	TemperatureMax           *float64
	FeelsLike                *float64
	Humidity                 *float64
	Pressure                 *float64
	UVIndex                  *float64
	Visibility               *float64
	WindSpeed                *float64
	WindDirection            *float64
	Precipitation            *float64
	PrecipitationProbability *float64
	CloudCover               *float64
	PrecipitationType        types.PrecipType
	Condition                types.Condition
	MoonPhase                types.MoonPhaseName
	SunRise                  time.Time
	SunSet                   time.Time
	Daily                    bool
}

// FilteredResult is the subset of a dataset matching an interval. Points
// preserves the dataset's chronological order per series; Count always
// equals len(Points).
type FilteredResult struct {
	Granularity types.Granularity
	Start       time.Time
	End         time.Time
	Count       int
	Points      []DataPoint
}

// First returns the earliest point in the result.
func (r *FilteredResult) First() DataPoint {
	return r.Points[0]
}

// Last returns the latest point in the result.
func (r *FilteredResult) Last() DataPoint {
	return r.Points[len(r.Points)-1]
}

// Filter selects the dataset points whose timestamps fall inside the
// interval (inclusive on both ends; a zero bound does not constrain).
// Granularity picks the hourly series, the daily series, or both with
// hourly points first.
func Filter(ds *types.ForecastDataset, iv types.Interval, granularity types.Granularity) *FilteredResult {
	result := &FilteredResult{
		Granularity: granularity,
		Start:       iv.Start,
		End:         iv.End,
	}
	if ds == nil {
		return result
	}

	includeHourly := granularity == types.GranularityHourly || granularity != types.GranularityDaily
	includeDaily := granularity == types.GranularityDaily || granularity != types.GranularityHourly

	if includeHourly {
		for i := range ds.Hourly {
			if iv.Contains(ds.Hourly[i].Timestamp) {
				result.Points = append(result.Points, fromHourly(&ds.Hourly[i]))
			}
		}
	}
	if includeDaily {
		for i := range ds.Daily {
			if iv.Contains(ds.Daily[i].Date) {
				result.Points = append(result.Points, fromDaily(&ds.Daily[i]))
			}
		}
	}

	result.Count = len(result.Points)
	return result
}

func fromHourly(h *types.HourlyPoint) DataPoint {
	return DataPoint{
		Time:                     h.Timestamp,
		Temperature:              ptr(h.Temperature),
		FeelsLike:                ptr(h.FeelsLike),
		Humidity:                 ptr(h.Humidity),
		Pressure:                 ptr(h.Pressure),
		UVIndex:                  ptr(h.UVIndex),
		Visibility:               ptr(h.Visibility),
		WindSpeed:                ptr(h.WindSpeed),
		WindDirection:            ptr(h.WindDirection),
		Precipitation:            ptr(h.Precipitation),
		PrecipitationProbability: ptr(h.PrecipitationProbability),
		CloudCover:               ptr(h.CloudCover),
		PrecipitationType:        h.PrecipitationType,
		Condition:                h.Condition,
	}
}

func fromDaily(d *types.DailyPoint) DataPoint {
	return DataPoint{
		Time:                     d.Date,
		TemperatureMin:           ptr(d.TemperatureMin),
		TemperatureMax:           ptr(d.TemperatureMax),
		Humidity:                 ptr(d.Humidity),
		Pressure:                 ptr(d.Pressure),
		UVIndex:                  ptr(d.UVIndex),
		WindSpeed:                ptr(d.WindSpeed),
		WindDirection:            ptr(d.WindDirection),
		Precipitation:            ptr(d.Precipitation),
		PrecipitationProbability: ptr(d.PrecipitationProbability),
		CloudCover:               ptr(d.CloudCover),
		PrecipitationType:        d.PrecipitationType,
		Condition:                d.Condition,
		MoonPhase:                d.MoonPhase,
		SunRise:                  d.SunRise,
		SunSet:                   d.SunSet,
		Daily:                    true,
	}
}

func ptr(v float64) *float64 {
	return &v
}
