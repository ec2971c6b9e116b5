// Package types defines the canonical forecast schema and the classified
// intent structures shared by the interpretation pipeline. Provider clients
// normalize their responses into these types; everything downstream treats
// them as immutable inputs.
package types

import "time"

// Condition is a categorical sky-condition tag.
type Condition string

const (
	ConditionClear        Condition = "clear"
	ConditionPartlyCloudy Condition = "partly cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionRain         Condition = "rain"
	ConditionLightRain    Condition = "light rain"
	ConditionThunderstorm Condition = "thunderstorm"
	ConditionSnow         Condition = "snow"
	ConditionFog          Condition = "fog"
	ConditionUnknown      Condition = ""
)

// PrecipType identifies the kind of precipitation expected at a point.
type PrecipType string

const (
	PrecipRain PrecipType = "rain"
	PrecipSnow PrecipType = "snow"
	PrecipNone PrecipType = "none"
)

// MoonPhaseName is the 8-phase lunar cycle name as reported by providers
// or computed locally.
type MoonPhaseName string

const (
	MoonNew            MoonPhaseName = "new moon"
	MoonWaxingCrescent MoonPhaseName = "waxing crescent"
	MoonFirstQuarter   MoonPhaseName = "first quarter"
	MoonWaxingGibbous  MoonPhaseName = "waxing gibbous"
	MoonFull           MoonPhaseName = "full moon"
	MoonWaningGibbous  MoonPhaseName = "waning gibbous"
	MoonLastQuarter    MoonPhaseName = "last quarter"
	MoonWaningCrescent MoonPhaseName = "waning crescent"
)

// CurrentConditions holds the instantaneous observation that providers
// return alongside the forecast series.
type CurrentConditions struct {
	Timestamp                time.Time  `json:"timestamp"`
	Temperature              float64    `json:"temperature"`
	FeelsLike                float64    `json:"feelsLike"`
	Humidity                 float64    `json:"humidity"`
	Pressure                 float64    `json:"pressure"`
	UVIndex                  float64    `json:"uvIndex"`
	Visibility               float64    `json:"visibility"`
	WindSpeed                float64    `json:"windSpeed"`
	WindDirection            float64    `json:"windDirection"`
	Precipitation            float64    `json:"precipitation"`
	PrecipitationProbability float64    `json:"precipitationProbability"`
	PrecipitationType        PrecipType `json:"precipitationType,omitempty"`
	Condition                Condition  `json:"condition"`
}

// HourlyPoint is a single hour of forecast data. Units are metric:
// °C, m/s, mm/hr, hPa, 0-1 probability, 0-360° wind direction.
type HourlyPoint struct {
	Timestamp                time.Time  `json:"timestamp"`
	Temperature              float64    `json:"temperature"`
	FeelsLike                float64    `json:"feelsLike"`
	Humidity                 float64    `json:"humidity"`
	Pressure                 float64    `json:"pressure"`
	UVIndex                  float64    `json:"uvIndex"`
	Visibility               float64    `json:"visibility"`
	WindSpeed                float64    `json:"windSpeed"`
	WindDirection            float64    `json:"windDirection"`
	Precipitation            float64    `json:"precipitation"`
	PrecipitationProbability float64    `json:"precipitationProbability"`
	CloudCover               float64    `json:"cloudCover"`
	PrecipitationType        PrecipType `json:"precipitationType,omitempty"`
	Condition                Condition  `json:"condition"`
}

// DailyPoint is a single calendar day of forecast data. Date is midnight
// in the forecast's local timezone. Daily points carry min/max temperatures
// rather than an instantaneous value.
type DailyPoint struct {
	Date                     time.Time     `json:"date"`
	TemperatureMin           float64       `json:"temperatureMin"`
	TemperatureMax           float64       `json:"temperatureMax"`
	FeelsLikeMin             float64       `json:"feelsLikeMin"`
	FeelsLikeMax             float64       `json:"feelsLikeMax"`
	Humidity                 float64       `json:"humidity"`
	Pressure                 float64       `json:"pressure"`
	UVIndex                  float64       `json:"uvIndex"`
	WindSpeed                float64       `json:"windSpeed"`
	WindDirection            float64       `json:"windDirection"`
	Precipitation            float64       `json:"precipitation"`
	PrecipitationProbability float64       `json:"precipitationProbability"`
	CloudCover               float64       `json:"cloudCover"`
	PrecipitationType        PrecipType    `json:"precipitationType,omitempty"`
	SunRise                  time.Time     `json:"sunRise,omitzero"`
	SunSet                   time.Time     `json:"sunSet,omitzero"`
	MoonPhase                MoonPhaseName `json:"moonPhase,omitempty"`
	Condition                Condition     `json:"condition"`
}

// ForecastDataset is the canonical multi-day forecast produced by the
// provider layer. Hourly and Daily are chronologically ordered; filtering
// and first/last-point extraction rely on that ordering.
type ForecastDataset struct {
	Current *CurrentConditions `json:"current,omitempty"`
	Hourly  []HourlyPoint      `json:"hourly"`
	Daily   []DailyPoint       `json:"daily"`
}

// Interval is a concrete [Start, End] pair on the absolute timeline.
// A zero Start or End leaves that side unbounded.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the interval, inclusive on both
// ends. Zero bounds do not constrain.
func (iv Interval) Contains(t time.Time) bool {
	if !iv.Start.IsZero() && t.Before(iv.Start) {
		return false
	}
	if !iv.End.IsZero() && t.After(iv.End) {
		return false
	}
	return true
}
