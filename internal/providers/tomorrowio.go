package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/types"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const tomorrowIODefaultEndpoint = "https://api.tomorrow.io/v4/weather/forecast"

// TomorrowIOClient fetches forecasts from the Tomorrow.io v4 forecast API.
// It needs an API key; the free tier allows 3 requests per second.
type TomorrowIOClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
	limiter  *rate.Limiter
	logger   *zap.SugaredLogger
}

// NewTomorrowIOClient creates a client using the given API key.
func NewTomorrowIOClient(apiKey string, logger *zap.SugaredLogger) *TomorrowIOClient {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &TomorrowIOClient{
		endpoint: tomorrowIODefaultEndpoint,
		apiKey:   apiKey,
		client:   newHTTPClient(),
		limiter:  rate.NewLimiter(rate.Every(time.Second/3), 3),
		logger:   logger,
	}
}

func (c *TomorrowIOClient) Name() string { return "tomorrowio" }

type tomorrowIOResponse struct {
	Timelines struct {
		Hourly []tomorrowIOEntry `json:"hourly"`
		Daily  []tomorrowIOEntry `json:"daily"`
	} `json:"timelines"`
}

type tomorrowIOEntry struct {
	Time   time.Time        `json:"time"`
	Values tomorrowIOValues `json:"values"`
}

type tomorrowIOValues struct {
	Temperature              float64   `json:"temperature"`
	TemperatureApparent      float64   `json:"temperatureApparent"`
	TemperatureMax           float64   `json:"temperatureMax"`
	TemperatureMin           float64   `json:"temperatureMin"`
	TemperatureApparentMax   float64   `json:"temperatureApparentMax"`
	TemperatureApparentMin   float64   `json:"temperatureApparentMin"`
	Humidity                 float64   `json:"humidity"`
	HumidityAvg              float64   `json:"humidityAvg"`
	PressureSurfaceLevel     float64   `json:"pressureSurfaceLevel"`
	PressureSurfaceLevelAvg  float64   `json:"pressureSurfaceLevelAvg"`
	UVIndex                  float64   `json:"uvIndex"`
	UVIndexMax               float64   `json:"uvIndexMax"`
	Visibility               float64   `json:"visibility"`
	WindSpeed                float64   `json:"windSpeed"`
	WindSpeedAvg             float64   `json:"windSpeedAvg"`
	WindDirection            float64   `json:"windDirection"`
	WindDirectionAvg         float64   `json:"windDirectionAvg"`
	PrecipitationIntensity   float64   `json:"precipitationIntensity"`
	PrecipitationAccum       float64   `json:"precipitationAccumulation"`
	PrecipitationProbability float64   `json:"precipitationProbability"`
	CloudCover               float64   `json:"cloudCover"`
	CloudCoverAvg            float64   `json:"cloudCoverAvg"`
	WeatherCode              int       `json:"weatherCode"`
	SunriseTime              time.Time `json:"sunriseTime"`
	SunsetTime               time.Time `json:"sunsetTime"`
	MoonPhase                *int      `json:"moonPhase"`
}

// FetchForecast requests hourly and daily timelines in metric units and
// converts them to the canonical dataset.
func (c *TomorrowIOClient) FetchForecast(ctx context.Context, lat, lon float64) (*types.ForecastDataset, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("tomorrow.io API key not configured")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %v", err)
	}

	v := url.Values{}
	v.Set("location", fmt.Sprintf("%.4f,%.4f", lat, lon))
	v.Set("timesteps", "1h,1d")
	v.Set("units", "metric")
	v.Set("apikey", c.apiKey)

	reqURL := c.endpoint + "?" + v.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating Tomorrow.io request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debugf("making request to Tomorrow.io for %.4f,%.4f", lat, lon)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request to Tomorrow.io: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("bad response from Tomorrow.io: %s: %s", resp.Status, body)
	}

	var tr tomorrowIOResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("unable to decode Tomorrow.io response: %v", err)
	}

	return c.normalize(&tr), nil
}

func (c *TomorrowIOClient) normalize(tr *tomorrowIOResponse) *types.ForecastDataset {
	ds := &types.ForecastDataset{}

	for _, h := range tr.Timelines.Hourly {
		v := h.Values
		ds.Hourly = append(ds.Hourly, types.HourlyPoint{
			Timestamp:                h.Time,
			Temperature:              v.Temperature,
			FeelsLike:                v.TemperatureApparent,
			Humidity:                 v.Humidity,
			Pressure:                 v.PressureSurfaceLevel,
			UVIndex:                  v.UVIndex,
			Visibility:               v.Visibility * 1000, // km -> meters
			WindSpeed:                v.WindSpeed,
			WindDirection:            v.WindDirection,
			Precipitation:            v.PrecipitationIntensity,
			PrecipitationProbability: v.PrecipitationProbability / 100,
			CloudCover:               v.CloudCover,
			PrecipitationType:        tioPrecipType(v.WeatherCode),
			Condition:                tioCondition(v.WeatherCode),
		})
	}

	for _, d := range tr.Timelines.Daily {
		v := d.Values
		day := types.DailyPoint{
			Date:                     d.Time,
			TemperatureMax:           v.TemperatureMax,
			TemperatureMin:           v.TemperatureMin,
			FeelsLikeMax:             v.TemperatureApparentMax,
			FeelsLikeMin:             v.TemperatureApparentMin,
			Humidity:                 v.HumidityAvg,
			Pressure:                 v.PressureSurfaceLevelAvg,
			UVIndex:                  v.UVIndexMax,
			WindSpeed:                v.WindSpeedAvg,
			WindDirection:            v.WindDirectionAvg,
			Precipitation:            v.PrecipitationAccum,
			PrecipitationProbability: v.PrecipitationProbability / 100,
			CloudCover:               v.CloudCoverAvg,
			PrecipitationType:        tioPrecipType(v.WeatherCode),
			SunRise:                  v.SunriseTime,
			SunSet:                   v.SunsetTime,
			Condition:                tioCondition(v.WeatherCode),
		}
		if v.MoonPhase != nil {
			day.MoonPhase = tioMoonPhase(*v.MoonPhase)
		}
		ds.Daily = append(ds.Daily, day)
	}

	if len(ds.Hourly) > 0 {
		h := ds.Hourly[0]
		ds.Current = &types.CurrentConditions{
			Timestamp:                h.Timestamp,
			Temperature:              h.Temperature,
			FeelsLike:                h.FeelsLike,
			Humidity:                 h.Humidity,
			Pressure:                 h.Pressure,
			UVIndex:                  h.UVIndex,
			Visibility:               h.Visibility,
			WindSpeed:                h.WindSpeed,
			WindDirection:            h.WindDirection,
			Precipitation:            h.Precipitation,
			PrecipitationProbability: h.PrecipitationProbability,
			PrecipitationType:        h.PrecipitationType,
			Condition:                h.Condition,
		}
	}

	return ds
}

// tioCondition maps a Tomorrow.io weather code to a condition tag.
func tioCondition(code int) types.Condition {
	switch code {
	case 1000, 1100:
		return types.ConditionClear
	case 1101:
		return types.ConditionPartlyCloudy
	case 1102, 1001:
		return types.ConditionCloudy
	case 2000, 2100:
		return types.ConditionFog
	case 4000, 4200:
		return types.ConditionLightRain
	case 4001, 4201, 6000, 6001, 6200, 6201:
		return types.ConditionRain
	case 5000, 5001, 5100, 5101, 7000, 7101, 7102:
		return types.ConditionSnow
	case 8000:
		return types.ConditionThunderstorm
	default:
		return types.ConditionClear
	}
}

func tioPrecipType(code int) types.PrecipType {
	switch tioCondition(code) {
	case types.ConditionRain, types.ConditionLightRain, types.ConditionThunderstorm:
		return types.PrecipRain
	case types.ConditionSnow:
		return types.PrecipSnow
	default:
		return types.PrecipNone
	}
}

// tioMoonPhase maps the API's 0-7 phase index to the 8-phase names.
func tioMoonPhase(idx int) types.MoonPhaseName {
	phases := []types.MoonPhaseName{
		types.MoonNew,
		types.MoonWaxingCrescent,
		types.MoonFirstQuarter,
		types.MoonWaxingGibbous,
		types.MoonFull,
		types.MoonWaningGibbous,
		types.MoonLastQuarter,
		types.MoonWaningCrescent,
	}
	if idx < 0 || idx >= len(phases) {
		return ""
	}
	return phases[idx]
}
