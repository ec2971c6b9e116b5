package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/types"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const openMeteoDefaultEndpoint = "https://api.open-meteo.com/v1/forecast"

var openMeteoHourlyVars = []string{
	"temperature_2m",
	"apparent_temperature",
	"relative_humidity_2m",
	"pressure_msl",
	"uv_index",
	"visibility",
	"windspeed_10m",
	"winddirection_10m",
	"precipitation",
	"precipitation_probability",
	"cloudcover",
	"weathercode",
}

var openMeteoDailyVars = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"apparent_temperature_max",
	"apparent_temperature_min",
	"pressure_msl_mean",
	"uv_index_max",
	"windspeed_10m_max",
	"winddirection_10m_dominant",
	"precipitation_sum",
	"precipitation_probability_max",
	"cloudcover_mean",
	"weathercode",
	"sunrise",
	"sunset",
}

// OpenMeteoClient fetches forecasts from the Open-Meteo API. No API key is
// required; the free tier allows generous but not unlimited traffic, so
// requests go through a rate limiter.
type OpenMeteoClient struct {
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
	logger   *zap.SugaredLogger
}

// NewOpenMeteoClient creates a client against the public API endpoint.
func NewOpenMeteoClient(logger *zap.SugaredLogger) *OpenMeteoClient {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &OpenMeteoClient{
		endpoint: openMeteoDefaultEndpoint,
		client:   newHTTPClient(),
		limiter:  rate.NewLimiter(rate.Every(time.Second), 5),
		logger:   logger,
	}
}

func (c *OpenMeteoClient) Name() string { return "openmeteo" }

// openMeteoResponse mirrors the JSON layout of the forecast endpoint:
// parallel arrays keyed by variable name, times in ISO 8601.
type openMeteoResponse struct {
	Hourly struct {
		Time                     []string  `json:"time"`
		Temperature              []float64 `json:"temperature_2m"`
		FeelsLike                []float64 `json:"apparent_temperature"`
		Humidity                 []float64 `json:"relative_humidity_2m"`
		Pressure                 []float64 `json:"pressure_msl"`
		UVIndex                  []float64 `json:"uv_index"`
		Visibility               []float64 `json:"visibility"`
		WindSpeed                []float64 `json:"windspeed_10m"`
		WindDirection            []float64 `json:"winddirection_10m"`
		Precipitation            []float64 `json:"precipitation"`
		PrecipitationProbability []float64 `json:"precipitation_probability"`
		CloudCover               []float64 `json:"cloudcover"`
		WeatherCode              []int     `json:"weathercode"`
	} `json:"hourly"`
	Daily struct {
		Time                     []string  `json:"time"`
		TemperatureMax           []float64 `json:"temperature_2m_max"`
		TemperatureMin           []float64 `json:"temperature_2m_min"`
		FeelsLikeMax             []float64 `json:"apparent_temperature_max"`
		FeelsLikeMin             []float64 `json:"apparent_temperature_min"`
		Pressure                 []float64 `json:"pressure_msl_mean"`
		UVIndex                  []float64 `json:"uv_index_max"`
		WindSpeed                []float64 `json:"windspeed_10m_max"`
		WindDirection            []float64 `json:"winddirection_10m_dominant"`
		Precipitation            []float64 `json:"precipitation_sum"`
		PrecipitationProbability []float64 `json:"precipitation_probability_max"`
		CloudCover               []float64 `json:"cloudcover_mean"`
		WeatherCode              []int     `json:"weathercode"`
		Sunrise                  []string  `json:"sunrise"`
		Sunset                   []string  `json:"sunset"`
	} `json:"daily"`
}

// FetchForecast requests a 7-day forecast and converts it to the canonical
// dataset.
func (c *OpenMeteoClient) FetchForecast(ctx context.Context, lat, lon float64) (*types.ForecastDataset, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %v", err)
	}

	v := url.Values{}
	v.Set("latitude", fmt.Sprintf("%.4f", lat))
	v.Set("longitude", fmt.Sprintf("%.4f", lon))
	v.Set("hourly", strings.Join(openMeteoHourlyVars, ","))
	v.Set("daily", strings.Join(openMeteoDailyVars, ","))
	v.Set("forecast_days", fmt.Sprint(forecastDays))
	v.Set("windspeed_unit", "ms")
	v.Set("timezone", "UTC")

	reqURL := c.endpoint + "?" + v.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating Open-Meteo request: %v", err)
	}

	c.logger.Debugf("making request to Open-Meteo: %v", reqURL)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request to Open-Meteo: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("bad response from Open-Meteo: %s: %s", resp.Status, body)
	}

	var om openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&om); err != nil {
		return nil, fmt.Errorf("unable to decode Open-Meteo response: %v", err)
	}

	return c.normalize(&om)
}

func (c *OpenMeteoClient) normalize(om *openMeteoResponse) (*types.ForecastDataset, error) {
	ds := &types.ForecastDataset{}

	for i, ts := range om.Hourly.Time {
		t, err := parseOpenMeteoTime(ts)
		if err != nil {
			return nil, fmt.Errorf("bad hourly timestamp %q: %v", ts, err)
		}
		code := at(om.Hourly.WeatherCode, i)
		ds.Hourly = append(ds.Hourly, types.HourlyPoint{
			Timestamp:                t,
			Temperature:              atF(om.Hourly.Temperature, i),
			FeelsLike:                atF(om.Hourly.FeelsLike, i),
			Humidity:                 atF(om.Hourly.Humidity, i),
			Pressure:                 atF(om.Hourly.Pressure, i),
			UVIndex:                  atF(om.Hourly.UVIndex, i),
			Visibility:               atF(om.Hourly.Visibility, i),
			WindSpeed:                atF(om.Hourly.WindSpeed, i),
			WindDirection:            atF(om.Hourly.WindDirection, i),
			Precipitation:            atF(om.Hourly.Precipitation, i),
			PrecipitationProbability: atF(om.Hourly.PrecipitationProbability, i) / 100,
			CloudCover:               atF(om.Hourly.CloudCover, i),
			PrecipitationType:        wmoPrecipType(code),
			Condition:                wmoCondition(code),
		})
	}

	for i, ts := range om.Daily.Time {
		t, err := parseOpenMeteoTime(ts)
		if err != nil {
			return nil, fmt.Errorf("bad daily timestamp %q: %v", ts, err)
		}
		code := at(om.Daily.WeatherCode, i)
		day := types.DailyPoint{
			Date:                     t,
			TemperatureMax:           atF(om.Daily.TemperatureMax, i),
			TemperatureMin:           atF(om.Daily.TemperatureMin, i),
			FeelsLikeMax:             atF(om.Daily.FeelsLikeMax, i),
			FeelsLikeMin:             atF(om.Daily.FeelsLikeMin, i),
			Pressure:                 atF(om.Daily.Pressure, i),
			UVIndex:                  atF(om.Daily.UVIndex, i),
			WindSpeed:                atF(om.Daily.WindSpeed, i),
			WindDirection:            atF(om.Daily.WindDirection, i),
			Precipitation:            atF(om.Daily.Precipitation, i),
			PrecipitationProbability: atF(om.Daily.PrecipitationProbability, i) / 100,
			CloudCover:               atF(om.Daily.CloudCover, i),
			PrecipitationType:        wmoPrecipType(code),
			Condition:                wmoCondition(code),
		}
		if i < len(om.Daily.Sunrise) {
			day.SunRise, _ = parseOpenMeteoTime(om.Daily.Sunrise[i])
		}
		if i < len(om.Daily.Sunset) {
			day.SunSet, _ = parseOpenMeteoTime(om.Daily.Sunset[i])
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

	return ds, nil
}

// parseOpenMeteoTime handles the API's "2006-01-02T15:04" minute-resolution
// stamps and bare dates.
func parseOpenMeteoTime(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func at(s []int, i int) int {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func atF(s []float64, i int) float64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// wmoCondition maps a WMO weather interpretation code to a condition tag.
func wmoCondition(code int) types.Condition {
	switch {
	case code == 0:
		return types.ConditionClear
	case code == 1 || code == 2:
		return types.ConditionPartlyCloudy
	case code == 3:
		return types.ConditionCloudy
	case code == 45 || code == 48:
		return types.ConditionFog
	case code == 51 || code == 53 || code == 55 || code == 56 || code == 57:
		return types.ConditionLightRain
	case code == 61 || code == 63 || code == 65 || code == 66 || code == 67 ||
		code == 80 || code == 81 || code == 82:
		return types.ConditionRain
	case code == 71 || code == 73 || code == 75 || code == 77 ||
		code == 85 || code == 86:
		return types.ConditionSnow
	case code == 95 || code == 96 || code == 99:
		return types.ConditionThunderstorm
	default:
		return types.ConditionClear
	}
}

// wmoPrecipType derives the precipitation kind from the same code table.
func wmoPrecipType(code int) types.PrecipType {
	switch wmoCondition(code) {
	case types.ConditionRain, types.ConditionLightRain, types.ConditionThunderstorm:
		return types.PrecipRain
	case types.ConditionSnow:
		return types.PrecipSnow
	default:
		return types.PrecipNone
	}
}
