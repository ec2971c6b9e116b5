// Package providers fetches forecasts from external weather APIs and
// normalizes them into the canonical dataset. Every client emits metric
// units: °C, m/s, mm, hPa, meters, probabilities in 0-1.
package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/types"
)

// Provider is a weather data source for a coordinate pair.
type Provider interface {
	Name() string
	FetchForecast(ctx context.Context, lat, lon float64) (*types.ForecastDataset, error)
}

// forecastDays is how far ahead every provider is asked to forecast.
const forecastDays = 7

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 5 * time.Second,
	}
}
