package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
)

var ErrWeatherUnavailable = errors.New("weather service unavailable")

//go:generate moq -rm -out forecastprovider_mock.go . ForecastProvider
type ForecastProvider interface {
	Fetch(ctx context.Context, lat, lon float64) (types.WeatherData, error)
}

type ClientConfig struct {
	APIKey string
	URL    string
}

type forecastClient struct {
	apiKey string
	url    string
	client *http.Client
}

func NewClient(cfg ClientConfig) ForecastProvider {
	return &forecastClient{
		apiKey: cfg.APIKey,
		url:    cfg.URL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type oneCallResponse struct {
	Current oneCallSlot   `json:"current"`
	Hourly  []oneCallSlot `json:"hourly"`
	Daily   []oneCallDay  `json:"daily"`
}

type oneCallSlot struct {
	Dt        int64              `json:"dt"`
	Temp      float64            `json:"temp"`
	Humidity  float64            `json:"humidity"`
	WindSpeed float64            `json:"wind_speed"`
	Pop       float64            `json:"pop"`
	Weather   []oneCallCondition `json:"weather"`
}

type oneCallDay struct {
	Dt   int64 `json:"dt"`
	Temp struct {
		Day float64 `json:"day"`
	} `json:"temp"`
	Humidity  float64            `json:"humidity"`
	WindSpeed float64            `json:"wind_speed"`
	Pop       float64            `json:"pop"`
	Weather   []oneCallCondition `json:"weather"`
}

type oneCallCondition struct {
	Description string `json:"description"`
}

// Fetch retrieves a live snapshot plus hourly and daily forecasts for the
// given coordinates. Wind speeds are converted to km/h and precipitation
// probabilities to percent before they reach the rest of the service.
func (c *forecastClient) Fetch(ctx context.Context, lat, lon float64) (types.WeatherData, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("units", "metric")
	params.Set("exclude", "minutely,alerts")
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?"+params.Encode(), nil)
	if err != nil {
		return types.WeatherData{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return types.WeatherData{}, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.WeatherData{}, fmt.Errorf("%w: forecast API returned status %d", ErrWeatherUnavailable, resp.StatusCode)
	}

	var oneCall oneCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&oneCall); err != nil {
		return types.WeatherData{}, fmt.Errorf("%w: decode response: %w", ErrWeatherUnavailable, err)
	}

	data := types.WeatherData{
		Current: observationFromSlot(oneCall.Current),
		Hourly:  make([]types.WeatherObservation, 0, len(oneCall.Hourly)),
		Weekly:  make([]types.WeatherObservation, 0, len(oneCall.Daily)),
	}

	for _, slot := range oneCall.Hourly {
		data.Hourly = append(data.Hourly, observationFromSlot(slot))
	}

	for _, day := range oneCall.Daily {
		data.Weekly = append(data.Weekly, types.WeatherObservation{
			Timestamp:     time.Unix(day.Dt, 0).UTC(),
			Temperature:   day.Temp.Day,
			Description:   description(day.Weather),
			WindSpeed:     day.WindSpeed * 3.6,
			Precipitation: day.Pop * 100,
			Humidity:      day.Humidity,
		})
	}

	return data, nil
}

func observationFromSlot(slot oneCallSlot) types.WeatherObservation {
	return types.WeatherObservation{
		Timestamp:     time.Unix(slot.Dt, 0).UTC(),
		Temperature:   slot.Temp,
		Description:   description(slot.Weather),
		WindSpeed:     slot.WindSpeed * 3.6,
		Precipitation: slot.Pop * 100,
		Humidity:      slot.Humidity,
	}
}

func description(conditions []oneCallCondition) string {
	if len(conditions) == 0 {
		return ""
	}
	return conditions[0].Description
}
