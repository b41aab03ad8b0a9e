// Package weather fetches current conditions and a short-term rain estimate
// from OpenWeatherMap.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-locator/internal/domain"
	"weather-locator/internal/platform/obs"
	"weather-locator/internal/ports"
)

// ErrCityNotFound reports a 404 from the current-conditions endpoint.
var ErrCityNotFound = errors.New("city not found")

var _ ports.WeatherProvider = (*OpenWeatherClient)(nil)

// OpenWeatherClient implements WeatherProvider against the OpenWeatherMap
// data/2.5 API using metric units.
//
// The current-conditions call is authoritative: its failure fails the report.
// The forecast call is secondary: its failure only drops the rain estimate.
type OpenWeatherClient struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewOpenWeatherClient(apiKey, baseURL string, timeout time.Duration) (*OpenWeatherClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openweather api key is empty")
	}

	return &OpenWeatherClient{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: baseURL,
	}, nil
}

type currentResponse struct {
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

type forecastResponse struct {
	List []forecastEntry `json:"list"`
}

type forecastEntry struct {
	Pop *float64 `json:"pop"`
}

// Report fetches current conditions and the near-term forecast for city.
func (c *OpenWeatherClient) Report(ctx context.Context, city string) (_ domain.WeatherReport, err error) {
	defer obs.Time(ctx, "openweather.Report")(&err)

	city = strings.TrimSpace(city)
	if city == "" {
		return domain.WeatherReport{}, errors.New("weather report: city must be non-empty")
	}

	var current currentResponse
	if err := c.getJSON(ctx, "/weather", city, &current); err != nil {
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == http.StatusNotFound {
			return domain.WeatherReport{}, fmt.Errorf("weather report: %w: %q", ErrCityNotFound, city)
		}
		return domain.WeatherReport{}, fmt.Errorf("weather report: fetch current conditions: %w", err)
	}

	report := domain.WeatherReport{
		City:         city,
		TemperatureC: current.Main.Temp,
		HumidityPct:  current.Main.Humidity,
		WindSpeedMS:  current.Wind.Speed,
	}

	var forecast forecastResponse
	if err := c.getJSON(ctx, "/forecast", city, &forecast); err != nil {
		// Degrade: a report without a rain estimate is still a report.
		log.Printf("forecast fetch failed city=%q err=%v", city, err)
		return report, nil
	}
	report.RainProbabilityPct = maxRainProbability(forecast.List)

	return report, nil
}

func (c *OpenWeatherClient) getJSON(ctx context.Context, path, city string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	req.URL.RawQuery = q.Encode()

	resp, err := c.session.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}
