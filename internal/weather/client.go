package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the Open-Meteo forecast endpoint.
	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

	userAgent = "ndot-clock/1.0 (desktop clock; github.com/ndot/ndot-clock)"
)

// Report is a snapshot of current conditions for one location.
type Report struct {
	Temperature float64   `json:"temperature"`
	Code        int       `json:"code"`
	WindSpeed   float64   `json:"wind_speed"`
	IsDay       bool      `json:"is_day"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Age returns how long ago the report was fetched.
func (r *Report) Age() time.Duration {
	return time.Since(r.FetchedAt)
}

// Client talks to the Open-Meteo current-weather API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new API client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetBaseURL overrides the API endpoint.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

type currentResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		IsDay       int     `json:"is_day"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// Current fetches the current conditions for the given coordinates.
func (c *Client) Current(ctx context.Context, latitude, longitude float64) (*Report, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("current", "temperature_2m,is_day,weather_code,wind_speed_10m")
	params.Set("wind_speed_unit", "ms")
	params.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}

	return &Report{
		Temperature: payload.Current.Temperature,
		Code:        payload.Current.WeatherCode,
		WindSpeed:   payload.Current.WindSpeed,
		IsDay:       payload.Current.IsDay != 0,
		FetchedAt:   time.Now(),
	}, nil
}
