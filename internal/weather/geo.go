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
	// DefaultLocateURL is the IP geolocation endpoint.
	DefaultLocateURL = "https://ipapi.co/json"

	// DefaultSearchURL is the Nominatim city search endpoint.
	DefaultSearchURL = "https://nominatim.openstreetmap.org/search"

	// SearchLimit caps how many matches a city search returns.
	SearchLimit = 5
)

// Place is a named point on the map.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves the device location from its IP address and looks up
// coordinates for city names.
type Geocoder struct {
	locateURL string
	searchURL string
	client    *http.Client
}

// NewGeocoder creates a new geocoder with the given request timeout.
func NewGeocoder(timeout time.Duration) *Geocoder {
	return &Geocoder{
		locateURL: DefaultLocateURL,
		searchURL: DefaultSearchURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetLocateURL overrides the IP geolocation endpoint.
func (g *Geocoder) SetLocateURL(locateURL string) {
	g.locateURL = locateURL
}

// SetSearchURL overrides the city search endpoint.
func (g *Geocoder) SetSearchURL(searchURL string) {
	g.searchURL = searchURL
}

type locateResponse struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Locate resolves the device's approximate location from its IP address.
func (g *Geocoder) Locate(ctx context.Context) (*Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.locateURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("locating by IP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var payload locateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding geolocation response: %w", err)
	}

	return &Place{
		Name:      payload.City,
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
	}, nil
}

// Nominatim serves coordinates as strings.
type searchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search looks up places matching a city name, best match first.
func (g *Geocoder) Search(ctx context.Context, query string) ([]Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(SearchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching place: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	places := make([]Place, 0, len(results))
	for _, result := range results {
		lat, err := strconv.ParseFloat(result.Lat, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing latitude %q: %w", result.Lat, err)
		}
		lon, err := strconv.ParseFloat(result.Lon, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing longitude %q: %w", result.Lon, err)
		}
		places = append(places, Place{
			Name:      result.DisplayName,
			Latitude:  lat,
			Longitude: lon,
		})
	}
	return places, nil
}
