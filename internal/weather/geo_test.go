package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocoderLocate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ip":"93.184.216.34","city":"Lisbon","latitude":38.7223,"longitude":-9.1393}`)
	}))
	defer server.Close()

	geocoder := NewGeocoder(5 * time.Second)
	geocoder.SetLocateURL(server.URL)

	place, err := geocoder.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", place.Name)
	assert.InDelta(t, 38.7223, place.Latitude, 0.0001)
	assert.InDelta(t, -9.1393, place.Longitude, 0.0001)
}

func TestGeocoderLocateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	geocoder := NewGeocoder(5 * time.Second)
	geocoder.SetLocateURL(server.URL)

	place, err := geocoder.Locate(context.Background())
	assert.Error(t, err)
	assert.Nil(t, place)
}

func TestGeocoderSearch(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[{"display_name":"Paris, Île-de-France, France","lat":"48.8588897","lon":"2.3200410"},{"display_name":"Paris, Texas, United States","lat":"33.6617962","lon":"-95.555513"}]`)
	}))
	defer server.Close()

	geocoder := NewGeocoder(5 * time.Second)
	geocoder.SetSearchURL(server.URL)

	places, err := geocoder.Search(context.Background(), "Paris")
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, "Paris", gotQuery.Get("q"))
	assert.Equal(t, "json", gotQuery.Get("format"))
	assert.Equal(t, "5", gotQuery.Get("limit"))

	assert.Equal(t, "Paris, Île-de-France, France", places[0].Name)
	assert.InDelta(t, 48.8588897, places[0].Latitude, 0.0001)
	assert.InDelta(t, 2.3200410, places[0].Longitude, 0.0001)
	assert.Equal(t, "Paris, Texas, United States", places[1].Name)
}

func TestGeocoderSearchNoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	geocoder := NewGeocoder(5 * time.Second)
	geocoder.SetSearchURL(server.URL)

	places, err := geocoder.Search(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestGeocoderSearchBadCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"display_name":"Nowhere","lat":"north","lon":"2.0"}]`)
	}))
	defer server.Close()

	geocoder := NewGeocoder(5 * time.Second)
	geocoder.SetSearchURL(server.URL)

	places, err := geocoder.Search(context.Background(), "Nowhere")
	assert.Error(t, err)
	assert.Nil(t, places)
}
