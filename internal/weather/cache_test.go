package weather

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheReportRoundTrip(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), CacheFileName))
	require.NoError(t, err)
	defer cache.Close()

	_, ok := cache.LastReport()
	assert.False(t, ok)

	want := &Report{
		Temperature: 21.5,
		Code:        2,
		WindSpeed:   3.1,
		IsDay:       true,
		FetchedAt:   time.Now(),
	}
	require.NoError(t, cache.SaveReport(want))

	got, ok := cache.LastReport()
	require.True(t, ok)
	assert.InDelta(t, want.Temperature, got.Temperature, 0.001)
	assert.Equal(t, want.Code, got.Code)
	assert.InDelta(t, want.WindSpeed, got.WindSpeed, 0.001)
	assert.True(t, got.IsDay)
	assert.WithinDuration(t, want.FetchedAt, got.FetchedAt, time.Second)
}

func TestCacheReportReplaced(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), CacheFileName))
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.SaveReport(&Report{Temperature: 10}))
	require.NoError(t, cache.SaveReport(&Report{Temperature: 20}))

	got, ok := cache.LastReport()
	require.True(t, ok)
	assert.InDelta(t, 20, got.Temperature, 0.001)
}

func TestCacheSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), CacheFileName)

	cache, err := OpenCache(path)
	require.NoError(t, err)
	require.NoError(t, cache.SaveReport(&Report{Temperature: 4.5, Code: 61}))
	require.NoError(t, cache.Close())

	reopened, err := OpenCache(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.LastReport()
	require.True(t, ok)
	assert.Equal(t, 61, got.Code)
}

func TestCachePlacesRoundTrip(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), CacheFileName))
	require.NoError(t, err)
	defer cache.Close()

	_, ok := cache.Places("paris")
	assert.False(t, ok)

	want := []Place{
		{Name: "Paris, France", Latitude: 48.8588897, Longitude: 2.3200410},
		{Name: "Paris, Texas", Latitude: 33.6617962, Longitude: -95.555513},
	}
	require.NoError(t, cache.SavePlaces("  Paris ", want))

	got, ok := cache.Places("paris")
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].Name, got[0].Name)
	assert.InDelta(t, want[1].Latitude, got[1].Latitude, 0.0001)
}
