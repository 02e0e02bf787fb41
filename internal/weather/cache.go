package weather

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

// CacheFileName is the bbolt database file kept next to the deck file.
const CacheFileName = "cache.db"

var (
	weatherBucket = []byte("weather")
	geocodeBucket = []byte("geocode")

	lastReportKey = []byte("last")
)

// Cache persists the last good weather report and past geocoding results so
// the app has something to show before the first fetch completes.
type Cache struct {
	db *bolt.DB
}

// OpenCache opens (or creates) the cache database at the given path.
func OpenCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{weatherBucket, geocodeBucket} {
			if _, createErr := tx.CreateBucketIfNotExists(bucket); createErr != nil {
				return createErr
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// SaveReport stores the latest report, replacing the previous one.
func (c *Cache) SaveReport(report *Report) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(weatherBucket)
		data, err := json.Marshal(report)
		if err != nil {
			return err
		}
		return b.Put(lastReportKey, data)
	})
}

// LastReport returns the most recently stored report, if any.
func (c *Cache) LastReport() (*Report, bool) {
	var report *Report
	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(weatherBucket).Get(lastReportKey)
		if data == nil {
			return nil
		}
		var decoded Report
		if err := json.Unmarshal(data, &decoded); err != nil {
			return err
		}
		report = &decoded
		return nil
	})
	if err != nil {
		log.Printf("weather: discarding unreadable cached report: %v", err)
		return nil, false
	}
	if report == nil {
		return nil, false
	}
	return report, true
}

// SavePlaces stores the matches for a search query.
func (c *Cache) SavePlaces(query string, places []Place) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(geocodeBucket)
		data, err := json.Marshal(places)
		if err != nil {
			return err
		}
		return b.Put([]byte(normalizeQuery(query)), data)
	})
}

// Places returns cached matches for a search query, if any.
func (c *Cache) Places(query string) ([]Place, bool) {
	var places []Place
	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(geocodeBucket).Get([]byte(normalizeQuery(query)))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &places)
	})
	if err != nil {
		log.Printf("weather: discarding unreadable cached places: %v", err)
		return nil, false
	}
	if places == nil {
		return nil, false
	}
	return places, true
}

// normalizeQuery makes cache keys case and whitespace insensitive.
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
