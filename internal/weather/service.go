package weather

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ndot/ndot-clock/internal/model"
)

// DefaultPollInterval is how often conditions are refreshed.
const DefaultPollInterval = 10 * time.Minute

// Service polls the weather API on a fixed interval and pushes every result
// to the UI callback. A failed poll reports the error together with the last
// good report so the UI can render it as stale.
type Service struct {
	fetcher  Fetcher
	cache    *Cache
	interval time.Duration

	mu       sync.RWMutex
	location model.Location
	last     *Report
	onUpdate func(*Report, error) // callback for UI updates

	kick chan struct{}
}

// NewService creates a new weather service. The cache may be nil. A cached
// report, when present, seeds the last known conditions before the first poll.
func NewService(fetcher Fetcher, cache *Cache, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	s := &Service{
		fetcher:  fetcher,
		cache:    cache,
		interval: interval,
		kick:     make(chan struct{}, 1),
	}
	if cache != nil {
		if report, ok := cache.LastReport(); ok {
			s.last = report
		}
	}
	return s
}

// SetUpdateCallback sets the callback function for weather updates.
func (s *Service) SetUpdateCallback(callback func(*Report, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetLocation changes the polled coordinates. A location change triggers an
// immediate refresh.
func (s *Service) SetLocation(location model.Location) {
	s.mu.Lock()
	changed := location != s.location
	s.location = location
	s.mu.Unlock()

	if changed && location.HasCoordinates() {
		s.RefreshNow()
	}
}

// Current returns the last known report, cached or fetched.
func (s *Service) Current() (*Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.last != nil
}

// RefreshNow requests an out-of-schedule poll. It never blocks; a request
// made while one is already pending is folded into it.
func (s *Service) RefreshNow() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Run polls until the context is cancelled. It fetches once immediately so
// the UI is not left empty for a full interval after startup.
func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		case <-s.kick:
			s.refresh(ctx)
		}
	}
}

func (s *Service) refresh(ctx context.Context) {
	s.mu.RLock()
	location := s.location
	s.mu.RUnlock()

	if !location.HasCoordinates() {
		log.Printf("weather: no coordinates configured, skipping poll")
		return
	}

	report, err := s.fetcher.Current(ctx, location.Latitude, location.Longitude)
	if err != nil {
		s.mu.RLock()
		last := s.last
		s.mu.RUnlock()
		log.Printf("weather: poll failed: %v", err)
		s.notifyUpdate(last, err)
		return
	}

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.SaveReport(report); err != nil {
			log.Printf("weather: failed to cache report: %v", err)
		}
	}
	s.notifyUpdate(report, nil)
}

// notifyUpdate calls the update callback if set.
func (s *Service) notifyUpdate(report *Report, err error) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	if callback != nil {
		callback(report, err)
	}
}
