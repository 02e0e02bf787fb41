package weather

import (
	"context"

	"github.com/ndot/ndot-clock/internal/model"
)

// Fetcher fetches current conditions for a pair of coordinates.
type Fetcher interface {
	Current(ctx context.Context, latitude, longitude float64) (*Report, error)
}

// Provider defines the interface the UI uses to consume weather updates.
type Provider interface {
	SetUpdateCallback(func(*Report, error))
	SetLocation(location model.Location)
	Current() (*Report, bool)
	RefreshNow()
}
