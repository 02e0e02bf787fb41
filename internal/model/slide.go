package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// SlideKind identifies what a slide displays
type SlideKind string

const (
	// SlideKindClock is the dot-matrix time and date panel
	SlideKindClock SlideKind = "clock"

	// SlideKindWeather is the current-conditions panel
	SlideKindWeather SlideKind = "weather"

	// SlideKindCustom is an arbitrary URL rendered by the web embed
	SlideKindCustom SlideKind = "custom"

	// SlideKindYouTube is a YouTube video or playlist embed
	SlideKindYouTube SlideKind = "youtube"

	// SlideKindHomeAssistant is a Home Assistant dashboard embed
	SlideKindHomeAssistant SlideKind = "home_assistant"
)

// String returns the string representation of SlideKind
func (k SlideKind) String() string {
	return string(k)
}

// IsValid returns true if the kind is one of the known slide kinds
func (k SlideKind) IsValid() bool {
	switch k {
	case SlideKindClock, SlideKindWeather, SlideKindCustom, SlideKindYouTube, SlideKindHomeAssistant:
		return true
	}
	return false
}

// IsEmbed returns true if the slide content is rendered by the web embed
func (k SlideKind) IsEmbed() bool {
	return k == SlideKindCustom || k == SlideKindYouTube || k == SlideKindHomeAssistant
}

// Config is the kind-specific configuration payload of a slide. Exactly one
// concrete type exists per SlideKind; switches over configs must handle
// every kind and reject unknown ones.
type Config interface {
	Kind() SlideKind
}

// ClockConfig configures a clock slide. The clock has no per-slide options;
// appearance is governed by the global display settings.
type ClockConfig struct{}

// Kind returns SlideKindClock
func (ClockConfig) Kind() SlideKind { return SlideKindClock }

// WeatherConfig configures a weather slide
type WeatherConfig struct {
	ShowWind bool `json:"show_wind"`
}

// Kind returns SlideKindWeather
func (WeatherConfig) Kind() SlideKind { return SlideKindWeather }

// CustomConfig configures a custom web content slide
type CustomConfig struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// Kind returns SlideKindCustom
func (CustomConfig) Kind() SlideKind { return SlideKindCustom }

// YouTubeConfig configures a YouTube slide. VideoID and Title are resolved
// from URL when the slide is configured and cached here so the embed does
// not depend on the resolver at render time.
type YouTubeConfig struct {
	URL     string `json:"url"`
	VideoID string `json:"video_id,omitempty"`
	Title   string `json:"title,omitempty"`
}

// Kind returns SlideKindYouTube
func (YouTubeConfig) Kind() SlideKind { return SlideKindYouTube }

// HomeAssistantConfig configures a Home Assistant dashboard slide
type HomeAssistantConfig struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// Kind returns SlideKindHomeAssistant
func (HomeAssistantConfig) Kind() SlideKind { return SlideKindHomeAssistant }

// DefaultConfig returns the zero configuration for the given kind
func DefaultConfig(kind SlideKind) (Config, error) {
	switch kind {
	case SlideKindClock:
		return ClockConfig{}, nil
	case SlideKindWeather:
		return WeatherConfig{ShowWind: true}, nil
	case SlideKindCustom:
		return CustomConfig{}, nil
	case SlideKindYouTube:
		return YouTubeConfig{}, nil
	case SlideKindHomeAssistant:
		return HomeAssistantConfig{}, nil
	default:
		return nil, fmt.Errorf("unknown slide kind %q", kind)
	}
}

// decodeConfig unmarshals a raw config payload into the concrete type for
// the given kind
func decodeConfig(kind SlideKind, raw json.RawMessage) (Config, error) {
	if len(raw) == 0 {
		return DefaultConfig(kind)
	}
	switch kind {
	case SlideKindClock:
		var c ClockConfig
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case SlideKindWeather:
		var c WeatherConfig
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case SlideKindCustom:
		var c CustomConfig
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case SlideKindYouTube:
		var c YouTubeConfig
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case SlideKindHomeAssistant:
		var c HomeAssistantConfig
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown slide kind %q", kind)
	}
}

// Slide represents a single panel in the deck
type Slide struct {
	ID       string
	Kind     SlideKind
	Position int
	Config   Config
}

// slideJSON is the wire form of Slide; Config is deferred so it can be
// decoded into the concrete type selected by Kind.
type slideJSON struct {
	ID       string          `json:"id"`
	Kind     SlideKind       `json:"kind"`
	Position int             `json:"position"`
	Config   json.RawMessage `json:"config,omitempty"`
}

// NewSlide creates a slide with a fresh unique ID. A nil config yields the
// kind's default configuration.
func NewSlide(kind SlideKind, config Config) (*Slide, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown slide kind %q", kind)
	}
	if config == nil {
		c, err := DefaultConfig(kind)
		if err != nil {
			return nil, err
		}
		config = c
	}
	if config.Kind() != kind {
		return nil, fmt.Errorf("config kind %q does not match slide kind %q", config.Kind(), kind)
	}
	return &Slide{
		ID:     newSlideID(),
		Kind:   kind,
		Config: config,
	}, nil
}

// MarshalJSON encodes the slide with its config payload inline
func (s *Slide) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(s.Config)
	if err != nil {
		return nil, fmt.Errorf("marshal %s config: %w", s.Kind, err)
	}
	return json.Marshal(slideJSON{
		ID:       s.ID,
		Kind:     s.Kind,
		Position: s.Position,
		Config:   raw,
	})
}

// UnmarshalJSON decodes the slide, selecting the config type by kind
func (s *Slide) UnmarshalJSON(data []byte) error {
	var sj slideJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	cfg, err := decodeConfig(sj.Kind, sj.Config)
	if err != nil {
		return fmt.Errorf("decode %s config: %w", sj.Kind, err)
	}
	s.ID = sj.ID
	s.Kind = sj.Kind
	s.Position = sj.Position
	s.Config = cfg
	return nil
}

// newSlideID generates a time-ordered unique slide ID
func newSlideID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
