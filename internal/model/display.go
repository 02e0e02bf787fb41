package model

// Brightness bounds
const (
	MinBrightness = 0.2
	MaxBrightness = 1.0
)

// Supported UI languages
const (
	LanguageEnglish    = "en"
	LanguageRussian    = "ru"
	LanguagePortuguese = "pt"
)

// ColorRGB is a display color persisted as plain channel values
type ColorRGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Scaled returns the color with every channel multiplied by the brightness
// factor, clamped to the valid brightness range
func (c ColorRGB) Scaled(brightness float64) ColorRGB {
	b := clampBrightness(brightness)
	return ColorRGB{
		R: uint8(float64(c.R) * b),
		G: uint8(float64(c.G) * b),
		B: uint8(float64(c.B) * b),
	}
}

// Location is the user's weather location choice
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Auto      bool    `json:"auto"`
}

// HasCoordinates returns true once a concrete position is known
func (l Location) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

// DisplaySettings are the global appearance settings persisted together
// with the deck
type DisplaySettings struct {
	ClockColor      ColorRGB `json:"clock_color"`
	BackgroundColor ColorRGB `json:"background_color"`
	Brightness      float64  `json:"brightness"`
	TimeFormat24    bool     `json:"time_format_24"`
	ShowSeconds     bool     `json:"show_seconds"`
	Language        string   `json:"language"`
	Fullscreen      bool     `json:"fullscreen"`
	Location        Location `json:"location"`
}

// DefaultDisplaySettings returns the first-run appearance: white dots on
// black, full brightness, 24-hour time, automatic location
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		ClockColor:      ColorRGB{R: 255, G: 255, B: 255},
		BackgroundColor: ColorRGB{R: 0, G: 0, B: 0},
		Brightness:      MaxBrightness,
		TimeFormat24:    true,
		ShowSeconds:     false,
		Language:        LanguageEnglish,
		Location:        Location{Auto: true},
	}
}

// Normalize clamps persisted values into their valid ranges and falls back
// to English for unknown languages
func (ds *DisplaySettings) Normalize() {
	ds.Brightness = clampBrightness(ds.Brightness)
	switch ds.Language {
	case LanguageEnglish, LanguageRussian, LanguagePortuguese:
	default:
		ds.Language = LanguageEnglish
	}
}

func clampBrightness(b float64) float64 {
	if b < MinBrightness {
		return MinBrightness
	}
	if b > MaxBrightness {
		return MaxBrightness
	}
	return b
}
