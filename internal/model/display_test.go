package model

import "testing"

func TestDisplaySettingsNormalize(t *testing.T) {
	tests := []struct {
		name           string
		in             DisplaySettings
		wantBrightness float64
		wantLanguage   string
	}{
		{"zero brightness clamped", DisplaySettings{Brightness: 0, Language: LanguageRussian}, MinBrightness, LanguageRussian},
		{"over max clamped", DisplaySettings{Brightness: 3.5, Language: LanguagePortuguese}, MaxBrightness, LanguagePortuguese},
		{"unknown language falls back", DisplaySettings{Brightness: 0.5, Language: "xx"}, 0.5, LanguageEnglish},
		{"valid untouched", DisplaySettings{Brightness: 0.8, Language: LanguageEnglish}, 0.8, LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			if tt.in.Brightness != tt.wantBrightness {
				t.Errorf("brightness = %v, want %v", tt.in.Brightness, tt.wantBrightness)
			}
			if tt.in.Language != tt.wantLanguage {
				t.Errorf("language = %q, want %q", tt.in.Language, tt.wantLanguage)
			}
		})
	}
}

func TestColorScaled(t *testing.T) {
	c := ColorRGB{R: 200, G: 100, B: 50}

	half := c.Scaled(0.5)
	if half.R != 100 || half.G != 50 || half.B != 25 {
		t.Errorf("Scaled(0.5) = %+v", half)
	}

	// Below the floor the brightness clamps rather than going dark
	dim := c.Scaled(0)
	if dim.R != uint8(float64(c.R)*MinBrightness) {
		t.Errorf("Scaled(0).R = %d, want clamp at MinBrightness", dim.R)
	}
}

func TestLocationHasCoordinates(t *testing.T) {
	if (Location{}).HasCoordinates() {
		t.Error("zero location reports coordinates")
	}
	if !(Location{Latitude: 50.45, Longitude: 30.52}).HasCoordinates() {
		t.Error("set location reports no coordinates")
	}
}
