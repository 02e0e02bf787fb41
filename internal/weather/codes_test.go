package weather

import (
	"testing"

	"github.com/ndot/ndot-clock/internal/model"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		code int
		lang string
		want string
	}{
		{"clear sky english", 0, model.LanguageEnglish, "Clear sky"},
		{"clear sky russian", 0, model.LanguageRussian, "Ясно"},
		{"clear sky portuguese", 0, model.LanguagePortuguese, "Céu limpo"},
		{"thunderstorm english", 95, model.LanguageEnglish, "Thunderstorm"},
		{"heavy snow russian", 75, model.LanguageRussian, "Сильный снег"},
		{"unknown code falls back to raw", 42, model.LanguageEnglish, "Code 42"},
		{"unknown language falls back to english", 61, "de", "Slight rain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.code, tt.lang); got != tt.want {
				t.Errorf("Describe(%d, %q) = %q, want %q", tt.code, tt.lang, got, tt.want)
			}
		})
	}
}

func TestIcon(t *testing.T) {
	tests := []struct {
		name  string
		code  int
		isDay bool
		want  string
	}{
		{"clear day", 0, true, "☀"},
		{"clear night", 0, false, "🌙"},
		{"partly cloudy day", 2, true, "⛅"},
		{"partly cloudy night", 2, false, "☁"},
		{"overcast", 3, true, "☁"},
		{"fog", 45, true, "🌫"},
		{"drizzle", 53, true, "🌦"},
		{"rain", 63, false, "🌧"},
		{"rain showers", 81, true, "🌧"},
		{"snow", 73, true, "🌨"},
		{"thunderstorm", 95, false, "⛈"},
		{"unknown defaults to cloud", 42, true, "☁"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Icon(tt.code, tt.isDay); got != tt.want {
				t.Errorf("Icon(%d, %v) = %q, want %q", tt.code, tt.isDay, got, tt.want)
			}
		})
	}
}
