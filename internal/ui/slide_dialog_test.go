package ui

import (
	"image/color"
	"testing"

	"github.com/ndot/ndot-clock/internal/model"
)

func TestNormalizeWebURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"should keep https URL", "https://example.com/dash", "https://example.com/dash", false},
		{"should keep http URL", "http://192.168.1.10:8123", "http://192.168.1.10:8123", false},
		{"should default missing scheme to https", "example.com/page", "https://example.com/page", false},
		{"should trim surrounding whitespace", "  example.com  ", "https://example.com", false},
		{"should reject empty input", "   ", "", true},
		{"should reject non-web scheme", "ftp://example.com", "", true},
		{"should reject missing host", "https:///path", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeWebURL(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("normalizeWebURL(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeWebURL(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("normalizeWebURL(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestColorToHex(t *testing.T) {
	tests := []struct {
		name     string
		color    model.ColorRGB
		expected string
	}{
		{"should format white", model.ColorRGB{R: 255, G: 255, B: 255}, "#FFFFFF"},
		{"should format black", model.ColorRGB{}, "#000000"},
		{"should zero pad channels", model.ColorRGB{R: 1, G: 10, B: 160}, "#010AA0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorToHex(tt.color)
			if got != tt.expected {
				t.Errorf("colorToHex(%v) = %q, expected %q", tt.color, got, tt.expected)
			}
		})
	}
}

func TestColorFromPicker(t *testing.T) {
	got := colorFromPicker(color.NRGBA{R: 18, G: 52, B: 86, A: 0xff})
	expected := model.ColorRGB{R: 18, G: 52, B: 86}
	if got != expected {
		t.Errorf("colorFromPicker() = %v, expected %v", got, expected)
	}
}
