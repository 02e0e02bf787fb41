package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Gesture.LongPress != 2*time.Second {
		t.Errorf("Gesture.LongPress = %v, want 2s", cfg.Gesture.LongPress)
	}
	if cfg.Gesture.MoveThresholdPx != 8.0 {
		t.Errorf("Gesture.MoveThresholdPx = %v, want 8", cfg.Gesture.MoveThresholdPx)
	}
	if cfg.Gesture.CommitFraction != 0.30 {
		t.Errorf("Gesture.CommitFraction = %v, want 0.30", cfg.Gesture.CommitFraction)
	}
	if cfg.Gesture.FlingVelocityPxS != 300.0 {
		t.Errorf("Gesture.FlingVelocityPxS = %v, want 300", cfg.Gesture.FlingVelocityPxS)
	}
	if cfg.Weather.PollInterval != 10*time.Minute {
		t.Errorf("Weather.PollInterval = %v, want 10m", cfg.Weather.PollInterval)
	}
	if cfg.UI.ReturnToClock != 60*time.Second {
		t.Errorf("UI.ReturnToClock = %v, want 60s", cfg.UI.ReturnToClock)
	}
	if cfg.UI.WindowWidth <= 0 || cfg.UI.WindowHeight <= 0 {
		t.Errorf("window size = %dx%d, want positive", cfg.UI.WindowWidth, cfg.UI.WindowHeight)
	}
}

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, ".config"))
	t.Setenv("AppData", filepath.Join(tempDir, "AppData"))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no config file failed: %v", err)
	}

	want := defaultConfig()
	if cfg.Gesture != want.Gesture {
		t.Errorf("Gesture = %+v, want defaults %+v", cfg.Gesture, want.Gesture)
	}
	if cfg.Weather != want.Weather {
		t.Errorf("Weather = %+v, want defaults %+v", cfg.Weather, want.Weather)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[gesture]
long_press = "3s"
move_threshold_px = 12.0
commit_fraction = 0.4

[weather]
poll_interval = "5m"

[ui]
window_width = 800
return_to_clock = "0s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Gesture.LongPress != 3*time.Second {
		t.Errorf("LongPress = %v, want 3s", cfg.Gesture.LongPress)
	}
	if cfg.Gesture.MoveThresholdPx != 12.0 {
		t.Errorf("MoveThresholdPx = %v, want 12", cfg.Gesture.MoveThresholdPx)
	}
	if cfg.Gesture.CommitFraction != 0.4 {
		t.Errorf("CommitFraction = %v, want 0.4", cfg.Gesture.CommitFraction)
	}
	// Unset keys keep their defaults
	if cfg.Gesture.FlingVelocityPxS != DefaultFlingVelocityPxS {
		t.Errorf("FlingVelocityPxS = %v, want default", cfg.Gesture.FlingVelocityPxS)
	}
	if cfg.Weather.PollInterval != 5*time.Minute {
		t.Errorf("PollInterval = %v, want 5m", cfg.Weather.PollInterval)
	}
	if cfg.UI.WindowWidth != 800 {
		t.Errorf("WindowWidth = %d, want 800", cfg.UI.WindowWidth)
	}
	// Zero disables the timer and survives normalization
	if cfg.UI.ReturnToClock != 0 {
		t.Errorf("ReturnToClock = %v, want 0", cfg.UI.ReturnToClock)
	}
}

func TestNormalizeRepairsBadValues(t *testing.T) {
	cfg := &Config{
		Gesture: GestureConfig{
			LongPress:        -time.Second,
			MoveThresholdPx:  0,
			CommitFraction:   1.7,
			FlingVelocityPxS: -5,
		},
		Weather: WeatherConfig{PollInterval: 0, RequestTimeout: -time.Second},
		UI:      UIConfig{WindowWidth: 0, WindowHeight: -10, ReturnToClock: -time.Minute},
	}

	cfg.normalize()

	if cfg.Gesture.LongPress != DefaultLongPress {
		t.Errorf("LongPress = %v, want default", cfg.Gesture.LongPress)
	}
	if cfg.Gesture.MoveThresholdPx != DefaultMoveThresholdPx {
		t.Errorf("MoveThresholdPx = %v, want default", cfg.Gesture.MoveThresholdPx)
	}
	if cfg.Gesture.CommitFraction != DefaultCommitFraction {
		t.Errorf("CommitFraction = %v, want default", cfg.Gesture.CommitFraction)
	}
	if cfg.Weather.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want default", cfg.Weather.PollInterval)
	}
	if cfg.UI.WindowWidth != DefaultWindowWidth || cfg.UI.WindowHeight != DefaultWindowHeight {
		t.Errorf("window = %dx%d, want defaults", cfg.UI.WindowWidth, cfg.UI.WindowHeight)
	}
	if cfg.UI.ReturnToClock != 0 {
		t.Errorf("negative ReturnToClock = %v, want disabled (0)", cfg.UI.ReturnToClock)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	want := defaultConfig()
	want.Gesture.LongPress = 1500 * time.Millisecond
	want.Gesture.CommitFraction = 0.25
	want.UI.WindowWidth = 720

	if err := Save(want, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.Gesture != want.Gesture {
		t.Errorf("Gesture = %+v, want %+v", got.Gesture, want.Gesture)
	}
	if got.Weather != want.Weather {
		t.Errorf("Weather = %+v, want %+v", got.Weather, want.Weather)
	}
	if got.UI != want.UI {
		t.Errorf("UI = %+v, want %+v", got.UI, want.UI)
	}
}

func TestGenerateDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := GenerateDefaultConfig(path); err != nil {
		t.Fatalf("GenerateDefaultConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file was not written: %v", err)
	}

	// A user-edited file is never overwritten
	if err := os.WriteFile(path, []byte("[gesture]\nlong_press = \"9s\"\n"), 0o644); err != nil {
		t.Fatalf("failed to overwrite config: %v", err)
	}
	if err := GenerateDefaultConfig(path); err != nil {
		t.Fatalf("second GenerateDefaultConfig failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gesture.LongPress != 9*time.Second {
		t.Errorf("LongPress = %v, generator clobbered an existing file", cfg.Gesture.LongPress)
	}
}
