package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/ndot/ndot-clock/internal/platform"
)

// Config file constants
const (
	ConfigFileName = "config"
	ConfigFileType = "toml"
	EnvPrefix      = "NDOT"
)

// Gesture tuning defaults
const (
	DefaultLongPress        = 2 * time.Second
	DefaultMoveThresholdPx  = 8.0
	DefaultCommitFraction   = 0.30
	DefaultFlingVelocityPxS = 300.0
)

// Weather defaults
const (
	DefaultPollInterval   = 10 * time.Minute
	DefaultRequestTimeout = 15 * time.Second
)

// Window and idle-timer defaults
const (
	DefaultWindowWidth   = 480
	DefaultWindowHeight  = 480
	DefaultReturnToClock = 60 * time.Second
	DefaultDotsHideDelay = 10 * time.Second
)

// Config is the tuning configuration read from config.toml. It holds the
// knobs of the interaction model and the background services; everything
// the user edits through the UI is persisted separately with the deck.
type Config struct {
	Gesture GestureConfig `mapstructure:"gesture"`
	Weather WeatherConfig `mapstructure:"weather"`
	UI      UIConfig      `mapstructure:"ui"`
}

// GestureConfig tunes the gesture state machine
type GestureConfig struct {
	LongPress        time.Duration `mapstructure:"long_press"`
	MoveThresholdPx  float64       `mapstructure:"move_threshold_px"`
	CommitFraction   float64       `mapstructure:"commit_fraction"`
	FlingVelocityPxS float64       `mapstructure:"fling_velocity_px_s"`
}

// WeatherConfig tunes the weather poller
type WeatherConfig struct {
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// UIConfig tunes window geometry and idle timers. Zero durations disable
// the corresponding timer.
type UIConfig struct {
	WindowWidth   int           `mapstructure:"window_width"`
	WindowHeight  int           `mapstructure:"window_height"`
	ReturnToClock time.Duration `mapstructure:"return_to_clock"`
	DotsHideDelay time.Duration `mapstructure:"dots_hide_delay"`
}

// Default returns the built-in tuning configuration
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Gesture: GestureConfig{
			LongPress:        DefaultLongPress,
			MoveThresholdPx:  DefaultMoveThresholdPx,
			CommitFraction:   DefaultCommitFraction,
			FlingVelocityPxS: DefaultFlingVelocityPxS,
		},
		Weather: WeatherConfig{
			PollInterval:   DefaultPollInterval,
			RequestTimeout: DefaultRequestTimeout,
		},
		UI: UIConfig{
			WindowWidth:   DefaultWindowWidth,
			WindowHeight:  DefaultWindowHeight,
			ReturnToClock: DefaultReturnToClock,
			DotsHideDelay: DefaultDotsHideDelay,
		},
	}
}

// Load reads the tuning config. With an empty configPath the platform
// config directory and the working directory are searched; a missing file
// yields the defaults. Environment variables with the NDOT prefix override
// file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("gesture", cfg.Gesture)
	v.SetDefault("weather", cfg.Weather)
	v.SetDefault("ui", cfg.UI)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileType)
		if dir, err := platform.ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	config.normalize()
	return &config, nil
}

// normalize repairs out-of-range tuning values back to their defaults so a
// hand-edited file cannot break the interaction model
func (c *Config) normalize() {
	if c.Gesture.LongPress <= 0 {
		c.Gesture.LongPress = DefaultLongPress
	}
	if c.Gesture.MoveThresholdPx <= 0 {
		c.Gesture.MoveThresholdPx = DefaultMoveThresholdPx
	}
	if c.Gesture.CommitFraction <= 0 || c.Gesture.CommitFraction > 1 {
		c.Gesture.CommitFraction = DefaultCommitFraction
	}
	if c.Gesture.FlingVelocityPxS <= 0 {
		c.Gesture.FlingVelocityPxS = DefaultFlingVelocityPxS
	}
	if c.Weather.PollInterval <= 0 {
		c.Weather.PollInterval = DefaultPollInterval
	}
	if c.Weather.RequestTimeout <= 0 {
		c.Weather.RequestTimeout = DefaultRequestTimeout
	}
	if c.UI.WindowWidth <= 0 {
		c.UI.WindowWidth = DefaultWindowWidth
	}
	if c.UI.WindowHeight <= 0 {
		c.UI.WindowHeight = DefaultWindowHeight
	}
	if c.UI.ReturnToClock < 0 {
		c.UI.ReturnToClock = 0
	}
	if c.UI.DotsHideDelay < 0 {
		c.UI.DotsHideDelay = 0
	}
}

// Save writes the config to the given path in TOML form, durations as
// strings for readability
func Save(config *Config, path string) error {
	v := viper.New()

	gestureCfg := map[string]interface{}{
		"long_press":          config.Gesture.LongPress.String(),
		"move_threshold_px":   config.Gesture.MoveThresholdPx,
		"commit_fraction":     config.Gesture.CommitFraction,
		"fling_velocity_px_s": config.Gesture.FlingVelocityPxS,
	}

	weatherCfg := map[string]interface{}{
		"poll_interval":   config.Weather.PollInterval.String(),
		"request_timeout": config.Weather.RequestTimeout.String(),
	}

	uiCfg := map[string]interface{}{
		"window_width":    config.UI.WindowWidth,
		"window_height":   config.UI.WindowHeight,
		"return_to_clock": config.UI.ReturnToClock.String(),
		"dots_hide_delay": config.UI.DotsHideDelay.String(),
	}

	v.Set("gesture", gestureCfg)
	v.Set("weather", weatherCfg)
	v.Set("ui", uiCfg)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

// GenerateDefaultConfig writes the default config file to the given path
// unless it already exists
func GenerateDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return Save(defaultConfig(), path)
}
