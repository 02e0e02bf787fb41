package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"golang.org/x/sync/errgroup"

	"github.com/ndot/ndot-clock/internal/config"
	"github.com/ndot/ndot-clock/internal/platform"
	"github.com/ndot/ndot-clock/internal/store"
	"github.com/ndot/ndot-clock/internal/ui"
	"github.com/ndot/ndot-clock/internal/weather"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ndot.ndot-clock"
	AppName = "NDot Clock"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Load tuning configuration
	cfg, err := config.Load("")
	if err != nil {
		log.Printf("Warning: failed to load config, using defaults: %v", err)
		cfg = config.Default()
	}

	// Resolve the state directory; a failure keeps state next to the binary
	configDir, err := platform.EnsureConfigDir()
	if err != nil {
		log.Printf("Warning: failed to prepare config directory: %v", err)
		configDir = "."
	} else {
		configPath := filepath.Join(configDir, config.ConfigFileName+"."+config.ConfigFileType)
		if err := config.GenerateDefaultConfig(configPath); err != nil {
			log.Printf("Warning: failed to write default config: %v", err)
		}
	}

	// Load the persisted deck; a missing or corrupt file yields defaults
	st := store.New(configDir)
	snap := st.Load()
	saver := store.NewSaver(st)

	// Weather stack; the app runs without the cache when it cannot open
	cache, err := weather.OpenCache(filepath.Join(configDir, weather.CacheFileName))
	if err != nil {
		log.Printf("Warning: failed to open weather cache: %v", err)
		cache = nil
	}
	client := weather.NewClient(cfg.Weather.RequestTimeout)
	weatherSvc := weather.NewService(client, cache, cfg.Weather.PollInterval)
	geocoder := weather.NewGeocoder(cfg.Weather.RequestTimeout)

	// Background services run until shutdown
	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return saver.Run(gctx)
	})
	g.Go(func() error {
		if err := weatherSvc.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply dot-matrix theme
	myApp.Settings().SetTheme(ui.NewMatrixTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(float32(cfg.UI.WindowWidth), float32(cfg.UI.WindowHeight)))

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, cfg, snap, saver, weatherSvc, geocoder, cache)

	// Show and run
	myWindow.ShowAndRun()

	// Shut down: stop timers, flush the pending save, close the cache
	rootUI.Stop()
	cancel()
	if err := g.Wait(); err != nil {
		log.Printf("Failed to shut down background services: %v", err)
	}
	if cache != nil {
		if err := cache.Close(); err != nil {
			log.Printf("Failed to close weather cache: %v", err)
		}
	}
}
