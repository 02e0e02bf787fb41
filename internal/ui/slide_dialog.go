package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ndot/ndot-clock/internal/media"
	"github.com/ndot/ndot-clock/internal/model"
)

// SlideConfigDialog edits the kind-specific configuration of a single
// slide. Clock slides have no per-slide options; their taps open the
// display settings dialog instead.
type SlideConfigDialog struct {
	localization *Localization
	window       fyne.Window
	resolver     *media.Resolver
	onApply      func(slideID string, config model.Config)

	dialog *dialog.ConfirmDialog

	slideID string
	kind    model.SlideKind

	// UI components
	showWindCheck *widget.Check
	titleEntry    *widget.Entry
	urlEntry      *widget.Entry
}

// NewSlideConfigDialog creates a new slide configuration dialog. onApply
// receives the edited config together with the ID of the slide it belongs
// to.
func NewSlideConfigDialog(localization *Localization, window fyne.Window, resolver *media.Resolver, onApply func(slideID string, config model.Config)) *SlideConfigDialog {
	return &SlideConfigDialog{
		localization: localization,
		window:       window,
		resolver:     resolver,
		onApply:      onApply,
	}
}

// Show displays the dialog for the given slide. The UI is rebuilt on every
// Show because the form depends on the slide kind.
func (d *SlideConfigDialog) Show(slide *model.Slide) {
	if slide == nil {
		log.Printf("Warning: no slide given to configure")
		return
	}
	if slide.Kind == model.SlideKindClock {
		log.Printf("Warning: clock slides are configured through display settings")
		return
	}

	d.slideID = slide.ID
	d.kind = slide.Kind
	d.createUI()
	d.loadCurrentConfig(slide.Config)
	d.dialog.Show()
}

// createUI creates the form matching the slide kind
func (d *SlideConfigDialog) createUI() {
	var form fyne.CanvasObject

	switch d.kind {
	case model.SlideKindWeather:
		d.showWindCheck = widget.NewCheck(d.localization.GetText(KeyShowWind), nil)
		form = container.NewVBox(d.showWindCheck)

	case model.SlideKindYouTube:
		d.urlEntry = widget.NewEntry()
		d.urlEntry.SetPlaceHolder(d.localization.GetText(KeyEnterYouTubeURL))
		form = container.NewVBox(
			widget.NewLabel(d.localization.GetText(KeyURL)),
			d.urlEntry,
		)

	default:
		d.titleEntry = widget.NewEntry()
		d.titleEntry.SetPlaceHolder(d.localization.GetText(KeyTitle))
		d.urlEntry = widget.NewEntry()
		d.urlEntry.SetPlaceHolder(d.localization.GetText(KeyEnterWebURL))
		form = container.NewVBox(
			widget.NewLabel(d.localization.GetText(KeyTitle)),
			d.titleEntry,
			widget.NewLabel(d.localization.GetText(KeyURL)),
			d.urlEntry,
		)
	}

	// Create dialog with buttons
	d.dialog = dialog.NewCustomConfirm(
		d.localization.GetText(SlideKindKey(string(d.kind))),
		d.localization.GetText(KeySave),
		d.localization.GetText(KeyCancel),
		form,
		d.onSave,
		d.window,
	)

	d.dialog.Resize(fyne.NewSize(460, 260))
}

// loadCurrentConfig loads the slide's config into the UI
func (d *SlideConfigDialog) loadCurrentConfig(config model.Config) {
	switch cfg := config.(type) {
	case model.WeatherConfig:
		d.showWindCheck.SetChecked(cfg.ShowWind)
	case model.CustomConfig:
		d.titleEntry.SetText(cfg.Title)
		d.urlEntry.SetText(cfg.URL)
	case model.YouTubeConfig:
		d.urlEntry.SetText(cfg.URL)
	case model.HomeAssistantConfig:
		d.titleEntry.SetText(cfg.Title)
		d.urlEntry.SetText(cfg.URL)
	default:
		log.Printf("Warning: no editor for %T config", config)
	}
}

// onSave validates the form and applies the new config
func (d *SlideConfigDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	switch d.kind {
	case model.SlideKindWeather:
		d.apply(model.WeatherConfig{ShowWind: d.showWindCheck.Checked})

	case model.SlideKindYouTube:
		rawURL := strings.TrimSpace(d.urlEntry.Text)
		if !media.IsYouTubeURL(rawURL) {
			d.showInvalidURL()
			return
		}
		// The slide keeps the pasted URL right away; video metadata
		// fills in when the resolver answers.
		d.apply(model.YouTubeConfig{URL: rawURL})
		go d.resolveYouTube(d.slideID, rawURL)

	case model.SlideKindCustom:
		webURL, err := normalizeWebURL(d.urlEntry.Text)
		if err != nil {
			d.showInvalidURL()
			return
		}
		d.apply(model.CustomConfig{URL: webURL, Title: strings.TrimSpace(d.titleEntry.Text)})

	case model.SlideKindHomeAssistant:
		webURL, err := normalizeWebURL(d.urlEntry.Text)
		if err != nil {
			d.showInvalidURL()
			return
		}
		d.apply(model.HomeAssistantConfig{URL: webURL, Title: strings.TrimSpace(d.titleEntry.Text)})
	}
}

// resolveYouTube fetches video metadata off the UI thread and re-applies
// the config once it is known
func (d *SlideConfigDialog) resolveYouTube(slideID, rawURL string) {
	embed, err := d.resolver.Resolve(context.Background(), rawURL)
	if err != nil {
		log.Printf("Failed to resolve YouTube URL: %v", err)
		return
	}
	fyne.Do(func() {
		d.applyTo(slideID, model.YouTubeConfig{
			URL:     rawURL,
			VideoID: embed.VideoID,
			Title:   embed.Title,
		})
	})
}

func (d *SlideConfigDialog) apply(config model.Config) {
	d.applyTo(d.slideID, config)
}

func (d *SlideConfigDialog) applyTo(slideID string, config model.Config) {
	if d.onApply == nil {
		log.Printf("Warning: onApply callback is nil for slide config")
		return
	}
	d.onApply(slideID, config)
}

func (d *SlideConfigDialog) showInvalidURL() {
	dialog.ShowInformation(d.localization.GetText(SlideKindKey(string(d.kind))), d.localization.GetText(KeyInvalidURL), d.window)
}

// normalizeWebURL accepts what a person types into a URL field: whitespace
// is trimmed and a missing scheme defaults to https
func normalizeWebURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("empty URL")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("URL %q has no host", trimmed)
	}
	return parsed.String(), nil
}
