package ui

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ndot/ndot-clock/internal/model"
	"github.com/ndot/ndot-clock/internal/weather"
)

// DisplaySettingsDialog edits the global appearance settings: colors,
// brightness, time format, language and the weather location.
type DisplaySettingsDialog struct {
	localization *Localization
	window       fyne.Window
	geocoder     *weather.Geocoder
	cache        *weather.Cache
	current      func() model.DisplaySettings
	onApply      func(model.DisplaySettings)

	dialog *dialog.ConfirmDialog

	// UI components
	brightnessSlider *widget.Slider
	clockColorBtn    *widget.Button
	backgroundBtn    *widget.Button
	timeFormatCheck  *widget.Check
	secondsCheck     *widget.Check
	languageSelect   *widget.Select
	autoCheck        *widget.Check
	cityEntry        *widget.Entry
	searchBtn        *widget.Button
	resultsSelect    *widget.Select
	statusLabel      *widget.Label

	// Pending state collected while the dialog is open
	pendingClock      model.ColorRGB
	pendingBackground model.ColorRGB
	foundPlaces       []weather.Place
	chosenPlace       *weather.Place
	langCodes         []string
	langNames         []string
}

// NewDisplaySettingsDialog creates a new display settings dialog. The
// current callback supplies the settings snapshot loaded on Show; onApply
// receives the edited settings when the user saves.
func NewDisplaySettingsDialog(localization *Localization, window fyne.Window, geocoder *weather.Geocoder, cache *weather.Cache, current func() model.DisplaySettings, onApply func(model.DisplaySettings)) *DisplaySettingsDialog {
	return &DisplaySettingsDialog{
		localization: localization,
		window:       window,
		geocoder:     geocoder,
		cache:        cache,
		current:      current,
		onApply:      onApply,
	}
}

// Show displays the dialog. The UI is rebuilt on every Show so label texts
// follow the active language.
func (d *DisplaySettingsDialog) Show() {
	d.createUI()
	d.loadCurrentSettings()
	d.dialog.Show()
}

// createUI creates the display settings dialog UI
func (d *DisplaySettingsDialog) createUI() {
	// Brightness slider
	d.brightnessSlider = widget.NewSlider(model.MinBrightness, model.MaxBrightness)
	d.brightnessSlider.Step = 0.05

	// Color pickers open on button press; the button label shows the
	// pending color as hex
	d.clockColorBtn = widget.NewButton("", d.onPickClockColor)
	d.backgroundBtn = widget.NewButton("", d.onPickBackgroundColor)

	// Time format options
	d.timeFormatCheck = widget.NewCheck(d.localization.GetText(KeyTimeFormat24), nil)
	d.secondsCheck = widget.NewCheck(d.localization.GetText(KeyShowSeconds), nil)

	// Language selection by display name
	d.langCodes = d.langCodes[:0]
	for code := range d.localization.GetAvailableLanguages() {
		d.langCodes = append(d.langCodes, code)
	}
	sort.Strings(d.langCodes)
	d.langNames = make([]string, len(d.langCodes))
	for i, code := range d.langCodes {
		d.langNames[i] = d.localization.GetAvailableLanguages()[code]
	}
	d.languageSelect = widget.NewSelect(d.langNames, nil)

	// Weather location: automatic by IP, or a searched city
	d.autoCheck = widget.NewCheck(d.localization.GetText(KeyLocationAuto), d.onAutoLocationToggle)
	d.cityEntry = widget.NewEntry()
	d.cityEntry.SetPlaceHolder(d.localization.GetText(KeyCity))
	d.searchBtn = widget.NewButton(d.localization.GetText(KeySearch), d.onSearchCity)
	cityRow := container.NewBorder(nil, nil, nil, d.searchBtn, d.cityEntry)
	d.resultsSelect = widget.NewSelect(nil, d.onResultChosen)
	d.statusLabel = widget.NewLabel("")
	d.statusLabel.Importance = widget.WarningImportance
	d.statusLabel.Hide()

	// Create form
	form := container.NewVBox(
		widget.NewLabel(d.localization.GetText(KeyBrightness)),
		d.brightnessSlider,

		widget.NewLabel(d.localization.GetText(KeyClockColor)),
		d.clockColorBtn,

		widget.NewLabel(d.localization.GetText(KeyBackgroundColor)),
		d.backgroundBtn,

		d.timeFormatCheck,
		d.secondsCheck,

		widget.NewSeparator(),

		widget.NewLabel(d.localization.GetText(KeyLanguage)),
		d.languageSelect,

		widget.NewSeparator(),

		d.autoCheck,
		widget.NewLabel(d.localization.GetText(KeyCity)),
		cityRow,
		d.resultsSelect,
		d.statusLabel,
	)

	// Create dialog with buttons
	d.dialog = dialog.NewCustomConfirm(
		d.localization.GetText(KeyDisplaySettings),
		d.localization.GetText(KeySave),
		d.localization.GetText(KeyCancel),
		container.NewScroll(form),
		d.onSave,
		d.window,
	)

	d.dialog.Resize(fyne.NewSize(520, 560))
}

// loadCurrentSettings loads current settings into the UI
func (d *DisplaySettingsDialog) loadCurrentSettings() {
	settings := d.current()

	d.brightnessSlider.SetValue(settings.Brightness)

	d.pendingClock = settings.ClockColor
	d.pendingBackground = settings.BackgroundColor
	d.clockColorBtn.SetText(colorToHex(d.pendingClock))
	d.backgroundBtn.SetText(colorToHex(d.pendingBackground))

	d.timeFormatCheck.SetChecked(settings.TimeFormat24)
	d.secondsCheck.SetChecked(settings.ShowSeconds)

	for i, code := range d.langCodes {
		if code == settings.Language {
			d.languageSelect.SetSelected(d.langNames[i])
		}
	}

	d.foundPlaces = nil
	d.chosenPlace = nil
	d.resultsSelect.Options = nil
	d.resultsSelect.Selected = ""
	d.cityEntry.SetText(settings.Location.City)
	d.autoCheck.SetChecked(settings.Location.Auto)
	d.onAutoLocationToggle(settings.Location.Auto)
}

// onPickClockColor opens the color picker for the clock dots
func (d *DisplaySettingsDialog) onPickClockColor() {
	d.pickColor(d.localization.GetText(KeyClockColor), d.pendingClock, func(c model.ColorRGB) {
		d.pendingClock = c
		d.clockColorBtn.SetText(colorToHex(c))
	})
}

// onPickBackgroundColor opens the color picker for the background
func (d *DisplaySettingsDialog) onPickBackgroundColor() {
	d.pickColor(d.localization.GetText(KeyBackgroundColor), d.pendingBackground, func(c model.ColorRGB) {
		d.pendingBackground = c
		d.backgroundBtn.SetText(colorToHex(c))
	})
}

func (d *DisplaySettingsDialog) pickColor(title string, initial model.ColorRGB, chosen func(model.ColorRGB)) {
	picker := dialog.NewColorPicker(title, "", func(c color.Color) {
		chosen(colorFromPicker(c))
	}, d.window)
	picker.Advanced = true
	picker.SetColor(color.NRGBA{R: initial.R, G: initial.G, B: initial.B, A: 0xff})
	picker.Show()
}

// onAutoLocationToggle enables the manual city controls only when automatic
// location is off
func (d *DisplaySettingsDialog) onAutoLocationToggle(auto bool) {
	if auto {
		d.cityEntry.Disable()
		d.searchBtn.Disable()
		d.resultsSelect.Disable()
	} else {
		d.cityEntry.Enable()
		d.searchBtn.Enable()
		d.resultsSelect.Enable()
	}
}

// onSearchCity looks up the typed city name. Cached lookups answer
// immediately; fresh ones run off the UI thread.
func (d *DisplaySettingsDialog) onSearchCity() {
	query := strings.TrimSpace(d.cityEntry.Text)
	if query == "" {
		return
	}

	if d.cache != nil {
		if places, ok := d.cache.Places(query); ok {
			d.showPlaces(places)
			return
		}
	}

	go func() {
		places, err := d.geocoder.Search(context.Background(), query)
		if err != nil {
			log.Printf("Failed to search city %q: %v", query, err)
			fyne.Do(d.showSearchFailed)
			return
		}
		if d.cache != nil {
			if err := d.cache.SavePlaces(query, places); err != nil {
				log.Printf("Warning: failed to cache city search: %v", err)
			}
		}
		fyne.Do(func() {
			d.showPlaces(places)
		})
	}()
}

// showPlaces fills the result selector and preselects the best match
func (d *DisplaySettingsDialog) showPlaces(places []weather.Place) {
	if len(places) == 0 {
		d.showSearchFailed()
		return
	}

	d.statusLabel.Hide()
	d.foundPlaces = places
	names := make([]string, len(places))
	for i, place := range places {
		names[i] = place.Name
	}
	d.resultsSelect.Options = names
	d.resultsSelect.SetSelected(names[0])
}

func (d *DisplaySettingsDialog) showSearchFailed() {
	d.statusLabel.SetText(d.localization.GetText(KeySearchFailed))
	d.statusLabel.Show()
}

// onResultChosen remembers the picked place until the dialog is saved
func (d *DisplaySettingsDialog) onResultChosen(name string) {
	for i := range d.foundPlaces {
		if d.foundPlaces[i].Name == name {
			d.chosenPlace = &d.foundPlaces[i]
			return
		}
	}
}

// onSave handles saving the settings
func (d *DisplaySettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	next := d.current()
	next.Brightness = d.brightnessSlider.Value
	next.ClockColor = d.pendingClock
	next.BackgroundColor = d.pendingBackground
	next.TimeFormat24 = d.timeFormatCheck.Checked
	next.ShowSeconds = d.secondsCheck.Checked

	for i, name := range d.langNames {
		if name == d.languageSelect.Selected {
			next.Language = d.langCodes[i]
		}
	}

	// Location: automatic keeps whatever coordinates the IP lookup finds;
	// manual mode takes the searched place and otherwise leaves the
	// previous choice untouched.
	if d.autoCheck.Checked {
		next.Location.Auto = true
	} else if d.chosenPlace != nil {
		next.Location = model.Location{
			Latitude:  d.chosenPlace.Latitude,
			Longitude: d.chosenPlace.Longitude,
			City:      d.chosenPlace.Name,
			Auto:      false,
		}
	} else {
		next.Location.Auto = false
	}

	next.Normalize()

	if d.onApply == nil {
		log.Printf("Warning: onApply callback is nil for display settings")
		return
	}
	d.onApply(next)

	// Show confirmation
	dialog.ShowInformation(d.localization.GetText(KeyDisplaySettings), d.localization.GetText(KeySettingsSaved), d.window)
}

// colorToHex formats a color the way the picker buttons display it
func colorToHex(c model.ColorRGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// colorFromPicker converts a picker result to the persisted channel form
func colorFromPicker(c color.Color) model.ColorRGB {
	r, g, b, _ := c.RGBA()
	return model.ColorRGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}
