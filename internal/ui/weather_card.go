package ui

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ndot/ndot-clock/internal/weather"
)

const (
	weatherIconSize float32 = 56
	weatherTempSize float32 = 48
	timeOfDayFormat         = "15:04"
)

// WeatherCard shows the current conditions: glyph, temperature, textual
// description, optional wind line and the time of the last update. Without
// any report it shows the unavailable placeholder. All mutators must run on
// the UI thread.
type WeatherCard struct {
	widget.BaseWidget

	localization *Localization

	mu       sync.RWMutex
	report   *weather.Report
	showWind bool

	// UI components
	iconText     *canvas.Text
	tempText     *canvas.Text
	descLabel    *widget.Label
	windLabel    *widget.Label
	updatedLabel *widget.Label
}

// NewWeatherCard creates a weather card widget
func NewWeatherCard(localization *Localization, showWind bool) *WeatherCard {
	wc := &WeatherCard{
		localization: localization,
		showWind:     showWind,
	}
	wc.ExtendBaseWidget(wc)
	wc.createUI()
	wc.updateFromReport()
	return wc
}

// createUI creates the card components
func (wc *WeatherCard) createUI() {
	wc.iconText = canvas.NewText("", color.White)
	wc.iconText.TextSize = weatherIconSize
	wc.iconText.Alignment = fyne.TextAlignCenter

	wc.tempText = canvas.NewText("", color.White)
	wc.tempText.TextSize = weatherTempSize
	wc.tempText.TextStyle = fyne.TextStyle{Bold: true}
	wc.tempText.Alignment = fyne.TextAlignCenter

	wc.descLabel = widget.NewLabel("")
	wc.descLabel.Alignment = fyne.TextAlignCenter

	wc.windLabel = widget.NewLabel("")
	wc.windLabel.Alignment = fyne.TextAlignCenter

	wc.updatedLabel = widget.NewLabel("")
	wc.updatedLabel.Alignment = fyne.TextAlignCenter
	wc.updatedLabel.TextStyle = fyne.TextStyle{Italic: true}
}

// SetReport applies the latest poll result. A nil report keeps the
// placeholder; a stale report still renders with its update time so the
// user can tell how old the values are.
func (wc *WeatherCard) SetReport(report *weather.Report) {
	wc.mu.Lock()
	wc.report = report
	wc.mu.Unlock()
	wc.updateFromReport()
	wc.Refresh()
}

// SetShowWind toggles the wind speed line
func (wc *WeatherCard) SetShowWind(show bool) {
	wc.mu.Lock()
	wc.showWind = show
	wc.mu.Unlock()
	wc.updateFromReport()
	wc.Refresh()
}

// updateFromReport rewrites the card texts from the current report
func (wc *WeatherCard) updateFromReport() {
	wc.mu.RLock()
	report := wc.report
	showWind := wc.showWind
	wc.mu.RUnlock()

	if report == nil {
		wc.iconText.Text = DashPlaceholder
		wc.tempText.Text = DashPlaceholder
		wc.descLabel.SetText(wc.localization.GetText(KeyWeatherUnavailable))
		wc.windLabel.Hide()
		wc.updatedLabel.Hide()
		return
	}

	lang := wc.localization.GetCurrentLanguage()
	wc.iconText.Text = weather.Icon(report.Code, report.IsDay)
	wc.tempText.Text = fmt.Sprintf("%.0f%s", report.Temperature, DegreeSuffix)
	wc.descLabel.SetText(weather.Describe(report.Code, lang))

	if showWind {
		wc.windLabel.SetText(IconWind + " " + fmt.Sprintf(WindSpeedFormat, report.WindSpeed))
		wc.windLabel.Show()
	} else {
		wc.windLabel.Hide()
	}

	updated := report.FetchedAt.Local().Format(timeOfDayFormat)
	wc.updatedLabel.SetText(fmt.Sprintf(wc.localization.GetText(KeyUpdatedAt), updated))
	if report.Age() > WeatherStaleThreshold {
		wc.updatedLabel.Importance = widget.WarningImportance
	} else {
		wc.updatedLabel.Importance = widget.MediumImportance
	}
	wc.updatedLabel.Show()
}

// CreateRenderer creates the widget renderer
func (wc *WeatherCard) CreateRenderer() fyne.WidgetRenderer {
	return &weatherCardRenderer{card: wc}
}

// weatherCardRenderer renders the weather card
type weatherCardRenderer struct {
	card   *WeatherCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *weatherCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		r.layout.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *weatherCardRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(200, 160)
}

// Refresh refreshes the renderer
func (r *weatherCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.card.iconText.Refresh()
	r.card.tempText.Refresh()
	if r.layout != nil {
		r.layout.Refresh()
	}
}

// Objects returns the container objects
func (r *weatherCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *weatherCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *weatherCardRenderer) createLayout() {
	wc := r.card
	column := container.NewVBox(
		wc.iconText,
		wc.tempText,
		wc.descLabel,
		wc.windLabel,
		wc.updatedLabel,
	)
	r.layout = container.NewCenter(column)
}
