package ui

import (
	"fmt"
	"image/color"
	"math"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ndot/ndot-clock/internal/model"
)

// Maximum digit slots: HH MM SS plus the two colons between the pairs.
const (
	maxDigitSlots = 6
	maxColonCount = 2

	dotsPerDigit = DigitColumns * DigitRows

	// Fraction of the dot pitch separating the two colon dots from the
	// digit center line.
	colonDotOffset float32 = 0.85

	// Shrink factor applied after fitting the matrix into the available
	// area so the digits never touch the edges.
	matrixFitScale float32 = 0.8

	// Smallest usable dot pitch in pixels.
	minDotPitch float32 = 4

	// Floor for the colon brightness while it breathes.
	colonMinAlpha = 0.25

	dateTextSizeShare  float32 = 0.34
	dateTopMarginShare float32 = 0.55
)

// digitPatterns holds the 3x5 dot grid for each decimal digit, rows top to
// bottom.
var digitPatterns = [10][DigitRows][DigitColumns]uint8{
	{{1, 1, 1}, {1, 0, 1}, {1, 0, 1}, {1, 0, 1}, {1, 1, 1}}, // 0
	{{0, 1, 0}, {1, 1, 0}, {0, 1, 0}, {0, 1, 0}, {1, 1, 1}}, // 1
	{{1, 1, 1}, {0, 0, 1}, {1, 1, 1}, {1, 0, 0}, {1, 1, 1}}, // 2
	{{1, 1, 1}, {0, 0, 1}, {0, 1, 1}, {0, 0, 1}, {1, 1, 1}}, // 3
	{{1, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 0, 1}, {0, 0, 1}}, // 4
	{{1, 1, 1}, {1, 0, 0}, {1, 1, 1}, {0, 0, 1}, {1, 1, 1}}, // 5
	{{1, 1, 1}, {1, 0, 0}, {1, 1, 1}, {1, 0, 1}, {1, 1, 1}}, // 6
	{{1, 1, 1}, {0, 0, 1}, {0, 1, 0}, {0, 1, 0}, {0, 1, 0}}, // 7
	{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}, {1, 0, 1}, {1, 1, 1}}, // 8
	{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}, {0, 0, 1}, {1, 1, 1}}, // 9
}

// ClockFace renders the current time as a dot-matrix display with a date
// line underneath. Appearance follows the display settings; a background
// ticker keeps it current.
type ClockFace struct {
	widget.BaseWidget

	mu           sync.RWMutex
	display      model.DisplaySettings
	localization *Localization
	now          func() time.Time

	// Last rendered digit values and when each one changed, for the
	// fade-in of freshly flipped digits.
	digitValues  [maxDigitSlots]int
	digitChanged [maxDigitSlots]time.Time

	stopTicker chan struct{}
	tickerOnce sync.Once
}

// NewClockFace creates the dot-matrix clock widget
func NewClockFace(localization *Localization, display model.DisplaySettings) *ClockFace {
	cf := &ClockFace{
		display:      display,
		localization: localization,
		now:          time.Now,
		stopTicker:   make(chan struct{}),
	}
	for i := range cf.digitValues {
		cf.digitValues[i] = -1
	}
	cf.ExtendBaseWidget(cf)
	return cf
}

// SetDisplaySettings applies new appearance settings and repaints
func (cf *ClockFace) SetDisplaySettings(display model.DisplaySettings) {
	cf.mu.Lock()
	cf.display = display
	cf.mu.Unlock()
	cf.Refresh()
}

// DisplaySettings returns the settings currently rendered
func (cf *ClockFace) DisplaySettings() model.DisplaySettings {
	cf.mu.RLock()
	defer cf.mu.RUnlock()
	return cf.display
}

// Start launches the refresh ticker. Safe to call once; Stop ends it.
func (cf *ClockFace) Start() {
	go func() {
		ticker := time.NewTicker(ClockRefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(cf.Refresh)
			case <-cf.stopTicker:
				return
			}
		}
	}()
}

// Stop ends the refresh ticker
func (cf *ClockFace) Stop() {
	cf.tickerOnce.Do(func() {
		close(cf.stopTicker)
	})
}

// digitString returns the digits to render, without separators
func (cf *ClockFace) digitString(t time.Time) string {
	cf.mu.RLock()
	display := cf.display
	cf.mu.RUnlock()

	hour := t.Hour()
	if !display.TimeFormat24 {
		hour = hour % 12
		if hour == 0 {
			hour = 12
		}
	}

	if display.ShowSeconds {
		return fmt.Sprintf("%02d%02d%02d", hour, t.Minute(), t.Second())
	}
	return fmt.Sprintf("%02d%02d", hour, t.Minute())
}

// CreateRenderer creates the widget renderer
func (cf *ClockFace) CreateRenderer() fyne.WidgetRenderer {
	r := &clockFaceRenderer{face: cf}
	r.createObjects()
	return r
}

// clockFaceRenderer renders the dot matrix and the date line
type clockFaceRenderer struct {
	face *ClockFace

	digitDots [maxDigitSlots][dotsPerDigit]*canvas.Circle
	colonDots [maxColonCount * 2]*canvas.Circle
	dateText  *canvas.Text

	layoutDigits int
	objects      []fyne.CanvasObject
}

// clockMetrics holds the resolved dot geometry for one layout pass
type clockMetrics struct {
	pitch      float32
	dotSize    float32
	interGap   float32
	colonGap   float32
	digitX     [maxDigitSlots]float32
	colonX     [maxColonCount]float32
	digitCount int
	colonCount int
	top        float32
	centerY    float32
	height     float32
}

func (r *clockFaceRenderer) createObjects() {
	r.objects = make([]fyne.CanvasObject, 0, maxDigitSlots*dotsPerDigit+len(r.colonDots)+1)
	for slot := 0; slot < maxDigitSlots; slot++ {
		for i := 0; i < dotsPerDigit; i++ {
			dot := canvas.NewCircle(color.Transparent)
			dot.Hide()
			r.digitDots[slot][i] = dot
			r.objects = append(r.objects, dot)
		}
	}
	for i := range r.colonDots {
		dot := canvas.NewCircle(color.Transparent)
		dot.Hide()
		r.colonDots[i] = dot
		r.objects = append(r.objects, dot)
	}
	r.dateText = canvas.NewText("", color.White)
	r.dateText.Alignment = fyne.TextAlignCenter
	r.objects = append(r.objects, r.dateText)
}

// metrics fits the digit matrix into the given size following the base
// 800x480 proportions
func (r *clockFaceRenderer) metrics(size fyne.Size) clockMetrics {
	display := r.face.DisplaySettings()

	m := clockMetrics{digitCount: 4, colonCount: 1}
	if display.ShowSeconds {
		m.digitCount = 6
		m.colonCount = 2
	}

	ratioDot := BaseDotSize / BaseDotPitch
	ratioInter := BaseInterDigitSpacing / BaseDotPitch
	ratioColon := ratioInter + 0.5
	if alt := ratioInter * 1.7; alt > ratioColon {
		ratioColon = alt
	}

	digitUnits := 2 + ratioDot
	interGaps := float32(m.digitCount - 1 - m.colonCount)
	unitsW := float32(m.digitCount)*digitUnits + interGaps*ratioInter + float32(m.colonCount)*ratioColon
	unitsH := 4 + ratioDot

	pitch := size.Width / unitsW
	if byHeight := size.Height / (unitsH * 2); byHeight < pitch {
		// Leave the lower half of the slide for the date line and air.
		pitch = byHeight
	}
	pitch *= matrixFitScale
	if pitch < minDotPitch {
		pitch = minDotPitch
	}

	m.pitch = pitch
	m.dotSize = ratioDot * pitch
	m.interGap = ratioInter * pitch
	m.colonGap = ratioColon * pitch
	m.height = 4*pitch + m.dotSize

	totalW := unitsW * pitch
	x := (size.Width - totalW) / 2
	m.top = (size.Height - m.height) / 2.6
	if m.top < 0 {
		m.top = 0
	}
	m.centerY = m.top + m.height/2

	colon := 0
	for slot := 0; slot < m.digitCount; slot++ {
		m.digitX[slot] = x
		x += digitUnits * pitch
		// A colon separates the pairs, a plain gap the digits inside one.
		if slot == m.digitCount-1 {
			break
		}
		if slot%2 == 1 {
			m.colonX[colon] = x + m.colonGap/2
			colon++
			x += m.colonGap
		} else {
			x += m.interGap
		}
	}
	return m
}

// Layout arranges the dots and the date line
func (r *clockFaceRenderer) Layout(size fyne.Size) {
	m := r.metrics(size)
	r.layoutDigits = m.digitCount

	for slot := 0; slot < maxDigitSlots; slot++ {
		for row := 0; row < DigitRows; row++ {
			for col := 0; col < DigitColumns; col++ {
				dot := r.digitDots[slot][row*DigitColumns+col]
				if slot >= m.digitCount {
					dot.Hide()
					continue
				}
				dot.Resize(fyne.NewSize(m.dotSize, m.dotSize))
				dot.Move(fyne.NewPos(
					m.digitX[slot]+float32(col)*m.pitch,
					m.top+float32(row)*m.pitch,
				))
			}
		}
	}

	for colon := 0; colon < maxColonCount; colon++ {
		upper := r.colonDots[colon*2]
		lower := r.colonDots[colon*2+1]
		if colon >= m.colonCount {
			upper.Hide()
			lower.Hide()
			continue
		}
		upper.Resize(fyne.NewSize(m.dotSize, m.dotSize))
		lower.Resize(fyne.NewSize(m.dotSize, m.dotSize))
		cx := m.colonX[colon] - m.dotSize/2
		upper.Move(fyne.NewPos(cx, m.centerY-colonDotOffset*m.pitch-m.dotSize/2))
		lower.Move(fyne.NewPos(cx, m.centerY+colonDotOffset*m.pitch-m.dotSize/2))
	}

	r.dateText.TextSize = m.pitch * 2 * dateTextSizeShare
	if r.dateText.TextSize < 10 {
		r.dateText.TextSize = 10
	}
	dateY := m.top + m.height + m.pitch*2*dateTopMarginShare
	r.dateText.Resize(fyne.NewSize(size.Width, r.dateText.MinSize().Height))
	r.dateText.Move(fyne.NewPos(0, dateY))
}

// MinSize returns the smallest usable clock area
func (r *clockFaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 120)
}

// Refresh repaints dots for the current time and settings
func (r *clockFaceRenderer) Refresh() {
	cf := r.face
	now := cf.now()
	digits := cf.digitString(now)

	// Toggling seconds changes the dot geometry without a resize.
	if len(digits) != r.layoutDigits {
		r.Layout(cf.Size())
	}

	cf.mu.Lock()
	display := cf.display
	for slot := 0; slot < len(digits); slot++ {
		value := int(digits[slot] - '0')
		if cf.digitValues[slot] != value {
			cf.digitValues[slot] = value
			cf.digitChanged[slot] = now
		}
	}
	changed := cf.digitChanged
	values := cf.digitValues
	cf.mu.Unlock()

	scaled := display.ClockColor.Scaled(display.Brightness)
	dotColor := color.NRGBA{R: scaled.R, G: scaled.G, B: scaled.B, A: 255}

	digitCount := len(digits)
	for slot := 0; slot < maxDigitSlots; slot++ {
		if slot >= digitCount {
			for _, dot := range r.digitDots[slot] {
				dot.Hide()
			}
			continue
		}
		pattern := digitPatterns[values[slot]]
		alpha := fadeAlpha(now.Sub(changed[slot]))
		fill := withAlpha(dotColor, alpha)
		for row := 0; row < DigitRows; row++ {
			for col := 0; col < DigitColumns; col++ {
				dot := r.digitDots[slot][row*DigitColumns+col]
				if pattern[row][col] == 1 {
					dot.FillColor = fill
					dot.Show()
				} else {
					dot.Hide()
				}
				dot.Refresh()
			}
		}
	}

	colonCount := 1
	if digitCount == 6 {
		colonCount = 2
	}
	colonFill := withAlpha(dotColor, colonAlpha(now))
	for colon := 0; colon < maxColonCount; colon++ {
		for _, dot := range []*canvas.Circle{r.colonDots[colon*2], r.colonDots[colon*2+1]} {
			if colon >= colonCount {
				dot.Hide()
			} else {
				dot.FillColor = colonFill
				dot.Show()
			}
			dot.Refresh()
		}
	}

	r.dateText.Text = cf.localization.FormatDate(now)
	r.dateText.Color = dotColor
	r.dateText.Refresh()
}

// Objects returns the rendered objects
func (r *clockFaceRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *clockFaceRenderer) Destroy() {}

// fadeAlpha ramps a freshly changed digit from transparent to opaque over
// the fade duration
func fadeAlpha(since time.Duration) float64 {
	if since >= DigitFadeDuration {
		return 1
	}
	if since < 0 {
		return 1
	}
	return float64(since) / float64(DigitFadeDuration)
}

// colonAlpha breathes the colon dots with a smooth cosine cycle
func colonAlpha(now time.Time) float64 {
	phase := float64(now.UnixNano()%int64(ColonBreathePeriod)) / float64(ColonBreathePeriod)
	wave := 0.5 * (1 - math.Cos(2*math.Pi*phase))
	return colonMinAlpha + (1-colonMinAlpha)*wave
}

// withAlpha scales the color's alpha channel
func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha * 255)
	return c
}
