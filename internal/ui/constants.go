package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconAdd        = "+"
	IconClose      = "×"
	IconDelete     = "🗑"
	IconDragHandle = "⠿"
	IconLink       = "🔗"
	IconWind       = "💨"
	IconPlay       = "▶"
	IconHome       = "🏠"
	IconClock      = "🕐"
	IconWeather    = "⛅"
)

// Text fragments
const (
	DashPlaceholder = "—"
	DegreeSuffix    = "°"
	WindSpeedFormat = "%.0f m/s"
)

// Dot-matrix geometry. The base values describe an 800x480 layout; the
// renderer scales them by the ratio of dot size to dot pitch.
const (
	DigitColumns = 3
	DigitRows    = 5

	BaseDotSize           float32 = 44
	BaseDotPitch          float32 = 50
	BaseInterDigitSpacing float32 = 60

	ColonBreathePeriod = 2 * time.Second
)

// Slide deck layout
const (
	PageDotRadius       float32 = 4
	PageDotSpacing      float32 = 18
	PageDotBottomMargin float32 = 24

	EditCardScale    float32 = 0.62
	EditCardGapShare float32 = 0.08

	MinTouchTargetSize float32 = 44
)

// Animation timing. Snap durations shrink with release velocity down to the
// minimum.
const (
	SnapAnimationBase = 280 * time.Millisecond
	SnapAnimationMin  = 90 * time.Millisecond
	DigitFadeDuration = 350 * time.Millisecond
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 80
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Timers driven by user inactivity. Zero disables them; the configured
// values arrive through the config package.
const (
	DefaultDotsHideDelay  = 10 * time.Second
	ClockRefreshInterval  = 250 * time.Millisecond
	WeatherStaleThreshold = 30 * time.Minute
)
