package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// MatrixTheme is the always-dark theme behind the dot-matrix display. The
// clock is meant to run on an unattended screen, so backgrounds stay near
// black in both variants and controls keep large touch paddings.
type MatrixTheme struct{}

// NewMatrixTheme creates the clock theme
func NewMatrixTheme() fyne.Theme {
	return &MatrixTheme{}
}

// Color returns theme colors
func (t *MatrixTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 5, G: 5, B: 5, A: 255}
	case theme.ColorNameForeground:
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 214, G: 48, B: 49, A: 255} // NDot red accent
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 22, G: 22, B: 22, A: 255}
	case theme.ColorNameOverlayBackground:
		return color.RGBA{R: 12, G: 12, B: 12, A: 255}
	case theme.ColorNameMenuBackground:
		return color.RGBA{R: 12, G: 12, B: 12, A: 255}
	case theme.ColorNameDisabled:
		return color.RGBA{R: 110, G: 110, B: 110, A: 255}
	}

	// Force the dark variant so OS light mode cannot wash out the display.
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *MatrixTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *MatrixTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes tuned for touch targets
func (t *MatrixTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInnerPadding:
		return 10
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
