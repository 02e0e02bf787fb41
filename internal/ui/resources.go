package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "ndot-clock.png"
)

// LoadAppIcon loads the application icon from the working directory. The
// icon is optional; callers skip SetIcon when it is missing.
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
