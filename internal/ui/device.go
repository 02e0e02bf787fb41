package ui

import (
	"fyne.io/fyne/v2"
)

// DeviceProfile answers the coarse hardware questions the shell asks. The
// clock targets desktops; touch-only hardware loses hover, so some
// affordances switch to always-on.
type DeviceProfile struct{}

// NewDeviceProfile creates a profile for the current device
func NewDeviceProfile() *DeviceProfile {
	return &DeviceProfile{}
}

// IsMobile checks if the app is running on a mobile device
func (p *DeviceProfile) IsMobile() bool {
	return fyne.CurrentDevice().IsMobile()
}

// PreferFullscreen reports whether the window should run fullscreen
// regardless of the stored setting. Mobile surfaces have no window chrome
// to restore to.
func (p *DeviceProfile) PreferFullscreen() bool {
	return p.IsMobile()
}

// DotsAlwaysVisible reports whether the page dots should skip their hide
// timer. Hover cannot bring them back on touch-only hardware.
func (p *DeviceProfile) DotsAlwaysVisible() bool {
	return p.IsMobile()
}
