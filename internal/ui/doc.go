package ui

// Package ui contains the Fyne-based desktop user interface for the clock.
// It renders the slide deck (dot-matrix clock, weather, web embeds), routes
// pointer input through the gesture controller, and hosts the edit overlay
// and configuration dialogs. All UI strings are localized via Localization.
