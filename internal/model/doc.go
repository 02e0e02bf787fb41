// Package model defines domain data structures used across the app: slides,
// their kind-specific configurations, and the deck that orders them. All
// types are in-memory only and confined to the UI thread; persistence and
// gesture interpretation live in other packages.
package model
