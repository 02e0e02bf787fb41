package model

import "errors"

var (
	// ErrInvalidPosition means a slide position outside the valid range
	// was requested for an insert or reorder.
	ErrInvalidPosition = errors.New("invalid slide position")

	// ErrNotFound means no slide with the given ID exists in the deck.
	ErrNotFound = errors.New("slide not found")
)
