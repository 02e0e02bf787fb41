package model

import (
	"fmt"
	"sort"
)

// Mode represents the deck interaction mode
type Mode string

const (
	// ModeViewing means a slide is shown and gestures navigate
	ModeViewing Mode = "viewing"

	// ModeTransitioning means an animated move between two slides is in
	// progress, driven by a drag or a snap animation
	ModeTransitioning Mode = "transitioning"

	// ModeEdit means the edit overlay is active: cards are scaled down and
	// can be added, removed, reordered, and configured
	ModeEdit Mode = "edit"
)

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// Transition describes an in-flight navigation between two slide indexes.
// From == To models a boundary drag that can only snap back.
type Transition struct {
	From     int
	To       int
	Progress float64 // fraction in [0, 1]
}

// Deck is the full ordered set of slides plus focus and mode state. It has
// a single owner (the application shell) and is mutated only on the UI
// thread; it performs no I/O. Positions of the contained slides always form
// a contiguous zero-based ordering.
type Deck struct {
	Slides       []*Slide   `json:"slides"`
	FocusedIndex int        `json:"focused_index"`
	Mode         Mode       `json:"-"`
	Transition   Transition `json:"-"`
}

// NewDeck creates a deck over the given slides, repairing positions into a
// contiguous ordering and focusing the first slide
func NewDeck(slides ...*Slide) *Deck {
	d := &Deck{
		Slides: append([]*Slide(nil), slides...),
		Mode:   ModeViewing,
	}
	d.Normalize()
	return d
}

// DefaultDeck returns the first-run deck: a single clock slide
func DefaultDeck() *Deck {
	clock, _ := NewSlide(SlideKindClock, nil) // cannot fail for a known kind
	return NewDeck(clock)
}

// Len returns the number of slides
func (d *Deck) Len() int {
	return len(d.Slides)
}

// Focused returns the focused slide, or nil for an empty deck
func (d *Deck) Focused() *Slide {
	if len(d.Slides) == 0 {
		return nil
	}
	return d.Slides[d.FocusedIndex]
}

// Get returns the slide with the given ID
func (d *Deck) Get(id string) (*Slide, error) {
	i := d.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return d.Slides[i], nil
}

// All returns an ordered snapshot of the slides. The returned values are
// copies; mutating them does not affect the deck.
func (d *Deck) All() []Slide {
	out := make([]Slide, len(d.Slides))
	for i, s := range d.Slides {
		out[i] = *s
	}
	return out
}

// Clone returns a deep copy safe to hand to another goroutine. Mode and
// transition state are runtime-only and not carried over.
func (d *Deck) Clone() *Deck {
	slides := make([]*Slide, len(d.Slides))
	for i, s := range d.Slides {
		c := *s
		slides[i] = &c
	}
	return &Deck{
		Slides:       slides,
		FocusedIndex: d.FocusedIndex,
		Mode:         ModeViewing,
	}
}

// Insert creates a new slide of the given kind and places it at the given
// position, shifting subsequent slides. Valid positions are [0, Len()].
// A nil config yields the kind's default configuration. Inserting at or
// before the focused slide keeps focus on the same slide.
func (d *Deck) Insert(kind SlideKind, config Config, at int) (*Slide, error) {
	if at < 0 || at > len(d.Slides) {
		return nil, fmt.Errorf("insert at %d with %d slides: %w", at, len(d.Slides), ErrInvalidPosition)
	}
	s, err := NewSlide(kind, config)
	if err != nil {
		return nil, err
	}

	wasEmpty := len(d.Slides) == 0
	d.Slides = append(d.Slides, nil)
	copy(d.Slides[at+1:], d.Slides[at:])
	d.Slides[at] = s
	d.renumber()

	if wasEmpty {
		d.FocusedIndex = 0
	} else if at <= d.FocusedIndex {
		d.FocusedIndex++
	}
	return s, nil
}

// Remove deletes the slide with the given ID and renumbers the remaining
// positions contiguously. If the removed slide was focused, focus moves to
// min(focusedIndex, Len()-1); otherwise focus stays on the same slide.
func (d *Deck) Remove(id string) error {
	i := d.indexOf(id)
	if i < 0 {
		return fmt.Errorf("remove %q: %w", id, ErrNotFound)
	}

	wasFocused := i == d.FocusedIndex
	d.Slides = append(d.Slides[:i], d.Slides[i+1:]...)
	d.renumber()

	switch {
	case len(d.Slides) == 0:
		d.FocusedIndex = 0
	case wasFocused:
		if d.FocusedIndex > len(d.Slides)-1 {
			d.FocusedIndex = len(d.Slides) - 1
		}
	case i < d.FocusedIndex:
		d.FocusedIndex--
	}
	return nil
}

// Reorder moves the slide with the given ID to the target position and
// renumbers all positions contiguously. Valid targets are [0, Len()-1].
// Focus follows the slide it was on before the move. Reordering to the
// slide's current position is a no-op, so immediate re-application with the
// same target yields an identical ordering.
func (d *Deck) Reorder(id string, to int) error {
	i := d.indexOf(id)
	if i < 0 {
		return fmt.Errorf("reorder %q: %w", id, ErrNotFound)
	}
	if to < 0 || to >= len(d.Slides) {
		return fmt.Errorf("reorder to %d with %d slides: %w", to, len(d.Slides), ErrInvalidPosition)
	}
	if i == to {
		return nil
	}

	var focusedID string
	if f := d.Focused(); f != nil {
		focusedID = f.ID
	}

	s := d.Slides[i]
	d.Slides = append(d.Slides[:i], d.Slides[i+1:]...)
	d.Slides = append(d.Slides, nil)
	copy(d.Slides[to+1:], d.Slides[to:])
	d.Slides[to] = s
	d.renumber()

	if focusedID != "" {
		if fi := d.indexOf(focusedID); fi >= 0 {
			d.FocusedIndex = fi
		}
	}
	return nil
}

// SetFocused moves focus to the given index
func (d *Deck) SetFocused(i int) error {
	if i < 0 || i >= len(d.Slides) {
		return fmt.Errorf("focus %d with %d slides: %w", i, len(d.Slides), ErrInvalidPosition)
	}
	d.FocusedIndex = i
	return nil
}

// BeginTransition enters ModeTransitioning from the focused slide toward
// the given index. The destination must be valid; callers clamp boundary
// drags to From == To.
func (d *Deck) BeginTransition(to int) error {
	if to < 0 || to >= len(d.Slides) {
		return fmt.Errorf("transition to %d with %d slides: %w", to, len(d.Slides), ErrInvalidPosition)
	}
	d.Mode = ModeTransitioning
	d.Transition = Transition{From: d.FocusedIndex, To: to}
	return nil
}

// SetTransitionProgress updates the progress fraction, clamped to [0, 1]
func (d *Deck) SetTransitionProgress(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	d.Transition.Progress = p
}

// EndTransition leaves ModeTransitioning. With commit true focus moves to
// the transition destination; otherwise it stays on the source.
func (d *Deck) EndTransition(commit bool) {
	if commit && d.Transition.To >= 0 && d.Transition.To < len(d.Slides) {
		d.FocusedIndex = d.Transition.To
	}
	d.Mode = ModeViewing
	d.Transition = Transition{}
}

// Normalize repairs the deck after load: slides are sorted by their stored
// position, positions are renumbered contiguously from zero, and the
// focused index is clamped to the valid range.
func (d *Deck) Normalize() {
	sort.SliceStable(d.Slides, func(i, j int) bool {
		return d.Slides[i].Position < d.Slides[j].Position
	})
	d.renumber()
	if d.FocusedIndex < 0 {
		d.FocusedIndex = 0
	}
	if len(d.Slides) > 0 && d.FocusedIndex > len(d.Slides)-1 {
		d.FocusedIndex = len(d.Slides) - 1
	}
	if d.Mode == "" {
		d.Mode = ModeViewing
	}
}

// indexOf returns the index of the slide with the given ID, or -1
func (d *Deck) indexOf(id string) int {
	for i, s := range d.Slides {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// renumber rewrites positions to match slice order
func (d *Deck) renumber() {
	for i, s := range d.Slides {
		s.Position = i
	}
}
