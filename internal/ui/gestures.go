package ui

import (
	"log"
	"math"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ndot/ndot-clock/internal/model"
)

// GestureState represents the controller state between pointer events
type GestureState int

const (
	GestureIdle GestureState = iota
	GesturePressed
	GestureDragNavigate
	GestureDragReorder
)

func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "idle"
	case GesturePressed:
		return "pressed"
	case GestureDragNavigate:
		return "drag-navigate"
	case GestureDragReorder:
		return "drag-reorder"
	default:
		return "unknown"
	}
}

// PressTarget tells the controller what the pointer landed on
type PressTarget int

const (
	PressSlideBody PressTarget = iota
	PressDragHandle
)

// Gesture tuning constants
const (
	DefaultLongPressDuration         = 2 * time.Second
	DefaultMoveThreshold     float32 = 8.0
	DefaultCommitFraction    float32 = 0.30
	DefaultFlingVelocity     float32 = 300.0

	velocitySampleCount = 5
)

// gestureTimer is the stoppable handle returned by the timer seam.
type gestureTimer interface {
	Stop() bool
}

// GestureCallbacks connects the controller to the deck view. The read
// callbacks (Mode through SlotWidth) are queried at event time and must be
// non-nil; the On* callbacks are optional and fire on the UI thread.
type GestureCallbacks struct {
	Mode          func() model.Mode
	FocusedIndex  func() int
	SlideCount    func() int
	ViewportWidth func() float32
	SlotWidth     func() float32

	OnDragMove         func(offset float32)
	OnNavigateCommit   func(target int, velocity float32)
	OnNavigateSnapBack func(velocity float32)

	OnToggleEditMode  func()
	OnOpenSlideConfig func(index int)

	OnReorderStart  func(index int)
	OnReorderStep   func(from, to int)
	OnReorderCommit func()
	OnReorderCancel func()
}

type velocitySample struct {
	at time.Time
	x  float32
}

// GestureController turns a stream of pointer events plus a long-press timer
// into navigation, edit-mode and reorder commands. All methods must be called
// from the UI thread; the long-press fire is marshalled onto it by the timer
// seam, so a stale fire is strictly ordered after the event that invalidated
// it and gets dropped by the generation check.
type GestureController struct {
	callbacks GestureCallbacks

	longPressDuration time.Duration
	moveThreshold     float32
	commitFraction    float32
	flingVelocity     float32

	state       GestureState
	origin      fyne.Position
	pressTarget PressTarget
	pressIndex  int
	moved       bool

	pressGen uint64
	timer    gestureTimer
	schedule func(time.Duration, func()) gestureTimer
	now      func() time.Time

	samples     [velocitySampleCount]velocitySample
	sampleCount int

	reorderFrom    int
	reorderCurrent int
}

// NewGestureController creates a controller with default thresholds.
func NewGestureController(callbacks GestureCallbacks) *GestureController {
	return &GestureController{
		callbacks:         callbacks,
		longPressDuration: DefaultLongPressDuration,
		moveThreshold:     DefaultMoveThreshold,
		commitFraction:    DefaultCommitFraction,
		flingVelocity:     DefaultFlingVelocity,
		schedule: func(d time.Duration, fire func()) gestureTimer {
			return time.AfterFunc(d, func() { fyne.Do(fire) })
		},
		now: time.Now,
	}
}

// State returns the current controller state.
func (c *GestureController) State() GestureState {
	return c.state
}

// SetLongPressDuration sets how long a press must hold to toggle edit mode.
func (c *GestureController) SetLongPressDuration(d time.Duration) {
	if d > 0 {
		c.longPressDuration = d
	}
}

// SetMoveThreshold sets how far the pointer may wander before a press
// becomes a drag.
func (c *GestureController) SetMoveThreshold(px float32) {
	if px > 0 {
		c.moveThreshold = px
	}
}

// SetCommitFraction sets the released-offset fraction of the viewport width
// at which navigation commits. The threshold is inclusive.
func (c *GestureController) SetCommitFraction(fraction float32) {
	if fraction > 0 && fraction <= 1 {
		c.commitFraction = fraction
	}
}

// SetFlingVelocity sets the release velocity that commits navigation even
// below the offset threshold.
func (c *GestureController) SetFlingVelocity(pxPerSecond float32) {
	if pxPerSecond > 0 {
		c.flingVelocity = pxPerSecond
	}
}

// PointerDown starts a gesture. The caller reports what was pressed so the
// controller can tell reorder drags from navigation and taps.
func (c *GestureController) PointerDown(pos fyne.Position, target PressTarget, slideIndex int) {
	if c.state != GestureIdle {
		log.Printf("gesture: pointer down during %s, ignoring", c.state)
		return
	}

	c.state = GesturePressed
	c.origin = pos
	c.pressTarget = target
	c.pressIndex = slideIndex
	c.moved = false
	c.resetSamples()
	c.recordSample(pos)

	c.pressGen++
	gen := c.pressGen
	c.timer = c.schedule(c.longPressDuration, func() { c.longPressFired(gen) })
}

// PointerMove updates an active gesture.
func (c *GestureController) PointerMove(pos fyne.Position) {
	switch c.state {
	case GestureIdle:
		log.Printf("gesture: move without active press, ignoring")
	case GesturePressed:
		c.recordSample(pos)
		if c.moved || !c.pastMoveThreshold(pos) {
			return
		}
		c.invalidateTimer()
		switch {
		case c.callbacks.Mode() == model.ModeEdit && c.pressTarget == PressDragHandle:
			c.beginReorder()
			c.updateReorder(pos)
		case c.callbacks.Mode() != model.ModeEdit:
			c.state = GestureDragNavigate
			c.emitDragMove(pos.X - c.origin.X)
		default:
			// Edit-mode press on a card body: neither navigation nor
			// reorder, the rest of the gesture is absorbed.
			c.moved = true
		}
	case GestureDragNavigate:
		c.recordSample(pos)
		c.emitDragMove(pos.X - c.origin.X)
	case GestureDragReorder:
		c.updateReorder(pos)
	}
}

// PointerUp finishes an active gesture.
func (c *GestureController) PointerUp(pos fyne.Position) {
	switch c.state {
	case GestureIdle:
		log.Printf("gesture: pointer up without active press, ignoring")
	case GesturePressed:
		c.invalidateTimer()
		wasMoved := c.moved
		target := c.pressTarget
		index := c.pressIndex
		c.reset()
		if wasMoved {
			return
		}
		if c.callbacks.Mode() == model.ModeEdit && target == PressSlideBody {
			c.emitOpenSlideConfig(index)
		}
	case GestureDragNavigate:
		c.recordSample(pos)
		offset := pos.X - c.origin.X
		velocity := c.velocity()
		c.reset()
		c.finishNavigate(offset, velocity)
	case GestureDragReorder:
		c.reset()
		c.emitReorderCommit()
	}
}

// PointerCancel aborts an active gesture. Loss of pointer capture is
// reported here too.
func (c *GestureController) PointerCancel() {
	switch c.state {
	case GestureIdle:
	case GesturePressed:
		c.invalidateTimer()
		c.reset()
	case GestureDragNavigate:
		c.reset()
		c.emitSnapBack(0)
	case GestureDragReorder:
		c.reset()
		c.emitReorderCancel()
	}
}

// longPressFired runs on the UI thread when the long-press timer elapses.
func (c *GestureController) longPressFired(gen uint64) {
	// A stale fire lost the race with its own invalidation.
	if gen != c.pressGen || c.state != GesturePressed {
		return
	}
	c.timer = nil
	c.reset()
	c.emitToggleEditMode()
}

// invalidateTimer advances the generation before stopping the timer so a
// fire already in flight is dropped by longPressFired.
func (c *GestureController) invalidateTimer() {
	c.pressGen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *GestureController) reset() {
	c.state = GestureIdle
	c.moved = false
}

func (c *GestureController) pastMoveThreshold(pos fyne.Position) bool {
	dx := pos.X - c.origin.X
	dy := pos.Y - c.origin.Y
	return dx*dx+dy*dy >= c.moveThreshold*c.moveThreshold
}

// finishNavigate decides between committing to the adjacent slide and
// snapping back. The offset threshold is inclusive; a fling commits only
// when it moves with the drag. There is no wraparound at either end.
func (c *GestureController) finishNavigate(offset, velocity float32) {
	direction := 0
	if offset < 0 {
		direction = 1
	} else if offset > 0 {
		direction = -1
	}

	target := c.callbacks.FocusedIndex() + direction
	if direction == 0 || target < 0 || target >= c.callbacks.SlideCount() {
		c.emitSnapBack(velocity)
		return
	}

	commitPoint := c.commitFraction * c.callbacks.ViewportWidth()
	flung := abs32(velocity) >= c.flingVelocity && sameSign(velocity, offset)
	if abs32(offset) >= commitPoint || flung {
		c.emitNavigateCommit(target, velocity)
		return
	}
	c.emitSnapBack(velocity)
}

func (c *GestureController) beginReorder() {
	c.state = GestureDragReorder
	c.reorderFrom = c.pressIndex
	c.reorderCurrent = c.pressIndex
	c.emitReorderStart(c.pressIndex)
}

// updateReorder swaps the dragged card with a sibling each time the drag
// crosses that sibling's midpoint. Crossings are emitted one adjacent step
// at a time so the model renumbers incrementally.
func (c *GestureController) updateReorder(pos fyne.Position) {
	slot := c.callbacks.SlotWidth()
	if slot <= 0 {
		return
	}

	dx := pos.X - c.origin.X
	target := c.reorderFrom + int(math.Round(float64(dx/slot)))
	target = clampIndex(target, c.callbacks.SlideCount())

	for c.reorderCurrent != target {
		next := c.reorderCurrent + 1
		if target < c.reorderCurrent {
			next = c.reorderCurrent - 1
		}
		c.emitReorderStep(c.reorderCurrent, next)
		c.reorderCurrent = next
	}
}

func (c *GestureController) resetSamples() {
	c.sampleCount = 0
}

func (c *GestureController) recordSample(pos fyne.Position) {
	c.samples[c.sampleCount%velocitySampleCount] = velocitySample{at: c.now(), x: pos.X}
	c.sampleCount++
}

// velocity estimates the horizontal release velocity in px/s over the last
// few samples.
func (c *GestureController) velocity() float32 {
	n := c.sampleCount
	if n < 2 {
		return 0
	}
	if n > velocitySampleCount {
		n = velocitySampleCount
	}
	newest := c.samples[(c.sampleCount-1)%velocitySampleCount]
	oldest := c.samples[(c.sampleCount-n)%velocitySampleCount]
	dt := newest.at.Sub(oldest.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return float32(float64(newest.x-oldest.x) / dt)
}

func (c *GestureController) emitDragMove(offset float32) {
	if c.callbacks.OnDragMove != nil {
		c.callbacks.OnDragMove(offset)
	}
}

func (c *GestureController) emitNavigateCommit(target int, velocity float32) {
	if c.callbacks.OnNavigateCommit != nil {
		c.callbacks.OnNavigateCommit(target, velocity)
	}
}

func (c *GestureController) emitSnapBack(velocity float32) {
	if c.callbacks.OnNavigateSnapBack != nil {
		c.callbacks.OnNavigateSnapBack(velocity)
	}
}

func (c *GestureController) emitToggleEditMode() {
	if c.callbacks.OnToggleEditMode != nil {
		c.callbacks.OnToggleEditMode()
	}
}

func (c *GestureController) emitOpenSlideConfig(index int) {
	if c.callbacks.OnOpenSlideConfig != nil {
		c.callbacks.OnOpenSlideConfig(index)
	}
}

func (c *GestureController) emitReorderStart(index int) {
	if c.callbacks.OnReorderStart != nil {
		c.callbacks.OnReorderStart(index)
	}
}

func (c *GestureController) emitReorderStep(from, to int) {
	if c.callbacks.OnReorderStep != nil {
		c.callbacks.OnReorderStep(from, to)
	}
}

func (c *GestureController) emitReorderCommit() {
	if c.callbacks.OnReorderCommit != nil {
		c.callbacks.OnReorderCommit()
	}
}

func (c *GestureController) emitReorderCancel() {
	if c.callbacks.OnReorderCancel != nil {
		c.callbacks.OnReorderCancel()
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sameSign(a, b float32) bool {
	return (a < 0 && b < 0) || (a > 0 && b > 0)
}

func clampIndex(i, count int) int {
	if i < 0 {
		return 0
	}
	if i > count-1 {
		return count - 1
	}
	return i
}
