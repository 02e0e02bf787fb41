package ui

import (
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ndot/ndot-clock/internal/model"
)

// Drags toward a missing neighbor move the content at a fraction of the
// pointer distance.
const boundaryDragResistance float32 = 0.35

const pageDotInactiveAlpha = 80

// SlideFactory builds the content widget for a slide. The deck view caches
// the result per slide ID until ForgetSlide is called.
type SlideFactory func(slide *model.Slide) fyne.CanvasObject

// stoppable lets cached slide content end its background work when the
// slide is evicted.
type stoppable interface {
	Stop()
}

// displayAware lets cached slide content follow appearance changes.
type displayAware interface {
	SetDisplaySettings(display model.DisplaySettings)
}

// DeckView renders the focused slide, its neighbors while a navigation is
// in flight, and the page dots. Raw pointer events are forwarded to the
// gesture controller; the resulting commands come back through SetDragOffset
// and the two Animate methods. All methods run on the UI thread.
type DeckView struct {
	widget.BaseWidget

	deck       *model.Deck
	factory    SlideFactory
	controller *GestureController

	display model.DisplaySettings

	dragOffset float32
	anim       *fyne.Animation
	animDone   func()

	built    map[string]fyne.CanvasObject
	stripIDs []string

	pressed   bool
	lastPoint fyne.Position

	onActivity func()

	dotsVisible   bool
	dotsHideDelay time.Duration
	dotsTimer     *time.Timer
}

// NewDeckView creates the deck view over the given deck
func NewDeckView(deck *model.Deck, factory SlideFactory) *DeckView {
	dv := &DeckView{
		deck:          deck,
		factory:       factory,
		display:       model.DefaultDisplaySettings(),
		built:         make(map[string]fyne.CanvasObject),
		dotsVisible:   true,
		dotsHideDelay: DefaultDotsHideDelay,
	}
	dv.ExtendBaseWidget(dv)
	return dv
}

// SetController sets the gesture controller receiving the pointer stream
func (dv *DeckView) SetController(controller *GestureController) {
	if controller == nil {
		log.Printf("Warning: SetController called with nil controller")
	}
	dv.controller = controller
}

// SetOnActivity sets a hook invoked on every pointer event, used for the
// inactivity timers
func (dv *DeckView) SetOnActivity(onActivity func()) {
	dv.onActivity = onActivity
}

// SetDotsHideDelay sets how long the page dots stay visible after the last
// interaction. Zero keeps them always visible.
func (dv *DeckView) SetDotsHideDelay(delay time.Duration) {
	dv.dotsHideDelay = delay
	dv.noteActivity()
}

// SetDisplaySettings applies background and dot colors, and pushes the
// settings into every built slide that follows them
func (dv *DeckView) SetDisplaySettings(display model.DisplaySettings) {
	dv.display = display
	for _, built := range dv.built {
		if aware, ok := built.(displayAware); ok {
			aware.SetDisplaySettings(display)
		}
	}
	dv.Refresh()
}

// ViewportWidth returns the width one slide occupies
func (dv *DeckView) ViewportWidth() float32 {
	return dv.Size().Width
}

// DragOffset returns the current horizontal content offset
func (dv *DeckView) DragOffset() float32 {
	return dv.dragOffset
}

// SetDragOffset moves the slide strip while a navigation drag is active
func (dv *DeckView) SetDragOffset(offset float32) {
	dv.dragOffset = offset
	dv.Refresh()
}

// AnimateCommit slides the strip fully toward the target slide and settles
// focus there. Faster releases get shorter animations.
func (dv *DeckView) AnimateCommit(target int, velocity float32) {
	if dv.deck.Mode != model.ModeTransitioning || dv.deck.Transition.To != target {
		if err := dv.deck.BeginTransition(target); err != nil {
			log.Printf("Failed to begin transition: %v", err)
			dv.AnimateSnapBack(velocity)
			return
		}
	}
	width := dv.ViewportWidth()
	end := -width
	if target < dv.deck.FocusedIndex {
		end = width
	}
	dv.animateOffset(end, velocity, func() {
		dv.deck.EndTransition(true)
		dv.dragOffset = 0
		dv.Refresh()
	})
}

// AnimateSnapBack returns the strip to the focused slide
func (dv *DeckView) AnimateSnapBack(velocity float32) {
	dv.animateOffset(0, velocity, func() {
		dv.deck.EndTransition(false)
		dv.dragOffset = 0
		dv.Refresh()
	})
}

// animateOffset runs an ease-out animation from the current offset to end,
// then finalizes
func (dv *DeckView) animateOffset(end, velocity float32, done func()) {
	dv.stopAnimation()
	start := dv.dragOffset
	if start == end {
		done()
		return
	}
	duration := snapDuration(end-start, velocity)
	dv.animDone = done
	anim := fyne.NewAnimation(duration, func(p float32) {
		dv.dragOffset = start + (end-start)*p
		dv.Refresh()
		if p >= 1 {
			dv.finishAnimation()
		}
	})
	anim.Curve = fyne.AnimationEaseOut
	dv.anim = anim
	anim.Start()
}

// finishAnimation jumps an in-flight snap to its end state, exactly once.
// Interrupting a commit this way still lands on the target slide.
func (dv *DeckView) finishAnimation() {
	if dv.anim != nil {
		dv.anim.Stop()
		dv.anim = nil
	}
	if dv.animDone != nil {
		done := dv.animDone
		dv.animDone = nil
		done()
	}
}

// stopAnimation settles the deck before a new gesture or shutdown
func (dv *DeckView) stopAnimation() {
	dv.finishAnimation()
}

// snapDuration scales the base animation time down for fast releases
func snapDuration(distance, velocity float32) time.Duration {
	duration := SnapAnimationBase
	if v := abs32(velocity); v > 0 {
		travel := time.Duration(float64(abs32(distance)/v) * float64(time.Second))
		if travel < duration {
			duration = travel
		}
	}
	if duration < SnapAnimationMin {
		duration = SnapAnimationMin
	}
	return duration
}

// ForgetSlide drops the cached content widget for a slide, stopping its
// background work
func (dv *DeckView) ForgetSlide(id string) {
	if built, ok := dv.built[id]; ok {
		if s, ok := built.(stoppable); ok {
			s.Stop()
		}
		delete(dv.built, id)
	}
}

// Stop ends the dots timer, any animation and all cached slide content
func (dv *DeckView) Stop() {
	dv.stopAnimation()
	if dv.dotsTimer != nil {
		dv.dotsTimer.Stop()
	}
	for id := range dv.built {
		dv.ForgetSlide(id)
	}
}

// contentFor returns the cached or freshly built widget for a slide
func (dv *DeckView) contentFor(slide *model.Slide) fyne.CanvasObject {
	if built, ok := dv.built[slide.ID]; ok {
		return built
	}
	built := dv.factory(slide)
	if built == nil {
		log.Printf("Warning: slide factory returned nil for %s slide %s", slide.Kind, slide.ID)
		built = widget.NewLabel(DashPlaceholder)
	}
	dv.built[slide.ID] = built
	return built
}

// noteActivity shows the page dots and restarts the hide countdown
func (dv *DeckView) noteActivity() {
	if dv.onActivity != nil {
		dv.onActivity()
	}
	if !dv.dotsVisible {
		dv.dotsVisible = true
		dv.Refresh()
	}
	if dv.dotsTimer != nil {
		dv.dotsTimer.Stop()
		dv.dotsTimer = nil
	}
	if dv.dotsHideDelay <= 0 {
		return
	}
	dv.dotsTimer = time.AfterFunc(dv.dotsHideDelay, func() {
		fyne.Do(func() {
			dv.dotsVisible = false
			dv.Refresh()
		})
	})
}

// forwardDown starts a pointer sequence. The edit overlay owns edit-mode
// gestures; presses that fall through to the strip are ignored.
func (dv *DeckView) forwardDown(pos fyne.Position) {
	if dv.deck.Mode == model.ModeEdit {
		return
	}
	dv.stopAnimation()
	dv.noteActivity()
	dv.pressed = true
	dv.lastPoint = pos
	if dv.controller != nil {
		dv.controller.PointerDown(pos, PressSlideBody, dv.deck.FocusedIndex)
	}
}

// forwardMove continues a pointer sequence
func (dv *DeckView) forwardMove(pos fyne.Position) {
	if !dv.pressed {
		return
	}
	dv.lastPoint = pos
	if dv.controller != nil {
		dv.controller.PointerMove(pos)
	}
}

// forwardUp ends a pointer sequence exactly once; the desktop driver can
// deliver both a mouse-up and a drag-end for the same release
func (dv *DeckView) forwardUp(pos fyne.Position) {
	if !dv.pressed {
		return
	}
	dv.pressed = false
	dv.noteActivity()
	if dv.controller != nil {
		dv.controller.PointerUp(pos)
	}
}

// forwardCancel aborts a pointer sequence
func (dv *DeckView) forwardCancel() {
	if !dv.pressed {
		return
	}
	dv.pressed = false
	if dv.controller != nil {
		dv.controller.PointerCancel()
	}
}

// MouseDown starts a gesture from a desktop pointer press
func (dv *DeckView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	dv.forwardDown(ev.Position)
}

// MouseUp ends a desktop pointer press
func (dv *DeckView) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	dv.forwardUp(ev.Position)
}

// Dragged continues a gesture while the pointer moves
func (dv *DeckView) Dragged(ev *fyne.DragEvent) {
	dv.forwardMove(ev.Position)
}

// DragEnd ends a gesture when the release happens outside the widget and
// no mouse-up reaches it
func (dv *DeckView) DragEnd() {
	dv.forwardUp(dv.lastPoint)
}

// TouchDown starts a gesture from a touch press
func (dv *DeckView) TouchDown(ev *mobile.TouchEvent) {
	dv.forwardDown(ev.Position)
}

// TouchUp ends a touch gesture
func (dv *DeckView) TouchUp(ev *mobile.TouchEvent) {
	dv.forwardUp(ev.Position)
}

// TouchCancel aborts a touch gesture, snapping any drag back
func (dv *DeckView) TouchCancel(ev *mobile.TouchEvent) {
	dv.forwardCancel()
}

// CreateRenderer creates the widget renderer
func (dv *DeckView) CreateRenderer() fyne.WidgetRenderer {
	r := &deckViewRenderer{view: dv}
	r.background = canvas.NewRectangle(color.Black)
	r.strip = container.NewWithoutLayout()
	r.dots = container.NewWithoutLayout()
	return r
}

// deckViewRenderer renders the background, the slide strip and the dots
type deckViewRenderer struct {
	view *DeckView

	background *canvas.Rectangle
	strip      *fyne.Container
	dots       *fyne.Container
	dotShapes  []*canvas.Circle
}

// stripTrio returns the slide indexes attached to the strip: the focused
// slide and the neighbors that exist
func (r *deckViewRenderer) stripTrio() []int {
	deck := r.view.deck
	trio := make([]int, 0, 3)
	for _, i := range []int{deck.FocusedIndex - 1, deck.FocusedIndex, deck.FocusedIndex + 1} {
		if i >= 0 && i < deck.Len() {
			trio = append(trio, i)
		}
	}
	return trio
}

// rebuildStrip swaps the strip children when focus or deck content changed
func (r *deckViewRenderer) rebuildStrip() {
	deck := r.view.deck
	trio := r.stripTrio()

	ids := make([]string, len(trio))
	for n, i := range trio {
		ids[n] = deck.Slides[i].ID
	}
	if equalIDs(ids, r.view.stripIDs) {
		return
	}
	r.view.stripIDs = ids

	r.strip.RemoveAll()
	for _, i := range trio {
		r.strip.Add(r.view.contentFor(deck.Slides[i]))
	}
}

// rebuildDots matches the dot row to the slide count
func (r *deckViewRenderer) rebuildDots() {
	count := r.view.deck.Len()
	if len(r.dotShapes) == count {
		return
	}
	r.dots.RemoveAll()
	r.dotShapes = make([]*canvas.Circle, count)
	for i := range r.dotShapes {
		dot := canvas.NewCircle(color.White)
		r.dotShapes[i] = dot
		r.dots.Add(dot)
	}
}

// Layout arranges the background, strip and dots
func (r *deckViewRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	r.strip.Resize(size)
	r.dots.Resize(size)
	r.layoutStrip(size)
	r.layoutDots(size)
}

// layoutStrip positions the attached slides around the focused one
func (r *deckViewRenderer) layoutStrip(size fyne.Size) {
	deck := r.view.deck
	offset := r.view.dragOffset

	// Pull against a missing neighbor moves the content with resistance.
	if offset < 0 && deck.FocusedIndex >= deck.Len()-1 {
		offset *= boundaryDragResistance
	}
	if offset > 0 && deck.FocusedIndex <= 0 {
		offset *= boundaryDragResistance
	}

	trio := r.stripTrio()
	for n, i := range trio {
		if n >= len(r.strip.Objects) {
			break
		}
		obj := r.strip.Objects[n]
		obj.Resize(size)
		obj.Move(fyne.NewPos(float32(i-deck.FocusedIndex)*size.Width+offset, 0))
	}
}

// layoutDots centers the dot row above the bottom edge
func (r *deckViewRenderer) layoutDots(size fyne.Size) {
	count := len(r.dotShapes)
	if count == 0 {
		return
	}
	rowWidth := float32(count-1)*PageDotSpacing + 2*PageDotRadius
	x := (size.Width - rowWidth) / 2
	y := size.Height - PageDotBottomMargin - 2*PageDotRadius
	for _, dot := range r.dotShapes {
		dot.Resize(fyne.NewSize(2*PageDotRadius, 2*PageDotRadius))
		dot.Move(fyne.NewPos(x, y))
		x += PageDotSpacing
	}
}

// MinSize returns the minimum deck size
func (r *deckViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

// Refresh rebuilds and repaints the deck for the current model state
func (r *deckViewRenderer) Refresh() {
	display := r.view.display

	bg := display.BackgroundColor.Scaled(display.Brightness)
	r.background.FillColor = color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}
	r.background.Refresh()

	r.rebuildStrip()
	r.rebuildDots()

	active := display.ClockColor.Scaled(display.Brightness)
	for i, dot := range r.dotShapes {
		fill := color.NRGBA{R: active.R, G: active.G, B: active.B, A: 255}
		if i != r.view.deck.FocusedIndex {
			fill.A = pageDotInactiveAlpha
		}
		dot.FillColor = fill
		dot.Refresh()
	}
	if r.view.dotsVisible && r.view.deck.Len() > 1 {
		r.dots.Show()
	} else {
		r.dots.Hide()
	}

	size := r.view.Size()
	if size.Width > 0 && size.Height > 0 {
		r.layoutStrip(size)
		r.layoutDots(size)
	}
	r.strip.Refresh()
}

// Objects returns the rendered objects
func (r *deckViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.strip, r.dots}
}

// Destroy cleans up the renderer
func (r *deckViewRenderer) Destroy() {}

// equalIDs compares two slide ID lists
func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
