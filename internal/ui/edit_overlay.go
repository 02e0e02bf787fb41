package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ndot/ndot-clock/internal/model"
)

const (
	editCardGlyphSize   float32 = 44
	editCardStroke      float32 = 1
	editCardFocusStroke float32 = 2
	editCardCorner      float32 = 10
)

// kindGlyph returns the marker glyph for a slide kind
func kindGlyph(kind model.SlideKind) string {
	switch kind {
	case model.SlideKindClock:
		return IconClock
	case model.SlideKindWeather:
		return IconWeather
	case model.SlideKindYouTube:
		return IconPlay
	case model.SlideKindHomeAssistant:
		return IconHome
	default:
		return IconLink
	}
}

// slideTitle returns the user-facing name of a slide: its configured title
// when one is set, the localized kind name otherwise
func slideTitle(localization *Localization, slide *model.Slide) string {
	var title string
	switch cfg := slide.Config.(type) {
	case model.CustomConfig:
		title = cfg.Title
	case model.YouTubeConfig:
		title = cfg.Title
	case model.HomeAssistantConfig:
		title = cfg.Title
	}
	if title != "" {
		return title
	}
	return localization.GetText(SlideKindKey(slide.Kind.String()))
}

// EditOverlay is the edit-mode surface: a horizontal strip of scaled-down
// slide cards with drag handles, per-card delete buttons and an add
// control. It translates those affordances into deck mutations and asks
// the shell to persist after each structural change. All methods run on
// the UI thread.
type EditOverlay struct {
	widget.BaseWidget

	deck         *model.Deck
	localization *Localization
	controller   *GestureController

	display model.DisplaySettings

	onAddSlide  func()
	onDelete    func(id string)
	onDone      func()
	onPersist   func()
	onConfigure func(index int)

	titleLabel *widget.Label
	addBtn     *widget.Button
	doneBtn    *widget.Button
	stripLay   *editStripLayout
	strip      *fyne.Container
	scroll     *container.Scroll
	cards      []*editCard
}

// NewEditOverlay creates the edit-mode overlay for the given deck
func NewEditOverlay(deck *model.Deck, localization *Localization) *EditOverlay {
	eo := &EditOverlay{
		deck:         deck,
		localization: localization,
		display:      model.DefaultDisplaySettings(),
	}
	eo.ExtendBaseWidget(eo)
	eo.createUI()
	eo.Hide()
	return eo
}

// createUI creates the toolbar and the card strip
func (eo *EditOverlay) createUI() {
	eo.titleLabel = widget.NewLabel(eo.localization.GetText(KeyEditSlides))
	eo.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	eo.addBtn = widget.NewButton(IconAdd, func() {
		if eo.onAddSlide != nil {
			eo.onAddSlide()
		}
	})
	eo.addBtn.Importance = widget.MediumImportance

	eo.doneBtn = widget.NewButton(eo.localization.GetText(KeyDone), func() {
		if eo.onDone != nil {
			eo.onDone()
		}
	})
	eo.doneBtn.Importance = widget.HighImportance

	eo.stripLay = &editStripLayout{}
	eo.strip = container.New(eo.stripLay)
	eo.scroll = container.NewHScroll(eo.strip)
}

// SetController sets the gesture controller the cards forward events to
func (eo *EditOverlay) SetController(controller *GestureController) {
	if controller == nil {
		log.Printf("Warning: SetController called with nil controller")
	}
	eo.controller = controller
}

// SetCallbacks wires the overlay affordances to the application shell
func (eo *EditOverlay) SetCallbacks(
	onAddSlide func(),
	onDelete func(id string),
	onDone func(),
	onPersist func(),
	onConfigure func(index int),
) {
	eo.onAddSlide = onAddSlide
	eo.onDelete = onDelete
	eo.onDone = onDone
	eo.onPersist = onPersist
	eo.onConfigure = onConfigure
}

// SetDisplaySettings applies background and accent colors
func (eo *EditOverlay) SetDisplaySettings(display model.DisplaySettings) {
	eo.display = display
	eo.Refresh()
}

// Enter shows the overlay. Calling it while already entered is a no-op.
func (eo *EditOverlay) Enter() {
	if eo.Visible() {
		return
	}
	eo.RefreshCards()
	eo.Show()
	eo.CenterOnFocused()
}

// Exit hides the overlay. Calling it while already exited is a no-op.
func (eo *EditOverlay) Exit() {
	if !eo.Visible() {
		return
	}
	eo.Hide()
}

// AddSlide appends a new slide of the given kind and immediately opens its
// configuration
func (eo *EditOverlay) AddSlide(kind model.SlideKind) {
	slide, err := eo.deck.Insert(kind, nil, eo.deck.Len())
	if err != nil {
		log.Printf("Failed to add %s slide: %v", kind, err)
		return
	}
	eo.persist()
	eo.RefreshCards()
	eo.CenterOn(slide.Position)
	if eo.onConfigure != nil {
		eo.onConfigure(slide.Position)
	}
}

// DeleteSlide removes the slide with the given ID
func (eo *EditOverlay) DeleteSlide(id string) error {
	if err := eo.deck.Remove(id); err != nil {
		log.Printf("Failed to delete slide %s: %v", id, err)
		return err
	}
	eo.persist()
	eo.RefreshCards()
	return nil
}

// persist asks the shell to save the deck
func (eo *EditOverlay) persist() {
	if eo.onPersist != nil {
		eo.onPersist()
	}
}

// SlotWidth returns the horizontal distance between neighboring card
// origins, which the reorder gesture uses to resolve midpoint crossings
func (eo *EditOverlay) SlotWidth() float32 {
	cardW := eo.Size().Width * EditCardScale
	return cardW * (1 + EditCardGapShare)
}

// RefreshCards updates the card strip to the deck order. When the slide
// count is unchanged the existing card widgets are rebound in place, which
// keeps an in-flight reorder drag attached to a live widget while the
// strip shows each midpoint swap.
func (eo *EditOverlay) RefreshCards() {
	slides := eo.deck.All()

	if len(eo.cards) != len(slides) {
		eo.cards = make([]*editCard, len(slides))
		objects := make([]fyne.CanvasObject, len(slides))
		for i := range slides {
			card := newEditCard(eo)
			eo.cards[i] = card
			objects[i] = card
		}
		eo.strip.Objects = objects
	}

	for i := range slides {
		slide := &slides[i]
		eo.cards[i].bind(slide.ID, slide.Kind, slideTitle(eo.localization, slide), i)
	}
	eo.strip.Refresh()
	eo.Refresh()
}

// CenterOnFocused scrolls the strip so the focused card is visible
func (eo *EditOverlay) CenterOnFocused() {
	eo.CenterOn(eo.deck.FocusedIndex)
}

// CenterOn scrolls the strip to center the card at the given index
func (eo *EditOverlay) CenterOn(index int) {
	if index < 0 || index >= len(eo.cards) {
		return
	}
	slot := eo.SlotWidth()
	cardW := eo.Size().Width * EditCardScale
	x := float32(index)*slot - (eo.scroll.Size().Width-cardW)/2
	if x < 0 {
		x = 0
	}
	eo.scroll.Offset = fyne.NewPos(x, 0)
	eo.scroll.Refresh()
}

// deleteRequested routes a card's delete button to the shell
func (eo *EditOverlay) deleteRequested(id string) {
	if eo.onDelete != nil {
		eo.onDelete(id)
		return
	}
	// Without a shell hook the delete applies directly.
	if err := eo.DeleteSlide(id); err != nil {
		log.Printf("Failed to delete slide: %v", err)
	}
}

// canDelete reports whether slides may currently be deleted. The deck
// always keeps its last slide.
func (eo *EditOverlay) canDelete() bool {
	return eo.deck.Len() > 1
}

// CreateRenderer creates the widget renderer
func (eo *EditOverlay) CreateRenderer() fyne.WidgetRenderer {
	r := &editOverlayRenderer{overlay: eo}
	r.background = canvas.NewRectangle(color.Black)
	topBar := container.NewBorder(nil, nil, eo.titleLabel, container.NewHBox(eo.addBtn, eo.doneBtn))
	r.content = container.NewBorder(topBar, nil, nil, nil, eo.scroll)
	return r
}

// editOverlayRenderer renders the overlay background and content
type editOverlayRenderer struct {
	overlay    *EditOverlay
	background *canvas.Rectangle
	content    *fyne.Container
}

// Layout arranges the overlay and feeds the card size into the strip
func (r *editOverlayRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	cardW := size.Width * EditCardScale
	cardH := size.Height * EditCardScale
	r.overlay.stripLay.setCardSize(fyne.NewSize(cardW, cardH))

	r.content.Resize(size)
	r.content.Move(fyne.NewPos(0, 0))
}

// MinSize returns the minimum overlay size
func (r *editOverlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

// Refresh repaints the overlay chrome and cards
func (r *editOverlayRenderer) Refresh() {
	display := r.overlay.display
	bg := display.BackgroundColor.Scaled(display.Brightness)
	r.background.FillColor = color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}
	r.background.Refresh()

	canDelete := r.overlay.canDelete()
	for _, card := range r.overlay.cards {
		if card.pinned() {
			card.deleteBtn.Hide()
		} else {
			card.deleteBtn.Show()
			card.setDeletable(canDelete)
		}
		card.Refresh()
	}
	r.content.Refresh()
}

// Objects returns the rendered objects
func (r *editOverlayRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.content}
}

// Destroy cleans up the renderer
func (r *editOverlayRenderer) Destroy() {}

// editStripLayout lays the cards out in a horizontal row with a gap
// proportional to the card width, vertically centered
type editStripLayout struct {
	cardSize fyne.Size
}

func (l *editStripLayout) setCardSize(size fyne.Size) {
	l.cardSize = size
}

func (l *editStripLayout) gap() float32 {
	return l.cardSize.Width * EditCardGapShare
}

// Layout positions the cards in deck order
func (l *editStripLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	gap := l.gap()
	x := gap
	y := (size.Height - l.cardSize.Height) / 2
	if y < 0 {
		y = 0
	}
	for _, obj := range objects {
		obj.Resize(l.cardSize)
		obj.Move(fyne.NewPos(x, y))
		x += l.cardSize.Width + gap
	}
}

// MinSize reports the full strip extent so the scroller knows how far the
// row reaches
func (l *editStripLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	count := len(objects)
	if count == 0 || l.cardSize.Width == 0 {
		return fyne.NewSize(0, 0)
	}
	gap := l.gap()
	width := float32(count)*(l.cardSize.Width+gap) + gap
	return fyne.NewSize(width, l.cardSize.Height+2*gap)
}

// editCard is one scaled-down slide in the edit strip. The body forwards
// pointer events as slide-body presses (tap opens configuration, drags are
// absorbed); the handle forwards them as drag-handle presses that start a
// reorder.
type editCard struct {
	widget.BaseWidget

	overlay *EditOverlay
	slideID string
	kind    model.SlideKind
	title   string
	index   int

	forward pointerForwarder

	border     *canvas.Rectangle
	glyphText  *canvas.Text
	nameLabel  *widget.Label
	deleteBtn  *widget.Button
	handle     *editHandle
	rootObject fyne.CanvasObject
}

// newEditCard creates an unbound card; bind attaches it to a slide
func newEditCard(overlay *EditOverlay) *editCard {
	card := &editCard{overlay: overlay}
	card.forward = pointerForwarder{
		controller: func() *GestureController { return overlay.controller },
		target:     PressSlideBody,
		index:      func() int { return card.index },
	}
	card.ExtendBaseWidget(card)
	card.createUI()
	return card
}

// bind points the card at the slide currently occupying its strip slot
func (card *editCard) bind(slideID string, kind model.SlideKind, title string, index int) {
	card.slideID = slideID
	card.kind = kind
	card.title = title
	card.index = index
	card.glyphText.Text = kindGlyph(kind)
	card.nameLabel.SetText(title)
	card.Refresh()
}

// createUI creates the card components
func (card *editCard) createUI() {
	card.border = canvas.NewRectangle(color.Transparent)
	card.border.StrokeWidth = editCardStroke
	card.border.CornerRadius = editCardCorner

	card.glyphText = canvas.NewText(kindGlyph(card.kind), color.White)
	card.glyphText.TextSize = editCardGlyphSize
	card.glyphText.Alignment = fyne.TextAlignCenter

	card.nameLabel = widget.NewLabel(card.title)
	card.nameLabel.Alignment = fyne.TextAlignCenter
	card.nameLabel.Truncation = fyne.TextTruncateEllipsis

	card.deleteBtn = widget.NewButton(IconDelete, func() {
		card.overlay.deleteRequested(card.slideID)
	})
	card.deleteBtn.Importance = widget.DangerImportance

	card.handle = newEditHandle(card)

	top := container.NewBorder(nil, nil, card.handle, card.deleteBtn)
	card.rootObject = container.NewStack(
		card.border,
		container.NewBorder(top, card.nameLabel, nil, nil, container.NewCenter(card.glyphText)),
	)
}

// setDeletable enables or disables the delete button
func (card *editCard) setDeletable(deletable bool) {
	if deletable {
		card.deleteBtn.Enable()
	} else {
		card.deleteBtn.Disable()
	}
}

// pinned reports whether the card's slide carries no delete control at all.
// The clock in the leading position is the fixed slide of the deck.
func (card *editCard) pinned() bool {
	return card.kind == model.SlideKindClock && card.index == 0
}

// MouseDown starts a body press
func (card *editCard) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	card.forward.down(ev.Position)
}

// MouseUp ends a body press
func (card *editCard) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	card.forward.up(ev.Position)
}

// Dragged continues a body press; the controller absorbs body drags in
// edit mode
func (card *editCard) Dragged(ev *fyne.DragEvent) {
	card.forward.move(ev.Position)
}

// DragEnd ends a body press released outside the card
func (card *editCard) DragEnd() {
	card.forward.upAtLast()
}

// TouchDown starts a body press from touch
func (card *editCard) TouchDown(ev *mobile.TouchEvent) {
	card.forward.down(ev.Position)
}

// TouchUp ends a touch body press
func (card *editCard) TouchUp(ev *mobile.TouchEvent) {
	card.forward.up(ev.Position)
}

// TouchCancel aborts a touch body press
func (card *editCard) TouchCancel(ev *mobile.TouchEvent) {
	card.forward.cancel()
}

// CreateRenderer creates the widget renderer
func (card *editCard) CreateRenderer() fyne.WidgetRenderer {
	return &editCardRenderer{card: card}
}

// editCardRenderer renders one edit card
type editCardRenderer struct {
	card *editCard
}

// Layout arranges the card content
func (r *editCardRenderer) Layout(size fyne.Size) {
	r.card.rootObject.Resize(size)
	r.card.rootObject.Move(fyne.NewPos(0, 0))
}

// MinSize returns the minimum card size
func (r *editCardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(160, 120)
}

// Refresh repaints the border for focus and accent changes
func (r *editCardRenderer) Refresh() {
	card := r.card
	display := card.overlay.display

	accent := display.ClockColor.Scaled(display.Brightness)
	stroke := color.NRGBA{R: accent.R, G: accent.G, B: accent.B, A: 255}
	if card.index == card.overlay.deck.FocusedIndex {
		card.border.StrokeWidth = editCardFocusStroke
	} else {
		card.border.StrokeWidth = editCardStroke
		stroke.A = 140
	}
	card.border.StrokeColor = stroke
	card.border.Refresh()

	card.glyphText.Refresh()
	r.card.rootObject.Refresh()
}

// Objects returns the card objects
func (r *editCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.card.rootObject}
}

// Destroy cleans up the renderer
func (r *editCardRenderer) Destroy() {}

// editHandle is the drag affordance on a card. Presses that start here may
// become reorder drags.
type editHandle struct {
	widget.BaseWidget

	card    *editCard
	forward pointerForwarder
	glyph   *canvas.Text
}

// newEditHandle creates the drag handle for a card
func newEditHandle(card *editCard) *editHandle {
	h := &editHandle{card: card}
	h.forward = pointerForwarder{
		controller: func() *GestureController { return card.overlay.controller },
		target:     PressDragHandle,
		index:      func() int { return card.index },
	}
	h.glyph = canvas.NewText(IconDragHandle, color.White)
	h.glyph.Alignment = fyne.TextAlignCenter
	h.ExtendBaseWidget(h)
	return h
}

// MouseDown starts a handle press
func (h *editHandle) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	h.forward.down(ev.Position)
}

// MouseUp ends a handle press
func (h *editHandle) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	h.forward.up(ev.Position)
}

// Dragged continues a reorder drag
func (h *editHandle) Dragged(ev *fyne.DragEvent) {
	h.forward.move(ev.Position)
}

// DragEnd commits a reorder drag released outside the handle
func (h *editHandle) DragEnd() {
	h.forward.upAtLast()
}

// TouchDown starts a handle press from touch
func (h *editHandle) TouchDown(ev *mobile.TouchEvent) {
	h.forward.down(ev.Position)
}

// TouchUp ends a touch handle press
func (h *editHandle) TouchUp(ev *mobile.TouchEvent) {
	h.forward.up(ev.Position)
}

// TouchCancel aborts a touch handle press, reverting the reorder
func (h *editHandle) TouchCancel(ev *mobile.TouchEvent) {
	h.forward.cancel()
}

// CreateRenderer creates the widget renderer
func (h *editHandle) CreateRenderer() fyne.WidgetRenderer {
	return &editHandleRenderer{handle: h}
}

// editHandleRenderer renders the handle glyph
type editHandleRenderer struct {
	handle *editHandle
}

// Layout centers the glyph
func (r *editHandleRenderer) Layout(size fyne.Size) {
	r.handle.glyph.Resize(size)
	r.handle.glyph.Move(fyne.NewPos(0, 0))
}

// MinSize keeps the handle a comfortable touch target
func (r *editHandleRenderer) MinSize() fyne.Size {
	return fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize)
}

// Refresh repaints the glyph
func (r *editHandleRenderer) Refresh() {
	r.handle.glyph.Refresh()
}

// Objects returns the handle objects
func (r *editHandleRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.handle.glyph}
}

// Destroy cleans up the renderer
func (r *editHandleRenderer) Destroy() {}
