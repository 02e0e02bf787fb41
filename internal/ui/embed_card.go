package ui

import (
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ndot/ndot-clock/internal/model"
)

const embedGlyphSize float32 = 52

// EmbedCard is the desktop surface for web content slides. Instead of an
// embedded browser it previews the configured page and opens it in the
// system browser. Pointer gestures that start inside the card are consumed
// here and never reach the deck, matching how a real embedded surface
// behaves.
type EmbedCard struct {
	widget.BaseWidget

	localization *Localization

	mu    sync.RWMutex
	kind  model.SlideKind
	title string
	url   string

	onOpen func(rawURL string)

	// UI components
	glyphText  *canvas.Text
	titleLabel *widget.Label
	urlLabel   *widget.Label
	openBtn    *widget.Button
}

// NewEmbedCard creates a preview card for a web content slide
func NewEmbedCard(localization *Localization, kind model.SlideKind) *EmbedCard {
	ec := &EmbedCard{
		localization: localization,
		kind:         kind,
	}
	ec.ExtendBaseWidget(ec)
	ec.createUI()
	ec.updateFromContent()
	return ec
}

// SetOnOpen sets the callback invoked with the slide URL when the user
// asks to open it
func (ec *EmbedCard) SetOnOpen(onOpen func(rawURL string)) {
	if onOpen == nil {
		log.Printf("Warning: onOpen callback is nil for %s card", ec.kind)
	}
	ec.onOpen = onOpen
}

// SetContent updates the previewed title and URL
func (ec *EmbedCard) SetContent(title, url string) {
	ec.mu.Lock()
	ec.title = title
	ec.url = url
	ec.mu.Unlock()
	ec.updateFromContent()
	ec.Refresh()
}

// createUI creates the card components
func (ec *EmbedCard) createUI() {
	ec.glyphText = canvas.NewText(ec.glyph(), color.White)
	ec.glyphText.TextSize = embedGlyphSize
	ec.glyphText.Alignment = fyne.TextAlignCenter

	ec.titleLabel = widget.NewLabel("")
	ec.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ec.titleLabel.Alignment = fyne.TextAlignCenter
	ec.titleLabel.Truncation = fyne.TextTruncateEllipsis

	ec.urlLabel = widget.NewLabel("")
	ec.urlLabel.Alignment = fyne.TextAlignCenter
	ec.urlLabel.Truncation = fyne.TextTruncateEllipsis

	ec.openBtn = widget.NewButton(ec.localization.GetText(KeyOpenInBrowser), func() {
		ec.open()
	})
	ec.openBtn.Importance = widget.MediumImportance
}

// glyph returns the kind marker shown above the title
func (ec *EmbedCard) glyph() string {
	switch ec.kind {
	case model.SlideKindYouTube:
		return IconPlay
	case model.SlideKindHomeAssistant:
		return IconHome
	default:
		return IconLink
	}
}

// updateFromContent rewrites the labels from the configured content
func (ec *EmbedCard) updateFromContent() {
	ec.mu.RLock()
	title := ec.title
	url := ec.url
	ec.mu.RUnlock()

	if title == "" {
		title = ec.localization.GetText(SlideKindKey(ec.kind.String()))
	}
	ec.titleLabel.SetText(title)

	if url == "" {
		ec.urlLabel.SetText(DashPlaceholder)
		ec.openBtn.Disable()
	} else {
		ec.urlLabel.SetText(url)
		ec.openBtn.Enable()
	}
}

// open hands the URL to the open callback
func (ec *EmbedCard) open() {
	ec.mu.RLock()
	url := ec.url
	ec.mu.RUnlock()
	if url == "" {
		return
	}
	if ec.onOpen == nil {
		log.Printf("Warning: no onOpen callback, dropping open request for %s", url)
		return
	}
	ec.onOpen(url)
}

// Tapped opens the page, treating the whole card as the embed surface
func (ec *EmbedCard) Tapped(_ *fyne.PointEvent) {
	ec.open()
}

// Dragged absorbs drags that start inside the card so they never turn
// into deck navigation
func (ec *EmbedCard) Dragged(_ *fyne.DragEvent) {}

// DragEnd completes an absorbed drag
func (ec *EmbedCard) DragEnd() {}

// CreateRenderer creates the widget renderer
func (ec *EmbedCard) CreateRenderer() fyne.WidgetRenderer {
	return &embedCardRenderer{card: ec}
}

// embedCardRenderer renders the embed preview card
type embedCardRenderer struct {
	card   *EmbedCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *embedCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		r.layout.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *embedCardRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(240, 160)
}

// Refresh refreshes the renderer
func (r *embedCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.card.glyphText.Text = r.card.glyph()
	r.card.glyphText.Refresh()
	if r.layout != nil {
		r.layout.Refresh()
	}
}

// Objects returns the container objects
func (r *embedCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *embedCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *embedCardRenderer) createLayout() {
	ec := r.card
	column := container.NewVBox(
		ec.glyphText,
		ec.titleLabel,
		ec.urlLabel,
		container.NewCenter(ec.openBtn),
	)
	r.layout = container.NewCenter(column)
}
