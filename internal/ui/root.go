package ui

import (
	"context"
	"log"
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ndot/ndot-clock/internal/config"
	"github.com/ndot/ndot-clock/internal/media"
	"github.com/ndot/ndot-clock/internal/model"
	"github.com/ndot/ndot-clock/internal/store"
	"github.com/ndot/ndot-clock/internal/weather"
)

// RootUI is the application shell: it owns the deck, routes gesture
// commands into deck mutations and animations, and keeps the background
// services and the widgets in sync. All methods run on the UI thread
// unless noted otherwise.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	cfg          *config.Config
	deck         *model.Deck
	display      model.DisplaySettings
	localization *Localization
	profile      *DeviceProfile

	saver      *store.Saver
	weatherSvc weather.Provider
	geocoder   *weather.Geocoder
	cache      *weather.Cache
	resolver   *media.Resolver

	// Interaction surfaces
	controller  *GestureController
	deckView    *DeckView
	editOverlay *EditOverlay

	// Dialogs
	displayDialog *DisplaySettingsDialog
	slideDialog   *SlideConfigDialog

	// Built slide content by slide ID, for pushing updates
	weatherCards map[string]*WeatherCard
	embedCards   map[string]*EmbedCard
	lastReport   *weather.Report

	// Slide ordering captured at reorder start, restored on cancel
	reorderBaseline []string

	// Idle countdown returning focus to the clock
	returnTimer *time.Timer
}

// NewRootUI creates and initializes the main UI over a loaded snapshot
func NewRootUI(window fyne.Window, app fyne.App, cfg *config.Config, snap *store.Snapshot, saver *store.Saver, weatherSvc weather.Provider, geocoder *weather.Geocoder, cache *weather.Cache) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(snap.Display.Language)

	ui := &RootUI{
		window:       window,
		app:          app,
		cfg:          cfg,
		deck:         snap.Deck,
		display:      snap.Display,
		localization: localization,
		profile:      NewDeviceProfile(),
		saver:        saver,
		weatherSvc:   weatherSvc,
		geocoder:     geocoder,
		cache:        cache,
		resolver:     media.NewResolver(),
		weatherCards: make(map[string]*WeatherCard),
		embedCards:   make(map[string]*EmbedCard),
	}

	log.Printf("RootUI initialized with %d slides, focused %d", ui.deck.Len(), ui.deck.FocusedIndex)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Persistence failures surface as a toast; in-memory state stays
	// authoritative
	saver.SetFailureCallback(ui.onPersistFailure)

	if weatherSvc != nil {
		weatherSvc.SetUpdateCallback(ui.onWeatherUpdate)
		weatherSvc.SetLocation(ui.display.Location)
		// A cache-seeded report fills weather cards before the first poll
		if report, ok := weatherSvc.Current(); ok {
			ui.lastReport = report
		}
	}

	ui.setupUI()
	ui.applyDisplaySettings()
	ui.locateIfNeeded()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	if icon, err := LoadAppIcon(); err == nil {
		ui.window.SetIcon(icon)
	}

	// Gesture controller, tuned from the config file
	ui.controller = NewGestureController(GestureCallbacks{
		Mode:          func() model.Mode { return ui.deck.Mode },
		FocusedIndex:  func() int { return ui.deck.FocusedIndex },
		SlideCount:    func() int { return ui.deck.Len() },
		ViewportWidth: func() float32 { return ui.deckView.ViewportWidth() },
		SlotWidth:     func() float32 { return ui.editOverlay.SlotWidth() },

		OnDragMove:         ui.onDragMove,
		OnNavigateCommit:   ui.onNavigateCommit,
		OnNavigateSnapBack: ui.onNavigateSnapBack,

		OnToggleEditMode:  ui.onToggleEditMode,
		OnOpenSlideConfig: ui.onOpenSlideConfig,

		OnReorderStart:  ui.onReorderStart,
		OnReorderStep:   ui.onReorderStep,
		OnReorderCommit: ui.onReorderCommit,
		OnReorderCancel: ui.onReorderCancel,
	})
	ui.controller.SetLongPressDuration(ui.cfg.Gesture.LongPress)
	ui.controller.SetMoveThreshold(float32(ui.cfg.Gesture.MoveThresholdPx))
	ui.controller.SetCommitFraction(float32(ui.cfg.Gesture.CommitFraction))
	ui.controller.SetFlingVelocity(float32(ui.cfg.Gesture.FlingVelocityPxS))

	// Slide strip
	ui.deckView = NewDeckView(ui.deck, ui.buildSlide)
	ui.deckView.SetController(ui.controller)
	if ui.profile.DotsAlwaysVisible() {
		ui.deckView.SetDotsHideDelay(0)
	} else {
		ui.deckView.SetDotsHideDelay(ui.cfg.UI.DotsHideDelay)
	}
	ui.deckView.SetOnActivity(ui.resetReturnTimer)

	// Edit overlay, hidden until a long press
	ui.editOverlay = NewEditOverlay(ui.deck, ui.localization)
	ui.editOverlay.SetController(ui.controller)
	ui.editOverlay.SetCallbacks(
		ui.onAddSlide,
		ui.onDeleteSlide,
		ui.exitEditMode,
		ui.persistDeck,
		ui.onConfigureNewSlide,
	)

	ui.displayDialog = NewDisplaySettingsDialog(ui.localization, ui.window, ui.geocoder, ui.cache, ui.currentDisplay, ui.onApplyDisplaySettings)
	ui.slideDialog = NewSlideConfigDialog(ui.localization, ui.window, ui.resolver, ui.onApplySlideConfig)

	content := container.NewStack(ui.deckView, ui.editOverlay)
	ui.window.SetContent(content)

	ui.setupShortcuts()
	ui.resetReturnTimer()

	log.Printf("UI setup completed successfully")
}

// Stop ends the idle timers and all slide background work
func (ui *RootUI) Stop() {
	if ui.returnTimer != nil {
		ui.returnTimer.Stop()
		ui.returnTimer = nil
	}
	ui.deckView.Stop()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	editItem := fyne.NewMenuItem(ui.localization.GetText(KeyEditSlides), ui.onToggleEditMode)
	quitItem := fyne.NewMenuItem(ui.localization.GetText(KeyQuit), func() {
		ui.app.Quit()
	})
	quitItem.IsQuit = true

	fullscreenItem := fyne.NewMenuItem(ui.localization.GetText(KeyFullscreen), ui.onToggleFullscreen)
	fullscreenItem.Checked = ui.display.Fullscreen

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, editItem, fyne.NewMenuItemSeparator(), quitItem),
		fyne.NewMenu(ui.localization.GetText(KeyView), fullscreenItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// setupShortcuts binds the keyboard controls
func (ui *RootUI) setupShortcuts() {
	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyF11:
			ui.onToggleFullscreen()
		case fyne.KeyEscape:
			ui.exitEditMode()
		}
	})
}

// buildSlide creates the content widget for a slide; the deck view caches
// the result by slide ID
func (ui *RootUI) buildSlide(slide *model.Slide) fyne.CanvasObject {
	switch cfg := slide.Config.(type) {
	case model.ClockConfig:
		face := NewClockFace(ui.localization, ui.display)
		face.Start()
		return face
	case model.WeatherConfig:
		card := NewWeatherCard(ui.localization, cfg.ShowWind)
		if ui.lastReport != nil {
			card.SetReport(ui.lastReport)
		}
		ui.weatherCards[slide.ID] = card
		return card
	case model.CustomConfig:
		return ui.buildEmbed(slide, cfg.Title, cfg.URL)
	case model.YouTubeConfig:
		return ui.buildEmbed(slide, cfg.Title, cfg.URL)
	case model.HomeAssistantConfig:
		return ui.buildEmbed(slide, cfg.Title, cfg.URL)
	default:
		log.Printf("Warning: no view for %T config", slide.Config)
		return widget.NewLabel(DashPlaceholder)
	}
}

// buildEmbed creates the preview card for a web content slide
func (ui *RootUI) buildEmbed(slide *model.Slide, title, rawURL string) fyne.CanvasObject {
	card := NewEmbedCard(ui.localization, slide.Kind)
	card.SetContent(title, rawURL)
	card.SetOnOpen(ui.openInBrowser)
	ui.embedCards[slide.ID] = card
	return card
}

// openInBrowser hands an embed URL to the system browser
func (ui *RootUI) openInBrowser(rawURL string) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		log.Printf("Failed to parse embed URL %q: %v", rawURL, err)
		return
	}
	if err := ui.app.OpenURL(parsed); err != nil {
		log.Printf("Failed to open URL in browser: %v", err)
	}
	ui.resetReturnTimer()
}

// Navigation

// onDragMove tracks the pointer during slide navigation. The transition
// starts, or is redirected, toward the slide the offset heads for; at the
// deck boundary it degenerates to From == To and can only snap back.
func (ui *RootUI) onDragMove(offset float32) {
	target := ui.dragTarget(offset)
	if ui.deck.Mode != model.ModeTransitioning || ui.deck.Transition.To != target {
		if err := ui.deck.BeginTransition(target); err != nil {
			log.Printf("Failed to begin transition: %v", err)
			return
		}
	}
	if width := ui.deckView.ViewportWidth(); width > 0 {
		ui.deck.SetTransitionProgress(float64(abs32(offset) / width))
	}
	ui.deckView.SetDragOffset(offset)
}

// dragTarget resolves which slide a drag offset heads toward
func (ui *RootUI) dragTarget(offset float32) int {
	focused := ui.deck.FocusedIndex
	target := focused
	if offset < 0 {
		target = focused + 1
	} else if offset > 0 {
		target = focused - 1
	}
	if target < 0 || target >= ui.deck.Len() {
		return focused
	}
	return target
}

// onNavigateCommit animates to the target slide. The focus the animation
// will settle on is persisted right away.
func (ui *RootUI) onNavigateCommit(target int, velocity float32) {
	ui.deckView.AnimateCommit(target, velocity)

	snap := ui.snapshot()
	snap.Deck.FocusedIndex = target
	ui.saver.Enqueue(snap)

	ui.resetReturnTimer()
}

// onNavigateSnapBack returns the strip to the focused slide
func (ui *RootUI) onNavigateSnapBack(velocity float32) {
	ui.deckView.AnimateSnapBack(velocity)
	ui.resetReturnTimer()
}

// Edit mode

// onToggleEditMode flips between viewing and editing
func (ui *RootUI) onToggleEditMode() {
	if ui.deck.Mode == model.ModeEdit {
		ui.exitEditMode()
	} else {
		ui.enterEditMode()
	}
}

// enterEditMode shows the edit overlay. Entering twice is a no-op.
func (ui *RootUI) enterEditMode() {
	if ui.deck.Mode == model.ModeEdit {
		return
	}
	ui.deck.Mode = model.ModeEdit
	ui.editOverlay.Enter()
	log.Printf("Entered edit mode")
}

// exitEditMode hides the overlay and returns to viewing. Exiting twice is
// a no-op.
func (ui *RootUI) exitEditMode() {
	if ui.deck.Mode != model.ModeEdit {
		return
	}
	ui.deck.Mode = model.ModeViewing
	ui.editOverlay.Exit()
	ui.deckView.Refresh()
	ui.resetReturnTimer()
	log.Printf("Exited edit mode")
}

// onAddSlide offers the slide kinds and appends the chosen one
func (ui *RootUI) onAddSlide() {
	// The clock ships with the deck; the picker offers the panel kinds
	kinds := []model.SlideKind{
		model.SlideKindWeather,
		model.SlideKindCustom,
		model.SlideKindYouTube,
		model.SlideKindHomeAssistant,
	}

	items := make([]*fyne.MenuItem, 0, len(kinds))
	for _, kind := range kinds {
		k := kind // Capture for closure
		items = append(items, fyne.NewMenuItem(ui.localization.GetText(SlideKindKey(string(k))), func() {
			ui.editOverlay.AddSlide(k)
		}))
	}

	menu := fyne.NewMenu(ui.localization.GetText(KeyAddSlide), items...)
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(ui.editOverlay.addBtn)
	pos.Y += ui.editOverlay.addBtn.Size().Height
	widget.ShowPopUpMenuAtPosition(menu, ui.window.Canvas(), pos)
}

// onDeleteSlide confirms and removes a slide
func (ui *RootUI) onDeleteSlide(id string) {
	dialog.ShowConfirm(
		ui.localization.GetText(KeyDeleteSlide),
		ui.localization.GetText(KeyConfirmDeleteSlide),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.editOverlay.DeleteSlide(id); err != nil {
				return
			}
			delete(ui.weatherCards, id)
			delete(ui.embedCards, id)
			ui.deckView.ForgetSlide(id)
			ui.deckView.Refresh()
		},
		ui.window,
	)
}

// onConfigureNewSlide opens the configuration for a slide just added.
// Clock slides have nothing per-slide to configure.
func (ui *RootUI) onConfigureNewSlide(index int) {
	slide := ui.slideAt(index)
	if slide == nil || slide.Kind == model.SlideKindClock {
		return
	}
	if slide.Kind == model.SlideKindWeather && ui.weatherSvc != nil {
		// Fill the new card now instead of waiting out the poll interval
		ui.weatherSvc.RefreshNow()
	}
	ui.slideDialog.Show(slide)
}

// onOpenSlideConfig reacts to a tap on a card in edit mode. The clock card
// routes to the display settings, everything else to its kind dialog.
func (ui *RootUI) onOpenSlideConfig(index int) {
	slide := ui.slideAt(index)
	if slide == nil {
		return
	}
	if slide.Kind == model.SlideKindClock {
		ui.displayDialog.Show()
		return
	}
	ui.slideDialog.Show(slide)
}

func (ui *RootUI) slideAt(index int) *model.Slide {
	if index < 0 || index >= ui.deck.Len() {
		log.Printf("Failed to access slide: index %d out of range", index)
		return nil
	}
	return ui.deck.Slides[index]
}

// Reorder

// onReorderStart remembers the ordering to restore on cancel
func (ui *RootUI) onReorderStart(index int) {
	ui.reorderBaseline = make([]string, 0, ui.deck.Len())
	for _, slide := range ui.deck.Slides {
		ui.reorderBaseline = append(ui.reorderBaseline, slide.ID)
	}
	log.Printf("Reorder started at slide %d", index)
}

// onReorderStep applies one midpoint crossing to the deck
func (ui *RootUI) onReorderStep(from, to int) {
	slide := ui.slideAt(from)
	if slide == nil {
		return
	}
	if err := ui.deck.Reorder(slide.ID, to); err != nil {
		log.Printf("Failed to reorder slide: %v", err)
		return
	}
	ui.editOverlay.RefreshCards()
}

// onReorderCommit persists the final ordering
func (ui *RootUI) onReorderCommit() {
	ui.reorderBaseline = nil
	ui.persistDeck()
}

// onReorderCancel restores the ordering captured at reorder start
func (ui *RootUI) onReorderCancel() {
	for to, id := range ui.reorderBaseline {
		if err := ui.deck.Reorder(id, to); err != nil {
			log.Printf("Failed to restore slide order: %v", err)
		}
	}
	ui.reorderBaseline = nil
	ui.editOverlay.RefreshCards()
}

// Settings

// onShowSettings shows the display settings dialog
func (ui *RootUI) onShowSettings() {
	ui.displayDialog.Show()
}

func (ui *RootUI) currentDisplay() model.DisplaySettings {
	return ui.display
}

// onApplyDisplaySettings takes edited settings from the dialog
func (ui *RootUI) onApplyDisplaySettings(next model.DisplaySettings) {
	langChanged := next.Language != ui.display.Language
	locationChanged := next.Location != ui.display.Location
	ui.display = next

	if langChanged {
		ui.localization.SetLanguage(next.Language)
		ui.refreshUITexts()
		ui.createMenu()
	}
	ui.applyDisplaySettings()

	if locationChanged {
		if ui.weatherSvc != nil {
			ui.weatherSvc.SetLocation(next.Location)
		}
		ui.locateIfNeeded()
	}

	ui.persistDeck()
}

// applyDisplaySettings pushes the appearance settings into every view
func (ui *RootUI) applyDisplaySettings() {
	ui.deckView.SetDisplaySettings(ui.display)
	ui.editOverlay.SetDisplaySettings(ui.display)
	ui.window.SetFullScreen(ui.display.Fullscreen || ui.profile.PreferFullscreen())
}

// onLanguageChange handles language change from the menu
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)
	ui.display.Language = langCode

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()

	ui.persistDeck()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update overlay controls and card titles
	ui.editOverlay.titleLabel.SetText(ui.localization.GetText(KeyEditSlides))
	ui.editOverlay.doneBtn.SetText(ui.localization.GetText(KeyDone))
	ui.editOverlay.RefreshCards()

	// Re-render slide content that carries localized text
	for _, slide := range ui.deck.Slides {
		ui.refreshSlideContent(slide)
	}
}

// onToggleFullscreen flips fullscreen and persists the choice
func (ui *RootUI) onToggleFullscreen() {
	ui.display.Fullscreen = !ui.display.Fullscreen
	ui.window.SetFullScreen(ui.display.Fullscreen)
	ui.createMenu()
	ui.persistDeck()
}

// Slide configuration

// onApplySlideConfig takes an edited config from the slide dialog. The
// slide may have been deleted while the dialog or the resolver ran.
func (ui *RootUI) onApplySlideConfig(slideID string, cfg model.Config) {
	slide, err := ui.deck.Get(slideID)
	if err != nil {
		log.Printf("Failed to apply config, slide is gone: %v", err)
		return
	}
	if slide.Kind != cfg.Kind() {
		log.Printf("Failed to apply %s config to %s slide", cfg.Kind(), slide.Kind)
		return
	}
	slide.Config = cfg
	ui.refreshSlideContent(slide)
	ui.editOverlay.RefreshCards()
	ui.persistDeck()
}

// refreshSlideContent pushes a slide's config into its built widget
func (ui *RootUI) refreshSlideContent(slide *model.Slide) {
	switch cfg := slide.Config.(type) {
	case model.WeatherConfig:
		if card, ok := ui.weatherCards[slide.ID]; ok {
			card.SetShowWind(cfg.ShowWind)
		}
	case model.CustomConfig:
		ui.setEmbedContent(slide.ID, cfg.Title, cfg.URL)
	case model.YouTubeConfig:
		ui.setEmbedContent(slide.ID, cfg.Title, cfg.URL)
	case model.HomeAssistantConfig:
		ui.setEmbedContent(slide.ID, cfg.Title, cfg.URL)
	}
}

func (ui *RootUI) setEmbedContent(slideID, title, rawURL string) {
	if card, ok := ui.embedCards[slideID]; ok {
		card.SetContent(title, rawURL)
	}
}

// Persistence

// persistDeck enqueues the current state for background saving
func (ui *RootUI) persistDeck() {
	ui.saver.Enqueue(ui.snapshot())
}

// snapshot deep-copies the state so the saver can write it off-thread
func (ui *RootUI) snapshot() *store.Snapshot {
	return &store.Snapshot{
		Version: store.FormatVersion,
		Deck:    ui.deck.Clone(),
		Display: ui.display,
	}
}

// onPersistFailure surfaces a failed save without blocking interaction.
// Runs on the saver goroutine.
func (ui *RootUI) onPersistFailure(err error) {
	log.Printf("Failed to persist deck: %v", err)
	fyne.Do(func() {
		ui.showToast(ui.localization.GetText(KeySaveFailed))
	})
}

// showToast shows a transient, non-blocking notification in the top-right
// corner
func (ui *RootUI) showToast(message string) {
	messageLabel := widget.NewLabel(message)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	// Create close button
	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, nil, closeBtn, messageLabel)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.ShowAtPosition(toastPos)

	// Auto-hide after configured time
	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
}

// Weather

// onWeatherUpdate delivers poll results to the weather cards. A failed
// poll keeps the previous report visible; its age marks it stale. Runs on
// the service goroutine.
func (ui *RootUI) onWeatherUpdate(report *weather.Report, err error) {
	fyne.Do(func() {
		if err != nil {
			log.Printf("Weather update failed, keeping last report: %v", err)
		}
		ui.lastReport = report
		for _, card := range ui.weatherCards {
			card.SetReport(report)
		}
	})
}

// locateIfNeeded resolves coordinates by IP when automatic location is on
func (ui *RootUI) locateIfNeeded() {
	if !ui.display.Location.Auto || ui.geocoder == nil {
		return
	}

	go func() {
		place, err := ui.geocoder.Locate(context.Background())
		if err != nil {
			log.Printf("Failed to locate by IP: %v", err)
			return
		}
		fyne.Do(func() {
			ui.onLocated(place)
		})
	}()
}

// onLocated stores an automatic location fix
func (ui *RootUI) onLocated(place *weather.Place) {
	// The user may have switched to manual while the lookup ran.
	if !ui.display.Location.Auto {
		return
	}
	ui.display.Location = model.Location{
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		City:      place.Name,
		Auto:      true,
	}
	if ui.weatherSvc != nil {
		ui.weatherSvc.SetLocation(ui.display.Location)
	}
	ui.persistDeck()
}

// Idle handling

// resetReturnTimer restarts the countdown that brings focus back to the
// clock after inactivity
func (ui *RootUI) resetReturnTimer() {
	if ui.returnTimer != nil {
		ui.returnTimer.Stop()
		ui.returnTimer = nil
	}
	delay := ui.cfg.UI.ReturnToClock
	if delay <= 0 {
		return
	}
	ui.returnTimer = time.AfterFunc(delay, func() {
		fyne.Do(ui.returnToClock)
	})
}

// returnToClock snaps focus back to the first clock slide after an idle
// period. Editing and in-flight transitions are left alone.
func (ui *RootUI) returnToClock() {
	if ui.deck.Mode != model.ModeViewing {
		return
	}
	target := ui.clockIndex()
	if target < 0 || target == ui.deck.FocusedIndex {
		return
	}
	if err := ui.deck.SetFocused(target); err != nil {
		log.Printf("Failed to return to clock: %v", err)
		return
	}
	ui.deckView.SetDragOffset(0)
}

// clockIndex returns the first clock slide, or -1 when none exists
func (ui *RootUI) clockIndex() int {
	for i, slide := range ui.deck.Slides {
		if slide.Kind == model.SlideKindClock {
			return i
		}
	}
	return -1
}
