package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndot/ndot-clock/internal/model"
)

func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	deck := model.NewDeck()
	_, err := deck.Insert(model.SlideKindClock, nil, 0)
	require.NoError(t, err)
	_, err = deck.Insert(model.SlideKindWeather, model.WeatherConfig{ShowWind: true}, 1)
	require.NoError(t, err)
	_, err = deck.Insert(model.SlideKindYouTube, model.YouTubeConfig{URL: "https://youtu.be/x", VideoID: "x", Title: "clip"}, 2)
	require.NoError(t, err)
	require.NoError(t, deck.SetFocused(1))

	display := model.DefaultDisplaySettings()
	display.Brightness = 0.6
	display.Language = model.LanguageRussian
	display.Location = model.Location{Latitude: 38.72, Longitude: -9.14, City: "Lisbon"}

	return &Snapshot{Version: FormatVersion, Deck: deck, Display: display}
}

func TestStoreLoadMissingFile(t *testing.T) {
	s := New(t.TempDir())

	snap := s.Load()

	require.NotNil(t, snap.Deck)
	assert.Equal(t, 1, snap.Deck.Len())
	assert.Equal(t, model.SlideKindClock, snap.Deck.Slides[0].Kind)
	assert.Equal(t, 0, snap.Deck.FocusedIndex)
	assert.Equal(t, model.DefaultDisplaySettings(), snap.Display)
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	want := testSnapshot(t)

	require.NoError(t, s.Save(want))
	got := s.Load()

	require.Equal(t, want.Deck.Len(), got.Deck.Len())
	for i, wantSlide := range want.Deck.All() {
		gotSlide := got.Deck.All()[i]
		assert.Equal(t, wantSlide.ID, gotSlide.ID, "slide %d id", i)
		assert.Equal(t, wantSlide.Kind, gotSlide.Kind, "slide %d kind", i)
		assert.Equal(t, wantSlide.Position, gotSlide.Position, "slide %d position", i)
		assert.Equal(t, wantSlide.Config, gotSlide.Config, "slide %d config", i)
	}
	assert.Equal(t, want.Deck.FocusedIndex, got.Deck.FocusedIndex)
	assert.Equal(t, want.Display, got.Display)
	assert.Equal(t, FormatVersion, got.Version)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	snap := s.Load()

	assert.Equal(t, 1, snap.Deck.Len())
	assert.Equal(t, model.SlideKindClock, snap.Deck.Slides[0].Kind)
}

func TestStoreLoadEmptyDeck(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"version":1,"deck":{"slides":[],"focused_index":0}}`), 0o644))

	snap := s.Load()

	assert.Equal(t, 1, snap.Deck.Len(), "empty deck falls back to the default clock slide")
}

func TestStoreLoadRepairsInvariants(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	raw := `{
  "version": 1,
  "deck": {
    "focused_index": 11,
    "slides": [
      {"id": "b", "kind": "weather", "position": 9, "config": {"show_wind": false}},
      {"id": "a", "kind": "clock", "position": 2, "config": {}}
    ]
  },
  "display": {"brightness": 7.0, "language": "zz"}
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	snap := s.Load()

	require.Equal(t, 2, snap.Deck.Len())
	assert.Equal(t, "a", snap.Deck.Slides[0].ID, "slides sorted by stored position")
	assert.Equal(t, 0, snap.Deck.Slides[0].Position)
	assert.Equal(t, 1, snap.Deck.Slides[1].Position)
	assert.Equal(t, 1, snap.Deck.FocusedIndex, "focus clamped into range")
	assert.Equal(t, model.MaxBrightness, snap.Display.Brightness)
	assert.Equal(t, model.LanguageEnglish, snap.Display.Language)
}

func TestStoreSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	require.NoError(t, s.Save(testSnapshot(t)))

	_, err := os.Stat(s.Path() + TempFileSuffix)
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreSaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	first := testSnapshot(t)
	require.NoError(t, s.Save(first))

	second := testSnapshot(t)
	second.Display.Brightness = 0.3
	require.NoError(t, s.Save(second))

	got := s.Load()
	assert.InDelta(t, 0.3, got.Display.Brightness, 1e-9)
	assert.NotEqual(t, first.Deck.Slides[0].ID, got.Deck.Slides[0].ID)
}

func TestStorePathInsideDir(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	assert.Equal(t, filepath.Join(dir, DeckFileName), s.Path())
}
