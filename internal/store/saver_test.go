package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndot/ndot-clock/internal/model"
)

func TestSaverCoalescesToNewest(t *testing.T) {
	s := New(t.TempDir())
	saver := NewSaver(s)

	old := DefaultSnapshot()
	mid := testSnapshot(t)
	newest := testSnapshot(t)
	newest.Display.Brightness = 0.4

	saver.Enqueue(old)
	saver.Enqueue(mid)
	seq := saver.Enqueue(newest)

	saver.writePending(context.Background())

	assert.Equal(t, seq, saver.WrittenSeq())
	got := s.Load()
	assert.InDelta(t, 0.4, got.Display.Brightness, 1e-9, "only the newest snapshot is written")
}

func TestSaverSequencesOnlyGrow(t *testing.T) {
	s := New(t.TempDir())
	saver := NewSaver(s)

	first := saver.Enqueue(DefaultSnapshot())
	second := saver.Enqueue(DefaultSnapshot())

	require.Greater(t, second, first)

	saver.writePending(context.Background())
	assert.Equal(t, second, saver.WrittenSeq())

	// A drained queue writes nothing and the watermark stays put
	saver.writePending(context.Background())
	assert.Equal(t, second, saver.WrittenSeq())
}

func TestSaverRetriesThenNotifies(t *testing.T) {
	// Point the store into a directory that does not exist so every write
	// attempt fails.
	s := New(filepath.Join(t.TempDir(), "gone"))
	saver := NewSaver(s)
	saver.SetRetryDelay(5 * time.Millisecond)

	var got error
	saver.SetFailureCallback(func(err error) { got = err })

	saver.Enqueue(DefaultSnapshot())
	saver.writePending(context.Background())

	require.Error(t, got)
	assert.True(t, errors.Is(got, ErrPersistenceFailure), "callback error should carry the persistence kind")
	assert.Equal(t, uint64(0), saver.WrittenSeq())
}

func TestSaverRecoversAfterFailure(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "deck")
	s := New(target)
	saver := NewSaver(s)
	saver.SetRetryDelay(5 * time.Millisecond)

	var failures int
	saver.SetFailureCallback(func(error) { failures++ })

	saver.Enqueue(DefaultSnapshot())
	saver.writePending(context.Background())
	require.Equal(t, 1, failures, "missing directory should fail the write")

	// Once the directory exists the next snapshot lands. In-memory state
	// stayed authoritative throughout.
	require.NoError(t, os.MkdirAll(target, 0o755))
	want := testSnapshot(t)
	saver.Enqueue(want)
	saver.writePending(context.Background())

	assert.Equal(t, 1, failures)
	got := s.Load()
	assert.Equal(t, want.Deck.Len(), got.Deck.Len())
}

func TestSaverRunFlushesOnShutdown(t *testing.T) {
	s := New(t.TempDir())
	saver := NewSaver(s)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- saver.Run(ctx) }()

	seq := saver.Enqueue(testSnapshot(t))

	require.Eventually(t, func() bool {
		return saver.WrittenSeq() == seq
	}, 2*time.Second, 10*time.Millisecond, "run loop should pick up the enqueued snapshot")

	// A snapshot enqueued right before shutdown is still flushed
	final := testSnapshot(t)
	final.Display.ShowSeconds = true
	finalSeq := saver.Enqueue(final)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, finalSeq, saver.WrittenSeq())
	got := s.Load()
	assert.True(t, got.Display.ShowSeconds)
}

func TestDeckCloneIsIndependent(t *testing.T) {
	deck := model.NewDeck()
	_, err := deck.Insert(model.SlideKindClock, nil, 0)
	require.NoError(t, err)
	_, err = deck.Insert(model.SlideKindCustom, model.CustomConfig{URL: "https://example.org"}, 1)
	require.NoError(t, err)

	clone := deck.Clone()
	require.NoError(t, deck.Remove(deck.Slides[1].ID))

	assert.Equal(t, 1, deck.Len())
	assert.Equal(t, 2, clone.Len(), "clone must not observe later mutations")
}
