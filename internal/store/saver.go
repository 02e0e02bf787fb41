package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// Retry constants
const (
	MaxRetries        = 1
	DefaultRetryDelay = 2 * time.Second
)

// ErrPersistenceFailure marks a snapshot that could not be written after
// retrying. In-memory state remains authoritative; callers surface a
// non-blocking notification and carry on.
var ErrPersistenceFailure = errors.New("persistence failure")

// pendingSave is the newest snapshot waiting for the worker
type pendingSave struct {
	seq  uint64
	snap *Snapshot
}

// Saver writes snapshots in the background. Requests are coalesced: only
// the newest pending snapshot is written, sequences only grow, and a write
// for an older sequence never lands over a newer one. Snapshots must be
// immutable once enqueued; callers hand over deep copies taken on the UI
// thread.
type Saver struct {
	store      *Store
	retryDelay time.Duration

	mu      sync.Mutex
	pending *pendingSave
	seq     uint64
	written uint64

	onFailure func(error) // called after retries are exhausted

	wake chan struct{}
}

// NewSaver creates a saver over the given store
func NewSaver(store *Store) *Saver {
	return &Saver{
		store:      store,
		retryDelay: DefaultRetryDelay,
		wake:       make(chan struct{}, 1),
	}
}

// SetFailureCallback sets the callback invoked when a snapshot could not
// be persisted. The callback runs on the saver goroutine; UI work must be
// marshaled by the callback itself.
func (s *Saver) SetFailureCallback(callback func(error)) {
	s.onFailure = callback
}

// SetRetryDelay sets the backoff before the retry attempt
func (s *Saver) SetRetryDelay(delay time.Duration) {
	s.retryDelay = delay
}

// Enqueue registers a snapshot for writing and returns its sequence
// number. Any not-yet-written older snapshot is superseded.
func (s *Saver) Enqueue(snap *Snapshot) uint64 {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.pending = &pendingSave{seq: seq, snap: snap}
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return seq
}

// WrittenSeq returns the highest sequence successfully written
func (s *Saver) WrittenSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written
}

// Run processes save requests until the context is cancelled, then flushes
// any still-pending snapshot so a clean shutdown never loses state
func (s *Saver) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			s.writePending(context.Background())
			return nil
		case <-s.wake:
			s.writePending(ctx)
		}
	}
}

// writePending takes the newest pending snapshot and writes it
func (s *Saver) writePending(ctx context.Context) {
	s.mu.Lock()
	p := s.pending
	s.pending = nil
	s.mu.Unlock()

	if p == nil {
		return
	}

	if err := s.writeWithRetry(ctx, p); err != nil {
		log.Printf("Failed to persist deck (seq %d): %v", p.seq, err)
		if s.onFailure != nil {
			s.onFailure(err)
		}
	}
}

// writeWithRetry attempts the write with one backoff retry. A newer
// pending snapshot supersedes the current one between attempts.
func (s *Saver) writeWithRetry(ctx context.Context, p *pendingSave) error {
	var lastErr error

	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}

			if s.hasNewerPending(p.seq) {
				log.Printf("Skipping retry of deck write seq %d, newer snapshot pending", p.seq)
				return nil
			}
			log.Printf("Retrying deck write, attempt %d", attempt+1)
		}

		if err := s.store.Save(p.snap); err != nil {
			lastErr = err
			log.Printf("Deck write attempt %d failed: %v", attempt+1, err)
			continue
		}

		s.mu.Lock()
		if p.seq > s.written {
			s.written = p.seq
		}
		s.mu.Unlock()
		return nil
	}

	return fmt.Errorf("%w after %d attempts: %v", ErrPersistenceFailure, MaxRetries+1, lastErr)
}

// hasNewerPending reports whether a snapshot newer than seq is waiting
func (s *Saver) hasNewerPending(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil && s.pending.seq > seq
}
