package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ndot/ndot-clock/internal/model"
)

type fakeTimer struct {
	fire    func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return true
}

// gestureHarness drives the controller with scripted pointer events, a
// manual clock and a manually fired long-press timer.
type gestureHarness struct {
	controller *GestureController

	mode     model.Mode
	focused  int
	count    int
	viewport float32
	slot     float32

	dragOffsets    []float32
	commits        []int
	snapBacks      int
	toggles        int
	configs        []int
	reorderStarts  []int
	reorderSteps   [][2]int
	reorderCommits int
	reorderCancels int

	timers []*fakeTimer
	clock  time.Time
}

func newGestureHarness() *gestureHarness {
	h := &gestureHarness{
		mode:     model.ModeViewing,
		focused:  1,
		count:    3,
		viewport: 400,
		slot:     100,
		clock:    time.Unix(1700000000, 0),
	}
	h.controller = NewGestureController(GestureCallbacks{
		Mode:          func() model.Mode { return h.mode },
		FocusedIndex:  func() int { return h.focused },
		SlideCount:    func() int { return h.count },
		ViewportWidth: func() float32 { return h.viewport },
		SlotWidth:     func() float32 { return h.slot },
		OnDragMove: func(offset float32) {
			h.dragOffsets = append(h.dragOffsets, offset)
		},
		OnNavigateCommit: func(target int, velocity float32) {
			h.commits = append(h.commits, target)
		},
		OnNavigateSnapBack: func(velocity float32) {
			h.snapBacks++
		},
		OnToggleEditMode: func() {
			h.toggles++
		},
		OnOpenSlideConfig: func(index int) {
			h.configs = append(h.configs, index)
		},
		OnReorderStart: func(index int) {
			h.reorderStarts = append(h.reorderStarts, index)
		},
		OnReorderStep: func(from, to int) {
			h.reorderSteps = append(h.reorderSteps, [2]int{from, to})
		},
		OnReorderCommit: func() {
			h.reorderCommits++
		},
		OnReorderCancel: func() {
			h.reorderCancels++
		},
	})
	h.controller.schedule = func(d time.Duration, fire func()) gestureTimer {
		timer := &fakeTimer{fire: fire}
		h.timers = append(h.timers, timer)
		return timer
	}
	h.controller.now = func() time.Time { return h.clock }
	return h
}

func (h *gestureHarness) advance(d time.Duration) {
	h.clock = h.clock.Add(d)
}

// fireLastTimer invokes the scheduled long-press callback even if the timer
// was stopped, simulating a fire already in flight when it was invalidated.
func (h *gestureHarness) fireLastTimer() {
	if n := len(h.timers); n > 0 {
		h.timers[n-1].fire()
	}
}

func pos(x, y float32) fyne.Position {
	return fyne.NewPos(x, y)
}

func TestGestureTapInViewingModeIsNoOp(t *testing.T) {
	h := newGestureHarness()

	h.controller.PointerDown(pos(100, 100), PressSlideBody, 1)
	h.controller.PointerUp(pos(102, 101))

	if h.controller.State() != GestureIdle {
		t.Fatalf("expected idle state, got %v", h.controller.State())
	}
	if h.toggles != 0 || len(h.configs) != 0 || len(h.commits) != 0 || h.snapBacks != 0 {
		t.Errorf("tap in viewing mode should emit nothing, got %+v", h)
	}
}

func TestGestureLongPressTogglesEditMode(t *testing.T) {
	h := newGestureHarness()

	h.controller.PointerDown(pos(100, 100), PressSlideBody, 1)
	h.fireLastTimer()

	if h.toggles != 1 {
		t.Fatalf("expected 1 edit toggle, got %d", h.toggles)
	}
	if h.controller.State() != GestureIdle {
		t.Errorf("press must be consumed after long-press, state %v", h.controller.State())
	}

	// The release that ends the consumed press emits nothing more.
	h.controller.PointerUp(pos(100, 100))
	if h.toggles != 1 || len(h.configs) != 0 {
		t.Errorf("release after long-press should be absorbed")
	}
}

func TestGestureLongPressNeverFiresAfterMove(t *testing.T) {
	h := newGestureHarness()

	h.controller.PointerDown(pos(100, 100), PressSlideBody, 1)
	h.controller.PointerMove(pos(112, 100))

	if !h.timers[0].stopped {
		t.Error("move past threshold must stop the long-press timer")
	}

	// Even a fire that was already in flight must be dropped.
	h.fireLastTimer()
	if h.toggles != 0 {
		t.Fatalf("long-press fired after invalidation, %d toggles", h.toggles)
	}
}

func TestGestureLongPressNeverFiresAfterRelease(t *testing.T) {
	h := newGestureHarness()

	h.controller.PointerDown(pos(100, 100), PressSlideBody, 1)
	h.controller.PointerUp(pos(100, 100))
	h.fireLastTimer()

	if h.toggles != 0 {
		t.Fatalf("long-press fired after release, %d toggles", h.toggles)
	}
}

func TestGestureLongPressNeverFiresAfterCancel(t *testing.T) {
	h := newGestureHarness()

	h.controller.PointerDown(pos(100, 100), PressSlideBody, 1)
	h.controller.PointerCancel()
	h.fireLastTimer()

	if h.toggles != 0 {
		t.Fatalf("long-press fired after cancel, %d toggles", h.toggles)
	}
}

func TestGestureDragCommitsPastThreshold(t *testing.T) {
	h := newGestureHarness()

	// 0.31 of a 400 px viewport: one slide forward, exactly one.
	h.controller.PointerDown(pos(200, 100), PressSlideBody, 1)
	h.controller.PointerMove(pos(76, 100))
	h.controller.PointerUp(pos(76, 100))

	if len(h.commits) != 1 || h.commits[0] != 2 {
		t.Fatalf("expected single commit to index 2, got %v", h.commits)
	}
	if h.snapBacks != 0 {
		t.Errorf("expected no snap back, got %d", h.snapBacks)
	}
	if len(h.dragOffsets) == 0 || h.dragOffsets[len(h.dragOffsets)-1] != -124 {
		t.Errorf("expected drag offset -124, got %v", h.dragOffsets)
	}
}

func TestGestureDragCommitThresholdIsInclusive(t *testing.T) {
	h := newGestureHarness()

	// Exactly 0.30 of 400 px.
	h.controller.PointerDown(pos(200, 100), PressSlideBody, 1)
	h.controller.PointerMove(pos(80, 100))
	h.controller.PointerUp(pos(80, 100))

	if len(h.commits) != 1 || h.commits[0] != 2 {
		t.Fatalf("release at the exact threshold must commit, got %v", h.commits)
	}
}

func TestGestureDragBelowThresholdSnapsBack(t *testing.T) {
	h := newGestureHarness()

	h.controller.PointerDown(pos(200, 100), PressSlideBody, 1)
	h.controller.PointerMove(pos(100, 100))
	h.controller.PointerUp(pos(100, 100))

	if h.snapBacks != 1 {
		t.Fatalf("expected snap back, got %d", h.snapBacks)
	}
	if len(h.commits) != 0 {
		t.Errorf("expected no commit, got %v", h.commits)
	}
}

func TestGestureDragBackwardCommits(t *testing.T) {
	h := newGestureHarness()

	h.controller.PointerDown(pos(200, 100), PressSlideBody, 1)
	h.controller.PointerMove(pos(330, 100))
	h.controller.PointerUp(pos(330, 100))

	if len(h.commits) != 1 || h.commits[0] != 0 {
		t.Fatalf("expected commit to index 0, got %v", h.commits)
	}
}

func TestGestureFlingCommitsBelowOffsetThreshold(t *testing.T) {
	h := newGestureHarness()

	h.controller.PointerDown(pos(200, 100), PressSlideBody, 1)
	for _, x := range []float32{190, 180, 170, 160} {
		h.advance(10 * time.Millisecond)
		h.controller.PointerMove(pos(x, 100))
	}
	h.advance(10 * time.Millisecond)
	h.controller.PointerUp(pos(150, 100))

	// Offset is only 50 px but the release velocity is ~1000 px/s.
	if len(h.commits) != 1 || h.commits[0] != 2 {
		t.Fatalf("expected fling commit to index 2, got %v (snapBacks %d)", h.commits, h.snapBacks)
	}
}

func TestGestureFlingAgainstDragSnapsBack(t *testing.T) {
	h := newGestureHarness()

	// Drag left, then flick back right before release.
	h.controller.PointerDown(pos(200, 100), PressSlideBody, 1)
	for _, x := range []float32{120, 130, 150, 170} {
		h.advance(10 * time.Millisecond)
		h.controller.PointerMove(pos(x, 100))
	}
	h.advance(10 * time.Millisecond)
	h.controller.PointerUp(pos(185, 100))

	if h.snapBacks != 1 || len(h.commits) != 0 {
		t.Fatalf("opposing fling must snap back, got commits %v snapBacks %d", h.commits, h.snapBacks)
	}
}

func TestGestureNoWraparound(t *testing.T) {
	h := newGestureHarness()

	h.focused = 0
	h.controller.PointerDown(pos(100, 100), PressSlideBody, 0)
	h.controller.PointerMove(pos(300, 100))
	h.controller.PointerUp(pos(300, 100))
	if len(h.commits) != 0 || h.snapBacks != 1 {
		t.Fatalf("drag before first slide must snap back, got %v", h.commits)
	}

	h.focused = 2
	h.controller.PointerDown(pos(300, 100), PressSlideBody, 2)
	h.controller.PointerMove(pos(100, 100))
	h.controller.PointerUp(pos(100, 100))
	if len(h.commits) != 0 || h.snapBacks != 2 {
		t.Fatalf("drag past last slide must snap back, got %v", h.commits)
	}
}

func TestGestureSingleSlideAlwaysSnapsBack(t *testing.T) {
	h := newGestureHarness()
	h.count = 1
	h.focused = 0

	h.controller.PointerDown(pos(200, 100), PressSlideBody, 0)
	h.controller.PointerMove(pos(10, 100))
	h.controller.PointerUp(pos(10, 100))

	if len(h.commits) != 0 || h.snapBacks != 1 {
		t.Fatalf("single-slide deck must snap back, got commits %v", h.commits)
	}
}

func TestGestureEditModeTapOpensSlideConfig(t *testing.T) {
	h := newGestureHarness()
	h.mode = model.ModeEdit

	h.controller.PointerDown(pos(100, 100), PressSlideBody, 2)
	h.controller.PointerUp(pos(101, 100))

	if len(h.configs) != 1 || h.configs[0] != 2 {
		t.Fatalf("expected config open for slide 2, got %v", h.configs)
	}
}

func TestGestureEditModeHandleDragReorders(t *testing.T) {
	h := newGestureHarness()
	h.mode = model.ModeEdit
	h.count = 4

	h.controller.PointerDown(pos(100, 100), PressDragHandle, 1)
	h.controller.PointerMove(pos(110, 100))

	if len(h.reorderStarts) != 1 || h.reorderStarts[0] != 1 {
		t.Fatalf("expected reorder start at index 1, got %v", h.reorderStarts)
	}
	if len(h.reorderSteps) != 0 {
		t.Fatalf("no midpoint crossed yet, got steps %v", h.reorderSteps)
	}

	// Crossing one midpoint right, then another, then dragging back home
	// and past it to the front.
	h.controller.PointerMove(pos(160, 100))
	h.controller.PointerMove(pos(290, 100))
	h.controller.PointerMove(pos(40, 100))
	h.controller.PointerUp(pos(40, 100))

	want := [][2]int{{1, 2}, {2, 3}, {3, 2}, {2, 1}, {1, 0}}
	if len(h.reorderSteps) != len(want) {
		t.Fatalf("expected steps %v, got %v", want, h.reorderSteps)
	}
	for i, step := range want {
		if h.reorderSteps[i] != step {
			t.Fatalf("step %d: expected %v, got %v", i, step, h.reorderSteps[i])
		}
	}
	if h.reorderCommits != 1 || h.reorderCancels != 0 {
		t.Errorf("expected commit without cancel, got %d/%d", h.reorderCommits, h.reorderCancels)
	}
}

func TestGestureEditModeReorderClampsToEnds(t *testing.T) {
	h := newGestureHarness()
	h.mode = model.ModeEdit
	h.count = 3

	h.controller.PointerDown(pos(100, 100), PressDragHandle, 1)
	h.controller.PointerMove(pos(900, 100))
	h.controller.PointerUp(pos(900, 100))

	want := [][2]int{{1, 2}}
	if len(h.reorderSteps) != 1 || h.reorderSteps[0] != want[0] {
		t.Fatalf("drag past the end must clamp to the last slot, got %v", h.reorderSteps)
	}
}

func TestGestureEditModeReorderCancelReverts(t *testing.T) {
	h := newGestureHarness()
	h.mode = model.ModeEdit
	h.count = 4

	h.controller.PointerDown(pos(100, 100), PressDragHandle, 1)
	h.controller.PointerMove(pos(160, 100))
	h.controller.PointerCancel()

	if h.reorderCancels != 1 || h.reorderCommits != 0 {
		t.Fatalf("cancel mid-reorder must revert, got %d/%d", h.reorderCancels, h.reorderCommits)
	}
}

func TestGestureEditModeBodyDragIsAbsorbed(t *testing.T) {
	h := newGestureHarness()
	h.mode = model.ModeEdit

	h.controller.PointerDown(pos(100, 100), PressSlideBody, 1)
	h.controller.PointerMove(pos(180, 100))
	h.controller.PointerUp(pos(180, 100))

	if len(h.dragOffsets) != 0 || len(h.reorderStarts) != 0 {
		t.Errorf("edit-mode body drag must not navigate or reorder")
	}
	if len(h.configs) != 0 {
		t.Errorf("a moved press must not count as a tap")
	}
	if h.controller.State() != GestureIdle {
		t.Errorf("expected idle state, got %v", h.controller.State())
	}
}

func TestGestureOutOfOrderEventsAbsorbed(t *testing.T) {
	h := newGestureHarness()

	// Orphan move and release while idle.
	h.controller.PointerMove(pos(100, 100))
	h.controller.PointerUp(pos(100, 100))
	if h.controller.State() != GestureIdle {
		t.Fatalf("orphan events must leave the controller idle")
	}

	// A second down during an active press is ignored.
	h.controller.PointerDown(pos(300, 100), PressSlideBody, 1)
	h.controller.PointerDown(pos(100, 100), PressSlideBody, 2)
	if h.controller.State() != GesturePressed {
		t.Fatalf("expected pressed state, got %v", h.controller.State())
	}

	// The original press still resolves normally against its own origin.
	h.controller.PointerMove(pos(150, 100))
	h.controller.PointerUp(pos(150, 100))
	if len(h.commits) != 1 || h.commits[0] != 2 {
		t.Fatalf("expected the first press to drive navigation, got %v", h.commits)
	}
	if h.toggles != 0 && len(h.configs) != 0 {
		t.Errorf("ignored down must not emit events")
	}
}

func TestGestureCancelDuringNavigateSnapsBack(t *testing.T) {
	h := newGestureHarness()

	h.controller.PointerDown(pos(200, 100), PressSlideBody, 1)
	h.controller.PointerMove(pos(60, 100))
	h.controller.PointerCancel()

	if h.snapBacks != 1 || len(h.commits) != 0 {
		t.Fatalf("cancel mid-drag must snap back, got commits %v", h.commits)
	}
	if h.controller.State() != GestureIdle {
		t.Errorf("expected idle state after cancel, got %v", h.controller.State())
	}
}

func TestGestureStateString(t *testing.T) {
	tests := []struct {
		state GestureState
		want  string
	}{
		{GestureIdle, "idle"},
		{GesturePressed, "pressed"},
		{GestureDragNavigate, "drag-navigate"},
		{GestureDragReorder, "drag-reorder"},
		{GestureState(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("GestureState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
