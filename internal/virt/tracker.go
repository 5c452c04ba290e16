package virt

import (
	"math"
	"time"
)

// settleWindow is how long scroll notifications stay suppressed after a
// resize reconciliation commits. The corrective SetScrollOffset issued during
// reconciliation echoes back as a reflexive scroll event; handling it would
// recompute the range with stale geometry. Suppression ends early once the
// echoed offset matches the commanded value.
const settleWindow = 100 * time.Millisecond

// offsetEpsilon is the tolerance when matching an echoed scroll offset
// against the commanded one.
const offsetEpsilon = 0.5

type phase int

const (
	phaseIdle phase = iota
	phaseScrollPending
	phaseResizePending
)

// Tracker owns the observed scroll offset and viewport extent along the
// primary axis. Scroll and resize notifications are coalesced to at most one
// committed state update per rendering frame through the injected Scheduler;
// a resize reconciliation in flight holds exclusive priority over scroll
// coalescing.
//
// Tracker is single-goroutine: the hosting surface, the scheduler, and all
// notification callbacks must run on the same goroutine, so exclusion needs
// only a phase flag plus handle cancellation, never a lock.
type Tracker struct {
	cfg     Config
	surface Surface
	sched   Scheduler
	now     func() time.Time

	// Authoritative state. Everything else (item extent, render window) is
	// recomputed from these on demand.
	scrollOffset   float64
	viewportExtent float64

	// suppliedExtent is the directly supplied item extent, used only when
	// cfg.VisibleCount is absent. Zero means unknown.
	suppliedExtent float64

	phase         phase
	pendingScroll Handle
	pendingResize Handle
	pendingOffset float64

	settleUntil time.Time
	commanded   float64

	// Echo observed while a reconciliation was in flight. Surfaces that apply
	// a commanded offset synchronously report it back before reconcile
	// returns; the settle window is skipped when that echo already confirmed
	// the commanded value.
	echoSeen   bool
	echoOffset float64

	unsubScroll func()
	unsubResize func()
}

// NewTracker builds a tracker and reads the initial viewport extent from the
// surface. A surface that cannot be read yet leaves the extent at zero; the
// first resize reconciliation establishes it.
func NewTracker(cfg Config, surface Surface, sched Scheduler) *Tracker {
	t := &Tracker{
		cfg:     cfg,
		surface: surface,
		sched:   sched,
		now:     time.Now,
	}
	if surface != nil {
		if extent, ok := surface.Extent(cfg.Direction); ok {
			t.viewportExtent = extent
		}
		t.scrollOffset = surface.ScrollOffset(cfg.Direction)
		if t.scrollOffset < 0 {
			t.scrollOffset = 0
		}
	}
	return t
}

// Attach subscribes the tracker to the hosting surface's scroll and resize
// notifications. A previous attachment is released first.
func (t *Tracker) Attach(scroll ScrollSubscriber, resize ResizeSubscriber) {
	t.Detach()
	if scroll != nil {
		t.unsubScroll = scroll(t.OnScroll)
	}
	if resize != nil {
		t.unsubResize = resize(t.OnResize)
	}
}

// Detach unsubscribes from the hosting surface and cancels any pending frame
// callbacks. Safe to call when never attached.
func (t *Tracker) Detach() {
	if t.unsubScroll != nil {
		t.unsubScroll()
		t.unsubScroll = nil
	}
	if t.unsubResize != nil {
		t.unsubResize()
		t.unsubResize = nil
	}
	if t.pendingScroll != nil {
		t.pendingScroll.Cancel()
		t.pendingScroll = nil
	}
	if t.pendingResize != nil {
		t.pendingResize.Cancel()
		t.pendingResize = nil
	}
	t.phase = phaseIdle
}

// OnScroll accepts a raw scroll offset from the hosting surface. Bursts
// within one frame collapse to the latest value; signals arriving during an
// in-flight or just-committed resize are discarded, not queued.
func (t *Tracker) OnScroll(raw float64) {
	if t.sched == nil {
		return
	}
	if t.phase == phaseResizePending {
		t.echoSeen = true
		t.echoOffset = raw
		return
	}
	if t.now().Before(t.settleUntil) {
		if math.Abs(raw-t.commanded) <= offsetEpsilon {
			// Reflexive echo of our own corrective scroll confirmed;
			// end the settle window early.
			t.settleUntil = time.Time{}
		}
		return
	}
	t.pendingOffset = raw
	if t.pendingScroll != nil {
		t.pendingScroll.Cancel()
	}
	t.phase = phaseScrollPending
	t.pendingScroll = t.sched.Schedule(t.commitScroll)
}

func (t *Tracker) commitScroll() {
	t.pendingScroll = nil
	if t.phase != phaseScrollPending {
		return
	}
	offset := t.pendingOffset
	if offset < 0 {
		offset = 0
	}
	t.scrollOffset = offset
	t.phase = phaseIdle
}

// OnResize schedules a resize reconciliation for the next frame, replacing
// any pending reconciliation and discarding any pending scroll commit.
func (t *Tracker) OnResize() {
	if t.sched == nil {
		return
	}
	if t.pendingScroll != nil {
		t.pendingScroll.Cancel()
		t.pendingScroll = nil
	}
	if t.pendingResize != nil {
		t.pendingResize.Cancel()
	}
	t.phase = phaseResizePending
	t.pendingResize = t.sched.Schedule(t.reconcile)
}

// reconcile re-derives viewport state after a geometry change so the item at
// the viewport's leading edge stays there. Order matters: the fractional
// index is captured against the old geometry before anything is re-measured.
func (t *Tracker) reconcile() {
	t.pendingResize = nil
	if t.phase != phaseResizePending {
		return
	}
	// The phase stays resizePending until the commit below so the reflexive
	// scroll echo from SetScrollOffset is discarded, not re-scheduled.
	defer func() { t.phase = phaseIdle }()
	if t.surface == nil {
		return
	}

	t.echoSeen = false

	virtualIndex := 0.0
	if extent := t.ItemExtent(); extent > 0 {
		virtualIndex = t.scrollOffset / extent
	}

	newViewport, ok := t.surface.Extent(t.cfg.Direction)
	if !ok {
		// Surface detached or unreadable: retain prior state untouched.
		return
	}

	visible := t.cfg.VisibleCount
	if visible <= 0 {
		visible = DefaultVisibleCount
	}
	newItem := newViewport / float64(visible)
	newOffset := virtualIndex * newItem

	t.surface.SetScrollOffset(t.cfg.Direction, newOffset)

	t.viewportExtent = newViewport
	if t.cfg.VisibleCount <= 0 {
		t.suppliedExtent = newItem
	}
	t.scrollOffset = newOffset
	t.commanded = newOffset
	if t.echoSeen && math.Abs(t.echoOffset-newOffset) <= offsetEpsilon {
		t.settleUntil = time.Time{}
		return
	}
	t.settleUntil = t.now().Add(settleWindow)
}

// SetItemExtent supplies the item extent directly. Only meaningful when no
// visible count is configured; ignored otherwise.
func (t *Tracker) SetItemExtent(extent float64) {
	if t.cfg.VisibleCount > 0 || extent <= 0 {
		return
	}
	t.suppliedExtent = extent
}

// ItemExtent returns the current item extent along the primary axis, derived
// from the viewport extent when a visible count is configured. Zero means
// unknown (no successful measurement yet).
func (t *Tracker) ItemExtent() float64 {
	if t.cfg.VisibleCount > 0 {
		if t.viewportExtent <= 0 {
			return 0
		}
		return t.viewportExtent / float64(t.cfg.VisibleCount)
	}
	return t.suppliedExtent
}

// ScrollOffset returns the committed scroll offset.
func (t *Tracker) ScrollOffset() float64 {
	return t.scrollOffset
}

// ViewportExtent returns the committed viewport extent.
func (t *Tracker) ViewportExtent() float64 {
	return t.viewportExtent
}

// VisibleCount returns the configured visible count, or the count implied by
// the viewport and item extents when none is configured.
func (t *Tracker) VisibleCount() int {
	if t.cfg.VisibleCount > 0 {
		return t.cfg.VisibleCount
	}
	extent := t.ItemExtent()
	if extent <= 0 || t.viewportExtent <= 0 {
		return 0
	}
	return int(math.Ceil(t.viewportExtent / extent))
}

// Window recomputes the render window for a dataset of the given length from
// the committed viewport state.
func (t *Tracker) Window(datasetLen int) Window {
	return ComputeWindow(t.scrollOffset, t.ItemExtent(), t.VisibleCount(), t.cfg.Overscan, datasetLen)
}

// Idle reports whether no scroll or resize commit is pending.
func (t *Tracker) Idle() bool {
	return t.phase == phaseIdle
}
