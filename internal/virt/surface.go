package virt

// Surface exposes the hosting scroll container's geometry and scroll
// primitives. All calls are synchronous; a false ok from Extent means the
// surface is not attached (or its geometry cannot be read) and the caller
// must retain prior state.
type Surface interface {
	// Extent returns the viewport extent along the given axis.
	Extent(axis Axis) (float64, bool)
	// ScrollOffset returns the current scroll position along the axis.
	ScrollOffset(axis Axis) float64
	// SetScrollOffset commands the surface to a new scroll position. The
	// surface may report the move back as a reflexive scroll notification.
	SetScrollOffset(axis Axis, offset float64)
}

// Handle identifies a scheduled, not-yet-fired frame callback. Cancel is a
// no-op once the callback has fired.
type Handle interface {
	Cancel()
}

// Scheduler is the hosting environment's per-frame callback primitive. At
// most one callback of each kind is pending at a time; scheduling a
// replacement cancels the previous handle.
type Scheduler interface {
	Schedule(fn func()) Handle
}

// ScrollSubscriber registers fn to receive raw scroll offsets from the
// hosting surface and returns the matching unsubscribe function.
type ScrollSubscriber func(fn func(offset float64)) (cancel func())

// ResizeSubscriber registers fn to receive viewport resize notifications and
// returns the matching unsubscribe function.
type ResizeSubscriber func(fn func()) (cancel func())
