// Package virt implements windowed rendering ("virtualization") for large,
// linearly-ordered collections inside a scrollable viewport: given a scroll
// offset and a fixed per-item extent, it computes the minimal contiguous index
// range that must be materialized and the absolute position of each
// materialized item along the scroll axis.
//
// The package is split into two cooperating parts: the pure range calculator
// (ComputeWindow, Materialize) and the Tracker, which owns the observed scroll
// offset and viewport extent and keeps them correct across scroll and resize
// events delivered by the hosting surface.
package virt

// Axis selects the primary (scrolling) axis.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns the config-file spelling of the axis.
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

const (
	// DefaultVisibleCount is used by resize reconciliation when no visible
	// count is configured and no item extent has been established yet.
	DefaultVisibleCount = 7

	// DefaultOverscan is the number of extra items rendered beyond the
	// visible window on each side.
	DefaultOverscan = 2
)

// Config holds the caller-supplied virtualization parameters.
//
// VisibleCount forces the item extent to viewportExtent/VisibleCount when
// positive; when zero the item extent must be supplied directly via
// Tracker.SetItemExtent.
type Config struct {
	VisibleCount int
	Overscan     int
	Direction    Axis
}

// Source is an ordered, randomly-indexable dataset. It must be immutable for
// the duration of a single recompute cycle.
type Source[T any] interface {
	Len() int
	At(i int) T
}

// RenderFunc turns one dataset item into an opaque renderable. Any sizing the
// renderer applies along the primary axis is overridden by the computed item
// extent so that materialized items stay contiguous.
type RenderFunc[T any] func(item T, index int) string
