package virt

import "math"

// Window is the inclusive index range [First, Last] to materialize. It is
// derived state: recomputed from the viewport inputs on every change, never
// stored as a source of truth.
type Window struct {
	First int
	Last  int
}

// EmptyWindow is the canonical empty range.
var EmptyWindow = Window{First: 0, Last: -1}

// Empty reports whether the window contains no indices.
func (w Window) Empty() bool {
	return w.Last < w.First
}

// Len returns the number of indices in the window.
func (w Window) Len() int {
	if w.Empty() {
		return 0
	}
	return w.Last - w.First + 1
}

// Contains reports whether index i falls inside the window.
func (w Window) Contains(i int) bool {
	return i >= w.First && i <= w.Last
}

// PositionedItem is one materialized item with its absolute offset along the
// primary axis. Cross-axis extent is always fill-parent. Positioned items are
// ephemeral: rebuilt on every recomputation and never retained.
type PositionedItem struct {
	Index   int
	Offset  float64
	Content string
}

// ComputeWindow derives the index window to materialize.
//
// startIndex = floor(scrollOffset / itemExtent); the window extends overscan
// items before it and visibleCount+overscan items after, clamped to
// [0, datasetLen-1]. Degenerate inputs (unknown item extent, empty dataset,
// start index past the end) yield an empty window rather than an error. The
// calculator does not clamp scrollOffset itself; that is the hosting
// surface's responsibility.
func ComputeWindow(scrollOffset, itemExtent float64, visibleCount, overscan, datasetLen int) Window {
	if itemExtent <= 0 || datasetLen <= 0 {
		return EmptyWindow
	}
	start := int(math.Floor(scrollOffset / itemExtent))
	if start >= datasetLen {
		return EmptyWindow
	}
	first := start - overscan
	if first < 0 {
		first = 0
	}
	last := start + visibleCount + overscan
	if last > datasetLen-1 {
		last = datasetLen - 1
	}
	if last < first {
		return EmptyWindow
	}
	return Window{First: first, Last: last}
}

// Materialize invokes render for every index in the window and attaches the
// absolute offset index*itemExtent to each result. It is pure and idempotent;
// an empty window produces no renderer invocations.
func Materialize[T any](src Source[T], w Window, itemExtent float64, render RenderFunc[T]) []PositionedItem {
	if w.Empty() || src == nil || render == nil {
		return nil
	}
	items := make([]PositionedItem, 0, w.Len())
	for i := w.First; i <= w.Last; i++ {
		items = append(items, PositionedItem{
			Index:   i,
			Offset:  float64(i) * itemExtent,
			Content: render(src.At(i), i),
		})
	}
	return items
}
