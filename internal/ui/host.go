package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/vlist/internal/virt"
)

// frameMsg fires pending frame callbacks.
type frameMsg struct{}

const frameInterval = time.Second / 60

type frameCallback struct {
	fn       func()
	canceled bool
}

func (c *frameCallback) Cancel() { c.canceled = true }

// frameScheduler implements virt.Scheduler on top of bubbletea ticks.
// Schedule queues a callback; the owning model issues tickCmd while the queue
// is non-empty and calls fire when the tick's frameMsg arrives.
type frameScheduler struct {
	queue []*frameCallback
}

func (s *frameScheduler) Schedule(fn func()) virt.Handle {
	cb := &frameCallback{fn: fn}
	s.queue = append(s.queue, cb)
	return cb
}

func (s *frameScheduler) tickCmd() tea.Cmd {
	if len(s.queue) == 0 {
		return nil
	}
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// fire runs one frame: every callback still queued and not canceled runs
// once.
func (s *frameScheduler) fire() {
	queue := s.queue
	s.queue = nil
	for _, cb := range queue {
		if !cb.canceled {
			cb.fn()
		}
	}
}

// termSurface adapts the terminal content area to virt.Surface. The list
// model owns the scroll position; like a browser scroll container, a
// commanded SetScrollOffset is echoed back through the scroll subscription.
type termSurface struct {
	width    int
	height   int
	attached bool

	offset float64

	onScroll func(float64)
	onResize func()
}

func (s *termSurface) Extent(axis virt.Axis) (float64, bool) {
	if !s.attached {
		return 0, false
	}
	if axis == virt.AxisHorizontal {
		return float64(s.width), s.width > 0
	}
	return float64(s.height), s.height > 0
}

func (s *termSurface) ScrollOffset(virt.Axis) float64 {
	return s.offset
}

func (s *termSurface) SetScrollOffset(_ virt.Axis, offset float64) {
	if offset < 0 {
		offset = 0
	}
	s.offset = offset
	if s.onScroll != nil {
		s.onScroll(s.offset)
	}
}

// scrollTo applies a user-intent scroll, clamped to [0, max], and reports it
// to the subscriber.
func (s *termSurface) scrollTo(offset, max float64) {
	if offset < 0 {
		offset = 0
	}
	if max >= 0 && offset > max {
		offset = max
	}
	s.offset = offset
	if s.onScroll != nil {
		s.onScroll(s.offset)
	}
}

// resize records the new content area and notifies the subscriber.
func (s *termSurface) resize(width, height int) {
	s.width = width
	s.height = height
	s.attached = true
	if s.onResize != nil {
		s.onResize()
	}
}

func (s *termSurface) subscribeScroll(fn func(float64)) func() {
	s.onScroll = fn
	return func() { s.onScroll = nil }
}

func (s *termSurface) subscribeResize(fn func()) func() {
	s.onResize = fn
	return func() { s.onResize = nil }
}
