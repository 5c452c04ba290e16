package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/vlist/internal/config"
	"github.com/gravitrone/vlist/internal/data"
	"github.com/gravitrone/vlist/internal/ui/components"
	"github.com/gravitrone/vlist/internal/virt"
)

const debugPanelRows = 8

// ListView hosts one virtualized list over a dataset. The terminal content
// area acts as the scroll container: key and wheel events become raw scroll
// offsets, window size changes become resize notifications, and the tracker
// decides what actually commits.
type ListView struct {
	axis    virt.Axis
	cfg     *config.Config
	dataset *data.Dataset

	surface *termSurface
	sched   *frameScheduler
	tracker *virt.Tracker

	width     int
	height    int
	showDebug bool
}

// NewListView wires a tracker to a fresh terminal surface.
func NewListView(cfg *config.Config, dataset *data.Dataset, axis virt.Axis) ListView {
	surface := &termSurface{}
	sched := &frameScheduler{}
	tracker := virt.NewTracker(virt.Config{
		VisibleCount: cfg.VisibleCount,
		Overscan:     cfg.Overscan,
		Direction:    axis,
	}, surface, sched)
	tracker.Attach(surface.subscribeScroll, surface.subscribeResize)

	return ListView{
		axis:    axis,
		cfg:     cfg,
		dataset: dataset,
		surface: surface,
		sched:   sched,
		tracker: tracker,
	}
}

func (v ListView) Init() tea.Cmd {
	return nil
}

// SetSize records the content area granted by the app and notifies the
// surface, which schedules a resize reconciliation.
func (v ListView) SetSize(width, height int) (ListView, tea.Cmd) {
	v.width = width
	v.height = height
	v.surface.resize(width, v.listHeight())
	return v, v.sched.tickCmd()
}

// ApplyConfig swaps in new virtualization parameters by rebuilding the
// tracker against the existing surface.
func (v ListView) ApplyConfig(cfg *config.Config) (ListView, tea.Cmd) {
	v.cfg = cfg
	v.tracker.Detach()
	v.tracker = virt.NewTracker(virt.Config{
		VisibleCount: cfg.VisibleCount,
		Overscan:     cfg.Overscan,
		Direction:    v.axis,
	}, v.surface, v.sched)
	v.tracker.Attach(v.surface.subscribeScroll, v.surface.subscribeResize)
	v.tracker.OnResize()
	return v, v.sched.tickCmd()
}

func (v ListView) Update(msg tea.Msg) (ListView, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		v.sched.fire()
		return v, v.sched.tickCmd()

	case tea.MouseMsg:
		if !v.cfg.MouseWheel {
			return v, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return v.scrollBy(-v.step())
		case tea.MouseButtonWheelDown:
			return v.scrollBy(v.step())
		}
		return v, nil

	case tea.KeyMsg:
		switch {
		case isKey(msg, "i"):
			v.showDebug = !v.showDebug
			v.surface.resize(v.width, v.listHeight())
			return v, v.sched.tickCmd()
		case v.isBackKey(msg):
			return v.scrollBy(-v.step())
		case v.isForwardKey(msg):
			return v.scrollBy(v.step())
		case isKey(msg, "pgup", "b"):
			return v.scrollBy(-v.tracker.ViewportExtent())
		case isKey(msg, "pgdown", " ", "f"):
			return v.scrollBy(v.tracker.ViewportExtent())
		case isKey(msg, "home", "g"):
			return v.scrollTo(0)
		case isKey(msg, "end", "G"):
			return v.scrollTo(v.maxScroll())
		}
	}
	return v, nil
}

func (v ListView) isBackKey(msg tea.KeyMsg) bool {
	if v.axis == virt.AxisHorizontal {
		return isKey(msg, "left", "h")
	}
	return isKey(msg, "up", "k")
}

func (v ListView) isForwardKey(msg tea.KeyMsg) bool {
	if v.axis == virt.AxisHorizontal {
		return isKey(msg, "right", "l")
	}
	return isKey(msg, "down", "j")
}

// step is one item extent, or one cell while the extent is still unknown.
func (v ListView) step() float64 {
	if extent := v.tracker.ItemExtent(); extent > 0 {
		return extent
	}
	return 1
}

func (v ListView) scrollBy(delta float64) (ListView, tea.Cmd) {
	return v.scrollTo(v.surface.offset + delta)
}

func (v ListView) scrollTo(offset float64) (ListView, tea.Cmd) {
	v.surface.scrollTo(offset, v.maxScroll())
	return v, v.sched.tickCmd()
}

// maxScroll keeps the viewport inside the content: clamping raw offsets is
// the hosting surface's job, not the calculator's.
func (v ListView) maxScroll() float64 {
	extent := v.tracker.ItemExtent()
	if extent <= 0 {
		return 0
	}
	max := extent*float64(v.dataset.Len()) - v.tracker.ViewportExtent()
	if max < 0 {
		return 0
	}
	return max
}

func (v ListView) listHeight() int {
	if v.axis == virt.AxisHorizontal {
		return v.height
	}
	h := v.height
	if v.showDebug {
		h -= debugPanelRows
	}
	if h < 0 {
		h = 0
	}
	return h
}

// Window exposes the current render window, for the app's status line.
func (v ListView) Window() virt.Window {
	return v.tracker.Window(v.dataset.Len())
}

func (v ListView) View() string {
	var body string
	if v.axis == virt.AxisHorizontal {
		body = v.renderHorizontal()
	} else {
		body = v.renderVertical()
	}
	if v.showDebug {
		body += "\n" + v.renderDebug()
	}
	return body
}

func (v ListView) renderVertical() string {
	rows := v.listHeight()
	if rows <= 0 {
		return ""
	}
	lines := make([]string, rows)

	extent := v.tracker.ItemExtent()
	window := v.tracker.Window(v.dataset.Len())
	offset := v.tracker.ScrollOffset()
	itemRows := extentCells(extent)

	items := virt.Materialize(v.dataset, window, extent, v.renderRow)
	for _, item := range items {
		top := int(math.Round(item.Offset - offset))
		content := strings.Split(item.Content, "\n")
		for j := 0; j < itemRows; j++ {
			row := top + j
			if row < 0 || row >= rows {
				continue
			}
			if j < len(content) {
				lines[row] = content[j]
			}
		}
	}

	if window.Empty() && v.dataset.Len() == 0 {
		lines[0] = MutedStyle.Render("  dataset is empty")
	}
	return strings.Join(lines, "\n")
}

func (v ListView) renderHorizontal() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}

	extent := v.tracker.ItemExtent()
	window := v.tracker.Window(v.dataset.Len())
	offset := v.tracker.ScrollOffset()
	itemCols := extentCells(extent)

	items := virt.Materialize(v.dataset, window, extent, v.renderCard)
	blocks := make([]string, 0, len(items)+1)
	pad := -1.0
	for _, item := range items {
		col := item.Offset - offset
		if col < 0 {
			// Overscan to the left stays materialized but clipped.
			continue
		}
		if pad < 0 {
			pad = col
		}
		blocks = append(blocks, lipgloss.NewStyle().Width(itemCols).Render(item.Content))
	}
	if len(blocks) == 0 {
		return MutedStyle.Render("  dataset is empty")
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	if pad > 0 {
		row = lipgloss.JoinHorizontal(lipgloss.Top, strings.Repeat(" ", int(pad)), row)
	}
	return lipgloss.NewStyle().MaxWidth(v.width).Render(row)
}

// renderRow builds one multi-line list entry. The calculator's item extent
// wins over anything the row would prefer: content is clipped to the extent
// so adjacent items stay contiguous.
func (v ListView) renderRow(row data.Row, index int) string {
	itemRows := extentCells(v.tracker.ItemExtent())
	width := v.width

	title := components.ClampTextWidth(row.Title, width-14)
	head := SelectedStyle.Render(fmt.Sprintf("%6d", index)) + "  " + NormalStyle.Render(title)
	if itemRows == 1 {
		return head
	}

	lines := make([]string, 0, itemRows)
	lines = append(lines, head)
	detail := fmt.Sprintf("%s · %s · %d KiB", row.ID, row.Kind, row.Size/1024)
	lines = append(lines, "        "+MutedStyle.Render(components.ClampTextWidth(detail, width-8)))
	for len(lines) < itemRows {
		lines = append(lines, "")
	}
	return strings.Join(lines[:itemRows], "\n")
}

// renderCard builds one horizontal gallery cell.
func (v ListView) renderCard(row data.Row, index int) string {
	cols := extentCells(v.tracker.ItemExtent())
	inner := cols - 2
	if inner < 1 {
		inner = 1
	}
	lines := []string{
		SelectedStyle.Render(components.ClampTextWidth(fmt.Sprintf("#%d", index), inner)),
		NormalStyle.Render(components.ClampTextWidth(row.Title, inner)),
		MutedStyle.Render(components.ClampTextWidth(row.Kind, inner)),
	}
	return strings.Join(lines, "\n")
}

func (v ListView) renderDebug() string {
	window := v.tracker.Window(v.dataset.Len())
	first, last := "-", "-"
	if !window.Empty() {
		first = fmt.Sprintf("%d", window.First)
		last = fmt.Sprintf("%d", window.Last)
	}
	rows := []components.TableRow{
		{Label: "scroll offset", Value: fmt.Sprintf("%.1f", v.tracker.ScrollOffset())},
		{Label: "viewport extent", Value: fmt.Sprintf("%.0f", v.tracker.ViewportExtent())},
		{Label: "item extent", Value: fmt.Sprintf("%.2f", v.tracker.ItemExtent())},
		{Label: "window", Value: first + ".." + last + " of " + fmt.Sprintf("%d", v.dataset.Len())},
	}
	return components.Table("Viewport", rows, v.width)
}

// extentCells converts a fractional extent to whole terminal cells, at least
// one.
func extentCells(extent float64) int {
	cells := int(math.Round(extent))
	if cells < 1 {
		cells = 1
	}
	return cells
}
