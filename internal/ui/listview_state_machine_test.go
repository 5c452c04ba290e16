package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/vlist/internal/config"
	"github.com/gravitrone/vlist/internal/data"
	"github.com/gravitrone/vlist/internal/virt"
)

func newTestListView(axis virt.Axis, n int) (ListView, *config.Config) {
	cfg := config.Default()
	return NewListView(&cfg, data.Generate(n), axis), &cfg
}

// pumpList delivers frame messages until no frame work remains, standing in
// for the tick loop the running program drives.
func pumpList(v ListView) ListView {
	for i := 0; i < 8; i++ {
		var cmd tea.Cmd
		v, cmd = v.Update(frameMsg{})
		if cmd == nil {
			break
		}
	}
	return v
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestListViewResizeEstablishesGeometry(t *testing.T) {
	v, _ := newTestListView(virt.AxisVertical, 1000)

	v, cmd := v.SetSize(80, 28)
	require.NotNil(t, cmd)
	v = pumpList(v)

	assert.Equal(t, 28.0, v.tracker.ViewportExtent())
	assert.Equal(t, 4.0, v.tracker.ItemExtent())

	w := v.Window()
	assert.Equal(t, 0, w.First)
	assert.Equal(t, 9, w.Last)
}

func TestListViewScrollBurstCoalescesToOneCommit(t *testing.T) {
	v, _ := newTestListView(virt.AxisVertical, 1000)
	v, _ = v.SetSize(80, 28)
	v = pumpList(v)

	// Two key presses inside a single frame.
	v, _ = v.Update(keyRunes('j'))
	v, _ = v.Update(keyRunes('j'))
	assert.Equal(t, 0.0, v.tracker.ScrollOffset())

	v = pumpList(v)
	assert.Equal(t, 8.0, v.tracker.ScrollOffset())

	w := v.Window()
	assert.Equal(t, 0, w.First)
	assert.Equal(t, 11, w.Last)
}

func TestListViewPageAndJumpKeys(t *testing.T) {
	v, _ := newTestListView(virt.AxisVertical, 1000)
	v, _ = v.SetSize(80, 28)
	v = pumpList(v)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	v = pumpList(v)
	assert.Equal(t, 28.0, v.tracker.ScrollOffset())

	v, _ = v.Update(keyRunes('G'))
	v = pumpList(v)
	assert.Equal(t, 4.0*1000-28, v.tracker.ScrollOffset())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyHome})
	v = pumpList(v)
	assert.Equal(t, 0.0, v.tracker.ScrollOffset())
}

func TestListViewScrollClampsToContent(t *testing.T) {
	v, _ := newTestListView(virt.AxisVertical, 5)
	v, _ = v.SetSize(80, 28)
	v = pumpList(v)

	v, _ = v.Update(keyRunes('G'))
	v = pumpList(v)

	// Five items at extent 4 fit inside a 28-cell viewport entirely.
	assert.Equal(t, 0.0, v.tracker.ScrollOffset())

	v, _ = v.Update(keyRunes('k'))
	v = pumpList(v)
	assert.Equal(t, 0.0, v.tracker.ScrollOffset())
}

func TestListViewResizePreservesLeadingItem(t *testing.T) {
	v, _ := newTestListView(virt.AxisVertical, 1000)
	v, _ = v.SetSize(80, 28)
	v = pumpList(v)

	v, _ = v.Update(keyRunes('j'))
	v, _ = v.Update(keyRunes('j'))
	v = pumpList(v)
	require.Equal(t, 8.0, v.tracker.ScrollOffset())

	// Item extent grows from 4 to 5; index 2 stays at the leading edge.
	v, _ = v.SetSize(80, 35)
	v = pumpList(v)

	assert.Equal(t, 5.0, v.tracker.ItemExtent())
	assert.InDelta(t, 10.0, v.tracker.ScrollOffset(), 0.001)
}

func TestListViewScrollWorksRightAfterResize(t *testing.T) {
	v, _ := newTestListView(virt.AxisVertical, 1000)
	v, _ = v.SetSize(80, 28)
	v = pumpList(v)
	v, _ = v.SetSize(80, 35)
	v = pumpList(v)

	// The corrective scroll echoed synchronously, so no settle suppression
	// applies to the user's next key press.
	v, _ = v.Update(keyRunes('j'))
	v = pumpList(v)
	assert.Equal(t, 5.0, v.tracker.ScrollOffset())
}

func TestListViewMouseWheelScrolls(t *testing.T) {
	v, cfg := newTestListView(virt.AxisVertical, 1000)
	v, _ = v.SetSize(80, 28)
	v = pumpList(v)

	v, _ = v.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	v = pumpList(v)
	assert.Equal(t, 4.0, v.tracker.ScrollOffset())

	v, _ = v.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	v = pumpList(v)
	assert.Equal(t, 0.0, v.tracker.ScrollOffset())

	cfg.MouseWheel = false
	v, _ = v.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	v = pumpList(v)
	assert.Equal(t, 0.0, v.tracker.ScrollOffset())
}

func TestListViewHorizontalAxisKeys(t *testing.T) {
	v, _ := newTestListView(virt.AxisHorizontal, 200)
	v, _ = v.SetSize(35, 10)
	v = pumpList(v)
	require.Equal(t, 5.0, v.tracker.ItemExtent())

	v, _ = v.Update(keyRunes('l'))
	v = pumpList(v)
	assert.Equal(t, 5.0, v.tracker.ScrollOffset())

	// Vertical keys do not move a horizontal list.
	v, _ = v.Update(keyRunes('j'))
	v = pumpList(v)
	assert.Equal(t, 5.0, v.tracker.ScrollOffset())
}

func TestListViewDebugToggleShrinksList(t *testing.T) {
	v, _ := newTestListView(virt.AxisVertical, 100)
	v, _ = v.SetSize(80, 28)
	v = pumpList(v)

	v, _ = v.Update(keyRunes('i'))
	v = pumpList(v)
	assert.True(t, v.showDebug)
	assert.Equal(t, 28.0-debugPanelRows, v.tracker.ViewportExtent())

	v, _ = v.Update(keyRunes('i'))
	v = pumpList(v)
	assert.False(t, v.showDebug)
	assert.Equal(t, 28.0, v.tracker.ViewportExtent())
}

func TestListViewApplyConfigRebuildsTracker(t *testing.T) {
	v, _ := newTestListView(virt.AxisVertical, 1000)
	v, _ = v.SetSize(80, 28)
	v = pumpList(v)

	next := config.Default()
	next.VisibleCount = 14
	next.Overscan = 0
	v, cmd := v.ApplyConfig(&next)
	require.NotNil(t, cmd)
	v = pumpList(v)

	assert.Equal(t, 2.0, v.tracker.ItemExtent())
	w := v.Window()
	assert.Equal(t, 0, w.First)
	assert.Equal(t, 14, w.Last)
}
