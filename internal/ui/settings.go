package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/vlist/internal/config"
	"github.com/gravitrone/vlist/internal/ui/components"
)

type settingsSavedMsg struct {
	cfg *config.Config
}

type settingsErrorMsg struct {
	err error
}

const (
	settingVisibleCount = 0
	settingOverscan     = 1
	settingMouseWheel   = 2
	settingCount        = 3
)

// SettingsModel edits the virtualization parameters and persists them.
type SettingsModel struct {
	cfg   *config.Config
	draft config.Config
	focus int
	dirty bool

	width  int
	height int
}

// NewSettingsModel builds the settings tab around the live config.
func NewSettingsModel(cfg *config.Config) SettingsModel {
	return SettingsModel{
		cfg:   cfg,
		draft: *cfg,
	}
}

func (m SettingsModel) Init() tea.Cmd {
	return nil
}

func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case isUp(key):
		if m.focus > 0 {
			m.focus--
		}
	case isDown(key):
		if m.focus < settingCount-1 {
			m.focus++
		}
	case isKey(key, "left"):
		m.adjust(-1)
	case isKey(key, "right"):
		m.adjust(1)
	case isKey(key, " "):
		if m.focus == settingMouseWheel {
			m.adjust(1)
		}
	case isBack(key):
		m.draft = *m.cfg
		m.dirty = false
	case isKey(key, "ctrl+s"):
		return m.save()
	}
	return m, nil
}

func (m *SettingsModel) adjust(delta int) {
	switch m.focus {
	case settingVisibleCount:
		next := m.draft.VisibleCount + delta
		if next >= 1 && next <= 99 {
			m.draft.VisibleCount = next
		}
	case settingOverscan:
		next := m.draft.Overscan + delta
		if next >= 0 && next <= 20 {
			m.draft.Overscan = next
		}
	case settingMouseWheel:
		m.draft.MouseWheel = !m.draft.MouseWheel
	}
	m.dirty = m.draft != *m.cfg
}

func (m SettingsModel) save() (SettingsModel, tea.Cmd) {
	draft := m.draft
	if err := draft.Save(); err != nil {
		return m, func() tea.Msg { return settingsErrorMsg{err: err} }
	}
	*m.cfg = draft
	m.dirty = false
	cfg := m.cfg
	return m, func() tea.Msg { return settingsSavedMsg{cfg: cfg} }
}

// Dirty reports unsaved edits.
func (m SettingsModel) Dirty() bool {
	return m.dirty
}

func (m SettingsModel) View() string {
	onOff := "off"
	if m.draft.MouseWheel {
		onOff = "on"
	}
	rows := []components.TableRow{
		{Label: m.label(settingVisibleCount, "Visible count"), Value: fmt.Sprintf("%d", m.draft.VisibleCount)},
		{Label: m.label(settingOverscan, "Overscan"), Value: fmt.Sprintf("%d", m.draft.Overscan)},
		{Label: m.label(settingMouseWheel, "Mouse wheel"), Value: onOff},
	}
	body := components.Table("Settings", rows, m.width)
	if m.dirty {
		body += "\n" + WarningStyle.Render("  unsaved changes: ctrl+s to save, esc to discard")
	}
	return body
}

func (m SettingsModel) label(field int, name string) string {
	if field == m.focus {
		return "> " + name
	}
	return "  " + name
}
