package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/vlist/internal/config"
	"github.com/gravitrone/vlist/internal/data"
	"github.com/gravitrone/vlist/internal/ui/components"
	"github.com/gravitrone/vlist/internal/virt"
)

// --- Tab Constants ---

const (
	tabBrowse   = 0
	tabGallery  = 1
	tabSettings = 2
	tabCount    = 3
)

var tabNames = []string{"Browse", "Gallery", "Settings"}

// --- Messages ---

type clearToastMsg struct{}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model that routes between tabs.
type App struct {
	cfg    *config.Config
	tab    int
	width  int
	height int

	helpOpen    bool
	quitConfirm bool
	err         string
	toast       *appToast

	browse   ListView
	gallery  ListView
	settings SettingsModel
}

// NewApp creates the root application model. The configured direction picks
// the starting tab.
func NewApp(cfg *config.Config, dataset *data.Dataset) App {
	tab := tabBrowse
	if cfg.Direction == "horizontal" {
		tab = tabGallery
	}
	return App{
		cfg:      cfg,
		tab:      tab,
		browse:   NewListView(cfg, dataset, virt.AxisVertical),
		gallery:  NewListView(cfg, dataset, virt.AxisHorizontal),
		settings: NewSettingsModel(cfg),
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		contentHeight := a.contentHeight()
		var browseCmd, galleryCmd tea.Cmd
		a.browse, browseCmd = a.browse.SetSize(msg.Width, contentHeight)
		a.gallery, galleryCmd = a.gallery.SetSize(msg.Width, contentHeight)
		a.settings.width = msg.Width
		a.settings.height = contentHeight
		return a, tea.Batch(browseCmd, galleryCmd)

	case frameMsg:
		// Both lists share the frame clock; deliver to each.
		var browseCmd, galleryCmd tea.Cmd
		a.browse, browseCmd = a.browse.Update(msg)
		a.gallery, galleryCmd = a.gallery.Update(msg)
		return a, tea.Batch(browseCmd, galleryCmd)

	case clearToastMsg:
		a.toast = nil
		return a, nil

	case settingsSavedMsg:
		var browseCmd, galleryCmd tea.Cmd
		a.browse, browseCmd = a.browse.ApplyConfig(msg.cfg)
		a.gallery, galleryCmd = a.gallery.ApplyConfig(msg.cfg)
		return a, tea.Batch(browseCmd, galleryCmd, a.setToast("success", "Settings saved."))

	case settingsErrorMsg:
		a.err = fmt.Sprintf("save settings: %v", msg.err)
		return a, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		switch a.tab {
		case tabBrowse:
			a.browse, cmd = a.browse.Update(msg)
		case tabGallery:
			a.gallery, cmd = a.gallery.Update(msg)
		}
		return a, cmd

	case tea.KeyMsg:
		if a.quitConfirm {
			switch {
			case isKey(msg, "y"):
				return a, tea.Quit
			case isKey(msg, "n"), isBack(msg):
				a.quitConfirm = false
			}
			return a, nil
		}
		if a.helpOpen {
			if isBack(msg) || isKey(msg, "?") {
				a.helpOpen = false
			}
			return a, nil
		}
		if a.err != "" {
			a.err = ""
		}

		// Global keys
		if isKey(msg, "?") {
			a.helpOpen = true
			return a, nil
		}
		if isQuit(msg) {
			if a.settings.Dirty() {
				a.quitConfirm = true
				return a, nil
			}
			return a, tea.Quit
		}
		switch {
		case isKey(msg, "1"):
			a.tab = tabBrowse
			return a, nil
		case isKey(msg, "2"):
			a.tab = tabGallery
			return a, nil
		case isKey(msg, "3"):
			a.tab = tabSettings
			return a, nil
		case isKey(msg, "tab"):
			a.tab = (a.tab + 1) % tabCount
			return a, nil
		}
	}

	// Delegate to active tab
	var cmd tea.Cmd
	switch a.tab {
	case tabBrowse:
		a.browse, cmd = a.browse.Update(msg)
	case tabGallery:
		a.gallery, cmd = a.gallery.Update(msg)
	case tabSettings:
		a.settings, cmd = a.settings.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	banner := RenderBanner()
	tabs := a.renderTabs()

	var content string
	switch a.tab {
	case tabBrowse:
		content = a.browse.View()
	case tabGallery:
		content = a.gallery.View()
	case tabSettings:
		content = a.settings.View()
	}

	if a.quitConfirm {
		content = components.TitledBox("Quit", "You have unsaved settings. Quit anyway? [y/n]", a.width)
	} else if a.helpOpen {
		content = a.renderHelp()
	}

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n" + components.ErrorBox("Error", a.err, a.width)
	} else if a.toast != nil {
		feedback = "\n" + a.renderToast()
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s%s", banner, tabs, content, hints, feedback)
}

// contentHeight is the viewport area left after the banner, tab row, and
// status bar.
func (a App) contentHeight() int {
	chrome := lipgloss.Height(RenderBanner()) + 1 + 2 + 3
	h := a.height - chrome
	if h < 0 {
		h = 0
	}
	return h
}

func (a App) renderTabs() string {
	segments := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if i == a.tab {
			segments = append(segments, TabActiveStyle.Render(name))
		} else {
			segments = append(segments, TabInactiveStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (a App) renderHelp() string {
	hints := a.statusHintsForTab()
	lines := make([]string, 0, len(hints)+2)
	lines = append(lines, MutedStyle.Render("esc to close"))
	lines = append(lines, "")
	for _, hint := range hints {
		lines = append(lines, "  "+hint)
	}
	body := strings.Join(lines, "\n")
	return components.Indent(components.TitledBox("Help", body, a.width), 1)
}

func (a App) statusHints() []string {
	if a.quitConfirm {
		return []string{
			components.Hint("y", "Confirm"),
			components.Hint("n", "Cancel"),
		}
	}
	if a.helpOpen {
		return []string{
			components.Hint("esc", "Back"),
		}
	}
	return a.statusHintsForTab()
}

func (a App) statusHintsForTab() []string {
	base := []string{
		components.Hint("1/2/3", "Tabs"),
		components.Hint("?", "Help"),
		components.Hint("q", "Quit"),
	}

	switch a.tab {
	case tabBrowse:
		return append(base,
			components.Hint("↑/↓", "Scroll"),
			components.Hint("pgup/pgdn", "Page"),
			components.Hint("g/G", "Top/Bottom"),
			components.Hint("i", "Inspector"),
		)
	case tabGallery:
		return append(base,
			components.Hint("←/→", "Scroll"),
			components.Hint("g/G", "Start/End"),
		)
	case tabSettings:
		return append(base,
			components.Hint("↑/↓", "Fields"),
			components.Hint("←/→", "Adjust"),
			components.Hint("ctrl+s", "Save"),
			components.Hint("esc", "Discard"),
		)
	}
	return base
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	title := "Info"
	switch a.toast.level {
	case "success":
		title = "Success"
	case "warning":
		title = "Warning"
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	}
	return components.TitledBox(title, a.toast.text, a.width)
}
