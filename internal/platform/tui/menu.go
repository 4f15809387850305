package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const menuPanelWidth = 44

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("130"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(menuPanelWidth)
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // Best recorded score, 0 if none
	BestTile    int // Biggest tile of any finished game, 0 if none
}

// record formats the best score and tile, or "" when nothing was played.
func (i MenuItem) record() string {
	switch {
	case i.Best > 0 && i.BestTile > 0:
		return fmt.Sprintf("best %d  tile %d", i.Best, i.BestTile)
	case i.Best > 0:
		return fmt.Sprintf("best %d", i.Best)
	}
	return ""
}

// MenuModel is the Bubble Tea model for the mode picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model listing every registered mode.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes))

	for _, mode := range modes {
		items = append(items, menuItem(store, mode))
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// menuItem builds an item, filling in records from the store when available.
func menuItem(store *storage.Store, mode registry.GameInfo) MenuItem {
	item := MenuItem{
		GameID:      mode.ID,
		Title:       mode.Title,
		Description: mode.Description,
	}
	if store == nil {
		return item
	}

	if best, err := store.HighScore(mode.ID); err == nil {
		item.Best = best
	}
	if stats, err := store.GetGameStats(mode.ID); err == nil {
		item.BestTile = stats.BestTile
	}
	return item
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey moves the cursor, wrapping at both ends. Selections are read by
// the session through Selected and WantsScoreboard.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}

	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}

	case MenuActionSelect:
		if n > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu panel centered in the window.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	inner := menuPanelWidth - 4 // Panel padding
	lines := []string{
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, menuTitleStyle.Render("2 0 4 8")),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, menuHintStyle.Render("join the tiles, reach 2048")),
		"",
	}

	for i, item := range m.items {
		lines = append(lines, m.renderItem(item, i == m.cursor, inner))
	}

	if m.cursor < len(m.items) && m.items[m.cursor].Description != "" {
		lines = append(lines, "", menuHintStyle.Width(inner).Render(m.items[m.cursor].Description))
	}

	panel := menuPanelStyle.Render(strings.Join(lines, "\n"))
	controls := menuHintStyle.Render("↑/↓: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit")
	content := lipgloss.JoinVertical(lipgloss.Center, panel, "", controls)

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// renderItem lays out one mode: title on the left, records on the right.
func (m MenuModel) renderItem(item MenuItem, selected bool, width int) string {
	title := "  " + item.Title
	if selected {
		title = "> " + item.Title
	}

	record := item.record()
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(record), 1)
	line := title + strings.Repeat(" ", gap) + record

	if selected {
		return menuSelectedStyle.Render(line)
	}
	return menuItemStyle.Render(line)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
