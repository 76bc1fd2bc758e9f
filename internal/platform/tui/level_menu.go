package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/adventure-land/internal/games/adventure/levels"
)

// menuChrome is the number of rows taken by the title, subtitle and footer.
const menuChrome = 10

// LevelMenuModel is the level picker shown before a session.
type LevelMenuModel struct {
	levels       []levels.Level
	cursor       int
	scrollOffset int
	width        int
	height       int
	keys         MenuKeyMap
	help         help.Model
	theme        Theme
	chosen       bool
	quitting     bool
}

// NewLevelMenuModel creates a picker over lvls.
func NewLevelMenuModel(lvls []levels.Level, width, height int) LevelMenuModel {
	return LevelMenuModel{
		levels: lvls,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		theme:  DefaultTheme(),
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.levels)-1 {
			m.cursor++
			m.updateScroll()
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.levels) == 0 {
			return m, nil
		}
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func (m LevelMenuModel) visibleItems() int {
	return max(m.height-menuChrome, 3)
}

// updateScroll adjusts the scroll offset to keep the cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level list.
func (m LevelMenuModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("A D V E N T U R E   L A N D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	end := min(m.scrollOffset+m.visibleItems(), len(m.levels))
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	for i := m.scrollOffset; i < end; i++ {
		lvl := m.levels[i]
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		line := style.Render(fmt.Sprintf("%s%2d. %-20s", cursor, i+1, lvl.Name)) +
			m.theme.MenuDescription.Render(fmt.Sprintf(" %dx%d, %d hostiles, %d bonuses",
				lvl.Rows, lvl.Cols, len(lvl.Hostiles), len(lvl.Bonuses)))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	if end < len(m.levels) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen level, or false when the picker was quit.
func (m LevelMenuModel) Selected() (levels.Level, bool) {
	if !m.chosen || m.cursor >= len(m.levels) {
		return levels.Level{}, false
	}
	return m.levels[m.cursor], true
}

// RunLevelMenu shows the picker and returns the chosen level.
// The boolean is false when the user quit without choosing.
func RunLevelMenu(lvls []levels.Level, width, height int) (levels.Level, bool, error) {
	p := tea.NewProgram(NewLevelMenuModel(lvls, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return levels.Level{}, false, err
	}
	m, ok := final.(LevelMenuModel)
	if !ok {
		return levels.Level{}, false, nil
	}
	lvl, chosen := m.Selected()
	return lvl, chosen, nil
}
