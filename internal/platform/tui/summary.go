package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/adventure-land/internal/storage"
)

// Summary layout constants
const (
	minWidthForEvents = 100 // Minimum width to show the event sidebar
	eventsWidth       = 34
	recentEvents      = 12
)

// summaryColumns are the run table columns.
var summaryColumns = []table.Column{
	{Title: "Run", Width: 4},
	{Title: "Level", Width: 12},
	{Title: "Result", Width: 8},
	{Title: "Score", Width: 6},
	{Title: "Lives", Width: 6},
	{Title: "Kills", Width: 6},
	{Title: "Hits", Width: 5},
	{Title: "Falls", Width: 6},
	{Title: "Shots", Width: 6},
	{Title: "Ticks", Width: 7},
}

// SummaryKeyMap defines the key bindings of the summary screen.
type SummaryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SummaryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SummaryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultSummaryKeyMap returns default key bindings.
func DefaultSummaryKeyMap() SummaryKeyMap {
	return SummaryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev run"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "enter", "ctrl+c"),
			key.WithHelp("q/esc", "close"),
		),
	}
}

// resultLabel names the outcome of a run.
func resultLabel(s storage.Summary) string {
	switch {
	case s.Outcome.Won:
		return "won"
	case s.Outcome.Lost:
		return "lost"
	case s.Finished:
		return "ended"
	default:
		return "playing"
	}
}

// summaryRows converts run summaries to table rows.
func summaryRows(runs []storage.Summary) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, s := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", s.Run),
			s.Level,
			resultLabel(s),
			fmt.Sprintf("%d", s.Outcome.Score),
			fmt.Sprintf("%d", max(s.Outcome.Lives, 0)),
			fmt.Sprintf("%d", s.Kills),
			fmt.Sprintf("%d", s.Hits),
			fmt.Sprintf("%d", s.Falls),
			fmt.Sprintf("%d", s.Shots),
			fmt.Sprintf("%d", s.Outcome.Ticks),
		}
	}
	return rows
}

// newSummaryTable builds a styled run table.
func newSummaryTable(runs []storage.Summary, height int, focused bool) table.Model {
	t := table.New(
		table.WithColumns(summaryColumns),
		table.WithRows(summaryRows(runs)),
		table.WithFocused(focused),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if focused {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)
	return t
}

// SummaryTable renders runs as a static table for plain terminal output.
func SummaryTable(runs []storage.Summary) string {
	if len(runs) == 0 {
		return "No runs recorded.\n"
	}
	t := newSummaryTable(runs, len(runs)+3, false)
	return DefaultTheme().TableBorder.Render(t.View()) + "\n"
}

// SummaryModel shows the runs of a session journal and the recent events
// of the highlighted run.
type SummaryModel struct {
	store    *storage.Store
	runs     []storage.Summary
	recent   []storage.Entry
	table    table.Model
	help     help.Model
	keys     SummaryKeyMap
	theme    Theme
	width    int
	height   int
	err      error
	quitting bool
}

// NewSummaryModel loads the runs of store.
func NewSummaryModel(store *storage.Store, width, height int) SummaryModel {
	m := SummaryModel{
		store:  store,
		help:   help.New(),
		keys:   DefaultSummaryKeyMap(),
		theme:  DefaultTheme(),
		width:  width,
		height: height,
	}
	m.runs, m.err = store.Runs()
	m.table = newSummaryTable(m.runs, m.tableHeight(), true)
	m.table.GotoBottom()
	m.loadRecent()
	return m
}

func (m SummaryModel) tableHeight() int {
	return max(m.height-8, 3)
}

// loadRecent loads the events of the highlighted run.
func (m *SummaryModel) loadRecent() {
	m.recent = nil
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return
	}
	recent, err := m.store.Recent(m.runs[i].Run, recentEvents)
	if err != nil {
		m.err = err
		return
	}
	m.recent = recent
}

// Init initializes the model.
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the summary screen.
func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		m.table, cmd = m.table.Update(msg)
		m.loadRecent()
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = newSummaryTable(m.runs, m.tableHeight(), true)
		m.table.SetCursor(cursor)
		return m, nil
	}

	return m, nil
}

// View renders the summary screen.
func (m SummaryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(m.theme.MenuTitle.Render("SESSION JOURNAL"), m.width))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.theme.Lost.Render("journal error: " + m.err.Error()))
		b.WriteString("\n")
	}

	runs := m.theme.TableBorder.Render(m.table.View())
	if m.width >= minWidthForEvents {
		runs = lipgloss.JoinHorizontal(lipgloss.Top, runs, "  ", m.renderEvents())
	}
	b.WriteString(runs)
	b.WriteString("\n")
	b.WriteString(m.theme.Controls.Render(m.help.View(m.keys)))
	return b.String()
}

// renderEvents renders the recent events of the highlighted run.
func (m SummaryModel) renderEvents() string {
	var b strings.Builder
	b.WriteString(m.theme.MenuDescription.Render("Recent events"))
	b.WriteString("\n")
	if len(m.recent) == 0 {
		b.WriteString("none")
	}
	for _, e := range m.recent {
		line := fmt.Sprintf("%6d %-16s", e.Tick, e.Kind)
		switch e.Kind {
		case storage.KindWon:
			line = m.theme.Won.Render(line)
		case storage.KindLost, storage.KindHostileHit, storage.KindFellOff:
			line = m.theme.Lost.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return m.theme.TableBorder.Width(eventsWidth).Render(strings.TrimRight(b.String(), "\n"))
}

// RunSummary shows the journal until the user closes it.
func RunSummary(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewSummaryModel(store, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
