package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Journal layout constants
const (
	maxRuns         = 200 // Max runs to load
	journalChrome   = 9   // Rows used by title, stats, borders and help
	journalMinTable = 3
)

// RunsKeyMap defines the key bindings for the journal browser.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Seed   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Seed, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Seed, k.Reload, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Seed: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "same seed"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "all runs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing the run journal.
type RunsModel struct {
	gameID   string
	store    *storage.Store
	runs     []storage.Run
	stats    *storage.Stats
	seed     *int64 // Non-nil while filtered to one seed
	err      error
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunsModel creates a journal browser for gameID.
func NewRunsModel(store *storage.Store, gameID string, width, height int) RunsModel {
	h := help.New()
	h.Width = width

	m := RunsModel{
		gameID: gameID,
		store:  store,
		keys:   DefaultRunsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Passed", Width: 7},
		{Title: "Hit", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-journalChrome, journalMinTable)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load refreshes runs and stats from the store.
func (m *RunsModel) load() {
	m.err = nil
	if m.store == nil {
		m.runs = nil
		m.updateTableRows()
		return
	}

	var runs []storage.Run
	var err error
	if m.seed != nil {
		runs, err = m.store.RunsBySeed(m.gameID, *m.seed)
	} else {
		runs, err = m.store.RecentRuns(m.gameID, maxRuns)
	}
	if err != nil {
		m.err = err
	}
	m.runs = runs

	if stats, err := m.store.Stats(m.gameID); err == nil {
		m.stats = stats
	} else if m.err == nil {
		m.err = err
	}

	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *RunsModel) updateTableRows() {
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			strconv.Itoa(r.Passed),
			r.Cause,
			formatDuration(r.Duration),
			strconv.FormatInt(r.Seed, 10),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// Init initializes the journal model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Seed):
			if i := m.table.Cursor(); i >= 0 && i < len(m.runs) {
				seed := m.runs[i].Seed
				m.seed = &seed
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.seed = nil
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RUN JOURNAL"
	if m.seed != nil {
		title = fmt.Sprintf("RUN JOURNAL - seed %d", *m.seed)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the whole journal.
func (m RunsModel) statsLine() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if m.stats == nil || m.stats.Runs == 0 {
		return style.Render("no runs yet")
	}
	return style.Render(FormatStats(m.stats))
}

// FormatStats renders journal statistics as a single line.
func FormatStats(s *storage.Stats) string {
	causes := make([]string, 0, len(s.Causes))
	for cause := range s.Causes {
		causes = append(causes, cause)
	}
	sort.Strings(causes)

	parts := make([]string, 0, len(causes))
	for _, c := range causes {
		parts = append(parts, fmt.Sprintf("%s %d", c, s.Causes[c]))
	}

	return fmt.Sprintf("%d runs  |  avg %.1f passed  |  %s played  |  %s",
		s.Runs, s.AvgPassed, s.TotalTime.Round(time.Second), strings.Join(parts, ", "))
}

// renderTableContent renders the table or empty message.
func (m RunsModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay a round to start the journal!")
	}

	return m.table.View()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunJournal runs the journal browser.
func RunJournal(store *storage.Store, gameID string, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(store, gameID, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
