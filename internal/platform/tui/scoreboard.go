package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blockblast/internal/core"
	"github.com/vovakirdan/tui-blockblast/internal/registry"
	"github.com/vovakirdan/tui-blockblast/internal/storage"
)

const (
	maxScores       = 100 // rows loaded per mode
	statsPanelWidth = 24
	minWidthForSide = 76 // below this the stats panel moves under the table
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("226")).Padding(0, 1)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Mine     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.Mine, k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.Mine},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓", "scroll")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l", "d"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h", "a"), key.WithHelp("←", "prev mode")),
		Mine:     key.NewBinding(key.WithKeys("p", "m"), key.WithHelp("p", "mine/all")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the leaderboard of one mode at a time, optionally
// filtered to the current player, with the mode's aggregate stats.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int
	player    string
	mineOnly  bool
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.ModeStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard sized from cfg. cfg.Player is used
// by the "mine" filter.
func NewScoreboardModel(store *storage.Store, cfg core.RuntimeConfig) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		player: cfg.Player,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) sideBySide() bool {
	return m.width >= minWidthForSide
}

// newTable builds a table sized for the current window.
func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 9},
		{Title: "Stage", Width: 5},
		{Title: "Date", Width: 12},
	}
	avail := m.width - 6
	if m.sideBySide() {
		avail -= statsPanelWidth + 4
	}
	if extra := avail - 52; extra > 0 {
		columns[1].Width += min(extra, 8)
	}

	height := m.height - 9
	if !m.sideBySide() {
		height -= 4
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("226")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// currentMode returns the selected mode ID, or "" with no modes registered.
func (m ScoreboardModel) currentMode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// reload fetches scores and stats for the selected mode and filter.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	mode := m.currentMode()
	if m.store != nil && mode != "" {
		if m.mineOnly {
			m.scores, m.loadErr = m.store.PlayerScores(mode, m.player, maxScores)
		} else {
			m.scores, m.loadErr = m.store.TopScores(mode, maxScores)
		}
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(mode)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		stage := "-"
		if s.Stage > 0 {
			stage = fmt.Sprint(s.Stage)
		}
		player := s.Player
		if s.Player == m.player {
			player = "*" + player
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			player,
			fmt.Sprint(s.Score),
			stage,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.Mine):
			m.mineOnly = !m.mineOnly
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = core.Wrap(m.mode+delta, len(m.modes))
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	scores := panelStyle.Render(m.renderScores())
	stats := panelStyle.Width(statsPanelWidth).Render(m.renderStats())
	if m.sideBySide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, scores, "  ", stats))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, scores, stats))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, 0, len(m.modes)+1)
	for i, g := range m.modes {
		if i == m.mode {
			tabs = append(tabs, activeTabStyle.Render(g.Title))
		} else {
			tabs = append(tabs, tabStyle.Render(g.Title))
		}
	}
	filter := "all players"
	if m.mineOnly {
		filter = "only " + m.player
	}
	tabs = append(tabs, dimStyle.Render("["+filter+"]"))
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) renderScores() string {
	switch {
	case m.store == nil:
		return dimStyle.Italic(true).Render("Scores are unavailable:\nthe database could not be opened.")
	case m.loadErr != nil:
		return dimStyle.Italic(true).Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0 && m.mineOnly:
		return dimStyle.Italic(true).Render("You have no scores in this mode yet.")
	case len(m.scores) == 0:
		return dimStyle.Italic(true).Render("No scores recorded yet.\nFinish a round to set a high score!")
	}
	return m.table.View()
}

// renderStats summarizes the selected mode across all players.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.Rounds == 0 {
		return dimStyle.Render("No rounds played")
	}
	lines := []string{
		fmt.Sprintf("Rounds   %d", m.stats.Rounds),
		fmt.Sprintf("Best     %d", m.stats.HighScore),
		fmt.Sprintf("Average  %.0f", m.stats.AvgScore),
		fmt.Sprintf("Total    %d", m.stats.TotalScore),
	}
	if m.stats.BestStage > 0 {
		lines = append(lines, fmt.Sprintf("Stage    %d", m.stats.BestStage))
	}
	lines = append(lines, "", dimStyle.Render("Last "+m.stats.LastPlayed.Format("Jan 02 15:04")))
	return strings.Join(lines, "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
