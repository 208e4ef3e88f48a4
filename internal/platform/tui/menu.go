package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blockblast/internal/core"
	"github.com/vovakirdan/tui-blockblast/internal/games/blockblast"
	bb "github.com/vovakirdan/tui-blockblast/internal/games/blockblast/core"
	"github.com/vovakirdan/tui-blockblast/internal/registry"
	"github.com/vovakirdan/tui-blockblast/internal/storage"
)

var (
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
)

type menuKind int

const (
	menuPlay menuKind = iota
	menuStageSelect
	menuResume
	menuScores
)

type menuItem struct {
	kind   menuKind
	gameID string
	title  string
	desc   string
	best   int
}

func (it menuItem) label(stage int) string {
	switch {
	case it.kind == menuStageSelect:
		return fmt.Sprintf("%s  ◂ %d ▸", it.title, stage)
	case it.kind == menuPlay && it.best > 0:
		return it.title + dimStyle.Render(fmt.Sprintf("  best %d", it.best))
	}
	return it.title
}

// Selection is what the player picked: a fresh round of a mode, a starting
// stage, or a saved round.
type Selection struct {
	GameID string
	Stage  int  // first stage for stages mode, 0 otherwise
	Resume bool // restore the saved round instead of starting fresh
}

// MenuModel lists the registered modes, a stage picker, saved rounds of the
// current player and the scoreboard.
type MenuModel struct {
	items      []menuItem
	cursor     int
	stage      int
	maxStage   int
	width      int
	store      *storage.Store
	config     core.RuntimeConfig
	keys       MenuKeyMap
	help       help.Model
	quitting   bool
	selected   *Selection
	wantsBoard bool
}

// NewMenuModel builds the menu. With a store, each mode shows its best
// score and saved rounds of cfg.Player are offered for resuming.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	items := make([]menuItem, 0, len(modes)*2+2)
	for _, g := range modes {
		item := menuItem{kind: menuPlay, gameID: g.ID, title: g.Title, desc: g.Description}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.best = best
			}
		}
		items = append(items, item)
		if g.ID == blockblast.IDStages {
			items = append(items, menuItem{
				kind:   menuStageSelect,
				gameID: g.ID,
				title:  "Select stage",
				desc:   "Start the stages run from a later stage",
			})
		}
	}
	for _, g := range modes {
		if store == nil {
			break
		}
		if ok, err := store.HasSession(cfg.Player, g.ID); err == nil && ok {
			items = append(items, menuItem{
				kind:   menuResume,
				gameID: g.ID,
				title:  "Resume " + g.Title,
				desc:   "Continue the round you left unfinished",
			})
		}
	}
	items = append(items, menuItem{kind: menuScores, title: "High scores", desc: "Leaderboards and stats for every mode"})

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:    items,
		stage:    1,
		maxStage: bb.DefaultLayoutParams().MaxStage,
		width:    cfg.ScreenW,
		store:    store,
		config:   cfg,
		keys:     DefaultMenuKeyMap(),
		help:     h,
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, k.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, k.Down):
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case key.Matches(msg, k.StageDown):
		if m.current().kind == menuStageSelect {
			m.stage = max(m.stage-1, 1)
		}
	case key.Matches(msg, k.StageUp):
		if m.current().kind == menuStageSelect {
			m.stage = min(m.stage+1, m.maxStage)
		}
	case key.Matches(msg, k.Scores):
		m.wantsBoard = true
		return m, tea.Quit
	case key.Matches(msg, k.Select):
		return m.choose()
	}
	return m, nil
}

// choose turns the highlighted item into a selection and ends the menu.
func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	item := m.current()
	switch item.kind {
	case menuScores:
		m.wantsBoard = true
	case menuStageSelect:
		m.selected = &Selection{GameID: item.gameID, Stage: m.stage}
	case menuResume:
		m.selected = &Selection{GameID: item.gameID, Resume: true}
	default:
		sel := Selection{GameID: item.gameID}
		if item.gameID == blockblast.IDStages {
			sel.Stage = 1
		}
		m.selected = &sel
	}
	return m, tea.Quit
}

func (m MenuModel) current() menuItem {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return menuItem{}
	}
	return m.items[m.cursor]
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		centerText(boardTitleStyle.Render("B L O C K   B L A S T"), m.width),
		"",
		centerText(dimStyle.Render("Fill rows and columns on the 8x8 board"), m.width),
		"",
	}

	rows := make([]string, len(m.items))
	for i, item := range m.items {
		if i == m.cursor {
			rows[i] = menuSelectedStyle.Render("▸ " + item.label(m.stage))
		} else {
			rows[i] = menuItemStyle.Render("  " + item.label(m.stage))
		}
	}
	block := lipgloss.JoinVertical(lipgloss.Left, rows...)
	for _, row := range strings.Split(block, "\n") {
		lines = append(lines, centerText(row, m.width))
	}

	lines = append(lines, "")
	if desc := m.current().desc; desc != "" {
		lines = append(lines, centerText(dimStyle.Italic(true).Render(desc), m.width), "")
	}
	lines = append(lines, centerText(m.help.View(m.keys), m.width))

	return strings.Join(lines, "\n") + "\n"
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting reports whether the player left the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the scoreboard was requested.
func (m MenuModel) WantsScoreboard() bool {
	return m.wantsBoard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text to center it in width cells. Styled text is
// measured without its escape sequences.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult is the outcome of RunMenu.
type MenuResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu full screen until the player picks something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.Selected() != nil:
		res.Selection = m.Selected()
	default:
		res.Quit = true
	}
	return res, nil
}

// StartSelection creates the game for a selection. The starting stage is
// applied before the first Reset.
func StartSelection(sel Selection) (registry.Game, error) {
	game, err := registry.Create(sel.GameID)
	if err != nil {
		return nil, err
	}
	if g, ok := game.(*blockblast.Game); ok && sel.Stage > 0 {
		g.SetFirstStage(sel.Stage)
	}
	return game, nil
}
