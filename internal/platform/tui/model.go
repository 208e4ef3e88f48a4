package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blockblast/internal/core"
	"github.com/vovakirdan/tui-blockblast/internal/registry"
	"github.com/vovakirdan/tui-blockblast/internal/storage"
)

// Model is the Bubble Tea model for playing one mode. Input is turn-based:
// every key press becomes one Step of the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	gameState  core.GameState
	showHelp   bool
	embedded   bool // running inside a session flow; Back returns to the menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // the finished round's score is stored
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithModelLogger sets the logger used for storage warnings.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// Embedded marks the model as part of a menu flow.
func Embedded() ModelOption {
	return func(m *Model) { m.embedded = true }
}

// NewModel creates a model and starts a round. With resume set, a saved
// round for the player is restored when one exists.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, resume bool, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Player == "" {
		cfg.Player = "local"
	}

	h := help.New()
	h.ShowAll = true

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	if resume {
		m.resume()
	}
	m.gameState = m.game.State()
	return m
}

// resume restores the saved round, if any.
func (m *Model) resume() {
	r, ok := m.game.(registry.Resumable)
	if !ok || m.store == nil {
		return
	}
	saved, err := m.store.LoadSession(m.config.Player, m.game.ID())
	if errors.Is(err, storage.ErrNoSession) {
		return
	}
	if err != nil {
		m.logger.Warn("could not load saved round", "mode", m.game.ID(), "error", err)
		return
	}
	if err := r.LoadState(saved.Data); err != nil {
		m.logger.Warn("discarding unreadable saved round", "mode", m.game.ID(), "error", err)
		//nolint:errcheck // Best-effort cleanup
		m.store.DeleteSession(m.config.Player, m.game.ID())
		return
	}
	m.logger.Info("resumed round", "mode", m.game.ID(), "player", m.config.Player, "score", saved.Score)
}

// Init implements tea.Model. The round is started by NewModel.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey turns one key press into one game step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.GameOver {
		switch {
		case frame.Has(core.ActionRestart):
			m.config.Seed = time.Now().UnixNano()
			m.game.Reset(m.config)
			m.gameState = m.game.State()
			m.scoreSaved = false
			return m, nil
		case frame.Has(core.ActionBack):
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	switch {
	case !m.gameState.GameOver && !m.gameState.StageCleared:
		m.scoreSaved = false
	case !m.scoreSaved:
		m.recordScore()
	}

	return m, nil
}

// recordScore stores a finished round, lost or cleared, and drops its saved
// session.
func (m *Model) recordScore() {
	m.scoreSaved = true
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		entry := storage.ScoreEntry{
			Mode:   m.game.ID(),
			Player: m.config.Player,
			Score:  m.gameState.Score,
		}
		if sg, ok := m.game.(interface{ Stage() int }); ok {
			entry.Stage = sg.Stage()
		}
		if _, err := m.store.SaveScore(entry); err != nil {
			m.logger.Warn("could not save score", "mode", entry.Mode, "error", err)
		}
	}
	if err := m.store.DeleteSession(m.config.Player, m.game.ID()); err != nil {
		m.logger.Warn("could not drop saved round", "mode", m.game.ID(), "error", err)
	}
}

// saveSession persists an unfinished round so it can be resumed later.
func (m *Model) saveSession() {
	r, ok := m.game.(registry.Resumable)
	if !ok || m.store == nil || m.gameState.GameOver || m.gameState.StageCleared {
		return
	}
	data, err := r.SaveState()
	if err != nil {
		m.logger.Warn("could not encode round", "mode", m.game.ID(), "error", err)
		return
	}
	err = m.store.SaveSession(storage.SavedSession{
		Player: m.config.Player,
		Mode:   m.game.ID(),
		Score:  m.gameState.Score,
		Data:   data,
	})
	if err != nil {
		m.logger.Warn("could not save round", "mode", m.game.ID(), "error", err)
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".blockblast", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return "\n" + centerText("CONTROLS", m.config.ScreenW) + "\n\n" + m.help.View(m.keyMapper.Keys)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, resume bool, opts ...ModelOption) error {
	_, err := RunModel(game, store, cfg, resume, opts...)
	return err
}

// RunModel runs the game and returns the final model, so callers can tell
// a quit from a request to go back to the menu.
func RunModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, resume bool, opts ...ModelOption) (Model, error) {
	model := NewModel(game, store, cfg, resume, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := final.(Model); ok {
		return m, nil
	}
	return model, nil
}
