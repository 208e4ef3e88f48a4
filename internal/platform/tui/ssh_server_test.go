package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blockblast/internal/logging"
)

func pressSession(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestSessionModelFlow(t *testing.T) {
	cfg := testConfig()
	m := NewSessionModel(openStore(t), cfg, logging.Discard())
	if m.view != viewMenu {
		t.Fatalf("view = %d, want menu", m.view)
	}

	m = pressSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("tab: view = %d, want scoreboard", m.view)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing its title")
	}

	m = pressSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("esc: view = %d, want menu", m.view)
	}

	m = pressSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.game == nil {
		t.Fatalf("enter: view = %d, want game", m.view)
	}
	if !strings.Contains(m.View(), "Score:") {
		t.Error("game view missing the score line")
	}

	m = pressSession(m, runeKey("q"))
	if !m.quitting || m.View() != "" {
		t.Error("q in game should end the session")
	}
}

func TestSessionModelTracksResize(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), logging.Discard())
	m = pressSession(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config size = %dx%d, want 120x40", m.config.ScreenW, m.config.ScreenH)
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.Logger = logging.Discard()

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, want %q", srv.Addr(), cfg.Address)
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions() = %d, want 0", srv.ActiveSessions())
	}
	if _, err := os.Stat(filepath.Dir(cfg.HostKeyPath)); err != nil {
		t.Errorf("host key directory not created: %v", err)
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
