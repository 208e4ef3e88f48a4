package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blockblast/internal/core"
	"github.com/vovakirdan/tui-blockblast/internal/games/blockblast"
	"github.com/vovakirdan/tui-blockblast/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func pressMenu(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelectsClassic(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil || sel.GameID != blockblast.IDClassic || sel.Resume {
		t.Fatalf("Selected() = %+v, want fresh classic", sel)
	}
}

func TestMenuStageSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	// classic, stages, select stage
	down := tea.KeyMsg{Type: tea.KeyDown}
	right := tea.KeyMsg{Type: tea.KeyRight}
	m = pressMenu(m, down, down, right, right, right, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil || sel.GameID != blockblast.IDStages {
		t.Fatalf("Selected() = %+v, want stages", sel)
	}
	if sel.Stage != 3 {
		t.Errorf("Stage = %d, want 3", sel.Stage)
	}
}

func TestMenuListsSavedRounds(t *testing.T) {
	store := openStore(t)
	cfg := core.DefaultConfig()
	if err := store.SaveSession(storage.SavedSession{Player: cfg.Player, Mode: blockblast.IDClassic, Data: []byte{1}}); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, cfg)
	found := -1
	for i, item := range m.items {
		if item.kind == menuResume && item.gameID == blockblast.IDClassic {
			found = i
		}
	}
	if found < 0 {
		t.Fatal("menu does not offer to resume the saved classic round")
	}

	for range found {
		m = pressMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if sel := m.Selected(); sel == nil || !sel.Resume {
		t.Errorf("Selected() = %+v, want a resume selection", sel)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := pressMenu(NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}

	m = pressMenu(NewMenuModel(nil, core.DefaultConfig()), runeKey("q"))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit the menu")
	}
}

func TestStartSelectionSetsStage(t *testing.T) {
	game, err := StartSelection(Selection{GameID: blockblast.IDStages, Stage: 4})
	if err != nil {
		t.Fatalf("StartSelection() error = %v", err)
	}
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3})

	g := game.(*blockblast.Game)
	if g.Stage() != 4 {
		t.Errorf("Stage() = %d, want 4", g.Stage())
	}

	if _, err := StartSelection(Selection{GameID: "nope"}); err == nil {
		t.Error("StartSelection() accepted an unknown mode")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abcdef", 4, "abcdef"},
		{"→x", 6, "  →x"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestMenuViewDescribesCurrentItem(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	view := m.View()
	if !strings.Contains(view, "B L O C K") {
		t.Error("View() is missing the title")
	}
	if desc := m.current().desc; desc == "" || !strings.Contains(view, desc) {
		t.Errorf("View() does not show the description %q", desc)
	}

	m = pressMenu(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if !strings.Contains(m.View(), "Select stage") {
		t.Error("View() is missing the stage picker")
	}
}
