package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blockblast/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Place     key.Binding
	NextSlot  key.Binding
	Slot1     key.Binding
	Slot2     key.Binding
	Slot3     key.Binding
	Bomb      key.Binding
	Laser     key.Binding
	Hourglass key.Binding
	Back      key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.NextSlot, k.Bomb, k.Laser, k.Hourglass, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.NextSlot, k.Slot1, k.Slot2, k.Slot3},
		{k.Bomb, k.Laser, k.Hourglass, k.Back},
		{k.Restart, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Place:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "place")),
		NextSlot:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next block")),
		Slot1:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "block 1")),
		Slot2:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "block 2")),
		Slot3:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "block 3")),
		Bomb:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "bomb")),
		Laser:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "laser")),
		Hourglass: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hourglass")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "disarm/menu")),
		Restart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
	}
}

// KeyMapper turns key presses into game actions.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper returns a mapper using DefaultGameKeyMap.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// MapKey returns the action bound to msg, ActionNone for unbound keys, and
// whether the key quits.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.Keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Place):
		return core.ActionConfirm, false
	case key.Matches(msg, k.NextSlot):
		return core.ActionNextSlot, false
	case key.Matches(msg, k.Slot1):
		return core.ActionSlot1, false
	case key.Matches(msg, k.Slot2):
		return core.ActionSlot2, false
	case key.Matches(msg, k.Slot3):
		return core.ActionSlot3, false
	case key.Matches(msg, k.Bomb):
		return core.ActionBomb, false
	case key.Matches(msg, k.Laser):
		return core.ActionLaser, false
	case key.Matches(msg, k.Hourglass):
		return core.ActionHourglass, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame sets the action bound to msg in frame and reports a quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuKeyMap defines the menu key bindings.
type MenuKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	StageDown key.Binding
	StageUp   key.Binding
	Select    key.Binding
	Scores    key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.StageDown, k.StageUp, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.StageDown, k.StageUp}, {k.Select, k.Scores, k.Quit}}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓", "down")),
		StageDown: key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←", "stage-")),
		StageUp:   key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→", "stage+")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Scores:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "b", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
