package core

// Action is a semantic input, independent of the key that produced it.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move cursor up
	ActionDown             // S, Down arrow - move cursor down
	ActionLeft             // A, Left arrow - move cursor left
	ActionRight            // D, Right arrow - move cursor right
	ActionConfirm          // Enter, Space - place block or fire armed item
	ActionNextSlot         // Tab - select next block
	ActionSlot1            // 1 - select first block
	ActionSlot2            // 2 - select second block
	ActionSlot3            // 3 - select third block
	ActionBomb             // X - arm bomb
	ActionLaser            // L - arm laser
	ActionHourglass        // H - reroll batch
	ActionBack             // B, Escape - disarm item or go back
	ActionRestart          // R - restart after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionConfirm:   "Confirm",
	ActionNextSlot:  "NextSlot",
	ActionSlot1:     "Slot1",
	ActionSlot2:     "Slot2",
	ActionSlot3:     "Slot3",
	ActionBomb:      "Bomb",
	ActionLaser:     "Laser",
	ActionHourglass: "Hourglass",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
}

// String returns the action name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered by one key event.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf returns a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a > ActionQuit {
		return
	}
	f.bits |= 1 << uint(a)
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a > ActionQuit {
		return false
	}
	return f.bits&(1<<uint(a)) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}
