// Package blockblast adapts the block-placement engine to the platform's
// Game interface: abstract actions move a cursor, pick blocks and fire
// items, and the current state is drawn into a character Screen.
package blockblast

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blockblast/internal/config"
	"github.com/vovakirdan/tui-blockblast/internal/core"
	bb "github.com/vovakirdan/tui-blockblast/internal/games/blockblast/core"
	"github.com/vovakirdan/tui-blockblast/internal/registry"
)

// Mode IDs used by the registry, CLI and score storage.
const (
	IDClassic = "classic"
	IDStages  = "stages"
)

// Game drives one engine Session from key-level actions.
type Game struct {
	mode    bb.Mode
	session *bb.Session
	loadErr error

	screenW  int
	screenH  int
	tooSmall bool

	cursor  bb.Coord
	slot    int
	armed   bb.ItemKind
	arming  bool
	message string

	highScore    int
	stageCleared bool
	firstStage   int // stages mode starts here, 1 when unset
}

// Package-level settings applied on the next Reset.
var (
	configPath   string
	presetChoice = config.DifficultyNormal
	logger       = log.New(io.Discard)
)

// SetConfigPath sets a custom YAML config path. Empty means the default search.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects the difficulty preset for new rounds.
func SetDifficultyPreset(p config.DifficultyPreset) {
	presetChoice = p
}

// SetLogger routes engine debug events to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// SetFirstStage sets the first stage for this game only.
func (g *Game) SetFirstStage(stage int) {
	g.firstStage = max(stage, 1)
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: bb.ModeClassic}
}

// NewStages creates a stage-mode game.
func NewStages() *Game {
	return &Game{mode: bb.ModeStage}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          IDClassic,
		Title:       "Block Blast",
		Description: "Endless round on an empty board; blocks get harder as the score grows",
	}, func() registry.Game { return New() })
	registry.Register(registry.GameInfo{
		ID:          IDStages,
		Title:       "Block Blast (Stages)",
		Description: "Clear the stone obstacles of each stage; later stages start fuller",
	}, func() registry.Game { return NewStages() })
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == bb.ModeStage {
		return IDStages
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == bb.ModeStage {
		return "Block Blast (Stages)"
	}
	return "Block Blast"
}

// Reset loads the configuration and starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engineCfg, err := config.Load(configPath, presetChoice)
	if err != nil {
		g.loadErr = err
		g.session = nil
		return
	}
	s, err := bb.NewSession(engineCfg, bb.NewSource(seed), bb.WithLogger(logger))
	if err != nil {
		g.loadErr = err
		g.session = nil
		return
	}
	g.loadErr = nil
	g.session = s
	g.start(max(g.firstStage, 1))
}

// start begins a round on the given stage (ignored in classic mode).
func (g *Game) start(stage int) {
	if g.mode == bb.ModeStage {
		g.session.StartStage(stage)
	} else {
		g.session.StartRound(nil)
	}
	g.cursor = bb.At(g.session.Config().Rows/2, g.session.Config().Cols/2)
	g.slot = 0
	g.arming = false
	g.stageCleared = false
	g.message = ""
	g.selectNext(0)
}

// Resize updates the screen size without touching the round.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minWidth || g.screenH < minHeight
}

// Step applies one input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.message = ""

	if g.stageCleared {
		if in.Has(core.ActionConfirm) {
			g.start(g.session.Stage() + 1)
		}
		return core.StepResult{State: g.State()}
	}

	if g.session.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	case in.Has(core.ActionSlot1):
		g.selectSlot(0)
	case in.Has(core.ActionSlot2):
		g.selectSlot(1)
	case in.Has(core.ActionSlot3):
		g.selectSlot(2)
	case in.Has(core.ActionNextSlot):
		g.selectNext(g.slot + 1)
	case in.Has(core.ActionBomb):
		g.arm(bb.ItemBomb)
	case in.Has(core.ActionLaser):
		g.arm(bb.ItemLaser)
	case in.Has(core.ActionHourglass):
		g.useItem(bb.ItemHourglass)
	case in.Has(core.ActionBack):
		g.arming = false
	case in.Has(core.ActionConfirm):
		if g.arming {
			g.useItem(g.armed)
		} else {
			g.place()
		}
	}

	g.trackHighScore()
	return core.StepResult{State: g.State(), Message: g.message}
}

func (g *Game) moveCursor(dr, dc int) {
	cfg := g.session.Config()
	g.cursor.Row = core.Wrap(g.cursor.Row+dr, cfg.Rows)
	g.cursor.Col = core.Wrap(g.cursor.Col+dc, cfg.Cols)
}

func (g *Game) selectSlot(slot int) {
	if _, ok := g.session.Batch().Block(slot); !ok {
		g.message = fmt.Sprintf("slot %d is empty", slot+1)
		return
	}
	g.slot = slot
	g.arming = false
}

// selectNext moves the selection to the first non-empty slot at or after
// from, wrapping around.
func (g *Game) selectNext(from int) {
	batch := g.session.Batch()
	for i := range bb.BatchSize {
		slot := (from + i) % bb.BatchSize
		if _, ok := batch.Block(slot); ok {
			g.slot = slot
			g.arming = false
			return
		}
	}
}

func (g *Game) arm(kind bb.ItemKind) {
	if !g.session.ItemReady(kind) {
		g.message = fmt.Sprintf("%s unavailable", kind)
		return
	}
	g.armed = kind
	g.arming = true
}

func (g *Game) place() {
	res, err := g.session.Place(g.slot, g.cursor.Row, g.cursor.Col)
	if err != nil {
		g.message = describe(err)
		return
	}
	switch {
	case res.PerfectClear:
		g.message = fmt.Sprintf("Perfect clear! +%d", res.ScoreGain+res.PlacementPoints)
	case res.LinesCleared > 0 && res.ComboAfter > 1:
		g.message = fmt.Sprintf("%d lines, combo x%d  +%d", res.LinesCleared, res.ComboAfter, res.ScoreGain+res.PlacementPoints)
	case res.LinesCleared > 0:
		g.message = fmt.Sprintf("%d lines  +%d", res.LinesCleared, res.ScoreGain+res.PlacementPoints)
	}
	g.selectNext(g.slot)
	g.checkStageCleared()
}

func (g *Game) useItem(kind bb.ItemKind) {
	g.arming = false
	res, err := g.session.UseItem(kind, g.cursor.Row, g.cursor.Col)
	if err != nil {
		g.message = describe(err)
		return
	}
	if res.Rerolled {
		g.message = "Batch rerolled"
		g.selectNext(0)
	} else {
		g.message = fmt.Sprintf("%s cleared %d cells  +%d", kind, res.CellsAffected, res.BonusAwarded)
	}
	g.checkStageCleared()
}

// checkStageCleared ends a stage once every obstacle cell is gone.
func (g *Game) checkStageCleared() {
	if g.mode != bb.ModeStage || g.session.IsGameOver() {
		return
	}
	if obstaclesLeft(g.session.Board()) == 0 {
		g.stageCleared = true
		g.message = fmt.Sprintf("Stage %d cleared!", g.session.Stage())
	}
}

func (g *Game) trackHighScore() {
	if hs := g.session.Score().HighScore; hs > g.highScore {
		g.highScore = hs
	}
}

func obstaclesLeft(b *bb.Board) int {
	n := 0
	for _, c := range b.Cells {
		if c.Filled && c.Tag.Color == bb.ColorStone {
			n++
		}
	}
	return n
}

// describe turns engine rule errors into short status lines.
func describe(err error) string {
	var re *bb.RuleError
	if !errors.As(err, &re) {
		return err.Error()
	}
	switch {
	case errors.Is(err, bb.ErrInvalidPlacement):
		return "Doesn't fit there"
	case errors.Is(err, bb.ErrInvalidItemTarget):
		return "Aim inside the board"
	default:
		return re.Message
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{HighScore: g.highScore, GameOver: g.loadErr != nil}
	}
	return core.GameState{
		Score:        g.session.Score().Score,
		HighScore:    max(g.highScore, g.session.Score().HighScore),
		GameOver:     g.session.IsGameOver(),
		StageCleared: g.stageCleared,
	}
}

// Stage returns the stage being played, 0 in classic mode.
func (g *Game) Stage() int {
	if g.session == nil {
		return 0
	}
	return g.session.Stage()
}

// Cursor returns the board cell under the cursor.
func (g *Game) Cursor() bb.Coord {
	return g.cursor
}

// Session exposes the underlying engine session.
func (g *Game) Session() *bb.Session {
	return g.session
}

// Err returns the configuration error from the last Reset, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// SaveState encodes the running round for later resumption.
func (g *Game) SaveState() ([]byte, error) {
	if g.session == nil {
		return nil, errors.New("blockblast: no session")
	}
	if g.session.IsGameOver() {
		return nil, bb.ErrRoundOver
	}
	return bb.EncodeSnapshot(g.session.Snapshot())
}

// LoadState replaces the current session with a saved one. Reset must have
// run first so the configuration and screen size are known.
func (g *Game) LoadState(data []byte) error {
	if g.session == nil {
		return errors.New("blockblast: no session")
	}
	snap, err := bb.DecodeSnapshot(data)
	if err != nil {
		return err
	}
	if snap.Mode != g.mode {
		return fmt.Errorf("blockblast: saved round is %s, not %s", snap.Mode, g.mode)
	}
	s, err := bb.RestoreSession(g.session.Config(), snap, bb.NewSource(time.Now().UnixNano()), bb.WithLogger(logger))
	if err != nil {
		return err
	}
	g.session = s
	g.arming = false
	g.stageCleared = false
	g.selectNext(0)
	g.trackHighScore()
	return nil
}
