package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Phase is the session's position in the turn cycle.
type Phase uint8

const (
	PhaseIdle Phase = iota // no round started
	PhaseSpawning
	PhaseAwaitingPlacement
	PhaseEvaluating
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseSpawning:
		return "SPAWNING"
	case PhaseAwaitingPlacement:
		return "AWAITING_PLACEMENT"
	case PhaseEvaluating:
		return "EVALUATING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// PlaceResult describes a successful placement.
type PlaceResult struct {
	Slot            int
	Origin          Coord
	PieceID         string
	PlacementPoints int // per-cell points, outside the combo chain
	Lines           LineSet
	LinesCleared    int
	Cleared         []Coord // cells emptied by the clear, each once
	SpecialCleared  int
	Clear           ClearScore
	ScoreGain       int // line-clear gain including combo and perfect-clear bonus
	ComboAfter      int
	PerfectClear    bool
	Refilled        bool // the batch ran out and a new one was drawn
	GameOver        bool
	Score           int
}

// Preview is the predicted outcome of a placement.
type Preview struct {
	Valid bool
	Lines LineSet
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session debug events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session owns one board, one batch and the score for a sequence of rounds.
// A Session is not safe for concurrent use; callers serialize commands.
type Session struct {
	cfg       Config
	catalog   *Catalog
	rng       Source
	spawner   *Spawner
	logger    *log.Logger
	board     *Board
	batch     Batch
	score     ScoreState
	phase     Phase
	mode      Mode
	stage     int
	spawned   int // batches drawn this round
	inventory Inventory
	used      map[ItemKind]bool
	lastSpawn SpawnInfo
}

// NewSession validates cfg and creates an idle session.
func NewSession(cfg Config, rng Source, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ruleErr(CodeInvalidConfig, "a random source is required")
	}
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = StandardCatalog()
	}
	s := &Session{
		cfg:       cfg,
		catalog:   catalog,
		rng:       rng,
		spawner:   NewSpawner(catalog, cfg.Spawn, rng),
		logger:    log.New(io.Discard),
		board:     NewBoard(cfg.Rows, cfg.Cols),
		inventory: cfg.Items.Clone(),
		used:      make(map[ItemKind]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// StartRound resets the board, score and per-round item use, applies the
// optional stage layout and draws the first batch.
func (s *Session) StartRound(layout *StageLayout) {
	s.board.Reset()
	s.mode = ModeClassic
	s.stage = 0
	if layout != nil {
		s.board.ApplyMask(layout.Mask, Tag{Color: ColorStone})
		s.mode = ModeStage
		s.stage = layout.Stage
	}
	s.score.ResetRound()
	s.used = make(map[ItemKind]bool)
	s.batch = Batch{}
	s.spawned = 0
	s.lastSpawn = SpawnInfo{}
	s.logger.Debug("round started", "mode", s.mode, "stage", s.stage, "obstacles", s.board.FilledCount())
	s.phase = PhaseSpawning
	s.spawn()
}

// StartStage generates the layout for a stage and starts a round on it.
func (s *Session) StartStage(stage int) StageLayout {
	layout := GenerateLayout(stage, s.cfg.Rows, s.cfg.Cols, s.cfg.Layout, s.rng)
	s.StartRound(&layout)
	return layout
}

// SpawnBatch returns the active batch, drawing a new one if none is pending.
func (s *Session) SpawnBatch() (Batch, error) {
	switch s.phase {
	case PhaseIdle:
		return Batch{}, ruleErr(CodeRoundOver, "no round in progress")
	case PhaseGameOver:
		return s.batch.Clone(), ruleErr(CodeRoundOver, "round is over")
	}
	if s.batch.Remaining() == 0 {
		s.phase = PhaseSpawning
		s.spawn()
	}
	return s.batch.Clone(), nil
}

// Place puts the block from slot at (row, col), clears full lines and
// scores the result. On error nothing changes.
func (s *Session) Place(slot, row, col int) (PlaceResult, error) {
	if err := s.requirePlaying(); err != nil {
		return PlaceResult{}, err
	}
	blk, ok := s.batch.Block(slot)
	if !ok {
		return PlaceResult{}, ruleErr(CodeUnknownSlot, "slot %d is empty or does not exist", slot)
	}
	if !CanPlace(s.board, blk.Piece, row, col) {
		return PlaceResult{}, ruleErr(CodeInvalidPlacement, "%s does not fit at %s", blk.Piece.ID, At(row, col))
	}

	s.phase = PhaseEvaluating
	res := PlaceResult{Slot: slot, Origin: At(row, col), PieceID: blk.Piece.ID}

	placed := s.board.Place(blk.Piece, row, col, blk.Tag())

	// The clear is scored against the score before this command; placement
	// points follow it.
	lines := s.board.DetectFullLines()
	report := s.board.ClearLines(lines)
	perfect := !lines.Empty() && s.board.IsEmpty()
	res.Clear = s.score.ApplyClear(lines.Count(), perfect, s.cfg.Scoring)
	res.PlacementPoints = s.score.AddPlacement(placed, s.cfg.Scoring)
	res.Lines = lines
	res.LinesCleared = lines.Count()
	res.Cleared = report.Cells
	res.SpecialCleared = report.Special
	res.ScoreGain = res.Clear.Gain
	res.ComboAfter = s.score.Combo
	res.PerfectClear = perfect

	s.batch.Slots[slot] = nil
	if s.batch.Remaining() == 0 {
		s.phase = PhaseSpawning
		s.spawn()
		res.Refilled = true
	} else {
		s.enterAwaiting()
	}
	res.GameOver = s.phase == PhaseGameOver
	res.Score = s.score.Score
	return res, nil
}

// Preview predicts the lines a placement would clear without changing state.
func (s *Session) Preview(slot, row, col int) (Preview, error) {
	blk, ok := s.batch.Block(slot)
	if !ok {
		return Preview{}, ruleErr(CodeUnknownSlot, "slot %d is empty or does not exist", slot)
	}
	if !CanPlace(s.board, blk.Piece, row, col) {
		return Preview{}, nil
	}
	return Preview{Valid: true, Lines: s.board.PredictFullLines(blk.Piece, row, col)}, nil
}

// UseItem applies an item. Bomb and laser need an in-bounds target; the
// hourglass ignores it. Each item works once per round and consumes one use
// from the inventory.
func (s *Session) UseItem(kind ItemKind, row, col int) (ItemResult, error) {
	if err := s.requirePlaying(); err != nil {
		return ItemResult{}, err
	}
	if int(kind) >= numItemKinds {
		return ItemResult{}, ruleErr(CodeItemUnavailable, "unknown item %s", kind)
	}
	if s.inventory[kind] <= 0 {
		return ItemResult{}, ruleErr(CodeItemUnavailable, "no %s left", kind)
	}
	if s.used[kind] {
		return ItemResult{}, ruleErr(CodeItemUnavailable, "%s already used this round", kind)
	}
	if kind.Targeted() && !s.board.InBounds(row, col) {
		return ItemResult{}, ruleErr(CodeInvalidItemTarget, "target %s is off the board", At(row, col))
	}

	s.inventory[kind]--
	s.used[kind] = true
	res := ItemResult{Kind: kind}

	if kind.Targeted() {
		report := s.board.ClearCells(itemCells(s.board, kind, row, col))
		res.Cells = report.Cells
		res.CellsAffected = report.Count()
		res.SpecialCleared = report.Special
		res.BonusAwarded = s.score.AddItemClear(report.Count(), s.cfg.Scoring)
		s.enterAwaiting()
	} else {
		s.batch = Batch{}
		s.phase = PhaseSpawning
		s.spawn()
		res.Rerolled = true
	}
	s.logger.Debug("item used", "item", kind, "target", At(row, col), "cells", res.CellsAffected, "bonus", res.BonusAwarded)
	res.GameOver = s.phase == PhaseGameOver
	return res, nil
}

// IsGameOver reports whether the round has ended.
func (s *Session) IsGameOver() bool {
	return s.phase == PhaseGameOver
}

// Board returns a copy of the board.
func (s *Session) Board() *Board { return s.board.Clone() }

// Batch returns a copy of the active batch.
func (s *Session) Batch() Batch { return s.batch.Clone() }

// Score returns the score state.
func (s *Session) Score() ScoreState { return s.score }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Mode returns the mode of the current round.
func (s *Session) Mode() Mode { return s.mode }

// Stage returns the stage number, or 0 in classic rounds.
func (s *Session) Stage() int { return s.stage }

// Catalog returns the session's shape table.
func (s *Session) Catalog() *Catalog { return s.catalog }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Inventory returns a copy of the remaining item uses.
func (s *Session) Inventory() Inventory { return s.inventory.Clone() }

// ItemUsed reports whether the item was used this round.
func (s *Session) ItemUsed(kind ItemKind) bool { return s.used[kind] }

// ItemReady reports whether the item can be used right now.
func (s *Session) ItemReady(kind ItemKind) bool {
	return s.phase == PhaseAwaitingPlacement && s.inventory[kind] > 0 && !s.used[kind]
}

// LastSpawn reports how the most recent batch was drawn.
func (s *Session) LastSpawn() SpawnInfo { return s.lastSpawn }

// BatchesSpawned returns the number of batches drawn this round.
func (s *Session) BatchesSpawned() int { return s.spawned }

// Tier returns the difficulty tier used for the next batch.
func (s *Session) Tier() TierSpec {
	return s.cfg.Tiers[s.cfg.tierFor(s.mode, s.score.Score, s.stage)]
}

// SurvivalActive reports whether the next batch uses the survival guard.
func (s *Session) SurvivalActive() bool {
	return s.mode == ModeStage && s.spawned < s.cfg.Spawn.SurvivalBatches
}

func (s *Session) requirePlaying() error {
	switch s.phase {
	case PhaseIdle:
		return ruleErr(CodeRoundOver, "no round in progress")
	case PhaseGameOver:
		return ruleErr(CodeRoundOver, "round is over")
	}
	return nil
}

func (s *Session) spawn() {
	tier := s.Tier()
	survival := s.SurvivalActive()
	batch, info := s.spawner.Spawn(s.board, tier.Weights, survival)
	s.batch = batch
	s.spawned++
	s.lastSpawn = info
	s.logger.Debug("batch spawned",
		"tier", tier.Name,
		"attempts", info.Attempts,
		"survival", info.Survival,
		"helper", info.Helper,
		"fallback", info.Fallback,
	)
	s.enterAwaiting()
}

func (s *Session) enterAwaiting() {
	s.phase = PhaseAwaitingPlacement
	if IsGameOver(s.board, s.batch) {
		s.phase = PhaseGameOver
		s.logger.Debug("game over", "score", s.score.Score, "filled", s.board.FilledCount())
	}
}
