package core

import (
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotVersion is bumped when the snapshot layout changes.
const SnapshotVersion = 1

// SnapshotBlock is a batch slot in serializable form.
type SnapshotBlock struct {
	Slot    int    `msgpack:"slot" json:"slot"`
	Piece   string `msgpack:"piece" json:"piece"`
	Special bool   `msgpack:"special,omitempty" json:"special,omitempty"`
	Helper  bool   `msgpack:"helper,omitempty" json:"helper,omitempty"`
	Target  Coord  `msgpack:"target" json:"target"`
}

// Snapshot is a serializable copy of a session.
type Snapshot struct {
	Version        int             `msgpack:"v" json:"version"`
	Rows           int             `msgpack:"rows" json:"rows"`
	Cols           int             `msgpack:"cols" json:"cols"`
	Grid           [][]Cell        `msgpack:"grid" json:"grid"`
	Batch          []SnapshotBlock `msgpack:"batch" json:"batch"`
	Score          int             `msgpack:"score" json:"score"`
	Combo          int             `msgpack:"combo" json:"combo"`
	ComboBonus     int             `msgpack:"combo_bonus" json:"combo_bonus"`
	HighScore      int             `msgpack:"high" json:"high_score"`
	Phase          Phase           `msgpack:"phase" json:"phase"`
	Mode           Mode            `msgpack:"mode" json:"mode"`
	Stage          int             `msgpack:"stage" json:"stage"`
	BatchesSpawned int             `msgpack:"spawned" json:"batches_spawned"`
	Inventory      map[string]int  `msgpack:"inv" json:"inventory"`
	UsedItems      []string        `msgpack:"used" json:"used_items"`
}

// Snapshot captures the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Version:        SnapshotVersion,
		Rows:           s.board.Rows,
		Cols:           s.board.Cols,
		Grid:           make([][]Cell, s.board.Rows),
		Batch:          make([]SnapshotBlock, 0, BatchSize),
		Score:          s.score.Score,
		Combo:          s.score.Combo,
		ComboBonus:     s.score.ComboBonus,
		HighScore:      s.score.HighScore,
		Phase:          s.phase,
		Mode:           s.mode,
		Stage:          s.stage,
		BatchesSpawned: s.spawned,
		Inventory:      make(map[string]int, len(s.inventory)),
		UsedItems:      []string{},
	}
	for r := 0; r < s.board.Rows; r++ {
		row := make([]Cell, s.board.Cols)
		copy(row, s.board.Cells[r*s.board.Cols:(r+1)*s.board.Cols])
		snap.Grid[r] = row
	}
	for i, blk := range s.batch.Slots {
		if blk == nil {
			continue
		}
		snap.Batch = append(snap.Batch, SnapshotBlock{
			Slot:    i,
			Piece:   blk.Piece.ID,
			Special: blk.Special,
			Helper:  blk.Helper,
			Target:  blk.Target,
		})
	}
	for k, n := range s.inventory {
		snap.Inventory[k.String()] = n
	}
	for k, used := range s.used {
		if used {
			snap.UsedItems = append(snap.UsedItems, k.String())
		}
	}
	sort.Strings(snap.UsedItems)
	return snap
}

// RestoreSession rebuilds a session from a snapshot. The snapshot must match
// the configured board size and reference only catalog pieces.
func RestoreSession(cfg Config, snap Snapshot, rng Source, opts ...Option) (*Session, error) {
	s, err := NewSession(cfg, rng, opts...)
	if err != nil {
		return nil, err
	}
	if snap.Rows != cfg.Rows || snap.Cols != cfg.Cols || len(snap.Grid) != snap.Rows {
		return nil, ruleErr(CodeInvalidSnapshot, "snapshot board %dx%d does not match %dx%d", snap.Rows, snap.Cols, cfg.Rows, cfg.Cols)
	}
	for r, row := range snap.Grid {
		if len(row) != snap.Cols {
			return nil, ruleErr(CodeInvalidSnapshot, "row %d has %d cells, want %d", r, len(row), snap.Cols)
		}
		copy(s.board.Cells[r*s.board.Cols:(r+1)*s.board.Cols], row)
	}
	for _, sb := range snap.Batch {
		if sb.Slot < 0 || sb.Slot >= BatchSize || s.batch.Slots[sb.Slot] != nil {
			return nil, ruleErr(CodeInvalidSnapshot, "invalid batch slot %d", sb.Slot)
		}
		p, ok := s.catalog.Lookup(sb.Piece)
		if !ok {
			return nil, ruleErr(CodeInvalidSnapshot, "unknown piece %q", sb.Piece)
		}
		s.batch.Slots[sb.Slot] = &ActiveBlock{Piece: p, Special: sb.Special, Helper: sb.Helper, Target: sb.Target}
	}

	s.inventory = make(Inventory, len(snap.Inventory))
	for name, n := range snap.Inventory {
		kind, err := ParseItemKind(name)
		if err != nil {
			return nil, ruleErr(CodeInvalidSnapshot, "%v", err)
		}
		s.inventory[kind] = n
	}
	for _, name := range snap.UsedItems {
		kind, err := ParseItemKind(name)
		if err != nil {
			return nil, ruleErr(CodeInvalidSnapshot, "%v", err)
		}
		s.used[kind] = true
	}

	s.score = ScoreState{
		Score:      snap.Score,
		Combo:      snap.Combo,
		ComboBonus: snap.ComboBonus,
		HighScore:  snap.HighScore,
	}
	s.mode = snap.Mode
	s.stage = snap.Stage
	s.spawned = snap.BatchesSpawned

	switch snap.Phase {
	case PhaseIdle, PhaseGameOver:
		s.phase = snap.Phase
	default:
		if s.batch.Remaining() == 0 {
			s.phase = PhaseSpawning
			s.spawn()
		} else {
			s.enterAwaiting()
		}
	}
	return s, nil
}

// EncodeSnapshot serializes a snapshot with msgpack.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a msgpack snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return Snapshot{}, ruleErr(CodeInvalidSnapshot, "unsupported snapshot version %d", snap.Version)
	}
	return snap, nil
}
