package core

import "fmt"

// TierSpec is one difficulty tier of the spawn weight schedule.
// A tier applies once the score (classic rounds) or the stage number
// (stage rounds) reaches its threshold.
type TierSpec struct {
	Name     string
	MinScore int
	MinStage int
	Weights  WeightTable
}

// DefaultTiers returns the standard weight schedule. Higher tiers shift
// weight toward larger shapes.
func DefaultTiers() []TierSpec {
	return []TierSpec{
		{Name: "easy", MinScore: 0, MinStage: 1, Weights: WeightTable{
			GroupMono: 4, GroupDomino: 20, GroupTromino: 30, GroupTetromino: 30, GroupPentomino: 10, GroupLarge: 6,
		}},
		{Name: "normal", MinScore: 2000, MinStage: 10, Weights: WeightTable{
			GroupMono: 2, GroupDomino: 12, GroupTromino: 26, GroupTetromino: 34, GroupPentomino: 16, GroupLarge: 10,
		}},
		{Name: "hard", MinScore: 6000, MinStage: 25, Weights: WeightTable{
			GroupMono: 1, GroupDomino: 8, GroupTromino: 20, GroupTetromino: 34, GroupPentomino: 22, GroupLarge: 15,
		}},
		{Name: "expert", MinScore: 15000, MinStage: 40, Weights: WeightTable{
			GroupMono: 0, GroupDomino: 5, GroupTromino: 15, GroupTetromino: 35, GroupPentomino: 25, GroupLarge: 20,
		}},
	}
}

// Config holds everything a Session needs.
type Config struct {
	Rows     int
	Cols     int
	Catalog  *Catalog // nil selects StandardCatalog
	Tiers    []TierSpec
	TierBias int // shifts the selected tier, clamped to the schedule
	Spawn    SpawnParams
	Scoring  ScoringParams
	Layout   LayoutParams
	Items    Inventory // starting inventory for a new session
}

// DefaultConfig returns the standard 8x8 configuration.
func DefaultConfig() Config {
	return Config{
		Rows:    DefaultRows,
		Cols:    DefaultCols,
		Tiers:   DefaultTiers(),
		Spawn:   DefaultSpawnParams(),
		Scoring: DefaultScoringParams(),
		Layout:  DefaultLayoutParams(),
		Items: Inventory{
			ItemBomb:      1,
			ItemLaser:     1,
			ItemHourglass: 1,
		},
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return ruleErr(CodeInvalidConfig, "board must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if len(c.Tiers) == 0 {
		return ruleErr(CodeInvalidConfig, "at least one difficulty tier is required")
	}
	for i, t := range c.Tiers {
		for g, w := range t.Weights {
			if w < 0 {
				return ruleErr(CodeInvalidConfig, "tier %d (%s): negative weight for %s", i, t.Name, ShapeGroup(g))
			}
		}
	}
	if c.Spawn.MaxAttempts < 1 {
		return ruleErr(CodeInvalidConfig, "spawn max attempts must be positive, got %d", c.Spawn.MaxAttempts)
	}
	if c.Spawn.SurvivalBatches < 0 {
		return ruleErr(CodeInvalidConfig, "survival window cannot be negative, got %d", c.Spawn.SurvivalBatches)
	}
	if c.Layout.MaxAttempts < 0 {
		return ruleErr(CodeInvalidConfig, "layout max attempts cannot be negative, got %d", c.Layout.MaxAttempts)
	}
	if c.Layout.MinObstacles < 0 || c.Layout.MaxObstacles < c.Layout.MinObstacles {
		return ruleErr(CodeInvalidConfig, "obstacle range [%d, %d] is invalid", c.Layout.MinObstacles, c.Layout.MaxObstacles)
	}
	for k, n := range c.Items {
		if int(k) >= numItemKinds {
			return ruleErr(CodeInvalidConfig, "unknown item kind %d", k)
		}
		if n < 0 {
			return ruleErr(CodeInvalidConfig, "item %s has negative count", k)
		}
	}
	return nil
}

// tierFor picks the tier index for the given progress.
func (c Config) tierFor(mode Mode, score, stage int) int {
	idx := 0
	for i, t := range c.Tiers {
		if mode == ModeStage {
			if stage >= t.MinStage {
				idx = i
			}
		} else if score >= t.MinScore {
			idx = i
		}
	}
	idx += c.TierBias
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.Tiers) {
		idx = len(c.Tiers) - 1
	}
	return idx
}

// Mode distinguishes an open classic round from a prefilled stage round.
type Mode uint8

const (
	ModeClassic Mode = iota
	ModeStage
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeStage:
		return "stage"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}
