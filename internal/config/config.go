// Package config provides YAML-based game configuration loading and
// difficulty presets for BlockBlast.
package config

// BlockBlastConfig contains all configuration for the BlockBlast engine.
type BlockBlastConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Tiers      []TierConfig     `yaml:"tiers"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Layout     LayoutConfig     `yaml:"layout"`
	Items      map[string]int   `yaml:"items"` // starting inventory by item name
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SpawnConfig defines the batch spawner knobs.
type SpawnConfig struct {
	MaxAttempts     int          `yaml:"max_attempts"`     // redraws before accepting a dead batch
	SurvivalBatches int          `yaml:"survival_batches"` // guarded batches at the start of a stage
	SpecialChance   float64      `yaml:"special_chance"`   // gold roll per slot
	Helper          HelperConfig `yaml:"helper"`
}

// HelperConfig defines how often a helper piece is forced.
type HelperConfig struct {
	BaseChance float64 `yaml:"base_chance"`
	FillBoost  float64 `yaml:"fill_boost"` // added per unit of board fill ratio
	MaxChance  float64 `yaml:"max_chance"`
}

// TierConfig is one entry of the difficulty weight schedule.
type TierConfig struct {
	Name     string         `yaml:"name"`
	MinScore int            `yaml:"min_score"`
	MinStage int            `yaml:"min_stage"`
	Weights  map[string]int `yaml:"weights"` // shape group -> relative weight
}

// ScoringConfig defines the scoring constants.
type ScoringConfig struct {
	LineBase          int     `yaml:"line_base"`
	LineGrowth        float64 `yaml:"line_growth"`
	ComboStep         int     `yaml:"combo_step"`
	PerfectClearRatio float64 `yaml:"perfect_clear_ratio"`
	PlacementPerCell  int     `yaml:"placement_per_cell"`
	ItemPerCell       int     `yaml:"item_per_cell"`
}

// LayoutConfig defines the stage prefill curve.
type LayoutConfig struct {
	MaxStage     int     `yaml:"max_stage"`
	MinObstacles int     `yaml:"min_obstacles"`
	MaxObstacles int     `yaml:"max_obstacles"`
	Exponent     float64 `yaml:"exponent"`
	MaxAttempts  int     `yaml:"max_attempts"`
}

// DifficultyConfig defines how the weight schedule is walked.
type DifficultyConfig struct {
	Enabled     bool `yaml:"enabled"`      // false pins the schedule at InitialTier
	InitialTier int  `yaml:"initial_tier"` // offset into the tier list
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty selects normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), true
	default:
		return "", false
	}
}

// InitialTierForPreset returns the starting tier offset for a preset.
func InitialTierForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyHard:
		return 1
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
