package config

import (
	_ "embed"
)

//go:embed defaults/blockblast.yaml
var defaultBlockBlastYAML []byte

// DefaultBlockBlastConfig returns the default BlockBlast configuration.
func DefaultBlockBlastConfig() BlockBlastConfig {
	return BlockBlastConfig{
		Board: BoardConfig{
			Rows: 8,
			Cols: 8,
		},
		Spawn: SpawnConfig{
			MaxAttempts:     10,
			SurvivalBatches: 10,
			SpecialChance:   0.1,
			Helper: HelperConfig{
				BaseChance: 0.1,
				FillBoost:  0.5,
				MaxChance:  0.5,
			},
		},
		Tiers: []TierConfig{
			{Name: "easy", MinScore: 0, MinStage: 1, Weights: map[string]int{
				"mono": 4, "domino": 20, "tromino": 30, "tetromino": 30, "pentomino": 10, "large": 6,
			}},
			{Name: "normal", MinScore: 2000, MinStage: 10, Weights: map[string]int{
				"mono": 2, "domino": 12, "tromino": 26, "tetromino": 34, "pentomino": 16, "large": 10,
			}},
			{Name: "hard", MinScore: 6000, MinStage: 25, Weights: map[string]int{
				"mono": 1, "domino": 8, "tromino": 20, "tetromino": 34, "pentomino": 22, "large": 15,
			}},
			{Name: "expert", MinScore: 15000, MinStage: 40, Weights: map[string]int{
				"mono": 0, "domino": 5, "tromino": 15, "tetromino": 35, "pentomino": 25, "large": 20,
			}},
		},
		Scoring: ScoringConfig{
			LineBase:          100,
			LineGrowth:        1.1,
			ComboStep:         50,
			PerfectClearRatio: 0.2,
			PlacementPerCell:  1,
			ItemPerCell:       50,
		},
		Layout: LayoutConfig{
			MaxStage:     50,
			MinObstacles: 4,
			MaxObstacles: 24,
			Exponent:     1.5,
			MaxAttempts:  1000,
		},
		Items: map[string]int{
			"bomb":      1,
			"laser":     1,
			"hourglass": 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			InitialTier: 0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBlockBlastYAML
}
