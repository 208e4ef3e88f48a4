package config

import (
	"fmt"

	"github.com/vovakirdan/tui-blockblast/internal/games/blockblast/core"
)

// ToEngine converts the YAML configuration into an engine configuration.
// Shape group and item names are resolved here; unknown names are errors.
func (c BlockBlastConfig) ToEngine() (core.Config, error) {
	cfg := core.Config{
		Rows: c.Board.Rows,
		Cols: c.Board.Cols,
		Spawn: core.SpawnParams{
			MaxAttempts:      c.Spawn.MaxAttempts,
			SurvivalBatches:  c.Spawn.SurvivalBatches,
			SpecialChance:    c.Spawn.SpecialChance,
			HelperBaseChance: c.Spawn.Helper.BaseChance,
			HelperFillBoost:  c.Spawn.Helper.FillBoost,
			HelperMaxChance:  c.Spawn.Helper.MaxChance,
		},
		Scoring: core.ScoringParams{
			LineBase:          c.Scoring.LineBase,
			LineGrowth:        c.Scoring.LineGrowth,
			ComboStep:         c.Scoring.ComboStep,
			PerfectClearRatio: c.Scoring.PerfectClearRatio,
			PlacementPerCell:  c.Scoring.PlacementPerCell,
			ItemPerCell:       c.Scoring.ItemPerCell,
		},
		Layout: core.LayoutParams{
			MaxStage:     c.Layout.MaxStage,
			MinObstacles: c.Layout.MinObstacles,
			MaxObstacles: c.Layout.MaxObstacles,
			Exponent:     c.Layout.Exponent,
			MaxAttempts:  c.Layout.MaxAttempts,
		},
		Items:    make(core.Inventory, len(c.Items)),
		TierBias: c.Difficulty.InitialTier,
	}

	for i, t := range c.Tiers {
		ts := core.TierSpec{Name: t.Name, MinScore: t.MinScore, MinStage: t.MinStage}
		if ts.Name == "" {
			ts.Name = fmt.Sprintf("tier%d", i+1)
		}
		for name, w := range t.Weights {
			g, err := core.ParseShapeGroup(name)
			if err != nil {
				return core.Config{}, fmt.Errorf("tier %s: %w", ts.Name, err)
			}
			ts.Weights[g] = w
		}
		cfg.Tiers = append(cfg.Tiers, ts)
	}

	// A fixed schedule keeps only the starting tier.
	if !c.Difficulty.Enabled && len(cfg.Tiers) > 0 {
		idx := c.Difficulty.InitialTier
		if idx < 0 {
			idx = 0
		}
		if idx >= len(cfg.Tiers) {
			idx = len(cfg.Tiers) - 1
		}
		pinned := cfg.Tiers[idx]
		pinned.MinScore, pinned.MinStage = 0, 0
		cfg.Tiers = []core.TierSpec{pinned}
		cfg.TierBias = 0
	}

	for name, n := range c.Items {
		kind, err := core.ParseItemKind(name)
		if err != nil {
			return core.Config{}, fmt.Errorf("items: %w", err)
		}
		cfg.Items[kind] = n
	}

	if err := cfg.Validate(); err != nil {
		return core.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load resolves the configuration, applies the preset and converts it for
// the engine in one step.
func Load(customPath string, preset DifficultyPreset) (core.Config, error) {
	cfg, err := LoadBlockBlast(customPath)
	if err != nil {
		return core.Config{}, err
	}
	ApplyBlockBlastPreset(&cfg, preset)
	return cfg.ToEngine()
}
