package core

import "math"

// ScoringParams holds the scoring constants.
type ScoringParams struct {
	LineBase          int     // points for a single line
	LineGrowth        float64 // multiplier per extra simultaneous line
	ComboStep         int     // bonus per combo level above the first
	PerfectClearRatio float64 // share of the pre-clear score awarded on a perfect clear
	PlacementPerCell  int     // points per placed cell, outside the combo chain
	ItemPerCell       int     // points per cell emptied by an item
}

// DefaultScoringParams returns the standard scoring constants.
func DefaultScoringParams() ScoringParams {
	return ScoringParams{
		LineBase:          100,
		LineGrowth:        1.1,
		ComboStep:         50,
		PerfectClearRatio: 0.2,
		PlacementPerCell:  1,
		ItemPerCell:       50,
	}
}

// LineScore returns round(LineBase * n * LineGrowth^(n-1)) for n cleared lines.
func (p ScoringParams) LineScore(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Round(float64(p.LineBase) * float64(n) * math.Pow(p.LineGrowth, float64(n-1))))
}

// ScoreState tracks score and combo for one round.
type ScoreState struct {
	Score      int
	Combo      int
	ComboBonus int // bonus awarded by the last clearing placement
	HighScore  int
}

// ClearScore breaks down the points awarded for one placement's clear.
type ClearScore struct {
	Lines        int
	Base         int
	ComboBonus   int
	PerfectBonus int
	Gain         int
}

// AddPlacement awards the per-cell placement points. Combo is untouched.
func (s *ScoreState) AddPlacement(cells int, p ScoringParams) int {
	gain := cells * p.PlacementPerCell
	s.add(gain)
	return gain
}

// ApplyClear advances the combo chain for a placement that cleared n lines.
// boardEmpty is the board state after clearing.
func (s *ScoreState) ApplyClear(n int, boardEmpty bool, p ScoringParams) ClearScore {
	if n <= 0 {
		s.Combo = 0
		s.ComboBonus = 0
		return ClearScore{}
	}
	s.Combo++
	cs := ClearScore{
		Lines:      n,
		Base:       p.LineScore(n),
		ComboBonus: (s.Combo - 1) * p.ComboStep,
	}
	if boardEmpty {
		cs.PerfectBonus = int(math.Floor(p.PerfectClearRatio * float64(s.Score)))
	}
	cs.Gain = cs.Base + cs.ComboBonus + cs.PerfectBonus
	s.ComboBonus = cs.ComboBonus
	s.add(cs.Gain)
	return cs
}

// AddItemClear awards the flat bonus for cells emptied by an item.
// Items are not placements, so combo is untouched.
func (s *ScoreState) AddItemClear(cells int, p ScoringParams) int {
	gain := cells * p.ItemPerCell
	s.add(gain)
	return gain
}

// ResetRound clears score and combo but keeps the high score.
func (s *ScoreState) ResetRound() {
	s.Score = 0
	s.Combo = 0
	s.ComboBonus = 0
}

func (s *ScoreState) add(gain int) {
	if gain <= 0 {
		return
	}
	s.Score += gain
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}
