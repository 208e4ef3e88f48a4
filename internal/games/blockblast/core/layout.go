package core

import (
	"math"
	"strings"
)

// LayoutParams configures stage prefill generation.
type LayoutParams struct {
	MaxStage     int
	MinObstacles int     // target at stage 1
	MaxObstacles int     // target at MaxStage
	Exponent     float64 // power-law curve between the two
	MaxAttempts  int     // cell draws before settling for fewer obstacles
}

// DefaultLayoutParams returns the standard stage curve.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		MaxStage:     50,
		MinObstacles: 4,
		MaxObstacles: 24,
		Exponent:     1.5,
		MaxAttempts:  1000,
	}
}

// StageLayout is the prefill mask for one stage.
type StageLayout struct {
	Stage int      `msgpack:"stage" json:"stage"`
	Mask  [][]bool `msgpack:"mask" json:"mask"`
}

// Count returns the number of prefilled cells.
func (l StageLayout) Count() int {
	n := 0
	for _, row := range l.Mask {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// String renders the mask as rows of '#' and '.'.
func (l StageLayout) String() string {
	lines := make([]string, len(l.Mask))
	for r, row := range l.Mask {
		var sb strings.Builder
		for _, on := range row {
			if on {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// TargetObstacles interpolates the obstacle count for a stage along
// (stage-1)/(MaxStage-1) raised to Exponent. Stages outside
// [1, MaxStage] are clamped.
func TargetObstacles(stage int, p LayoutParams) int {
	if stage < 1 {
		stage = 1
	}
	if p.MaxStage > 1 && stage > p.MaxStage {
		stage = p.MaxStage
	}
	t := 0.0
	if p.MaxStage > 1 {
		t = float64(stage-1) / float64(p.MaxStage-1)
	}
	exp := p.Exponent
	if exp <= 0 {
		exp = 1
	}
	span := float64(p.MaxObstacles - p.MinObstacles)
	return int(math.Round(float64(p.MinObstacles) + span*math.Pow(t, exp)))
}

// GenerateLayout picks obstacle cells by rejection sampling. A cell is
// accepted only if its row stays below cols-1 filled cells and its column
// below rows-1, so no line starts near-complete. When MaxAttempts runs out
// the layout keeps however many obstacles were accepted.
func GenerateLayout(stage, rows, cols int, p LayoutParams, rng Source) StageLayout {
	mask := make([][]bool, rows)
	for r := range mask {
		mask[r] = make([]bool, cols)
	}
	layout := StageLayout{Stage: stage, Mask: mask}
	if rows <= 0 || cols <= 0 {
		return layout
	}

	target := TargetObstacles(stage, p)
	if target > rows*cols {
		target = rows * cols
	}
	rowFill := make([]int, rows)
	colFill := make([]int, cols)
	placed := 0
	for attempt := 0; attempt < p.MaxAttempts && placed < target; attempt++ {
		r := Intn(rng, rows)
		c := Intn(rng, cols)
		if mask[r][c] {
			continue
		}
		if rowFill[r]+1 >= cols-1 || colFill[c]+1 >= rows-1 {
			continue
		}
		mask[r][c] = true
		rowFill[r]++
		colFill[c]++
		placed++
	}
	return layout
}
