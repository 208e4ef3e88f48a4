package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blockblast/internal/games/blockblast/core"
)

func TestTargetObstaclesCurve(t *testing.T) {
	p := core.DefaultLayoutParams()

	assert.Equal(t, p.MinObstacles, core.TargetObstacles(1, p))
	assert.Equal(t, p.MaxObstacles, core.TargetObstacles(p.MaxStage, p))
	assert.Equal(t, p.MaxObstacles, core.TargetObstacles(p.MaxStage+10, p), "clamped above")
	assert.Equal(t, p.MinObstacles, core.TargetObstacles(0, p), "clamped below")

	prev := 0
	for stage := 1; stage <= p.MaxStage; stage++ {
		n := core.TargetObstacles(stage, p)
		require.GreaterOrEqual(t, n, prev, "stage %d", stage)
		prev = n
	}

	mid := core.TargetObstacles((p.MaxStage+1)/2, p)
	linear := (p.MinObstacles + p.MaxObstacles) / 2
	assert.Less(t, mid, linear, "power-law curve stays below linear mid-way")
}

func TestGenerateLayoutNeverNearCompletesLines(t *testing.T) {
	p := core.DefaultLayoutParams()
	for stage := 1; stage <= p.MaxStage; stage++ {
		for seed := int64(0); seed < 5; seed++ {
			layout := core.GenerateLayout(stage, 8, 8, p, core.NewSource(seed))
			b := core.NewBoard(8, 8)
			b.ApplyMask(layout.Mask, stone)

			require.LessOrEqual(t, layout.Count(), core.TargetObstacles(stage, p))
			for i := 0; i < 8; i++ {
				require.Less(t, b.RowFill(i), 7, "stage %d seed %d row %d\n%s", stage, seed, i, layout)
				require.Less(t, b.ColFill(i), 7, "stage %d seed %d col %d\n%s", stage, seed, i, layout)
			}
		}
	}
}

func TestGenerateLayoutAcceptsFewerWhenCapped(t *testing.T) {
	p := core.DefaultLayoutParams()
	p.MinObstacles = 60
	p.MaxObstacles = 60

	layout := core.GenerateLayout(1, 8, 8, p, core.NewSource(1))
	assert.LessOrEqual(t, layout.Count(), 48)
	assert.Greater(t, layout.Count(), 0)

	p.MaxAttempts = 0
	layout = core.GenerateLayout(1, 8, 8, p, core.NewSource(1))
	assert.Equal(t, 0, layout.Count())
}

func TestGenerateLayoutDeterministic(t *testing.T) {
	p := core.DefaultLayoutParams()
	a := core.GenerateLayout(17, 8, 8, p, core.NewSource(123))
	b := core.GenerateLayout(17, 8, 8, p, core.NewSource(123))
	assert.Equal(t, a, b)
	assert.Equal(t, 17, a.Stage)
}
