package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blockblast/internal/games/blockblast/core"
)

var defaultWeights = core.DefaultTiers()[0].Weights

func TestSpawnIsDeterministic(t *testing.T) {
	draw := func() []string {
		sp := core.NewSpawner(core.StandardCatalog(), core.DefaultSpawnParams(), core.NewSource(42))
		b := core.NewBoard(8, 8)
		var ids []string
		for i := 0; i < 20; i++ {
			batch, _ := sp.Spawn(b, defaultWeights, false)
			for _, blk := range batch.Slots {
				ids = append(ids, blk.Piece.ID)
			}
		}
		return ids
	}
	assert.Equal(t, draw(), draw())
}

func TestSpawnHonorsWeights(t *testing.T) {
	var weights core.WeightTable
	weights[core.GroupLarge] = 1

	params := core.DefaultSpawnParams()
	sp := core.NewSpawner(core.StandardCatalog(), params, core.NewSource(3))
	b := core.NewBoard(8, 8)

	for i := 0; i < 50; i++ {
		batch, info := sp.Spawn(b, weights, false)
		require.Equal(t, 1, info.Attempts)
		for _, blk := range batch.Slots {
			require.NotNil(t, blk)
			assert.Equal(t, core.GroupLarge, blk.Piece.Group, blk.Piece.ID)
		}
	}
}

func TestSpawnZeroWeightsFallsBackToUniform(t *testing.T) {
	sp := core.NewSpawner(core.StandardCatalog(), core.DefaultSpawnParams(), core.NewSource(5))
	batch, _ := sp.Spawn(core.NewBoard(8, 8), core.WeightTable{}, false)
	assert.Equal(t, core.BatchSize, batch.Remaining())
}

func TestSpawnHelperTargetsNearCompleteLine(t *testing.T) {
	rows := emptyRows(8, 8)
	rows[4] = "###.####"
	b := core.ParseBoard(rows, stone)

	params := core.DefaultSpawnParams()
	params.HelperBaseChance = 1
	params.HelperMaxChance = 1
	params.SpecialChance = 0
	sp := core.NewSpawner(core.StandardCatalog(), params, core.NewSource(11))

	batch, info := sp.Spawn(b, defaultWeights, false)
	require.True(t, info.Helper)

	helpers := 0
	for _, blk := range batch.Slots {
		if blk.Helper {
			helpers++
			assert.Equal(t, "O1", blk.Piece.ID)
			assert.Equal(t, core.At(4, 3), blk.Target)
			assert.Equal(t, []int{4}, b.PredictFullLines(blk.Piece, blk.Target.Row, blk.Target.Col).Rows)
		}
	}
	assert.Equal(t, 1, helpers, "helper is forced at most once per batch")
}

func TestSpawnHelperChanceRisesWithFill(t *testing.T) {
	p := core.DefaultSpawnParams()
	assert.Less(t, p.HelperChance(0.1), p.HelperChance(0.6))
	assert.LessOrEqual(t, p.HelperChance(1), p.HelperMaxChance)
}

// TestSurvivalGuardNearCompleteRow: with one row at 7/8 and the survival
// guard on, some block in the batch can complete that row.
func TestSurvivalGuardNearCompleteRow(t *testing.T) {
	rows := emptyRows(8, 8)
	rows[0] = "#######."
	b := core.ParseBoard(rows, stone)

	for seed := int64(1); seed <= 50; seed++ {
		sp := core.NewSpawner(core.StandardCatalog(), core.DefaultSpawnParams(), core.NewSource(seed))
		batch, info := sp.Spawn(b, defaultWeights, true)
		require.True(t, info.Survival)

		completes := false
		for _, blk := range batch.Slots {
			for _, o := range core.SortedOrigins(core.AllValidOrigins(b, blk.Piece)) {
				for _, r := range b.PredictFullLines(blk.Piece, o.Row, o.Col).Rows {
					if r == 0 {
						completes = true
					}
				}
			}
		}
		assert.True(t, completes, "seed %d: no block completes row 0", seed)
	}
}

func TestSurvivalSpawnNeverDeadEnds(t *testing.T) {
	rng := core.NewSource(99)
	for trial := 0; trial < 300; trial++ {
		b := core.NewBoard(8, 8)
		density := rng.Float64()
		for i := range b.Cells {
			if rng.Float64() < density {
				b.Cells[i] = core.FilledWith(stone)
			}
		}
		sp := core.NewSpawner(core.StandardCatalog(), core.DefaultSpawnParams(), core.NewSource(int64(trial)))
		batch, info := sp.Spawn(b, defaultWeights, true)

		if b.EmptyCount() > 0 {
			require.False(t, core.IsGameOver(b, batch), "trial %d:\n%s", trial, b)
			require.False(t, info.GameOver)
		}
	}
}

func TestSpawnFallbackOnFullBoard(t *testing.T) {
	b := core.NewBoard(8, 8)
	for i := range b.Cells {
		b.Cells[i] = core.FilledWith(stone)
	}
	params := core.DefaultSpawnParams()

	sp := core.NewSpawner(core.StandardCatalog(), params, core.NewSource(1))
	batch, info := sp.Spawn(b, defaultWeights, true)
	assert.True(t, info.Fallback)
	assert.True(t, info.GameOver)
	assert.Equal(t, params.MaxAttempts, info.Attempts)
	for _, blk := range batch.Slots {
		assert.Equal(t, "O1", blk.Piece.ID)
	}

	sp = core.NewSpawner(core.StandardCatalog(), params, core.NewSource(1))
	_, info = sp.Spawn(b, defaultWeights, false)
	assert.False(t, info.Fallback, "fallback only applies under the survival guard")
	assert.Equal(t, params.MaxAttempts, info.Attempts)
	assert.True(t, info.GameOver)
}

func TestSpawnRetriesUntilPlayable(t *testing.T) {
	// Only single cells are open, so only the monomino fits.
	b := core.ParseBoard([]string{
		".#######",
		"########",
		"########",
		"###.####",
		"########",
		"########",
		"########",
		"#######.",
	}, stone)

	var weights core.WeightTable
	weights[core.GroupMono] = 1
	weights[core.GroupLarge] = 9

	params := core.DefaultSpawnParams()
	params.MaxAttempts = 200
	params.HelperBaseChance = 0
	params.HelperFillBoost = 0
	sp := core.NewSpawner(core.StandardCatalog(), params, core.NewSource(8))

	batch, info := sp.Spawn(b, weights, false)
	require.False(t, info.GameOver)
	assert.False(t, core.IsGameOver(b, batch))
	assert.GreaterOrEqual(t, info.Attempts, 1)
}

func TestAnalyze(t *testing.T) {
	rows := emptyRows(8, 8)
	rows[1] = "####.###"
	b := core.ParseBoard(rows, stone)
	for r := 0; r < 7; r++ {
		b.Set(r, 6, core.FilledWith(stone))
	}

	a := core.Analyze(b)
	assert.Equal(t, []int{1}, a.NearRows)
	assert.Equal(t, []int{6}, a.NearCols)
	assert.Equal(t, []core.Coord{core.At(1, 4), core.At(7, 6)}, a.HelperCells)
	assert.Equal(t, 13, a.Filled)
	assert.InDelta(t, 13.0/64.0, a.FillRatio, 1e-9)
}

func TestIsGameOver(t *testing.T) {
	cat := core.StandardCatalog()
	o4, _ := cat.Lookup("O4")
	b := core.ParseBoard([]string{
		"#.#",
		"###",
		"#.#",
	}, stone)

	assert.False(t, core.IsGameOver(b, core.Batch{}), "empty batch is never game over")
	assert.True(t, core.IsGameOver(b, core.Uniform(o4)))

	mixed := core.Uniform(o4)
	mixed.Slots[2] = &core.ActiveBlock{Piece: cat.Smallest()}
	assert.False(t, core.IsGameOver(b, mixed))
}

func TestSpawnRollsSpecialPerSlot(t *testing.T) {
	params := core.DefaultSpawnParams()
	params.SpecialChance = 1
	sp := core.NewSpawner(core.StandardCatalog(), params, core.NewSource(9))
	batch, _ := sp.Spawn(core.NewBoard(8, 8), defaultWeights, false)
	for i, blk := range batch.Slots {
		require.NotNil(t, blk)
		assert.True(t, blk.Special, "slot %d", i)
		assert.True(t, blk.Tag().Gold, "slot %d", i)
	}

	params.SpecialChance = 0
	sp = core.NewSpawner(core.StandardCatalog(), params, core.NewSource(9))
	batch, _ = sp.Spawn(core.NewBoard(8, 8), defaultWeights, false)
	for i, blk := range batch.Slots {
		assert.False(t, blk.Special, "slot %d", i)
	}
}
