package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blockblast/internal/games/blockblast/core"
)

var stone = core.Tag{Color: core.ColorStone}

func emptyRows(n, width int) []string {
	rows := make([]string, n)
	for i := range rows {
		b := make([]byte, width)
		for j := range b {
			b[j] = '.'
		}
		rows[i] = string(b)
	}
	return rows
}

func TestBoardOutOfBoundsIsOccupied(t *testing.T) {
	b := core.NewBoard(8, 8)

	testCases := []struct {
		r, c     int
		occupied bool
	}{
		{0, 0, false},
		{7, 7, false},
		{-1, 0, true},
		{0, -1, true},
		{8, 0, true},
		{0, 8, true},
	}

	for _, tc := range testCases {
		if got := b.IsOccupied(tc.r, tc.c); got != tc.occupied {
			t.Errorf("IsOccupied(%d,%d) = %v, want %v", tc.r, tc.c, got, tc.occupied)
		}
	}
}

// TestCanPlaceExhaustive checks every 3x3 board state against a direct
// reading of the placement rule.
func TestCanPlaceExhaustive(t *testing.T) {
	cat := core.StandardCatalog()
	ids := []string{"O1", "I2H", "I2V", "I3H", "V3A", "V3D", "O4", "T4"}

	for mask := 0; mask < 1<<9; mask++ {
		b := core.NewBoard(3, 3)
		for i := 0; i < 9; i++ {
			if mask&(1<<i) != 0 {
				b.Set(i/3, i%3, core.FilledWith(stone))
			}
		}
		for _, id := range ids {
			p, ok := cat.Lookup(id)
			require.True(t, ok, id)
			for r := -3; r <= 3; r++ {
				for c := -3; c <= 3; c++ {
					want := true
					for _, off := range p.Cells() {
						rr, cc := r+off.Row, c+off.Col
						if rr < 0 || rr >= 3 || cc < 0 || cc >= 3 || mask&(1<<(rr*3+cc)) != 0 {
							want = false
							break
						}
					}
					if got := core.CanPlace(b, p, r, c); got != want {
						t.Fatalf("mask %09b piece %s at (%d,%d): CanPlace = %v, want %v", mask, id, r, c, got, want)
					}
				}
			}
		}
	}
}

func TestAllValidOrigins(t *testing.T) {
	b := core.ParseBoard([]string{
		"#..",
		"...",
		"..#",
	}, stone)
	p, _ := core.StandardCatalog().Lookup("I2H")

	origins := core.SortedOrigins(core.AllValidOrigins(b, p))
	want := []core.Coord{core.At(0, 1), core.At(1, 0), core.At(1, 1), core.At(2, 0)}
	assert.Equal(t, want, origins)
	assert.True(t, core.AnyValidOrigin(b, p))

	full := core.ParseBoard([]string{"###", "#.#", "###"}, stone)
	assert.False(t, core.AnyValidOrigin(full, p))
	assert.Equal(t, 0, core.AllValidOrigins(full, p).Size())
}

func TestDetectFullLinesIdempotent(t *testing.T) {
	rows := emptyRows(8, 8)
	rows[2] = "########"
	rows[5] = "########"
	b := core.ParseBoard(rows, stone)
	for r := 0; r < 8; r++ {
		b.Set(r, 4, core.FilledWith(stone))
	}

	first := b.DetectFullLines()
	second := b.DetectFullLines()
	assert.Equal(t, first, second)
	assert.Equal(t, []int{2, 5}, first.Rows)
	assert.Equal(t, []int{4}, first.Cols)
	assert.Equal(t, 3, first.Count())
}

func TestClearLinesAtomic(t *testing.T) {
	b := core.NewBoard(8, 8)
	for i := 0; i < 8; i++ {
		b.Set(3, i, core.FilledWith(stone))
		b.Set(i, 5, core.FilledWith(stone))
	}
	b.Set(0, 0, core.FilledWith(stone))

	lines := b.DetectFullLines()
	require.Equal(t, []int{3}, lines.Rows)
	require.Equal(t, []int{5}, lines.Cols)

	report := b.ClearLines(lines)
	assert.Equal(t, 15, report.Count(), "union of row and column, intersection once")

	seen := make(map[core.Coord]int)
	for _, pos := range report.Cells {
		seen[pos]++
	}
	assert.Equal(t, 1, seen[core.At(3, 5)])

	for c := 0; c < 8; c++ {
		assert.False(t, b.IsOccupied(3, c))
	}
	for r := 0; r < 8; r++ {
		assert.False(t, b.IsOccupied(r, 5))
	}
	assert.True(t, b.IsOccupied(0, 0))
	assert.Equal(t, 1, b.FilledCount())
}

func TestClearLinesRandomBoards(t *testing.T) {
	rng := core.NewSource(7)
	for trial := 0; trial < 200; trial++ {
		b := core.NewBoard(8, 8)
		for i := range b.Cells {
			if rng.Float64() < 0.85 {
				b.Cells[i] = core.FilledWith(stone)
			}
		}
		before := b.FilledCount()
		lines := b.DetectFullLines()
		expected := len(lines.Rows)*8 + len(lines.Cols)*8 - len(lines.Rows)*len(lines.Cols)

		report := b.ClearLines(lines)
		require.Equal(t, expected, report.Count())
		require.Equal(t, before-expected, b.FilledCount())
		require.True(t, b.DetectFullLines().Empty())
	}
}

func TestPredictFullLinesDoesNotMutate(t *testing.T) {
	rows := emptyRows(8, 8)
	rows[0] = "#######."
	b := core.ParseBoard(rows, stone)
	before := b.Clone()
	mono := core.StandardCatalog().Smallest()

	lines := b.PredictFullLines(mono, 0, 7)
	assert.Equal(t, []int{0}, lines.Rows)
	assert.Empty(t, lines.Cols)
	assert.True(t, b.Equal(before))
	assert.True(t, b.DetectFullLines().Empty())
}

func TestClearCellsReportsSpecial(t *testing.T) {
	b := core.NewBoard(4, 4)
	b.Set(0, 0, core.FilledWith(core.Tag{Color: core.ColorRed, Gold: true}))
	b.Set(0, 1, core.FilledWith(core.Tag{Color: core.ColorRed}))

	report := b.ClearCells([]core.Coord{core.At(0, 0), core.At(0, 0), core.At(0, 1), core.At(0, 2), core.At(9, 9)})
	assert.Equal(t, []core.Coord{core.At(0, 0), core.At(0, 1)}, report.Cells)
	assert.Equal(t, 1, report.Special)
	assert.True(t, b.IsEmpty())
}

func TestAreaAndCrossCells(t *testing.T) {
	b := core.NewBoard(8, 8)
	assert.Len(t, b.AreaCells(0, 0, 1), 4)
	assert.Len(t, b.AreaCells(4, 4, 1), 9)
	assert.Len(t, b.CrossCells(2, 6), 15)
}

func TestBoardString(t *testing.T) {
	rows := []string{"#.", ".#"}
	b := core.ParseBoard(rows, stone)
	if got := b.String(); got != "#.\n.#" {
		t.Errorf("String() = %q, want %q", got, "#.\n.#")
	}
}
