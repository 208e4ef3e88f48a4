package core

import "sort"

// Analysis summarizes board pressure for the spawner.
type Analysis struct {
	RowFill     []int
	ColFill     []int
	NearRows    []int   // rows one cell short of full
	NearCols    []int   // columns one cell short of full
	HelperCells []Coord // empty cells of near-complete lines, row-major, no duplicates
	Filled      int
	FillRatio   float64
}

// Analyze computes per-line fill counts and near-complete lines.
func Analyze(b *Board) Analysis {
	a := Analysis{
		RowFill: make([]int, b.Rows),
		ColFill: make([]int, b.Cols),
	}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Cells[b.index(r, c)].Filled {
				a.RowFill[r]++
				a.ColFill[c]++
				a.Filled++
			}
		}
	}
	if total := b.Rows * b.Cols; total > 0 {
		a.FillRatio = float64(a.Filled) / float64(total)
	}

	helper := make(map[Coord]bool)
	for r, n := range a.RowFill {
		if n >= b.Cols-1 && n < b.Cols {
			a.NearRows = append(a.NearRows, r)
			for c := 0; c < b.Cols; c++ {
				if !b.Cells[b.index(r, c)].Filled {
					helper[At(r, c)] = true
				}
			}
		}
	}
	for c, n := range a.ColFill {
		if n >= b.Rows-1 && n < b.Rows {
			a.NearCols = append(a.NearCols, c)
			for r := 0; r < b.Rows; r++ {
				if !b.Cells[b.index(r, c)].Filled {
					helper[At(r, c)] = true
				}
			}
		}
	}
	for pos := range helper {
		a.HelperCells = append(a.HelperCells, pos)
	}
	sort.Slice(a.HelperCells, func(i, j int) bool {
		return a.HelperCells[i].Less(a.HelperCells[j])
	})
	return a
}

// HasNearComplete reports whether any line is one cell short of full.
func (a Analysis) HasNearComplete() bool {
	return len(a.HelperCells) > 0
}
