package core

// LineSet holds the indices of fully occupied rows and columns.
type LineSet struct {
	Rows []int `json:"rows"`
	Cols []int `json:"cols"`
}

// Count returns the number of lines, rows plus columns.
func (s LineSet) Count() int {
	return len(s.Rows) + len(s.Cols)
}

// Empty reports whether the set holds no lines.
func (s LineSet) Empty() bool {
	return s.Count() == 0
}

// DetectFullLines returns every fully occupied row and column.
// It does not mutate the board.
func (b *Board) DetectFullLines() LineSet {
	rowFill := make([]int, b.Rows)
	colFill := make([]int, b.Cols)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Cells[b.index(r, c)].Filled {
				rowFill[r]++
				colFill[c]++
			}
		}
	}
	return collectFull(rowFill, colFill, b.Rows, b.Cols)
}

// PredictFullLines returns the lines that would be full after placing the
// piece at the origin, without mutating the board. Piece cells falling
// outside the board are ignored.
func (b *Board) PredictFullLines(p Piece, originR, originC int) LineSet {
	rowFill := make([]int, b.Rows)
	colFill := make([]int, b.Cols)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Cells[b.index(r, c)].Filled {
				rowFill[r]++
				colFill[c]++
			}
		}
	}
	for _, off := range p.Cells() {
		r, c := originR+off.Row, originC+off.Col
		if b.InBounds(r, c) && !b.Cells[b.index(r, c)].Filled {
			rowFill[r]++
			colFill[c]++
		}
	}
	return collectFull(rowFill, colFill, b.Rows, b.Cols)
}

func collectFull(rowFill, colFill []int, rows, cols int) LineSet {
	set := LineSet{Rows: []int{}, Cols: []int{}}
	for r, n := range rowFill {
		if n == cols {
			set.Rows = append(set.Rows, r)
		}
	}
	for c, n := range colFill {
		if n == rows {
			set.Cols = append(set.Cols, c)
		}
	}
	return set
}

// LineCells returns every cell covered by the set. Intersections appear once.
func (b *Board) LineCells(lines LineSet) []Coord {
	clearedRow := make([]bool, b.Rows)
	cells := make([]Coord, 0, len(lines.Rows)*b.Cols+len(lines.Cols)*b.Rows)
	for _, r := range lines.Rows {
		if r < 0 || r >= b.Rows || clearedRow[r] {
			continue
		}
		clearedRow[r] = true
		for c := 0; c < b.Cols; c++ {
			cells = append(cells, At(r, c))
		}
	}
	for _, c := range lines.Cols {
		if c < 0 || c >= b.Cols {
			continue
		}
		for r := 0; r < b.Rows; r++ {
			if !clearedRow[r] {
				cells = append(cells, At(r, c))
			}
		}
	}
	return cells
}

// ClearLines empties every cell in the given rows and columns as one atomic
// step. Intersection cells are cleared and reported once.
func (b *Board) ClearLines(lines LineSet) ClearReport {
	return b.ClearCells(b.LineCells(lines))
}
