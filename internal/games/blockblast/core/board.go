package core

import (
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// DefaultRows and DefaultCols are the canonical board dimensions.
const (
	DefaultRows = 8
	DefaultCols = 8
)

// Board is the occupancy grid. Cells are stored in row-major order:
// index = row*Cols + col. Dimensions never change after construction.
type Board struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	return &Board{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
}

func (b *Board) index(r, c int) int {
	return r*b.Cols + c
}

// InBounds reports whether (r, c) lies on the board.
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.Rows && c >= 0 && c < b.Cols
}

// Get returns the cell at (r, c), or an empty cell when out of bounds.
func (b *Board) Get(r, c int) Cell {
	if !b.InBounds(r, c) {
		return Empty()
	}
	return b.Cells[b.index(r, c)]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (b *Board) Set(r, c int, cell Cell) {
	if b.InBounds(r, c) {
		b.Cells[b.index(r, c)] = cell
	}
}

// IsOccupied reports whether (r, c) is filled.
// Out-of-bounds cells count as occupied so they act as walls.
func (b *Board) IsOccupied(r, c int) bool {
	if !b.InBounds(r, c) {
		return true
	}
	return b.Cells[b.index(r, c)].Filled
}

// Place writes the piece's cells at the origin with the given tag.
// The caller must have validated the placement with CanPlace.
func (b *Board) Place(p Piece, originR, originC int, tag Tag) int {
	placed := 0
	for _, off := range p.Cells() {
		r, c := originR+off.Row, originC+off.Col
		if b.InBounds(r, c) {
			b.Cells[b.index(r, c)] = FilledWith(tag)
			placed++
		}
	}
	return placed
}

// Reset empties every cell.
func (b *Board) Reset() {
	for i := range b.Cells {
		b.Cells[i] = Empty()
	}
}

// IsEmpty reports whether every cell is empty.
func (b *Board) IsEmpty() bool {
	for _, cell := range b.Cells {
		if cell.Filled {
			return false
		}
	}
	return true
}

// FilledCount returns the number of filled cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, cell := range b.Cells {
		if cell.Filled {
			n++
		}
	}
	return n
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	return len(b.Cells) - b.FilledCount()
}

// RowFill returns the number of filled cells in row r.
func (b *Board) RowFill(r int) int {
	n := 0
	for c := 0; c < b.Cols; c++ {
		if b.Cells[b.index(r, c)].Filled {
			n++
		}
	}
	return n
}

// ColFill returns the number of filled cells in column c.
func (b *Board) ColFill(c int) int {
	n := 0
	for r := 0; r < b.Rows; r++ {
		if b.Cells[b.index(r, c)].Filled {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{Rows: b.Rows, Cols: b.Cols, Cells: cells}
}

// Equal reports whether two boards have identical dimensions and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.Rows != other.Rows || b.Cols != other.Cols {
		return false
	}
	for i := range b.Cells {
		if b.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

// ApplyMask fills every masked cell with the given tag.
// Masks with mismatched dimensions are clipped to the board.
func (b *Board) ApplyMask(mask [][]bool, tag Tag) {
	for r := 0; r < len(mask) && r < b.Rows; r++ {
		for c := 0; c < len(mask[r]) && c < b.Cols; c++ {
			if mask[r][c] {
				b.Cells[b.index(r, c)] = FilledWith(tag)
			}
		}
	}
}

// ClearReport describes the outcome of a bulk clear.
type ClearReport struct {
	Cells   []Coord // previously filled cells that were emptied, row-major, no duplicates
	Special int     // how many of them carried the gold tag
}

// Count returns the number of cells emptied.
func (r ClearReport) Count() int {
	return len(r.Cells)
}

// ClearCells empties every in-bounds cell of the given set and reports which
// cells were filled before clearing. Duplicate coordinates are counted once.
func (b *Board) ClearCells(cells []Coord) ClearReport {
	seen := mapset.New[Coord]()
	report := ClearReport{Cells: make([]Coord, 0, len(cells))}
	for _, pos := range cells {
		if !b.InBounds(pos.Row, pos.Col) || seen.Has(pos) {
			continue
		}
		seen.Put(pos)
		cell := b.Cells[b.index(pos.Row, pos.Col)]
		if !cell.Filled {
			continue
		}
		if cell.Tag.Gold {
			report.Special++
		}
		report.Cells = append(report.Cells, pos)
		b.Cells[b.index(pos.Row, pos.Col)] = Empty()
	}
	sort.Slice(report.Cells, func(i, j int) bool {
		return report.Cells[i].Less(report.Cells[j])
	})
	return report
}

// AreaCells returns the in-bounds cells of the square of the given radius
// centered on (r, c).
func (b *Board) AreaCells(r, c, radius int) []Coord {
	cells := make([]Coord, 0, (2*radius+1)*(2*radius+1))
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if b.InBounds(r+dr, c+dc) {
				cells = append(cells, At(r+dr, c+dc))
			}
		}
	}
	return cells
}

// CrossCells returns every cell of row r and column c.
// The intersection appears once.
func (b *Board) CrossCells(r, c int) []Coord {
	cells := make([]Coord, 0, b.Rows+b.Cols-1)
	for cc := 0; cc < b.Cols; cc++ {
		cells = append(cells, At(r, cc))
	}
	for rr := 0; rr < b.Rows; rr++ {
		if rr != r {
			cells = append(cells, At(rr, c))
		}
	}
	return cells
}

// String renders the board as rows of '#' and '.'.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Cells[b.index(r, c)].Filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if r < b.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard builds a board from rows of '#' (filled) and '.' (empty).
// Filled cells receive the given tag. Used by fixtures and the layout tool.
func ParseBoard(rows []string, tag Tag) *Board {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	b := NewBoard(len(rows), cols)
	for r, row := range rows {
		for c, ch := range row {
			if ch == '#' {
				b.Set(r, c, FilledWith(tag))
			}
		}
	}
	return b
}
