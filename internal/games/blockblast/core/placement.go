package core

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// CanPlace reports whether every occupied cell of the piece, anchored at the
// origin, lands on an in-bounds empty board cell.
func CanPlace(b *Board, p Piece, originR, originC int) bool {
	if p.Size() == 0 {
		return false
	}
	for _, off := range p.Cells() {
		if b.IsOccupied(originR+off.Row, originC+off.Col) {
			return false
		}
	}
	return true
}

// AnyValidOrigin reports whether the piece fits anywhere on the board.
func AnyValidOrigin(b *Board, p Piece) bool {
	_, ok := FirstValidOrigin(b, p)
	return ok
}

// FirstValidOrigin returns the first origin in row-major order where the
// piece fits.
func FirstValidOrigin(b *Board, p Piece) (Coord, bool) {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if CanPlace(b, p, r, c) {
				return At(r, c), true
			}
		}
	}
	return Coord{}, false
}

// AllValidOrigins returns the set of origins where the piece fits.
func AllValidOrigins(b *Board, p Piece) *mapset.Set[Coord] {
	origins := mapset.New[Coord]()
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if CanPlace(b, p, r, c) {
				origins.Put(At(r, c))
			}
		}
	}
	return &origins
}

// SortedOrigins lists a set of origins in row-major order.
func SortedOrigins(origins *mapset.Set[Coord]) []Coord {
	out := make([]Coord, 0, origins.Size())
	origins.Each(func(c Coord) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
