package core

import (
	"fmt"
	"strings"
)

// ShapeGroup is the weight class a shape belongs to.
type ShapeGroup uint8

const (
	GroupMono ShapeGroup = iota
	GroupDomino
	GroupTromino
	GroupTetromino
	GroupPentomino
	GroupLarge

	NumShapeGroups = int(GroupLarge) + 1
)

var groupNames = [NumShapeGroups]string{
	GroupMono:      "mono",
	GroupDomino:    "domino",
	GroupTromino:   "tromino",
	GroupTetromino: "tetromino",
	GroupPentomino: "pentomino",
	GroupLarge:     "large",
}

// String returns the group's config name.
func (g ShapeGroup) String() string {
	if int(g) < NumShapeGroups {
		return groupNames[g]
	}
	return fmt.Sprintf("group(%d)", uint8(g))
}

// ParseShapeGroup converts a config name into a ShapeGroup.
func ParseShapeGroup(name string) (ShapeGroup, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range groupNames {
		if n == name {
			return ShapeGroup(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape group %q", name)
}

// AllShapeGroups returns every group in enum order.
func AllShapeGroups() []ShapeGroup {
	groups := make([]ShapeGroup, NumShapeGroups)
	for i := range groups {
		groups[i] = ShapeGroup(i)
	}
	return groups
}

// Piece is an immutable polyomino template.
type Piece struct {
	ID    string
	Group ShapeGroup
	Color Color
	Shape [][]bool // occupancy matrix, at least one true cell

	cells []Coord
}

// NewPiece builds a piece from rows of '#' (occupied) and '.' (empty).
func NewPiece(id string, group ShapeGroup, color Color, rows ...string) Piece {
	shape := make([][]bool, len(rows))
	var cells []Coord
	for r, row := range rows {
		shape[r] = make([]bool, len(row))
		for c := 0; c < len(row); c++ {
			if row[c] == '#' {
				shape[r][c] = true
				cells = append(cells, At(r, c))
			}
		}
	}
	return Piece{ID: id, Group: group, Color: color, Shape: shape, cells: cells}
}

// Cells returns the offsets of the occupied cells relative to the origin.
func (p Piece) Cells() []Coord {
	return p.cells
}

// Size returns the number of occupied cells.
func (p Piece) Size() int {
	return len(p.cells)
}

// Height returns the number of rows in the shape matrix.
func (p Piece) Height() int {
	return len(p.Shape)
}

// Width returns the widest row of the shape matrix.
func (p Piece) Width() int {
	w := 0
	for _, row := range p.Shape {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// String renders the shape as rows of '#' and '.'.
func (p Piece) String() string {
	lines := make([]string, len(p.Shape))
	for r, row := range p.Shape {
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

// Catalog is the static table of shapes available to the spawner.
type Catalog struct {
	pieces   []Piece
	byID     map[string]int
	byGroup  [NumShapeGroups][]int
	smallest int
}

// NewCatalog indexes the given pieces. Pieces with no cells are rejected.
func NewCatalog(pieces []Piece) (*Catalog, error) {
	if len(pieces) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	cat := &Catalog{
		pieces: make([]Piece, len(pieces)),
		byID:   make(map[string]int, len(pieces)),
	}
	copy(cat.pieces, pieces)
	for i, p := range cat.pieces {
		if p.Size() == 0 {
			return nil, fmt.Errorf("piece %q has no cells", p.ID)
		}
		if int(p.Group) >= NumShapeGroups {
			return nil, fmt.Errorf("piece %q has invalid group %d", p.ID, p.Group)
		}
		if _, dup := cat.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate piece id %q", p.ID)
		}
		cat.byID[p.ID] = i
		cat.byGroup[p.Group] = append(cat.byGroup[p.Group], i)
		if p.Size() < cat.pieces[cat.smallest].Size() {
			cat.smallest = i
		}
	}
	return cat, nil
}

// Len returns the number of pieces.
func (c *Catalog) Len() int {
	return len(c.pieces)
}

// At returns the i-th piece.
func (c *Catalog) At(i int) Piece {
	return c.pieces[i]
}

// Pieces returns all pieces in catalog order.
func (c *Catalog) Pieces() []Piece {
	out := make([]Piece, len(c.pieces))
	copy(out, c.pieces)
	return out
}

// Lookup finds a piece by ID.
func (c *Catalog) Lookup(id string) (Piece, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Piece{}, false
	}
	return c.pieces[i], true
}

// Group returns the pieces of one weight class in catalog order.
func (c *Catalog) Group(g ShapeGroup) []Piece {
	if int(g) >= NumShapeGroups {
		return nil
	}
	out := make([]Piece, len(c.byGroup[g]))
	for i, idx := range c.byGroup[g] {
		out[i] = c.pieces[idx]
	}
	return out
}

// Smallest returns the piece with the fewest cells (first in catalog order on ties).
func (c *Catalog) Smallest() Piece {
	return c.pieces[c.smallest]
}

var standardPieces = []Piece{
	NewPiece("O1", GroupMono, ColorYellow, "#"),

	NewPiece("I2H", GroupDomino, ColorGreen, "##"),
	NewPiece("I2V", GroupDomino, ColorGreen, "#", "#"),

	NewPiece("I3H", GroupTromino, ColorBlue, "###"),
	NewPiece("I3V", GroupTromino, ColorBlue, "#", "#", "#"),
	NewPiece("V3A", GroupTromino, ColorPink, "##", "#."),
	NewPiece("V3B", GroupTromino, ColorPink, "##", ".#"),
	NewPiece("V3C", GroupTromino, ColorPink, "#.", "##"),
	NewPiece("V3D", GroupTromino, ColorPink, ".#", "##"),

	NewPiece("O4", GroupTetromino, ColorYellow, "##", "##"),
	NewPiece("T4", GroupTetromino, ColorMagenta, "###", ".#."),
	NewPiece("Z4", GroupTetromino, ColorCyan, "##.", ".##"),
	NewPiece("S4", GroupTetromino, ColorViolet, ".##", "##."),
	NewPiece("I4H", GroupTetromino, ColorOrange, "####"),
	NewPiece("I4V", GroupTetromino, ColorOrange, "#", "#", "#", "#"),
	NewPiece("L4", GroupTetromino, ColorMint, "###", "#.."),
	NewPiece("J4", GroupTetromino, ColorPurple, "###", "..#"),

	NewPiece("V5A", GroupPentomino, ColorRed, "###", "#..", "#.."),
	NewPiece("V5B", GroupPentomino, ColorRed, "###", "..#", "..#"),
	NewPiece("V5C", GroupPentomino, ColorRed, "#..", "#..", "###"),
	NewPiece("V5D", GroupPentomino, ColorRed, "..#", "..#", "###"),
	NewPiece("I5H", GroupPentomino, ColorOrange, "#####"),
	NewPiece("I5V", GroupPentomino, ColorOrange, "#", "#", "#", "#", "#"),

	NewPiece("R6V", GroupLarge, ColorOrange, "##", "##", "##"),
	NewPiece("R6H", GroupLarge, ColorOrange, "###", "###"),
	NewPiece("O9", GroupLarge, ColorRed, "###", "###", "###"),
}

// StandardCatalog returns the built-in shape table.
func StandardCatalog() *Catalog {
	cat, err := NewCatalog(standardPieces)
	if err != nil {
		panic(fmt.Sprintf("core: invalid standard catalog: %v", err))
	}
	return cat
}
