// Package core provides the rules engine for the BlockBlast puzzle game.
// This package is UI-agnostic and deterministic given a random source.
package core

import "fmt"

// Coord addresses a board cell. Row grows downward, Col grows to the right.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the coordinate offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Less orders coordinates in row-major order.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Color is a display color identifier carried through to the board.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorMint
	ColorCyan
	ColorBlue
	ColorPurple
	ColorViolet
	ColorMagenta
	ColorPink
	ColorStone // stage obstacles
)

var colorNames = map[Color]string{
	ColorNone:    "none",
	ColorRed:     "red",
	ColorOrange:  "orange",
	ColorYellow:  "yellow",
	ColorGreen:   "green",
	ColorMint:    "mint",
	ColorCyan:    "cyan",
	ColorBlue:    "blue",
	ColorPurple:  "purple",
	ColorViolet:  "violet",
	ColorMagenta: "magenta",
	ColorPink:    "pink",
	ColorStone:   "stone",
}

// String returns the color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Tag is the opaque payload stored in a filled cell.
// Placement only looks at occupancy; scoring reads Gold.
type Tag struct {
	Color Color `msgpack:"c" json:"color"`
	Gold  bool  `msgpack:"g" json:"gold,omitempty"`
}

// Cell is a single board cell.
type Cell struct {
	Filled bool `msgpack:"f" json:"filled"`
	Tag    Tag  `msgpack:"t" json:"tag"`
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// FilledWith returns a filled cell carrying the given tag.
func FilledWith(tag Tag) Cell {
	return Cell{Filled: true, Tag: tag}
}
