package core

import (
	"fmt"
	"sort"
	"strings"
)

// ItemKind identifies an out-of-turn board effect.
type ItemKind uint8

const (
	ItemBomb      ItemKind = iota // clears a 3x3 area
	ItemLaser                     // clears one row and one column
	ItemHourglass                 // rerolls the active batch

	numItemKinds = int(ItemHourglass) + 1
)

var itemNames = [numItemKinds]string{
	ItemBomb:      "bomb",
	ItemLaser:     "laser",
	ItemHourglass: "hourglass",
}

// String returns the item's config name.
func (k ItemKind) String() string {
	if int(k) < numItemKinds {
		return itemNames[k]
	}
	return fmt.Sprintf("item(%d)", uint8(k))
}

// Targeted reports whether the item needs a board cell.
func (k ItemKind) Targeted() bool {
	return k == ItemBomb || k == ItemLaser
}

// ParseItemKind converts a config name into an ItemKind.
func ParseItemKind(name string) (ItemKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range itemNames {
		if n == name {
			return ItemKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown item %q", name)
}

// AllItemKinds returns every item in enum order.
func AllItemKinds() []ItemKind {
	kinds := make([]ItemKind, numItemKinds)
	for i := range kinds {
		kinds[i] = ItemKind(i)
	}
	return kinds
}

// BombRadius is the reach of a bomb around its target cell.
const BombRadius = 1

// Inventory counts remaining item uses. It persists across rounds.
type Inventory map[ItemKind]int

// Clone returns an independent copy.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}

// Kinds lists items with at least one use, in enum order.
func (inv Inventory) Kinds() []ItemKind {
	var kinds []ItemKind
	for k, n := range inv {
		if n > 0 {
			kinds = append(kinds, k)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// ItemResult describes the effect of an item.
type ItemResult struct {
	Kind           ItemKind
	Cells          []Coord // previously filled cells that were emptied
	CellsAffected  int
	BonusAwarded   int
	SpecialCleared int
	Rerolled       bool
	GameOver       bool
}

// itemCells returns the cell set an item clears.
func itemCells(b *Board, kind ItemKind, r, c int) []Coord {
	switch kind {
	case ItemBomb:
		return b.AreaCells(r, c, BombRadius)
	case ItemLaser:
		return b.CrossCells(r, c)
	default:
		return nil
	}
}
