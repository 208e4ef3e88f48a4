package core

// BatchSize is the number of blocks offered at once.
const BatchSize = 3

// ActiveBlock is a piece waiting in a batch slot.
type ActiveBlock struct {
	Piece   Piece
	Special bool  // gold block, worth bonus currency on clear
	Helper  bool  // forced helper piece aimed at a near-complete line
	Target  Coord // origin the helper was aimed at; valid when Helper is set
}

// Tag returns the payload written to the board when the block is placed.
func (a ActiveBlock) Tag() Tag {
	return Tag{Color: a.Piece.Color, Gold: a.Special}
}

// Batch holds up to BatchSize blocks. A nil slot has been placed.
type Batch struct {
	Slots [BatchSize]*ActiveBlock
}

// Remaining returns the number of blocks not yet placed.
func (b Batch) Remaining() int {
	n := 0
	for _, blk := range b.Slots {
		if blk != nil {
			n++
		}
	}
	return n
}

// Block returns the block in the given slot.
func (b Batch) Block(slot int) (ActiveBlock, bool) {
	if slot < 0 || slot >= BatchSize || b.Slots[slot] == nil {
		return ActiveBlock{}, false
	}
	return *b.Slots[slot], true
}

// Clone returns a copy that shares no slot pointers with b.
func (b Batch) Clone() Batch {
	var out Batch
	for i, blk := range b.Slots {
		if blk != nil {
			cp := *blk
			out.Slots[i] = &cp
		}
	}
	return out
}

// Uniform returns a batch with every slot holding the same piece.
func Uniform(p Piece) Batch {
	var out Batch
	for i := range out.Slots {
		out.Slots[i] = &ActiveBlock{Piece: p}
	}
	return out
}
