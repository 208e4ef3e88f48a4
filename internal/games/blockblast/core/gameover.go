package core

// IsGameOver reports whether no block of the batch fits anywhere.
// An empty batch is never game over: a new batch must be drawn first.
func IsGameOver(b *Board, batch Batch) bool {
	if batch.Remaining() == 0 {
		return false
	}
	for _, blk := range batch.Slots {
		if blk != nil && AnyValidOrigin(b, blk.Piece) {
			return false
		}
	}
	return true
}
