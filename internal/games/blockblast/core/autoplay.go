package core

// Move is a candidate placement.
type Move struct {
	Slot   int
	Origin Coord
	Lines  int
	Rating int
}

// BestMove picks the placement that clears the most lines, breaking ties by
// how many piece edges touch walls or filled cells. Candidates are scanned
// in slot, row, column order, so the choice is deterministic.
func BestMove(b *Board, batch Batch) (Move, bool) {
	best := Move{Rating: -1}
	found := false
	for slot, blk := range batch.Slots {
		if blk == nil {
			continue
		}
		for r := 0; r < b.Rows; r++ {
			for c := 0; c < b.Cols; c++ {
				if !CanPlace(b, blk.Piece, r, c) {
					continue
				}
				lines := b.PredictFullLines(blk.Piece, r, c).Count()
				rating := lines*100 + contact(b, blk.Piece, r, c)
				if rating > best.Rating {
					best = Move{Slot: slot, Origin: At(r, c), Lines: lines, Rating: rating}
					found = true
				}
			}
		}
	}
	return best, found
}

// contact counts piece cell edges that border a wall or a filled cell.
func contact(b *Board, p Piece, originR, originC int) int {
	own := make(map[Coord]bool, p.Size())
	for _, off := range p.Cells() {
		own[At(originR+off.Row, originC+off.Col)] = true
	}
	n := 0
	for pos := range own {
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nb := pos.Add(d[0], d[1])
			if own[nb] {
				continue
			}
			if b.IsOccupied(nb.Row, nb.Col) {
				n++
			}
		}
	}
	return n
}

// AutoplayResult summarizes an automated round.
type AutoplayResult struct {
	Moves        int
	Lines        int
	Score        int
	HighCombo    int
	Batches      int
	Fallbacks    int
	PerfectClear int
	GameOver     bool
}

// Autoplay plays the session's current round with BestMove until game over
// or maxMoves placements (0 means no limit).
func Autoplay(s *Session, maxMoves int) AutoplayResult {
	var res AutoplayResult
	if s.lastSpawn.Fallback {
		res.Fallbacks++
	}
	for !s.IsGameOver() && (maxMoves <= 0 || res.Moves < maxMoves) {
		move, ok := BestMove(s.board, s.batch)
		if !ok {
			break
		}
		pr, err := s.Place(move.Slot, move.Origin.Row, move.Origin.Col)
		if err != nil {
			break
		}
		res.Moves++
		res.Lines += pr.LinesCleared
		if pr.ComboAfter > res.HighCombo {
			res.HighCombo = pr.ComboAfter
		}
		if pr.PerfectClear {
			res.PerfectClear++
		}
		if pr.Refilled && s.lastSpawn.Fallback {
			res.Fallbacks++
		}
	}
	res.Score = s.score.Score
	res.Batches = s.spawned
	res.GameOver = s.IsGameOver()
	return res
}
