package core

// WeightTable maps each shape group to a relative draw weight.
type WeightTable [NumShapeGroups]int

// Total returns the sum of all weights.
func (w WeightTable) Total() int {
	t := 0
	for _, v := range w {
		t += v
	}
	return t
}

// SpawnParams holds the spawner's balance knobs.
type SpawnParams struct {
	MaxAttempts      int     // batches drawn before giving up on a playable one
	SurvivalBatches  int     // first K batches of a stage round use the survival guard
	SpecialChance    float64 // per-slot gold roll
	HelperBaseChance float64 // helper chance on an empty board
	HelperFillBoost  float64 // added helper chance per unit of fill ratio
	HelperMaxChance  float64 // cap on helper chance
}

// DefaultSpawnParams returns the standard spawner tuning.
func DefaultSpawnParams() SpawnParams {
	return SpawnParams{
		MaxAttempts:      10,
		SurvivalBatches:  10,
		SpecialChance:    0.1,
		HelperBaseChance: 0.1,
		HelperFillBoost:  0.5,
		HelperMaxChance:  0.5,
	}
}

// HelperChance returns the probability of forcing a helper piece at the
// given fill ratio.
func (p SpawnParams) HelperChance(fillRatio float64) float64 {
	chance := p.HelperBaseChance + p.HelperFillBoost*fillRatio
	if chance > p.HelperMaxChance {
		chance = p.HelperMaxChance
	}
	if chance < 0 {
		chance = 0
	}
	return chance
}

// SpawnInfo reports how a batch was produced.
type SpawnInfo struct {
	Attempts int
	Survival bool
	Helper   bool // a helper piece was forced into the batch
	Fallback bool // emergency fallback replaced the batch
	GameOver bool // the returned batch is unplayable
}

// Spawner draws batches from a catalog.
type Spawner struct {
	catalog *Catalog
	params  SpawnParams
	rng     Source
}

// NewSpawner creates a spawner. MaxAttempts below 1 is treated as 1.
func NewSpawner(catalog *Catalog, params SpawnParams, rng Source) *Spawner {
	if params.MaxAttempts < 1 {
		params.MaxAttempts = 1
	}
	return &Spawner{catalog: catalog, params: params, rng: rng}
}

// Params returns the spawner's tuning.
func (s *Spawner) Params() SpawnParams {
	return s.params
}

// Spawn produces a batch for the board. Batches that leave the board in a
// game-over position are redrawn up to MaxAttempts times. If the last draw is
// still unplayable and survival is set, every slot falls back to the
// smallest shape.
func (s *Spawner) Spawn(b *Board, weights WeightTable, survival bool) (Batch, SpawnInfo) {
	info := SpawnInfo{Survival: survival}
	analysis := Analyze(b)

	var pools survivalPools
	if survival {
		pools = s.survivalPools(b)
	}

	var batch Batch
	for info.Attempts < s.params.MaxAttempts {
		info.Attempts++
		var helper bool
		batch, helper = s.draw(b, analysis, weights, survival, pools)
		info.Helper = helper
		if !IsGameOver(b, batch) {
			return batch, info
		}
	}

	if survival {
		batch = Uniform(s.catalog.Smallest())
		info.Fallback = true
		info.Helper = false
	}
	info.GameOver = IsGameOver(b, batch)
	return batch, info
}

func (s *Spawner) draw(b *Board, a Analysis, weights WeightTable, survival bool, pools survivalPools) (Batch, bool) {
	var batch Batch
	helperUsed := false
	for i := range batch.Slots {
		var blk ActiveBlock
		switch {
		case survival:
			blk.Piece = s.pickSurvival(pools)
		case !helperUsed && a.HasNearComplete() && Chance(s.rng, s.params.HelperChance(a.FillRatio)):
			helper, target, ok := s.aimHelper(b, a)
			if ok {
				blk = ActiveBlock{Piece: helper, Helper: true, Target: target}
				helperUsed = true
			} else {
				blk.Piece = s.pickWeighted(weights)
			}
		default:
			blk.Piece = s.pickWeighted(weights)
		}
		blk.Special = Chance(s.rng, s.params.SpecialChance)
		batch.Slots[i] = &blk
	}
	return batch, helperUsed
}

// aimHelper finds an origin where the smallest shape covers an empty cell of
// a near-complete line.
func (s *Spawner) aimHelper(b *Board, a Analysis) (Piece, Coord, bool) {
	p := s.catalog.Smallest()
	for _, cell := range a.HelperCells {
		for _, off := range p.Cells() {
			origin := cell.Add(-off.Row, -off.Col)
			if CanPlace(b, p, origin.Row, origin.Col) {
				return p, origin, true
			}
		}
	}
	return Piece{}, Coord{}, false
}

// pickWeighted rolls a group by cumulative weight, then a piece uniformly
// within it. Groups without pieces are skipped. A table with no usable
// weight falls back to a uniform pick over the whole catalog.
func (s *Spawner) pickWeighted(weights WeightTable) Piece {
	total := 0
	for g, w := range weights {
		if w > 0 && len(s.catalog.byGroup[g]) > 0 {
			total += w
		}
	}
	if total <= 0 {
		return s.catalog.At(Intn(s.rng, s.catalog.Len()))
	}

	roll := s.rng.Float64() * float64(total)
	chosen := -1
	cum := 0.0
	for g, w := range weights {
		if w <= 0 || len(s.catalog.byGroup[g]) == 0 {
			continue
		}
		chosen = g
		cum += float64(w)
		if roll < cum {
			break
		}
	}
	members := s.catalog.byGroup[chosen]
	return s.catalog.At(members[Intn(s.rng, len(members))])
}

type survivalPools struct {
	necessary []Piece // fit somewhere and clear at least one line there
	placeable []Piece // fit somewhere
}

// survivalPools scans every catalog shape against every origin.
func (s *Spawner) survivalPools(b *Board) survivalPools {
	var pools survivalPools
	for _, p := range s.catalog.pieces {
		fits, clears := false, false
		for r := 0; r < b.Rows && !clears; r++ {
			for c := 0; c < b.Cols; c++ {
				if !CanPlace(b, p, r, c) {
					continue
				}
				fits = true
				if !b.PredictFullLines(p, r, c).Empty() {
					clears = true
					break
				}
			}
		}
		if clears {
			pools.necessary = append(pools.necessary, p)
		}
		if fits {
			pools.placeable = append(pools.placeable, p)
		}
	}
	return pools
}

func (s *Spawner) pickSurvival(pools survivalPools) Piece {
	switch {
	case len(pools.necessary) > 0:
		return pools.necessary[Intn(s.rng, len(pools.necessary))]
	case len(pools.placeable) > 0:
		return pools.placeable[Intn(s.rng, len(pools.placeable))]
	default:
		return s.catalog.At(Intn(s.rng, s.catalog.Len()))
	}
}
