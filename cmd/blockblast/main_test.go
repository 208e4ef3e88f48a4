package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-blockblast/internal/games/blockblast"
	bb "github.com/vovakirdan/tui-blockblast/internal/games/blockblast/core"
	"github.com/vovakirdan/tui-blockblast/internal/storage"
)

func TestDefaultPlayer(t *testing.T) {
	t.Setenv(envPlayer, "ann")
	if got := defaultPlayer(); got != "ann" {
		t.Errorf("defaultPlayer() = %q, want %q", got, "ann")
	}

	t.Setenv(envPlayer, "")
	t.Setenv("USER", "")
	t.Setenv("USERNAME", "")
	if got := defaultPlayer(); got != "local" {
		t.Errorf("defaultPlayer() = %q, want %q", got, "local")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"ann", 12, "ann"},
		{"abcdef", 4, "abc…"},
		{"ёжикёжик", 5, "ёжик…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestSimRoundIsReproducible(t *testing.T) {
	prevMode, prevMoves := flagSimMode, flagSimMoves
	t.Cleanup(func() { flagSimMode, flagSimMoves = prevMode, prevMoves })

	flagSimMode = blockblast.IDClassic
	flagSimMoves = 30

	a, err := simRound(bb.DefaultConfig(), 11)
	if err != nil {
		t.Fatalf("simRound() failed: %v", err)
	}
	b, err := simRound(bb.DefaultConfig(), 11)
	if err != nil {
		t.Fatalf("simRound() failed: %v", err)
	}
	if a != b {
		t.Errorf("same seed gave %+v and %+v", a, b)
	}
	if a.Moves == 0 || a.Moves > 30 {
		t.Errorf("Moves = %d, want 1..30", a.Moves)
	}
}

func TestSimulateRecordsFinishedRounds(t *testing.T) {
	prevRounds, prevMode, prevMoves := flagSimRounds, flagSimMode, flagSimMoves
	t.Cleanup(func() { flagSimRounds, flagSimMode, flagSimMoves = prevRounds, prevMode, prevMoves })

	flagSimRounds = 3
	flagSimMode = blockblast.IDClassic
	flagSimMoves = 200

	dbPath := filepath.Join(t.TempDir(), "sim.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	results, err := simulate(bb.DefaultConfig(), 5, store)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if len(results) != flagSimRounds {
		t.Fatalf("len(results) = %d, want %d", len(results), flagSimRounds)
	}

	finished := 0
	for _, r := range results {
		if r.GameOver && r.Score > 0 {
			finished++
		}
	}

	// Everything simulate wrote is on disk once the store is closed.
	store, err = storage.Open(dbPath)
	if err != nil {
		t.Fatalf("reopening failed: %v", err)
	}
	defer store.Close()
	scores, err := store.TopScores(blockblast.IDClassic, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != finished {
		t.Errorf("len(TopScores()) = %d, want %d finished rounds", len(scores), finished)
	}
	for _, s := range scores {
		if s.Player != "autoplay" {
			t.Errorf("Player = %q, want autoplay", s.Player)
		}
	}
}
