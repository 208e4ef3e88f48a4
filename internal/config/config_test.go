package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blockblast/internal/games/blockblast/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded BlockBlastConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(embedded, DefaultBlockBlastConfig()) {
		t.Errorf("embedded defaults = %+v, want %+v", embedded, DefaultBlockBlastConfig())
	}
}

func TestToEngineMatchesEngineDefaults(t *testing.T) {
	got, err := DefaultBlockBlastConfig().ToEngine()
	if err != nil {
		t.Fatalf("ToEngine() error = %v", err)
	}
	want := core.DefaultConfig()

	if got.Rows != want.Rows || got.Cols != want.Cols {
		t.Errorf("board = %dx%d, want %dx%d", got.Rows, got.Cols, want.Rows, want.Cols)
	}
	if got.Spawn != want.Spawn {
		t.Errorf("Spawn = %+v, want %+v", got.Spawn, want.Spawn)
	}
	if got.Scoring != want.Scoring {
		t.Errorf("Scoring = %+v, want %+v", got.Scoring, want.Scoring)
	}
	if got.Layout != want.Layout {
		t.Errorf("Layout = %+v, want %+v", got.Layout, want.Layout)
	}
	if !reflect.DeepEqual(got.Tiers, want.Tiers) {
		t.Errorf("Tiers = %+v, want %+v", got.Tiers, want.Tiers)
	}
	if !reflect.DeepEqual(got.Items, want.Items) {
		t.Errorf("Items = %v, want %v", got.Items, want.Items)
	}
}

func TestToEngineRejectsUnknownNames(t *testing.T) {
	cfg := DefaultBlockBlastConfig()
	cfg.Tiers[0].Weights["hexomino"] = 3
	if _, err := cfg.ToEngine(); err == nil {
		t.Error("ToEngine() accepted an unknown shape group")
	}

	cfg = DefaultBlockBlastConfig()
	cfg.Items["shovel"] = 1
	if _, err := cfg.ToEngine(); err == nil {
		t.Error("ToEngine() accepted an unknown item")
	}

	cfg = DefaultBlockBlastConfig()
	cfg.Spawn.MaxAttempts = 0
	_, err := cfg.ToEngine()
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("ToEngine() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("spawn:\n  max_attempts: 25\nitems:\n  bomb: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlockBlast(path)
	if err != nil {
		t.Fatalf("LoadBlockBlast() error = %v", err)
	}
	if cfg.Spawn.MaxAttempts != 25 {
		t.Errorf("MaxAttempts = %d, want 25", cfg.Spawn.MaxAttempts)
	}
	if cfg.Spawn.SurvivalBatches != 10 {
		t.Errorf("SurvivalBatches = %d, want default 10", cfg.Spawn.SurvivalBatches)
	}
	if len(cfg.Items) != 1 || cfg.Items["bomb"] != 3 {
		t.Errorf("Items = %v, want only bomb=3", cfg.Items)
	}
	if len(cfg.Tiers) != 4 {
		t.Errorf("len(Tiers) = %d, want default 4", len(cfg.Tiers))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadBlockBlast(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadBlockBlast() with a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlockBlast(path); err == nil {
		t.Error("LoadBlockBlast() with malformed yaml should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		initialTier int
		survival    int
	}{
		{DifficultyEasy, true, 0, 15},
		{DifficultyNormal, true, 0, 10},
		{DifficultyHard, true, 1, 5},
		{DifficultyFixed, false, 0, 10},
	}

	for _, tt := range tests {
		cfg := DefaultBlockBlastConfig()
		ApplyBlockBlastPreset(&cfg, tt.preset)
		if cfg.Difficulty.Enabled != tt.enabled {
			t.Errorf("%s: Enabled = %v, want %v", tt.preset, cfg.Difficulty.Enabled, tt.enabled)
		}
		if cfg.Difficulty.InitialTier != tt.initialTier {
			t.Errorf("%s: InitialTier = %d, want %d", tt.preset, cfg.Difficulty.InitialTier, tt.initialTier)
		}
		if cfg.Spawn.SurvivalBatches != tt.survival {
			t.Errorf("%s: SurvivalBatches = %d, want %d", tt.preset, cfg.Spawn.SurvivalBatches, tt.survival)
		}
	}
}

func TestFixedPresetPinsOneTier(t *testing.T) {
	cfg := DefaultBlockBlastConfig()
	cfg.Difficulty.InitialTier = 2
	ApplyBlockBlastPreset(&cfg, DifficultyFixed)

	engine, err := cfg.ToEngine()
	if err != nil {
		t.Fatalf("ToEngine() error = %v", err)
	}
	if len(engine.Tiers) != 1 || engine.Tiers[0].Name != "hard" {
		t.Errorf("Tiers = %+v, want only hard", engine.Tiers)
	}
	if engine.TierBias != 0 {
		t.Errorf("TierBias = %d, want 0", engine.TierBias)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"fixed", DifficultyFixed, true},
		{"nightmare", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLocate(t *testing.T) {
	if got := Locate("/some/custom.yaml"); got != "/some/custom.yaml" {
		t.Errorf("Locate(custom) = %q, want the custom path", got)
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	if got := Locate(""); got != "" {
		t.Errorf("Locate() with no files = %q, want embedded defaults", got)
	}

	dir := filepath.Join(home, ".blockblast", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(path, []byte("board: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Locate(""); got != "" {
		t.Errorf("Locate() with a broken user file = %q, want it skipped", got)
	}

	if err := os.WriteFile(path, []byte("spawn:\n  max_attempts: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Locate(""); got != path {
		t.Errorf("Locate() = %q, want %q", got, path)
	}
	cfg, err := LoadBlockBlast("")
	if err != nil {
		t.Fatalf("LoadBlockBlast() error = %v", err)
	}
	if cfg.Spawn.MaxAttempts != 40 {
		t.Errorf("MaxAttempts = %d, want 40 from the user file", cfg.Spawn.MaxAttempts)
	}
}
