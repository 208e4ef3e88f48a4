package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in every search location.
const ConfigFile = "blockblast.yaml"

// searchPaths lists the files tried, in order, when no custom path is set.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".blockblast", "configs", ConfigFile))
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// Locate returns the file LoadBlockBlast reads for customPath, or "" when
// the embedded defaults are used. Unreadable or invalid search-path files
// are skipped.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if _, err := parse(data); err == nil {
			return path
		}
	}
	return ""
}

// LoadBlockBlast loads the configuration from customPath, then the search
// paths, then the embedded defaults. A custom path must exist and parse.
func LoadBlockBlast(customPath string) (BlockBlastConfig, error) {
	path := Locate(customPath)
	if path == "" {
		cfg, err := parse(defaultBlockBlastYAML)
		if err != nil {
			return DefaultBlockBlastConfig(), nil
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return BlockBlastConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return BlockBlastConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults, so a partial file
// only overrides the keys it names.
func parse(data []byte) (BlockBlastConfig, error) {
	cfg := DefaultBlockBlastConfig()
	// Lists and maps in the file replace the defaults instead of merging.
	cfg.Tiers = nil
	cfg.Items = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlockBlastConfig{}, err
	}
	defaults := DefaultBlockBlastConfig()
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = defaults.Tiers
	}
	if cfg.Items == nil {
		cfg.Items = defaults.Items
	}
	return cfg, nil
}

// ApplyBlockBlastPreset modifies the config based on a difficulty preset.
func ApplyBlockBlastPreset(cfg *BlockBlastConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialTier = InitialTierForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Spawn.SurvivalBatches += 5
		cfg.Spawn.Helper.MaxChance = clampF(cfg.Spawn.Helper.MaxChance+0.2, 0, 1)
	case DifficultyHard:
		cfg.Spawn.SurvivalBatches /= 2
		cfg.Spawn.Helper.MaxChance = clampF(cfg.Spawn.Helper.MaxChance-0.2, 0, 1)
	}
}

func clampF(val, lo, hi float64) float64 {
	return max(lo, min(val, hi))
}
