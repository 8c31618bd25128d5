package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const hexpopFile = "hexpop.yaml"

// LoadHexpop loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/hexpop.yaml -> ./configs/hexpop.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. Only an explicit customPath can fail; the implicit locations
// are skipped when unreadable or malformed.
func LoadHexpop(customPath string) (HexpopConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HexpopConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseHexpop(data)
		if err != nil {
			return HexpopConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(hexpopFile), filepath.Join("configs", hexpopFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseHexpop(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseHexpop(defaultHexpopYAML)
	if err != nil {
		return DefaultHexpopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseHexpop(data []byte) (HexpopConfig, error) {
	cfg := DefaultHexpopConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HexpopConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HexpopConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c HexpopConfig) Validate() error {
	switch {
	case c.Grid.Radius <= 0:
		return fmt.Errorf("grid.radius must be positive, got %v", c.Grid.Radius)
	case c.Grid.Columns < 2:
		return fmt.Errorf("grid.columns must be at least 2, got %d", c.Grid.Columns)
	case c.Grid.Forgiveness < 0 || c.Grid.Forgiveness >= 2*c.Grid.Radius:
		return fmt.Errorf("grid.forgiveness must be in [0, %v), got %v", 2*c.Grid.Radius, c.Grid.Forgiveness)
	case c.Grid.StartRows < 1:
		return fmt.Errorf("grid.start_rows must be at least 1, got %d", c.Grid.StartRows)
	case c.Grid.Colors < 2 || c.Grid.Colors > 6:
		return fmt.Errorf("grid.colors must be in [2, 6], got %d", c.Grid.Colors)
	case c.Grid.ItemChance < 0 || c.Grid.ItemChance > 1:
		return fmt.Errorf("grid.item_chance must be in [0, 1], got %v", c.Grid.ItemChance)
	case c.Shooter.Speed <= 0:
		return fmt.Errorf("shooter.speed must be positive, got %v", c.Shooter.Speed)
	case c.Shooter.AimStep <= 0:
		return fmt.Errorf("shooter.aim_step must be positive, got %v", c.Shooter.AimStep)
	case c.Gameplay.MissThreshold < 1:
		return fmt.Errorf("gameplay.miss_threshold must be at least 1, got %d", c.Gameplay.MissThreshold)
	case c.Gameplay.PenaltyRows < 0 || c.Gameplay.PenaltyRows%2 != 0:
		// Odd shifts would move bubbles onto rows with a different width
		return fmt.Errorf("gameplay.penalty_rows must be even and non-negative, got %d", c.Gameplay.PenaltyRows)
	case c.Gameplay.QueueSize < 2:
		return fmt.Errorf("gameplay.queue_size must be at least 2, got %d", c.Gameplay.QueueSize)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyHexpopPreset modifies the config based on a difficulty preset.
func ApplyHexpopPreset(cfg *HexpopConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the field pressure
	switch preset {
	case DifficultyEasy:
		cfg.Grid.StartRows = 4
		cfg.Grid.Colors = 4
		cfg.Gameplay.MissThreshold = 7
	case DifficultyHard:
		cfg.Grid.StartRows = 6
		cfg.Grid.Colors = 6
		cfg.Gameplay.MissThreshold = 4
	}
}
