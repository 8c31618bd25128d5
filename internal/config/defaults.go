package config

import (
	_ "embed"
)

//go:embed defaults/hexpop.yaml
var defaultHexpopYAML []byte

// DefaultHexpopConfig returns the built-in configuration. It matches the
// embedded YAML and is the last fallback when that cannot be parsed.
func DefaultHexpopConfig() HexpopConfig {
	return HexpopConfig{
		Grid: GridConfig{
			Radius:      20,
			Columns:     12,
			Forgiveness: 4,
			StartRows:   5,
			Colors:      6,
			ItemChance:  0.01,
		},
		Shooter: ShooterConfig{
			Y:         670,
			Speed:     12,
			AimStep:   0.05,
			AimMargin: 0.2,
			DeathLine: 100,
		},
		Gameplay: GameplayConfig{
			MissThreshold: 5,
			PenaltyRows:   2,
			ComboForBomb:  5,
			MinCluster:    3,
			BigCluster:    5,
			PopScore:      10,
			DropScore:     20,
			LaserScore:    20,
			QueueSize:     4,
			WaveRows:      1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				MissReduction: 2,
			},
		},
	}
}
