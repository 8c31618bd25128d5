// Package config provides YAML-based game configuration loading and
// difficulty management for Hex Pop.
package config

// HexpopConfig contains all configuration for the game.
type HexpopConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Shooter    ShooterConfig    `yaml:"shooter"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the lattice and how fields are generated.
type GridConfig struct {
	Radius      float64 `yaml:"radius"`      // Bubble radius in field pixels
	Columns     int     `yaml:"columns"`     // Cells in an even row; odd rows hold one fewer
	Forgiveness float64 `yaml:"forgiveness"` // Subtracted from the contact distance
	StartRows   int     `yaml:"start_rows"`
	Colors      int     `yaml:"colors"` // Palette size, 2..6
	ItemChance  float64 `yaml:"item_chance"`
}

// ShooterConfig defines the cannon and the projectile.
type ShooterConfig struct {
	Y         float64 `yaml:"y"`          // Cannon height in field pixels
	Speed     float64 `yaml:"speed"`      // Projectile pixels per tick
	AimStep   float64 `yaml:"aim_step"`   // Radians per Left/Right press
	AimMargin float64 `yaml:"aim_margin"` // Closest the aim may get to horizontal
	DeathLine float64 `yaml:"death_line"` // Distance above the cannon that ends the run
}

// GameplayConfig defines scoring and the pressure rules.
type GameplayConfig struct {
	MissThreshold int `yaml:"miss_threshold"`
	PenaltyRows   int `yaml:"penalty_rows"`
	ComboForBomb  int `yaml:"combo_for_bomb"`
	MinCluster    int `yaml:"min_cluster"`
	BigCluster    int `yaml:"big_cluster"` // Clusters larger than this score double
	PopScore      int `yaml:"pop_score"`
	DropScore     int `yaml:"drop_score"`
	LaserScore    int `yaml:"laser_score"`
	QueueSize     int `yaml:"queue_size"`
	WaveRows      int `yaml:"wave_rows"` // Extra start rows per endless wave
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	MissReduction int `yaml:"miss_reduction"` // Misses shaved off the threshold at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name from the command line.
// The empty string selects normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
