// Package config provides YAML-based gameplay configuration loading and
// difficulty management for chomp.
package config

// ChompConfig contains all tunable gameplay numbers. Maze geometry is
// compiled in; config covers speeds, timing, and scoring only.
type ChompConfig struct {
	Speeds     SpeedConfig      `yaml:"speeds"`
	Power      PowerConfig      `yaml:"power"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SpeedConfig defines entity speeds in tiles per second.
type SpeedConfig struct {
	Player          float64 `yaml:"player"`
	Ghost           float64 `yaml:"ghost"`
	VulnerableGhost float64 `yaml:"vulnerable_ghost"`
}

// PowerConfig defines the power-pellet vulnerability window.
type PowerConfig struct {
	DurationSec float64 `yaml:"duration_sec"`
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	Capture     int `yaml:"capture"`
}

// GameplayConfig defines round parameters.
type GameplayConfig struct {
	Lives           int     `yaml:"lives"`
	CollisionRadius float64 `yaml:"collision_radius"` // in tile units
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
	// GhostSpeedMultiplier is added to ghost speed at max difficulty
	// (0.35 means +35% ghost speed).
	GhostSpeedMultiplier float64 `yaml:"ghost_speed_multiplier"`
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
