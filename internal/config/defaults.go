package config

import (
	_ "embed"
)

//go:embed defaults/chomp.yaml
var defaultChompYAML []byte

// DefaultChompConfig returns the default gameplay configuration.
// Values mirror the embedded defaults/chomp.yaml.
func DefaultChompConfig() ChompConfig {
	return ChompConfig{
		Speeds: SpeedConfig{
			Player:          4.0,
			Ghost:           3.6,
			VulnerableGhost: 2.4,
		},
		Power: PowerConfig{
			DurationSec: 7.0,
		},
		Scoring: ScoringConfig{
			Pellet:      10,
			PowerPellet: 50,
			Capture:     200,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			CollisionRadius: 0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				GhostSpeedMultiplier: 0.35,
			},
		},
	}
}
