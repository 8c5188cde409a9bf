package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChomp resolves the gameplay config. An explicit path must load or
// the error is returned; otherwise the user directory, the working
// directory, and finally the embedded default are tried in order.
func LoadChomp(customPath string) (ChompConfig, error) {
	var cfg ChompConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// ~/.chomp/configs/chomp.yaml
	if path := userConfigPath("chomp.yaml"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// ./configs/chomp.yaml
	if data, err := os.ReadFile("configs/chomp.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultChompYAML, &cfg); err != nil {
		// Embedded yaml should never fail to parse; fall back to the
		// hardcoded defaults if it somehow does.
		return DefaultChompConfig(), nil
	}
	return cfg, nil
}

// userConfigPath builds the per-user config path, or "" when no home
// directory is available.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chomp", "configs", filename)
}

// ApplyChompPreset overlays a difficulty preset onto a loaded config:
// the preset picks the starting difficulty level and the lives for the
// round, and "fixed" switches progression off entirely.
func ApplyChompPreset(cfg *ChompConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
	}
}
