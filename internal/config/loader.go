package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// userDir is the per-user directory under $HOME holding overrides.
const userDir = ".quizrunner"

// Source describes where a loaded document came from.
type Source string

// SourceEmbedded marks data that came from the binary itself.
const SourceEmbedded Source = "embedded"

// ReadFirst returns the first readable document for filename.
// Search order: customPath -> ~/.quizrunner/configs/<filename> -> ./configs/<filename> -> embedded.
// A custom path that cannot be read is an error; the other locations are optional.
func ReadFirst(customPath, filename string, embedded []byte) ([]byte, Source, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return data, Source(customPath), nil
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return data, Source(userCfgPath), nil
		}
	}

	local := filepath.Join("configs", filename)
	if data, err := os.ReadFile(local); err == nil {
		return data, Source(local), nil
	}

	return embedded, SourceEmbedded, nil
}

// LoadRunner loads the runner configuration.
// Fields missing from the YAML keep their default values.
func LoadRunner(customPath string) (RunnerConfig, error) {
	data, src, err := ReadFirst(customPath, "runner.yaml", defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), err
	}

	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if src == SourceEmbedded {
			return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
		}
		return DefaultRunnerConfig(), fmt.Errorf("failed to parse config %s: %w", src, err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultRunnerConfig(), fmt.Errorf("config %s: %w", src, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDir, "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = 5
		cfg.Speed.Increment = 0.0006
		cfg.Obstacles.MinGap = 460
		cfg.Invincibility.DurationMS = 8000
	case DifficultyHard:
		cfg.Speed.Initial = 7
		cfg.Speed.Increment = 0.0015
		cfg.Obstacles.MinGap = 340
		cfg.Obstacles.Flying.MinScore = 200
		cfg.Invincibility.DurationMS = 4000
	case DifficultyFixed:
		cfg.Speed.Increment = 0
	}
}
