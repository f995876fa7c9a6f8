package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded YAML cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:    800,
			Height:   400,
			GroundY:  320,
			DespawnX: -50,
		},
		Physics: PhysicsConfig{
			Gravity:     0.6,
			JumpImpulse: -12,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  70,
			Height: 85,
			Hitbox: HitboxInset{Left: 10, Top: 10, Right: 10, Bottom: 10},
		},
		Speed: SpeedConfig{
			Initial:   6,
			Increment: 0.001,
		},
		Obstacles: ObstacleConfig{
			MinGap:    400,
			GapJitter: 400,
			Ground: GroundHazardConfig{
				MinWidth:  35,
				MaxWidth:  65,
				MinHeight: 30,
				MaxHeight: 60,
			},
			Flying: FlyingHazardConfig{
				Width:     60,
				Height:    40,
				MinScore:  400,
				Chance:    0.3,
				Altitudes: []float64{50, 130},
			},
		},
		Particles: ParticleConfig{
			SpawnChance: 0.05,
			Decay:       0.04,
			Drift:       0.3,
			MaxVY:       1.5,
			OffsetX:     20,
			OffsetY:     10,
		},
		Progression: ProgressionConfig{
			ScoreDivisor:  10,
			ThemeInterval: 300,
		},
		Quiz: QuizConfig{
			ChanceInterval: 500,
			Chance:         0.005,
			RevealDelayMS:  1500,
		},
		Invincibility: InvincibilityConfig{
			DurationMS: 6000,
			CadenceMS:  100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for the runner.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
