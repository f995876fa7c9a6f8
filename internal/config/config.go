// Package config provides YAML-based runner configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tuning for the runner engine.
// World units match the reference 800x400 canvas; the render surface scales them.
type RunnerConfig struct {
	World         WorldConfig         `yaml:"world"`
	Physics       PhysicsConfig       `yaml:"physics"`
	Player        PlayerConfig        `yaml:"player"`
	Speed         SpeedConfig         `yaml:"speed"`
	Obstacles     ObstacleConfig      `yaml:"obstacles"`
	Particles     ParticleConfig      `yaml:"particles"`
	Progression   ProgressionConfig   `yaml:"progression"`
	Quiz          QuizConfig          `yaml:"quiz"`
	Invincibility InvincibilityConfig `yaml:"invincibility"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width    float64 `yaml:"width"`     // Obstacles enter at this x
	Height   float64 `yaml:"height"`    // Only used for rendering
	GroundY  float64 `yaml:"ground_y"`  // Ground line, y grows downward
	DespawnX float64 `yaml:"despawn_x"` // Obstacles whose right edge passes this are removed
}

// PhysicsConfig defines the character's vertical motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// PlayerConfig defines the character sprite bounds and its forgiving hitbox.
type PlayerConfig struct {
	X      float64     `yaml:"x"`
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Hitbox HitboxInset `yaml:"hitbox"`
}

// HitboxInset shrinks the sprite bounds into the collision rectangle.
type HitboxInset struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// SpeedConfig defines scroll speed progression.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial"`
	Increment float64 `yaml:"increment"` // Added every tick, unbounded
}

// ObstacleConfig defines spawn spacing and hazard shapes.
type ObstacleConfig struct {
	MinGap    float64            `yaml:"min_gap"`
	GapJitter float64            `yaml:"gap_jitter"` // Redrawn uniformly in [0, jitter) on every check
	Ground    GroundHazardConfig `yaml:"ground"`
	Flying    FlyingHazardConfig `yaml:"flying"`
}

// GroundHazardConfig defines the size ranges of ground hazards.
type GroundHazardConfig struct {
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
}

// FlyingHazardConfig defines flying hazards.
type FlyingHazardConfig struct {
	Width     float64   `yaml:"width"`
	Height    float64   `yaml:"height"`
	MinScore  int       `yaml:"min_score"` // Displayed score after which flyers may appear
	Chance    float64   `yaml:"chance"`
	Altitudes []float64 `yaml:"altitudes"` // Distance from ground to the flyer's top edge
}

// ParticleConfig defines cosmetic dust particles.
type ParticleConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"`
	Decay       float64 `yaml:"decay"`
	Drift       float64 `yaml:"drift"` // Fraction of scroll speed the dust drifts back
	MaxVY       float64 `yaml:"max_vy"`
	OffsetX     float64 `yaml:"offset_x"`
	OffsetY     float64 `yaml:"offset_y"` // Measured up from the sprite's bottom edge
}

// ProgressionConfig defines score and theme cadence.
type ProgressionConfig struct {
	ScoreDivisor  int `yaml:"score_divisor"`  // Raw ticks per displayed point
	ThemeInterval int `yaml:"theme_interval"` // Displayed points between theme changes
}

// QuizConfig defines proactive quiz odds and answer reveal timing.
type QuizConfig struct {
	ChanceInterval int     `yaml:"chance_interval"`
	Chance         float64 `yaml:"chance"`
	RevealDelayMS  int     `yaml:"reveal_delay_ms"`
}

// InvincibilityConfig defines the window granted by a correct answer.
type InvincibilityConfig struct {
	DurationMS int `yaml:"duration_ms"`
	CadenceMS  int `yaml:"cadence_ms"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid runner config")

// Validate checks the invariants the engine relies on.
func (c RunnerConfig) Validate() error {
	switch {
	case c.World.Width <= 0:
		return fmt.Errorf("%w: world.width must be > 0", ErrInvalidConfig)
	case c.World.GroundY <= 0:
		return fmt.Errorf("%w: world.ground_y must be > 0", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player width/height must be > 0", ErrInvalidConfig)
	case c.Player.Hitbox.Left+c.Player.Hitbox.Right >= c.Player.Width ||
		c.Player.Hitbox.Top+c.Player.Hitbox.Bottom >= c.Player.Height:
		return fmt.Errorf("%w: player.hitbox insets leave an empty hitbox", ErrInvalidConfig)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: physics.jump_impulse must be negative", ErrInvalidConfig)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be > 0", ErrInvalidConfig)
	case c.Speed.Increment < 0:
		return fmt.Errorf("%w: speed.increment must not be negative", ErrInvalidConfig)
	case c.Obstacles.Ground.MinWidth <= 0 || c.Obstacles.Ground.MinHeight <= 0:
		return fmt.Errorf("%w: ground hazard sizes must be > 0", ErrInvalidConfig)
	case c.Obstacles.Ground.MaxWidth < c.Obstacles.Ground.MinWidth ||
		c.Obstacles.Ground.MaxHeight < c.Obstacles.Ground.MinHeight:
		return fmt.Errorf("%w: ground hazard max below min", ErrInvalidConfig)
	case c.Obstacles.Flying.Width <= 0 || c.Obstacles.Flying.Height <= 0:
		return fmt.Errorf("%w: flying hazard size must be > 0", ErrInvalidConfig)
	case !isChance(c.Obstacles.Flying.Chance):
		return fmt.Errorf("%w: obstacles.flying.chance must be in [0, 1]", ErrInvalidConfig)
	case len(c.Obstacles.Flying.Altitudes) == 0:
		return fmt.Errorf("%w: obstacles.flying.altitudes must not be empty", ErrInvalidConfig)
	case !isChance(c.Particles.SpawnChance):
		return fmt.Errorf("%w: particles.spawn_chance must be in [0, 1]", ErrInvalidConfig)
	case c.Particles.Decay <= 0:
		return fmt.Errorf("%w: particles.decay must be > 0", ErrInvalidConfig)
	case c.Progression.ScoreDivisor <= 0:
		return fmt.Errorf("%w: progression.score_divisor must be > 0", ErrInvalidConfig)
	case c.Progression.ThemeInterval <= 0:
		return fmt.Errorf("%w: progression.theme_interval must be > 0", ErrInvalidConfig)
	case !isChance(c.Quiz.Chance):
		return fmt.Errorf("%w: quiz.chance must be in [0, 1]", ErrInvalidConfig)
	case c.Quiz.RevealDelayMS < 0:
		return fmt.Errorf("%w: quiz.reveal_delay_ms must not be negative", ErrInvalidConfig)
	case c.Invincibility.CadenceMS <= 0:
		return fmt.Errorf("%w: invincibility.cadence_ms must be > 0", ErrInvalidConfig)
	case c.Invincibility.DurationMS < 0:
		return fmt.Errorf("%w: invincibility.duration_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}

func isChance(p float64) bool {
	return p >= 0 && p <= 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty or unknown values return false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
