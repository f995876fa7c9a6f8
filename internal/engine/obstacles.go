package engine

import (
	"github.com/vovakirdan/quiz-runner/internal/config"
	"github.com/vovakirdan/quiz-runner/internal/core"
)

// ObstacleKind distinguishes ground hazards from flyers.
type ObstacleKind int

const (
	KindGround ObstacleKind = iota
	KindFlying
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard scrolling toward the character.
type Obstacle struct {
	ID       uint64
	Kind     ObstacleKind
	X        float64 // Left edge
	Width    float64
	Height   float64
	Altitude float64 // Flyers only: distance from the ground line to the top edge
}

// Rect returns the collision rectangle. Ground hazards stand on the ground
// line; flyers hang Altitude units above it.
func (o Obstacle) Rect(groundY float64) core.Rect {
	if o.Kind == KindFlying {
		return core.NewRect(o.X, groundY-o.Altitude, o.Width, o.Height)
	}
	return core.NewRect(o.X, groundY-o.Height, o.Width, o.Height)
}

// Spawner handles spawning, movement, and removal of obstacles.
type Spawner struct {
	obstacles []Obstacle
	rng       Rand
	cfg       *config.RunnerConfig
	nextID    uint64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg *config.RunnerConfig, rng Rand) *Spawner {
	return &Spawner{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg,
	}
}

// Reset clears all obstacles. IDs keep increasing across runs.
func (s *Spawner) Reset() {
	s.obstacles = s.obstacles[:0]
}

// Update spawns at the right edge if the gap allows, scrolls everything left
// by speed, and drops obstacles past the despawn bound.
func (s *Spawner) Update(speed float64, score int) {
	if s.shouldSpawn() {
		s.spawn(score)
	}

	for i := range s.obstacles {
		s.obstacles[i].X -= speed
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X+o.Width > s.cfg.World.DespawnX {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// shouldSpawn checks the gap behind the newest obstacle. The jitter is
// redrawn on every check, so spacing is not fixed per obstacle.
func (s *Spawner) shouldSpawn() bool {
	if len(s.obstacles) == 0 {
		return true
	}
	last := s.obstacles[len(s.obstacles)-1]
	gap := s.cfg.Obstacles.MinGap + s.rng.Float64()*s.cfg.Obstacles.GapJitter
	return s.cfg.World.Width-last.X > gap
}

func (s *Spawner) spawn(score int) {
	s.nextID++
	o := Obstacle{ID: s.nextID, X: s.cfg.World.Width}

	fly := s.cfg.Obstacles.Flying
	if score > fly.MinScore && s.rng.Float64() < fly.Chance {
		o.Kind = KindFlying
		o.Width = fly.Width
		o.Height = fly.Height
		o.Altitude = fly.Altitudes[s.rng.Intn(len(fly.Altitudes))]
	} else {
		g := s.cfg.Obstacles.Ground
		o.Kind = KindGround
		o.Width = g.MinWidth + s.rng.Float64()*(g.MaxWidth-g.MinWidth)
		o.Height = g.MinHeight + s.rng.Float64()*(g.MaxHeight-g.MinHeight)
	}

	s.obstacles = append(s.obstacles, o)
}

// Obstacles returns the live obstacles, oldest first.
func (s *Spawner) Obstacles() []Obstacle {
	return s.obstacles
}

// FirstHit returns the first obstacle, in spawn order, overlapping hitbox.
func (s *Spawner) FirstHit(hitbox core.Rect) (Obstacle, bool) {
	for _, o := range s.obstacles {
		if hitbox.Intersects(o.Rect(s.cfg.World.GroundY)) {
			return o, true
		}
	}
	return Obstacle{}, false
}
