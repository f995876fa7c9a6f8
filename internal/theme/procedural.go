package theme

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Procedural generates palettes from a random base hue using HSV harmonies.
// It is safe for concurrent use.
type Procedural struct {
	mu    sync.Mutex
	rng   *rand.Rand
	delay time.Duration
}

// NewProcedural creates a procedural generator. delay simulates generation
// latency so the asynchronous path is exercised like a remote source.
func NewProcedural(seed int64, delay time.Duration) *Procedural {
	return &Procedural{
		rng:   rand.New(rand.NewSource(seed)),
		delay: delay,
	}
}

// Generate builds a palette for the given score.
func (p *Procedural) Generate(ctx context.Context, score int) (Theme, error) {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Theme{}, fmt.Errorf("theme: procedural generation: %w", ctx.Err())
		case <-timer.C:
		}
	}

	p.mu.Lock()
	hue := p.rng.Float64() * 360
	night := p.rng.Float64() < 0.5
	motifs := Motifs()
	motif := motifs[p.rng.Intn(len(motifs))]
	p.mu.Unlock()

	skyV, groundV := 0.97, 0.45
	if night {
		skyV, groundV = 0.18, 0.75
	}

	sky := colorful.Hsv(hue, 0.12, skyV)
	ground := colorful.Hsv(hue, 0.35, groundV)
	character := colorful.Hsv(math.Mod(hue+150, 360), 0.75, 0.8)
	obstacle := colorful.Hsv(math.Mod(hue+210, 360), 0.7, 0.6)
	particle := ground.BlendLab(sky, 0.4)

	return Theme{
		Name:      fmt.Sprintf("Generated %03.0f° @%d", hue, score),
		Icon:      "✦",
		Sky:       sky.Clamped().Hex(),
		Ground:    ground.Clamped().Hex(),
		Character: character.Clamped().Hex(),
		Obstacle:  obstacle.Clamped().Hex(),
		Particle:  particle.Clamped().Hex(),
		Motif:     motif,
	}, nil
}
