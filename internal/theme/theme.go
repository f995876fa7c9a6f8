// Package theme provides the cosmetic palettes the runner rotates through:
// a static preset catalog with deterministic rotation, and asynchronous
// generators (procedural and remote) that may fail and fall back to Default.
package theme

import (
	"context"
	"errors"
	"fmt"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme is a named palette. Colors are "#rrggbb" hex strings.
type Theme struct {
	Name      string `json:"name" yaml:"name"`
	Icon      string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Sky       string `json:"sky" yaml:"sky"`
	Ground    string `json:"ground" yaml:"ground"`
	Character string `json:"character" yaml:"character"`
	Obstacle  string `json:"obstacle" yaml:"obstacle"`
	Particle  string `json:"particle" yaml:"particle"`
	Motif     Motif  `json:"motif,omitempty" yaml:"motif,omitempty"`
}

// Motif names the background decoration drawn behind the world.
type Motif string

const (
	MotifNone    Motif = ""
	MotifSun     Motif = "sun"     // Sun and drifting clouds
	MotifMoon    Motif = "moon"    // Crescent and twinkling stars
	MotifCircuit Motif = "circuit" // Grid lines and digital rain
	MotifDunes   Motif = "dunes"   // Dune ridge and heat shimmer
	MotifSnow    Motif = "snow"    // Falling flakes
	MotifPetals  Motif = "petals"  // Drifting petals
)

// Motifs lists every drawable motif.
func Motifs() []Motif {
	return []Motif{MotifSun, MotifMoon, MotifCircuit, MotifDunes, MotifSnow, MotifPetals}
}

func (m Motif) valid() bool {
	if m == MotifNone {
		return true
	}
	for _, known := range Motifs() {
		if m == known {
			return true
		}
	}
	return false
}

// ErrMalformed is wrapped when a theme payload is incomplete or has bad colors.
var ErrMalformed = errors.New("theme: malformed theme")

// Validate checks that the theme has a name and parseable colors.
func (t Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: missing name", ErrMalformed)
	}
	fields := []struct {
		name, value string
	}{
		{"sky", t.Sky},
		{"ground", t.Ground},
		{"character", t.Character},
		{"obstacle", t.Obstacle},
		{"particle", t.Particle},
	}
	for _, f := range fields {
		if _, err := colorful.Hex(f.value); err != nil {
			return fmt.Errorf("%w: %s color %q: %v", ErrMalformed, f.name, f.value, err)
		}
	}
	if !t.Motif.valid() {
		return fmt.Errorf("%w: unknown motif %q", ErrMalformed, t.Motif)
	}
	return nil
}

// Rotation is a synchronous theme source.
type Rotation interface {
	Next(current Theme) Theme
}

// Generator is an asynchronous theme source. Implementations may block and
// may fail; callers run them off the simulation loop.
type Generator interface {
	Generate(ctx context.Context, score int) (Theme, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, score int) (Theme, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, score int) (Theme, error) {
	return f(ctx, score)
}

// Resolve runs gen with a timeout. On any failure (error, timeout, or a
// malformed result) it returns Default together with the cause.
func Resolve(ctx context.Context, gen Generator, score int, timeout time.Duration) (Theme, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	t, err := gen.Generate(ctx, score)
	if err == nil {
		err = t.Validate()
	}
	if err != nil {
		return Default(), err
	}
	return t, nil
}
