package engine

import "math/rand"

// Rand is a pluggable random source. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Sources holds one independent random stream per concern so each can be
// seeded or replaced on its own in tests.
type Sources struct {
	Spawn     Rand // Spawn jitter, hazard kind and size
	Shuffle   Rand // Question pick and option shuffle
	Quiz      Rand // Proactive quiz rolls
	Particles Rand // Cosmetic dust
}

// NewSources derives four independent streams from one seed.
func NewSources(seed int64) Sources {
	return Sources{
		Spawn:     rand.New(rand.NewSource(seed)),
		Shuffle:   rand.New(rand.NewSource(seed ^ 0x5f3759df)),
		Quiz:      rand.New(rand.NewSource(seed ^ 0x2545f491)),
		Particles: rand.New(rand.NewSource(seed ^ 0x1b873593)),
	}
}
