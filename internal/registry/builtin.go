package registry

import (
	"errors"
	"time"

	"github.com/vovakirdan/quiz-runner/internal/theme"
)

// proceduralDelay makes the procedural source behave like a slow backend.
const proceduralDelay = 400 * time.Millisecond

func init() {
	Register("preset", "Rotate through the built-in palettes", func(Options) (Source, error) {
		return Source{Rotation: theme.NewPresetRotation(nil)}, nil
	})

	Register("procedural", "Generate palettes from a random hue (async)", func(opts Options) (Source, error) {
		return Source{Generator: theme.NewProcedural(opts.Seed, proceduralDelay)}, nil
	})

	Register("remote", "Fetch palettes from an HTTP endpoint (async)", func(opts Options) (Source, error) {
		if opts.URL == "" {
			return Source{}, errors.New("remote theme source needs a URL (QUIZRUNNER_THEME_URL)")
		}
		return Source{Generator: theme.NewRemote(opts.URL, opts.Token)}, nil
	})
}
