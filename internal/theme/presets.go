package theme

import "strings"

// presets is the static catalog, in rotation order.
var presets = []Theme{
	{
		Name:      "Campus Morning",
		Icon:      "☀",
		Sky:       "#f8fafc",
		Ground:    "#475569",
		Character: "#166534",
		Obstacle:  "#064e3b",
		Particle:  "#b45309",
		Motif:     MotifSun,
	},
	{
		Name:      "Late Night Shift",
		Icon:      "☾",
		Sky:       "#0f172a",
		Ground:    "#94a3b8",
		Character: "#4ade80",
		Obstacle:  "#10b981",
		Particle:  "#334155",
		Motif:     MotifMoon,
	},
	{
		Name:      "Cyberpunk IT",
		Icon:      "⌘",
		Sky:       "#2e1065",
		Ground:    "#d946ef",
		Character: "#06b6d4",
		Obstacle:  "#f43f5e",
		Particle:  "#fbbf24",
		Motif:     MotifCircuit,
	},
	{
		Name:      "Desert Sands",
		Icon:      "≈",
		Sky:       "#fffbeb",
		Ground:    "#92400e",
		Character: "#b45309",
		Obstacle:  "#166534",
		Particle:  "#d97706",
		Motif:     MotifDunes,
	},
	{
		Name:      "Snow Season",
		Icon:      "❄",
		Sky:       "#f1f5f9",
		Ground:    "#1e293b",
		Character: "#2563eb",
		Obstacle:  "#475569",
		Particle:  "#ffffff",
		Motif:     MotifSnow,
	},
	{
		Name:      "Spring Bloom",
		Icon:      "✿",
		Sky:       "#a7f3d0",
		Ground:    "#16a34a",
		Character: "#ec4899",
		Obstacle:  "#059669",
		Particle:  "#fde047",
		Motif:     MotifPetals,
	},
}

// Presets returns a copy of the preset catalog in rotation order.
func Presets() []Theme {
	out := make([]Theme, len(presets))
	copy(out, presets)
	return out
}

// Default returns the fallback theme used at run start and on generator failure.
func Default() Theme {
	return presets[0]
}

// Find returns the preset with the given name, ignoring case.
func Find(name string) (Theme, bool) {
	for _, t := range presets {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Theme{}, false
}

// PresetRotation cycles through a fixed list of themes by name.
type PresetRotation struct {
	themes []Theme
}

// NewPresetRotation creates a rotation over themes, or over the built-in
// presets when themes is empty.
func NewPresetRotation(themes []Theme) *PresetRotation {
	if len(themes) == 0 {
		themes = Presets()
	}
	return &PresetRotation{themes: themes}
}

// Next returns the theme after current. A theme not in the list restarts
// the rotation at the first entry.
func (r *PresetRotation) Next(current Theme) Theme {
	idx := -1
	for i, t := range r.themes {
		if t.Name == current.Name {
			idx = i
			break
		}
	}
	return r.themes[(idx+1)%len(r.themes)]
}
