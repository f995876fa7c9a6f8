package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiz-runner/internal/registry"
	"github.com/vovakirdan/quiz-runner/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List theme sources and preset palettes",
	Long:  `Shows the registered theme sources and a swatch of every built-in palette.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	sources := registry.List()

	fmt.Println("Theme sources:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sources {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, s := range sources {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Description)
	}

	fmt.Println()
	fmt.Println("Preset palettes:")
	fmt.Println()
	for _, t := range theme.Presets() {
		fmt.Printf("  %s  %s %-18s %s\n", swatch(t), t.Icon, t.Name, t.Motif)
	}

	fmt.Println()
	fmt.Println("Run 'quizrunner play --themes <id>' to pick a source,")
	fmt.Println("or 'quizrunner play --theme <name>' to start on a preset.")
}

// swatch renders the theme's colors as a row of blocks on its sky.
func swatch(t theme.Theme) string {
	var out string
	for _, c := range []string{t.Ground, t.Character, t.Obstacle, t.Particle} {
		out += lipgloss.NewStyle().
			Foreground(lipgloss.Color(c)).
			Background(lipgloss.Color(t.Sky)).
			Render("██")
	}
	return out
}
