package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quiz-runner/internal/core"
	"github.com/vovakirdan/quiz-runner/internal/engine"
	"github.com/vovakirdan/quiz-runner/internal/quiz"
	"github.com/vovakirdan/quiz-runner/internal/theme"
)

// Visual characters for rendering
const (
	RunnerChar   = '█'
	ShieldChar   = '▒'
	CactusChar   = '▓'
	FlyerChar    = '▼'
	ParticleChar = '·'
	GroundChar   = '═'
	DirtChar     = '░'
)

const hudHeight = 1

// Fixed feedback colors; themes only cover the world.
const (
	colorCorrect = "#22c55e"
	colorWrong   = "#ef4444"
	colorMuted   = "#9ca3af"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// A non-default bg paints the whole buffer.
func RenderScreen(s *core.Screen, bg core.Color) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	base := lipgloss.NewStyle()
	if !bg.IsDefault() {
		base = base.Background(lipgloss.Color(string(bg)))
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style := base
			if !startColor.IsDefault() {
				style = style.Foreground(lipgloss.Color(string(startColor)))
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// cellRect maps a world rectangle onto screen cells. Every visible
// rectangle covers at least one cell.
func cellRect(r core.Rect, sx, sy float64) (x, y, w, h int) {
	x = int(math.Floor(r.X * sx))
	y = int(math.Floor(r.Y * sy))
	w = max(1, int(math.Ceil(r.Right()*sx))-x)
	h = max(1, int(math.Ceil(r.Bottom()*sy))-y)
	return x, y, w, h
}

// drawWorld draws the snapshot into dst, scaling world units to cells.
func drawWorld(dst *core.Screen, snap engine.Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.WorldWidth <= 0 || snap.WorldHeight <= 0 {
		return
	}

	sx := float64(dst.Width()) / snap.WorldWidth
	sy := float64(dst.Height()) / snap.WorldHeight
	th := snap.Theme

	groundRow := int(math.Round(snap.GroundY * sy))
	drawMotif(dst, snap, sx, sy, groundRow)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.Color(th.Ground))
	dst.FillRect(0, groundRow+1, dst.Width(), dst.Height()-groundRow-1, DirtChar, core.Color(th.Ground))

	for _, o := range snap.Obstacles {
		x, y, w, h := cellRect(o.Rect(snap.GroundY), sx, sy)
		ch := CactusChar
		if o.Kind == engine.KindFlying {
			ch = FlyerChar
		}
		dst.FillRect(x, y, w, min(h, groundRow-y), ch, core.Color(th.Obstacle))
	}

	for _, p := range snap.Particles {
		dst.SetCell(int(p.X*sx), int(p.Y*sy), ParticleChar, core.Color(th.Particle))
	}

	ch := RunnerChar
	// Blink while invincible, faster in the last second
	if snap.Invincible() {
		period := 400
		if snap.InvincibleMS <= 1000 {
			period = 200
		}
		if (snap.InvincibleMS/period)%2 == 0 {
			ch = ShieldChar
		}
	}
	x, y, w, h := cellRect(snap.Sprite, sx, sy)
	dst.FillRect(x, y, w, min(h, groundRow-y), ch, core.Color(th.Character))
}

// Motif glyphs
const (
	SunChar     = '●'
	MoonChar    = '☾'
	CloudChar   = '▀'
	StarChar    = '✦'
	GridChar    = '┄'
	RainChar    = '╎'
	DuneChar    = '▁'
	ShimmerChar = '≀'
	SnowChar    = '*'
	PetalChar   = '✿'
)

const colorSun = "#fbbf24"

// drawMotif paints the theme's background decoration above the ground.
// Motion is a pure function of the score, so a snapshot always draws the
// same frame.
func drawMotif(dst *core.Screen, snap engine.Snapshot, sx, sy float64, groundRow int) {
	w, h := snap.WorldWidth, snap.WorldHeight
	phase := float64(snap.Score) / 50
	particle := core.Color(snap.Theme.Particle)

	plot := func(wx, wy float64, r rune, c core.Color) {
		cy := int(wy * sy)
		if cy < groundRow {
			dst.SetCell(int(wx*sx), cy, r, c)
		}
	}
	band := func(wx, wy, ww float64, r rune, c core.Color) {
		for x := wx; x < wx+ww; x += 1 / sx {
			plot(x, wy, r, c)
		}
	}

	switch snap.Theme.Motif {
	case theme.MotifSun:
		plot(w*0.875, 60, SunChar, colorSun)
		cloud := math.Mod(phase*15, w+200) - 100
		band(cloud, 40, 60, CloudChar, particle)
		band(cloud+350, 80, 80, CloudChar, particle)

	case theme.MotifMoon:
		plot(w*0.875, 60, MoonChar, core.Color(snap.Theme.Ground))
		for i := range 12 {
			if math.Abs(math.Sin(phase*0.5+float64(i))) > 0.3 {
				plot(math.Mod(float64(i)*157.5, w), float64(i*97%150), StarChar, core.Color(snap.Theme.Ground))
			}
		}

	case theme.MotifCircuit:
		for i := range 3 {
			band(0, float64(60+i*60), w, GridChar, core.Color(snap.Theme.Ground))
		}
		for i := range 6 {
			plot(math.Mod(float64(i)*150, w), math.Mod(phase*40+float64(i)*50, 300), RainChar, core.Color(snap.Theme.Character))
		}

	case theme.MotifDunes:
		for x := 0.0; x < w; x += 1 / sx {
			d := (x - w/2) / (w / 2)
			plot(x, snap.GroundY-40*(1-d*d)-1, DuneChar, particle)
		}
		for i := range 2 {
			plot(math.Mod(phase*30+float64(i)*350, w), 170, ShimmerChar, particle)
		}

	case theme.MotifSnow, theme.MotifPetals:
		r, c, n := SnowChar, core.Color(snap.Theme.Ground), 35
		if snap.Theme.Motif == theme.MotifPetals {
			r, c, n = PetalChar, core.Color(snap.Theme.Character), 14
		}
		for i := range n {
			fall := 1 + float64(i%3)/2
			y := math.Mod(phase*40*fall+float64(i)*53, h)
			x := math.Mod(float64(i)*97.3+math.Sin(y/30)*8, w)
			plot(x, y, r, c)
		}
	}
}

// renderHUD renders the single status line above the world.
func renderHUD(snap engine.Snapshot, width int) string {
	th := snap.Theme

	revive := "♡"
	if snap.Revive {
		revive = "♥"
	}

	parts := []string{
		fmt.Sprintf("SCORE %05d", snap.Score),
		fmt.Sprintf("BEST %05d", snap.HighScore),
		fmt.Sprintf("SPEED %.1f", snap.Speed),
		revive,
	}
	if snap.Invincible() {
		parts = append(parts, fmt.Sprintf("★ %.1fs", float64(snap.InvincibleMS)/1000))
	}

	name := strings.TrimSpace(th.Icon + " " + th.Name)
	if snap.ThemePending {
		name += " …"
	}
	parts = append(parts, name)

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(th.Character)).
		Width(width).
		MaxWidth(width)
	return style.Render(" " + strings.Join(parts, "   "))
}

// renderQuiz renders the quiz panel centered in the body area.
func renderQuiz(snap engine.Snapshot, width, height int) string {
	q := snap.Quiz
	th := snap.Theme

	panelWidth := min(max(width-4, 20), 72)

	title := "POP QUIZ"
	subtitle := "Answer right for a burst of invincibility."
	if q.Source == engine.QuizCollision {
		title = "SECOND CHANCE"
		subtitle = "Answer right to keep running. Answer wrong and the run ends."
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Obstacle))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	textStyle := lipgloss.NewStyle().Bold(true).Width(panelWidth - 6)

	lines := []string{
		titleStyle.Render(title),
		mutedStyle.Render(subtitle),
		"",
		textStyle.Render(q.Text),
		"",
	}

	for i, opt := range q.Options {
		style := lipgloss.NewStyle().Width(panelWidth - 6)
		answered := q.Outcome != quiz.OutcomeNone
		switch {
		case answered && i == q.Correct:
			style = style.Foreground(lipgloss.Color(colorCorrect)).Bold(true)
		case answered && i == q.Selected:
			style = style.Foreground(lipgloss.Color(colorWrong)).Strikethrough(true)
		case answered:
			style = style.Foreground(lipgloss.Color(colorMuted))
		}
		lines = append(lines, style.Render(fmt.Sprintf("%d) %s", i+1, opt)))
	}

	lines = append(lines, "")
	switch q.Outcome {
	case quiz.OutcomeCorrect:
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorCorrect)).Render("Correct!"))
	case quiz.OutcomeWrong:
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorWrong)).Render("Wrong."))
	default:
		lines = append(lines, mutedStyle.Render("Press 1-4 or a-d"))
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.Obstacle)).
		Padding(1, 2).
		Width(panelWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}

// drawOverlay writes the START and GAMEOVER banners into the world buffer,
// framed in a box that hides the world behind it.
func drawOverlay(dst *core.Screen, snap engine.Snapshot) {
	var lines []string
	switch snap.Mode {
	case engine.ModeStart:
		lines = []string{
			"QUIZ RUNNER",
			"",
			"SPACE to start, SPACE to jump",
			"Crash once and a question can save you",
			"T theme   H history   Q quit",
		}
	case engine.ModeGameOver:
		lines = []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score %d   Best %d", snap.Score, snap.HighScore),
			"",
			"SPACE restart   T theme   H history   Q quit",
		}
	default:
		return
	}

	c := core.Color(snap.Theme.Character)
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w, h := w+4, len(lines)+2
	x := (dst.Width() - w) / 2
	y := max((dst.Height()-h)/3, 0)

	dst.FillRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h, c)
	for i, l := range lines {
		dst.DrawTextCentered(y+1+i, l, c)
	}
}

// renderFrame renders the whole view for a snapshot.
func renderFrame(screen *core.Screen, snap engine.Snapshot, width, height int) string {
	hud := renderHUD(snap, width)
	bodyHeight := max(height-hudHeight, 0)

	if snap.Quiz != nil {
		return lipgloss.JoinVertical(lipgloss.Left, hud, renderQuiz(snap, width, bodyHeight))
	}

	drawWorld(screen, snap)
	drawOverlay(screen, snap)
	return lipgloss.JoinVertical(lipgloss.Left, hud, RenderScreen(screen, core.Color(snap.Theme.Sky)))
}
