package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/quiz-runner/internal/config"
	"github.com/vovakirdan/quiz-runner/internal/core"
	"github.com/vovakirdan/quiz-runner/internal/quiz"
	"github.com/vovakirdan/quiz-runner/internal/theme"
)

// fixedRand returns the same values forever.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

// quietSources never rolls a quiz, a flyer, or a particle.
func quietSources() Sources {
	r := fixedRand{f: 0.99}
	return Sources{Spawn: r, Shuffle: r, Quiz: r, Particles: r}
}

func newTestEngine(opts ...Option) *Engine {
	all := append([]Option{WithSources(quietSources())}, opts...)
	return New(config.DefaultRunnerConfig(), quiz.DefaultBank(), all...)
}

// startRun activates from START and returns the playing state.
func startRun(t *testing.T, e *Engine) *PlayingState {
	t.Helper()
	res := e.Activate()
	if !res.Has(EventRunStarted) {
		t.Fatalf("Activate from %v should start a run", res.Mode)
	}
	return playing(t, e)
}

func playing(t *testing.T, e *Engine) *PlayingState {
	t.Helper()
	ps, ok := e.State().(*PlayingState)
	if !ok {
		t.Fatalf("Expected PLAYING, got %v", e.Mode())
	}
	return ps
}

func quizState(t *testing.T, e *Engine) *QuizState {
	t.Helper()
	qs, ok := e.State().(*QuizState)
	if !ok {
		t.Fatalf("Expected QUIZ, got %v", e.Mode())
	}
	return qs
}

// placeHazard replaces all obstacles with one that overlaps the grounded
// character after the next scroll step.
func placeHazard(e *Engine) {
	e.spawner.obstacles = append(e.spawner.obstacles[:0], Obstacle{
		ID: 1000, Kind: KindGround, X: 70, Width: 40, Height: 50,
	})
}

func wrongOption(s *quiz.Session) int {
	return (s.Correct + 1) % len(s.Options)
}

func TestNewEngineStartsInStart(t *testing.T) {
	e := newTestEngine()

	if e.Mode() != ModeStart {
		t.Errorf("Mode() = %v, expected START", e.Mode())
	}
	if res := e.Tick(); len(res.Events) != 0 || res.Mode != ModeStart {
		t.Errorf("Tick in START should do nothing, got %+v", res)
	}
	if e.Snapshot().RawScore != 0 {
		t.Error("Tick in START should not advance the score")
	}
}

// A collision with the revive token opens a collision quiz and spends it.
func TestCollisionWithReviveOpensQuiz(t *testing.T) {
	e := newTestEngine()
	startRun(t, e)
	placeHazard(e)

	res := e.Tick()

	if res.Mode != ModeQuiz {
		t.Fatalf("Expected QUIZ after hit, got %v", res.Mode)
	}
	if !res.Has(EventRevived) || !res.Has(EventQuizStarted) {
		t.Errorf("Expected revived and quiz_started events, got %+v", res.Events)
	}
	qs := quizState(t, e)
	if qs.Source != QuizCollision {
		t.Errorf("Source = %v, expected collision", qs.Source)
	}
	if qs.Revive {
		t.Error("Revive token should be spent")
	}

	snap := e.Snapshot()
	if snap.RawScore != 0 {
		t.Errorf("RawScore = %d, a hit should end the tick before scoring", snap.RawScore)
	}
	want := Character{Y: e.groundTop()}
	if snap.Character != want {
		t.Errorf("Character = %+v, expected untouched %+v", snap.Character, want)
	}
	if snap.Quiz == nil || snap.Quiz.Source != QuizCollision {
		t.Errorf("Snapshot should expose the collision quiz, got %+v", snap.Quiz)
	}
}

func TestEmptyHitboxNeverCollides(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.Hitbox.Left = 40
	cfg.Player.Hitbox.Right = 40
	e := New(cfg, quiz.DefaultBank(), WithSources(quietSources()))
	startRun(t, e)
	placeHazard(e)

	if hb := e.Hitbox(); hb.W != 0 {
		t.Fatalf("Hitbox() = %+v, expected zero width", hb)
	}

	res := e.Tick()
	if res.Mode != ModePlaying || res.Has(EventRevived) {
		t.Errorf("Empty hitbox should not collide, got %v with %+v", res.Mode, res.Events)
	}
}

func TestCollisionWithoutReviveEndsRun(t *testing.T) {
	tests := []struct {
		name     string
		previous int
		raw      int
		wantHigh int
		wantBest bool
	}{
		{"new best", 50, 1234, 123, true},
		{"keeps previous", 500, 1234, 500, false},
		{"equal is not new", 123, 1239, 123, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(WithHighScore(tt.previous))
			ps := startRun(t, e)
			ps.Revive = false
			e.progress.raw = tt.raw
			placeHazard(e)

			res := e.Tick()

			if res.Mode != ModeGameOver {
				t.Fatalf("Expected GAMEOVER, got %v", res.Mode)
			}
			ev, ok := res.Find(EventGameOver)
			if !ok {
				t.Fatal("Expected game_over event")
			}
			if ev.Score != tt.raw/10 {
				t.Errorf("Score = %d, expected %d", ev.Score, tt.raw/10)
			}
			if ev.HighScore != tt.wantHigh || e.HighScore() != tt.wantHigh {
				t.Errorf("HighScore = %d/%d, expected %d", ev.HighScore, e.HighScore(), tt.wantHigh)
			}
			if ev.NewBest != tt.wantBest {
				t.Errorf("NewBest = %v, expected %v", ev.NewBest, tt.wantBest)
			}
			if ev.Obstacle != 1000 {
				t.Errorf("Obstacle = %d, expected 1000", ev.Obstacle)
			}
		})
	}
}

func TestThemeRotationAtThreshold(t *testing.T) {
	e := newTestEngine()
	startRun(t, e)
	e.progress.raw = 2999
	before := e.Theme()

	res := e.Tick()

	var changes int
	for _, ev := range res.Events {
		if ev.Kind == EventThemeChanged {
			changes++
		}
	}
	if changes != 1 {
		t.Errorf("Expected exactly one theme change, got %d", changes)
	}
	if e.progress.NextTheme() != 600 {
		t.Errorf("NextTheme() = %d, expected 600", e.progress.NextTheme())
	}
	if e.Theme().Name == before.Name {
		t.Errorf("Theme should rotate away from %q", before.Name)
	}

	// The following ticks stay below 600
	for i := 0; i < 50; i++ {
		if e.Tick().Has(EventThemeChanged) {
			t.Fatalf("Unexpected theme change at raw %d", e.progress.RawScore())
		}
	}
}

func TestAsyncThemeRequestIsGuarded(t *testing.T) {
	e := newTestEngine(WithAsyncThemes())
	startRun(t, e)
	e.progress.raw = 2999

	res := e.Tick()
	ev, ok := res.Find(EventThemeRequested)
	if !ok {
		t.Fatal("Expected theme_requested at threshold")
	}
	if ev.Epoch != e.Epoch() || ev.Score != 300 {
		t.Errorf("Request = %+v, expected epoch %d score 300", ev, e.Epoch())
	}
	if !e.ThemePending() {
		t.Error("Request should be in flight")
	}

	// Next threshold passes while the first request is outstanding
	e.progress.raw = 5999
	if e.Tick().Has(EventThemeRequested) {
		t.Error("No second request while one is in flight")
	}
	if e.progress.NextTheme() != 900 {
		t.Errorf("Threshold should still advance, got %d", e.progress.NextTheme())
	}

	generated := theme.Presets()[3]
	res = e.DeliverTheme(ev.Epoch, generated, nil)
	if !res.Has(EventThemeChanged) || e.Theme().Name != generated.Name {
		t.Errorf("Delivered theme not applied, theme = %q", e.Theme().Name)
	}
	if e.ThemePending() {
		t.Error("Delivery should clear the in-flight flag")
	}
}

func TestDeliverThemeFailureUsesDefault(t *testing.T) {
	e := newTestEngine(WithAsyncThemes(), WithTheme(theme.Presets()[2]))
	startRun(t, e)
	e.progress.raw = 2999
	ev, _ := e.Tick().Find(EventThemeRequested)

	e.DeliverTheme(ev.Epoch, theme.Theme{}, errors.New("boom"))

	if e.Theme() != theme.Default() {
		t.Errorf("Theme = %q, expected default after failure", e.Theme().Name)
	}
	if e.ThemePending() {
		t.Error("Failure should clear the in-flight flag")
	}
}

func TestStaleThemeDiscarded(t *testing.T) {
	e := newTestEngine(WithAsyncThemes())
	ps := startRun(t, e)
	e.progress.raw = 2999
	ev, ok := e.Tick().Find(EventThemeRequested)
	if !ok {
		t.Fatal("Expected theme_requested")
	}

	// End the run and start a new one before the result arrives
	ps.Revive = false
	placeHazard(e)
	e.Tick()
	e.Activate()
	if e.ThemePending() {
		t.Error("Reset should clear the in-flight flag")
	}

	before := e.Theme()
	res := e.DeliverTheme(ev.Epoch, theme.Presets()[4], nil)
	if len(res.Events) != 0 {
		t.Errorf("Stale delivery should emit nothing, got %+v", res.Events)
	}
	if e.Theme() != before {
		t.Errorf("Stale delivery changed theme to %q", e.Theme().Name)
	}
}

// A correct answer grants invincibility, which ignores hits until it runs out.
func TestCorrectAnswerGrantsInvincibility(t *testing.T) {
	e := newTestEngine()
	startRun(t, e)
	placeHazard(e)
	e.Tick()

	qs := quizState(t, e)
	res := e.SelectOption(qs.Session.Correct)
	if ev, ok := res.Find(EventQuizAnswered); !ok || ev.Outcome != quiz.OutcomeCorrect {
		t.Fatalf("Expected correct answer event, got %+v", res.Events)
	}
	if e.Mode() != ModeQuiz {
		t.Fatal("Quiz should stay open until resolved")
	}

	res = e.ResolveQuiz()
	if res.Mode != ModePlaying {
		t.Fatalf("Expected PLAYING after correct answer, got %v", res.Mode)
	}
	ps := playing(t, e)
	if ps.InvincibleMS != 6000 {
		t.Errorf("InvincibleMS = %d, expected 6000", ps.InvincibleMS)
	}

	placeHazard(e)
	res = e.Tick()
	if res.Mode != ModePlaying || res.Has(EventGameOver) {
		t.Fatalf("Hit while invincible should be ignored, got %v", res.Mode)
	}

	prev := ps.InvincibleMS
	for i := 0; i < 100; i++ {
		e.TickTimer()
		if ps.InvincibleMS > prev {
			t.Fatalf("Invincibility increased from %d to %d", prev, ps.InvincibleMS)
		}
		if ps.InvincibleMS < 0 {
			t.Fatalf("Invincibility went negative: %d", ps.InvincibleMS)
		}
		prev = ps.InvincibleMS
	}
	if ps.InvincibleMS != 0 {
		t.Errorf("InvincibleMS = %d, expected exactly 0", ps.InvincibleMS)
	}

	// Revive was spent on the first hit
	placeHazard(e)
	if e.Tick().Mode != ModeGameOver {
		t.Error("Hit after invincibility without revive should end the run")
	}
}

func TestTickTimerClampsToZero(t *testing.T) {
	e := newTestEngine()
	ps := startRun(t, e)
	ps.InvincibleMS = 250

	if !e.TickTimer() || ps.InvincibleMS != 150 {
		t.Errorf("After one step InvincibleMS = %d, expected 150", ps.InvincibleMS)
	}
	e.TickTimer()
	if e.TickTimer() || ps.InvincibleMS != 0 {
		t.Errorf("InvincibleMS = %d, expected clamp to 0", ps.InvincibleMS)
	}
	if e.TickTimer() {
		t.Error("TickTimer at zero should report inactive")
	}
}

func TestRestartResetsRun(t *testing.T) {
	fresh := New(config.DefaultRunnerConfig(), quiz.DefaultBank(), WithSources(NewSources(7)))
	fresh.Activate()
	want := fresh.Snapshot()

	e := New(config.DefaultRunnerConfig(), quiz.DefaultBank(), WithSources(NewSources(99)))
	ps := startRun(t, e)
	ps.InvincibleMS = 1 << 30
	for i := 0; i < 1500; i++ {
		e.Tick()
		if e.Mode() != ModePlaying {
			e.SelectOption(0)
			e.ResolveQuiz()
		}
	}
	if len(e.Snapshot().Obstacles) == 0 {
		t.Fatal("Expected obstacles before restart")
	}

	ps = playing(t, e)
	ps.InvincibleMS = 0
	ps.Revive = false
	placeHazard(e)
	e.Tick()
	if e.Mode() != ModeGameOver {
		t.Fatalf("Expected GAMEOVER, got %v", e.Mode())
	}

	res := e.Activate()
	if !res.Has(EventRunStarted) {
		t.Fatal("Activate after GAMEOVER should restart")
	}
	got := e.Snapshot()

	if got.RawScore != want.RawScore || got.Score != want.Score {
		t.Errorf("Score = %d/%d, expected %d/%d", got.RawScore, got.Score, want.RawScore, want.Score)
	}
	if got.Speed != want.Speed {
		t.Errorf("Speed = %v, expected %v", got.Speed, want.Speed)
	}
	if len(got.Obstacles) != 0 || len(got.Particles) != 0 {
		t.Errorf("Expected no obstacles or particles, got %d/%d", len(got.Obstacles), len(got.Particles))
	}
	if got.Revive != want.Revive || !got.Revive {
		t.Error("Revive token should be restored")
	}
	if got.InvincibleMS != 0 {
		t.Errorf("InvincibleMS = %d, expected 0", got.InvincibleMS)
	}
	if got.Character != want.Character {
		t.Errorf("Character = %+v, expected %+v", got.Character, want.Character)
	}
	if e.progress.NextTheme() != fresh.progress.NextTheme() || e.progress.lastQuiz != 0 {
		t.Error("Theme and quiz cadence should reset")
	}
	if got.Epoch != 2 {
		t.Errorf("Epoch = %d, expected 2", got.Epoch)
	}
	if got.HighScore == 0 {
		t.Error("High score should survive the restart")
	}
}

func TestProactiveQuiz(t *testing.T) {
	newProactive := func(t *testing.T) (*Engine, *QuizState) {
		t.Helper()
		src := quietSources()
		src.Quiz = fixedRand{f: 0.001}
		e := newTestEngine(WithSources(src))
		ps := startRun(t, e)
		ps.InvincibleMS = 3000
		e.progress.raw = 5009 // 501 after the tick, past the first interval

		res := e.Tick()
		ev, ok := res.Find(EventQuizStarted)
		if !ok || ev.Source != QuizProactive {
			t.Fatalf("Expected proactive quiz, got %+v", res.Events)
		}
		qs := quizState(t, e)
		if !qs.Revive {
			t.Fatal("Proactive quiz must not spend the revive token")
		}
		if e.progress.lastQuiz != 501 {
			t.Errorf("lastQuiz = %d, expected 501", e.progress.lastQuiz)
		}
		return e, qs
	}

	t.Run("wrong answer continues", func(t *testing.T) {
		e, qs := newProactive(t)
		e.SelectOption(wrongOption(qs.Session))
		res := e.ResolveQuiz()

		if res.Mode != ModePlaying || res.Has(EventGameOver) {
			t.Fatalf("Wrong proactive answer should continue, got %v", res.Mode)
		}
		ps := playing(t, e)
		if !ps.Revive {
			t.Error("Revive token should survive")
		}
		if ps.InvincibleMS != 3000 {
			t.Errorf("InvincibleMS = %d, expected paused 3000", ps.InvincibleMS)
		}
	})

	t.Run("correct answer grants invincibility", func(t *testing.T) {
		e, qs := newProactive(t)
		e.SelectOption(qs.Session.Correct)
		e.ResolveQuiz()

		ps := playing(t, e)
		if ps.InvincibleMS != 6000 || !ps.Revive {
			t.Errorf("State = %+v, expected 6000ms with revive", ps)
		}
	})

	t.Run("timer paused during quiz", func(t *testing.T) {
		e, qs := newProactive(t)
		for i := 0; i < 10; i++ {
			if e.TickTimer() {
				t.Fatal("TickTimer should be inactive during a quiz")
			}
		}
		if qs.InvincibleMS != 3000 {
			t.Errorf("InvincibleMS = %d, expected 3000", qs.InvincibleMS)
		}
	})

	t.Run("no second roll before interval", func(t *testing.T) {
		e, qs := newProactive(t)
		e.SelectOption(qs.Session.Correct)
		e.ResolveQuiz()
		for i := 0; i < 100; i++ {
			if e.Tick().Has(EventQuizStarted) {
				t.Fatalf("Quiz reopened at score %d", e.progress.Score())
			}
		}
	})
}

func TestWrongCollisionAnswerEndsRun(t *testing.T) {
	e := newTestEngine(WithHighScore(3))
	startRun(t, e)
	e.progress.raw = 420
	placeHazard(e)
	e.Tick()

	qs := quizState(t, e)
	e.SelectOption(wrongOption(qs.Session))
	res := e.ResolveQuiz()

	if res.Mode != ModeGameOver {
		t.Fatalf("Expected GAMEOVER, got %v", res.Mode)
	}
	ev, ok := res.Find(EventGameOver)
	if !ok || ev.HighScore != 42 || !ev.NewBest {
		t.Errorf("GameOver = %+v, expected new best 42", ev)
	}
	if ev, _ := res.Find(EventQuizResolved); ev.Outcome != quiz.OutcomeWrong {
		t.Errorf("Outcome = %v, expected wrong", ev.Outcome)
	}
}

func TestInputRejectedOutsideItsMode(t *testing.T) {
	e := newTestEngine()

	if res := e.SelectOption(0); len(res.Events) != 0 {
		t.Error("SelectOption in START should be ignored")
	}
	if res := e.ResolveQuiz(); len(res.Events) != 0 {
		t.Error("ResolveQuiz in START should be ignored")
	}

	startRun(t, e)
	placeHazard(e)
	e.Tick()
	qs := quizState(t, e)

	if res := e.Activate(); len(res.Events) != 0 || res.Mode != ModeQuiz {
		t.Error("Activate during a quiz should be ignored")
	}
	if res := e.ResolveQuiz(); len(res.Events) != 0 {
		t.Error("ResolveQuiz before an answer should be ignored")
	}
	if res := e.SelectOption(len(qs.Session.Options)); len(res.Events) != 0 {
		t.Error("Out of range option should be ignored")
	}
	if res := e.SelectOption(-1); len(res.Events) != 0 {
		t.Error("Negative option should be ignored")
	}
	if res := e.Tick(); len(res.Events) != 0 || e.Snapshot().RawScore != 0 {
		t.Error("Tick during a quiz should not advance the run")
	}

	e.SelectOption(qs.Session.Correct)
	if res := e.SelectOption(wrongOption(qs.Session)); len(res.Events) != 0 {
		t.Error("Second answer should be ignored")
	}
	if qs.Session.Outcome != quiz.OutcomeCorrect {
		t.Error("Second answer must not regrade")
	}
}

func TestJump(t *testing.T) {
	e := newTestEngine()
	startRun(t, e)
	groundTop := e.groundTop()

	res := e.Activate()
	if !res.Has(EventJumped) {
		t.Fatal("Grounded Activate should jump")
	}
	if res := e.Activate(); res.Has(EventJumped) {
		t.Error("Mid-air Activate should be ignored")
	}

	e.spawner.Reset()
	landed := false
	peak := groundTop
	for i := 0; i < 100; i++ {
		e.Tick()
		c := e.Snapshot().Character
		if c.Y > groundTop {
			t.Fatalf("Character below ground: %v > %v", c.Y, groundTop)
		}
		peak = min(peak, c.Y)
		if c.Grounded() {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("Character never landed")
	}
	if peak >= groundTop-100 {
		t.Errorf("Jump peak %v too low", peak)
	}
}

func TestScoreAndSpeedProgression(t *testing.T) {
	e := New(config.DefaultRunnerConfig(), quiz.DefaultBank(), WithSources(NewSources(3)))
	ps := startRun(t, e)
	ps.InvincibleMS = 1 << 30

	prevSpeed := e.Snapshot().Speed
	for i := 1; i <= 3000; i++ {
		e.Tick()
		if e.Mode() == ModeQuiz {
			qs := quizState(t, e)
			e.SelectOption(qs.Session.Correct)
			e.ResolveQuiz()
			playing(t, e).InvincibleMS = 1 << 30
		}

		snap := e.Snapshot()
		if snap.RawScore != i {
			t.Fatalf("RawScore = %d, expected %d", snap.RawScore, i)
		}
		if snap.Score != i/10 {
			t.Fatalf("Score = %d, expected %d", snap.Score, i/10)
		}
		if snap.Speed <= prevSpeed {
			t.Fatalf("Speed did not increase at tick %d: %v -> %v", i, prevSpeed, snap.Speed)
		}
		prevSpeed = snap.Speed
	}
}

func TestDespawnedObstaclesNeverReturn(t *testing.T) {
	e := New(config.DefaultRunnerConfig(), quiz.DefaultBank(), WithSources(NewSources(11)))
	ps := startRun(t, e)
	ps.InvincibleMS = 1 << 30

	gone := make(map[uint64]bool)
	live := make(map[uint64]bool)
	for i := 0; i < 4000; i++ {
		e.Tick()
		if e.Mode() == ModeQuiz {
			e.SelectOption(quizState(t, e).Session.Correct)
			e.ResolveQuiz()
			playing(t, e).InvincibleMS = 1 << 30
		}

		current := make(map[uint64]bool)
		for _, o := range e.Snapshot().Obstacles {
			if gone[o.ID] {
				t.Fatalf("Obstacle %d reappeared", o.ID)
			}
			if o.X+o.Width <= e.cfg.World.DespawnX {
				t.Fatalf("Obstacle %d past despawn bound: x=%v", o.ID, o.X)
			}
			current[o.ID] = true
		}
		for id := range live {
			if !current[id] {
				gone[id] = true
			}
		}
		live = current
	}
	if len(gone) == 0 {
		t.Error("Expected some obstacles to despawn")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []Snapshot {
		e := New(config.DefaultRunnerConfig(), quiz.DefaultBank(), WithSources(NewSources(12345)))
		var snaps []Snapshot
		in := core.NewInputFrame()
		for i := 0; i < 3000; i++ {
			in.Clear()
			if i%37 == 0 {
				in.Set(core.ActionActivate)
			}
			if i%5 == 0 {
				in.Set(core.ActionOption2)
			}
			e.Step(in)
			if e.Mode() == ModeQuiz && i%9 == 0 {
				e.ResolveQuiz()
			}
			if i%6 == 0 {
				e.TickTimer()
			}
			if i%100 == 0 {
				snaps = append(snaps, e.Snapshot())
			}
		}
		return snaps
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("Same seed and inputs should produce identical snapshots")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newTestEngine()
	startRun(t, e)
	placeHazard(e)
	e.Tick()

	snap := e.Snapshot()
	snap.Obstacles[0].X = -9999
	snap.Quiz.Options[0] = "changed"

	again := e.Snapshot()
	if again.Obstacles[0].X == -9999 {
		t.Error("Snapshot obstacles alias engine state")
	}
	if again.Quiz.Options[0] == "changed" {
		t.Error("Snapshot quiz options alias engine state")
	}
}

func TestStepAppliesInputThenTicks(t *testing.T) {
	e := newTestEngine()

	in := core.NewInputFrame()
	in.Set(core.ActionActivate)
	res := e.Step(in)

	if !res.Has(EventRunStarted) {
		t.Error("Step with activate should start the run")
	}
	if res.Mode != ModePlaying || e.Snapshot().RawScore != 1 {
		t.Errorf("Step should tick once after starting, raw = %d", e.Snapshot().RawScore)
	}
}

func TestCycleThemeBetweenRuns(t *testing.T) {
	presets := theme.Presets()
	e := newTestEngine(WithAsyncThemes())

	res := e.CycleTheme()
	ev, ok := res.Find(EventThemeChanged)
	if !ok || ev.Theme.Name != presets[1].Name {
		t.Fatalf("CycleTheme in START = %+v, expected change to %q", res.Events, presets[1].Name)
	}

	startRun(t, e)
	if e.Theme().Name != presets[1].Name {
		t.Errorf("Picked theme should carry into the run, got %q", e.Theme().Name)
	}

	if res := e.CycleTheme(); len(res.Events) != 0 {
		t.Errorf("CycleTheme while PLAYING should be ignored, got %+v", res.Events)
	}

	e.state = GameOverState{}
	e.CycleTheme()
	if e.Theme().Name != presets[2].Name {
		t.Errorf("Theme after GAMEOVER pick = %q, expected %q", e.Theme().Name, presets[2].Name)
	}
}

func TestWithThemeStartsOnChosenPreset(t *testing.T) {
	snow, _ := theme.Find("Snow Season")
	e := newTestEngine(WithTheme(snow))

	in := core.NewInputFrame()
	in.Set(core.ActionTheme)
	e.Step(in)

	if want := theme.Presets()[5].Name; e.Theme().Name != want {
		t.Errorf("Theme = %q, expected next preset %q", e.Theme().Name, want)
	}
}
