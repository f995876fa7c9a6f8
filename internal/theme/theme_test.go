package theme

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPresetRotationCycles(t *testing.T) {
	r := NewPresetRotation(nil)
	all := Presets()

	cur := Default()
	for i := 1; i <= len(all); i++ {
		cur = r.Next(cur)
		want := all[i%len(all)]
		if cur.Name != want.Name {
			t.Fatalf("step %d: Next() = %q, expected %q", i, cur.Name, want.Name)
		}
	}
}

func TestPresetRotationUnknownRestarts(t *testing.T) {
	r := NewPresetRotation(nil)
	got := r.Next(Theme{Name: "Generated 120° @300"})
	if got.Name != Presets()[0].Name {
		t.Errorf("Next(unknown) = %q, expected first preset", got.Name)
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, p := range Presets() {
		if err := p.Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", p.Name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	good := Default()

	tests := []struct {
		name   string
		mutate func(*Theme)
		ok     bool
	}{
		{"default", func(*Theme) {}, true},
		{"missing name", func(t *Theme) { t.Name = "" }, false},
		{"bad sky", func(t *Theme) { t.Sky = "blue" }, false},
		{"empty particle", func(t *Theme) { t.Particle = "" }, false},
		{"no motif", func(t *Theme) { t.Motif = MotifNone }, true},
		{"unknown motif", func(t *Theme) { t.Motif = "fireworks" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th := good
			tc.mutate(&th)
			err := th.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
			if err != nil && !errors.Is(err, ErrMalformed) {
				t.Errorf("Validate() error should wrap ErrMalformed, got %v", err)
			}
		})
	}
}

func TestResolveFallsBackOnError(t *testing.T) {
	failing := GeneratorFunc(func(context.Context, int) (Theme, error) {
		return Theme{}, errors.New("quota exceeded")
	})

	got, err := Resolve(context.Background(), failing, 300, time.Second)
	if err == nil {
		t.Fatal("expected error from failing generator")
	}
	if got != Default() {
		t.Errorf("Resolve() = %q, expected default theme", got.Name)
	}
}

func TestResolveFallsBackOnMalformed(t *testing.T) {
	bad := GeneratorFunc(func(context.Context, int) (Theme, error) {
		return Theme{Name: "half"}, nil
	})

	got, err := Resolve(context.Background(), bad, 300, 0)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if got != Default() {
		t.Errorf("Resolve() = %q, expected default theme", got.Name)
	}
}

func TestResolveTimeout(t *testing.T) {
	slow := NewProcedural(1, time.Hour)

	got, err := Resolve(context.Background(), slow, 300, 10*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if got != Default() {
		t.Errorf("Resolve() = %q, expected default theme", got.Name)
	}
}

func TestProceduralIsValidAndSeeded(t *testing.T) {
	a, err := NewProcedural(42, 0).Generate(context.Background(), 600)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("procedural theme invalid: %v", err)
	}

	b, _ := NewProcedural(42, 0).Generate(context.Background(), 600)
	if a != b {
		t.Errorf("same seed should produce the same theme: %+v vs %+v", a, b)
	}
}

func TestRemoteGenerate(t *testing.T) {
	want := Presets()[2]

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req remoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Score != 900 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := NewRemote(srv.URL, "secret").Generate(context.Background(), 900)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if got != want {
		t.Errorf("Generate() = %+v, expected %+v", got, want)
	}

	if _, err := NewRemote(srv.URL, "wrong").Generate(context.Background(), 900); err == nil {
		t.Error("expected error for unauthorized request")
	}
}

func TestRemoteMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name": "x", "sky": "nope"}`))
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL, "").Generate(context.Background(), 1)
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		found bool
	}{
		{"Snow Season", "Snow Season", true},
		{"cyberpunk it", "Cyberpunk IT", true},
		{"Mars Base", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Find(tc.name)
			if ok != tc.found || got.Name != tc.want {
				t.Errorf("Find(%q) = (%q, %v), expected (%q, %v)", tc.name, got.Name, ok, tc.want, tc.found)
			}
		})
	}
}

func TestPresetsHaveDistinctMotifs(t *testing.T) {
	seen := map[Motif]string{}
	for _, p := range Presets() {
		if p.Motif == MotifNone {
			t.Errorf("preset %q has no motif", p.Name)
		}
		if other, dup := seen[p.Motif]; dup {
			t.Errorf("presets %q and %q share motif %q", other, p.Name, p.Motif)
		}
		seen[p.Motif] = p.Name
	}
}
