package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/shoutwalk/audio"
	"github.com/lixenwraith/shoutwalk/config"
	"github.com/lixenwraith/shoutwalk/engine"
	"github.com/lixenwraith/shoutwalk/vmath"
)

func newSim(t *testing.T, loudness float64, seed uint64) (*engine.Game, *audio.Sampler) {
	t.Helper()
	cfg := config.Default()
	src := &audio.ConstantSource{Amplitude: audio.AmplitudeForScore(loudness, cfg.Audio.DBOffset)}
	sampler := audio.NewSampler(src, cfg.Audio, zerolog.Nop())
	game := engine.NewGame(cfg, engine.Options{
		Rand:  vmath.NewFastRand(seed),
		Input: sampler,
		Log:   zerolog.Nop(),
	})
	return game, sampler
}

func TestSimulateSilentBot(t *testing.T) {
	game, sampler := newSim(t, 0, 1)

	results, err := simulate(game, sampler, 2)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Phase != engine.PhaseWon || r.Score != 0 || r.Distance != 0 {
			t.Errorf("round %d: %+v", i+1, r)
		}
	}
	if results[0].ID == results[1].ID {
		t.Error("rounds must have distinct ids")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	g1, s1 := newSim(t, 62, 42)
	g2, s2 := newSim(t, 62, 42)

	r1, err := simulate(g1, s1, 3)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := simulate(g2, s2, 3)
	if err != nil {
		t.Fatal(err)
	}

	for i := range r1 {
		a, b := r1[i], r2[i]
		if a.Phase != b.Phase || a.Reason != b.Reason || a.Score != b.Score ||
			a.Obstacles != b.Obstacles || a.Elapsed != b.Elapsed {
			t.Errorf("round %d differs: %+v vs %+v", i+1, a, b)
		}
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	results := []roundResult{{
		ID:     "0123456789abcdef",
		Phase:  engine.PhaseLost,
		Reason: engine.EndSplashed,
		Score:  4,
	}}
	if err := report(&buf, results, 9); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"ROUND", "01234567", "game over", "splashed", "best"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}
