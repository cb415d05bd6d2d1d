package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/shoutwalk/config"
	"github.com/lixenwraith/shoutwalk/engine"
	"github.com/lixenwraith/shoutwalk/persistence"
	"github.com/lixenwraith/shoutwalk/vmath"
)

const (
	testCols = 96
	testRows = 30
)

type readyInput bool

func (r readyInput) Ready() bool { return bool(r) }

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(testCols, testRows)
	t.Cleanup(screen.Fini)
	return screen
}

func newGame(ready bool) *engine.Game {
	return engine.NewGame(config.Default(), engine.Options{
		Rand:  vmath.NewFastRand(1),
		Store: persistence.NewMemoryStore(5),
		Input: readyInput(ready),
		Log:   zerolog.Nop(),
	})
}

func row(screen tcell.Screen, y int) string {
	var b strings.Builder
	for x := 0; x < testCols; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func cell(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func TestRenderScene(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminalRenderer(screen, testCols, testRows)
	g := newGame(true)

	r.RenderFrame(g.View(), g.HUD(), "")

	// 960 world units over 96 columns, 540 over the 28 playfield rows
	if got := cell(screen, 16, 17); got != glyphCharacter {
		t.Errorf("character cell: expected %q, got %q", glyphCharacter, got)
	}
	if got := cell(screen, 30, 19); got != glyphPlatform {
		t.Errorf("start platform cell: expected %q, got %q", glyphPlatform, got)
	}
	if got := cell(screen, 0, 25); got != glyphOcean {
		t.Errorf("ocean cell: expected %q, got %q", glyphOcean, got)
	}

	hud := row(screen, 0)
	if !strings.Contains(hud, "TIME 60") || !strings.Contains(hud, "BEST 5") {
		t.Errorf("unexpected HUD row %q", hud)
	}
	if status := row(screen, testRows-1); !strings.Contains(status, "Enter to start") {
		t.Errorf("unexpected status row %q", status)
	}
}

func TestRenderInputUnavailable(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminalRenderer(screen, testCols, testRows)
	g := newGame(false)

	r.RenderFrame(g.View(), g.HUD(), "")
	if status := row(screen, testRows-1); !strings.Contains(status, "microphone unavailable") {
		t.Errorf("unexpected status row %q", status)
	}

	r.RenderFrame(g.View(), g.HUD(), "custom notice")
	if status := row(screen, testRows-1); !strings.Contains(status, "custom notice") {
		t.Errorf("notice not shown: %q", status)
	}
}

func TestRenderMutedAndVolume(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminalRenderer(screen, testCols, testRows)
	g := newGame(true)
	g.SetMuted(true)
	g.Tick(1.0/60, 100)

	r.RenderFrame(g.View(), g.HUD(), "")

	hud := row(screen, 0)
	if !strings.Contains(hud, "MUTED") {
		t.Errorf("expected MUTED in %q", hud)
	}

	barX := testCols - 30 - 1
	mark := ThresholdColumn(50, 30)
	for i := 0; i < 30; i++ {
		want := glyphBarFull
		if i == mark {
			want = glyphThreshold
		}
		if got := cell(screen, barX+i, 0); got != want {
			t.Errorf("bar cell %d: expected %q, got %q", i, want, got)
		}
	}
}

func TestVolumeBlocks(t *testing.T) {
	tests := []struct {
		loudness float64
		width    int
		want     int
	}{
		{0, 30, 0},
		{-5, 30, 0},
		{50, 30, 15},
		{99.9, 30, 29},
		{100, 30, 30},
		{250, 30, 30},
		{25, 10, 2},
	}
	for _, tt := range tests {
		if got := VolumeBlocks(tt.loudness, tt.width); got != tt.want {
			t.Errorf("VolumeBlocks(%v, %d) = %d, want %d", tt.loudness, tt.width, got, tt.want)
		}
	}
}

func TestThresholdColumn(t *testing.T) {
	if got := ThresholdColumn(50, 30); got != 15 {
		t.Errorf("expected 15, got %d", got)
	}
	if got := ThresholdColumn(100, 30); got != 29 {
		t.Errorf("full threshold must stay on the bar, got %d", got)
	}
	if got := ThresholdColumn(0, 30); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		name string
		hud  engine.HUD
		want string
	}{
		{"not ready", engine.HUD{}, "microphone unavailable"},
		{"ready", engine.HUD{InputReady: true}, "Enter to start"},
		{"won", engine.HUD{InputReady: true, Phase: engine.PhaseWon, EndReason: engine.EndTimeUp, Score: 12}, "time up! score 12"},
		{"lost", engine.HUD{InputReady: true, Phase: engine.PhaseLost, EndReason: engine.EndSplashed, Score: 4}, "game over: splashed, score 4"},
		{"running", engine.HUD{InputReady: true, Phase: engine.PhaseRunning}, "m mute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusText(tt.hud); !strings.Contains(got, tt.want) {
				t.Errorf("expected %q in %q", tt.want, got)
			}
		})
	}
}
