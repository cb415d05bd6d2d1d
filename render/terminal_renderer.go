// Package render draws the game scene and HUD to a tcell screen. It only reads game state
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shoutwalk/component"
	"github.com/lixenwraith/shoutwalk/engine"
	"github.com/lixenwraith/shoutwalk/parameter"
	"github.com/lixenwraith/shoutwalk/vmath"
)

const (
	glyphPlatform  = '='
	glyphSpike     = '^'
	glyphAerial    = 'v'
	glyphAir       = '*'
	glyphCharacter = '@'
	glyphOcean     = '~'
	glyphCeiling   = '-'
	glyphBarFull   = '█'
	glyphBarEmpty  = '░'
	glyphThreshold = '|'
)

// TerminalRenderer maps world units onto the playfield rows between the HUD and status line
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer for a screen of the given size
func NewTerminalRenderer(screen tcell.Screen, width, height int) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, width: width, height: height}
}

// Resize updates the cell dimensions after a terminal resize
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// field is the playfield cell rectangle: rows [top, top+rows)
func (r *TerminalRenderer) field() (top, rows int) {
	top = parameter.HUDRow + 1
	rows = r.height - top - parameter.StatusRowOffset
	if rows < 1 {
		rows = 1
	}
	return top, rows
}

// CellX converts a world x to a screen column
func (r *TerminalRenderer) CellX(x, viewWidth float64) int {
	return int(math.Floor(x / viewWidth * float64(r.width)))
}

// CellY converts a world y to a screen row
func (r *TerminalRenderer) CellY(y, viewHeight float64) int {
	top, rows := r.field()
	return top + int(math.Floor(y/viewHeight*float64(rows)))
}

// RenderFrame draws the whole frame. notice, when set, replaces the key help on the status line
func (r *TerminalRenderer) RenderFrame(v engine.View, h engine.HUD, notice string) {
	r.screen.Clear()
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.fill(0, 0, r.width, r.height, ' ', bg)

	r.drawBackdrop(v, bg)
	for _, p := range v.Platforms {
		if p.Visible {
			r.drawPlatform(v, p, bg)
		}
	}
	for _, o := range v.Air {
		if o.Visible {
			r.drawObstacle(v, o, bg)
		}
	}
	if v.Character != nil {
		r.drawCharacter(v, v.Character, bg)
	}

	r.drawHUD(h, bg)
	r.drawStatus(h, notice, bg)
	r.screen.Show()
}

func (r *TerminalRenderer) drawBackdrop(v engine.View, bg tcell.Style) {
	top, rows := r.field()
	ceiling := r.CellY(v.CeilingY, v.Height) - 1
	if ceiling >= top {
		r.fill(0, ceiling, r.width, 1, glyphCeiling, bg.Foreground(RgbCeiling))
	}

	ocean := r.CellY(v.OceanY, v.Height)
	bottom := top + rows
	if ocean < bottom {
		r.fill(0, ocean, r.width, 1, glyphOcean, bg.Foreground(RgbOceanFoam))
		r.fill(0, ocean+1, r.width, bottom-ocean-1, glyphOcean, bg.Foreground(RgbOcean))
	}
}

func (r *TerminalRenderer) drawPlatform(v engine.View, p *component.Platform, bg tcell.Style) {
	r.drawBox(v, p.Bounds(), glyphPlatform, bg.Foreground(RgbPlatform))
	p.Hazards(func(o *component.Obstacle) bool {
		r.drawObstacle(v, o, bg)
		return true
	})
}

func (r *TerminalRenderer) drawObstacle(v engine.View, o *component.Obstacle, bg tcell.Style) {
	switch o.Kind {
	case component.ObstacleGround:
		r.drawBox(v, o.Box, glyphSpike, bg.Foreground(RgbSpike))
	case component.ObstacleAerial:
		r.drawBox(v, o.Box, glyphAerial, bg.Foreground(RgbAerial))
	default:
		r.drawBox(v, o.Box, glyphAir, bg.Foreground(RgbAir))
	}
}

func (r *TerminalRenderer) drawCharacter(v engine.View, c *component.Character, bg tcell.Style) {
	color := RgbCharacter
	if c.Submerged {
		color = RgbSubmerged
	}
	r.drawBox(v, c.Bounds(), glyphCharacter, bg.Foreground(color).Bold(true))
}

// drawBox fills the cells covered by a world rect; anything visible gets at least one cell
func (r *TerminalRenderer) drawBox(v engine.View, box vmath.Rect, ch rune, style tcell.Style) {
	x0 := r.CellX(box.X, v.Width)
	x1 := r.CellX(box.Right(), v.Width)
	y0 := r.CellY(box.Y, v.Height)
	y1 := r.CellY(box.Bottom(), v.Height)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	top, rows := r.field()
	y0 = vmath.ClampInt(y0, top, top+rows)
	y1 = vmath.ClampInt(y1, top, top+rows)
	r.fill(x0, y0, x1-x0, y1-y0, ch, style)
}

func (r *TerminalRenderer) drawHUD(h engine.HUD, bg tcell.Style) {
	text := fmt.Sprintf(" TIME %2d  SCORE %d  BEST %d ", h.Remaining, h.Score, h.Best)
	x := r.print(0, parameter.HUDRow, text, bg.Foreground(RgbStatusBar).Bold(true))
	if h.Muted {
		x = r.print(x, parameter.HUDRow, "MUTED ", bg.Foreground(RgbMuted).Bold(true))
	}

	barX := r.width - parameter.VolumeBarWidth - 1
	if barX < x {
		barX = x
	}
	r.drawVolumeBar(barX, parameter.HUDRow, parameter.VolumeBarWidth, h, bg)
}

// drawVolumeBar shows loudness as filled cells with the threshold column marked
func (r *TerminalRenderer) drawVolumeBar(x, y, width int, h engine.HUD, bg tcell.Style) {
	filled := VolumeBlocks(h.Loudness, width)
	mark := ThresholdColumn(h.Threshold, width)

	on := RgbVolumeOff
	if h.Loudness >= h.Threshold {
		on = RgbVolumeOn
	}

	for i := 0; i < width; i++ {
		switch {
		case i == mark:
			r.screen.SetContent(x+i, y, glyphThreshold, nil, bg.Foreground(RgbThreshold))
		case i < filled:
			r.screen.SetContent(x+i, y, glyphBarFull, nil, bg.Foreground(on))
		default:
			r.screen.SetContent(x+i, y, glyphBarEmpty, nil, bg.Foreground(RgbVolumeEmpty))
		}
	}
}

func (r *TerminalRenderer) drawStatus(h engine.HUD, notice string, bg tcell.Style) {
	y := r.height - parameter.StatusRowOffset
	if notice == "" {
		notice = StatusText(h)
	}
	style := bg.Foreground(RgbStatusBar)
	if h.Phase != engine.PhaseRunning || !h.InputReady {
		style = bg.Foreground(RgbNotice).Bold(true)
	}
	x := (r.width - len([]rune(notice))) / 2
	if x < 0 {
		x = 0
	}
	r.print(x, y, notice, style)
}

// StatusText is the status line message for the current phase
func StatusText(h engine.HUD) string {
	if !h.InputReady {
		return "microphone unavailable - check the device and permissions, q to quit"
	}
	switch h.Phase {
	case engine.PhaseNotStarted:
		return "shout to walk and fly - Enter to start, m mute, q quit"
	case engine.PhaseWon:
		return fmt.Sprintf("%s! score %d - r to retry, q to quit", h.EndReason, h.Score)
	case engine.PhaseLost:
		return fmt.Sprintf("%s: %s, score %d - r to retry, q to quit", h.Phase, h.EndReason, h.Score)
	default:
		return "m mute  r restart  q quit"
	}
}

// VolumeBlocks is the number of filled cells for a 0-100 loudness
func VolumeBlocks(loudness float64, width int) int {
	n := int(vmath.Clamp(loudness, 0, 100) / 100 * float64(width))
	return vmath.ClampInt(n, 0, width)
}

// ThresholdColumn is the bar cell that marks the threshold
func ThresholdColumn(threshold float64, width int) int {
	return vmath.ClampInt(int(threshold/100*float64(width)), 0, width-1)
}

// fill writes ch over a clipped cell rectangle
func (r *TerminalRenderer) fill(x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		if row < 0 || row >= r.height {
			continue
		}
		for col := x; col < x+w; col++ {
			if col < 0 || col >= r.width {
				continue
			}
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// print writes text from x and returns the column after it
func (r *TerminalRenderer) print(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
