package tui

import (
	"fmt"

	"github.com/vovakirdan/cannonball/internal/core"
	"github.com/vovakirdan/cannonball/internal/engine"
)

// Visual characters for rendering
const (
	BallChar            = '●'
	CannonChar          = '◉'
	PowerBulletChar     = '*'
	PrecisionBulletChar = '·'
	CenterLineChar      = '┊'
	GoalChar            = '║'
)

// Renderer draws match snapshots into a screen buffer, scaling the
// playfield to whatever terminal size is available.
type Renderer struct {
	rules engine.Rules
	names [2]string
}

// NewRenderer creates a renderer for the given rules and bot names.
func NewRenderer(rules engine.Rules, name1, name2 string) *Renderer {
	return &Renderer{rules: rules, names: [2]string{name1, name2}}
}

// Render draws the snapshot. The screen is fully overwritten.
func (r *Renderer) Render(dst *core.Screen, snap engine.Snapshot, paused bool) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 24 || h < 8 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	r.drawHUD(dst, snap)

	box := core.NewRect(0, 1, w, h-1)
	dst.DrawBox(box)
	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)

	// Center line, then the side walls repainted as goal mouths.
	dst.DrawVLine(inner.X+inner.W/2, inner.Y, inner.H, CenterLineChar, core.ColorGray)
	dst.DrawVLine(box.X, inner.Y, inner.H, GoalChar, core.ColorYellow)
	dst.DrawVLine(box.Right()-1, inner.Y, inner.H, GoalChar, core.ColorYellow)

	for _, p := range snap.Projectiles {
		x, y := r.cell(inner, p.X, p.Y)
		if p.Power {
			dst.SetColored(x, y, PowerBulletChar, core.ColorBrightRed)
		} else {
			dst.SetColored(x, y, PrecisionBulletChar, core.ColorBrightWhite)
		}
	}

	cannonColors := [2]core.Color{core.ColorBrightBlue, core.ColorBrightRed}
	for i, c := range snap.Cannons {
		x, y := r.cell(inner, c.X, c.Y)
		dst.SetColored(x, y, CannonChar, cannonColors[i])
	}

	bx, by := r.cell(inner, snap.BallX, snap.BallY)
	dst.SetColored(bx, by, BallChar, core.ColorBrightGreen)

	mid := inner.Y + inner.H/2
	switch {
	case snap.Over:
		winner := r.names[0]
		if snap.Winner == engine.Player2 {
			winner = r.names[1]
		}
		dst.DrawTextCentered(mid, fmt.Sprintf(" %s (player %d) wins %d:%d ", winner, snap.Winner, snap.Score1, snap.Score2))
		dst.DrawTextCentered(mid+1, " r rematch / q quit ")
	case paused:
		dst.DrawTextCentered(mid, " PAUSED ")
	}
}

// drawHUD renders the status line: names, ammo, score, clock, and round.
func (r *Renderer) drawHUD(dst *core.Screen, snap engine.Snapshot) {
	left := fmt.Sprintf("%s %s", r.names[0], ammoTag(snap.Cannons[0]))
	right := fmt.Sprintf("%s %s", ammoTag(snap.Cannons[1]), r.names[1])
	center := fmt.Sprintf("%d : %d  %02d:%02d  round %d",
		snap.Score1, snap.Score2,
		snap.TimeLeft/60, snap.TimeLeft%60,
		snap.Round+1)

	dst.DrawTextColored(0, 0, left, core.ColorBrightBlue)
	dst.DrawTextColored(dst.Width()-len(right), 0, right, core.ColorBrightRed)
	dst.DrawTextCentered(0, center)
}

// ammoTag formats one cannon's remaining bullets, switching to a charge
// readout while a shot is powering up.
func ammoTag(c engine.CannonSnapshot) string {
	if c.Charging {
		return fmt.Sprintf("[chg %2.0f]", c.Power)
	}
	return fmt.Sprintf("[%dpw %dpr]", c.PowerAmmo, c.PrecisionAmmo)
}

// cell maps playfield coordinates onto a screen cell inside the inner rect.
func (r *Renderer) cell(inner core.Rect, x, y float64) (int, int) {
	cx := inner.X + int(x/r.rules.FieldW*float64(inner.W))
	cy := inner.Y + int(y/r.rules.FieldH*float64(inner.H))
	return core.Clamp(cx, inner.X, inner.Right()-1), core.Clamp(cy, inner.Y, inner.Bottom()-1)
}
