package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cannonball/internal/core"
	"github.com/vovakirdan/cannonball/internal/engine"
)

func testSnapshot() engine.Snapshot {
	rules := engine.DefaultRules()
	snap := engine.Snapshot{
		TimeLeft:   41,
		Round:      2,
		BallX:      rules.FieldW / 2,
		BallY:      rules.FieldH / 2,
		BallRadius: rules.BallRadius,
		Score1:     1,
		Score2:     2,
	}
	snap.Cannons[0] = engine.CannonSnapshot{X: 50, Y: 300, PowerAmmo: 5, PrecisionAmmo: 10}
	snap.Cannons[1] = engine.CannonSnapshot{X: 750, Y: 300, PowerAmmo: 3, PrecisionAmmo: 7}
	return snap
}

func countRune(s string, r rune) int {
	return strings.Count(s, string(r))
}

func TestRendererDrawsEntities(t *testing.T) {
	r := NewRenderer(engine.DefaultRules(), "striker", "lobber")
	screen := core.NewScreen(80, 24)

	snap := testSnapshot()
	snap.Projectiles = []engine.ProjectileSnapshot{
		{X: 200, Y: 300, Power: true},
		{X: 600, Y: 300, Power: false},
	}
	r.Render(screen, snap, false)
	out := screen.String()

	if countRune(out, BallChar) != 1 {
		t.Errorf("expected exactly one ball, got %d", countRune(out, BallChar))
	}
	if countRune(out, CannonChar) != 2 {
		t.Errorf("expected two cannons, got %d", countRune(out, CannonChar))
	}
	if countRune(out, PowerBulletChar) != 1 || countRune(out, PrecisionBulletChar) != 1 {
		t.Error("expected one bullet of each kind")
	}
	if !strings.Contains(out, "striker") || !strings.Contains(out, "lobber") {
		t.Error("HUD should show both bot names")
	}
	if !strings.Contains(out, "1 : 2") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "00:41") {
		t.Error("HUD should show the remaining time")
	}
	if !strings.Contains(out, "round 3") {
		t.Error("HUD should show the one-based round number")
	}
}

func TestRendererBallStaysInsideBox(t *testing.T) {
	r := NewRenderer(engine.DefaultRules(), "a", "b")
	screen := core.NewScreen(40, 12)

	snap := testSnapshot()
	snap.BallX = 799
	snap.BallY = 599
	r.Render(screen, snap, false)

	// The border must survive rendering an entity in the far corner.
	if screen.Get(39, 11) != '┘' {
		t.Errorf("corner = %q, want box corner", screen.Get(39, 11))
	}
	if countRune(screen.String(), BallChar) != 1 {
		t.Error("ball should be clamped inside the field, not dropped")
	}
}

func TestRendererPausedOverlay(t *testing.T) {
	r := NewRenderer(engine.DefaultRules(), "a", "b")
	screen := core.NewScreen(80, 24)

	r.Render(screen, testSnapshot(), true)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestRendererWinnerOverlay(t *testing.T) {
	r := NewRenderer(engine.DefaultRules(), "striker", "lobber")
	screen := core.NewScreen(80, 24)

	snap := testSnapshot()
	snap.Over = true
	snap.Winner = engine.Player2
	snap.Score1, snap.Score2 = 1, 3
	r.Render(screen, snap, false)

	out := screen.String()
	if !strings.Contains(out, "lobber (player 2) wins 1:3") {
		t.Errorf("winner overlay missing, screen:\n%s", out)
	}
	if !strings.Contains(out, "rematch") {
		t.Error("rematch hint missing")
	}
}

func TestRendererTinyTerminal(t *testing.T) {
	r := NewRenderer(engine.DefaultRules(), "a", "b")
	screen := core.NewScreen(10, 3)

	r.Render(screen, testSnapshot(), false)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("tiny terminals should get a readable message instead of a broken field")
	}
}

func TestRenderScreenPlainWidth(t *testing.T) {
	screen := core.NewScreen(8, 2)
	screen.DrawTextColored(0, 0, "ab", core.ColorBrightGreen)
	screen.DrawText(0, 1, "cd")

	out := RenderScreen(screen)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Error("rendered output should contain the buffer text")
	}
}
