package engine

import (
	"math"

	"github.com/vovakirdan/cannonball/internal/core"
)

// Ball is the match ball. It is created once per match and repositioned,
// never recreated, at the start of each round.
type Ball struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
}

// NewBall creates a ball at rest at the origin.
func NewBall(radius float64) *Ball {
	return &Ball{Radius: radius}
}

// PlaceAt repositions the ball and brings it to rest.
func (b *Ball) PlaceAt(p core.Vec) {
	b.Pos = p
	b.Vel = core.Vec{}
}

// Integrate advances the ball one tick: position by velocity, friction decay,
// snap-to-zero below the stop threshold, and elastic reflection off the top
// and bottom walls. Left and right boundaries are not reflective; crossing
// them is reported by GoalSide.
func (b *Ball) Integrate(rules Rules) {
	b.Pos = b.Pos.Add(b.Vel)

	b.Vel = b.Vel.Scale(rules.Friction)
	if math.Abs(b.Vel.X) < rules.StopSpeed {
		b.Vel.X = 0
	}
	if math.Abs(b.Vel.Y) < rules.StopSpeed {
		b.Vel.Y = 0
	}

	if b.Pos.Y-b.Radius <= 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = -b.Vel.Y
	} else if b.Pos.Y+b.Radius >= rules.FieldH {
		b.Pos.Y = rules.FieldH - b.Radius
		b.Vel.Y = -b.Vel.Y
	}
}

// Moving reports whether the ball is in motion. The check is discrete:
// true iff either velocity component is nonzero. Integrate's snap-to-zero
// guarantees this eventually becomes false absent new impulses.
func (b *Ball) Moving() bool {
	return b.Vel.X != 0 || b.Vel.Y != 0
}

// GoalSide reports the scorer if the ball crossed a goal line this tick:
// Player2 scores when the ball crosses the left boundary, Player1 the right.
// Returns NoPlayer while the ball is in play.
func (b *Ball) GoalSide(rules Rules) PlayerID {
	if b.Pos.X-b.Radius <= 0 {
		return Player2
	}
	if b.Pos.X+b.Radius >= rules.FieldW {
		return Player1
	}
	return NoPlayer
}

// ApplyImpulse adds an instantaneous velocity change to the ball.
func (b *Ball) ApplyImpulse(impulse core.Vec) {
	b.Vel = b.Vel.Add(impulse)
}
