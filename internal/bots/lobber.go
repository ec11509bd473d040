package bots

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cannonball/internal/core"
	"github.com/vovakirdan/cannonball/internal/engine"
)

// rangeSplit is the distance at which lobber switches from precision to
// power bullets.
const rangeSplit = 150

func init() {
	Register("lobber", "Shoots straight at the ball, power bullets at long range, precision up close", newLobber)
}

// lobber aims at the ball's current position without leading it. Long shots
// use power bullets, short shots precision, and when the preferred kind is
// gone it picks one at random and lets the request fail if the pouch is
// empty.
type lobber struct {
	rules engine.Rules
	rng   *rand.Rand
}

func newLobber(rules engine.Rules, seed int64) engine.Decider {
	return &lobber{rules: rules, rng: rand.New(rand.NewSource(seed))}
}

func (l *lobber) Decide(obs engine.Observation) (engine.Shot, bool) {
	dist := core.Dist(obs.CannonPos, obs.BallPos)

	shot := engine.Shot{
		Angle: core.HeadingTo(obs.CannonPos, obs.BallPos),
		Power: math.Min(l.rules.MaxPower, math.Floor(dist/20)),
	}

	switch {
	case obs.PowerBullets > 0 && dist > rangeSplit:
		shot.Type = engine.BulletPower
	case obs.PrecisionBullets > 0 && dist < rangeSplit:
		shot.Type = engine.BulletPrecision
	default:
		if l.rng.Intn(2) == 0 {
			shot.Type = engine.BulletPower
		} else {
			shot.Type = engine.BulletPrecision
		}
	}

	return shot, true
}
