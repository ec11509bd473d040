package bots

import (
	"math"

	"github.com/vovakirdan/cannonball/internal/core"
	"github.com/vovakirdan/cannonball/internal/engine"
)

func init() {
	Register("keeper", "Defensive: holds fire until the ball enters its own half", newKeeper)
}

// keeper saves ammunition by only engaging the ball inside its own half,
// clearing it back toward the opponent. Precision bullets first; power
// bullets are the emergency reserve.
type keeper struct {
	rules engine.Rules
}

func newKeeper(rules engine.Rules, _ int64) engine.Decider {
	return &keeper{rules: rules}
}

func (k *keeper) Decide(obs engine.Observation) (engine.Shot, bool) {
	mid := k.rules.FieldW / 2
	leftSide := obs.CannonPos.X < mid
	inOwnHalf := (leftSide && obs.BallPos.X < mid) || (!leftSide && obs.BallPos.X >= mid)
	if !inOwnHalf {
		return engine.Shot{}, false
	}

	predicted := obs.BallPos.Add(obs.BallVel)
	dist := core.Dist(obs.CannonPos, predicted)

	shot := engine.Shot{
		Angle: core.HeadingTo(obs.CannonPos, predicted),
		Power: core.ClampF(math.Floor(dist/12), 5, k.rules.MaxPower),
	}

	switch {
	case obs.PrecisionBullets > 0:
		shot.Type = engine.BulletPrecision
	case obs.PowerBullets > 0:
		shot.Type = engine.BulletPower
	default:
		return engine.Shot{}, false
	}

	return shot, true
}
