package bots

import (
	"math"

	"github.com/vovakirdan/cannonball/internal/core"
	"github.com/vovakirdan/cannonball/internal/engine"
)

func init() {
	Register("striker", "Leads the moving ball and opens with power bullets from its own third", newStriker)
}

// striker aims one step ahead of the ball and scales power with distance.
// While it sits in its own third of the field it spends power bullets first,
// then falls back to precision, and holds fire once the magazine is empty.
type striker struct {
	rules engine.Rules
}

func newStriker(rules engine.Rules, _ int64) engine.Decider {
	return &striker{rules: rules}
}

func (s *striker) Decide(obs engine.Observation) (engine.Shot, bool) {
	predicted := obs.BallPos.Add(obs.BallVel)
	dist := core.Dist(obs.CannonPos, predicted)

	shot := engine.Shot{
		Angle: core.HeadingTo(obs.CannonPos, predicted),
		Power: core.ClampF(math.Floor(dist/10), 5, s.rules.MaxPower),
	}

	third := s.rules.FieldW / 3
	inOwnThird := obs.CannonPos.X < third || obs.CannonPos.X > s.rules.FieldW-third

	switch {
	case inOwnThird && obs.PowerBullets > 0:
		shot.Type = engine.BulletPower
	case obs.PrecisionBullets > 0:
		shot.Type = engine.BulletPrecision
	default:
		return engine.Shot{}, false
	}

	return shot, true
}
