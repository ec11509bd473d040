package bots

import "github.com/vovakirdan/cannonball/internal/engine"

func init() {
	Register("passive", "Never fires; useful as a sparring dummy", newPassive)
}

type passive struct{}

func newPassive(engine.Rules, int64) engine.Decider {
	return passive{}
}

func (passive) Decide(engine.Observation) (engine.Shot, bool) {
	return engine.Shot{}, false
}
