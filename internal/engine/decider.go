package engine

import "github.com/vovakirdan/cannonball/internal/core"

// Observation is the snapshot of the world handed to a bot when its cannon is
// ready to act. All values are copies; a bot cannot mutate match state.
type Observation struct {
	CannonPos core.Vec
	BallPos   core.Vec
	BallVel   core.Vec

	PowerBullets     int
	PrecisionBullets int
}

// Shot is a structured fire request: aim angle in degrees, charge power, and
// bullet type. The engine validates it once at the boundary: the angle is
// normalized into [0,360), power clamped into [1,MaxPower], and an unknown
// type tag is coerced to precision.
type Shot struct {
	Angle float64
	Power float64
	Type  BulletType
}

// Decider is the player-decision contract. Decide returns the shot and true
// to fire, or false to skip this tick. Decide is called synchronously once
// per tick while the cannon is ready; a panicking Decider is recovered and
// treated as a skip.
type Decider interface {
	Decide(obs Observation) (Shot, bool)
}

// DeciderFunc adapts a plain function to the Decider interface.
type DeciderFunc func(obs Observation) (Shot, bool)

// Decide implements Decider.
func (f DeciderFunc) Decide(obs Observation) (Shot, bool) {
	return f(obs)
}
