package engine

// Hit records a projectile-ball collision resolved during a physics step.
type Hit struct {
	Owner   PlayerID
	Type    BulletType
	Payload float64
}

// PhysicsResult reports what happened during one physics step.
type PhysicsResult struct {
	Goal PlayerID // Scorer, or NoPlayer
	Hits []Hit
}

// StepPhysics advances the ball and all live projectiles one tick and
// resolves projectile-ball collisions.
//
// The ball moves first. If it crossed a goal line, the step ends immediately
// with the untouched projectile slice: the round is about to reset and clear
// them, so they must not advance or collide on the goal tick.
//
// Each projectile then advances, expires if its center left the field, or
// applies its impulse and is destroyed on contact with the ball. A projectile
// resolves at most one collision; several projectiles hitting in the same
// tick each apply their own impulse independently; impulses are additive and
// commute, so no ordering is imposed.
func StepPhysics(rules Rules, ball *Ball, projectiles []*Projectile) ([]*Projectile, PhysicsResult) {
	var res PhysicsResult

	ball.Integrate(rules)
	if scorer := ball.GoalSide(rules); scorer != NoPlayer {
		res.Goal = scorer
		return projectiles, res
	}

	alive := projectiles[:0]
	for _, p := range projectiles {
		p.Integrate()

		if p.OutOfBounds(rules) {
			continue
		}

		if p.Hits(ball) {
			ball.ApplyImpulse(p.ImpulseOn(ball, rules))
			res.Hits = append(res.Hits, Hit{Owner: p.Owner, Type: p.Type, Payload: p.Payload})
			continue
		}

		alive = append(alive, p)
	}

	return alive, res
}
