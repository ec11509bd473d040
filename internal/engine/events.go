package engine

// FireEvent records a projectile leaving a cannon.
type FireEvent struct {
	Player  PlayerID
	Type    BulletType
	Payload float64
}

// StepEvents reports everything observable that happened during one tick.
// At most one of Goal and Stalemate is set in a single tick; a point is
// never awarded to both players simultaneously.
type StepEvents struct {
	Fired []FireEvent
	Hits  []Hit

	Goal      PlayerID // Scorer of a goal this tick, or NoPlayer
	Stalemate PlayerID // Winner of a stalemate resolution this tick, or NoPlayer

	RoundStarted bool // A round reset happened after a point was awarded
	MatchOver    bool
}
