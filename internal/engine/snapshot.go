package engine

// CannonSnapshot is the render-facing view of one cannon.
type CannonSnapshot struct {
	X, Y          float64
	Angle         float64
	Power         float64
	Charging      bool
	PowerAmmo     int
	PrecisionAmmo int
	ShotsFired    int
}

// ProjectileSnapshot is the render-facing view of one bullet in flight.
type ProjectileSnapshot struct {
	X, Y  float64
	Power bool // true for the power variant
}

// Snapshot is a copy of the observable match state using primitive fields
// only. The presentation layer renders from snapshots and never touches
// engine internals.
type Snapshot struct {
	Tick     int64
	TimeLeft int
	Round    int

	BallX, BallY   float64
	BallVX, BallVY float64
	BallRadius     float64

	Cannons     [2]CannonSnapshot
	Projectiles []ProjectileSnapshot

	Score1, Score2 int
	Over           bool
	Winner         PlayerID
}

// Snapshot captures the current match state.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       m.tick,
		TimeLeft:   m.timeLeft,
		Round:      m.round,
		BallX:      m.ball.Pos.X,
		BallY:      m.ball.Pos.Y,
		BallVX:     m.ball.Vel.X,
		BallVY:     m.ball.Vel.Y,
		BallRadius: m.ball.Radius,
		Score1:     m.score[0],
		Score2:     m.score[1],
		Over:       m.over,
		Winner:     m.winner,
	}

	for i, c := range m.cannons {
		snap.Cannons[i] = CannonSnapshot{
			X:             c.Pos.X,
			Y:             c.Pos.Y,
			Angle:         c.Angle,
			Power:         c.Power,
			Charging:      m.turns[i].Charging(),
			PowerAmmo:     c.PowerAmmo,
			PrecisionAmmo: c.PrecisionAmmo,
			ShotsFired:    c.ShotsFired,
		}
	}

	snap.Projectiles = make([]ProjectileSnapshot, 0, len(m.projectiles))
	for _, p := range m.projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{
			X:     p.Pos.X,
			Y:     p.Pos.Y,
			Power: p.Type == BulletPower,
		})
	}

	return snap
}
