// Package engine implements the cannonball match simulation: ball physics,
// projectile flight and collision, per-cannon turn arbitration, and round and
// match scoring. The engine is tick-driven and deterministic for a fixed seed;
// it performs no I/O and never fails: a misbehaving bot can degrade play but
// cannot crash a match.
package engine

import "github.com/vovakirdan/cannonball/internal/core"

// PlayerID identifies one of the two players. Zero means "no player" and is
// used in events to signal absence.
type PlayerID int

const (
	NoPlayer PlayerID = 0
	Player1  PlayerID = 1
	Player2  PlayerID = 2
)

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "none"
	}
}

// Rules holds every numeric knob of the simulation. Bots receive the same
// Rules value the engine runs with, so their predictions cannot desync from
// reality.
type Rules struct {
	FieldW float64 // Playfield width in units
	FieldH float64 // Playfield height in units

	BallRadius   float64
	CannonRadius float64
	BulletRadius float64

	Friction  float64 // Per-tick velocity decay factor, in (0,1)
	StopSpeed float64 // Velocity component magnitude below which it snaps to zero

	BulletSpeed float64 // Units per tick, constant for the whole flight
	MaxPower    float64 // Upper bound for charge power
	PowerStep   float64 // Impulse per unit of payload power

	PowerAmmo     int // Power bullets per cannon per round
	PrecisionAmmo int // Precision bullets per cannon per round

	TurnDelay float64 // Seconds a cannon stays in cooldown after firing

	WinningScore  int // First to reach this score wins
	MatchSeconds  int // Countdown clock duration in whole seconds
	SpawnJitter   float64 // Max absolute spawn perturbation per axis
	PowerAngleErr float64 // Max absolute launch jitter for power bullets, degrees
	PowerFactor   float64 // Impulse multiplier for power bullets (precision is 1)
}

// DefaultRules returns the standard match rules.
func DefaultRules() Rules {
	return Rules{
		FieldW:        800,
		FieldH:        600,
		BallRadius:    20,
		CannonRadius:  30,
		BulletRadius:  5,
		Friction:      0.995,
		StopSpeed:     0.1,
		BulletSpeed:   15,
		MaxPower:      30,
		PowerStep:     0.13,
		PowerAmmo:     5,
		PrecisionAmmo: 10,
		TurnDelay:     0.6,
		WinningScore:  3,
		MatchSeconds:  60,
		SpawnJitter:   5,
		PowerAngleErr: 5,
		PowerFactor:   1.5,
	}
}

// CannonPos returns the fixed cannon position for a player: 50 units in from
// the owned goal line, vertically centered.
func (r Rules) CannonPos(p PlayerID) core.Vec {
	if p == Player2 {
		return core.Vec{X: r.FieldW - 50, Y: r.FieldH / 2}
	}
	return core.Vec{X: 50, Y: r.FieldH / 2}
}

// SpawnPoints returns the cyclic list of ball spawn positions. The round
// counter indexes into this list modulo its length; each spawn is then
// perturbed by SpawnJitter.
func (r Rules) SpawnPoints() []core.Vec {
	cx, cy := r.FieldW/2, r.FieldH/2
	return []core.Vec{
		{X: cx, Y: cy},
		{X: cx, Y: cy + 50},
		{X: cx, Y: cy - 50},
		{X: cx, Y: cy + 100},
		{X: cx - 50, Y: cy - 100},
	}
}
