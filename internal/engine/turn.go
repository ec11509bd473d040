package engine

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cannonball/internal/core"
)

// TurnState is the per-cannon execution state.
type TurnState uint8

const (
	// StateCooldown: the cannon fired within the last TurnDelay seconds and
	// may not request a decision.
	StateCooldown TurnState = iota
	// StateReady: the delay has elapsed; the bot is asked once per tick.
	StateReady
	// StateCharging: a decision was accepted and power is ramping toward the
	// requested level.
	StateCharging
)

// turnController arbitrates one cannon's cooldown → decision → charge → fire
// cycle. It is the only writer of Cannon.Power and Cannon.Angle, and it holds
// at most one pending shot between acceptance and the spawn event.
type turnController struct {
	cannon  *Cannon
	decider Decider
	rules   Rules

	state      TurnState
	pending    Shot  // Valid only in StateCharging
	lastFire   int64 // Tick of the most recent fire event
	delayTicks int64

	rng    *rand.Rand
	logger *log.Logger
}

func newTurnController(c *Cannon, d Decider, rules Rules, tickRate int, rng *rand.Rand, logger *log.Logger) *turnController {
	delay := int64(math.Round(rules.TurnDelay * float64(tickRate)))
	return &turnController{
		cannon:     c,
		decider:    d,
		rules:      rules,
		state:      StateReady,
		lastFire:   -delay,
		delayTicks: delay,
		rng:        rng,
		logger:     logger,
	}
}

// Charging reports whether a shot has been accepted but not yet spawned.
// Such a shot counts as in flight for stalemate purposes.
func (t *turnController) Charging() bool {
	return t.state == StateCharging
}

// resetRound clears any in-progress charge and stamps a fresh cooldown, so
// both cannons sit out a full turn delay after a round reset.
func (t *turnController) resetRound(now int64) {
	t.state = StateCooldown
	t.pending = Shot{}
	t.cannon.Power = 0
	t.lastFire = now
}

// Step advances the state machine one tick. It returns a newly spawned
// projectile, or nil.
func (t *turnController) Step(now int64, ball *Ball) *Projectile {
	switch t.state {
	case StateCharging:
		return t.charge(now)
	case StateCooldown:
		if now-t.lastFire < t.delayTicks {
			return nil
		}
		t.state = StateReady
		fallthrough
	default:
		t.requestDecision(ball)
		return nil
	}
}

// charge ramps power one unit per tick and fires once the target is reached.
func (t *turnController) charge(now int64) *Projectile {
	if t.cannon.Power < t.pending.Power && t.cannon.Power < t.rules.MaxPower {
		t.cannon.Power++
		return nil
	}

	angle := t.pending.Angle
	if t.pending.Type == BulletPower {
		angle += (t.rng.Float64()*2 - 1) * t.rules.PowerAngleErr
	}

	proj := NewProjectile(t.cannon.Player, t.pending.Type, t.cannon.Pos, angle, t.cannon.Power, t.rules)

	t.cannon.Power = 0
	t.pending = Shot{}
	t.lastFire = now
	t.state = StateCooldown
	return proj
}

// requestDecision invokes the bot and, if the shot is acceptable, moves to
// StateCharging. Ammo-exhausted requests are dropped silently and the cannon
// stays Ready, so the bot may ask again next tick.
func (t *turnController) requestDecision(ball *Ball) {
	obs := Observation{
		CannonPos:        t.cannon.Pos,
		BallPos:          ball.Pos,
		BallVel:          ball.Vel,
		PowerBullets:     t.cannon.PowerAmmo,
		PrecisionBullets: t.cannon.PrecisionAmmo,
	}

	shot, fire := t.safeDecide(obs)
	if !fire {
		return
	}

	shot, ok := sanitizeShot(shot, t.rules)
	if !ok {
		t.logger.Warn("discarding malformed shot", "player", t.cannon.Player, "angle", shot.Angle, "power", shot.Power)
		return
	}

	if !t.cannon.HasAmmo(shot.Type) {
		return
	}

	t.cannon.ConsumeAmmo(shot.Type)
	t.cannon.Angle = shot.Angle
	t.pending = shot
	t.state = StateCharging
}

// safeDecide calls the bot, converting a panic into a no-shot response so an
// external failure can never halt the match.
func (t *turnController) safeDecide(obs Observation) (shot Shot, fire bool) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Warn("bot panicked, skipping turn", "player", t.cannon.Player, "panic", r)
			shot, fire = Shot{}, false
		}
	}()
	return t.decider.Decide(obs)
}

// sanitizeShot validates a shot at the boundary: non-finite values reject the
// shot, the angle wraps into [0,360), power clamps into [1,MaxPower], and an
// unknown bullet tag is coerced to precision.
func sanitizeShot(s Shot, rules Rules) (Shot, bool) {
	if math.IsNaN(s.Angle) || math.IsInf(s.Angle, 0) || math.IsNaN(s.Power) || math.IsInf(s.Power, 0) {
		return s, false
	}
	s.Angle = core.NormalizeDeg(s.Angle)
	s.Power = core.ClampF(s.Power, 1, rules.MaxPower)
	if !s.Type.Valid() {
		s.Type = BulletPrecision
	}
	return s, true
}
