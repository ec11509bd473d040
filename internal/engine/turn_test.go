package engine

import (
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cannonball/internal/core"
)

// countingDecider wraps a fixed response and counts invocations.
type countingDecider struct {
	shot  Shot
	fire  bool
	calls int
}

func (d *countingDecider) Decide(Observation) (Shot, bool) {
	d.calls++
	return d.shot, d.fire
}

func newTestController(t *testing.T, d Decider) (*turnController, *Cannon) {
	t.Helper()
	rules := DefaultRules()
	c := NewCannon(Player1, rules)
	rng := rand.New(rand.NewSource(1))
	return newTurnController(c, d, rules, 60, rng, log.New(io.Discard)), c
}

func restingBall() *Ball {
	b := NewBall(20)
	b.Pos = core.Vec{X: 400, Y: 300}
	return b
}

func TestTurnAcceptanceConsumesAmmoOnce(t *testing.T) {
	d := &countingDecider{shot: Shot{Angle: 0, Power: 3, Type: BulletPrecision}, fire: true}
	tc, cannon := newTestController(t, d)
	ball := restingBall()

	if proj := tc.Step(1, ball); proj != nil {
		t.Fatal("acceptance tick must not spawn a projectile")
	}
	if cannon.PrecisionAmmo != 9 {
		t.Errorf("precision ammo = %d, want 9", cannon.PrecisionAmmo)
	}
	if cannon.ShotsFired != 1 {
		t.Errorf("shots fired = %d, want 1", cannon.ShotsFired)
	}
	if cannon.Angle != 0 {
		t.Errorf("cannon should rotate to the requested angle immediately, got %v", cannon.Angle)
	}

	// Power ramps one unit per tick; the shot spawns once power reaches the
	// target, with the payload equal to the power level reached.
	var proj *Projectile
	ticks := int64(1)
	for proj == nil {
		ticks++
		proj = tc.Step(ticks, ball)
		if ticks > 10 {
			t.Fatal("charging never completed")
		}
	}

	if proj.Payload != 3 {
		t.Errorf("payload = %v, want 3", proj.Payload)
	}
	if cannon.Power != 0 {
		t.Errorf("power should reset to 0 after firing, got %v", cannon.Power)
	}
	if cannon.PrecisionAmmo != 9 {
		t.Errorf("ammo must be consumed exactly once, got %d", cannon.PrecisionAmmo)
	}
	if tc.state != StateCooldown {
		t.Errorf("controller should be in cooldown after firing, got %v", tc.state)
	}
}

func TestTurnAmmoExhaustedRequestRejected(t *testing.T) {
	// Requesting a power bullet with zero power ammo must be rejected
	// silently: no projectile, counters unchanged, cannon still ready.
	d := &countingDecider{shot: Shot{Angle: 45, Power: 5, Type: BulletPower}, fire: true}
	tc, cannon := newTestController(t, d)
	cannon.PowerAmmo = 0
	ball := restingBall()

	for now := int64(1); now <= 3; now++ {
		if proj := tc.Step(now, ball); proj != nil {
			t.Fatal("no projectile may spawn without ammo")
		}
	}

	if cannon.PrecisionAmmo != 10 {
		t.Errorf("precision ammo must be untouched, got %d", cannon.PrecisionAmmo)
	}
	if cannon.ShotsFired != 0 {
		t.Errorf("shots fired must stay 0, got %d", cannon.ShotsFired)
	}
	if tc.state != StateReady {
		t.Error("cannon should stay ready so it can ask again next tick")
	}
	if d.calls != 3 {
		t.Errorf("decider should be asked every tick while ready, got %d calls", d.calls)
	}
}

func TestTurnShotSanitized(t *testing.T) {
	// Out-of-range values are clamped at the boundary: the angle wraps into
	// [0,360), power clamps to MaxPower, and an unknown type tag becomes
	// precision.
	d := &countingDecider{shot: Shot{Angle: 725, Power: 99, Type: BulletType(7)}, fire: true}
	tc, cannon := newTestController(t, d)
	ball := restingBall()

	tc.Step(1, ball)

	if cannon.Angle != 5 {
		t.Errorf("angle should normalize to 5, got %v", cannon.Angle)
	}
	if cannon.PrecisionAmmo != 9 {
		t.Error("unknown bullet tag should be coerced to precision")
	}

	var proj *Projectile
	for now := int64(2); proj == nil && now < 40; now++ {
		proj = tc.Step(now, ball)
	}
	if proj == nil {
		t.Fatal("charging never completed")
	}
	if proj.Payload != DefaultRules().MaxPower {
		t.Errorf("payload = %v, want max power", proj.Payload)
	}
	want := core.FromAngle(5).Scale(DefaultRules().BulletSpeed)
	if math.Abs(proj.Vel.X-want.X) > 1e-9 || math.Abs(proj.Vel.Y-want.Y) > 1e-9 {
		t.Errorf("precision shots must launch at the exact requested angle, vel=(%v, %v)", proj.Vel.X, proj.Vel.Y)
	}
}

func TestTurnNonFiniteShotSkipped(t *testing.T) {
	d := &countingDecider{shot: Shot{Angle: math.NaN(), Power: 10, Type: BulletPrecision}, fire: true}
	tc, cannon := newTestController(t, d)

	tc.Step(1, restingBall())

	if tc.state != StateReady {
		t.Error("non-finite shot should be treated as a skip")
	}
	if cannon.PrecisionAmmo != 10 {
		t.Error("rejected shot must not consume ammo")
	}
}

func TestTurnPanickingDeciderRecovered(t *testing.T) {
	tc, cannon := newTestController(t, DeciderFunc(func(Observation) (Shot, bool) {
		panic("bot bug")
	}))

	for now := int64(1); now <= 5; now++ {
		if proj := tc.Step(now, restingBall()); proj != nil {
			t.Fatal("panicking decider must not fire")
		}
	}

	if tc.state != StateReady {
		t.Error("cannon should remain ready after a bot panic")
	}
	if cannon.PrecisionAmmo != 10 || cannon.PowerAmmo != 5 {
		t.Error("bot panic must not touch ammo")
	}
}

func TestTurnSinglePendingShot(t *testing.T) {
	// Between acceptance and the spawn event the decider must not be asked
	// again: one pending shot per cannon at a time.
	d := &countingDecider{shot: Shot{Angle: 0, Power: 10, Type: BulletPrecision}, fire: true}
	tc, _ := newTestController(t, d)
	ball := restingBall()

	tc.Step(1, ball)
	for now := int64(2); now <= 8; now++ {
		tc.Step(now, ball)
	}

	if d.calls != 1 {
		t.Errorf("decider called %d times while charging, want 1", d.calls)
	}
}

func TestTurnCooldownBlocksDecisions(t *testing.T) {
	d := &countingDecider{shot: Shot{Angle: 0, Power: 1, Type: BulletPrecision}, fire: true}
	tc, _ := newTestController(t, d)
	ball := restingBall()

	// Accept at tick 1, ramp to power 1 at tick 2, fire at tick 3.
	var fireTick int64
	for now := int64(1); now <= 10; now++ {
		if proj := tc.Step(now, ball); proj != nil {
			fireTick = now
			break
		}
	}
	if fireTick == 0 {
		t.Fatal("shot never fired")
	}

	calls := d.calls
	// TurnDelay 0.6s at 60 ticks/s = 36 ticks of cooldown.
	for now := fireTick + 1; now < fireTick+36; now++ {
		tc.Step(now, ball)
	}
	if d.calls != calls {
		t.Error("no decisions may be requested during cooldown")
	}

	tc.Step(fireTick+36, ball)
	if d.calls != calls+1 {
		t.Error("decision should be requested once the turn delay elapses")
	}
}

func TestTurnPowerShotJitterBounded(t *testing.T) {
	rules := DefaultRules()
	d := &countingDecider{shot: Shot{Angle: 0, Power: 2, Type: BulletPower}, fire: true}
	tc, _ := newTestController(t, d)
	ball := restingBall()

	var proj *Projectile
	for now := int64(1); proj == nil && now <= 10; now++ {
		proj = tc.Step(now, ball)
	}
	if proj == nil {
		t.Fatal("shot never fired")
	}

	heading := -math.Atan2(proj.Vel.Y, proj.Vel.X) * 180 / math.Pi
	if math.Abs(heading) > rules.PowerAngleErr {
		t.Errorf("power shot jitter %v exceeds bound %v", heading, rules.PowerAngleErr)
	}
}
