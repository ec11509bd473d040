package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/cannonball/internal/core"
)

func TestProjectileConstantSpeed(t *testing.T) {
	rules := DefaultRules()
	p := NewProjectile(Player1, BulletPrecision, core.Vec{X: 100, Y: 300}, 37, 10, rules)

	for i := 0; i < 10; i++ {
		before := p.Pos
		p.Integrate()
		travelled := core.Dist(before, p.Pos)
		if math.Abs(travelled-rules.BulletSpeed) > 1e-9 {
			t.Fatalf("tick %d travelled %v units, want %v", i, travelled, rules.BulletSpeed)
		}
	}
}

func TestPrecisionShotFliesStraightUntilHit(t *testing.T) {
	// Ball at rest at field center, cannon at (50,300) firing a precision
	// bullet at power 10 directly rightward: a straight horizontal line at
	// constant speed until it reaches the ball.
	rules := DefaultRules()
	ball := NewBall(rules.BallRadius)
	ball.Pos = core.Vec{X: rules.FieldW / 2, Y: rules.FieldH / 2}

	p := NewProjectile(Player1, BulletPrecision, core.Vec{X: 50, Y: 300}, 0, 10, rules)

	hit := false
	for i := 1; i <= 100; i++ {
		p.Integrate()
		if p.Pos.Y != 300 {
			t.Fatalf("bullet drifted vertically: y=%v at tick %d", p.Pos.Y, i)
		}
		wantX := 50 + float64(i)*rules.BulletSpeed
		if math.Abs(p.Pos.X-wantX) > 1e-9 {
			t.Fatalf("bullet x=%v at tick %d, want %v", p.Pos.X, i, wantX)
		}
		if p.Hits(ball) {
			hit = true
			break
		}
		if p.OutOfBounds(rules) {
			break
		}
	}

	if !hit {
		t.Error("bullet aimed at a resting ball should eventually hit it")
	}
}

func TestProjectileOutOfBounds(t *testing.T) {
	rules := DefaultRules()
	p := NewProjectile(Player2, BulletPrecision, core.Vec{X: 10, Y: 300}, 180, 5, rules)

	steps := 0
	for !p.OutOfBounds(rules) {
		p.Integrate()
		steps++
		if steps > 10 {
			t.Fatal("bullet heading off-field should leave the bounds quickly")
		}
	}
}

func TestImpulseDirectionAndMagnitude(t *testing.T) {
	rules := DefaultRules()
	ball := NewBall(rules.BallRadius)
	ball.Pos = core.Vec{X: 400, Y: 300}

	tests := []struct {
		name   string
		typ    BulletType
		factor float64
	}{
		{"precision multiplier is 1", BulletPrecision, 1},
		{"power multiplier applies", BulletPower, rules.PowerFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Projectile{
				Owner:   Player1,
				Type:    tt.typ,
				Pos:     core.Vec{X: 300, Y: 300},
				Payload: 10,
				Radius:  rules.BulletRadius,
			}
			imp := p.ImpulseOn(ball, rules)
			want := 10 * rules.PowerStep * tt.factor
			if math.Abs(imp.X-want) > 1e-9 || imp.Y != 0 {
				t.Errorf("impulse = (%v, %v), want (%v, 0)", imp.X, imp.Y, want)
			}
		})
	}
}

func TestStepPhysicsDestroysBulletOnHit(t *testing.T) {
	rules := DefaultRules()
	ball := NewBall(rules.BallRadius)
	ball.Pos = core.Vec{X: 400, Y: 300}

	// One tick away from contact.
	p := NewProjectile(Player1, BulletPrecision, core.Vec{X: 360, Y: 300}, 0, 10, rules)
	alive, res := StepPhysics(rules, ball, []*Projectile{p})

	if len(res.Hits) != 1 {
		t.Fatalf("expected one hit, got %d", len(res.Hits))
	}
	if len(alive) != 0 {
		t.Error("bullet should be destroyed after applying its impulse")
	}
	if !ball.Moving() {
		t.Error("hit should set the ball in motion")
	}
}

func TestStepPhysicsAdditiveImpulses(t *testing.T) {
	rules := DefaultRules()
	ball := NewBall(rules.BallRadius)
	ball.Pos = core.Vec{X: 400, Y: 300}

	// Opposing bullets arriving the same tick: impulses are independent and
	// additive, so the horizontal components cancel exactly.
	left := NewProjectile(Player1, BulletPrecision, core.Vec{X: 360, Y: 300}, 0, 10, rules)
	right := NewProjectile(Player2, BulletPrecision, core.Vec{X: 440, Y: 300}, 180, 10, rules)

	alive, res := StepPhysics(rules, ball, []*Projectile{left, right})

	if len(res.Hits) != 2 {
		t.Fatalf("expected two independent hits, got %d", len(res.Hits))
	}
	if len(alive) != 0 {
		t.Errorf("both bullets should be destroyed, %d left", len(alive))
	}
	if math.Abs(ball.Vel.X) > 1e-9 {
		t.Errorf("symmetric impulses should cancel, vx=%v", ball.Vel.X)
	}
}

func TestStepPhysicsExpiresBulletsWithoutCollision(t *testing.T) {
	rules := DefaultRules()
	ball := NewBall(rules.BallRadius)
	ball.Pos = core.Vec{X: 400, Y: 300}

	p := NewProjectile(Player1, BulletPrecision, core.Vec{X: 10, Y: 100}, 180, 10, rules)
	alive, res := StepPhysics(rules, ball, []*Projectile{p})

	if len(alive) != 0 {
		t.Error("out-of-bounds bullet should be destroyed")
	}
	if len(res.Hits) != 0 {
		t.Error("leaving the field must not count as a collision")
	}
	if ball.Moving() {
		t.Error("ball should be unaffected")
	}
}

func TestStepPhysicsGoalTickFreezesProjectiles(t *testing.T) {
	rules := DefaultRules()
	ball := NewBall(rules.BallRadius)
	ball.Pos = core.Vec{X: 30, Y: 300}
	ball.Vel = core.Vec{X: -15, Y: 0}

	p := NewProjectile(Player2, BulletPrecision, core.Vec{X: 700, Y: 300}, 180, 10, rules)
	before := p.Pos

	alive, res := StepPhysics(rules, ball, []*Projectile{p})

	if res.Goal != Player2 {
		t.Fatalf("expected player 2 goal, got %v", res.Goal)
	}
	if len(alive) != 1 || alive[0].Pos != before {
		t.Error("projectiles must not advance on a goal tick")
	}
}
