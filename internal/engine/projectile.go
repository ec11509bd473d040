package engine

import "github.com/vovakirdan/cannonball/internal/core"

// Projectile is a bullet in flight. Its heading is frozen at fire time and
// its speed is constant; friction never applies to projectiles.
type Projectile struct {
	Owner   PlayerID
	Type    BulletType
	Pos     core.Vec
	Vel     core.Vec
	Payload float64 // Power level charged before firing
	Radius  float64
}

// NewProjectile spawns a bullet at the cannon position with the given launch
// heading in degrees. Any jitter for power bullets is applied by the caller
// before the heading reaches here.
func NewProjectile(owner PlayerID, typ BulletType, pos core.Vec, angleDeg, payload float64, rules Rules) *Projectile {
	return &Projectile{
		Owner:   owner,
		Type:    typ,
		Pos:     pos,
		Vel:     core.FromAngle(angleDeg).Scale(rules.BulletSpeed),
		Payload: payload,
		Radius:  rules.BulletRadius,
	}
}

// Integrate advances the projectile one tick along its fixed heading.
func (p *Projectile) Integrate() {
	p.Pos = p.Pos.Add(p.Vel)
}

// OutOfBounds reports whether the projectile's center has left the playfield.
// Such projectiles are destroyed without counting as collisions.
func (p *Projectile) OutOfBounds(rules Rules) bool {
	return p.Pos.X < 0 || p.Pos.X > rules.FieldW || p.Pos.Y < 0 || p.Pos.Y > rules.FieldH
}

// Hits reports whether the projectile overlaps the ball: the distance between
// centers is at most the sum of the radii.
func (p *Projectile) Hits(b *Ball) bool {
	return core.Dist(p.Pos, b.Pos) <= b.Radius+p.Radius
}

// ImpulseOn computes the velocity change this projectile imparts on the ball:
// the unit vector from projectile to ball, scaled by payload, the power step,
// and the type multiplier. Power bullets hit harder; precision bullets use a
// multiplier of 1.
func (p *Projectile) ImpulseOn(b *Ball, rules Rules) core.Vec {
	dir := b.Pos.Sub(p.Pos).Unit()
	factor := 1.0
	if p.Type == BulletPower {
		factor = rules.PowerFactor
	}
	return dir.Scale(p.Payload * rules.PowerStep * factor)
}
