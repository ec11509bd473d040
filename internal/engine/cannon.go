package engine

import "github.com/vovakirdan/cannonball/internal/core"

// BulletType is the closed two-variant projectile tag.
type BulletType uint8

const (
	BulletPrecision BulletType = iota
	BulletPower
)

// String returns the wire/display name of the bullet type.
func (t BulletType) String() string {
	if t == BulletPower {
		return "power"
	}
	return "precision"
}

// Valid reports whether the tag is one of the two known variants.
func (t BulletType) Valid() bool {
	return t == BulletPrecision || t == BulletPower
}

// Cannon is one player's cannon. Its position is fixed for the whole match;
// aim angle and charge power are written only by the turn controller.
type Cannon struct {
	Player PlayerID
	Pos    core.Vec

	Angle float64 // Current aim in degrees, shown immediately on acceptance
	Power float64 // Current charge power; 0 whenever no shot is charging

	PowerAmmo     int
	PrecisionAmmo int
	ShotsFired    int // Total bullets fired this match, used for tie-breaks
}

// NewCannon creates a cannon for the given player at its fixed position.
func NewCannon(p PlayerID, rules Rules) *Cannon {
	c := &Cannon{Player: p, Pos: rules.CannonPos(p)}
	if p == Player2 {
		c.Angle = 180
	}
	c.ResetAmmo(rules)
	return c
}

// ResetAmmo restores the per-round starting ammunition counts.
func (c *Cannon) ResetAmmo(rules Rules) {
	c.PowerAmmo = rules.PowerAmmo
	c.PrecisionAmmo = rules.PrecisionAmmo
}

// HasAmmo reports whether a bullet of the given type is available.
func (c *Cannon) HasAmmo(t BulletType) bool {
	if t == BulletPower {
		return c.PowerAmmo > 0
	}
	return c.PrecisionAmmo > 0
}

// ConsumeAmmo decrements the counter for the given bullet type and bumps the
// shots-fired counter. Callers must check HasAmmo first; counts never go
// negative.
func (c *Cannon) ConsumeAmmo(t BulletType) {
	if t == BulletPower {
		if c.PowerAmmo > 0 {
			c.PowerAmmo--
		}
	} else {
		if c.PrecisionAmmo > 0 {
			c.PrecisionAmmo--
		}
	}
	c.ShotsFired++
}
