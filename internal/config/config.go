// Package config provides YAML-based match configuration loading for the
// cannonball platform.
package config

import "github.com/vovakirdan/cannonball/internal/engine"

// MatchConfig contains all tunable parameters of a match.
type MatchConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Physics PhysicsConfig `yaml:"physics"`
	Bullets BulletsConfig `yaml:"bullets"`
	Turns   TurnsConfig   `yaml:"turns"`
	Match   MatchRules    `yaml:"match"`
}

// FieldConfig defines the playing field geometry in simulation units.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BallRadius   float64 `yaml:"ball_radius"`
	CannonRadius float64 `yaml:"cannon_radius"`
	SpawnJitter  float64 `yaml:"spawn_jitter"`
}

// PhysicsConfig defines ball motion parameters.
type PhysicsConfig struct {
	Friction  float64 `yaml:"friction"`
	StopSpeed float64 `yaml:"stop_speed"`
}

// BulletsConfig defines projectile parameters.
type BulletsConfig struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	MaxPower      float64 `yaml:"max_power"`
	PowerStep     float64 `yaml:"power_step"`
	PowerAngleErr float64 `yaml:"power_angle_err"`
	PowerFactor   float64 `yaml:"power_factor"`
}

// TurnsConfig defines the per-round firing budget and pacing.
type TurnsConfig struct {
	PowerAmmo     int     `yaml:"power_ammo"`
	PrecisionAmmo int     `yaml:"precision_ammo"`
	DelaySeconds  float64 `yaml:"delay_seconds"`
}

// MatchRules defines win conditions.
type MatchRules struct {
	WinningScore int `yaml:"winning_score"`
	Seconds      int `yaml:"seconds"`
}

// ToRules converts the loaded configuration into engine rules.
func (c MatchConfig) ToRules() engine.Rules {
	return engine.Rules{
		FieldW:        c.Field.Width,
		FieldH:        c.Field.Height,
		BallRadius:    c.Field.BallRadius,
		CannonRadius:  c.Field.CannonRadius,
		SpawnJitter:   c.Field.SpawnJitter,
		Friction:      c.Physics.Friction,
		StopSpeed:     c.Physics.StopSpeed,
		BulletRadius:  c.Bullets.Radius,
		BulletSpeed:   c.Bullets.Speed,
		MaxPower:      c.Bullets.MaxPower,
		PowerStep:     c.Bullets.PowerStep,
		PowerAngleErr: c.Bullets.PowerAngleErr,
		PowerFactor:   c.Bullets.PowerFactor,
		PowerAmmo:     c.Turns.PowerAmmo,
		PrecisionAmmo: c.Turns.PrecisionAmmo,
		TurnDelay:     c.Turns.DelaySeconds,
		WinningScore:  c.Match.WinningScore,
		MatchSeconds:  c.Match.Seconds,
	}
}
