package config

import (
	_ "embed"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// DefaultMatchConfig returns the default match configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Field: FieldConfig{
			Width:        800,
			Height:       600,
			BallRadius:   20,
			CannonRadius: 30,
			SpawnJitter:  5,
		},
		Physics: PhysicsConfig{
			Friction:  0.995,
			StopSpeed: 0.1,
		},
		Bullets: BulletsConfig{
			Radius:        5,
			Speed:         15,
			MaxPower:      30,
			PowerStep:     0.13,
			PowerAngleErr: 5,
			PowerFactor:   1.5,
		},
		Turns: TurnsConfig{
			PowerAmmo:     5,
			PrecisionAmmo: 10,
			DelaySeconds:  0.6,
		},
		Match: MatchRules{
			WinningScore: 3,
			Seconds:      60,
		},
	}
}

// GetDefaultYAML returns the embedded default match YAML.
func GetDefaultYAML() []byte {
	return defaultMatchYAML
}
