// Package config holds the tunable parameters of a board's physics
// and the epsilon table used throughout the simulator, grounded on the
// teacher's utils.Config / DefaultConfig pattern.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries every numeric knob a board needs. Per-board values
// (Gravity, Friction1, Friction2) may be overridden by the board file;
// the rest are process-wide defaults.
type Config struct {
	// Board geometry (spec.md §3).
	BoardSize  float64 `yaml:"boardSize"`  // L, the playfield side length
	BallRadius float64 `yaml:"ballRadius"` // 0.25 L
	MaxSpeed   float64 `yaml:"maxSpeed"`   // 500 L/s velocity clamp

	// Default physics, overridable per board file.
	Gravity   float64 `yaml:"gravity"`
	Friction1 float64 `yaml:"friction1"`
	Friction2 float64 `yaml:"friction2"`

	// Flipper.
	FlipperAngularVelocityDeg float64 `yaml:"flipperAngularVelocityDeg"` // 1080 deg/s
	FlipperRestitution        float64 `yaml:"flipperRestitution"`        // k = 0.95

	// Absorber emission.
	AbsorberEmitSpeed float64 `yaml:"absorberEmitSpeed"` // 50 L/s, downward

	// Simulation cadence.
	FrameBudget time.Duration `yaml:"frameBudget"` // Δ, ~20ms

	// Epsilon table (spec.md §9 "Time-to-collision numerical care").
	EpsilonNow         float64 `yaml:"epsilonNow"`         // 1e-14, "now"
	EpsilonHit         float64 `yaml:"epsilonHit"`         // 1e-12, imminent hit
	EpsilonDegenerate  float64 `yaml:"epsilonDegenerate"`  // 1e-16, guard tiny denominators
	PositionTolerance  float64 `yaml:"positionTolerance"`  // 1e-9, analytical-match tolerance
	TangentGuard       float64 `yaml:"tangentGuard"`       // 1e-7, near-tangent classification
	VelocityClampFloor float64 `yaml:"velocityClampFloor"` // 1e-3, avoid div-by-zero on near-zero speed
}

// Default returns the spec.md defaults.
func Default() Config {
	return Config{
		BoardSize:  20,
		BallRadius: 0.25,
		MaxSpeed:   500,

		Gravity:   25,
		Friction1: 0.025,
		Friction2: 0.025,

		FlipperAngularVelocityDeg: 1080,
		FlipperRestitution:        0.95,

		AbsorberEmitSpeed: 50,

		FrameBudget: 20 * time.Millisecond,

		EpsilonNow:         1e-14,
		EpsilonHit:         1e-12,
		EpsilonDegenerate:  1e-16,
		PositionTolerance:  1e-9,
		TangentGuard:       1e-7,
		VelocityClampFloor: 1e-3,
	}
}

// LoadFile layers a YAML override file on top of Default().
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
