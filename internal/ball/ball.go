// Package ball defines the Ball value type shared by the gadget,
// board and simulator packages (spec.md §3 "Ball").
package ball

import (
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/geom"
)

// Ball is an immutable value: a board-unique name, its center position
// and its velocity. The board rewrites its ball list each frame rather
// than mutating Ball in place (spec.md §9 "Balls as values").
type Ball struct {
	Name     string
	Position geom.Vector2
	Velocity geom.Vector2
}

// Radius is fixed across all balls (spec.md §3: "Balls have radius
// 0.25 L").
func Radius(cfg config.Config) float64 { return cfg.BallRadius }

// Circle returns the ball's current bounding circle.
func (b Ball) Circle(cfg config.Config) geom.Circle {
	return geom.Circle{Center: b.Position, Radius: Radius(cfg)}
}

// ClampSpeed bounds the ball's velocity magnitude to cfg.MaxSpeed
// (spec.md §3: "Velocity magnitude is bounded by 500 L/s").
func (b Ball) ClampSpeed(cfg config.Config) Ball {
	b.Velocity = geom.ClampLength(b.Velocity, cfg.MaxSpeed)
	return b
}

// WithVelocity returns a copy of b with velocity replaced.
func (b Ball) WithVelocity(v geom.Vector2) Ball {
	b.Velocity = v
	return b
}

// WithPosition returns a copy of b with position replaced.
func (b Ball) WithPosition(p geom.Vector2) Ball {
	b.Position = p
	return b
}

// Advance moves the ball by velocity*dt.
func (b Ball) Advance(dt float64) Ball {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	return b
}
