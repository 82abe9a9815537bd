package gadget

import (
	"math"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/geom"
)

// Flipper is a 2L line segment hinged at pivot, spec.md §3 "Flipper".
// Left flippers rotate counter-clockwise from rest to engaged; right
// flippers rotate clockwise. It carries its own angular velocity sign
// (direction) while mid-flip and is otherwise at rest.
type Flipper struct {
	name   string
	pivot  geom.Vector2
	length float64

	restAngle    geom.Angle
	engagedAngle geom.Angle
	sweepSign    float64 // sign of (engagedAngle-restAngle): +1 if engaged is the larger angle, -1 otherwise

	angle     geom.Angle
	direction float64 // +1 toward engaged, -1 toward rest, 0 resting
}

const flipperLength = 2.0

// NewLeftFlipper hinges at the top-left of its cell and swings from
// horizontal (pointing right, rest) up to vertical (engaged).
func NewLeftFlipper(name string, gx, gy int) *Flipper {
	pivot := geom.Vector2{X: float64(gx), Y: float64(gy)}
	return newFlipper(name, pivot, geom.Deg0, geom.Angle(-math.Pi/2))
}

// NewRightFlipper hinges at the top-right of its cell and swings from
// horizontal (pointing left, rest) up to vertical (engaged), mirroring
// the left flipper's rotation sense.
func NewRightFlipper(name string, gx, gy int) *Flipper {
	pivot := geom.Vector2{X: float64(gx) + 1, Y: float64(gy)}
	return newFlipper(name, pivot, geom.Angle(math.Pi), geom.Angle(math.Pi+math.Pi/2))
}

func newFlipper(name string, pivot geom.Vector2, rest, engaged geom.Angle) *Flipper {
	sweepSign := 1.0
	if engaged < rest {
		sweepSign = -1.0
	}
	return &Flipper{
		name:         name,
		pivot:        pivot,
		length:       flipperLength,
		restAngle:    rest,
		engagedAngle: engaged,
		sweepSign:    sweepSign,
		angle:        rest,
	}
}

func (f *Flipper) GadgetName() string   { return f.name }
func (f *Flipper) GadgetKind() Kind     { return KindFlipper }
func (f *Flipper) Pivot() geom.Vector2  { return f.pivot }
func (f *Flipper) Angle() geom.Angle    { return f.angle }
func (f *Flipper) IsMoving() bool       { return f.direction != 0 }

func (f *Flipper) omega(cfg config.Config) float64 {
	return float64(geom.FromDegrees(cfg.FlipperAngularVelocityDeg))
}

// signedOmega is the flipper's current angular velocity including
// direction of travel (toward engaged or toward rest) and the sweep's
// own sign (which way "toward engaged" turns for this flipper).
func (f *Flipper) signedOmega(cfg config.Config) float64 {
	return f.direction * f.sweepSign * f.omega(cfg)
}

func (f *Flipper) segment() geom.Segment {
	tip := f.pivot.Add(geom.Vector2{X: math.Cos(float64(f.angle)), Y: math.Sin(float64(f.angle))}.Scale(f.length))
	return geom.Segment{P1: f.pivot, P2: tip}
}

func (f *Flipper) target() geom.Angle {
	if f.direction > 0 {
		return f.engagedAngle
	}
	return f.restAngle
}

// Trigger starts a flip. A flip already in progress absorbs the event
// silently; only a resting flipper responds (spec.md §4.2: flipping
// cannot be interrupted mid-swing).
func (f *Flipper) Trigger() {
	if f.direction != 0 {
		return
	}
	if f.angle == f.restAngle {
		f.direction = 1
	} else {
		f.direction = -1
	}
}

// Step advances the flipper's angle by dt at its configured angular
// velocity, stopping exactly at rest or engaged.
func (f *Flipper) Step(dt float64, cfg config.Config) {
	if f.direction == 0 {
		return
	}
	delta := geom.Angle(f.signedOmega(cfg) * dt)
	next := f.angle + delta
	target := f.target()
	if (f.direction*f.sweepSign > 0 && next >= target) || (f.direction*f.sweepSign < 0 && next <= target) {
		f.angle = target
		f.direction = 0
		return
	}
	f.angle = next
}

// TimeToHit dispatches to the rotating or static primitive depending
// on whether the flipper is currently mid-swing.
func (f *Flipper) TimeToHit(bl ball.Ball, cfg config.Config, delta float64) float64 {
	circ := bl.Circle(cfg)
	if !f.IsMoving() {
		return geom.TimeToSegment(f.segment(), circ, bl.Velocity)
	}
	omega := f.signedOmega(cfg)
	return geom.TimeToRotatingSegment(f.segment(), f.pivot, omega, circ, bl.Velocity, delta)
}

// ResolveHit reflects the ball off the flipper's current segment,
// imparting the flipper's tangential velocity when mid-swing.
func (f *Flipper) ResolveHit(bl ball.Ball, cfg config.Config) ball.Ball {
	if !f.IsMoving() {
		return bl.WithVelocity(geom.ReflectSegment(f.segment(), bl.Velocity))
	}
	omega := f.signedOmega(cfg)
	v := geom.ReflectRotatingSegment(f.segment(), f.pivot, omega, bl.Position, bl.Velocity, cfg.FlipperRestitution)
	return bl.WithVelocity(v)
}

// Rejects reports whether p lies within the flipper's swept disc,
// used only to refuse obviously-impossible teleport placements.
func (f *Flipper) Rejects(bl ball.Ball, cfg config.Config) bool {
	return bl.Position.Sub(f.pivot).Length() < f.length+bl.Circle(cfg).Radius
}
