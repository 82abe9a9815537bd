package gadget

import (
	"math"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/geom"
)

// Bumper is an immutable static obstacle: square, circle or triangle
// (spec.md §3 "Bumper"). It is internally decomposed into segments and
// corner-circles once at construction.
type Bumper struct {
	kind        Kind
	name        string
	topLeft     geom.Vector2 // integer-grid top-left corner
	orientation geom.Angle   // only meaningful for triangles

	segments []geom.Segment
	corners  []geom.Circle // radius-0 points, and the full circle for KindCircleBumper
}

func (b *Bumper) GadgetName() string { return b.name }
func (b *Bumper) GadgetKind() Kind   { return b.kind }
func (b *Bumper) TopLeft() geom.Vector2 { return b.topLeft }

// NewSquareBumper builds a 1x1 square bumper whose top-left corner sits
// at the given integer grid coordinates.
func NewSquareBumper(name string, gx, gy int) *Bumper {
	tl := geom.Vector2{X: float64(gx), Y: float64(gy)}
	corners := []geom.Vector2{
		tl,
		tl.Add(geom.Vector2{X: 1}),
		tl.Add(geom.Vector2{X: 1, Y: 1}),
		tl.Add(geom.Vector2{Y: 1}),
	}
	return &Bumper{
		kind:     KindSquareBumper,
		name:     name,
		topLeft:  tl,
		segments: ringSegments(corners),
		corners:  cornerCircles(corners),
	}
}

// NewCircleBumper builds a bumper whose circle has diameter 1 L
// centered in the unit grid cell at (gx, gy).
func NewCircleBumper(name string, gx, gy int) *Bumper {
	tl := geom.Vector2{X: float64(gx), Y: float64(gy)}
	center := tl.Add(geom.Vector2{X: 0.5, Y: 0.5})
	return &Bumper{
		kind:    KindCircleBumper,
		name:    name,
		topLeft: tl,
		corners: []geom.Circle{{Center: center, Radius: 0.5}},
	}
}

// NewTriangleBumper builds a right-triangle bumper occupying the unit
// cell at (gx, gy), with the right angle's position set by
// orientation (0/90/180/270 degrees).
func NewTriangleBumper(name string, gx, gy int, orientation geom.Angle) *Bumper {
	tl := geom.Vector2{X: float64(gx), Y: float64(gy)}
	topLeft := tl
	topRight := tl.Add(geom.Vector2{X: 1})
	bottomRight := tl.Add(geom.Vector2{X: 1, Y: 1})
	bottomLeft := tl.Add(geom.Vector2{Y: 1})

	var corners []geom.Vector2
	switch cardinal, _ := orientation.NearCardinal(1e-6); cardinal {
	case geom.Deg90:
		corners = []geom.Vector2{topLeft, topRight, bottomLeft}
	case geom.Deg180:
		corners = []geom.Vector2{topRight, bottomRight, topLeft}
	case geom.Deg270:
		corners = []geom.Vector2{bottomRight, bottomLeft, topRight}
	default: // Deg0
		corners = []geom.Vector2{topLeft, bottomRight, bottomLeft}
	}

	return &Bumper{
		kind:        KindTriangleBumper,
		name:        name,
		topLeft:     tl,
		orientation: orientation,
		segments:    ringSegments(corners),
		corners:     cornerCircles(corners),
	}
}

func ringSegments(pts []geom.Vector2) []geom.Segment {
	segs := make([]geom.Segment, len(pts))
	for i := range pts {
		segs[i] = geom.Segment{P1: pts[i], P2: pts[(i+1)%len(pts)]}
	}
	return segs
}

func cornerCircles(pts []geom.Vector2) []geom.Circle {
	circles := make([]geom.Circle, len(pts))
	for i, p := range pts {
		circles[i] = geom.Circle{Center: p, Radius: 0}
	}
	return circles
}

// TimeToHit returns the minimum time-to-collision over every segment
// and corner circle (spec.md §4.2).
func (b *Bumper) TimeToHit(bl ball.Ball, cfg config.Config, delta float64) float64 {
	best := math.Inf(1)
	circ := bl.Circle(cfg)
	for _, seg := range b.segments {
		if t := geom.TimeToSegment(seg, circ, bl.Velocity); t < best {
			best = t
		}
	}
	for _, c := range b.corners {
		if t := geom.TimeToCircle(c, circ, bl.Velocity); t < best {
			best = t
		}
	}
	return best
}

// ResolveHit reflects bl off whichever surface is currently imminent
// (time-to-hit below cfg.EpsilonHit).
func (b *Bumper) ResolveHit(bl ball.Ball, cfg config.Config) ball.Ball {
	circ := bl.Circle(cfg)
	for _, seg := range b.segments {
		if geom.TimeToSegment(seg, circ, bl.Velocity) <= cfg.EpsilonHit {
			return bl.WithVelocity(geom.ReflectSegment(seg, bl.Velocity))
		}
	}
	for _, c := range b.corners {
		if geom.TimeToCircle(c, circ, bl.Velocity) <= cfg.EpsilonHit {
			return bl.WithVelocity(geom.ReflectCircle(c.Center, bl.Position, bl.Velocity))
		}
	}
	return bl
}

// Rejects reports whether bl's current position overlaps this
// bumper's occupied unit cell.
func (b *Bumper) Rejects(bl ball.Ball, cfg config.Config) bool {
	if b.kind == KindCircleBumper {
		center := b.corners[0].Center
		return bl.Position.Sub(center).Length() < 0.5+bl.Circle(cfg).Radius
	}
	// Square and triangle both occupy (a subset of) the unit cell; the
	// bounding box test is a deliberate over-approximation for
	// triangles, consistent with Rejects being used only to refuse
	// obviously-impossible teleport placements.
	return bl.Position.X > b.topLeft.X && bl.Position.X < b.topLeft.X+1 &&
		bl.Position.Y > b.topLeft.Y && bl.Position.Y < b.topLeft.Y+1
}
