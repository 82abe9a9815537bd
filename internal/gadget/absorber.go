package gadget

import (
	"math"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/geom"
)

// Absorber occupies a rectangular region and queues captured balls by
// name (spec.md §3 "Absorber"). The queue is mutated in place, unlike
// the rest of the static gadget set.
type Absorber struct {
	name          string
	topLeft       geom.Vector2
	width, height float64
	queue         []string
}

// NewAbsorber builds an absorber whose top-left corner sits at integer
// grid coordinates (gx, gy) and whose width/height are given in L.
func NewAbsorber(name string, gx, gy, width, height int) *Absorber {
	return &Absorber{
		name:    name,
		topLeft: geom.Vector2{X: float64(gx), Y: float64(gy)},
		width:   float64(width),
		height:  float64(height),
	}
}

func (a *Absorber) GadgetName() string  { return a.name }
func (a *Absorber) GadgetKind() Kind    { return KindAbsorber }
func (a *Absorber) TopLeft() geom.Vector2 { return a.topLeft }
func (a *Absorber) Width() float64      { return a.width }
func (a *Absorber) Height() float64     { return a.height }

// Queue returns the FIFO-ordered names of currently-captured balls.
func (a *Absorber) Queue() []string {
	out := make([]string, len(a.queue))
	copy(out, a.queue)
	return out
}

func (a *Absorber) rect() (left, top, right, bottom float64) {
	return a.topLeft.X, a.topLeft.Y, a.topLeft.X + a.width, a.topLeft.Y + a.height
}

// Contains reports whether p lies within the absorber's rectangle.
func (a *Absorber) Contains(p geom.Vector2) bool {
	left, top, right, bottom := a.rect()
	return p.X >= left && p.X <= right && p.Y >= top && p.Y <= bottom
}

// TimeToHit excludes balls already inside the absorber (spec.md §4.2:
// "time_to_hit excludes balls already inside it, returns +Inf").
func (a *Absorber) TimeToHit(bl ball.Ball, cfg config.Config, delta float64) float64 {
	if a.Contains(bl.Position) {
		return math.Inf(1)
	}
	circ := bl.Circle(cfg)
	left, top, right, bottom := a.rect()
	segs := []geom.Segment{
		{P1: geom.Vector2{X: left, Y: top}, P2: geom.Vector2{X: right, Y: top}},
		{P1: geom.Vector2{X: right, Y: top}, P2: geom.Vector2{X: right, Y: bottom}},
		{P1: geom.Vector2{X: right, Y: bottom}, P2: geom.Vector2{X: left, Y: bottom}},
		{P1: geom.Vector2{X: left, Y: bottom}, P2: geom.Vector2{X: left, Y: top}},
	}
	best := math.Inf(1)
	for _, s := range segs {
		if t := geom.TimeToSegment(s, circ, bl.Velocity); t < best {
			best = t
		}
	}
	corners := []geom.Vector2{
		{X: left, Y: top}, {X: right, Y: top}, {X: right, Y: bottom}, {X: left, Y: bottom},
	}
	for _, c := range corners {
		if t := geom.TimeToCircle(geom.Circle{Center: c}, circ, bl.Velocity); t < best {
			best = t
		}
	}
	return best
}

// Rejects reports whether p already overlaps the absorber's region.
func (a *Absorber) Rejects(bl ball.Ball, cfg config.Config) bool {
	return a.Contains(bl.Position)
}

// Capture removes the ball from the free list (handled by the caller)
// and appends its name to the FIFO queue.
func (a *Absorber) Capture(name string) {
	a.queue = append(a.queue, name)
}

// Emit pops the oldest queued ball name and returns the spawn position
// and velocity for it (spec.md §4.2: bottom-right corner inset by the
// ball radius, velocity (0,-50)). ok is false if the queue is empty.
func (a *Absorber) Emit(cfg config.Config) (name string, pos geom.Vector2, vel geom.Vector2, ok bool) {
	if len(a.queue) == 0 {
		return "", geom.Vector2{}, geom.Vector2{}, false
	}
	name = a.queue[0]
	a.queue = a.queue[1:]
	_, _, right, bottom := a.rect()
	r := ball.Radius(cfg)
	pos = geom.Vector2{X: right - r, Y: bottom - r}
	vel = geom.Vector2{X: 0, Y: -cfg.AbsorberEmitSpeed}
	return name, pos, vel, true
}
