package gadget

import (
	"math"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/config"
)

// TimeToHit dispatches on the gadget's concrete type via a type
// switch rather than an interface method call, so the simulator's
// per-frame hot loop stays branch-predictable across a board's mixed
// gadget set (spec.md §9 "Polymorphic gadget set").
func TimeToHit(g Gadget, bl ball.Ball, cfg config.Config, delta float64) float64 {
	switch v := g.(type) {
	case *Bumper:
		return v.TimeToHit(bl, cfg, delta)
	case *Absorber:
		return v.TimeToHit(bl, cfg, delta)
	case *Portal:
		return v.TimeToHit(bl, cfg, delta)
	case *Flipper:
		return v.TimeToHit(bl, cfg, delta)
	default:
		return math.Inf(1)
	}
}

// ResolveHit dispatches a confirmed collision to the concrete
// gadget's resolution logic. Absorbers and portals have no generic
// reflection behaviour; callers handle capture/teleport themselves
// after detecting those kinds and are not expected to call ResolveHit
// on them.
func ResolveHit(g Gadget, bl ball.Ball, cfg config.Config) ball.Ball {
	switch v := g.(type) {
	case *Bumper:
		return v.ResolveHit(bl, cfg)
	case *Flipper:
		return v.ResolveHit(bl, cfg)
	default:
		return bl
	}
}

// Rejects dispatches a placement-validity check: whether bl's current
// position overlaps the gadget.
func Rejects(g Gadget, bl ball.Ball, cfg config.Config) bool {
	switch v := g.(type) {
	case *Bumper:
		return v.Rejects(bl, cfg)
	case *Absorber:
		return v.Rejects(bl, cfg)
	case *Portal:
		return v.Rejects(bl, cfg)
	case *Flipper:
		return v.Rejects(bl, cfg)
	default:
		return false
	}
}
