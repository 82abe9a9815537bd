// Package sim implements the per-frame earliest-collision advance
// described in spec.md §4.4 — the core of the simulator.
package sim

import (
	"math"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/board"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/gadget"
	"github.com/lguibr/pinball/internal/geom"
)

// category orders tie-broken simultaneous collisions (spec.md §4.4:
// "Tie-break priority: ball-ball, then bumper, then wall, then
// absorber, then portal, then flipper").
type category int

const (
	catBallBall category = iota
	catBumper
	catWall
	catAbsorber
	catPortal
	catFlipper
)

type candidate struct {
	tau      float64
	cat      category
	ballIdx  int
	otherIdx int // second ball index, for catBallBall
	bumper   *gadget.Bumper
	absorber *gadget.Absorber
	portal   *gadget.Portal
	flipper  *gadget.Flipper
	wall     board.Wall
}

// Step advances b by one frame budget (cfg.FrameBudget), resolving
// collisions in earliest-time order and integrating friction/gravity
// once at the end.
func Step(b *board.Board, cfg config.Config, handoff Handoff) {
	b.MarkStarted()
	delta := cfg.FrameBudget.Seconds()

	for delta >= cfg.EpsilonNow {
		balls := b.Balls()
		if len(balls) == 0 {
			advanceFlippersOnly(b, cfg, delta)
			break
		}

		best, tau := earliestCollision(b, cfg, balls, delta)
		if best == nil || tau >= delta {
			advanceAll(b, balls, delta, cfg)
			delta = 0
			break
		}

		advanceAll(b, balls, tau, cfg)
		balls = b.Balls()
		resolve(b, cfg, handoff, *best, balls)
		delta -= tau
	}

	integrateFrictionGravity(b, cfg)
}

func advanceFlippersOnly(b *board.Board, cfg config.Config, dt float64) {
	for _, f := range b.Flippers() {
		f.Step(dt, cfg)
	}
}

func advanceAll(b *board.Board, balls []ball.Ball, dt float64, cfg config.Config) {
	next := make([]ball.Ball, len(balls))
	for i, bl := range balls {
		next[i] = bl.Advance(dt)
	}
	b.ReplaceBalls(next)
	for _, f := range b.Flippers() {
		f.Step(dt, cfg)
	}
}

// earliestCollision scans every (ball, obstacle) pair within delta
// foresight and returns the lowest-τ candidate, tie-broken by
// category when multiple pairs land within cfg.EpsilonHit of the
// minimum (spec.md §9 Open Question (a): resolved one at a time, not
// batched, as the source does).
func earliestCollision(b *board.Board, cfg config.Config, balls []ball.Ball, delta float64) (*candidate, float64) {
	var candidates []candidate
	minTau := math.Inf(1)

	consider := func(c candidate) {
		if c.tau < minTau {
			minTau = c.tau
		}
		candidates = append(candidates, c)
	}

	for i := range balls {
		circI := balls[i].Circle(cfg)

		for j := i + 1; j < len(balls); j++ {
			rel := balls[i].Velocity.Sub(balls[j].Velocity)
			staticJ := geom.Circle{Center: balls[j].Position, Radius: balls[j].Circle(cfg).Radius}
			t := geom.TimeToCircle(staticJ, circI, rel)
			if t <= delta {
				consider(candidate{tau: t, cat: catBallBall, ballIdx: i, otherIdx: j})
			}
		}

		for _, bp := range b.Bumpers() {
			if t := bp.TimeToHit(balls[i], cfg, delta); t <= delta {
				consider(candidate{tau: t, cat: catBumper, ballIdx: i, bumper: bp})
			}
		}

		for _, w := range allWalls() {
			seg := b.WallSegment(w)
			if t := geom.TimeToSegment(seg, circI, balls[i].Velocity); t <= delta {
				consider(candidate{tau: t, cat: catWall, ballIdx: i, wall: w})
			}
		}

		for _, ab := range b.Absorbers() {
			if t := ab.TimeToHit(balls[i], cfg, delta); t <= delta {
				consider(candidate{tau: t, cat: catAbsorber, ballIdx: i, absorber: ab})
			}
		}

		for _, pt := range b.Portals() {
			if !pt.IsLocal() && !b.PortalLive(pt.GadgetName()) {
				continue // not eligible: dead remote peer, ball passes through untouched
			}
			if t := pt.TimeToHit(balls[i], cfg, delta); t <= delta {
				consider(candidate{tau: t, cat: catPortal, ballIdx: i, portal: pt})
			}
		}

		for _, fl := range b.Flippers() {
			if t := fl.TimeToHit(balls[i], cfg, delta); t <= delta {
				consider(candidate{tau: t, cat: catFlipper, ballIdx: i, flipper: fl})
			}
		}
	}

	if len(candidates) == 0 {
		return nil, math.Inf(1)
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		withinTie := c.tau <= minTau+cfg.EpsilonHit
		bestWithinTie := best.tau <= minTau+cfg.EpsilonHit
		switch {
		case withinTie && bestWithinTie:
			if c.cat < best.cat {
				best = c
			}
		case c.tau < best.tau:
			best = c
		}
	}
	return &best, best.tau
}

func allWalls() []board.Wall { return []board.Wall{board.Left, board.Right, board.Top, board.Bottom} }
