package sim

import (
	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/board"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/gadget"
	"github.com/lguibr/pinball/internal/geom"
)

// resolve applies the effect of a single confirmed collision
// (spec.md §4.4 "Collision resolution details") and updates the
// board's ball list accordingly.
func resolve(b *board.Board, cfg config.Config, handoff Handoff, c candidate, balls []ball.Ball) {
	switch c.cat {
	case catBallBall:
		resolveBallBall(b, balls, c)
	case catBumper:
		balls[c.ballIdx] = gadget.ResolveHit(c.bumper, balls[c.ballIdx], cfg)
		b.ReplaceBalls(balls)
	case catWall:
		resolveWall(b, cfg, handoff, balls, c)
	case catAbsorber:
		resolveAbsorber(b, cfg, balls, c)
	case catPortal:
		resolvePortal(b, cfg, handoff, balls, c)
	case catFlipper:
		resolveFlipper(b, cfg, balls, c)
	}
}

func resolveBallBall(b *board.Board, balls []ball.Ball, c candidate) {
	a, bb := balls[c.ballIdx], balls[c.otherIdx]
	newA, newB := geom.ElasticExchange(a.Position, a.Velocity, bb.Position, bb.Velocity)
	balls[c.ballIdx] = a.WithVelocity(newA)
	balls[c.otherIdx] = bb.WithVelocity(newB)
	b.ReplaceBalls(balls)
}

func resolveWall(b *board.Board, cfg config.Config, handoff Handoff, balls []ball.Ball, c candidate) {
	bl := balls[c.ballIdx]
	remote, joined := b.JoinState()[c.wall]
	if joined && remote != "" {
		handoff.TeleportWall(remote, bl.Name, bl.Velocity, bl.Position.X, bl.Position.Y, c.wall)
		balls = append(append([]ball.Ball{}, balls[:c.ballIdx]...), balls[c.ballIdx+1:]...)
		b.ReplaceBalls(balls)
		return
	}
	seg := b.WallSegment(c.wall)
	balls[c.ballIdx] = bl.WithVelocity(geom.ReflectSegment(seg, bl.Velocity))
	b.ReplaceBalls(balls)
}

func resolveAbsorber(b *board.Board, cfg config.Config, balls []ball.Ball, c candidate) {
	bl := balls[c.ballIdx]
	if c.absorber.Contains(bl.Position) {
		return // already captured by an earlier resolution this frame
	}
	balls = append(append([]ball.Ball{}, balls[:c.ballIdx]...), balls[c.ballIdx+1:]...)
	b.ReplaceBalls(balls)
	c.absorber.Capture(bl.Name)

	fired := map[string]bool{}
	b.FireCascade(c.absorber.GadgetName(), cfg, fired)
}

func resolvePortal(b *board.Board, cfg config.Config, handoff Handoff, balls []ball.Ball, c candidate) {
	bl := balls[c.ballIdx]
	pt := c.portal

	if pt.IsLocal() {
		if peer, ok := b.GadgetByName(pt.PeerPortal()); ok {
			if peerPortal, ok := peer.(*gadget.Portal); ok {
				pos, vel := pt.EmitAt(peerPortal, bl.Velocity)
				balls[c.ballIdx] = bl.WithPosition(pos).WithVelocity(vel)
				b.ReplaceBalls(balls)
				return
			}
		}
		passOver(b, balls, c.ballIdx, bl, cfg)
		return
	}

	if b.PortalLive(pt.GadgetName()) {
		handoff.TeleportPortal(pt.RemoteBoard(), bl.Name, bl.Velocity, pt.PeerPortal())
		balls = append(append([]ball.Ball{}, balls[:c.ballIdx]...), balls[c.ballIdx+1:]...)
		b.ReplaceBalls(balls)
		return
	}

	passOver(b, balls, c.ballIdx, bl, cfg)
}

// passOver nudges the ball a hair further along its own velocity so
// it registers as "contained" by the portal on the next sub-frame
// iteration; otherwise an unreachable portal would re-report the same
// zero-time touch forever (spec.md §8: "no infinite collision loop").
func passOver(b *board.Board, balls []ball.Ball, idx int, bl ball.Ball, cfg config.Config) {
	dir := bl.Velocity.Normalize()
	balls[idx] = bl.WithPosition(bl.Position.Add(dir.Scale(cfg.PositionTolerance)))
	b.ReplaceBalls(balls)
}

func resolveFlipper(b *board.Board, cfg config.Config, balls []ball.Ball, c candidate) {
	balls[c.ballIdx] = c.flipper.ResolveHit(balls[c.ballIdx], cfg)
	b.ReplaceBalls(balls)

	fired := map[string]bool{}
	b.FireCascade(c.flipper.GadgetName(), cfg, fired)
}

// integrateFrictionGravity applies the single post-loop friction and
// gravity update (spec.md §4.4 step 2):
// v ← v · max(0, 1 − μ1Δ − μ2|v|Δ) + (0, gΔ).
func integrateFrictionGravity(b *board.Board, cfg config.Config) {
	delta := cfg.FrameBudget.Seconds()
	balls := b.Balls()
	for i, bl := range balls {
		speed := bl.Velocity.Length()
		damping := 1 - b.Friction1()*delta - b.Friction2()*speed*delta
		if damping < 0 {
			damping = 0
		}
		v := bl.Velocity.Scale(damping).Add(geom.Vector2{X: 0, Y: b.Gravity() * delta})
		balls[i] = bl.WithVelocity(v).ClampSpeed(cfg)
	}
	b.ReplaceBalls(balls)
}
