package sim

import (
	"sync"
	"time"

	"github.com/lguibr/pinball/internal/actor"
	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/board"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/gadget"
	"github.com/lguibr/pinball/internal/geom"
	"github.com/lguibr/pinball/internal/input"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func newInboundBall(name string, pos, vel geom.Vector2) ball.Ball {
	return ball.Ball{Name: name, Position: pos, Velocity: vel}
}

// addInboundBall inserts bl under its sender-given name, falling back
// to a uuid-disambiguated name if it collides with a ball already
// present on this board (names are only guaranteed board-unique per
// board, spec.md §3, not across the whole relay topology).
func addInboundBall(b *board.Board, bl ball.Ball) {
	if err := b.AddBall(bl); err != nil {
		bl.Name = bl.Name + "-" + uuid.NewString()[:8]
		_ = b.AddBall(bl)
	}
}

// BoardActor owns one board's state exclusively (spec.md §5: "All
// mutations of board state occur on the simulation actor"). It drives
// Step on its own ticker and applies relay/key events between frames.
type BoardActor struct {
	Board   *board.Board
	Cfg     config.Config
	Handoff Handoff

	mu       sync.Mutex
	ticker   *time.Ticker
	stopCh   chan struct{}
	selfPID  *actor.PID
	engine   *actor.Engine
}

// NewBoardActorProducer returns a Producer suitable for Engine.Spawn.
func NewBoardActorProducer(b *board.Board, cfg config.Config, handoff Handoff) actor.Producer {
	if handoff == nil {
		handoff = NoHandoff{}
	}
	return func() actor.Actor {
		return &BoardActor{Board: b, Cfg: cfg, Handoff: handoff, stopCh: make(chan struct{})}
	}
}

func (a *BoardActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case actor.Started:
		a.selfPID = ctx.Self()
		a.engine = ctx.Engine()
		a.startTicker()

	case actor.Stopping:
		a.stopTicker()

	case Tick:
		Step(a.Board, a.Cfg, a.Handoff)

	case TriggerKey:
		a.Board.TriggerByName(msg.Action, a.Cfg)

	case JoinWall:
		if evicted, had := a.Board.Join(msg.Wall, msg.RemoteBoard); had && evicted != "" {
			logrus.WithFields(logrus.Fields{"wall": msg.Wall, "evicted": evicted}).Info("wall join evicted prior neighbour")
		}

	case UnjoinWall:
		a.Board.Unjoin(msg.Wall)

	case PortalLiveness:
		a.Board.SetPortalLive(msg.PortalName, msg.Live)

	case InboundWallBall:
		a.injectWallBall(msg)

	case InboundPortalBall:
		a.injectPortalBall(msg)
	}
}

func (a *BoardActor) startTicker() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ticker != nil {
		return
	}
	a.ticker = time.NewTicker(a.Cfg.FrameBudget)
	tickerCh := a.ticker.C
	stopCh := a.stopCh
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("panic", r).Error("board actor ticker goroutine recovered")
			}
		}()
		for {
			select {
			case <-stopCh:
				return
			case _, ok := <-tickerCh:
				if !ok {
					return
				}
				if a.engine != nil && a.selfPID != nil {
					a.engine.Send(a.selfPID, Tick{}, nil)
				}
			}
		}
	}()
}

// WireInput starts forwarding src's trigger names to this actor as
// TriggerKey messages, translating the external key-event plumbing
// (spec.md §1 Non-goal) into the one message type the simulation
// actor already understands. Call after the actor has started.
func (a *BoardActor) WireInput(src input.TriggerSource) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("panic", r).Error("board actor input forwarder recovered")
			}
		}()
		for action := range src.Triggers() {
			a.mu.Lock()
			engine, self := a.engine, a.selfPID
			a.mu.Unlock()
			if engine != nil && self != nil {
				engine.Send(self, TriggerKey{Action: action}, nil)
			}
		}
	}()
}

func (a *BoardActor) stopTicker() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	close(a.stopCh)
	a.ticker = nil
}

// injectWallBall re-anchors an incoming ball at the receiving wall,
// preserving the tangential coordinate and snapping the normal
// component to half the ball radius inside the board (spec.md §6
// teleportWall=).
func (a *BoardActor) injectWallBall(msg InboundWallBall) {
	size := a.Board.Size()
	r := a.Cfg.BallRadius
	var pos geom.Vector2
	switch msg.Wall {
	case board.Left:
		pos = geom.Vector2{X: r / 2, Y: clampTangent(msg.Tangent, size)}
	case board.Right:
		pos = geom.Vector2{X: size - r/2, Y: clampTangent(msg.Tangent, size)}
	case board.Top:
		pos = geom.Vector2{X: clampTangent(msg.Tangent, size), Y: r / 2}
	case board.Bottom:
		pos = geom.Vector2{X: clampTangent(msg.Tangent, size), Y: size - r/2}
	}
	addInboundBall(a.Board, newInboundBall(msg.Name, pos, geom.Vector2{X: msg.VX, Y: msg.VY}))
}

// clampTangent keeps the preserved tangent coordinate within the
// destination wall's span; a ball that crossed at a corner on the
// sender's side has undefined behaviour upstream (spec.md §9 Open
// Question (c)), so this is the one place that decision is enforced.
func clampTangent(t, size float64) float64 {
	if t < 0 {
		return 0
	}
	if t > size {
		return size
	}
	return t
}

func (a *BoardActor) injectPortalBall(msg InboundPortalBall) {
	g, ok := a.Board.GadgetByName(msg.PortalName)
	if !ok {
		return
	}
	pt, ok := g.(*gadget.Portal)
	if !ok {
		return
	}
	addInboundBall(a.Board, newInboundBall(msg.Name, pt.Position(), geom.Vector2{X: msg.VX, Y: msg.VY}))
}
