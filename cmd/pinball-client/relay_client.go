package main

import (
	"fmt"
	"net"

	"github.com/lguibr/pinball/internal/actor"
	"github.com/lguibr/pinball/internal/board"
	"github.com/lguibr/pinball/internal/geom"
	"github.com/lguibr/pinball/internal/sim"
	"github.com/lguibr/pinball/internal/wire"
	"github.com/sirupsen/logrus"
)

// relayClient is the board-side half of spec.md §4.5's wire protocol:
// it answers the handshake, then shuttles join/teleport/liveness
// messages between the relay connection and the board's own actor.
// It also implements sim.Handoff, turning the board's local wall/
// portal collisions into outbound wire messages.
type relayClient struct {
	conn     *wire.Conn
	boardPID *actor.PID
	engine   *actor.Engine
	name     string
}

// dialRelay performs the connect + getClientBoardName handshake
// (spec.md §4.5) and returns a relayClient not yet bound to a board
// actor; call bind once the board actor has been spawned, then run.
func dialRelay(addr, boardName string) (*relayClient, error) {
	raw, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	conn := wire.NewConn(raw)
	msg, err := conn.ReadMessage()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if _, ok := msg.(wire.GetClientBoardName); !ok {
		conn.Close()
		return nil, fmt.Errorf("pinball-client: relay handshake: expected getClientBoardName, got %T", msg)
	}
	if err := conn.WriteMessage(wire.ClientBoardName{Name: boardName}); err != nil {
		conn.Close()
		return nil, err
	}
	return &relayClient{conn: conn, name: boardName}, nil
}

// bind attaches the now-spawned board actor so inbound relay messages
// can be forwarded to it.
func (c *relayClient) bind(engine *actor.Engine, boardPID *actor.PID) {
	c.engine = engine
	c.boardPID = boardPID
}

// run consumes relay messages until the connection closes, translating
// each into the BoardActor message it implies (spec.md §5: "Incoming
// relay messages are applied between frames"). When the connection
// closes, every wall join is cleared and the board runs standalone.
func (c *relayClient) run() {
	for {
		msg, err := c.conn.ReadMessage()
		if err != nil {
			logrus.WithError(err).Warn("pinball-client: relay connection closed")
			for _, w := range []board.Wall{board.Left, board.Right, board.Top, board.Bottom} {
				c.send(sim.UnjoinWall{Wall: w})
			}
			return
		}
		c.dispatch(msg)
	}
}

func (c *relayClient) dispatch(msg wire.Message) {
	switch m := msg.(type) {
	case wire.AllConnectedBoards:
		logrus.WithField("boards", m.Boards).Debug("pinball-client: roster updated")

	case wire.JoinHorizontal:
		switch c.name {
		case m.Left:
			c.send(sim.JoinWall{Wall: board.Right, RemoteBoard: m.Right})
		case m.Right:
			c.send(sim.JoinWall{Wall: board.Left, RemoteBoard: m.Left})
		}

	case wire.JoinVertical:
		switch c.name {
		case m.Top:
			c.send(sim.JoinWall{Wall: board.Bottom, RemoteBoard: m.Bottom})
		case m.Bottom:
			c.send(sim.JoinWall{Wall: board.Top, RemoteBoard: m.Top})
		}

	case wire.DisconnectWall:
		if m.Board == c.name {
			c.send(sim.UnjoinWall{Wall: m.Wall})
		}

	case wire.ConnectPortal:
		c.send(sim.PortalLiveness{PortalName: m.PortalName, Live: true})

	case wire.DisconnectPortal:
		c.send(sim.PortalLiveness{PortalName: m.PortalName, Live: false})

	case wire.TeleportWall:
		c.send(sim.InboundWallBall{
			Name:    m.BallName,
			Tangent: wallTangent(m.Wall, m.X, m.Y),
			VX:      m.VX,
			VY:      m.VY,
			Wall:    m.Wall,
		})

	case wire.TeleportPortal:
		c.send(sim.InboundPortalBall{
			Name:       m.BallName,
			PortalName: m.PortalName,
			VX:         m.VX,
			VY:         m.VY,
		})

	case wire.Failure:
		logrus.Warn("pinball-client: relay reported failure")
	}
}

func wallTangent(w board.Wall, x, y float64) float64 {
	if w == board.Left || w == board.Right {
		return y
	}
	return x
}

func (c *relayClient) send(msg interface{}) {
	c.engine.Send(c.boardPID, msg, nil)
}

// TeleportWall implements sim.Handoff, forwarding a local wall
// collision to the relay for delivery to destBoard.
func (c *relayClient) TeleportWall(destBoard, ballName string, vel geom.Vector2, x, y float64, wall board.Wall) {
	_ = c.conn.WriteMessage(wire.TeleportWall{
		DestBoard: destBoard,
		BallName:  ballName,
		VX:        vel.X,
		VY:        vel.Y,
		X:         x,
		Y:         y,
		Wall:      wall,
	})
}

// TeleportPortal implements sim.Handoff for a local portal collision
// whose peer lives on a remote, currently-connected board.
func (c *relayClient) TeleportPortal(destBoard, ballName string, vel geom.Vector2, portalName string) {
	_ = c.conn.WriteMessage(wire.TeleportPortal{
		DestBoard:  destBoard,
		BallName:   ballName,
		VX:         vel.X,
		VY:         vel.Y,
		PortalName: portalName,
	})
}

func (c *relayClient) Close() error {
	_ = c.conn.WriteMessage(wire.Quit{})
	return c.conn.Close()
}
