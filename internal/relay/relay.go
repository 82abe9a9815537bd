package relay

import (
	"bufio"
	"fmt"
	"net"
	"strings"

	"github.com/lguibr/pinball/internal/board"
	"github.com/lguibr/pinball/internal/wire"
	"github.com/sirupsen/logrus"
)

// Relay is a trivial message router (spec.md §4.5): it accepts
// line-oriented TCP connections, registers each by board name, and
// forwards any message whose second token names a known board to that
// board's connection.
type Relay struct {
	router  *Router
	walls   *joinTable
	portals *portalTable
	log     *logrus.Entry
}

func New() *Relay {
	return &Relay{
		router:  NewRouter(),
		walls:   newJoinTable(),
		portals: newPortalTable(),
		log:     logrus.WithField("component", "relay"),
	}
}

// Serve accepts connections on ln until it returns an error (listener
// closed).
func (r *Relay) Serve(ln net.Listener) error {
	for {
		raw, err := ln.Accept()
		if err != nil {
			return err
		}
		go r.handleConn(wire.NewConn(raw))
	}
}

func (r *Relay) handleConn(conn *wire.Conn) {
	defer conn.Close()
	session := NewSession()
	session.BeginRegistering()

	if err := conn.WriteMessage(wire.GetClientBoardName{}); err != nil {
		return
	}
	msg, err := conn.ReadMessage()
	if err != nil {
		return
	}
	name, ok := msg.(wire.ClientBoardName)
	if !ok || name.Name == "" {
		_ = conn.WriteMessage(wire.Failure{})
		return
	}
	if !r.router.Register(name.Name, conn) {
		_ = conn.WriteMessage(wire.Failure{})
		return
	}
	session.CompleteRegistration(name.Name)
	defer func() {
		r.router.Unregister(name.Name)
		session.Disconnect()
	}()

	r.router.Broadcast(wire.AllConnectedBoards{Boards: r.router.Names()})

	for {
		msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		r.forward(name.Name, msg)
	}
}

// forward routes a client→relay message to its addressed board,
// success-wrapped (spec.md §4.5). Portal liveness updates are also
// recorded in the relay's portal table; routing does not consult it.
func (r *Relay) forward(from string, msg wire.Message) {
	switch m := msg.(type) {
	case wire.Quit:
		if conn, ok := r.router.Lookup(from); ok {
			conn.Close()
		}
	case wire.TeleportPortal:
		r.send(m.DestBoard, m)
	case wire.TeleportWall:
		r.send(m.DestBoard, m)
	case wire.ConnectPortal:
		r.portals.setLive(m.PortalName, true)
		r.broadcastExcept(from, m)
	case wire.DisconnectPortal:
		r.portals.setLive(m.PortalName, false)
		r.broadcastExcept(from, m)
	default:
		r.log.WithField("from", from).Debug("discarding unroutable message")
	}
}

func (r *Relay) send(destBoard string, msg wire.Message) {
	conn, ok := r.router.Lookup(destBoard)
	if !ok {
		return
	}
	line, err := wire.Encode(msg)
	if err != nil {
		return
	}
	_ = conn.WriteLine(wire.WrapSuccess(line))
}

func (r *Relay) broadcastExcept(from string, msg wire.Message) {
	line, err := wire.Encode(msg)
	if err != nil {
		return
	}
	for _, name := range r.router.Names() {
		if name == from {
			continue
		}
		if conn, ok := r.router.Lookup(name); ok {
			_ = conn.WriteLine(wire.WrapSuccess(line))
		}
	}
}

// JoinHorizontal joins A's right wall to B's left wall (spec.md §6
// "h A B").
func (r *Relay) JoinHorizontal(a, b string) {
	r.join(a, board.Right, b, board.Left)
	r.notifyJoin(wire.JoinHorizontal{Left: a, Right: b}, a, b)
}

// JoinVertical joins A's bottom wall to B's top wall (spec.md §6 "v A
// B": "A-top, B-bottom" — A occupies the top, B the bottom).
func (r *Relay) JoinVertical(a, b string) {
	r.join(a, board.Bottom, b, board.Top)
	r.notifyJoin(wire.JoinVertical{Top: a, Bottom: b}, a, b)
}

func (r *Relay) join(a string, wallA board.Wall, b string, wallB board.Wall) {
	if evicted, ok := r.walls.set(a, wallA, b); ok {
		r.notifyEvicted(evicted, wallA.Opposite())
	}
	if evicted, ok := r.walls.set(b, wallB, a); ok {
		r.notifyEvicted(evicted, wallB.Opposite())
	}
}

func (r *Relay) notifyEvicted(board_ string, wallOnEvicted board.Wall) {
	r.send(board_, wire.DisconnectWall{Board: board_, Wall: wallOnEvicted})
}

func (r *Relay) notifyJoin(msg wire.Message, a, b string) {
	r.send(a, msg)
	r.send(b, msg)
}

// Disconnect closes every connected client (spec.md §6 "disconnect
// closes every client").
func (r *Relay) Disconnect() {
	r.router.CloseAll()
}

// RunOperatorConsole reads operator commands line by line from in
// until it is closed (spec.md §4.5, §6: "h A B", "v A B",
// "disconnect").
func (r *Relay) RunOperatorConsole(in *bufio.Scanner) {
	for in.Scan() {
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "h":
			if len(fields) == 3 {
				r.JoinHorizontal(fields[1], fields[2])
			}
		case "v":
			if len(fields) == 3 {
				r.JoinVertical(fields[1], fields[2])
			}
		case "disconnect":
			r.Disconnect()
		default:
			fmt.Println("relay: unknown operator command:", fields[0])
		}
	}
}
