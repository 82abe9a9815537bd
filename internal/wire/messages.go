// Package wire implements the line-oriented ASCII relay protocol
// (spec.md §4.5, §6): message types and their encode/decode to a
// single newline-terminated line.
package wire

import "github.com/lguibr/pinball/internal/board"

// Message is the tag interface every wire message implements.
type Message interface{ isMessage() }

// GetClientBoardName — relay → client.
type GetClientBoardName struct{}

// ClientBoardName — client → relay, in answer to GetClientBoardName.
type ClientBoardName struct{ Name string }

// AllConnectedBoards — relay → client.
type AllConnectedBoards struct{ Boards []string }

// JoinHorizontal — relay → both parties (A-left, B-right).
type JoinHorizontal struct{ Left, Right string }

// JoinVertical — relay → both parties (A-top, B-bottom).
type JoinVertical struct{ Top, Bottom string }

// DisconnectWall — relay → clients other than the two being joined.
type DisconnectWall struct {
	Board string
	Wall  board.Wall
}

// TeleportPortal — client → relay → destBoard.
type TeleportPortal struct {
	DestBoard  string
	BallName   string
	VX, VY     float64
	PortalName string
}

// TeleportWall — client → relay → destBoard.
type TeleportWall struct {
	DestBoard string
	BallName  string
	VX, VY    float64
	X, Y      float64
	Wall      board.Wall
}

// ConnectPortal / DisconnectPortal — maintain remote-portal liveness.
type ConnectPortal struct{ PortalName string }
type DisconnectPortal struct{ PortalName string }

// Quit — client → relay; graceful shutdown.
type Quit struct{}

// Failure — relay → client; peer unresolvable.
type Failure struct{}

func (GetClientBoardName) isMessage() {}
func (ClientBoardName) isMessage()    {}
func (AllConnectedBoards) isMessage() {}
func (JoinHorizontal) isMessage()     {}
func (JoinVertical) isMessage()       {}
func (DisconnectWall) isMessage()     {}
func (TeleportPortal) isMessage()     {}
func (TeleportWall) isMessage()       {}
func (ConnectPortal) isMessage()      {}
func (DisconnectPortal) isMessage()   {}
func (Quit) isMessage()               {}
func (Failure) isMessage()            {}
