package sim

import "github.com/lguibr/pinball/internal/board"

// Tick drives one simulation frame; sent to a BoardActor by its own
// ticker goroutine (spec.md §5 "simulation actor...on a fixed
// wall-clock cadence").
type Tick struct{}

// TriggerKey is posted by the input adapter when a keydown/keyup line
// names an action gadget (spec.md §6 keydown|keyup grammar).
type TriggerKey struct {
	Action string
}

// JoinWall applies a relay-ordered wall join between frames (spec.md
// §5: "Incoming relay messages are applied between frames").
type JoinWall struct {
	Wall        board.Wall
	RemoteBoard string
}

// UnjoinWall clears a wall's remote link after a disconnectWall=
// message.
type UnjoinWall struct {
	Wall board.Wall
}

// InboundWallBall is posted when a teleportWall= message hands a ball
// onto this board; Tangent is the preserved x or y coordinate from the
// sender, re-anchored by the normal-component snap (spec.md §6).
type InboundWallBall struct {
	Name    string
	Tangent float64
	VX, VY  float64
	Wall    board.Wall
}

// InboundPortalBall is posted when a teleportPortal= message arrives
// naming a local portal to re-emit the ball from.
type InboundPortalBall struct {
	Name       string
	PortalName string
	VX, VY     float64
}

// PortalLiveness applies a connectPortal=/disconnectPortal= update.
type PortalLiveness struct {
	PortalName string
	Live       bool
}
