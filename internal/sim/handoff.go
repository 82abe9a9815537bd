package sim

import (
	"github.com/lguibr/pinball/internal/board"
	"github.com/lguibr/pinball/internal/geom"
)

// Handoff is implemented by whatever connects this board to the relay
// (spec.md §4.5, §6). A board with no live relay connection can pass
// a no-op implementation; wall/portal collisions simply drop the ball
// locally in that case (spec.md §4.4: "best-effort hand-off").
type Handoff interface {
	TeleportWall(destBoard, ballName string, vel geom.Vector2, x, y float64, wall board.Wall)
	TeleportPortal(destBoard, ballName string, vel geom.Vector2, portalName string)
}

// NoHandoff drops balls locally without emitting any message; used by
// standalone boards with no relay connection.
type NoHandoff struct{}

func (NoHandoff) TeleportWall(string, string, geom.Vector2, float64, float64, board.Wall) {}
func (NoHandoff) TeleportPortal(string, string, geom.Vector2, string)                     {}
