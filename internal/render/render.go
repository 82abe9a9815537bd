// Package render defines the narrow interface a board exposes to an
// external renderer (spec.md §1 Non-goal: "the windowed GUI renderer"
// is an external collaborator, not part of this core).
package render

import "github.com/lguibr/pinball/internal/board"

// Snapshotter is satisfied by *board.Board. A renderer only ever needs
// a read-only view of one frame; it never reaches into board mutators.
type Snapshotter interface {
	Snapshot() board.Snapshot
}
