package board

import (
	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/gadget"
)

// JoinState is a read-only view of which walls are currently joined
// to a remote board, keyed by Wall (spec.md §4.3: "used by renderer
// to draw banners").
type JoinState map[Wall]string

// JoinState returns a copy of the current wall→remote-board map; a
// missing entry means that wall is unjoined.
func (b *Board) JoinState() JoinState {
	out := make(JoinState, len(b.joinMap))
	for w, remote := range b.joinMap {
		out[w] = remote
	}
	return out
}

// Join records that wall is now joined to remoteBoard, evicting any
// prior neighbour on that wall (spec.md §4.5 wall-join semantics). The
// evicted board name is returned so the relay can notify it.
func (b *Board) Join(w Wall, remoteBoard string) (evicted string, hadPrior bool) {
	prior, hadPrior := b.joinMap[w]
	b.joinMap[w] = remoteBoard
	return prior, hadPrior
}

// Unjoin clears wall's remote link, used when a peer disconnects.
func (b *Board) Unjoin(w Wall) {
	delete(b.joinMap, w)
}

// PortalLive reports whether the named local portal currently has a
// reachable peer (local boards are always live; remote peers track
// connectPortal=/disconnectPortal= messages).
func (b *Board) PortalLive(name string) bool { return b.portalLive[name] }

func (b *Board) SetPortalLive(name string, live bool) { b.portalLive[name] = live }

// Snapshot is an immutable view of the board's current visual state,
// consumed by the (interface-only) renderer.
type Snapshot struct {
	Name      string
	Size      float64
	Balls     []ball.Ball
	Flippers  []FlipperView
	Bumpers   []*gadget.Bumper
	Absorbers []*gadget.Absorber
	Portals   []*gadget.Portal
	Join      JoinState
}

// FlipperView captures a flipper's rendered pose without exposing its
// mutable internals.
type FlipperView struct {
	Name  string
	Pivot [2]float64
	Angle float64
}

// Snapshot copies out everything the renderer needs for one frame.
func (b *Board) Snapshot() Snapshot {
	flippers := make([]FlipperView, len(b.gadgetsBy.flippers))
	for i, f := range b.gadgetsBy.flippers {
		p := f.Pivot()
		flippers[i] = FlipperView{Name: f.GadgetName(), Pivot: [2]float64{p.X, p.Y}, Angle: float64(f.Angle())}
	}
	return Snapshot{
		Name:      b.name,
		Size:      b.size,
		Balls:     b.Balls(),
		Flippers:  flippers,
		Bumpers:   b.gadgetsBy.bumpers,
		Absorbers: b.gadgetsBy.absorbers,
		Portals:   b.gadgetsBy.portals,
		Join:      b.JoinState(),
	}
}
