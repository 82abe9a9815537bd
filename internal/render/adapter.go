package render

import "github.com/lguibr/pinball/internal/board"

type snapshotAdapter struct {
	s board.Snapshot
}

// AdaptSnapshot wraps a board.Snapshot so it satisfies SnapshotLike,
// the shape RenderASCII consumes.
func AdaptSnapshot(s board.Snapshot) SnapshotLike {
	return snapshotAdapter{s: s}
}

func (a snapshotAdapter) Name() string { return a.s.Name }
func (a snapshotAdapter) Size() float64 { return a.s.Size }

func (a snapshotAdapter) BallPositions() [][2]float64 {
	out := make([][2]float64, len(a.s.Balls))
	for i, bl := range a.s.Balls {
		out[i] = [2]float64{bl.Position.X, bl.Position.Y}
	}
	return out
}

func (a snapshotAdapter) BumperPositions() [][2]float64 {
	out := make([][2]float64, len(a.s.Bumpers))
	for i, bp := range a.s.Bumpers {
		tl := bp.TopLeft()
		out[i] = [2]float64{tl.X + 0.5, tl.Y + 0.5}
	}
	return out
}

func (a snapshotAdapter) AbsorberPositions() [][2]float64 {
	out := make([][2]float64, len(a.s.Absorbers))
	for i, ab := range a.s.Absorbers {
		tl := ab.TopLeft()
		out[i] = [2]float64{tl.X + ab.Width()/2, tl.Y + ab.Height()/2}
	}
	return out
}

func (a snapshotAdapter) PortalPositions() [][2]float64 {
	out := make([][2]float64, len(a.s.Portals))
	for i, pt := range a.s.Portals {
		p := pt.Position()
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

func (a snapshotAdapter) FlipperPositions() [][2]float64 {
	out := make([][2]float64, len(a.s.Flippers))
	for i, fp := range a.s.Flippers {
		out[i] = [2]float64{fp.Pivot[0], fp.Pivot[1]}
	}
	return out
}
