package gadget

import (
	"math"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/geom"
)

// Portal is a circular teleport gadget, diameter 1 L (spec.md §3
// "Portal"). RemoteBoard is empty for a local peer.
type Portal struct {
	name        string
	position    geom.Vector2
	remoteBoard string
	peerPortal  string
}

const portalRadius = 0.5

// NewPortal builds a portal centered at (x, y) whose partner is
// peerPortal, optionally hosted on remoteBoard (empty means local).
func NewPortal(name string, x, y float64, remoteBoard, peerPortal string) *Portal {
	return &Portal{
		name:        name,
		position:    geom.Vector2{X: x, Y: y},
		remoteBoard: remoteBoard,
		peerPortal:  peerPortal,
	}
}

func (p *Portal) GadgetName() string     { return p.name }
func (p *Portal) GadgetKind() Kind       { return KindPortal }
func (p *Portal) Position() geom.Vector2 { return p.position }
func (p *Portal) RemoteBoard() string    { return p.remoteBoard }
func (p *Portal) PeerPortal() string     { return p.peerPortal }
func (p *Portal) IsLocal() bool          { return p.remoteBoard == "" }

// Contains reports whether p lies inside the portal, using a plain
// squared-distance comparison (spec.md §9 Open Question (b): the
// original's distanceSquared^RADIUS test is mathematically dubious;
// this implementation takes the spec's suggested fix).
func (pt *Portal) Contains(p geom.Vector2) bool {
	d := p.Sub(pt.position)
	return d.LengthSq() < portalRadius*portalRadius
}

// TimeToHit excludes balls already inside the portal.
func (pt *Portal) TimeToHit(bl ball.Ball, cfg config.Config, delta float64) float64 {
	if pt.Contains(bl.Position) {
		return math.Inf(1)
	}
	return geom.TimeToCircle(geom.Circle{Center: pt.position, Radius: portalRadius}, bl.Circle(cfg), bl.Velocity)
}

// Rejects reports whether p already overlaps the portal's circle.
func (pt *Portal) Rejects(bl ball.Ball, cfg config.Config) bool {
	return pt.Contains(bl.Position)
}

// EmitAt returns the velocity-preserving re-emission position at a
// peer portal's center (spec.md §4.2: "re-emitted at the peer's centre
// with unchanged velocity").
func (pt *Portal) EmitAt(peer *Portal, vel geom.Vector2) (geom.Vector2, geom.Vector2) {
	return peer.position, vel
}
