// Package gadget implements the static and dynamic obstacles on a
// board (spec.md §4.2): bumpers, absorbers, portals and flippers. Each
// concrete type exposes time_to_hit / resolve_hit / rejects, and
// dispatch.go reaches them through a single type switch on the concrete
// type rather than through interface methods (spec.md §9 "Polymorphic
// gadget set").
package gadget

// Kind tags which concrete gadget a Gadget value holds.
type Kind int

const (
	KindSquareBumper Kind = iota
	KindCircleBumper
	KindTriangleBumper
	KindAbsorber
	KindPortal
	KindFlipper
)

func (k Kind) String() string {
	switch k {
	case KindSquareBumper:
		return "squareBumper"
	case KindCircleBumper:
		return "circleBumper"
	case KindTriangleBumper:
		return "triangleBumper"
	case KindAbsorber:
		return "absorber"
	case KindPortal:
		return "portal"
	case KindFlipper:
		return "flipper"
	default:
		return "unknown"
	}
}

// Gadget is the minimal contract every obstacle satisfies; callers
// that need physics behaviour type-switch on the concrete type (see
// dispatch.go) to reach its TimeToHit/ResolveHit/Rejects methods.
type Gadget interface {
	GadgetName() string
	GadgetKind() Kind
}
