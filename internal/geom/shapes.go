package geom

// Circle is a center point and a radius. A radius-0 circle represents
// a corner point used for smooth-corner reflection off bumpers.
type Circle struct {
	Center Vector2
	Radius float64
}

// Segment is a two-sided line segment; its normal is used only for
// reflection and has no inherent "outside" direction.
type Segment struct {
	P1, P2 Vector2
}

// Direction returns the unnormalized vector from P1 to P2.
func (s Segment) Direction() Vector2 { return s.P2.Sub(s.P1) }

// Normal returns the unit normal of the segment (perpendicular to its
// direction). Either sign is valid since the segment is two-sided.
func (s Segment) Normal() Vector2 { return s.Direction().Perp().Normalize() }

// RotateAround rigidly rotates the segment about pivot by angle radians.
func (s Segment) RotateAround(pivot Vector2, angle float64) Segment {
	return Segment{
		P1: s.P1.RotateAround(pivot, angle),
		P2: s.P2.RotateAround(pivot, angle),
	}
}

// RotateAround rigidly rotates the circle's center about pivot by angle
// radians; its radius is unchanged.
func (c Circle) RotateAround(pivot Vector2, angle float64) Circle {
	return Circle{Center: c.Center.RotateAround(pivot, angle), Radius: c.Radius}
}

// ClosestPoint returns the point on the segment closest to p, and the
// parametric position t in [0,1] along P1->P2.
func (s Segment) ClosestPoint(p Vector2) (Vector2, float64) {
	d := s.Direction()
	lenSq := d.LengthSq()
	if lenSq < 1e-18 {
		return s.P1, 0
	}
	t := p.Sub(s.P1).Dot(d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.P1.Add(d.Scale(t)), t
}

// DistanceTo returns the shortest distance from p to the segment.
func (s Segment) DistanceTo(p Vector2) float64 {
	closest, _ := s.ClosestPoint(p)
	return p.Sub(closest).Length()
}
