package geom

// reflectAboutNormal specularly reflects v about the line whose unit
// normal is n: v' = v - 2(v.n)n.
func reflectAboutNormal(v, n Vector2) Vector2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// ReflectSegment specularly reflects v about seg's normal.
func ReflectSegment(seg Segment, v Vector2) Vector2 {
	return reflectAboutNormal(v, seg.Normal())
}

// ReflectCircle specularly reflects v about the line joining the
// static circle's center and the ball's position.
func ReflectCircle(center, ballPos, v Vector2) Vector2 {
	n := ballPos.Sub(center).Normalize()
	if n == (Vector2{}) {
		return v
	}
	return reflectAboutNormal(v, n)
}

// tangentVelocityAt returns the linear velocity of a point rigidly
// rotating about pivot at angular speed omega (rad/s).
func tangentVelocityAt(point, pivot Vector2, omega float64) Vector2 {
	r := point.Sub(pivot)
	return r.Perp().Scale(omega)
}

// ReflectRotatingSegment elastically reflects v off seg (rotating
// about pivot at omega) and adds the wall's tangential velocity at the
// contact point, scaled by the restitution coefficient k.
func ReflectRotatingSegment(seg Segment, pivot Vector2, omega float64, ballPos Vector2, v Vector2, k float64) Vector2 {
	contact, _ := seg.ClosestPoint(ballPos)
	reflected := reflectAboutNormal(v, seg.Normal())
	wallVel := tangentVelocityAt(contact, pivot, omega)
	return reflected.Add(wallVel.Scale(k))
}

// ReflectRotatingCircle elastically reflects v off circle (rotating
// about pivot at omega) and adds the wall's tangential velocity at the
// contact point, scaled by the restitution coefficient k.
func ReflectRotatingCircle(circle Circle, pivot Vector2, omega float64, ballPos Vector2, v Vector2, k float64) Vector2 {
	n := ballPos.Sub(circle.Center).Normalize()
	var reflected Vector2
	if n == (Vector2{}) {
		reflected = v
	} else {
		reflected = reflectAboutNormal(v, n)
	}
	wallVel := tangentVelocityAt(circle.Center, pivot, omega)
	return reflected.Add(wallVel.Scale(k))
}

// ElasticExchange computes the post-collision velocities of two balls
// of equal mass colliding elastically along their centre-to-centre
// line (spec.md §4.4 "Ball-ball"): the velocity components along the
// line of centers are swapped, the tangential components are
// untouched.
func ElasticExchange(posA, velA, posB, velB Vector2) (Vector2, Vector2) {
	axis := posB.Sub(posA).Normalize()
	if axis == (Vector2{}) {
		return velA, velB
	}
	aAlong := velA.Dot(axis)
	bAlong := velB.Dot(axis)
	aTangent := velA.Sub(axis.Scale(aAlong))
	bTangent := velB.Sub(axis.Scale(bAlong))
	newVelA := aTangent.Add(axis.Scale(bAlong))
	newVelB := bTangent.Add(axis.Scale(aAlong))
	return newVelA, newVelB
}

// RotateAround rotates an arbitrary point about pivot by angle radians;
// exported as a free function to match spec.md's
// "rotate_around(shape, pivot, angle) -> shape'" naming for callers
// that hold a bare Vector2 rather than a Circle/Segment.
func RotateAround(point, pivot Vector2, angle float64) Vector2 {
	return point.RotateAround(pivot, angle)
}
