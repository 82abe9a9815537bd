package geom

import "math"

// Epsilon bundles the numerical-care thresholds callers use to decide
// what "no collision" and "collision now" mean (spec.md §9's epsilon
// table, named so tuning stays in one place).
type Epsilon struct {
	Now        float64 // a time below this counts as "now" / already resolved
	Degenerate float64 // denominators below this are treated as zero
}

// DefaultEpsilon matches config.Default()'s EpsilonNow/EpsilonDegenerate.
var DefaultEpsilon = Epsilon{Now: 1e-14, Degenerate: 1e-16}

// TimeToSegment returns the earliest non-negative time at which the
// disc (ball, vel) first touches the infinite line through seg, clamped
// to the segment's span (a contact point that falls outside [P1,P2]
// does not count — the caller is expected to also query the segment's
// corner circles via TimeToCircle). Returns +Inf if there is no
// collision within any finite time.
func TimeToSegment(seg Segment, ball Circle, vel Vector2) float64 {
	return timeToSegmentEps(seg, ball, vel, DefaultEpsilon)
}

func timeToSegmentEps(seg Segment, ball Circle, vel Vector2, eps Epsilon) float64 {
	n := seg.Normal()
	if n == (Vector2{}) {
		return math.Inf(1)
	}
	signedDist := ball.Center.Sub(seg.P1).Dot(n)
	sign := 1.0
	if signedDist < 0 {
		sign = -1
	}
	absDist := math.Abs(signedDist)
	closingSpeed := -sign * vel.Dot(n)

	var t float64
	if absDist-ball.Radius <= eps.Now {
		if closingSpeed <= eps.Degenerate {
			// Touching but moving apart or sliding along: no new hit.
			return math.Inf(1)
		}
		t = 0
	} else if closingSpeed <= eps.Degenerate {
		return math.Inf(1)
	} else {
		t = (absDist - ball.Radius) / closingSpeed
		if t < 0 {
			return math.Inf(1)
		}
	}

	contact := ball.Center.Add(vel.Scale(t))
	closest, param := seg.ClosestPoint(contact)
	if param <= 0 || param >= 1 {
		// Would touch beyond an endpoint; not this segment's hit.
		if closest.Sub(contact).Length() > eps.Now {
			return math.Inf(1)
		}
	}
	return t
}

// TimeToCircle returns the earliest non-negative time at which the
// moving ball first touches the static circle, or +Inf if it never
// approaches within any finite time.
func TimeToCircle(static Circle, ball Circle, vel Vector2) float64 {
	return timeToCircleEps(static, ball, vel, DefaultEpsilon)
}

func timeToCircleEps(static Circle, ball Circle, vel Vector2, eps Epsilon) float64 {
	d := ball.Center.Sub(static.Center)
	sumR := static.Radius + ball.Radius

	c := d.LengthSq() - sumR*sumR
	if c <= eps.Now {
		if d.Dot(vel) >= 0 {
			// Touching but separating or at rest: no new hit.
			return math.Inf(1)
		}
		return 0
	}

	a := vel.LengthSq()
	if a <= eps.Degenerate {
		return math.Inf(1)
	}
	b := 2 * d.Dot(vel)
	disc := b*b - 4*a*c
	if disc < 0 {
		return math.Inf(1)
	}
	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	if t1 >= -eps.Now {
		if t1 < 0 {
			t1 = 0
		}
		return t1
	}
	return math.Inf(1)
}

// bisectEarliestRoot finds the smallest t in [0, upper] at which
// f(t) <= tol, by coarse sampling followed by bisection refinement.
// f is expected to be a continuous "signed distance minus radius"
// style function: positive while separated, <=0 at first touch.
// Used for the rotating-wall variants below, where a closed-form root
// is transcendental. A contact already present at t=0 counts only while
// the gap is still closing; a separating contact yields +Inf.
func bisectEarliestRoot(f func(float64) float64, upper float64, tol float64) float64 {
	const steps = 256
	const probe = 1e-9
	if upper <= 0 {
		return math.Inf(1)
	}
	if f0 := f(0); f0 <= tol {
		if f(math.Min(upper, probe)) >= f0 {
			return math.Inf(1)
		}
		return 0
	}
	step := upper / steps
	prevT := 0.0
	for i := 1; i <= steps; i++ {
		t := float64(i) * step
		if f(t) <= tol {
			lo, hi := prevT, t
			for iter := 0; iter < 40; iter++ {
				mid := (lo + hi) / 2
				if f(mid) <= tol {
					hi = mid
				} else {
					lo = mid
				}
			}
			return hi
		}
		prevT = t
	}
	return math.Inf(1)
}

// TimeToRotatingSegment is the flipper-line analogue of TimeToSegment:
// seg rotates rigidly about pivot at angular speed omega (radians/s).
// delta bounds the search to the current frame's foresight window.
func TimeToRotatingSegment(seg Segment, pivot Vector2, omega float64, ball Circle, vel Vector2, delta float64) float64 {
	f := func(t float64) float64 {
		ballPos := ball.Center.Add(vel.Scale(t))
		rotated := seg.RotateAround(pivot, omega*t)
		return rotated.DistanceTo(ballPos) - ball.Radius
	}
	return bisectEarliestRoot(f, delta, DefaultEpsilon.Now*1e4)
}

// TimeToRotatingCircle is the flipper-endpoint analogue of TimeToCircle.
func TimeToRotatingCircle(circle Circle, pivot Vector2, omega float64, ball Circle, vel Vector2, delta float64) float64 {
	f := func(t float64) float64 {
		ballPos := ball.Center.Add(vel.Scale(t))
		rotated := circle.RotateAround(pivot, omega*t)
		return ballPos.Sub(rotated.Center).Length() - (circle.Radius + ball.Radius)
	}
	return bisectEarliestRoot(f, delta, DefaultEpsilon.Now*1e4)
}
