package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeToSegmentHeadOn(t *testing.T) {
	seg := Segment{P1: Vector2{0, 10}, P2: Vector2{20, 10}}
	ball := Circle{Center: Vector2{5, 5}, Radius: 0.25}
	vel := Vector2{0, 5}

	got := TimeToSegment(seg, ball, vel)
	want := (10 - 0.25 - 5) / 5
	require.InDelta(t, want, got, 1e-9)
}

func TestTimeToSegmentMovingAway(t *testing.T) {
	seg := Segment{P1: Vector2{0, 10}, P2: Vector2{20, 10}}
	ball := Circle{Center: Vector2{5, 5}, Radius: 0.25}
	vel := Vector2{0, -5}

	got := TimeToSegment(seg, ball, vel)
	require.True(t, math.IsInf(got, 1))
}

func TestTimeToSegmentOutsideSpanIsInfinite(t *testing.T) {
	seg := Segment{P1: Vector2{0, 10}, P2: Vector2{2, 10}}
	ball := Circle{Center: Vector2{15, 5}, Radius: 0.25}
	vel := Vector2{0, 5}

	got := TimeToSegment(seg, ball, vel)
	require.True(t, math.IsInf(got, 1))
}

func TestTimeToCircleHeadOn(t *testing.T) {
	static := Circle{Center: Vector2{10, 10}, Radius: 1}
	ball := Circle{Center: Vector2{10, 5}, Radius: 0.25}
	vel := Vector2{0, 1}

	got := TimeToCircle(static, ball, vel)
	want := (10 - 5) - (1 + 0.25)
	require.InDelta(t, want, got, 1e-9)
}

func TestTimeToCircleTangentNow(t *testing.T) {
	static := Circle{Center: Vector2{10, 10}, Radius: 1}
	ball := Circle{Center: Vector2{10, 8.75}, Radius: 0.25}
	vel := Vector2{0, 1}

	got := TimeToCircle(static, ball, vel)
	require.InDelta(t, 0, got, 1e-9)
}

func TestReflectSegmentHorizontal(t *testing.T) {
	seg := Segment{P1: Vector2{0, 0}, P2: Vector2{1, 0}}
	v := Vector2{3, -4}
	got := ReflectSegment(seg, v)
	require.InDelta(t, 3, got.X, 1e-9)
	require.InDelta(t, 4, got.Y, 1e-9)
}

func TestReflectCircle(t *testing.T) {
	center := Vector2{0, 0}
	ballPos := Vector2{1, 0}
	v := Vector2{-1, 2}
	got := ReflectCircle(center, ballPos, v)
	require.InDelta(t, 1, got.X, 1e-9)
	require.InDelta(t, 2, got.Y, 1e-9)
}

func TestElasticExchangeHeadOn(t *testing.T) {
	newA, newB := ElasticExchange(Vector2{10, 10}, Vector2{0, 1}, Vector2{10, 10.5}, Vector2{0, -1})
	require.InDelta(t, -1, newA.Y, 1e-9)
	require.InDelta(t, 1, newB.Y, 1e-9)
}

func TestRotateAroundQuarterTurn(t *testing.T) {
	p := Vector2{1, 0}
	pivot := Vector2{0, 0}
	got := RotateAround(p, pivot, math.Pi/2)
	require.InDelta(t, 0, got.X, 1e-9)
	require.InDelta(t, 1, got.Y, 1e-9)
}

func TestTimeToRotatingSegmentSweepsIntoBall(t *testing.T) {
	pivot := Vector2{10, 10}
	seg := Segment{P1: pivot, P2: Vector2{12, 10}}
	omega := FromDegrees(1080).Canonical()
	_ = omega
	omegaRad := 1080 * math.Pi / 180

	ball := Circle{Center: Vector2{11, 11}, Radius: 0.01}
	vel := Vector2{}

	got := TimeToRotatingSegment(seg, pivot, omegaRad, ball, vel, 1.0)
	require.Less(t, got, 1.0)
}
