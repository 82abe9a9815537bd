package gadget

import (
	"math"
	"testing"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestAbsorberTimeToHitExcludesContainedBall(t *testing.T) {
	cfg := config.Default()
	a := NewAbsorber("abs", 0, 15, 20, 5)
	bl := ball.Ball{Position: geom.Vector2{X: 10, Y: 17}, Velocity: geom.Vector2{X: 1, Y: 0}}

	got := a.TimeToHit(bl, cfg, cfg.FrameBudget.Seconds())
	require.True(t, math.IsInf(got, 1))
}

func TestAbsorberTimeToHitApproachingFromAbove(t *testing.T) {
	cfg := config.Default()
	a := NewAbsorber("abs", 0, 15, 20, 5)
	bl := ball.Ball{Position: geom.Vector2{X: 10, Y: 10}, Velocity: geom.Vector2{X: 0, Y: 1}}

	got := a.TimeToHit(bl, cfg, cfg.FrameBudget.Seconds())
	want := (15 - 10) - cfg.BallRadius
	require.InDelta(t, want, got, 1e-6)
}

func TestAbsorberCaptureAndEmitFIFO(t *testing.T) {
	cfg := config.Default()
	a := NewAbsorber("abs", 0, 15, 20, 5)

	a.Capture("ball-1")
	a.Capture("ball-2")
	require.Equal(t, []string{"ball-1", "ball-2"}, a.Queue())

	name, pos, vel, ok := a.Emit(cfg)
	require.True(t, ok)
	require.Equal(t, "ball-1", name)
	require.InDelta(t, 20-cfg.BallRadius, pos.X, 1e-9)
	require.InDelta(t, 20-cfg.BallRadius, pos.Y, 1e-9)
	require.InDelta(t, 0, vel.X, 1e-9)
	require.InDelta(t, -cfg.AbsorberEmitSpeed, vel.Y, 1e-9)

	require.Equal(t, []string{"ball-2"}, a.Queue())
}

func TestAbsorberEmitEmptyQueue(t *testing.T) {
	cfg := config.Default()
	a := NewAbsorber("abs", 0, 15, 20, 5)

	_, _, _, ok := a.Emit(cfg)
	require.False(t, ok)
}
