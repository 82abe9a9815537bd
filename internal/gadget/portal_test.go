package gadget

import (
	"math"
	"testing"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestPortalContainsUsesSquaredDistance(t *testing.T) {
	p := NewPortal("p1", 10, 10, "", "p2")
	require.True(t, p.Contains(geom.Vector2{X: 10.2, Y: 10}))
	require.False(t, p.Contains(geom.Vector2{X: 11, Y: 10}))
}

func TestPortalTimeToHitExcludesContainedBall(t *testing.T) {
	cfg := config.Default()
	p := NewPortal("p1", 10, 10, "", "p2")
	bl := ball.Ball{Position: geom.Vector2{X: 10, Y: 10}, Velocity: geom.Vector2{X: 1, Y: 0}}

	got := p.TimeToHit(bl, cfg, cfg.FrameBudget.Seconds())
	require.True(t, math.IsInf(got, 1))
}

func TestPortalIsLocal(t *testing.T) {
	local := NewPortal("p1", 0, 0, "", "p2")
	remote := NewPortal("p1", 0, 0, "other-board", "p2")
	require.True(t, local.IsLocal())
	require.False(t, remote.IsLocal())
}

func TestPortalEmitAtPreservesVelocity(t *testing.T) {
	src := NewPortal("p1", 0, 0, "", "p2")
	dst := NewPortal("p2", 15, 4, "", "p1")
	vel := geom.Vector2{X: 3, Y: -2}

	pos, outVel := src.EmitAt(dst, vel)
	require.Equal(t, dst.Position(), pos)
	require.Equal(t, vel, outVel)
}
