package sim

import (
	"testing"
	"time"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/board"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/gadget"
	"github.com/lguibr/pinball/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestStepFreeFallIntegratesGravity(t *testing.T) {
	cfg := config.Default()
	cfg.Friction1, cfg.Friction2 = 0, 0
	cfg.FrameBudget = 10 * time.Millisecond

	b := board.New("test", cfg)
	require.NoError(t, b.AddBall(ball.Ball{Name: "a", Position: geom.Vector2{X: 10, Y: 2}, Velocity: geom.Vector2{}}))

	for i := 0; i < 100; i++ {
		Step(b, cfg, NoHandoff{})
	}

	balls := b.Balls()
	require.Len(t, balls, 1)
	require.InDelta(t, 25, balls[0].Velocity.Y, 1.0)
}

func TestStepTwoBallsHeadOnExchangeVelocity(t *testing.T) {
	cfg := config.Default()
	cfg.Gravity, cfg.Friction1, cfg.Friction2 = 0, 0, 0
	cfg.FrameBudget = 10 * time.Millisecond

	b := board.New("test", cfg)
	require.NoError(t, b.AddBall(ball.Ball{Name: "a", Position: geom.Vector2{X: 10, Y: 10}, Velocity: geom.Vector2{X: 0, Y: 1}}))
	require.NoError(t, b.AddBall(ball.Ball{Name: "bb", Position: geom.Vector2{X: 10, Y: 10.5}, Velocity: geom.Vector2{X: 0, Y: -1}}))

	Step(b, cfg, NoHandoff{})

	balls := b.Balls()
	byName := map[string]ball.Ball{}
	for _, bl := range balls {
		byName[bl.Name] = bl
	}
	require.InDelta(t, -1, byName["a"].Velocity.Y, 1e-6)
	require.InDelta(t, 1, byName["bb"].Velocity.Y, 1e-6)
}

func TestStepBallBouncesOffUnjoinedWall(t *testing.T) {
	cfg := config.Default()
	cfg.Gravity, cfg.Friction1, cfg.Friction2 = 0, 0, 0
	cfg.FrameBudget = 50 * time.Millisecond

	b := board.New("test", cfg)
	require.NoError(t, b.AddBall(ball.Ball{
		Name:     "a",
		Position: geom.Vector2{X: cfg.BoardSize - 1, Y: 10},
		Velocity: geom.Vector2{X: 100, Y: 0},
	}))

	Step(b, cfg, NoHandoff{})

	balls := b.Balls()
	require.Len(t, balls, 1)
	require.Less(t, balls[0].Velocity.X, 0.0)
}

func TestStepBallCrossingJoinedWallHandsOff(t *testing.T) {
	cfg := config.Default()
	cfg.Gravity, cfg.Friction1, cfg.Friction2 = 0, 0, 0
	cfg.FrameBudget = 50 * time.Millisecond

	b := board.New("test", cfg)
	b.Join(board.Right, "neighbour")
	require.NoError(t, b.AddBall(ball.Ball{
		Name:     "a",
		Position: geom.Vector2{X: cfg.BoardSize - 1, Y: 10},
		Velocity: geom.Vector2{X: 100, Y: 0},
	}))

	var got *fakeHandoffCall
	handoff := &fakeHandoff{onWall: func(c fakeHandoffCall) { got = &c }}

	Step(b, cfg, handoff)

	require.Empty(t, b.Balls())
	require.NotNil(t, got)
	require.Equal(t, "neighbour", got.destBoard)
}

// TestStepFlipperMidSweepAddsTangentialVelocity exercises spec.md §8
// scenario 6: a ball reaching an IsMoving()==true flipper must pick up
// the flipper's rotational momentum, not just a static bounce.
func TestStepFlipperMidSweepAddsTangentialVelocity(t *testing.T) {
	cfg := config.Default()
	cfg.Gravity, cfg.Friction1, cfg.Friction2 = 0, 0, 0
	cfg.FrameBudget = 30 * time.Millisecond

	newScene := func(trigger bool) *board.Board {
		b := board.New("test", cfg)
		fl := gadget.NewLeftFlipper("fl", 5, 5)
		require.NoError(t, b.AddFlipper(fl))
		if trigger {
			fl.Trigger()
		}
		require.NoError(t, b.AddBall(ball.Ball{
			Name:     "a",
			Position: geom.Vector2{X: 6, Y: 3.75},
			Velocity: geom.Vector2{X: 0, Y: 50},
		}))
		return b
	}

	resting := newScene(false)
	Step(resting, cfg, NoHandoff{})
	restingVel := resting.Balls()[0].Velocity

	moving := newScene(true)
	require.True(t, moving.Flippers()[0].IsMoving())
	Step(moving, cfg, NoHandoff{})
	movingVel := moving.Balls()[0].Velocity

	require.InDelta(t, 0, restingVel.X, 1e-6)
	require.InDelta(t, -50, restingVel.Y, 1e-6)

	// Mid-sweep the flipper is already tilted, so its contact normal
	// (and the outgoing velocity) gains a leftward X component.
	require.InDelta(t, -30.9266, movingVel.X, 1e-3)
	require.Less(t, movingVel.Y, restingVel.Y-5, "a ball hitting a mid-sweep flipper should leave with extra tangential velocity from the rotation, not a plain static bounce")
}

type fakeHandoffCall struct {
	destBoard string
	ballName  string
}

type fakeHandoff struct {
	onWall func(fakeHandoffCall)
}

func (f *fakeHandoff) TeleportWall(destBoard, ballName string, vel geom.Vector2, x, y float64, wall board.Wall) {
	if f.onWall != nil {
		f.onWall(fakeHandoffCall{destBoard: destBoard, ballName: ballName})
	}
}

func (f *fakeHandoff) TeleportPortal(destBoard, ballName string, vel geom.Vector2, portalName string) {}
