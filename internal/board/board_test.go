package board

import (
	"testing"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/gadget"
	"github.com/lguibr/pinball/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestAddBallRejectsOutOfRangePosition(t *testing.T) {
	b := New("test", config.Default())
	err := b.AddBall(ball.Ball{Name: "a", Position: geom.Vector2{X: 0, Y: 5}})
	require.Error(t, err)
}

func TestAddBallRejectsDuplicateName(t *testing.T) {
	b := New("test", config.Default())
	require.NoError(t, b.AddBall(ball.Ball{Name: "a", Position: geom.Vector2{X: 5, Y: 5}}))
	err := b.AddBall(ball.Ball{Name: "a", Position: geom.Vector2{X: 6, Y: 6}})
	require.Error(t, err)
}

func TestSetTriggerForwardReferenceResolves(t *testing.T) {
	cfg := config.Default()
	b := New("test", cfg)
	b.AddAbsorber(gadget.NewAbsorber("abs", 0, 18, 10, 2))

	b.SetTrigger("abs", "flip1") // action not yet defined
	require.NoError(t, b.AddFlipper(gadget.NewLeftFlipper("flip1", 0, 0)))

	fl, ok := b.GadgetByName("flip1")
	require.True(t, ok)
	require.False(t, fl.(*gadget.Flipper).IsMoving())

	fired := map[string]bool{}
	b.FireCascade("abs", cfg, fired)
	require.True(t, fl.(*gadget.Flipper).IsMoving())
}

func TestFinalizeTriggersDropsUnresolved(t *testing.T) {
	b := New("test", config.Default())
	require.NoError(t, b.AddAbsorber(gadget.NewAbsorber("abs", 0, 18, 10, 2)))
	b.SetTrigger("abs", "never-defined")
	b.FinalizeTriggers()

	fired := map[string]bool{}
	b.FireCascade("abs", config.Default(), fired)
	require.Empty(t, fired)
}

func TestTriggerByNameEmitsFromAbsorber(t *testing.T) {
	cfg := config.Default()
	b := New("test", cfg)
	abs := gadget.NewAbsorber("abs", 0, 18, 10, 2)
	abs.Capture("ball-1")
	require.NoError(t, b.AddAbsorber(abs))

	b.TriggerByName("abs", cfg)
	balls := b.Balls()
	require.Len(t, balls, 1)
	require.Equal(t, "ball-1", balls[0].Name)
}

func TestCascadeDoesNotRevisitSameGadgetTwice(t *testing.T) {
	cfg := config.Default()
	b := New("test", cfg)
	require.NoError(t, b.AddAbsorber(gadget.NewAbsorber("a1", 0, 0, 2, 2)))
	require.NoError(t, b.AddAbsorber(gadget.NewAbsorber("a2", 5, 0, 2, 2)))
	b.SetTrigger("a1", "a2")
	b.SetTrigger("a2", "a1")

	fired := map[string]bool{}
	require.NotPanics(t, func() {
		b.FireCascade("a1", cfg, fired)
	})
	require.Len(t, fired, 2)
}

func TestJoinEvictsPriorNeighbour(t *testing.T) {
	b := New("test", config.Default())
	_, hadPrior := b.Join(Left, "board-A")
	require.False(t, hadPrior)

	evicted, hadPrior := b.Join(Left, "board-B")
	require.True(t, hadPrior)
	require.Equal(t, "board-A", evicted)
}

func TestWallOpposite(t *testing.T) {
	require.Equal(t, Right, Left.Opposite())
	require.Equal(t, Bottom, Top.Opposite())
}
