package loader

import (
	"strings"
	"testing"

	"github.com/lguibr/pinball/internal/config"
	"github.com/stretchr/testify/require"
)

func TestParseBuildsBoardFromDeclarations(t *testing.T) {
	src := `# a comment line
board name=test gravity=10 friction1=0.1 friction2=0.2
ball name=b1 x=5 y=5 xVelocity=0 yVelocity=0
squareBumper name=sq1 x=2 y=2
circleBumper name=ci1 x=4 y=4
triangleBumper name=tr1 x=6 y=6 orientation=90
absorber name=ab1 x=0 y=18 width=10 height=2
leftFlipper name=lf1 x=8 y=10
rightFlipper name=rf1 x=12 y=10
portal name=p1 x=1 y=1 otherPortal=p2
portal name=p2 x=15 y=15 otherPortal=p1
fire trigger=sq1 action=lf1
`
	d, err := Parse(strings.NewReader(src), config.Default())
	require.NoError(t, err)

	b := d.Board
	require.Equal(t, "test", b.Name())
	require.Equal(t, 10.0, b.Gravity())
	require.Equal(t, 0.1, b.Friction1())
	require.Equal(t, 0.2, b.Friction2())
	require.Len(t, b.Balls(), 1)
	require.Len(t, b.Bumpers(), 3)
	require.Len(t, b.Absorbers(), 1)
	require.Len(t, b.Flippers(), 2)
	require.Len(t, b.Portals(), 2)

	fired := map[string]bool{}
	b.FireCascade("sq1", config.Default(), fired)
	require.True(t, fired["lf1"])
}

func TestParseResolvesForwardReferencedFire(t *testing.T) {
	src := `board name=test
fire trigger=ab1 action=lf1
absorber name=ab1 x=0 y=0 width=2 height=2
leftFlipper name=lf1 x=10 y=10
`
	d, err := Parse(strings.NewReader(src), config.Default())
	require.NoError(t, err)

	fired := map[string]bool{}
	d.Board.FireCascade("ab1", config.Default(), fired)
	require.True(t, fired["lf1"])
}

func TestParseRejectsMalformedAttribute(t *testing.T) {
	src := `board name=test
ball name=b1 x=5 y
`
	_, err := Parse(strings.NewReader(src), config.Default())
	require.Error(t, err)
}

func TestParseRejectsUnknownKeyword(t *testing.T) {
	_, err := Parse(strings.NewReader("spinner name=s1 x=1 y=1\n"), config.Default())
	require.Error(t, err)
}

func TestParseRejectsDuplicateBallName(t *testing.T) {
	src := `board name=test
ball name=b1 x=5 y=5 xVelocity=0 yVelocity=0
ball name=b1 x=6 y=6 xVelocity=0 yVelocity=0
`
	_, err := Parse(strings.NewReader(src), config.Default())
	require.Error(t, err)
}

func TestParseCapturesKeyBindings(t *testing.T) {
	src := `board name=test
leftFlipper name=lf1 x=8 y=10
keydown key=Left action=lf1
keyup key=Left action=lf1
`
	d, err := Parse(strings.NewReader(src), config.Default())
	require.NoError(t, err)
	require.Equal(t, "lf1", d.Keys.Down["Left"])
	require.Equal(t, "lf1", d.Keys.Up["Left"])
}
