package render

import (
	"strings"
	"testing"

	"github.com/lguibr/pinball/internal/ball"
	"github.com/lguibr/pinball/internal/board"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/gadget"
	"github.com/lguibr/pinball/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestRenderASCIIPlacesBallGlyph(t *testing.T) {
	b := board.New("test", config.Default())
	require.NoError(t, b.AddBall(ball.Ball{Name: "b1", Position: geom.Vector2{X: 10, Y: 10}}))
	out := RenderASCII(AdaptSnapshot(b.Snapshot()), 20)
	require.Contains(t, out, "test")
	require.True(t, strings.Contains(out, string(glyphBall)))
}

func TestRenderASCIIShowsBumperGlyphWhenNoBall(t *testing.T) {
	b := board.New("test", config.Default())
	require.NoError(t, b.AddBumper(gadget.NewSquareBumper("sq1", 2, 2)))
	out := RenderASCII(AdaptSnapshot(b.Snapshot()), 20)
	require.True(t, strings.Contains(out, string(glyphBumper)))
}
