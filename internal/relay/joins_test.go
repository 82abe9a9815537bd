package relay

import (
	"testing"

	"github.com/lguibr/pinball/internal/board"
	"github.com/stretchr/testify/require"
)

func TestJoinTableSetIsIdempotent(t *testing.T) {
	jt := newJoinTable()

	_, evicted := jt.set("A", board.Right, "B")
	require.False(t, evicted)

	_, evicted = jt.set("A", board.Right, "B")
	require.False(t, evicted, "re-joining the same pair must not report an eviction")

	v, ok := jt.get("A", board.Right)
	require.True(t, ok)
	require.Equal(t, "B", v)
}

func TestJoinTableSetEvictsPriorDifferentNeighbour(t *testing.T) {
	jt := newJoinTable()
	jt.set("A", board.Right, "B")

	evicted, ok := jt.set("A", board.Right, "C")
	require.True(t, ok)
	require.Equal(t, "B", evicted)
}

func TestPortalTableTracksLiveness(t *testing.T) {
	pt := newPortalTable()
	require.False(t, pt.isLive("p1"))

	pt.setLive("p1", true)
	require.True(t, pt.isLive("p1"))

	pt.setLive("p1", false)
	require.False(t, pt.isLive("p1"))
}
