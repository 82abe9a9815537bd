package wire

import (
	"testing"

	"github.com/lguibr/pinball/internal/board"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Message{
		GetClientBoardName{},
		AllConnectedBoards{Boards: []string{"A", "B", "C"}},
		JoinHorizontal{Left: "A", Right: "B"},
		JoinVertical{Top: "A", Bottom: "B"},
		DisconnectWall{Board: "A", Wall: board.Right},
		TeleportPortal{DestBoard: "B", BallName: "ball-1", VX: 3, VY: -2, PortalName: "p2"},
		TeleportWall{DestBoard: "B", BallName: "ball-1", VX: 10, VY: 0, X: 20, Y: 7.5, Wall: board.Right},
		ConnectPortal{PortalName: "p1"},
		DisconnectPortal{PortalName: "p1"},
		Quit{},
		Failure{},
	}

	for _, want := range cases {
		line, err := Encode(want)
		require.NoError(t, err)

		got, err := Decode(line)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestDecodeUnrecognizedLineIsClientBoardName(t *testing.T) {
	got, err := Decode("my-board-1")
	require.NoError(t, err)
	require.Equal(t, ClientBoardName{Name: "my-board-1"}, got)
}

func TestWrapUnwrapSuccess(t *testing.T) {
	line := WrapSuccess("quit")
	require.Equal(t, "success quit", line)

	inner, wrapped := UnwrapSuccess(line)
	require.True(t, wrapped)
	require.Equal(t, "quit", inner)
}

func TestDecodeMalformedTeleportWall(t *testing.T) {
	_, err := Decode("teleportWall= B ball-1 10 0 20")
	require.Error(t, err)
}
