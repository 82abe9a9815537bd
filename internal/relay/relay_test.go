package relay

import (
	"net"
	"testing"
	"time"

	"github.com/lguibr/pinball/internal/wire"
	"github.com/stretchr/testify/require"
)

func TestHandleConnRegistersBoardName(t *testing.T) {
	r := New()
	clientSide, relaySide := net.Pipe()
	defer clientSide.Close()

	go r.handleConn(wire.NewConn(relaySide))

	client := wire.NewConn(clientSide)
	msg, err := client.ReadMessage()
	require.NoError(t, err)
	require.IsType(t, wire.GetClientBoardName{}, msg)

	require.NoError(t, client.WriteMessage(wire.ClientBoardName{Name: "board-A"}))

	msg, err = client.ReadMessage()
	require.NoError(t, err)
	all, ok := msg.(wire.AllConnectedBoards)
	require.True(t, ok)
	require.Contains(t, all.Boards, "board-A")

	require.Eventually(t, func() bool {
		_, ok := r.router.Lookup("board-A")
		return ok
	}, time.Second, 10*time.Millisecond)
}

func TestJoinHorizontalNotifiesBothSides(t *testing.T) {
	r := New()

	aClientSide, aRelaySide := net.Pipe()
	bClientSide, bRelaySide := net.Pipe()
	defer aClientSide.Close()
	defer bClientSide.Close()

	go r.handleConn(wire.NewConn(aRelaySide))
	go r.handleConn(wire.NewConn(bRelaySide))

	aClient := wire.NewConn(aClientSide)
	bClient := wire.NewConn(bClientSide)

	_, _ = aClient.ReadMessage() // getClientBoardName
	require.NoError(t, aClient.WriteMessage(wire.ClientBoardName{Name: "A"}))
	_, _ = aClient.ReadMessage() // allConnectedBoards=

	_, _ = bClient.ReadMessage()
	require.NoError(t, bClient.WriteMessage(wire.ClientBoardName{Name: "B"}))
	// B's registration broadcasts allConnectedBoards= to A and B in map
	// order over unbuffered pipes, so the two reads run concurrently.
	aRoster := make(chan struct{})
	go func() {
		_, _ = aClient.ReadMessage() // second allConnectedBoards= after B joins
		close(aRoster)
	}()
	_, _ = bClient.ReadMessage()
	<-aRoster

	require.Eventually(t, func() bool {
		_, ok := r.router.Lookup("B")
		return ok
	}, time.Second, 10*time.Millisecond)

	// JoinHorizontal writes to A then B over unbuffered pipes; run it
	// beside the reads below so neither write blocks the test.
	go r.JoinHorizontal("A", "B")

	msg, err := aClient.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, wire.JoinHorizontal{Left: "A", Right: "B"}, msg)

	msg, err = bClient.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, wire.JoinHorizontal{Left: "A", Right: "B"}, msg)
}
