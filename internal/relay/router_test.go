package relay

import (
	"net"
	"testing"

	"github.com/lguibr/pinball/internal/wire"
	"github.com/stretchr/testify/require"
)

func pipeConn(t *testing.T) (*wire.Conn, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() { client.Close(); server.Close() })
	return wire.NewConn(client), server
}

func TestRouterRegisterRejectsDuplicateName(t *testing.T) {
	r := NewRouter()
	conn1, _ := pipeConn(t)
	conn2, _ := pipeConn(t)

	require.True(t, r.Register("A", conn1))
	require.False(t, r.Register("A", conn2))
}

func TestRouterUnregisterFreesName(t *testing.T) {
	r := NewRouter()
	conn1, _ := pipeConn(t)
	require.True(t, r.Register("A", conn1))

	r.Unregister("A")

	conn2, _ := pipeConn(t)
	require.True(t, r.Register("A", conn2))
}

func TestRouterNamesInjective(t *testing.T) {
	r := NewRouter()
	c1, _ := pipeConn(t)
	c2, _ := pipeConn(t)
	r.Register("A", c1)
	r.Register("B", c2)

	names := r.Names()
	require.ElementsMatch(t, []string{"A", "B"}, names)
}
