package relay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	require.Equal(t, Offline, s.State())

	s.BeginRegistering()
	require.Equal(t, Registering, s.State())

	s.CompleteRegistration("boardA")
	require.Equal(t, Online, s.State())
	require.Equal(t, "boardA", s.BoardName)

	s.Disconnect()
	require.Equal(t, Offline, s.State())
	require.Equal(t, "offline", s.State().String())
}

func TestSessionCompleteRegistrationIgnoredOutsideRegistering(t *testing.T) {
	s := NewSession()
	s.CompleteRegistration("boardA")
	require.Equal(t, Offline, s.State())
	require.Empty(t, s.BoardName)
}

func TestSessionBeginRegisteringIgnoredOutsideOffline(t *testing.T) {
	s := NewSession()
	s.BeginRegistering()
	s.CompleteRegistration("boardA")
	s.BeginRegistering()
	require.Equal(t, Online, s.State())
}
