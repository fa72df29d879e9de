package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRecordRequiresUsername(t *testing.T) {
	for _, connected := range []bool{true, false} {
		gw := newFakeGateway(connected)
		svc := &SignIn{Gateway: gw, Log: zerolog.Nop()}

		_, _, err := svc.Record(context.Background(), "", "a@b.com")
		require.ErrorIs(t, err, ErrUsernameRequired)
		require.Empty(t, gw.users)
	}
}

func TestRecordPersisted(t *testing.T) {
	gw := newFakeGateway(true)
	svc := &SignIn{Gateway: gw, Log: zerolog.Nop()}

	user, persisted, err := svc.Record(context.Background(), "ravi", "ravi@example.com")
	require.NoError(t, err)
	require.True(t, persisted)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "ravi", user.Username)
	require.Len(t, gw.users, 1)
}

func TestRecordDemoMode(t *testing.T) {
	gw := newFakeGateway(false)
	svc := &SignIn{Gateway: gw, Log: zerolog.Nop()}

	user, persisted, err := svc.Record(context.Background(), "ravi", "ravi@example.com")
	require.NoError(t, err)
	require.False(t, persisted)
	require.Empty(t, user.ID)
	require.Equal(t, "ravi", user.Username)
	require.False(t, user.CreatedAt.IsZero())
	require.Empty(t, gw.users)
}
