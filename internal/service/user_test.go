package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_EnsureUser(t *testing.T) {
	users := &fakeUserRepo{}
	settings := newFakeSettingsRepo()
	tr := &fakeTransactor{}
	svc := NewUserService(users, settings, tr)

	require.NoError(t, svc.EnsureUser(context.Background(), 1, 100))
	require.NoError(t, svc.EnsureUser(context.Background(), 1, 100))

	assert.Equal(t, 2, tr.calls)
	assert.Len(t, users.saved, 2)
	assert.Len(t, settings.byUser, 1)

	users.err = errDB
	assert.ErrorIs(t, svc.EnsureUser(context.Background(), 2, 200), errDB)
	assert.Len(t, settings.byUser, 1)
}
