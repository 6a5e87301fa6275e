package memory

import (
	"context"
	"testing"

	"solid-example/solid/srp/compliant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(compliant.User{UserID: 1, Name: "개발구루", Email: "guru@example.com"})

	u, err := store.Load(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "개발구루", u.Name)

	u, err = store.Load(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, u)

	junior := compliant.NewUser(2, "주니어개발자", "junior@example.com")
	require.NoError(t, store.Store(ctx, junior))
	junior.Name = "changed after save"

	u, err = store.Load(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "주니어개발자", u.Name, "store keeps its own copy")
}

func TestUserStoreHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewUserStore()
	_, err := store.Load(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Store(ctx, compliant.NewUser(1, "a", "b")), context.Canceled)
}
