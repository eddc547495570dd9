package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session := domain.NewSession("sess-1", time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	session.Application.Vehicle.Plate = "MS 01 ABC"

	require.NoError(t, store.Save(ctx, session))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, session.ID, loaded.ID)
	require.Equal(t, "MS 01 ABC", loaded.Application.Vehicle.Plate)
}

func TestMemoryStoreLoadReturnsIndependentCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session := domain.NewSession("sess-1", time.Now())
	require.NoError(t, store.Save(ctx, session))

	first, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	first.Application.Vehicle.Plate = "changed"

	second, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, "", second.Application.Vehicle.Plate)
}

func TestMemoryStoreMissingSession(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load(context.Background(), "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session := domain.NewSession("sess-1", time.Now())
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err := store.Load(ctx, "sess-1")
	require.ErrorIs(t, err, ErrSessionNotFound)
}
