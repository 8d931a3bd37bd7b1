package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_MissingKeyYieldsEmpty(t *testing.T) {
	s := NewMemoryStore()

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestMemoryStore_SetRemoveClear(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "k", "v"))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v", v)

	require.NoError(t, s.Remove(ctx, "k"))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "", v)

	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, s.Set(ctx, "b", "2"))
	require.NoError(t, s.Clear(ctx))
	v, err = s.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestMemoryStore_BatchFailureLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "k", "before"))

	boom := errors.New("boom")
	err := s.Batch(ctx, func(ctx context.Context, staged KVStore) error {
		if err := staged.Set(ctx, "k", "after"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "before", v)
}

func TestMemoryStore_BatchSuccessApplies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	err := s.Batch(ctx, func(ctx context.Context, staged KVStore) error {
		if err := staged.Set(ctx, "a", "1"); err != nil {
			return err
		}
		return staged.Remove(ctx, "missing")
	})
	require.NoError(t, err)

	v, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "1", v)
}
