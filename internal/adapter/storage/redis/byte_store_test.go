package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestByteStore(t *testing.T) (*ByteStore, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewByteStore(client, "registry:"), s
}

func TestByteStore_SetAndGet(t *testing.T) {
	store, s := newTestByteStore(t)
	ctx := context.Background()

	// Absent key => empty, no error
	result, err := store.GetData(ctx, "credit_keys")
	require.NoError(t, err)
	assert.Empty(t, result)

	value := []byte(`["1700000000000-abc1234"]`)
	require.NoError(t, store.SetData(ctx, "credit_keys", value))

	result, err = store.GetData(ctx, "credit_keys")
	require.NoError(t, err)
	assert.Equal(t, value, result)

	raw, err := s.Get("registry:credit_keys")
	require.NoError(t, err)
	assert.Equal(t, string(value), raw, "keys are namespaced by prefix")
	assert.Zero(t, s.TTL("registry:credit_keys"), "registry documents never expire")
}

func TestByteStore_IsAvailable(t *testing.T) {
	store, s := newTestByteStore(t)
	assert.True(t, store.IsAvailable(context.Background()))

	s.Close()
	assert.False(t, store.IsAvailable(context.Background()))
}

func TestByteStore_ErrorsWhenServerGone(t *testing.T) {
	store, s := newTestByteStore(t)
	s.Close()

	_, err := store.GetData(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, store.SetData(context.Background(), "k", []byte("v")))
}

func TestByteStore_CompareAndSwap(t *testing.T) {
	store, _ := newTestByteStore(t)
	ctx := context.Background()

	// Absent key matches an empty expectation.
	ok, err := store.CompareAndSwap(ctx, "credit_keys", nil, []byte(`["a"]`))
	require.NoError(t, err)
	assert.True(t, ok)

	// Stale expectation loses.
	ok, err = store.CompareAndSwap(ctx, "credit_keys", nil, []byte(`["b"]`))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.CompareAndSwap(ctx, "credit_keys", []byte(`["a"]`), []byte(`["a","b"]`))
	require.NoError(t, err)
	assert.True(t, ok)

	result, err := store.GetData(ctx, "credit_keys")
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(result))
}
