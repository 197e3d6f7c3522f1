package redis

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// ByteStore implements ports.VersionedStore on Redis strings. Registry
// documents never expire.
type ByteStore struct {
	client *goredis.Client
	prefix string
}

// NewByteStore creates a Redis-backed registry store. prefix namespaces
// every key (e.g. "registry:credit_keys").
func NewByteStore(client *goredis.Client, prefix string) *ByteStore {
	return &ByteStore{
		client: client,
		prefix: prefix,
	}
}

// IsAvailable pings the server.
func (s *ByteStore) IsAvailable(ctx context.Context) bool {
	return s.client.Ping(ctx).Err() == nil
}

// GetData returns the value at key, or an empty slice if it does not exist.
func (s *ByteStore) GetData(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return []byte{}, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// SetData stores value at key without expiry.
func (s *ByteStore) SetData(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// CompareAndSwap uses WATCH/MULTI/EXEC: the write is discarded if another
// client touches the key between the read and EXEC.
func (s *ByteStore) CompareAndSwap(ctx context.Context, key string, expected, value []byte) (bool, error) {
	k := s.prefix + key
	swapped := false

	err := s.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, k).Bytes()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		if !bytes.Equal(current, expected) {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, k, value, 0)
			return nil
		})
		if err != nil {
			return err
		}
		swapped = true
		return nil
	}, k)

	if errors.Is(err, goredis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis compare-and-swap %s: %w", key, err)
	}
	return swapped, nil
}
