package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ByteStore implements ports.VersionedStore on the kv_store table.
type ByteStore struct {
	pool Pool
}

// NewByteStore creates a new ByteStore.
func NewByteStore(pool Pool) *ByteStore {
	return &ByteStore{pool: pool}
}

// IsAvailable pings the database.
func (s *ByteStore) IsAvailable(ctx context.Context) bool {
	return s.pool.Ping(ctx) == nil
}

// GetData returns the value at key, or an empty slice if the row is absent.
func (s *ByteStore) GetData(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []byte{}, nil
		}
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

// SetData upserts the value at key.
func (s *ByteStore) SetData(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// CompareAndSwap writes value only if the row still holds expected. An empty
// expected value matches a missing row or an empty one.
func (s *ByteStore) CompareAndSwap(ctx context.Context, key string, expected, value []byte) (bool, error) {
	var (
		query string
		args  []any
	)
	if len(expected) == 0 {
		query = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
			WHERE kv_store.value = ''::bytea`
		args = []any{key, value}
	} else {
		query = `UPDATE kv_store SET value = $3, updated_at = now() WHERE key = $1 AND value = $2`
		args = []any{key, expected, value}
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("compare-and-swap %s: %w", key, err)
	}
	return tag.RowsAffected() == 1, nil
}
