package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"biodiversity-credits/internal/core/ports"
)

// Compile-time interface satisfaction check.
var _ ports.VersionedStore = (*ByteStore)(nil)

// ByteStore is the SQLite implementation of the VersionedStore port.
type ByteStore struct {
	db  *DB
	now func() time.Time
}

// NewByteStore creates a new ByteStore backed by the given DB.
func NewByteStore(db *DB) *ByteStore {
	return &ByteStore{db: db, now: time.Now}
}

// IsAvailable pings the reader pool.
func (s *ByteStore) IsAvailable(ctx context.Context) bool {
	return s.db.Ping(ctx) == nil
}

// GetData returns the value at key, or an empty slice if the row is absent.
func (s *ByteStore) GetData(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM kv_store WHERE key = ?`

	var value []byte
	err := s.db.Reader.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// SetData inserts or replaces the value at key.
func (s *ByteStore) SetData(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.Writer.ExecContext(ctx, query, key, nonNil(value), s.now().Unix()); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// CompareAndSwap writes value only if the row still holds expected. An empty
// expected value matches a missing row or an empty one.
func (s *ByteStore) CompareAndSwap(ctx context.Context, key string, expected, value []byte) (bool, error) {
	var (
		res sql.Result
		err error
	)
	if len(expected) == 0 {
		const query = `
			INSERT INTO kv_store (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at
			WHERE length(kv_store.value) = 0
		`
		res, err = s.db.Writer.ExecContext(ctx, query, key, nonNil(value), s.now().Unix())
	} else {
		const query = `UPDATE kv_store SET value = ?, updated_at = ? WHERE key = ? AND value = ?`
		res, err = s.db.Writer.ExecContext(ctx, query, nonNil(value), s.now().Unix(), key, expected)
	}
	if err != nil {
		return false, fmt.Errorf("compare-and-swap %s: %w", key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("compare-and-swap %s rows affected: %w", key, err)
	}
	return n == 1, nil
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
