package ports

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

import (
	"context"
	"time"

	"biodiversity-credits/internal/core/domain"
)

// ByteStore is the external key-value backend that owns every credit record
// and the registry index. Keys are UTF-8 strings, values opaque bytes.
type ByteStore interface {
	// IsAvailable probes the backend. Callers treat false as an empty registry.
	IsAvailable(ctx context.Context) bool
	// GetData returns the value at key, or an empty slice if the key is absent.
	GetData(ctx context.Context, key string) ([]byte, error)
	SetData(ctx context.Context, key string, value []byte) error
}

// VersionedStore is a ByteStore that can replace a value only if it still
// holds the expected bytes. A nil or empty expected value means "key absent".
type VersionedStore interface {
	ByteStore
	CompareAndSwap(ctx context.Context, key string, expected, value []byte) (bool, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// NonceStore manages login nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, address string, nonce string, ttl time.Duration) (bool, error)
}
