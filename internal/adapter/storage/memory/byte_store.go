// Package memory provides process-local implementations of the storage
// ports. They back tests and single-process development runs.
package memory

import (
	"bytes"
	"context"
	"sync"
)

// ByteStore implements ports.VersionedStore over a map.
type ByteStore struct {
	mu          sync.RWMutex
	data        map[string][]byte
	unavailable bool
}

// NewByteStore creates an empty, available store.
func NewByteStore() *ByteStore {
	return &ByteStore{data: make(map[string][]byte)}
}

// SetAvailable toggles the availability probe.
func (s *ByteStore) SetAvailable(available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = !available
}

// IsAvailable reports the availability set by SetAvailable (default true).
func (s *ByteStore) IsAvailable(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.unavailable
}

// GetData returns a copy of the value, or an empty slice for an absent key.
func (s *ByteStore) GetData(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]byte{}, s.data[key]...), nil
}

// SetData stores a copy of value.
func (s *ByteStore) SetData(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte{}, value...)
	return nil
}

// CompareAndSwap replaces the value at key only if it still equals expected.
func (s *ByteStore) CompareAndSwap(_ context.Context, key string, expected, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !bytes.Equal(s.data[key], expected) {
		return false, nil
	}
	s.data[key] = append([]byte{}, value...)
	return true, nil
}

// Delete removes key. Used by tests to simulate orphaned index entries.
func (s *ByteStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Len returns the number of stored keys.
func (s *ByteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Ping implements ports.HealthChecker.
func (s *ByteStore) Ping(_ context.Context) error {
	return nil
}

// Name implements ports.HealthChecker.
func (s *ByteStore) Name() string {
	return "memory"
}
