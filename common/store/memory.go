package store

import (
	"context"
	"encoding/json"
	"sync"

	apperrors "github.com/burakmert236/matchday/common/errors"
)

// MemoryStore is the default backend: an in-process map of JSON blobs.
// Writers are single-threaded by construction, but event handlers may
// read concurrently, so access is mutex-guarded anyway.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (m *MemoryStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// Malformed blobs are treated as absent, per the Store contract.
		return false, nil
	}

	return true, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to marshal value for key "+key)
	}

	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()

	return nil
}

func (m *MemoryStore) SetMulti(ctx context.Context, entries []Entry) error {
	encoded := make(map[string][]byte, len(entries))
	for _, entry := range entries {
		raw, err := json.Marshal(entry.Value)
		if err != nil {
			return apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to marshal value for key "+entry.Key)
		}
		encoded[entry.Key] = raw
	}

	m.mu.Lock()
	for key, raw := range encoded {
		m.data[key] = raw
	}
	m.mu.Unlock()

	return nil
}

func (m *MemoryStore) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()

	return nil
}
