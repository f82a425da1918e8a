package docstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Memory keeps documents in process. It backs local runs without a database
// and the tests.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]Document
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]Document)}
}

func (m *Memory) Insert(_ context.Context, collection string, v any) (string, error) {
	if collection == "" {
		return "", ErrCollectionRequired
	}
	doc, err := toDocument(v)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	doc["_id"] = id

	m.mu.Lock()
	m.docs[collection] = append(m.docs[collection], doc)
	m.mu.Unlock()

	return id, nil
}

// Documents returns a snapshot of a collection in insertion order.
func (m *Memory) Documents(collection string) []Document {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Document, len(m.docs[collection]))
	copy(out, m.docs[collection])
	return out
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Collections(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.docs))
	for name := range m.docs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) Close(context.Context) error { return nil }
