package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const defaultMemorySize = 512

// MemoryStore mantém os snapshots serializados para que o chamador nunca
// compartilhe ponteiros com o cache. Acima de size entradas a menos usada
// recentemente é descartada.
type MemoryStore struct {
	entries *expirable.LRU[string, []byte]
}

func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = defaultMemorySize
	}

	return &MemoryStore{
		entries: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (m *MemoryStore) Save(_ context.Context, key string, snapshot *domain.DashboardSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	m.entries.Add(key, payload)
	return nil
}

func (m *MemoryStore) Load(_ context.Context, key string) (*domain.DashboardSnapshot, error) {
	payload, ok := m.entries.Get(key)
	if !ok {
		return nil, nil
	}

	var snapshot domain.DashboardSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// Len conta as entradas guardadas, incluindo expiradas ainda não varridas
func (m *MemoryStore) Len() int {
	return m.entries.Len()
}

func (m *MemoryStore) Close() error {
	m.entries.Purge()
	return nil
}
