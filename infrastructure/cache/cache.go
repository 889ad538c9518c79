// Package cache guarda o último snapshot válido do dashboard, servido quando
// a leitura do banco falha temporariamente.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"

	keyPrefix = "dashboard:snapshot:"
)

var ErrUnknownDriver = errors.New("driver de cache desconhecido")

type SnapshotStore interface {
	Save(ctx context.Context, key string, snapshot *domain.DashboardSnapshot) error
	// Load retorna nil, nil quando não há snapshot para a chave
	Load(ctx context.Context, key string) (*domain.DashboardSnapshot, error)
	Close() error
}

// SnapshotKey identifica o snapshot pela data dos rankings exibidos
func SnapshotKey(rankingDate time.Time) string {
	return keyPrefix + rankingDate.Format(time.DateOnly)
}

// New escolhe a implementação conforme CACHE_DRIVER
func New(ctx context.Context, cfg config.Cache) (SnapshotStore, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		return NewMemoryStore(cfg.SnapshotSize, cfg.SnapshotTTL), nil
	case DriverRedis:
		return NewRedisStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Driver)
	}
}
