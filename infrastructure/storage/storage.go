// Package storage guarda o logo da empresa exibido no dashboard.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"

	DefaultLocalPath = "./uploads"
)

type Storage interface {
	// Upload grava o arquivo e retorna a URL pública
	Upload(ctx context.Context, file io.Reader, key, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// New escolhe o driver conforme STORAGE_DRIVER
func New(ctx context.Context, cfg config.Storage) (Storage, error) {
	switch cfg.Driver {
	case "", DriverLocal:
		return NewLocalStorage(LocalPath(cfg), cfg.PublicURL), nil
	case DriverS3:
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("driver de armazenamento não suportado: %s", cfg.Driver)
	}
}

// LocalPath retorna o diretório do driver local
func LocalPath(cfg config.Storage) string {
	if cfg.LocalPath == "" {
		return DefaultLocalPath
	}
	return cfg.LocalPath
}

// joinURL junta a URL base e a chave sem barras duplicadas
func joinURL(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path.Clean("/"+key), "/")
}
