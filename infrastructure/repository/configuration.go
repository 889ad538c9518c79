package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const configurationsTable = "configurations"

type ConfigurationRepository interface {
	Get(ctx context.Context) (*domain.Configuration, error)
	Save(ctx context.Context, cfg *domain.Configuration) (*domain.Configuration, error)
}

type configurationRepository struct {
	conn *postgres.Connection
}

func NewConfigurationRepository(conn *postgres.Connection) ConfigurationRepository {
	return &configurationRepository{
		conn: conn,
	}
}

// Get retorna a configuração única do dashboard, ou nil se ainda não existir
func (r *configurationRepository) Get(ctx context.Context) (*domain.Configuration, error) {
	query, args, err := squirrel.
		Select("id", "dashboard_title", "company_logo", "created_at", "updated_at").
		From(configurationsTable).
		OrderBy("created_at ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cfg := &domain.Configuration{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.DashboardTitle,
		&cfg.CompanyLogo,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar configuração: %w", err)
	}

	return cfg, nil
}

// Save cria a configuração na primeira gravação e atualiza nas seguintes
func (r *configurationRepository) Save(ctx context.Context, cfg *domain.Configuration) (*domain.Configuration, error) {
	if cfg.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar id: %w", err)
		}
		cfg.ID = id
	}

	query, args, err := squirrel.
		Insert(configurationsTable).
		Columns("id", "dashboard_title", "company_logo").
		Values(cfg.ID, cfg.DashboardTitle, cfg.CompanyLogo).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				dashboard_title = EXCLUDED.dashboard_title,
				company_logo = EXCLUDED.company_logo,
				updated_at = CURRENT_TIMESTAMP
			RETURNING created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de gravação: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&cfg.CreatedAt, &cfg.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao gravar configuração: %w", err)
	}

	return cfg, nil
}
