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

const teamsTable = "teams"

var teamColumns = []string{"id", "name", "description", "created_at", "updated_at"}

type TeamRepository interface {
	List(ctx context.Context) ([]*domain.Team, error)
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	Create(ctx context.Context, team *domain.Team) (*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id string) (bool, error)
}

type teamRepository struct {
	conn *postgres.Connection
}

func NewTeamRepository(conn *postgres.Connection) TeamRepository {
	return &teamRepository{
		conn: conn,
	}
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query, args, err := squirrel.
		Select(teamColumns...).
		From(teamsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear equipe: %w", err)
		}
		teams = append(teams, team)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return teams, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query, args, err := squirrel.
		Select(teamColumns...).
		From(teamsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	team, err := scanTeam(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar equipe: %w", err)
	}

	return team, nil
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id: %w", err)
	}
	team.ID = id

	query, args, err := squirrel.
		Insert(teamsTable).
		Columns("id", "name", "description").
		Values(team.ID, team.Name, team.Description).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&team.CreatedAt, &team.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir equipe: %w", err)
	}

	return team, nil
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	query, args, err := squirrel.
		Update(teamsTable).
		Set("name", team.Name).
		Set("description", team.Description).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": team.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar equipe: %w", err)
	}

	return nil
}

// Delete remove a equipe. Vendedores vinculados ficam sem equipe (ON DELETE SET NULL)
func (r *teamRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.conn, teamsTable, id)
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}

	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.Description,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return team, nil
}
