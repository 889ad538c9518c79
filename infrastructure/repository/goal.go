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

const goalsTable = "global_goals"

var goalColumns = []string{"id", "title", "target_value", "current_value", "period", "status", "created_at", "updated_at"}

type GoalRepository interface {
	List(ctx context.Context) ([]*domain.GlobalGoal, error)
	ListActive(ctx context.Context) ([]*domain.GlobalGoal, error)
	GetByID(ctx context.Context, id string) (*domain.GlobalGoal, error)
	Create(ctx context.Context, goal *domain.GlobalGoal) (*domain.GlobalGoal, error)
	Update(ctx context.Context, goal *domain.GlobalGoal) error
	Delete(ctx context.Context, id string) (bool, error)
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) List(ctx context.Context) ([]*domain.GlobalGoal, error) {
	return r.list(ctx, nil)
}

func (r *goalRepository) ListActive(ctx context.Context) ([]*domain.GlobalGoal, error) {
	return r.list(ctx, squirrel.Eq{"status": domain.GoalStatusActive})
}

func (r *goalRepository) list(ctx context.Context, filter squirrel.Sqlizer) ([]*domain.GlobalGoal, error) {
	builder := squirrel.
		Select(goalColumns...).
		From(goalsTable).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.GlobalGoal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		goals = append(goals, goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (*domain.GlobalGoal, error) {
	query, args, err := squirrel.
		Select(goalColumns...).
		From(goalsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal, err := scanGoal(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar meta: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) Create(ctx context.Context, goal *domain.GlobalGoal) (*domain.GlobalGoal, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id: %w", err)
	}
	goal.ID = id

	query, args, err := squirrel.
		Insert(goalsTable).
		Columns("id", "title", "target_value", "current_value", "period", "status").
		Values(goal.ID, goal.Title, goal.TargetValue, goal.CurrentValue, goal.Period, goal.Status).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&goal.CreatedAt, &goal.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir meta: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *domain.GlobalGoal) error {
	query, args, err := squirrel.
		Update(goalsTable).
		Set("title", goal.Title).
		Set("target_value", goal.TargetValue).
		Set("period", goal.Period).
		Set("status", goal.Status).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": goal.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar meta: %w", err)
	}

	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.conn, goalsTable, id)
}

func scanGoal(row rowScanner) (*domain.GlobalGoal, error) {
	goal := &domain.GlobalGoal{}

	err := row.Scan(
		&goal.ID,
		&goal.Title,
		&goal.TargetValue,
		&goal.CurrentValue,
		&goal.Period,
		&goal.Status,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return goal, nil
}
