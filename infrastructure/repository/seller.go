package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	sellersTable       = "sellers"
	sellersJoinedTable = "sellers s"
)

type SellerRepository interface {
	List(ctx context.Context) ([]*domain.Seller, error)
	GetByID(ctx context.Context, id string) (*domain.Seller, error)
	Create(ctx context.Context, seller *domain.Seller) (*domain.Seller, error)
	Update(ctx context.Context, seller *domain.Seller) error
	Delete(ctx context.Context, id string) (bool, error)
}

type sellerRepository struct {
	conn *postgres.Connection
}

func NewSellerRepository(conn *postgres.Connection) SellerRepository {
	return &sellerRepository{
		conn: conn,
	}
}

func selectSellersWithTeam() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"s.id",
			"s.name",
			"s.email",
			"s.status",
			"s.team_id",
			"s.created_at",
			"s.updated_at",
			"t.name",
			"t.description",
			"t.created_at",
			"t.updated_at",
		).
		From(sellersJoinedTable).
		LeftJoin("teams t ON t.id = s.team_id").
		PlaceholderFormat(squirrel.Dollar)
}

// List retorna todos os vendedores com a equipe resolvida
func (r *sellerRepository) List(ctx context.Context) ([]*domain.Seller, error) {
	query, args, err := selectSellersWithTeam().OrderBy("s.name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sellers := make([]*domain.Seller, 0)
	for rows.Next() {
		seller, err := scanSellerWithTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
		}
		sellers = append(sellers, seller)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sellers, nil
}

func (r *sellerRepository) GetByID(ctx context.Context, id string) (*domain.Seller, error) {
	query, args, err := selectSellersWithTeam().Where(squirrel.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	seller, err := scanSellerWithTeam(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar vendedor: %w", err)
	}

	return seller, nil
}

func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) (*domain.Seller, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id: %w", err)
	}
	seller.ID = id

	query, args, err := squirrel.
		Insert(sellersTable).
		Columns("id", "name", "email", "status", "team_id").
		Values(seller.ID, seller.Name, seller.Email, seller.Status, seller.TeamID).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&seller.CreatedAt, &seller.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir vendedor: %w", err)
	}

	return seller, nil
}

func (r *sellerRepository) Update(ctx context.Context, seller *domain.Seller) error {
	query, args, err := squirrel.
		Update(sellersTable).
		Set("name", seller.Name).
		Set("email", seller.Email).
		Set("status", seller.Status).
		Set("team_id", seller.TeamID).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": seller.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar vendedor: %w", err)
	}

	return nil
}

func (r *sellerRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.conn, sellersTable, id)
}

func scanSellerWithTeam(row rowScanner) (*domain.Seller, error) {
	seller := &domain.Seller{}

	var (
		teamName        *string
		teamDescription *string
		teamCreatedAt   *time.Time
		teamUpdatedAt   *time.Time
	)

	err := row.Scan(
		&seller.ID,
		&seller.Name,
		&seller.Email,
		&seller.Status,
		&seller.TeamID,
		&seller.CreatedAt,
		&seller.UpdatedAt,
		&teamName,
		&teamDescription,
		&teamCreatedAt,
		&teamUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if seller.TeamID != nil && teamName != nil {
		seller.Team = &domain.Team{
			ID:          *seller.TeamID,
			Name:        *teamName,
			Description: teamDescription,
		}
		if teamCreatedAt != nil {
			seller.Team.CreatedAt = *teamCreatedAt
		}
		if teamUpdatedAt != nil {
			seller.Team.UpdatedAt = *teamUpdatedAt
		}
	}

	return seller, nil
}

// deleteByID remove uma linha pelo id e informa se ela existia
func deleteByID(ctx context.Context, q postgres.Queryer, table, id string) (bool, error) {
	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover de %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar remoção: %w", err)
	}

	return affected > 0, nil
}
