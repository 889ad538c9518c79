package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type RankingRepository interface {
	ListByReport(ctx context.Context, reportID string, rankingType domain.RankingType) ([]*domain.Ranking, error)
}

type rankingRepository struct {
	conn *postgres.Connection
}

func NewRankingRepository(conn *postgres.Connection) RankingRepository {
	return &rankingRepository{
		conn: conn,
	}
}

func (r *rankingRepository) ListByReport(ctx context.Context, reportID string, rankingType domain.RankingType) ([]*domain.Ranking, error) {
	query, args, err := squirrel.
		Select(
			"id",
			"report_id",
			"seller_id",
			"ranking_type",
			"position",
			"value_sold",
			"value_received",
			"conversion_rate",
			"profit_margin",
			"oc_number",
			"created_at",
			"updated_at",
		).
		From(rankingsTable).
		Where(squirrel.Eq{"report_id": reportID, "ranking_type": rankingType}).
		OrderBy("position ASC").
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

	rankings := make([]*domain.Ranking, 0, domain.MaxRankingPosition)
	for rows.Next() {
		ranking := &domain.Ranking{}
		err := rows.Scan(
			&ranking.ID,
			&ranking.ReportID,
			&ranking.SellerID,
			&ranking.RankingType,
			&ranking.Position,
			&ranking.ValueSold,
			&ranking.ValueReceived,
			&ranking.ConversionRate,
			&ranking.ProfitMargin,
			&ranking.OCNumber,
			&ranking.CreatedAt,
			&ranking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
		}
		rankings = append(rankings, ranking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rankings, nil
}
