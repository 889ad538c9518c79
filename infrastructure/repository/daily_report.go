// Package repository contém as implementações dos repositórios para acesso aos dados
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
	dailyReportsTable = "daily_reports"
	rankingsTable     = "rankings"
)

var dailyReportColumns = []string{"id", "report_date", "total_effective", "created_by", "created_at", "updated_at"}

type DailyReportRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyReport, error)
	GetLatestInRange(ctx context.Context, from, to time.Time) (*domain.DailyReport, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]*domain.DailyReport, error)
	Upsert(ctx context.Context, report *domain.DailyReport, rankings []*domain.Ranking) (*domain.DailyReport, error)
	DeleteByDate(ctx context.Context, date time.Time) (bool, error)
}

type dailyReportRepository struct {
	conn *postgres.Connection
}

func NewDailyReportRepository(conn *postgres.Connection) DailyReportRepository {
	return &dailyReportRepository{
		conn: conn,
	}
}

func (r *dailyReportRepository) GetByDate(ctx context.Context, date time.Time) (*domain.DailyReport, error) {
	query, args, err := squirrel.
		Select(dailyReportColumns...).
		From(dailyReportsTable).
		Where(squirrel.Eq{"report_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report, err := scanDailyReport(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar relatório do dia: %w", err)
	}

	return report, nil
}

// GetLatestInRange retorna o relatório mais recente com data entre from e to (inclusive)
func (r *dailyReportRepository) GetLatestInRange(ctx context.Context, from, to time.Time) (*domain.DailyReport, error) {
	query, args, err := squirrel.
		Select(dailyReportColumns...).
		From(dailyReportsTable).
		Where(squirrel.GtOrEq{"report_date": from.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"report_date": to.Format(time.DateOnly)}).
		OrderBy("report_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report, err := scanDailyReport(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar último relatório: %w", err)
	}

	return report, nil
}

func (r *dailyReportRepository) ListInRange(ctx context.Context, start, end time.Time) ([]*domain.DailyReport, error) {
	query, args, err := squirrel.
		Select(dailyReportColumns...).
		From(dailyReportsTable).
		Where(squirrel.GtOrEq{"report_date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"report_date": end.Format(time.DateOnly)}).
		OrderBy("report_date ASC").
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

	reports := make([]*domain.DailyReport, 0)
	for rows.Next() {
		report, err := scanDailyReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

// Upsert grava o relatório do dia e substitui todos os seus rankings na mesma transação
func (r *dailyReportRepository) Upsert(ctx context.Context, report *domain.DailyReport, rankings []*domain.Ranking) (*domain.DailyReport, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id: %w", err)
		}

		query, args, err := squirrel.
			Insert(dailyReportsTable).
			Columns("id", "report_date", "total_effective", "created_by").
			Values(id, report.ReportDate.Format(time.DateOnly), report.TotalEffective, report.CreatedBy).
			Suffix(`
				ON CONFLICT (report_date) DO UPDATE SET
					total_effective = EXCLUDED.total_effective,
					updated_at = CURRENT_TIMESTAMP
				RETURNING id, created_at, updated_at`).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao gravar relatório: %w", err)
		}

		deleteQuery, deleteArgs, err := squirrel.
			Delete(rankingsTable).
			Where(squirrel.Eq{"report_id": report.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de remoção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover rankings anteriores: %w", err)
		}

		if len(rankings) == 0 {
			return nil
		}

		insert := squirrel.
			Insert(rankingsTable).
			Columns(
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
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, ranking := range rankings {
			rankingID, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar id: %w", err)
			}
			ranking.ID = rankingID
			ranking.ReportID = report.ID

			insert = insert.Values(
				ranking.ID,
				ranking.ReportID,
				ranking.SellerID,
				ranking.RankingType,
				ranking.Position,
				ranking.ValueSold,
				ranking.ValueReceived,
				ranking.ConversionRate,
				ranking.ProfitMargin,
				ranking.OCNumber,
			)
		}

		insertQuery, insertArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir rankings: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// DeleteByDate remove o relatório e, em cascata, seus rankings
func (r *dailyReportRepository) DeleteByDate(ctx context.Context, date time.Time) (bool, error) {
	query, args, err := squirrel.
		Delete(dailyReportsTable).
		Where(squirrel.Eq{"report_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover relatório: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar remoção: %w", err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDailyReport(row rowScanner) (*domain.DailyReport, error) {
	report := &domain.DailyReport{}

	err := row.Scan(
		&report.ID,
		&report.ReportDate,
		&report.TotalEffective,
		&report.CreatedBy,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return report, nil
}
