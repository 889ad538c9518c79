package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var reportColumns = []string{"id", "report_date", "total_effective", "created_by", "created_at", "updated_at"}

func TestDailyReportRepository_GetByDate(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	t.Run("Retorna o relatório do dia", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewDailyReportRepository(conn)

		mock.ExpectQuery(`SELECT .* FROM daily_reports WHERE report_date = \$1`).
			WithArgs("2024-06-15").
			WillReturnRows(sqlmock.NewRows(reportColumns).AddRow("r1", date, "32000.00", "admin@empresa.com", now, now))

		report, err := repo.GetByDate(ctx, date)

		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Equal(t, "r1", report.ID)
		assert.True(t, report.TotalEffective.Equal(decimal.NewFromInt(32000)))
		require.NotNil(t, report.CreatedBy)
		assert.Equal(t, "admin@empresa.com", *report.CreatedBy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Sem relatório retorna nil sem erro", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewDailyReportRepository(conn)

		mock.ExpectQuery(`FROM daily_reports`).WillReturnError(sql.ErrNoRows)

		report, err := repo.GetByDate(ctx, date)

		require.NoError(t, err)
		assert.Nil(t, report)
	})

	t.Run("Erro do banco é propagado", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewDailyReportRepository(conn)

		mock.ExpectQuery(`FROM daily_reports`).WillReturnError(errors.New("conexão recusada"))

		_, err := repo.GetByDate(ctx, date)

		assert.ErrorContains(t, err, "conexão recusada")
	})
}

func TestDailyReportRepository_GetLatestInRange(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewDailyReportRepository(conn)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM daily_reports WHERE report_date >= \$1 AND report_date <= \$2 ORDER BY report_date DESC LIMIT 1`).
		WithArgs("2024-06-01", "2024-06-15").
		WillReturnRows(sqlmock.NewRows(reportColumns).AddRow("r9", to, "48200.00", nil, now, now))

	report, err := repo.GetLatestInRange(context.Background(), from, to)

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "r9", report.ID)
	assert.Nil(t, report.CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyReportRepository_ListInRange(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewDailyReportRepository(conn)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`FROM daily_reports WHERE report_date >= \$1 AND report_date <= \$2 ORDER BY report_date ASC`).
		WithArgs("2024-06-01", "2024-06-30").
		WillReturnRows(sqlmock.NewRows(reportColumns).
			AddRow("r1", start, "1000.00", nil, now, now).
			AddRow("r2", start.AddDate(0, 0, 1), "2500.50", nil, now, now))

	reports, err := repo.ListInRange(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.True(t, reports[1].TotalEffective.Equal(decimal.RequireFromString("2500.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyReportRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	sold := decimal.NewFromInt(15000)
	email := "admin@empresa.com"

	newReport := func() *domain.DailyReport {
		return &domain.DailyReport{
			ReportDate:     time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			TotalEffective: decimal.NewFromInt(32000),
			CreatedBy:      &email,
		}
	}

	t.Run("Grava relatório e substitui rankings na mesma transação", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewDailyReportRepository(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO daily_reports .* ON CONFLICT \(report_date\) DO UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("report-1", now, now))
		mock.ExpectExec(`DELETE FROM rankings WHERE report_id = \$1`).
			WithArgs("report-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`INSERT INTO rankings`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		rankings := []*domain.Ranking{
			{SellerID: "s1", RankingType: domain.RankingTypeTopSellers, Position: 1, ValueSold: &sold},
			{SellerID: "s2", RankingType: domain.RankingTypeCashFlow, Position: 1},
		}

		report, err := repo.Upsert(ctx, newReport(), rankings)

		require.NoError(t, err)
		assert.Equal(t, "report-1", report.ID)
		for _, ranking := range rankings {
			assert.Equal(t, "report-1", ranking.ReportID)
			assert.NotEmpty(t, ranking.ID)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Sem rankings apenas limpa os anteriores", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewDailyReportRepository(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO daily_reports`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("report-1", now, now))
		mock.ExpectExec(`DELETE FROM rankings`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		_, err := repo.Upsert(ctx, newReport(), nil)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Falha ao inserir rankings desfaz a transação", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewDailyReportRepository(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO daily_reports`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("report-1", now, now))
		mock.ExpectExec(`DELETE FROM rankings`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO rankings`).WillReturnError(errors.New("violação de unicidade"))
		mock.ExpectRollback()

		_, err := repo.Upsert(ctx, newReport(), []*domain.Ranking{
			{SellerID: "s1", RankingType: domain.RankingTypeTopSellers, Position: 1},
		})

		assert.ErrorContains(t, err, "violação de unicidade")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDailyReportRepository_DeleteByDate(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewDailyReportRepository(conn)

	mock.ExpectExec(`DELETE FROM daily_reports WHERE report_date = \$1`).
		WithArgs("2024-06-15").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM daily_reports`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.DeleteByDate(context.Background(), time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByDate(context.Background(), time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
