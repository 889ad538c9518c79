package repository

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// ReportStore é a visão somente leitura usada pela camada de agregação do
// dashboard. Ela apenas compõe os repositórios de escrita do painel admin.
type ReportStore struct {
	reports       DailyReportRepository
	rankings      RankingRepository
	goals         GoalRepository
	sellers       SellerRepository
	configuration ConfigurationRepository
}

func NewReportStore(conn *postgres.Connection) *ReportStore {
	return &ReportStore{
		reports:       NewDailyReportRepository(conn),
		rankings:      NewRankingRepository(conn),
		goals:         NewGoalRepository(conn),
		sellers:       NewSellerRepository(conn),
		configuration: NewConfigurationRepository(conn),
	}
}

func (s *ReportStore) FetchReportByDate(ctx context.Context, date time.Time) (*domain.DailyReport, error) {
	return s.reports.GetByDate(ctx, date)
}

func (s *ReportStore) FetchLatestReport(ctx context.Context, from, to time.Time) (*domain.DailyReport, error) {
	return s.reports.GetLatestInRange(ctx, from, to)
}

func (s *ReportStore) FetchReportsInRange(ctx context.Context, start, end time.Time) ([]*domain.DailyReport, error) {
	return s.reports.ListInRange(ctx, start, end)
}

func (s *ReportStore) FetchRankingsForReport(ctx context.Context, reportID string, rankingType domain.RankingType) ([]*domain.Ranking, error) {
	return s.rankings.ListByReport(ctx, reportID, rankingType)
}

func (s *ReportStore) FetchActiveGoals(ctx context.Context) ([]*domain.GlobalGoal, error) {
	return s.goals.ListActive(ctx)
}

func (s *ReportStore) FetchSellers(ctx context.Context) ([]*domain.Seller, error) {
	return s.sellers.List(ctx)
}

func (s *ReportStore) FetchConfiguration(ctx context.Context) (*domain.Configuration, error) {
	return s.configuration.Get(ctx)
}
