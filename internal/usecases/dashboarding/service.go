// Package dashboarding monta os indicadores do dashboard de vendas a partir
// do banco de relatórios, com fallback para o último snapshot válido.
package dashboarding

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/kpi"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
)

const component = "dashboard"

// ReportStore é a leitura do banco de relatórios. Ausência de registro é
// nil sem erro; qualquer erro é tratado como falha transitória.
type ReportStore interface {
	FetchReportByDate(ctx context.Context, date time.Time) (*domain.DailyReport, error)
	FetchLatestReport(ctx context.Context, from, to time.Time) (*domain.DailyReport, error)
	FetchReportsInRange(ctx context.Context, start, end time.Time) ([]*domain.DailyReport, error)
	FetchRankingsForReport(ctx context.Context, reportID string, rankingType domain.RankingType) ([]*domain.Ranking, error)
	FetchActiveGoals(ctx context.Context) ([]*domain.GlobalGoal, error)
	FetchSellers(ctx context.Context) ([]*domain.Seller, error)
	FetchConfiguration(ctx context.Context) (*domain.Configuration, error)
}

type SnapshotStore interface {
	Save(ctx context.Context, key string, snapshot *domain.DashboardSnapshot) error
	Load(ctx context.Context, key string) (*domain.DashboardSnapshot, error)
}

// ChartModeProvider informa o modo atual do gráfico rotativo
type ChartModeProvider interface {
	Current() domain.ChartMode
}

type Dashboard interface {
	GetGoalProgress(ctx context.Context, now time.Time) (domain.GoalProgress, error)
	GetTrend(ctx context.Context, now time.Time) (domain.TrendSeries, error)
	GetRanking(ctx context.Context, rankingType domain.RankingType, date time.Time) (domain.RankingBoard, error)
	BuildSnapshot(ctx context.Context, now, rankingDate time.Time) (*domain.DashboardSnapshot, error)
	Refresh(ctx context.Context, now time.Time) (*domain.DashboardSnapshot, error)
	GetSnapshot(ctx context.Context, now, rankingDate time.Time) (*domain.DashboardSnapshot, error)
}

type Service struct {
	store     ReportStore
	snapshots SnapshotStore
	chart     ChartModeProvider
	metrics   *metrics.Metrics
	loc       *time.Location
}

func NewService(store ReportStore, snapshots SnapshotStore, chart ChartModeProvider, m *metrics.Metrics, cfg *config.Config) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		store:     store,
		snapshots: snapshots,
		chart:     chart,
		metrics:   m,
		loc:       loc,
	}
}

// period resolve o mês ativo no fuso do negócio
func (s *Service) period(now time.Time) kpi.Period {
	return kpi.ResolvePeriod(now.In(s.loc))
}

func (s *Service) GetGoalProgress(ctx context.Context, now time.Time) (domain.GoalProgress, error) {
	period := s.period(now)

	goal, err := s.activeGoal(ctx, period)
	if err != nil {
		return domain.GoalProgress{}, err
	}

	return s.goalProgress(ctx, period, goal)
}

func (s *Service) GetTrend(ctx context.Context, now time.Time) (domain.TrendSeries, error) {
	period := s.period(now)

	goal, err := s.activeGoal(ctx, period)
	if err != nil {
		return domain.TrendSeries{}, err
	}

	return s.trend(ctx, period, goal)
}

func (s *Service) GetRanking(ctx context.Context, rankingType domain.RankingType, date time.Time) (domain.RankingBoard, error) {
	if !rankingType.IsValid() {
		return domain.RankingBoard{}, NewDashboardError(ErrInvalidRankingType, apiErrors.ErrInvalidRankingType, string(rankingType))
	}

	boards, err := s.rankings(ctx, date.In(s.loc), []domain.RankingType{rankingType})
	if err != nil {
		return domain.RankingBoard{}, err
	}

	return boards[rankingType], nil
}

// BuildSnapshot consulta o banco e monta todos os cards do dashboard
func (s *Service) BuildSnapshot(ctx context.Context, now, rankingDate time.Time) (*domain.DashboardSnapshot, error) {
	period := s.period(now)

	goal, err := s.activeGoal(ctx, period)
	if err != nil {
		return nil, err
	}

	progress, err := s.goalProgress(ctx, period, goal)
	if err != nil {
		return nil, err
	}

	trend, err := s.trend(ctx, period, goal)
	if err != nil {
		return nil, err
	}

	boards, err := s.rankings(ctx, rankingDate.In(s.loc), domain.RankingTypes)
	if err != nil {
		return nil, err
	}

	configuration, err := s.store.FetchConfiguration(ctx)
	if err != nil {
		return nil, s.fetchFailed(ctx, "fetch_configuration", err)
	}

	snapshot := &domain.DashboardSnapshot{
		Period:         period.View(),
		Goal:           progress,
		Trend:          trend,
		Rankings:       boards,
		DashboardTitle: domain.DefaultDashboardTitle,
		ChartMode:      domain.ChartModeLine,
		GeneratedAt:    now,
	}

	if configuration != nil {
		if configuration.DashboardTitle != "" {
			snapshot.DashboardTitle = configuration.DashboardTitle
		}
		snapshot.CompanyLogo = configuration.CompanyLogo
	}

	if s.chart != nil {
		snapshot.ChartMode = s.chart.Current()
	}

	return snapshot, nil
}

// Refresh remonta o snapshot de hoje e grava no cache
func (s *Service) Refresh(ctx context.Context, now time.Time) (*domain.DashboardSnapshot, error) {
	started := time.Now()
	today := now.In(s.loc)

	snapshot, err := s.BuildSnapshot(ctx, now, today)
	if err != nil {
		s.metrics.ObserveRefresh(metrics.ResultFailure, time.Since(started))
		return nil, err
	}

	s.save(ctx, today, snapshot)
	s.metrics.ObserveRefresh(metrics.ResultSuccess, time.Since(started))

	log.Component(ctx, component).
		WithField("period", snapshot.Period.Key).
		Infof("dashboard: snapshot atualizado em %s", time.Since(started))

	return snapshot, nil
}

// GetSnapshot monta o snapshot atual. Se o banco falhar, serve o último
// snapshot válido da mesma data marcado como stale.
func (s *Service) GetSnapshot(ctx context.Context, now, rankingDate time.Time) (*domain.DashboardSnapshot, error) {
	rankingDate = rankingDate.In(s.loc)

	snapshot, err := s.BuildSnapshot(ctx, now, rankingDate)
	if err == nil {
		s.save(ctx, rankingDate, snapshot)
		return snapshot, nil
	}

	if !errors.Is(err, ErrTransientFetch) {
		return nil, err
	}

	logger := log.Component(ctx, component)

	stale, loadErr := s.load(ctx, rankingDate)
	if loadErr != nil {
		logger.WithError(loadErr).Warn("dashboard: erro ao ler snapshot do cache")
	}

	if stale == nil {
		return nil, NewDashboardError(ErrSnapshotUnavailable, apiErrors.ErrSnapshotUnavailable, err.Error())
	}

	logger.WithError(err).Warn("dashboard: banco indisponível, servindo último snapshot")
	s.metrics.IncStaleServed()

	stale.Stale = true
	return stale, nil
}

func (s *Service) activeGoal(ctx context.Context, period kpi.Period) (*domain.GlobalGoal, error) {
	goals, err := s.store.FetchActiveGoals(ctx)
	if err != nil {
		return nil, s.fetchFailed(ctx, "fetch_active_goals", err)
	}

	goal, skipped := kpi.SelectActiveGoal(goals, period.Key)
	for _, skipErr := range skipped {
		var periodErr *kpi.GoalPeriodError
		if errors.As(skipErr, &periodErr) {
			log.Component(ctx, component).
				WithField("goal_id", periodErr.GoalID).
				WithField("goal_period", periodErr.Period).
				Warn("dashboard: meta com período inválido ignorada")
		}
	}
	s.metrics.AddSkippedGoals(len(skipped))

	return goal, nil
}

func (s *Service) goalProgress(ctx context.Context, period kpi.Period, goal *domain.GlobalGoal) (domain.GoalProgress, error) {
	if goal == nil {
		return kpi.CalculateGoalProgress(nil, nil), nil
	}

	latest, err := s.store.FetchLatestReport(ctx, period.MonthStart, period.Today())
	if err != nil {
		return domain.GoalProgress{}, s.fetchFailed(ctx, "fetch_latest_report", err)
	}

	return kpi.CalculateGoalProgress(goal, latest), nil
}

func (s *Service) trend(ctx context.Context, period kpi.Period, goal *domain.GlobalGoal) (domain.TrendSeries, error) {
	target := decimal.Zero
	if goal != nil {
		target = goal.TargetValue
	}

	reports, err := s.store.FetchReportsInRange(ctx, period.MonthStart, period.MonthEnd)
	if err != nil {
		return domain.TrendSeries{}, s.fetchFailed(ctx, "fetch_reports_in_range", err)
	}

	return kpi.BuildTrendSeries(period, target, reports), nil
}

// rankings monta os quadros pedidos para a data. Sem relatório na data todos
// os quadros saem só com placeholders.
func (s *Service) rankings(ctx context.Context, date time.Time, types []domain.RankingType) (map[domain.RankingType]domain.RankingBoard, error) {
	boards := make(map[domain.RankingType]domain.RankingBoard, len(types))

	report, err := s.store.FetchReportByDate(ctx, date)
	if err != nil {
		return nil, s.fetchFailed(ctx, "fetch_report_by_date", err)
	}

	if report == nil {
		for _, rankingType := range types {
			boards[rankingType] = kpi.AssembleRanking(rankingType, date, nil, nil)
		}
		return boards, nil
	}

	sellers, err := s.store.FetchSellers(ctx)
	if err != nil {
		return nil, s.fetchFailed(ctx, "fetch_sellers", err)
	}

	for _, rankingType := range types {
		rows, err := s.store.FetchRankingsForReport(ctx, report.ID, rankingType)
		if err != nil {
			return nil, s.fetchFailed(ctx, "fetch_rankings_for_report", err)
		}

		board := kpi.AssembleRanking(rankingType, date, rows, sellers)
		if board.Dropped > 0 {
			log.Component(ctx, component).
				WithField("ranking_type", rankingType).
				Warnf("dashboard: %d linhas de ranking descartadas", board.Dropped)
			s.metrics.AddDroppedRankings(string(rankingType), board.Dropped)
		}

		boards[rankingType] = board
	}

	return boards, nil
}

func (s *Service) fetchFailed(ctx context.Context, operation string, err error) error {
	s.metrics.IncFetchError(operation)
	log.Component(ctx, component).WithError(err).Errorf("dashboard: erro em %s", operation)
	return fetchError(operation, err)
}

func (s *Service) save(ctx context.Context, rankingDate time.Time, snapshot *domain.DashboardSnapshot) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(ctx, cache.SnapshotKey(rankingDate), snapshot); err != nil {
		log.Component(ctx, component).WithError(err).Warn("dashboard: erro ao gravar snapshot no cache")
	}
}

func (s *Service) load(ctx context.Context, rankingDate time.Time) (*domain.DashboardSnapshot, error) {
	if s.snapshots == nil {
		return nil, nil
	}
	return s.snapshots.Load(ctx, cache.SnapshotKey(rankingDate))
}
