package dashboarding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/kpi"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

var (
	june15 = time.Date(2024, 6, 15, 15, 0, 0, 0, time.UTC)
	june1  = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	svc       *Service
	store     *mocks.MockReportStore
	chart     *mocks.MockChartModeProvider
	snapshots *cache.MemoryStore
}

func newFixture(t *testing.T, loc *time.Location) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockReportStore(ctrl)
	chart := mocks.NewMockChartModeProvider(ctrl)
	snapshots := cache.NewMemoryStore(0, time.Hour)

	cfg := &config.Config{Location: loc}

	return fixture{
		svc:       NewService(store, snapshots, chart, metrics.New(), cfg),
		store:     store,
		chart:     chart,
		snapshots: snapshots,
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func juneGoal() *domain.GlobalGoal {
	return &domain.GlobalGoal{
		ID:          "g1",
		Title:       "Meta de junho",
		TargetValue: dec(50000),
		Period:      "2024-06",
		Status:      domain.GoalStatusActive,
		CreatedAt:   june1,
	}
}

func TestService_GetGoalProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("meta de 50000 com relatório de 32000 no dia 15", func(t *testing.T) {
		f := newFixture(t, time.UTC)

		f.store.EXPECT().FetchActiveGoals(ctx).Return([]*domain.GlobalGoal{juneGoal()}, nil)
		f.store.EXPECT().
			FetchLatestReport(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to time.Time) (*domain.DailyReport, error) {
				assert.Equal(t, "2024-06-01", from.Format(time.DateOnly))
				assert.Equal(t, "2024-06-15", to.Format(time.DateOnly))
				return &domain.DailyReport{ID: "r15", ReportDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), TotalEffective: dec(32000)}, nil
			})

		progress, err := f.svc.GetGoalProgress(ctx, june15)

		require.NoError(t, err)
		assert.True(t, progress.Found)
		assert.Equal(t, 64.0, progress.ProgressPercent)
		assert.Equal(t, 64.0, progress.DisplayPercent)
		assert.True(t, progress.Remaining.Equal(dec(18000)))
	})

	t.Run("sem meta ativa não consulta relatório", func(t *testing.T) {
		f := newFixture(t, time.UTC)

		f.store.EXPECT().FetchActiveGoals(ctx).Return(nil, nil)

		progress, err := f.svc.GetGoalProgress(ctx, june15)

		require.NoError(t, err)
		assert.False(t, progress.Found)
		assert.Equal(t, kpi.NoActiveGoalMessage, progress.FallbackMessage)
	})

	t.Run("meta com período inválido é ignorada", func(t *testing.T) {
		f := newFixture(t, time.UTC)

		broken := &domain.GlobalGoal{ID: "g0", Period: "mensal:lixo", Status: domain.GoalStatusActive, TargetValue: dec(1)}

		f.store.EXPECT().FetchActiveGoals(ctx).Return([]*domain.GlobalGoal{broken, juneGoal()}, nil)
		f.store.EXPECT().FetchLatestReport(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		progress, err := f.svc.GetGoalProgress(ctx, june15)

		require.NoError(t, err)
		assert.Equal(t, "g1", progress.GoalID)
		assert.Equal(t, 0.0, progress.ProgressPercent)
		assert.True(t, progress.Remaining.Equal(dec(50000)))
	})

	t.Run("falha no banco é transitória", func(t *testing.T) {
		f := newFixture(t, time.UTC)

		f.store.EXPECT().FetchActiveGoals(ctx).Return(nil, errors.New("conexão recusada"))

		_, err := f.svc.GetGoalProgress(ctx, june15)

		assert.ErrorIs(t, err, ErrTransientFetch)
		var dashErr *DashboardError
		require.True(t, errors.As(err, &dashErr))
		assert.Equal(t, apiErrors.ErrDatabaseOperation, dashErr.Code)
	})

	t.Run("usa o fuso do negócio para resolver o mês", func(t *testing.T) {
		loc, err := time.LoadLocation("America/Sao_Paulo")
		require.NoError(t, err)
		f := newFixture(t, loc)

		// 02:00 UTC de 1º de julho ainda é 30 de junho em São Paulo
		now := time.Date(2024, 7, 1, 2, 0, 0, 0, time.UTC)

		f.store.EXPECT().FetchActiveGoals(ctx).Return([]*domain.GlobalGoal{juneGoal()}, nil)
		f.store.EXPECT().
			FetchLatestReport(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to time.Time) (*domain.DailyReport, error) {
				assert.Equal(t, "2024-06-30", to.Format(time.DateOnly))
				return nil, nil
			})

		progress, err := f.svc.GetGoalProgress(ctx, now)

		require.NoError(t, err)
		assert.True(t, progress.Found)
	})
}

func TestService_GetTrend(t *testing.T) {
	ctx := context.Background()

	t.Run("sem relatórios no mês o real fica zerado até hoje", func(t *testing.T) {
		f := newFixture(t, time.UTC)

		f.store.EXPECT().FetchActiveGoals(ctx).Return([]*domain.GlobalGoal{juneGoal()}, nil)
		f.store.EXPECT().
			FetchReportsInRange(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, start, end time.Time) ([]*domain.DailyReport, error) {
				assert.Equal(t, "2024-06-01", start.Format(time.DateOnly))
				assert.Equal(t, "2024-06-30", end.Format(time.DateOnly))
				return nil, nil
			})

		series, err := f.svc.GetTrend(ctx, june15)

		require.NoError(t, err)
		require.Len(t, series.Points, 30)
		for _, point := range series.Points {
			if point.Day <= 15 {
				require.NotNil(t, point.Actual)
				assert.True(t, point.Actual.IsZero())
			} else {
				assert.Nil(t, point.Actual)
			}
		}
		assert.True(t, series.Points[29].Predicted.Equal(dec(50000)))
		assert.True(t, series.TotalPredicted.Equal(dec(25000)))
	})

	t.Run("sem meta o previsto é zero", func(t *testing.T) {
		f := newFixture(t, time.UTC)

		f.store.EXPECT().FetchActiveGoals(ctx).Return(nil, nil)
		f.store.EXPECT().FetchReportsInRange(ctx, gomock.Any(), gomock.Any()).Return([]*domain.DailyReport{
			{ReportDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), TotalEffective: dec(1000)},
		}, nil)

		series, err := f.svc.GetTrend(ctx, june15)

		require.NoError(t, err)
		for _, point := range series.Points {
			assert.True(t, point.Predicted.IsZero())
		}
		assert.True(t, series.TotalActual.Equal(dec(1000)))
	})
}

func TestService_GetRanking(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)

	t.Run("tipo desconhecido", func(t *testing.T) {
		f := newFixture(t, time.UTC)

		_, err := f.svc.GetRanking(ctx, domain.RankingType("vendas"), date)

		assert.ErrorIs(t, err, ErrInvalidRankingType)
		var dashErr *DashboardError
		require.True(t, errors.As(err, &dashErr))
		assert.Equal(t, apiErrors.ErrInvalidRankingType, dashErr.Code)
	})

	t.Run("sem relatório na data retorna só placeholders", func(t *testing.T) {
		f := newFixture(t, time.UTC)

		f.store.EXPECT().FetchReportByDate(ctx, gomock.Any()).Return(nil, nil)

		board, err := f.svc.GetRanking(ctx, domain.RankingTypeTopSellers, date)

		require.NoError(t, err)
		require.Len(t, board.Rows, 5)
		for _, row := range board.Rows {
			assert.True(t, row.IsPlaceholder())
			assert.Equal(t, domain.PlaceholderSellerName, row.SellerName)
		}
	})

	t.Run("posições 1 e 3 preenchidas", func(t *testing.T) {
		f := newFixture(t, time.UTC)

		teamID := "t1"
		f.store.EXPECT().FetchReportByDate(ctx, gomock.Any()).Return(&domain.DailyReport{ID: "r14"}, nil)
		f.store.EXPECT().FetchSellers(ctx).Return([]*domain.Seller{
			{ID: "s1", Name: "Ana", TeamID: &teamID, Team: &domain.Team{ID: teamID, Name: "Loja Centro"}},
			{ID: "s3", Name: "Bruno"},
		}, nil)
		f.store.EXPECT().FetchRankingsForReport(ctx, "r14", domain.RankingTypeCashFlow).Return([]*domain.Ranking{
			{SellerID: "s1", RankingType: domain.RankingTypeCashFlow, Position: 1, ValueSold: decPtr(1000), ValueReceived: decPtr(800)},
			{SellerID: "s3", RankingType: domain.RankingTypeCashFlow, Position: 3, ValueSold: decPtr(0), ValueReceived: decPtr(500)},
		}, nil)

		board, err := f.svc.GetRanking(ctx, domain.RankingTypeCashFlow, date)

		require.NoError(t, err)
		require.Len(t, board.Rows, 5)
		assert.Equal(t, "Ana", board.Rows[0].SellerName)
		assert.Equal(t, "Loja Centro", board.Rows[0].TeamName)
		assert.Equal(t, 80, board.Rows[0].Effectiveness)
		assert.True(t, board.Rows[1].IsPlaceholder())
		assert.Equal(t, "Bruno", board.Rows[2].SellerName)
		assert.Equal(t, domain.PlaceholderTeamName, board.Rows[2].TeamName)
		assert.Equal(t, 0, board.Rows[2].Effectiveness)
		assert.True(t, board.Rows[3].IsPlaceholder())
		assert.True(t, board.Rows[4].IsPlaceholder())
	})
}

// expectHealthyStore responde todas as consultas de um snapshot completo
func expectHealthyStore(f fixture, configuration *domain.Configuration) {
	f.store.EXPECT().FetchActiveGoals(gomock.Any()).Return([]*domain.GlobalGoal{juneGoal()}, nil)
	f.store.EXPECT().FetchLatestReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.DailyReport{TotalEffective: dec(32000)}, nil)
	f.store.EXPECT().FetchReportsInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.store.EXPECT().FetchReportByDate(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.store.EXPECT().FetchConfiguration(gomock.Any()).Return(configuration, nil)
}

func TestService_BuildSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("usa título padrão sem configuração", func(t *testing.T) {
		f := newFixture(t, time.UTC)
		expectHealthyStore(f, nil)
		f.chart.EXPECT().Current().Return(domain.ChartModePie)

		snapshot, err := f.svc.BuildSnapshot(ctx, june15, june15)

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultDashboardTitle, snapshot.DashboardTitle)
		assert.Nil(t, snapshot.CompanyLogo)
		assert.Equal(t, domain.ChartModePie, snapshot.ChartMode)
		assert.Equal(t, "2024-06", snapshot.Period.Key)
		assert.Equal(t, 64.0, snapshot.Goal.ProgressPercent)
		assert.Len(t, snapshot.Rankings, 3)
		for _, rankingType := range domain.RankingTypes {
			assert.Len(t, snapshot.Rankings[rankingType].Rows, 5)
		}
		assert.False(t, snapshot.Stale)
	})

	t.Run("usa título e logo configurados", func(t *testing.T) {
		f := newFixture(t, time.UTC)
		logo := "https://cdn.empresa.com/logo.png"
		expectHealthyStore(f, &domain.Configuration{DashboardTitle: "Vendas Loja Centro", CompanyLogo: &logo})
		f.chart.EXPECT().Current().Return(domain.ChartModeLine)

		snapshot, err := f.svc.BuildSnapshot(ctx, june15, june15)

		require.NoError(t, err)
		assert.Equal(t, "Vendas Loja Centro", snapshot.DashboardTitle)
		assert.Equal(t, &logo, snapshot.CompanyLogo)
	})
}

func TestService_Refresh(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.UTC)
	expectHealthyStore(f, nil)
	f.chart.EXPECT().Current().Return(domain.ChartModeGauge)

	snapshot, err := f.svc.Refresh(ctx, june15)
	require.NoError(t, err)

	cached, err := f.snapshots.Load(ctx, cache.SnapshotKey(june15))
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, snapshot.Period, cached.Period)
	assert.Equal(t, domain.ChartModeGauge, cached.ChartMode)
}

func TestService_GetSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("serve o último snapshot quando o banco falha", func(t *testing.T) {
		f := newFixture(t, time.UTC)
		expectHealthyStore(f, nil)
		f.chart.EXPECT().Current().Return(domain.ChartModeLine)

		fresh, err := f.svc.GetSnapshot(ctx, june15, june15)
		require.NoError(t, err)
		assert.False(t, fresh.Stale)

		f.store.EXPECT().FetchActiveGoals(ctx).Return(nil, errors.New("timeout"))

		stale, err := f.svc.GetSnapshot(ctx, june15.Add(time.Minute), june15)

		require.NoError(t, err)
		assert.True(t, stale.Stale)
		assert.Equal(t, fresh.Goal.ProgressPercent, stale.Goal.ProgressPercent)
		assert.True(t, stale.GeneratedAt.Equal(fresh.GeneratedAt))
	})

	t.Run("sem snapshot anterior o erro é de indisponibilidade", func(t *testing.T) {
		f := newFixture(t, time.UTC)

		f.store.EXPECT().FetchActiveGoals(ctx).Return(nil, errors.New("timeout"))

		_, err := f.svc.GetSnapshot(ctx, june15, june15)

		assert.ErrorIs(t, err, ErrSnapshotUnavailable)
		var dashErr *DashboardError
		require.True(t, errors.As(err, &dashErr))
		assert.Equal(t, apiErrors.ErrSnapshotUnavailable, dashErr.Code)
	})

	t.Run("snapshot de outra data não é usado", func(t *testing.T) {
		f := newFixture(t, time.UTC)
		require.NoError(t, f.snapshots.Save(ctx, cache.SnapshotKey(june1), &domain.DashboardSnapshot{}))

		f.store.EXPECT().FetchActiveGoals(ctx).Return(nil, errors.New("timeout"))

		_, err := f.svc.GetSnapshot(ctx, june15, june15)

		assert.ErrorIs(t, err, ErrSnapshotUnavailable)
	})

	t.Run("erro ao ler o cache vira indisponibilidade", func(t *testing.T) {
		f := newFixture(t, time.UTC)
		snapshots := mocks.NewMockSnapshotStore(gomock.NewController(t))
		f.svc.snapshots = snapshots

		f.store.EXPECT().FetchActiveGoals(ctx).Return(nil, nil)
		f.store.EXPECT().FetchReportsInRange(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		f.store.EXPECT().FetchReportByDate(ctx, gomock.Any()).Return(nil, nil)
		f.store.EXPECT().FetchConfiguration(ctx).Return(nil, errors.New("relation does not exist"))
		snapshots.EXPECT().Load(ctx, cache.SnapshotKey(june15)).Return(nil, errors.New("redis fora"))

		_, err := f.svc.GetSnapshot(ctx, june15, june15)

		assert.ErrorIs(t, err, ErrSnapshotUnavailable)
	})
}
