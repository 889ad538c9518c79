package administrating

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	storageMocks "github.com/vfg2006/sales-dashboard-api/infrastructure/storage/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/session"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc           *Service
	teams         *mocks.MockTeamRepository
	sellers       *mocks.MockSellerRepository
	goals         *mocks.MockGoalRepository
	configuration *mocks.MockConfigurationRepository
	reports       *mocks.MockDailyReportRepository
	rankings      *mocks.MockRankingRepository
	auditLogs     *mocks.MockAuditLogRepository
	storage       *storageMocks.MockStorage
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		teams:         mocks.NewMockTeamRepository(ctrl),
		sellers:       mocks.NewMockSellerRepository(ctrl),
		goals:         mocks.NewMockGoalRepository(ctrl),
		configuration: mocks.NewMockConfigurationRepository(ctrl),
		reports:       mocks.NewMockDailyReportRepository(ctrl),
		rankings:      mocks.NewMockRankingRepository(ctrl),
		auditLogs:     mocks.NewMockAuditLogRepository(ctrl),
		storage:       storageMocks.NewMockStorage(ctrl),
	}

	f.svc = NewService(Repositories{
		Teams:         f.teams,
		Sellers:       f.sellers,
		Goals:         f.goals,
		Configuration: f.configuration,
		Reports:       f.reports,
		Rankings:      f.rankings,
		AuditLogs:     f.auditLogs,
	}, f.storage)

	return f
}

// expectAudit confere a entrada gravada na trilha de auditoria
func (f fixture) expectAudit(action string) *gomock.Call {
	return f.auditLogs.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.AuditLog) error {
			if entry.Action != action {
				return errors.New("ação inesperada: " + entry.Action)
			}
			return nil
		})
}

func adminContext() context.Context {
	return session.NewContext(context.Background(), &session.Session{
		UserID: "u1",
		Email:  "admin@empresa.com",
		Role:   domain.RoleAdmin,
	})
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()

	var adminErr *AdminError
	require.ErrorAs(t, err, &adminErr)
	assert.Equal(t, code, adminErr.APICode())
}

func strPtr(s string) *string {
	return &s
}

func TestService_Teams(t *testing.T) {
	ctx := adminContext()

	t.Run("cria equipe e registra auditoria com o email da sessão", func(t *testing.T) {
		f := newFixture(t)

		f.teams.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, team *domain.Team) (*domain.Team, error) {
				team.ID = "t1"
				return team, nil
			})
		f.auditLogs.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *domain.AuditLog) error {
				assert.Equal(t, "admin@empresa.com", entry.UserEmail)
				assert.Equal(t, domain.AuditActionCreate, entry.Action)
				assert.Contains(t, entry.Description, "Vendas Sul")
				return nil
			})

		team, err := f.svc.CreateTeam(ctx, domain.TeamInput{Name: "  Vendas Sul "})
		require.NoError(t, err)
		assert.Equal(t, "t1", team.ID)
		assert.Equal(t, "Vendas Sul", team.Name)
	})

	t.Run("nome obrigatório", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateTeam(ctx, domain.TeamInput{Name: "   "})
		require.ErrorIs(t, err, ErrInvalidInput)
		requireCode(t, err, apiErrors.ErrInvalidRequest)
	})

	t.Run("falha na auditoria não desfaz a criação", func(t *testing.T) {
		f := newFixture(t)

		f.teams.EXPECT().Create(ctx, gomock.Any()).Return(&domain.Team{ID: "t1", Name: "A"}, nil)
		f.auditLogs.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db fora"))

		team, err := f.svc.CreateTeam(ctx, domain.TeamInput{Name: "A"})
		require.NoError(t, err)
		assert.Equal(t, "t1", team.ID)
	})

	t.Run("atualizar equipe inexistente", func(t *testing.T) {
		f := newFixture(t)

		f.teams.EXPECT().GetByID(ctx, "x").Return(nil, nil)

		_, err := f.svc.UpdateTeam(ctx, "x", domain.TeamInput{Name: "B"})
		require.ErrorIs(t, err, ErrNotFound)
		requireCode(t, err, apiErrors.ErrResourceNotFound)
	})

	t.Run("atualiza equipe existente", func(t *testing.T) {
		f := newFixture(t)

		f.teams.EXPECT().GetByID(ctx, "t1").Return(&domain.Team{ID: "t1", Name: "A"}, nil)
		f.teams.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.expectAudit(domain.AuditActionUpdate)

		team, err := f.svc.UpdateTeam(ctx, "t1", domain.TeamInput{Name: "B", Description: strPtr("loja centro")})
		require.NoError(t, err)
		assert.Equal(t, "B", team.Name)
		assert.Equal(t, "loja centro", *team.Description)
	})

	t.Run("remover equipe inexistente", func(t *testing.T) {
		f := newFixture(t)

		f.teams.EXPECT().Delete(ctx, "x").Return(false, nil)

		err := f.svc.DeleteTeam(ctx, "x")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("erro do banco ao listar", func(t *testing.T) {
		f := newFixture(t)

		f.teams.EXPECT().List(ctx).Return(nil, errors.New("conexão recusada"))

		_, err := f.svc.ListTeams(ctx)
		require.ErrorIs(t, err, ErrDatabaseOperation)
		requireCode(t, err, apiErrors.ErrDatabaseOperation)
	})
}

func TestService_Sellers(t *testing.T) {
	ctx := adminContext()

	t.Run("normaliza email e aplica status padrão", func(t *testing.T) {
		f := newFixture(t)

		f.teams.EXPECT().GetByID(ctx, "t1").Return(&domain.Team{ID: "t1"}, nil)
		f.sellers.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, seller *domain.Seller) (*domain.Seller, error) {
				assert.Equal(t, "ana@empresa.com", seller.Email)
				assert.Equal(t, domain.SellerStatusActive, seller.Status)
				seller.ID = "s1"
				return seller, nil
			})
		f.expectAudit(domain.AuditActionCreate)

		seller, err := f.svc.CreateSeller(ctx, domain.SellerInput{
			Name:   "Ana",
			Email:  " Ana@Empresa.com ",
			TeamID: strPtr("t1"),
		})
		require.NoError(t, err)
		assert.Equal(t, "s1", seller.ID)
	})

	t.Run("equipe inexistente", func(t *testing.T) {
		f := newFixture(t)

		f.teams.EXPECT().GetByID(ctx, "x").Return(nil, nil)

		_, err := f.svc.CreateSeller(ctx, domain.SellerInput{Name: "Ana", Email: "ana@empresa.com", TeamID: strPtr("x")})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("team_id vazio vira sem equipe", func(t *testing.T) {
		f := newFixture(t)

		f.sellers.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, seller *domain.Seller) (*domain.Seller, error) {
				assert.Nil(t, seller.TeamID)
				return seller, nil
			})
		f.expectAudit(domain.AuditActionCreate)

		_, err := f.svc.CreateSeller(ctx, domain.SellerInput{Name: "Ana", Email: "ana@empresa.com", TeamID: strPtr("")})
		require.NoError(t, err)
	})

	t.Run("email inválido", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateSeller(ctx, domain.SellerInput{Name: "Ana", Email: "ana"})
		require.ErrorIs(t, err, ErrInvalidInput)

		var adminErr *AdminError
		require.ErrorAs(t, err, &adminErr)
		assert.Equal(t, []string{"email: email"}, adminErr.Details)
	})

	t.Run("email duplicado vira conflito", func(t *testing.T) {
		f := newFixture(t)

		f.sellers.EXPECT().Create(ctx, gomock.Any()).Return(nil, &pq.Error{Code: "23505"})

		_, err := f.svc.CreateSeller(ctx, domain.SellerInput{Name: "Ana", Email: "ana@empresa.com"})
		require.ErrorIs(t, err, ErrConflict)
		requireCode(t, err, apiErrors.ErrResourceConflict)
	})

	t.Run("vendedor com rankings não pode ser removido", func(t *testing.T) {
		f := newFixture(t)

		f.sellers.EXPECT().Delete(ctx, "s1").Return(false, &pq.Error{Code: "23503"})

		err := f.svc.DeleteSeller(ctx, "s1")
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("remove vendedor", func(t *testing.T) {
		f := newFixture(t)

		f.sellers.EXPECT().Delete(ctx, "s1").Return(true, nil)
		f.expectAudit(domain.AuditActionDelete)

		require.NoError(t, f.svc.DeleteSeller(ctx, "s1"))
	})
}

func TestService_Goals(t *testing.T) {
	ctx := adminContext()

	t.Run("aceita período mensal com intervalo", func(t *testing.T) {
		f := newFixture(t)

		f.goals.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, goal *domain.GlobalGoal) (*domain.GlobalGoal, error) {
				assert.Equal(t, domain.GoalStatusActive, goal.Status)
				assert.True(t, goal.CurrentValue.IsZero())
				goal.ID = "g1"
				return goal, nil
			})
		f.expectAudit(domain.AuditActionCreate)

		goal, err := f.svc.CreateGoal(ctx, domain.GoalInput{
			Title:       "Meta de junho",
			TargetValue: decimal.NewFromInt(50000),
			Period:      "mensal:2024-06-01-2024-06-30",
		})
		require.NoError(t, err)
		assert.Equal(t, "g1", goal.ID)
	})

	t.Run("período inválido", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateGoal(ctx, domain.GoalInput{
			Title:       "Meta",
			TargetValue: decimal.NewFromInt(100),
			Period:      "junho",
		})
		require.ErrorIs(t, err, ErrInvalidGoalPeriod)
		requireCode(t, err, apiErrors.ErrInvalidGoalPeriod)
	})

	t.Run("alvo precisa ser positivo", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateGoal(ctx, domain.GoalInput{
			Title:       "Meta",
			TargetValue: decimal.Zero,
			Period:      "2024-06",
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("status desconhecido", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateGoal(ctx, domain.GoalInput{
			Title:       "Meta",
			TargetValue: decimal.NewFromInt(1),
			Period:      "2024-06",
			Status:      "archived",
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("atualiza meta", func(t *testing.T) {
		f := newFixture(t)

		f.goals.EXPECT().GetByID(ctx, "g1").Return(&domain.GlobalGoal{ID: "g1", Period: "2024-05"}, nil)
		f.goals.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.expectAudit(domain.AuditActionUpdate)

		goal, err := f.svc.UpdateGoal(ctx, "g1", domain.GoalInput{
			Title:       "Meta nova",
			TargetValue: decimal.NewFromInt(70000),
			Period:      "2024-06",
			Status:      domain.GoalStatusPaused,
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-06", goal.Period)
		assert.Equal(t, domain.GoalStatusPaused, goal.Status)
	})

	t.Run("remover meta inexistente", func(t *testing.T) {
		f := newFixture(t)

		f.goals.EXPECT().Delete(ctx, "x").Return(false, nil)

		require.ErrorIs(t, f.svc.DeleteGoal(ctx, "x"), ErrNotFound)
	})
}

func TestService_Configuration(t *testing.T) {
	ctx := adminContext()

	t.Run("sem configuração usa o título padrão", func(t *testing.T) {
		f := newFixture(t)

		f.configuration.EXPECT().Get(ctx).Return(nil, nil)

		cfg, err := f.svc.GetConfiguration(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultDashboardTitle, cfg.DashboardTitle)
		assert.Nil(t, cfg.CompanyLogo)
	})

	t.Run("atualiza o título mantendo o logo", func(t *testing.T) {
		f := newFixture(t)

		logo := "https://cdn/logo.png"
		f.configuration.EXPECT().Get(ctx).Return(&domain.Configuration{ID: "c1", DashboardTitle: "Antigo", CompanyLogo: &logo}, nil)
		f.configuration.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, cfg *domain.Configuration) (*domain.Configuration, error) {
				return cfg, nil
			})
		f.expectAudit(domain.AuditActionUpdate)

		cfg, err := f.svc.UpdateConfiguration(ctx, domain.ConfigurationInput{DashboardTitle: "Vendas Julho"})
		require.NoError(t, err)
		assert.Equal(t, "Vendas Julho", cfg.DashboardTitle)
		assert.Equal(t, &logo, cfg.CompanyLogo)
	})

	t.Run("upload de logo", func(t *testing.T) {
		f := newFixture(t)

		f.configuration.EXPECT().Get(ctx).Return(nil, nil)
		f.storage.EXPECT().
			Upload(ctx, gomock.Any(), gomock.Any(), "image/png").
			DoAndReturn(func(_ context.Context, _ io.Reader, key, _ string) (string, error) {
				assert.True(t, strings.HasPrefix(key, "logos/"))
				assert.True(t, strings.HasSuffix(key, ".png"))
				return "https://cdn/" + key, nil
			})
		f.configuration.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, cfg *domain.Configuration) (*domain.Configuration, error) {
				return cfg, nil
			})
		f.expectAudit(domain.AuditActionUpdate)

		cfg, err := f.svc.UploadLogo(ctx, strings.NewReader("png"), "logo.png", "image/png")
		require.NoError(t, err)
		require.NotNil(t, cfg.CompanyLogo)
		assert.True(t, strings.HasPrefix(*cfg.CompanyLogo, "https://cdn/logos/"))
	})

	t.Run("formato de imagem não suportado", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UploadLogo(ctx, strings.NewReader("gif"), "logo.gif", "image/gif")
		require.ErrorIs(t, err, ErrInvalidImage)
		requireCode(t, err, apiErrors.ErrInvalidFormat)
	})

	t.Run("remove o arquivo quando a configuração não é salva", func(t *testing.T) {
		f := newFixture(t)

		var uploadedKey string
		f.configuration.EXPECT().Get(ctx).Return(nil, nil)
		f.storage.EXPECT().
			Upload(ctx, gomock.Any(), gomock.Any(), "image/webp").
			DoAndReturn(func(_ context.Context, _ io.Reader, key, _ string) (string, error) {
				uploadedKey = key
				return "https://cdn/" + key, nil
			})
		f.configuration.EXPECT().Save(ctx, gomock.Any()).Return(nil, errors.New("db fora"))
		f.storage.EXPECT().
			Delete(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, key string) error {
				assert.Equal(t, uploadedKey, key)
				return nil
			})

		_, err := f.svc.UploadLogo(ctx, strings.NewReader("webp"), "logo.webp", "image/webp")
		require.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestService_Reports(t *testing.T) {
	ctx := adminContext()

	t.Run("salva relatório com rankings e autor da sessão", func(t *testing.T) {
		f := newFixture(t)

		sold := decimal.NewFromInt(12000)
		f.reports.EXPECT().
			Upsert(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, report *domain.DailyReport, rankings []*domain.Ranking) (*domain.DailyReport, error) {
				assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), report.ReportDate)
				require.NotNil(t, report.CreatedBy)
				assert.Equal(t, "u1", *report.CreatedBy)
				require.Len(t, rankings, 2)
				report.ID = "r1"
				for _, r := range rankings {
					r.ReportID = report.ID
				}
				return report, nil
			})
		f.expectAudit(domain.AuditActionUpdate)

		detail, err := f.svc.SaveReport(ctx, domain.DailyReportInput{
			ReportDate:     "2024-06-15",
			TotalEffective: decimal.NewFromInt(32000),
			Rankings: []domain.RankingInput{
				{SellerID: "s1", RankingType: domain.RankingTypeTopSellers, Position: 1, ValueSold: &sold},
				{SellerID: "s2", RankingType: domain.RankingTypeCashFlow, Position: 1},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "r1", detail.Report.ID)
		assert.Equal(t, "r1", detail.Rankings[0].ReportID)
	})

	t.Run("posição repetida no mesmo tipo", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SaveReport(ctx, domain.DailyReportInput{
			ReportDate: "2024-06-15",
			Rankings: []domain.RankingInput{
				{SellerID: "s1", RankingType: domain.RankingTypeTopSellers, Position: 2},
				{SellerID: "s2", RankingType: domain.RankingTypeTopSellers, Position: 2},
			},
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("posição fora de 1 a 5", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SaveReport(ctx, domain.DailyReportInput{
			ReportDate: "2024-06-15",
			Rankings: []domain.RankingInput{
				{SellerID: "s1", RankingType: domain.RankingTypeTopSellers, Position: 6},
			},
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("total negativo", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SaveReport(ctx, domain.DailyReportInput{
			ReportDate:     "2024-06-15",
			TotalEffective: decimal.NewFromInt(-1),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("data em formato errado", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SaveReport(ctx, domain.DailyReportInput{ReportDate: "15/06/2024"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("detalhe junta rankings de todos os tipos", func(t *testing.T) {
		f := newFixture(t)

		report := &domain.DailyReport{ID: "r1"}
		f.reports.EXPECT().GetByDate(ctx, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).Return(report, nil)
		f.rankings.EXPECT().ListByReport(ctx, "r1", domain.RankingTypeTopSellers).Return([]*domain.Ranking{{ID: "a"}}, nil)
		f.rankings.EXPECT().ListByReport(ctx, "r1", domain.RankingTypeCashFlow).Return(nil, nil)
		f.rankings.EXPECT().ListByReport(ctx, "r1", domain.RankingTypeProfitMargin).Return([]*domain.Ranking{{ID: "b"}}, nil)

		detail, err := f.svc.GetReport(ctx, "2024-06-15")
		require.NoError(t, err)
		assert.Len(t, detail.Rankings, 2)
	})

	t.Run("relatório inexistente", func(t *testing.T) {
		f := newFixture(t)

		f.reports.EXPECT().GetByDate(ctx, gomock.Any()).Return(nil, nil)

		_, err := f.svc.GetReport(ctx, "2024-06-15")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lista o mês inteiro", func(t *testing.T) {
		f := newFixture(t)

		f.reports.EXPECT().
			ListInRange(ctx, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)).
			Return([]*domain.DailyReport{{ID: "r1"}}, nil)

		reports, err := f.svc.ListReports(ctx, "2024-02")
		require.NoError(t, err)
		assert.Len(t, reports, 1)
	})

	t.Run("mês inválido", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ListReports(ctx, "2024-13")
		requireCode(t, err, apiErrors.ErrInvalidFormat)
	})

	t.Run("remove relatório", func(t *testing.T) {
		f := newFixture(t)

		f.reports.EXPECT().DeleteByDate(ctx, gomock.Any()).Return(true, nil)
		f.expectAudit(domain.AuditActionDelete)

		require.NoError(t, f.svc.DeleteReport(ctx, "2024-06-15"))
	})
}

func TestService_WatchSessions(t *testing.T) {
	f := newFixture(t)

	var recorded []*domain.AuditLog
	f.auditLogs.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.AuditLog) error {
			recorded = append(recorded, entry)
			return nil
		}).
		Times(2)

	events := make(chan session.Event, 3)
	sess := session.Session{UserID: "u1", Email: "ana@empresa.com"}
	events <- session.Event{Type: session.EventSignedIn, Session: sess}
	events <- session.Event{Type: session.EventSignedOut, Session: sess}
	events <- session.Event{Type: "desconhecido", Session: sess}
	close(events)

	f.svc.WatchSessions(context.Background(), events)

	require.Len(t, recorded, 2)
	assert.Equal(t, domain.AuditActionSignIn, recorded[0].Action)
	assert.Equal(t, "ana@empresa.com", recorded[0].UserEmail)
	assert.Equal(t, domain.AuditActionSignOut, recorded[1].Action)
}

func TestService_WatchSessionsStopsOnCancel(t *testing.T) {
	f := newFixture(t)
	broker := session.NewBroker()
	defer broker.Close()

	events, unsubscribe := broker.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.svc.WatchSessions(ctx, events)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WatchSessions não terminou após o cancelamento")
	}
}

func TestService_ListAuditLogs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.auditLogs.EXPECT().ListRecent(ctx, uint64(auditListLimit)).Return([]*domain.AuditLog{{ID: "a1"}}, nil)

	logs, err := f.svc.ListAuditLogs(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
