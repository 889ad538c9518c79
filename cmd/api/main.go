package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/session"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/administrating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.Environment)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshots, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o cache de snapshots")
	}
	defer snapshots.Close()

	fileStorage, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o armazenamento de arquivos")
	}

	m := metrics.New()

	broker := session.NewBroker()
	defer broker.Close()

	userRepo := repository.NewUserRepository(pgConn)
	authenticator := authenticating.NewService(userRepo, broker, cfg)

	chartRotationService := scheduler.NewChartRotationService(m, cfg)

	dashboardService := dashboarding.NewService(
		repository.NewReportStore(pgConn),
		snapshots,
		chartRotationService, // Implementa ChartModeProvider
		m,
		cfg,
	)

	dashboardRefreshService := scheduler.NewDashboardRefreshService(dashboardService, m, cfg)

	adminService := administrating.NewService(administrating.Repositories{
		Teams:         repository.NewTeamRepository(pgConn),
		Sellers:       repository.NewSellerRepository(pgConn),
		Goals:         repository.NewGoalRepository(pgConn),
		Configuration: repository.NewConfigurationRepository(pgConn),
		Reports:       repository.NewDailyReportRepository(pgConn),
		Rankings:      repository.NewRankingRepository(pgConn),
		AuditLogs:     repository.NewAuditLogRepository(pgConn),
	}, fileStorage)

	// login e logout entram na auditoria
	sessionEvents, unsubscribe := broker.Subscribe()
	defer unsubscribe()
	go adminService.WatchSessions(ctx, sessionEvents)

	// Inicia os agendadores em background
	if err := dashboardRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dashboard")
	} else {
		logrus.Info("Agendador de atualização do dashboard iniciado com sucesso")
	}

	if err := chartRotationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a rotação do gráfico")
	} else {
		logrus.Info("Rotação do gráfico iniciada com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Database:         pgConn,
		Authenticator:    authenticator,
		Dashboard:        dashboardService,
		Admin:            adminService,
		DashboardRefresh: dashboardRefreshService,
		ChartRotation:    chartRotationService,
		Metrics:          m,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
