// Package scheduler contém as tarefas periódicas do dashboard
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
)

const defaultRefreshInterval = 30 * time.Minute

// Refresher remonta e grava o snapshot do dashboard
type Refresher interface {
	Refresh(ctx context.Context, now time.Time) (*domain.DashboardSnapshot, error)
}

type DashboardRefreshConfig struct {
	Interval    time.Duration
	SyncEnabled bool
}

type DashboardRefreshService struct {
	scheduler           *gocron.Scheduler
	refresher           Refresher
	config              DashboardRefreshConfig
	metrics             *metrics.Metrics
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewDashboardRefreshService(refresher Refresher, m *metrics.Metrics, cfg *config.Config) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		Interval:    cfg.DashboardSync.Interval,
		SyncEnabled: cfg.DashboardSync.Enabled,
	}
	if refreshConfig.Interval <= 0 {
		refreshConfig.Interval = defaultRefreshInterval
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"interval": refreshConfig.Interval.String(),
	}).Info("Configuração do agendador de atualização do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(loc),
		refresher: refresher,
		config:    refreshConfig,
		metrics:   m,
		now:       time.Now,
	}
}

func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização periódica do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval", s.config.Interval.String()).Info("Iniciando agendador de atualização do dashboard")

	// A primeira execução acontece logo na partida
	_, err := s.scheduler.Every(s.config.Interval).SingletonMode().Do(func() {
		if err := s.RunRefresh(ctx); err != nil {
			log.Component(ctx, "scheduler").WithError(err).Error("Erro na atualização do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// RunRefresh executa uma atualização. Se outra estiver em andamento a chamada
// é ignorada.
func (s *DashboardRefreshService) RunRefresh(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.Component(ctx, "scheduler").Warn("Atualização do dashboard já está em execução")
		s.metrics.ObserveRefresh(metrics.ResultSkipped, 0)
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	_, err := s.refresher.Refresh(ctx, s.now())

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	return err
}

// TriggerManualSync dispara uma atualização fora do agendamento. Retorna
// false quando já existe uma em andamento.
func (s *DashboardRefreshService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do dashboard já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do dashboard")

	// a requisição termina antes da atualização
	runCtx := context.WithoutCancel(ctx)
	go func() {
		if err := s.RunRefresh(runCtx); err != nil {
			log.Component(runCtx, "scheduler").WithError(err).Error("Erro na atualização manual do dashboard")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_interval":          s.config.Interval.String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
