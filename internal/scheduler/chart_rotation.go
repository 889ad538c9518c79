package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
)

const defaultRotationInterval = 30 * time.Second

var ErrInvalidChartMode = errors.New("modo de gráfico desconhecido")

type ChartRotationConfig struct {
	Interval      time.Duration
	RotateEnabled bool
}

// ChartRotationService alterna o card previsto x efetivado entre linha,
// pizza e velocímetro. Não compartilha estado com a atualização do snapshot.
type ChartRotationService struct {
	scheduler     *gocron.Scheduler
	config        ChartRotationConfig
	metrics       *metrics.Metrics
	now           func() time.Time
	mu            sync.RWMutex
	mode          domain.ChartMode
	lastRotatedAt time.Time
}

func NewChartRotationService(m *metrics.Metrics, cfg *config.Config) *ChartRotationService {
	rotationConfig := ChartRotationConfig{
		Interval:      cfg.ChartRotation.Interval,
		RotateEnabled: cfg.ChartRotation.Enabled,
	}
	if rotationConfig.Interval <= 0 {
		rotationConfig.Interval = defaultRotationInterval
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &ChartRotationService{
		scheduler: gocron.NewScheduler(loc),
		config:    rotationConfig,
		metrics:   m,
		now:       time.Now,
		mode:      domain.ChartModeLine,
	}
}

func (s *ChartRotationService) Start(ctx context.Context) error {
	if !s.config.RotateEnabled {
		logrus.Info("Rotação do gráfico desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval", s.config.Interval.String()).Info("Iniciando rotação do gráfico previsto x efetivado")

	_, err := s.scheduler.Every(s.config.Interval).WaitForSchedule().Do(func() {
		s.Rotate()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rotação do gráfico: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando rotação do gráfico")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ChartRotationService) Current() domain.ChartMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Rotate avança para o próximo modo e o retorna
func (s *ChartRotationService) Rotate() domain.ChartMode {
	s.mu.Lock()
	s.mode = s.mode.Next()
	s.lastRotatedAt = s.now()
	mode := s.mode
	s.mu.Unlock()

	s.metrics.IncChartRotation()
	return mode
}

// Set fixa o modo escolhido manualmente; a rotação segue a partir dele
func (s *ChartRotationService) Set(mode domain.ChartMode) error {
	if !mode.IsValid() {
		return ErrInvalidChartMode
	}

	s.mu.Lock()
	s.mode = mode
	s.lastRotatedAt = s.now()
	s.mu.Unlock()

	return nil
}

func (s *ChartRotationService) GetStatus() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]any{
		"rotation_enabled":  s.config.RotateEnabled,
		"rotation_interval": s.config.Interval.String(),
		"current_mode":      s.mode,
		"last_rotated_at":   s.lastRotatedAt,
	}
}
