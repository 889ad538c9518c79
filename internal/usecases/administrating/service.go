// Package administrating implementa o painel administrativo: cadastros,
// relatórios diários, configuração do dashboard e trilha de auditoria.
package administrating

import (
	"context"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/session"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const component = "admin"

type Administrator interface {
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	CreateTeam(ctx context.Context, input domain.TeamInput) (*domain.Team, error)
	UpdateTeam(ctx context.Context, id string, input domain.TeamInput) (*domain.Team, error)
	DeleteTeam(ctx context.Context, id string) error

	ListSellers(ctx context.Context) ([]*domain.Seller, error)
	CreateSeller(ctx context.Context, input domain.SellerInput) (*domain.Seller, error)
	UpdateSeller(ctx context.Context, id string, input domain.SellerInput) (*domain.Seller, error)
	DeleteSeller(ctx context.Context, id string) error

	ListGoals(ctx context.Context) ([]*domain.GlobalGoal, error)
	CreateGoal(ctx context.Context, input domain.GoalInput) (*domain.GlobalGoal, error)
	UpdateGoal(ctx context.Context, id string, input domain.GoalInput) (*domain.GlobalGoal, error)
	DeleteGoal(ctx context.Context, id string) error

	GetConfiguration(ctx context.Context) (*domain.Configuration, error)
	UpdateConfiguration(ctx context.Context, input domain.ConfigurationInput) (*domain.Configuration, error)
	UploadLogo(ctx context.Context, file io.Reader, filename, contentType string) (*domain.Configuration, error)

	SaveReport(ctx context.Context, input domain.DailyReportInput) (*ReportDetail, error)
	GetReport(ctx context.Context, date string) (*ReportDetail, error)
	ListReports(ctx context.Context, month string) ([]*domain.DailyReport, error)
	DeleteReport(ctx context.Context, date string) error

	ListAuditLogs(ctx context.Context) ([]*domain.AuditLog, error)
}

type Repositories struct {
	Teams         repository.TeamRepository
	Sellers       repository.SellerRepository
	Goals         repository.GoalRepository
	Configuration repository.ConfigurationRepository
	Reports       repository.DailyReportRepository
	Rankings      repository.RankingRepository
	AuditLogs     repository.AuditLogRepository
}

type Service struct {
	teams         repository.TeamRepository
	sellers       repository.SellerRepository
	goals         repository.GoalRepository
	configuration repository.ConfigurationRepository
	reports       repository.DailyReportRepository
	rankings      repository.RankingRepository
	auditLogs     repository.AuditLogRepository
	storage       storage.Storage
	validate      *validator.Validate
}

func NewService(repos Repositories, fileStorage storage.Storage) *Service {
	return &Service{
		teams:         repos.Teams,
		sellers:       repos.Sellers,
		goals:         repos.Goals,
		configuration: repos.Configuration,
		reports:       repos.Reports,
		rankings:      repos.Rankings,
		auditLogs:     repos.AuditLogs,
		storage:       fileStorage,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *Service) validateInput(input any) error {
	if err := s.validate.Struct(input); err != nil {
		return invalidInput(validationDetails(err))
	}
	return nil
}

// audit registra a ação de quem está na sessão. Falha na auditoria não
// desfaz a operação principal.
func (s *Service) audit(ctx context.Context, action, description string) {
	s.record(ctx, session.ActorEmail(ctx), action, description)
}

func (s *Service) record(ctx context.Context, email, action, description string) {
	entry := &domain.AuditLog{
		UserEmail:   email,
		Action:      action,
		Description: description,
	}

	if err := s.auditLogs.Create(ctx, entry); err != nil {
		log.Component(ctx, component).
			WithError(err).
			WithField("user_email", email).
			Error("admin: erro ao gravar auditoria")
	}
}
