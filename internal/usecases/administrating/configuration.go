package administrating

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const logoPrefix = "logos/"

var logoExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
}

// GetConfiguration retorna a configuração salva ou a padrão quando ainda não existe
func (s *Service) GetConfiguration(ctx context.Context) (*domain.Configuration, error) {
	cfg, err := s.configuration.Get(ctx)
	if err != nil {
		return nil, databaseError(err)
	}
	if cfg == nil {
		return &domain.Configuration{DashboardTitle: domain.DefaultDashboardTitle}, nil
	}
	return cfg, nil
}

func (s *Service) UpdateConfiguration(ctx context.Context, input domain.ConfigurationInput) (*domain.Configuration, error) {
	input.DashboardTitle = strings.TrimSpace(input.DashboardTitle)
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	current, err := s.GetConfiguration(ctx)
	if err != nil {
		return nil, err
	}
	current.DashboardTitle = input.DashboardTitle

	saved, err := s.configuration.Save(ctx, current)
	if err != nil {
		return nil, databaseError(err)
	}

	s.audit(ctx, domain.AuditActionUpdate, fmt.Sprintf("Título do dashboard alterado para %q", saved.DashboardTitle))
	return saved, nil
}

// UploadLogo grava a imagem no storage e aponta a configuração para ela. Se a
// configuração não puder ser salva o arquivo enviado é removido.
func (s *Service) UploadLogo(ctx context.Context, file io.Reader, filename, contentType string) (*domain.Configuration, error) {
	ext, ok := logoExtensions[strings.ToLower(contentType)]
	if !ok {
		return nil, NewAdminError(ErrInvalidImage, apiErrors.ErrInvalidFormat, contentType)
	}
	if original := strings.ToLower(path.Ext(filename)); original == ".jpeg" {
		ext = original
	}

	current, err := s.GetConfiguration(ctx)
	if err != nil {
		return nil, err
	}

	key := logoPrefix + uuid.NewString() + ext
	url, err := s.storage.Upload(ctx, file, key, contentType)
	if err != nil {
		return nil, NewAdminError(fmt.Errorf("erro ao enviar logo: %w", err), apiErrors.ErrExternalService, nil)
	}

	current.CompanyLogo = &url
	saved, err := s.configuration.Save(ctx, current)
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			log.Component(ctx, component).
				WithError(delErr).
				WithField("key", key).
				Warn("admin: não foi possível remover logo órfão")
		}
		return nil, databaseError(err)
	}

	s.audit(ctx, domain.AuditActionUpdate, fmt.Sprintf("Logo da empresa atualizado (%s)", filename))
	return saved, nil
}
