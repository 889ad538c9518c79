package administrating

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

func (s *Service) ListSellers(ctx context.Context) ([]*domain.Seller, error) {
	sellers, err := s.sellers.List(ctx)
	if err != nil {
		return nil, databaseError(err)
	}
	return sellers, nil
}

func (s *Service) CreateSeller(ctx context.Context, input domain.SellerInput) (*domain.Seller, error) {
	if err := s.prepareSellerInput(ctx, &input); err != nil {
		return nil, err
	}

	seller, err := s.sellers.Create(ctx, &domain.Seller{
		Name:   input.Name,
		Email:  input.Email,
		Status: input.Status,
		TeamID: input.TeamID,
	})
	if err != nil {
		return nil, sellerWriteError(err)
	}

	s.audit(ctx, domain.AuditActionCreate, fmt.Sprintf("Vendedor %q criado", seller.Name))
	return seller, nil
}

func (s *Service) UpdateSeller(ctx context.Context, id string, input domain.SellerInput) (*domain.Seller, error) {
	if err := s.prepareSellerInput(ctx, &input); err != nil {
		return nil, err
	}

	seller, err := s.sellers.GetByID(ctx, id)
	if err != nil {
		return nil, databaseError(err)
	}
	if seller == nil {
		return nil, notFound("vendedor")
	}

	seller.Name = input.Name
	seller.Email = input.Email
	seller.Status = input.Status
	seller.TeamID = input.TeamID

	if err := s.sellers.Update(ctx, seller); err != nil {
		return nil, sellerWriteError(err)
	}

	s.audit(ctx, domain.AuditActionUpdate, fmt.Sprintf("Vendedor %q atualizado", seller.Name))
	return seller, nil
}

func (s *Service) DeleteSeller(ctx context.Context, id string) error {
	deleted, err := s.sellers.Delete(ctx, id)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return NewAdminError(ErrConflict, apiErrors.ErrResourceConflict, "vendedor possui rankings registrados")
		}
		return databaseError(err)
	}
	if !deleted {
		return notFound("vendedor")
	}

	s.audit(ctx, domain.AuditActionDelete, fmt.Sprintf("Vendedor %s removido", id))
	return nil
}

// prepareSellerInput normaliza, valida e confere se a equipe existe
func (s *Service) prepareSellerInput(ctx context.Context, input *domain.SellerInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Status == "" {
		input.Status = domain.SellerStatusActive
	}
	if input.TeamID != nil && *input.TeamID == "" {
		input.TeamID = nil
	}

	if err := s.validateInput(*input); err != nil {
		return err
	}

	if input.TeamID == nil {
		return nil
	}

	team, err := s.teams.GetByID(ctx, *input.TeamID)
	if err != nil {
		return databaseError(err)
	}
	if team == nil {
		return invalidInput([]string{"team_id: equipe não encontrada"})
	}

	return nil
}

func sellerWriteError(err error) error {
	switch {
	case repository.IsUniqueViolation(err):
		return NewAdminError(ErrConflict, apiErrors.ErrResourceConflict, "email de vendedor já cadastrado")
	case repository.IsForeignKeyViolation(err):
		return invalidInput([]string{"team_id: equipe não encontrada"})
	default:
		return databaseError(err)
	}
}
