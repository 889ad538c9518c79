package administrating

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func (s *Service) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, databaseError(err)
	}
	return teams, nil
}

func (s *Service) CreateTeam(ctx context.Context, input domain.TeamInput) (*domain.Team, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	team, err := s.teams.Create(ctx, &domain.Team{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, databaseError(err)
	}

	s.audit(ctx, domain.AuditActionCreate, fmt.Sprintf("Equipe %q criada", team.Name))
	return team, nil
}

func (s *Service) UpdateTeam(ctx context.Context, id string, input domain.TeamInput) (*domain.Team, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return nil, databaseError(err)
	}
	if team == nil {
		return nil, notFound("equipe")
	}

	team.Name = input.Name
	team.Description = input.Description

	if err := s.teams.Update(ctx, team); err != nil {
		return nil, databaseError(err)
	}

	s.audit(ctx, domain.AuditActionUpdate, fmt.Sprintf("Equipe %q atualizada", team.Name))
	return team, nil
}

// DeleteTeam remove a equipe; os vendedores dela ficam sem equipe
func (s *Service) DeleteTeam(ctx context.Context, id string) error {
	deleted, err := s.teams.Delete(ctx, id)
	if err != nil {
		return databaseError(err)
	}
	if !deleted {
		return notFound("equipe")
	}

	s.audit(ctx, domain.AuditActionDelete, fmt.Sprintf("Equipe %s removida", id))
	return nil
}
