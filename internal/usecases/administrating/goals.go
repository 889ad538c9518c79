package administrating

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/kpi"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

func (s *Service) ListGoals(ctx context.Context) ([]*domain.GlobalGoal, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, databaseError(err)
	}
	return goals, nil
}

func (s *Service) CreateGoal(ctx context.Context, input domain.GoalInput) (*domain.GlobalGoal, error) {
	if err := s.prepareGoalInput(&input); err != nil {
		return nil, err
	}

	goal, err := s.goals.Create(ctx, &domain.GlobalGoal{
		Title:        input.Title,
		TargetValue:  input.TargetValue,
		CurrentValue: decimal.Zero,
		Period:       input.Period,
		Status:       input.Status,
	})
	if err != nil {
		return nil, databaseError(err)
	}

	s.audit(ctx, domain.AuditActionCreate, fmt.Sprintf("Meta %q criada para %s", goal.Title, goal.Period))
	return goal, nil
}

func (s *Service) UpdateGoal(ctx context.Context, id string, input domain.GoalInput) (*domain.GlobalGoal, error) {
	if err := s.prepareGoalInput(&input); err != nil {
		return nil, err
	}

	goal, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, databaseError(err)
	}
	if goal == nil {
		return nil, notFound("meta")
	}

	goal.Title = input.Title
	goal.TargetValue = input.TargetValue
	goal.Period = input.Period
	goal.Status = input.Status

	if err := s.goals.Update(ctx, goal); err != nil {
		return nil, databaseError(err)
	}

	s.audit(ctx, domain.AuditActionUpdate, fmt.Sprintf("Meta %q atualizada", goal.Title))
	return goal, nil
}

func (s *Service) DeleteGoal(ctx context.Context, id string) error {
	deleted, err := s.goals.Delete(ctx, id)
	if err != nil {
		return databaseError(err)
	}
	if !deleted {
		return notFound("meta")
	}

	s.audit(ctx, domain.AuditActionDelete, fmt.Sprintf("Meta %s removida", id))
	return nil
}

// prepareGoalInput aceita "YYYY-MM" ou "mensal:<inicio>-<fim>" e alvo positivo
func (s *Service) prepareGoalInput(input *domain.GoalInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Period = strings.TrimSpace(input.Period)
	if input.Status == "" {
		input.Status = domain.GoalStatusActive
	}

	if err := s.validateInput(*input); err != nil {
		return err
	}

	if !input.TargetValue.IsPositive() {
		return invalidInput([]string{"target_value: deve ser maior que zero"})
	}

	if _, _, err := kpi.ParseGoalPeriod(input.Period); err != nil {
		return NewAdminError(ErrInvalidGoalPeriod, apiErrors.ErrInvalidGoalPeriod, input.Period)
	}

	return nil
}
