package kpi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// NoActiveGoalMessage é exibido quando nenhuma meta ativa cobre o mês
const NoActiveGoalMessage = "Nenhuma meta definida para o mês atual"

var ErrInvalidGoalPeriod = errors.New("período de meta inválido")

var hundred = decimal.NewFromInt(100)

// rangeStartLayouts são os formatos aceitos para a data inicial de um período "mensal:"
var rangeStartLayouts = []string{time.DateOnly, "02/01/2006"}

// GoalPeriodError descreve uma meta ignorada por ter período ilegível
type GoalPeriodError struct {
	GoalID string
	Period string
}

func (e *GoalPeriodError) Error() string {
	return fmt.Sprintf("%s: meta %s com período %q", ErrInvalidGoalPeriod.Error(), e.GoalID, e.Period)
}

func (e *GoalPeriodError) Unwrap() error {
	return ErrInvalidGoalPeriod
}

// ParseGoalPeriod converte o período gravado na meta para a chave "YYYY-MM".
// exact indica que o período foi gravado como "YYYY-MM" puro.
func ParseGoalPeriod(period string) (key string, exact bool, err error) {
	period = strings.TrimSpace(period)

	if rest, ok := strings.CutPrefix(period, domain.MonthlyRangePrefix); ok {
		rest = strings.TrimSpace(rest)
		for _, layout := range rangeStartLayouts {
			if len(rest) < len(layout) {
				continue
			}
			start, err := time.Parse(layout, rest[:len(layout)])
			if err == nil {
				return start.Format(PeriodKeyLayout), false, nil
			}
		}
		return "", false, ErrInvalidGoalPeriod
	}

	month, err := time.Parse(PeriodKeyLayout, period)
	if err != nil {
		return "", false, ErrInvalidGoalPeriod
	}

	return month.Format(PeriodKeyLayout), true, nil
}

type goalCandidate struct {
	goal  *domain.GlobalGoal
	exact bool
}

// SelectActiveGoal escolhe a meta ativa do período. Metas com período
// ilegível são ignoradas e devolvidas como erros para log. Em caso de empate
// vence o período "YYYY-MM" exato, depois a meta criada primeiro, depois o menor id.
func SelectActiveGoal(goals []*domain.GlobalGoal, periodKey string) (*domain.GlobalGoal, []error) {
	var (
		candidates []goalCandidate
		skipped    []error
	)

	for _, goal := range goals {
		if goal == nil || goal.Status != domain.GoalStatusActive {
			continue
		}

		key, exact, err := ParseGoalPeriod(goal.Period)
		if err != nil {
			skipped = append(skipped, &GoalPeriodError{GoalID: goal.ID, Period: goal.Period})
			continue
		}

		if key == periodKey {
			candidates = append(candidates, goalCandidate{goal: goal, exact: exact})
		}
	}

	if len(candidates) == 0 {
		return nil, skipped
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.exact != b.exact {
			return a.exact
		}
		if !a.goal.CreatedAt.Equal(b.goal.CreatedAt) {
			return a.goal.CreatedAt.Before(b.goal.CreatedAt)
		}
		return a.goal.ID < b.goal.ID
	})

	return candidates[0].goal, skipped
}

// CalculateGoalProgress calcula o progresso da meta usando o total efetivado
// do relatório mais recente. O total já é cumulativo, então não há soma.
func CalculateGoalProgress(goal *domain.GlobalGoal, latest *domain.DailyReport) domain.GoalProgress {
	if goal == nil {
		return domain.GoalProgress{
			Found:           false,
			FallbackMessage: NoActiveGoalMessage,
		}
	}

	current := decimal.Zero
	if latest != nil {
		current = latest.TotalEffective
	}

	target := goal.TargetValue
	progress := 0.0
	if target.IsPositive() {
		progress = current.Div(target).Mul(hundred).InexactFloat64()
	}

	remaining := target.Sub(current)

	return domain.GoalProgress{
		Found:           true,
		GoalID:          goal.ID,
		Title:           goal.Title,
		TargetValue:     target,
		CurrentValue:    current,
		ProgressPercent: progress,
		DisplayPercent:  ClampPercent(progress),
		Remaining:       remaining,
		TargetLabel:     utils.FormatBRL(target),
		CurrentLabel:    utils.FormatBRL(current),
		RemainingLabel:  utils.FormatBRL(remaining),
	}
}

// ClampPercent trava o percentual visual entre 0 e 100
func ClampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
