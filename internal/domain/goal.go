package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// MonthlyRangePrefix marca períodos gravados como "mensal:<inicio>-<fim>"
const MonthlyRangePrefix = "mensal:"

type GlobalGoal struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	TargetValue  decimal.Decimal `json:"target_value"`
	CurrentValue decimal.Decimal `json:"current_value"` // derivado, não é a fonte da verdade
	Period       string          `json:"period"`        // "YYYY-MM" ou "mensal:<inicio>-<fim>"
	Status       GoalStatus      `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type GoalInput struct {
	Title       string          `json:"title" validate:"required,max=200"`
	TargetValue decimal.Decimal `json:"target_value"`
	Period      string          `json:"period" validate:"required"`
	Status      GoalStatus      `json:"status" validate:"omitempty,oneof=active completed paused"`
}
