package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestGoalRepository_ListActive(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewGoalRepository(conn)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM global_goals WHERE status = \$1 ORDER BY created_at ASC, id ASC`).
		WithArgs(domain.GoalStatusActive).
		WillReturnRows(sqlmock.NewRows(goalColumns).
			AddRow("g1", "Meta de Junho", "50000.00", "0", "2024-06", "active", now, now))

	goals, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "2024-06", goals[0].Period)
	assert.True(t, goals[0].TargetValue.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, domain.GoalStatusActive, goals[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepository_UpdateEDelete(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewGoalRepository(conn)

	mock.ExpectExec(`UPDATE global_goals SET title = \$1, target_value = \$2, period = \$3, status = \$4, updated_at = CURRENT_TIMESTAMP WHERE id = \$5`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM global_goals WHERE id = \$1`).
		WithArgs("g1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.GlobalGoal{
		ID:          "g1",
		Title:       "Meta",
		TargetValue: decimal.NewFromInt(1000),
		Period:      "2024-06",
		Status:      domain.GoalStatusPaused,
	})
	require.NoError(t, err)

	deleted, err := repo.Delete(context.Background(), "g1")
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
