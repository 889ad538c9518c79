package cache

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func sampleSnapshot() *domain.DashboardSnapshot {
	return &domain.DashboardSnapshot{
		Period:         domain.PeriodView{Key: "2024-06", DaysInMonth: 30, DayOfMonth: 15},
		Goal:           domain.GoalProgress{Found: true, TargetValue: decimal.NewFromInt(50000), CurrentValue: decimal.NewFromInt(32000)},
		DashboardTitle: domain.DefaultDashboardTitle,
		ChartMode:      domain.ChartModeLine,
		GeneratedAt:    time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestSnapshotKey(t *testing.T) {
	assert.Equal(t, "dashboard:snapshot:2024-06-15", SnapshotKey(time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)))
}

func TestMemoryStore_SaveELoad(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10, time.Hour)

	missing, err := store.Load(ctx, "nada")
	require.NoError(t, err)
	assert.Nil(t, missing)

	original := sampleSnapshot()
	require.NoError(t, store.Save(ctx, "k", original))

	loaded, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "2024-06", loaded.Period.Key)
	assert.True(t, loaded.Goal.CurrentValue.Equal(decimal.NewFromInt(32000)))

	// o snapshot salvo não é afetado por mudanças no original
	original.Period.Key = "alterado"
	again, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "2024-06", again.Period.Key)
}

func TestMemoryStore_Expiracao(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10, 50*time.Millisecond)

	require.NoError(t, store.Save(ctx, "k", sampleSnapshot()))

	loaded, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Eventually(t, func() bool {
		loaded, err := store.Load(ctx, "k")
		return err == nil && loaded == nil
	}, time.Second, 10*time.Millisecond)

	// a varredura em segundo plano remove a entrada expirada
	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestMemoryStore_Limite(t *testing.T) {
	ctx := context.Background()
	const size = 16
	store := NewMemoryStore(size, time.Hour)

	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var last time.Time
	for i := 0; i < size*10; i++ {
		last = first.AddDate(0, 0, i)
		require.NoError(t, store.Save(ctx, SnapshotKey(last), sampleSnapshot()))
		require.LessOrEqual(t, store.Len(), size)
	}

	assert.Equal(t, size, store.Len())

	oldest, err := store.Load(ctx, SnapshotKey(first))
	require.NoError(t, err)
	assert.Nil(t, oldest)

	newest, err := store.Load(ctx, SnapshotKey(last))
	require.NoError(t, err)
	assert.NotNil(t, newest)
}

func TestNewMemoryStore_TamanhoPadrao(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0, 0)

	first := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < defaultMemorySize+10; i++ {
		require.NoError(t, store.Save(ctx, SnapshotKey(first.AddDate(0, 0, i)), sampleSnapshot()))
	}

	assert.Equal(t, defaultMemorySize, store.Len())
}

func TestNew(t *testing.T) {
	store, err := New(context.Background(), config.Cache{Driver: DriverMemory, SnapshotSize: 4, SnapshotTTL: time.Hour})
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, store)

	for i := 0; i < 10; i++ {
		key := SnapshotKey(time.Date(2024, 6, 1+i, 0, 0, 0, 0, time.UTC))
		require.NoError(t, store.Save(context.Background(), key, sampleSnapshot()))
	}
	assert.Equal(t, 4, store.(*MemoryStore).Len())

	_, err = New(context.Background(), config.Cache{Driver: "memcached"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
