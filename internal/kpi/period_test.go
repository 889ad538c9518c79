package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriod(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name        string
		ref         time.Time
		key         string
		start       string
		end         string
		daysInMonth int
		dayOfMonth  int
	}{
		{
			name:        "Meio de janeiro",
			ref:         time.Date(2024, 1, 15, 10, 0, 0, 0, saoPaulo),
			key:         "2024-01",
			start:       "2024-01-01",
			end:         "2024-01-31",
			daysInMonth: 31,
			dayOfMonth:  15,
		},
		{
			name:        "Fevereiro bissexto",
			ref:         time.Date(2024, 2, 29, 23, 59, 0, 0, saoPaulo),
			key:         "2024-02",
			start:       "2024-02-01",
			end:         "2024-02-29",
			daysInMonth: 29,
			dayOfMonth:  29,
		},
		{
			name:        "Primeiro dia do mês",
			ref:         time.Date(2023, 4, 1, 0, 0, 0, 0, saoPaulo),
			key:         "2023-04",
			start:       "2023-04-01",
			end:         "2023-04-30",
			daysInMonth: 30,
			dayOfMonth:  1,
		},
		{
			name:        "Virada de ano",
			ref:         time.Date(2023, 12, 31, 12, 0, 0, 0, saoPaulo),
			key:         "2023-12",
			start:       "2023-12-01",
			end:         "2023-12-31",
			daysInMonth: 31,
			dayOfMonth:  31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ResolvePeriod(tt.ref)

			assert.Equal(t, tt.key, p.Key)
			assert.Equal(t, tt.start, p.MonthStart.Format(time.DateOnly))
			assert.Equal(t, tt.end, p.MonthEnd.Format(time.DateOnly))
			assert.Equal(t, tt.daysInMonth, p.DaysInMonth)
			assert.Equal(t, tt.dayOfMonth, p.DayOfMonth)
			assert.Equal(t, tt.ref.Location(), p.MonthStart.Location())
		})
	}
}

// O dia de referência depende do fuso: 02h UTC de 1º de março ainda é 29 de fevereiro em São Paulo
func TestResolvePeriod_UsaFusoDaReferencia(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	instant := time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-03", ResolvePeriod(instant).Key)
	assert.Equal(t, "2024-02", ResolvePeriod(instant.In(saoPaulo)).Key)
}

func TestDaysIn_Fevereiro(t *testing.T) {
	for year := 2000; year <= 2100; year++ {
		leap := year%4 == 0 && (year%100 != 0 || year%400 == 0)
		expected := 28
		if leap {
			expected = 29
		}
		assert.Equal(t, expected, DaysIn(year, time.February), "ano %d", year)
	}
}

func TestPeriod_Contains(t *testing.T) {
	p := ResolvePeriod(time.Date(2024, 5, 10, 0, 0, 0, 0, time.FixedZone("BRT", -3*60*60)))

	assert.True(t, p.Contains(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPeriod_View(t *testing.T) {
	p := ResolvePeriod(time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC))
	view := p.View()

	assert.Equal(t, "2024-06", view.Key)
	assert.Equal(t, "2024-06-01", view.MonthStart)
	assert.Equal(t, "2024-06-30", view.MonthEnd)
	assert.Equal(t, 30, view.DaysInMonth)
	assert.Equal(t, 7, view.DayOfMonth)
	assert.Equal(t, "2024-06-07", p.Today().Format(time.DateOnly))
}
