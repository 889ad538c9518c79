// Package kpi contém as regras puras que transformam relatórios diários e
// rankings nos indicadores exibidos no dashboard. Nada aqui acessa banco,
// relógio ou estado global.
package kpi

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const PeriodKeyLayout = "2006-01"

// Period é o mês de referência ativo e seus limites
type Period struct {
	Key         string
	MonthStart  time.Time
	MonthEnd    time.Time
	DaysInMonth int
	DayOfMonth  int
}

// ResolvePeriod deriva o mês ativo a partir do instante de referência,
// usando o fuso do próprio instante.
func ResolvePeriod(ref time.Time) Period {
	loc := ref.Location()
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	end := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, loc)

	return Period{
		Key:         start.Format(PeriodKeyLayout),
		MonthStart:  start,
		MonthEnd:    end,
		DaysInMonth: end.Day(),
		DayOfMonth:  ref.Day(),
	}
}

// DaysIn retorna a quantidade de dias do mês (28 a 31)
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contains compara apenas ano e mês do calendário, ignorando fuso e horário.
// Datas de relatório chegam do banco como meia-noite UTC.
func (p Period) Contains(date time.Time) bool {
	return date.Year() == p.MonthStart.Year() && date.Month() == p.MonthStart.Month()
}

// Today retorna a data de hoje dentro do período, à meia-noite
func (p Period) Today() time.Time {
	return p.MonthStart.AddDate(0, 0, p.DayOfMonth-1)
}

func (p Period) View() domain.PeriodView {
	return domain.PeriodView{
		Key:         p.Key,
		MonthStart:  p.MonthStart.Format(time.DateOnly),
		MonthEnd:    p.MonthEnd.Format(time.DateOnly),
		DaysInMonth: p.DaysInMonth,
		DayOfMonth:  p.DayOfMonth,
	}
}
