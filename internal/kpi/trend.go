package kpi

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// BuildTrendSeries monta a série diária do mês: valor previsto linear até a
// meta e valor real cumulativo. Dias sem relatório repetem o último valor
// conhecido (começando em zero) e dias futuros ficam sem valor real.
func BuildTrendSeries(period Period, target decimal.Decimal, reports []*domain.DailyReport) domain.TrendSeries {
	days := period.DaysInMonth
	today := period.DayOfMonth

	byDay := make(map[int]decimal.Decimal, len(reports))
	for _, report := range reports {
		if report == nil || !period.Contains(report.ReportDate) {
			continue
		}
		// relatórios duplicados na mesma data: o último da lista prevalece
		byDay[report.ReportDate.Day()] = report.TotalEffective
	}

	daysDec := decimal.NewFromInt(int64(days))
	points := make([]domain.TrendPoint, 0, days)
	carried := decimal.Zero

	series := domain.TrendSeries{
		TotalPredicted: decimal.Zero,
		TotalActual:    decimal.Zero,
	}

	for day := 1; day <= days; day++ {
		predicted := target.Mul(decimal.NewFromInt(int64(day))).Div(daysDec).Round(0)

		if value, ok := byDay[day]; ok {
			carried = value
		}

		point := domain.TrendPoint{Day: day, Predicted: predicted}
		if day <= today {
			actual := carried
			point.Actual = &actual
		}

		if day == today {
			series.TotalPredicted = predicted
			series.TotalActual = carried
		}

		points = append(points, point)
	}

	series.Points = points

	if series.TotalPredicted.IsPositive() {
		gauge := series.TotalActual.Div(series.TotalPredicted).Mul(hundred).InexactFloat64()
		series.GaugePercent = utils.RoundWithTwoDecimalPlace(gauge)
	}

	series.PieEffective = series.TotalActual
	series.PieRemaining = decimal.Max(target.Sub(series.TotalActual), decimal.Zero)

	return series
}
