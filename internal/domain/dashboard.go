package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChartMode é o modo de exibição do card previsto x efetivado
type ChartMode string

const (
	ChartModeLine  ChartMode = "line"
	ChartModePie   ChartMode = "pie"
	ChartModeGauge ChartMode = "gauge"
)

func (m ChartMode) IsValid() bool {
	return m == ChartModeLine || m == ChartModePie || m == ChartModeGauge
}

// Next retorna o próximo modo na rotação line -> pie -> gauge -> line
func (m ChartMode) Next() ChartMode {
	switch m {
	case ChartModeLine:
		return ChartModePie
	case ChartModePie:
		return ChartModeGauge
	default:
		return ChartModeLine
	}
}

type PeriodView struct {
	Key         string `json:"key"`
	MonthStart  string `json:"month_start"`
	MonthEnd    string `json:"month_end"`
	DaysInMonth int    `json:"days_in_month"`
	DayOfMonth  int    `json:"day_of_month"`
}

type GoalProgress struct {
	Found           bool            `json:"found"`
	GoalID          string          `json:"goal_id,omitempty"`
	Title           string          `json:"title,omitempty"`
	TargetValue     decimal.Decimal `json:"target_value"`
	CurrentValue    decimal.Decimal `json:"current_value"`
	ProgressPercent float64         `json:"progress_percent"`
	DisplayPercent  float64         `json:"display_percent"`
	Remaining       decimal.Decimal `json:"remaining"`
	TargetLabel     string          `json:"target_label,omitempty"`
	CurrentLabel    string          `json:"current_label,omitempty"`
	RemainingLabel  string          `json:"remaining_label,omitempty"`
	FallbackMessage string          `json:"fallback_message,omitempty"`
}

type TrendPoint struct {
	Day       int              `json:"day"`
	Predicted decimal.Decimal  `json:"predicted"`
	Actual    *decimal.Decimal `json:"actual"` // nil para dias que ainda não aconteceram
}

type TrendSeries struct {
	Points         []TrendPoint    `json:"points"`
	TotalPredicted decimal.Decimal `json:"total_predicted"`
	TotalActual    decimal.Decimal `json:"total_actual"`
	GaugePercent   float64         `json:"gauge_percent"`
	PieEffective   decimal.Decimal `json:"pie_effective"`
	PieRemaining   decimal.Decimal `json:"pie_remaining"`
}

type RankingRowKind string

const (
	RankingRowPopulated   RankingRowKind = "populated"
	RankingRowPlaceholder RankingRowKind = "placeholder"
)

const (
	PlaceholderSellerName = "Sem dados"
	PlaceholderTeamName   = "Sem equipe"
	UnknownSellerName     = "Vendedor não encontrado"
)

// RankingRow é uma linha do quadro fixo de ranking. Kind diferencia uma
// posição com dados de uma posição preenchida com placeholder.
type RankingRow struct {
	Kind           RankingRowKind  `json:"kind"`
	Position       int             `json:"position"`
	SellerID       string          `json:"seller_id,omitempty"`
	SellerName     string          `json:"seller_name"`
	TeamName       string          `json:"team_name"`
	ValueSold      decimal.Decimal `json:"value_sold"`
	ValueReceived  decimal.Decimal `json:"value_received"`
	ConversionRate decimal.Decimal `json:"conversion_rate"`
	ProfitMargin   decimal.Decimal `json:"profit_margin"`
	OCNumber       string          `json:"oc_number"`
	Effectiveness  int             `json:"effectiveness"`
}

func (r RankingRow) IsPlaceholder() bool {
	return r.Kind == RankingRowPlaceholder
}

type RankingBoard struct {
	RankingType RankingType  `json:"ranking_type"`
	Date        string       `json:"date"`
	Rows        []RankingRow `json:"rows"`
	Dropped     int          `json:"dropped"`
}

type DashboardSnapshot struct {
	Period         PeriodView                   `json:"period"`
	Goal           GoalProgress                 `json:"goal"`
	Trend          TrendSeries                  `json:"trend"`
	Rankings       map[RankingType]RankingBoard `json:"rankings"`
	DashboardTitle string                       `json:"dashboard_title"`
	CompanyLogo    *string                      `json:"company_logo"`
	ChartMode      ChartMode                    `json:"chart_mode"`
	GeneratedAt    time.Time                    `json:"generated_at"`
	Stale          bool                         `json:"stale"`
}
