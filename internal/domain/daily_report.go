// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport é o snapshot diário do total efetivado. O valor é cumulativo
// até a data do relatório, não o incremento do dia.
type DailyReport struct {
	ID             string          `json:"id"`
	ReportDate     time.Time       `json:"report_date"`
	TotalEffective decimal.Decimal `json:"total_effective"`
	CreatedBy      *string         `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// DailyReportInput é o payload usado pelo painel administrativo para gravar o relatório de um dia
type DailyReportInput struct {
	ReportDate     string          `json:"report_date" validate:"required,datetime=2006-01-02"`
	TotalEffective decimal.Decimal `json:"total_effective"`
	Rankings       []RankingInput  `json:"rankings" validate:"dive"`
}
