package administrating

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/session"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ReportDetail é o relatório do dia com os rankings de todos os tipos
type ReportDetail struct {
	Report   *domain.DailyReport `json:"report"`
	Rankings []*domain.Ranking   `json:"rankings"`
}

// SaveReport grava ou substitui o relatório do dia e seus rankings
func (s *Service) SaveReport(ctx context.Context, input domain.DailyReportInput) (*ReportDetail, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	if input.TotalEffective.IsNegative() {
		return nil, invalidInput([]string{"total_effective: não pode ser negativo"})
	}

	date, err := time.Parse(time.DateOnly, input.ReportDate)
	if err != nil {
		return nil, invalidInput([]string{"report_date: " + err.Error()})
	}

	type slot struct {
		rankingType domain.RankingType
		position    int
	}
	seen := make(map[slot]bool, len(input.Rankings))
	rankings := make([]*domain.Ranking, 0, len(input.Rankings))

	for _, in := range input.Rankings {
		key := slot{in.RankingType, in.Position}
		if seen[key] {
			return nil, invalidInput([]string{fmt.Sprintf("rankings: posição %d repetida em %s", in.Position, in.RankingType)})
		}
		seen[key] = true

		rankings = append(rankings, &domain.Ranking{
			SellerID:       in.SellerID,
			RankingType:    in.RankingType,
			Position:       in.Position,
			ValueSold:      in.ValueSold,
			ValueReceived:  in.ValueReceived,
			ConversionRate: in.ConversionRate,
			ProfitMargin:   in.ProfitMargin,
			OCNumber:       in.OCNumber,
		})
	}

	report := &domain.DailyReport{
		ReportDate:     date,
		TotalEffective: input.TotalEffective,
	}
	if sess, ok := session.FromContext(ctx); ok {
		report.CreatedBy = &sess.UserID
	}

	saved, err := s.reports.Upsert(ctx, report, rankings)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, invalidInput([]string{"rankings: vendedor não encontrado"})
		}
		return nil, databaseError(err)
	}

	s.audit(ctx, domain.AuditActionUpdate, fmt.Sprintf("Relatório de %s salvo com %d rankings", input.ReportDate, len(rankings)))
	return &ReportDetail{Report: saved, Rankings: rankings}, nil
}

func (s *Service) GetReport(ctx context.Context, date string) (*ReportDetail, error) {
	reportDate, err := parseReportDate(date)
	if err != nil {
		return nil, err
	}

	report, err := s.reports.GetByDate(ctx, reportDate)
	if err != nil {
		return nil, databaseError(err)
	}
	if report == nil {
		return nil, notFound("relatório")
	}

	detail := &ReportDetail{Report: report, Rankings: make([]*domain.Ranking, 0)}
	for _, rankingType := range domain.RankingTypes {
		rows, err := s.rankings.ListByReport(ctx, report.ID, rankingType)
		if err != nil {
			return nil, databaseError(err)
		}
		detail.Rankings = append(detail.Rankings, rows...)
	}

	return detail, nil
}

// ListReports lista os relatórios do mês "YYYY-MM"
func (s *Service) ListReports(ctx context.Context, month string) ([]*domain.DailyReport, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, NewAdminError(ErrInvalidInput, apiErrors.ErrInvalidFormat, "mês deve estar no formato YYYY-MM")
	}
	end := start.AddDate(0, 1, -1)

	reports, err := s.reports.ListInRange(ctx, start, end)
	if err != nil {
		return nil, databaseError(err)
	}
	return reports, nil
}

func (s *Service) DeleteReport(ctx context.Context, date string) error {
	reportDate, err := parseReportDate(date)
	if err != nil {
		return err
	}

	deleted, err := s.reports.DeleteByDate(ctx, reportDate)
	if err != nil {
		return databaseError(err)
	}
	if !deleted {
		return notFound("relatório")
	}

	s.audit(ctx, domain.AuditActionDelete, fmt.Sprintf("Relatório de %s removido", date))
	return nil
}

func parseReportDate(date string) (time.Time, error) {
	reportDate, err := utils.ParseDate(date)
	if err != nil || reportDate == nil {
		return time.Time{}, NewAdminError(ErrInvalidInput, apiErrors.ErrInvalidFormat, "data deve estar no formato YYYY-MM-DD")
	}
	return *reportDate, nil
}
