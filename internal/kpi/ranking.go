package kpi

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// AssembleRanking monta o top 5 de um tipo de ranking. Posições vazias viram
// linhas de placeholder, posições fora de 1..5 ou repetidas são descartadas e
// contadas em Dropped.
func AssembleRanking(rankingType domain.RankingType, date time.Time, rows []*domain.Ranking, sellers []*domain.Seller) domain.RankingBoard {
	sellersByID := make(map[string]*domain.Seller, len(sellers))
	for _, seller := range sellers {
		if seller != nil {
			sellersByID[seller.ID] = seller
		}
	}

	var (
		slots   [domain.MaxRankingPosition]*domain.Ranking
		dropped int
	)

	for _, row := range rows {
		if row == nil {
			continue
		}
		if row.RankingType != rankingType {
			dropped++
			continue
		}
		if row.Position < 1 || row.Position > domain.MaxRankingPosition {
			dropped++
			continue
		}
		if slots[row.Position-1] != nil {
			dropped++
			continue
		}
		slots[row.Position-1] = row
	}

	board := domain.RankingBoard{
		RankingType: rankingType,
		Date:        date.Format(time.DateOnly),
		Rows:        make([]domain.RankingRow, 0, domain.MaxRankingPosition),
		Dropped:     dropped,
	}

	for i, slot := range slots {
		position := i + 1
		if slot == nil {
			board.Rows = append(board.Rows, placeholderRow(position))
			continue
		}
		board.Rows = append(board.Rows, populatedRow(rankingType, slot, sellersByID[slot.SellerID]))
	}

	return board
}

func placeholderRow(position int) domain.RankingRow {
	return domain.RankingRow{
		Kind:           domain.RankingRowPlaceholder,
		Position:       position,
		SellerName:     domain.PlaceholderSellerName,
		TeamName:       domain.PlaceholderTeamName,
		ValueSold:      decimal.Zero,
		ValueReceived:  decimal.Zero,
		ConversionRate: decimal.Zero,
		ProfitMargin:   decimal.Zero,
	}
}

func populatedRow(rankingType domain.RankingType, ranking *domain.Ranking, seller *domain.Seller) domain.RankingRow {
	row := domain.RankingRow{
		Kind:           domain.RankingRowPopulated,
		Position:       ranking.Position,
		SellerID:       ranking.SellerID,
		SellerName:     domain.UnknownSellerName,
		TeamName:       domain.PlaceholderTeamName,
		ValueSold:      orZero(ranking.ValueSold),
		ValueReceived:  orZero(ranking.ValueReceived),
		ConversionRate: orZero(ranking.ConversionRate),
		ProfitMargin:   orZero(ranking.ProfitMargin),
	}

	if ranking.OCNumber != nil {
		row.OCNumber = *ranking.OCNumber
	}

	if seller != nil {
		row.SellerName = seller.Name
		if seller.Team != nil && seller.Team.Name != "" {
			row.TeamName = seller.Team.Name
		}
	}

	if rankingType == domain.RankingTypeCashFlow {
		row.Effectiveness = Effectiveness(row.ValueSold, row.ValueReceived)
	}

	return row
}

// Effectiveness retorna round(recebido / vendido * 100), ou 0 quando não há
// valor vendido.
func Effectiveness(sold, received decimal.Decimal) int {
	if sold.Sign() <= 0 {
		return 0
	}
	return int(received.Div(sold).Mul(hundred).Round(0).IntPart())
}

func orZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}
