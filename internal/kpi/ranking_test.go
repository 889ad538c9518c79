package kpi

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func strPtr(s string) *string {
	return &s
}

var rankingDate = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func TestAssembleRanking_SempreCincoLinhas(t *testing.T) {
	for _, count := range []int{0, 3, 5, 7} {
		rows := make([]*domain.Ranking, 0, count)
		for i := 1; i <= count; i++ {
			rows = append(rows, &domain.Ranking{SellerID: "s", RankingType: domain.RankingTypeTopSellers, Position: i})
		}

		board := AssembleRanking(domain.RankingTypeTopSellers, rankingDate, rows, nil)

		require.Len(t, board.Rows, domain.MaxRankingPosition, "com %d linhas", count)
		for i, row := range board.Rows {
			assert.Equal(t, i+1, row.Position)
		}
	}
}

func TestAssembleRanking_PosicoesUmETres(t *testing.T) {
	sellers := []*domain.Seller{
		{ID: "ana", Name: "Ana", Team: &domain.Team{Name: "Equipe Norte"}},
		{ID: "bia", Name: "Bia"},
	}
	rows := []*domain.Ranking{
		{SellerID: "ana", RankingType: domain.RankingTypeTopSellers, Position: 1, ValueSold: decPtr("15000")},
		{SellerID: "bia", RankingType: domain.RankingTypeTopSellers, Position: 3, ValueSold: decPtr("9000"), OCNumber: strPtr("OC-77")},
	}

	board := AssembleRanking(domain.RankingTypeTopSellers, rankingDate, rows, sellers)

	require.Len(t, board.Rows, 5)
	assert.Equal(t, "2024-01-15", board.Date)

	assert.Equal(t, domain.RankingRowPopulated, board.Rows[0].Kind)
	assert.Equal(t, "Ana", board.Rows[0].SellerName)
	assert.Equal(t, "Equipe Norte", board.Rows[0].TeamName)

	assert.True(t, board.Rows[1].IsPlaceholder())
	assert.Equal(t, domain.PlaceholderSellerName, board.Rows[1].SellerName)
	assert.Equal(t, domain.PlaceholderTeamName, board.Rows[1].TeamName)
	assert.True(t, board.Rows[1].ValueSold.IsZero())

	assert.Equal(t, "Bia", board.Rows[2].SellerName)
	assert.Equal(t, domain.PlaceholderTeamName, board.Rows[2].TeamName)
	assert.Equal(t, "OC-77", board.Rows[2].OCNumber)

	assert.True(t, board.Rows[3].IsPlaceholder())
	assert.True(t, board.Rows[4].IsPlaceholder())
	assert.Zero(t, board.Dropped)
}

func TestAssembleRanking_VendedorNaoEncontrado(t *testing.T) {
	rows := []*domain.Ranking{{SellerID: "sumiu", RankingType: domain.RankingTypeProfitMargin, Position: 2, ProfitMargin: decPtr("31.5")}}

	board := AssembleRanking(domain.RankingTypeProfitMargin, rankingDate, rows, nil)

	assert.Equal(t, domain.RankingRowPopulated, board.Rows[1].Kind)
	assert.Equal(t, domain.UnknownSellerName, board.Rows[1].SellerName)
	assert.Equal(t, domain.PlaceholderTeamName, board.Rows[1].TeamName)
	assert.True(t, board.Rows[1].ProfitMargin.Equal(decimal.RequireFromString("31.5")))
}

func TestAssembleRanking_DescartaPosicoesInvalidas(t *testing.T) {
	rows := []*domain.Ranking{
		{SellerID: "a", RankingType: domain.RankingTypeTopSellers, Position: 0},
		{SellerID: "b", RankingType: domain.RankingTypeTopSellers, Position: 6},
		{SellerID: "c", RankingType: domain.RankingTypeTopSellers, Position: 2},
		{SellerID: "d", RankingType: domain.RankingTypeTopSellers, Position: 2},
		{SellerID: "e", RankingType: domain.RankingTypeCashFlow, Position: 1},
	}

	board := AssembleRanking(domain.RankingTypeTopSellers, rankingDate, rows, nil)

	assert.Equal(t, 4, board.Dropped)
	assert.Equal(t, "c", board.Rows[1].SellerID)
	assert.True(t, board.Rows[0].IsPlaceholder())
}

func TestAssembleRanking_Efetividade(t *testing.T) {
	rows := []*domain.Ranking{
		{SellerID: "a", RankingType: domain.RankingTypeCashFlow, Position: 1, ValueSold: decPtr("10000"), ValueReceived: decPtr("8000")},
		{SellerID: "b", RankingType: domain.RankingTypeCashFlow, Position: 2, ValueSold: decPtr("0"), ValueReceived: decPtr("500")},
		{SellerID: "c", RankingType: domain.RankingTypeCashFlow, Position: 3, ValueReceived: decPtr("500")},
		{SellerID: "d", RankingType: domain.RankingTypeCashFlow, Position: 4, ValueSold: decPtr("3"), ValueReceived: decPtr("2")},
	}

	board := AssembleRanking(domain.RankingTypeCashFlow, rankingDate, rows, nil)

	assert.Equal(t, 80, board.Rows[0].Effectiveness)
	assert.Equal(t, 0, board.Rows[1].Effectiveness)
	assert.Equal(t, 0, board.Rows[2].Effectiveness)
	assert.Equal(t, 67, board.Rows[3].Effectiveness)
	assert.Equal(t, 0, board.Rows[4].Effectiveness)
}

func TestAssembleRanking_EfetividadeSoNoFluxoDeCaixa(t *testing.T) {
	rows := []*domain.Ranking{
		{SellerID: "a", RankingType: domain.RankingTypeTopSellers, Position: 1, ValueSold: decPtr("10000"), ValueReceived: decPtr("8000")},
	}

	board := AssembleRanking(domain.RankingTypeTopSellers, rankingDate, rows, nil)

	assert.Equal(t, 0, board.Rows[0].Effectiveness)
}

func TestEffectiveness(t *testing.T) {
	assert.Equal(t, 0, Effectiveness(decimal.Zero, decimal.NewFromInt(100)))
	assert.Equal(t, 100, Effectiveness(decimal.NewFromInt(50), decimal.NewFromInt(50)))
	assert.Equal(t, 125, Effectiveness(decimal.NewFromInt(40), decimal.NewFromInt(50)))
}
