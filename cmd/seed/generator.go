package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/kpi"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// generator produz dados de demonstração para o mês corrente
type generator struct {
	faker  *gofakeit.Faker
	period kpi.Period
}

func newGenerator(seed uint64, now time.Time) *generator {
	return &generator{
		faker:  gofakeit.New(seed),
		period: kpi.ResolvePeriod(now),
	}
}

func (g *generator) teams(n int) []*domain.Team {
	teams := make([]*domain.Team, 0, n)
	for i := 0; i < n; i++ {
		description := g.faker.Company()
		teams = append(teams, &domain.Team{
			Name:        fmt.Sprintf("Equipe %s", g.faker.Color()),
			Description: &description,
		})
	}
	return teams
}

// sellers distribui os vendedores entre as equipes em rodízio
func (g *generator) sellers(n int, teams []*domain.Team) []*domain.Seller {
	sellers := make([]*domain.Seller, 0, n)
	for i := 0; i < n; i++ {
		seller := &domain.Seller{
			Name:   g.faker.Name(),
			Email:  fmt.Sprintf("%d.%s", i+1, strings.ToLower(g.faker.Email())),
			Status: domain.SellerStatusActive,
		}
		if len(teams) > 0 {
			teamID := teams[i%len(teams)].ID
			seller.TeamID = &teamID
		}
		sellers = append(sellers, seller)
	}
	return sellers
}

func (g *generator) goal() *domain.GlobalGoal {
	target := g.faker.IntRange(50, 120) * 10000

	return &domain.GlobalGoal{
		Title:        fmt.Sprintf("Meta de %s", monthNames[g.period.MonthStart.Month()-1]),
		TargetValue:  decimal.NewFromInt(int64(target)),
		CurrentValue: decimal.Zero,
		Period:       g.period.Key,
		Status:       domain.GoalStatusActive,
	}
}

type seededReport struct {
	report   *domain.DailyReport
	rankings []*domain.Ranking
}

// reports gera um relatório por dia do mês até hoje. O total é cumulativo,
// então nunca diminui de um dia para o outro.
func (g *generator) reports(sellers []*domain.Seller) []seededReport {
	days := g.period.DayOfMonth
	reports := make([]seededReport, 0, days)

	total := decimal.Zero
	for day := 1; day <= days; day++ {
		total = total.Add(g.money(8000, 40000))

		report := &domain.DailyReport{
			ReportDate:     g.period.MonthStart.AddDate(0, 0, day-1),
			TotalEffective: total,
		}

		var rankings []*domain.Ranking
		for _, rankingType := range domain.RankingTypes {
			rankings = append(rankings, g.rankings(rankingType, sellers)...)
		}

		reports = append(reports, seededReport{report: report, rankings: rankings})
	}

	return reports
}

// rankings sorteia até cinco vendedores distintos para o quadro
func (g *generator) rankings(rankingType domain.RankingType, sellers []*domain.Seller) []*domain.Ranking {
	order := make([]int, len(sellers))
	for i := range order {
		order[i] = i
	}
	g.faker.ShuffleInts(order)

	size := min(len(order), domain.MaxRankingPosition)
	rankings := make([]*domain.Ranking, 0, size)

	// valores decrescentes para que a posição 1 seja a maior
	ceiling := 60000.0
	for position := 1; position <= size; position++ {
		ranking := &domain.Ranking{
			SellerID:    sellers[order[position-1]].ID,
			RankingType: rankingType,
			Position:    position,
		}

		sold := g.money(ceiling*0.7, ceiling)
		ceiling *= 0.75

		switch rankingType {
		case domain.RankingTypeTopSellers:
			conversion := decimal.NewFromFloat(g.faker.Float64Range(15, 65)).Round(2)
			ranking.ValueSold = &sold
			ranking.ConversionRate = &conversion
		case domain.RankingTypeCashFlow:
			received := sold.Mul(decimal.NewFromFloat(g.faker.Float64Range(0.6, 1))).Round(2)
			ranking.ValueSold = &sold
			ranking.ValueReceived = &received
		case domain.RankingTypeProfitMargin:
			margin := decimal.NewFromFloat(g.faker.Float64Range(8, 42)).Round(2)
			oc := g.faker.Numerify("OC-#####")
			ranking.ValueSold = &sold
			ranking.ProfitMargin = &margin
			ranking.OCNumber = &oc
		}

		rankings = append(rankings, ranking)
	}

	return rankings
}

func (g *generator) money(low, high float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(low, high)).Round(2)
}
