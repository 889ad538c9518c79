package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RankingType string

const (
	RankingTypeTopSellers   RankingType = "top_sellers"
	RankingTypeCashFlow     RankingType = "cash_flow"
	RankingTypeProfitMargin RankingType = "profit_margin"
)

// MaxRankingPosition é o tamanho fixo dos quadros de ranking
const MaxRankingPosition = 5

var RankingTypes = []RankingType{
	RankingTypeTopSellers,
	RankingTypeCashFlow,
	RankingTypeProfitMargin,
}

func (t RankingType) IsValid() bool {
	for _, rt := range RankingTypes {
		if t == rt {
			return true
		}
	}
	return false
}

type Ranking struct {
	ID             string           `json:"id"`
	ReportID       string           `json:"report_id"`
	SellerID       string           `json:"seller_id"`
	RankingType    RankingType      `json:"ranking_type"`
	Position       int              `json:"position"`
	ValueSold      *decimal.Decimal `json:"value_sold"`
	ValueReceived  *decimal.Decimal `json:"value_received"`
	ConversionRate *decimal.Decimal `json:"conversion_rate"`
	ProfitMargin   *decimal.Decimal `json:"profit_margin"`
	OCNumber       *string          `json:"oc_number"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type RankingInput struct {
	SellerID       string           `json:"seller_id" validate:"required"`
	RankingType    RankingType      `json:"ranking_type" validate:"required,oneof=top_sellers cash_flow profit_margin"`
	Position       int              `json:"position" validate:"min=1,max=5"`
	ValueSold      *decimal.Decimal `json:"value_sold"`
	ValueReceived  *decimal.Decimal `json:"value_received"`
	ConversionRate *decimal.Decimal `json:"conversion_rate"`
	ProfitMargin   *decimal.Decimal `json:"profit_margin"`
	OCNumber       *string          `json:"oc_number"`
}
