package utils

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatBRL formata um valor monetário no padrão pt-BR, ex: "R$ 50.000"
func FormatBRL(v decimal.Decimal) string {
	f := v.Round(2).InexactFloat64()
	return brPrinter.Sprintf("R$ %v", number.Decimal(f, number.MaxFractionDigits(2)))
}
