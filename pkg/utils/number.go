package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda para exibição (meio para cima, sem erro de ponto flutuante)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
