package domain

import "github.com/shopspring/decimal"

// CentsToCurrency converte o gasto armazenado em centavos para a unidade de exibição.
// Deve ser o único ponto de conversão de centavos no pipeline de agregação.
func CentsToCurrency(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
