package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda para centavos em base decimal, evitando
// que valores como 1.005 caiam para 1.00 por erro de representação
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// Percent devolve part/total em porcentagem com duas casas; total zero vale 0
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return RoundWithTwoDecimalPlace(part / total * 100)
}
