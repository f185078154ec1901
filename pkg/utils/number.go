package utils

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// RoundWithTwoDecimalPlace arredonda valores monetários e percentuais para duas casas
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// RoundToInt arredonda contagens de serviços, que podem chegar fracionadas do ETL
func RoundToInt(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f)
}

// apportionPrecision descarta o ruído de ponto flutuante das somas parciais
const apportionPrecision = 6

// ApportionRound arredonda cada valor para inteiro pelo método do maior resto.
// A soma do resultado é sempre o total das parcelas (com seis casas) arredondado,
// qualquer que seja o agrupamento das parcelas. Empates no resto ficam com o menor índice.
func ApportionRound(values []float64) []float64 {
	rounded := make([]float64, len(values))
	if len(values) == 0 {
		return rounded
	}

	type remainder struct {
		index int
		value decimal.Decimal
	}

	remainders := make([]remainder, 0, len(values))
	total := decimal.Zero
	floors := decimal.Zero

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}

		d := decimal.NewFromFloat(v).Round(apportionPrecision)
		floor := d.Floor()
		total = total.Add(d)
		floors = floors.Add(floor)
		rounded[i] = floor.InexactFloat64()
		remainders = append(remainders, remainder{index: i, value: d.Sub(floor)})
	}

	sort.SliceStable(remainders, func(i, j int) bool {
		return remainders[i].value.GreaterThan(remainders[j].value)
	})

	missing := int(total.Round(0).Sub(floors).IntPart())
	for i := 0; i < missing && i < len(remainders); i++ {
		rounded[remainders[i].index]++
	}

	return rounded
}

// SafeDivide retorna 0 quando o denominador é zero
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}

// Percentage retorna part/total*100 com proteção contra divisão por zero
func Percentage(part, total float64) float64 {
	return SafeDivide(part, total) * 100
}
