package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "arredonda para cima", in: 10.456, want: 10.46},
		{name: "arredonda para baixo", in: 10.454, want: 10.45},
		{name: "meio arredonda para longe do zero", in: 2.675, want: 2.68},
		{name: "negativo", in: -3.14159, want: -3.14},
		{name: "NaN vira zero", in: math.NaN(), want: 0},
		{name: "infinito vira zero", in: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWithTwoDecimalPlace(tt.in))
		})
	}
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 0.0, SafeDivide(10, 0))
	assert.Equal(t, 2.5, SafeDivide(5, 2))
	assert.Equal(t, 50.0, Percentage(1, 2))
	assert.Equal(t, 0.0, Percentage(1, 0))
}

func TestRoundToInt(t *testing.T) {
	assert.Equal(t, 3.0, RoundToInt(2.5))
	assert.Equal(t, 2.0, RoundToInt(2.4))
	assert.Equal(t, 0.0, RoundToInt(math.NaN()))
}

func TestApportionRound(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{name: "vazio", in: nil, want: []float64{}},
		{name: "inteiros não mudam", in: []float64{40, 30, 0}, want: []float64{40, 30, 0}},
		{name: "frações somam para o total arredondado", in: []float64{0.4, 0.4}, want: []float64{1, 0}},
		{name: "maior resto recebe a unidade", in: []float64{1.2, 2.7, 3.1}, want: []float64{1, 3, 3}},
		{name: "três terços", in: []float64{0.3333, 0.3333, 0.3334}, want: []float64{0, 0, 1}},
		{name: "NaN vira zero", in: []float64{math.NaN(), 1.6}, want: []float64{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApportionRound(tt.in))
		})
	}
}

func TestApportionRound_SomaIndependeDoAgrupamento(t *testing.T) {
	// mesmas parcelas agrupadas de duas formas diferentes
	byMonth := ApportionRound([]float64{0.4 + 1.35, 0.4 + 2.35})
	byBrand := ApportionRound([]float64{0.4 + 0.4, 1.35 + 2.35})

	sum := func(values []float64) float64 {
		var total float64
		for _, v := range values {
			total += v
		}
		return total
	}

	assert.Equal(t, sum(byMonth), sum(byBrand))
}
