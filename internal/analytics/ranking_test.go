package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
)

func TestRankBrands(t *testing.T) {
	snapshots := BuildSnapshots(sampleRows())

	tests := []struct {
		name     string
		current  *domain.MonthSnapshot
		previous *domain.MonthSnapshot
		validate func(t *testing.T, ranking []domain.BrandRankingItem)
	}{
		{
			name:    "Primeiro mês sem ranking anterior",
			current: snapshots[janLabel],
			validate: func(t *testing.T, ranking []domain.BrandRankingItem) {
				require.Len(t, ranking, 2)
				assert.Equal(t, "ColorCo", ranking[0].Brand)
				assert.Equal(t, 1, ranking[0].Position)
				assert.Equal(t, 0, ranking[0].PreviousPosition)
				assert.Equal(t, 0, ranking[0].PositionChange)
				assert.Equal(t, janLabel, ranking[0].Month)
			},
		},
		{
			name:     "Marca que subiu de posição",
			current:  snapshots[febLabel],
			previous: snapshots[janLabel],
			validate: func(t *testing.T, ranking []domain.BrandRankingItem) {
				require.Len(t, ranking, 2)
				assert.Equal(t, "GlossPro", ranking[0].Brand)
				assert.Equal(t, 75.0, ranking[0].Services)
				assert.Equal(t, 2, ranking[0].PreviousPosition)
				assert.Equal(t, 1, ranking[0].PositionChange)

				// Marca nova não tem posição anterior
				assert.Equal(t, domain.UnknownLabel, ranking[1].Brand)
				assert.Equal(t, 0, ranking[1].PreviousPosition)
				assert.Equal(t, 0, ranking[1].PositionChange)
			},
		},
		{
			name:    "Snapshot nulo retorna lista vazia",
			current: nil,
			validate: func(t *testing.T, ranking []domain.BrandRankingItem) {
				assert.NotNil(t, ranking)
				assert.Empty(t, ranking)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, RankBrands(tt.current, tt.previous))
		})
	}
}

func TestRankBrands_MarcaQueCaiu(t *testing.T) {
	previous := &domain.MonthSnapshot{Label: janLabel, Brands: map[string]domain.BrandTotals{
		"A": {Services: 100}, "B": {Services: 50}, "C": {Services: 10},
	}}
	current := &domain.MonthSnapshot{Label: febLabel, Brands: map[string]domain.BrandTotals{
		"A": {Services: 5}, "B": {Services: 60}, "C": {Services: 20},
	}}

	ranking := RankBrands(current, previous)

	require.Len(t, ranking, 3)
	assert.Equal(t, "B", ranking[0].Brand)
	assert.Equal(t, 1, ranking[0].PositionChange)
	assert.Equal(t, "C", ranking[1].Brand)
	assert.Equal(t, 1, ranking[1].PositionChange)
	assert.Equal(t, "A", ranking[2].Brand)
	assert.Equal(t, -2, ranking[2].PositionChange)
}
