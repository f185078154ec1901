package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
)

func TestFilterRows(t *testing.T) {
	rows := sampleRows()

	tests := []struct {
		name     string
		filter   domain.FilterState
		expected []string
	}{
		{
			name:     "Período completo sem geografia retorna todas as linhas",
			filter:   fullRange(),
			expected: []string{"s1", "s2", "s3", "s1", "s2", "s4"},
		},
		{
			name:     "Intervalo de um único mês",
			filter:   domain.FilterState{MonthFromIndex: 2, MonthToIndex: 2},
			expected: []string{"s1", "s2", "s4"},
		},
		{
			name:     "Filtro por país",
			filter:   domain.FilterState{MonthFromIndex: 1, MonthToIndex: 2, Countries: []string{"Brazil"}},
			expected: []string{"s1", "s2", "s1", "s2"},
		},
		{
			name:     "País ausente é selecionável como Unknown",
			filter:   domain.FilterState{MonthFromIndex: 1, MonthToIndex: 2, Countries: []string{domain.UnknownLabel}},
			expected: []string{"s4"},
		},
		{
			name:     "Filtro por cidade",
			filter:   domain.FilterState{MonthFromIndex: 1, MonthToIndex: 2, Cities: []string{"Lisboa"}},
			expected: []string{"s3"},
		},
		{
			name:     "Intervalo invertido retorna vazio",
			filter:   domain.FilterState{MonthFromIndex: 2, MonthToIndex: 1},
			expected: []string{},
		},
		{
			name: "Cidade fora dos países selecionados retorna vazio",
			filter: domain.FilterState{
				MonthFromIndex: 1, MonthToIndex: 2,
				Countries: []string{"Portugal"},
				Cities:    []string{"Rio de Janeiro"},
			},
			expected: []string{},
		},
		{
			name:     "Intervalo fora dos dados retorna vazio",
			filter:   domain.FilterState{MonthFromIndex: 10, MonthToIndex: 12},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterRows(rows, tt.filter)

			assert.NotNil(t, filtered)
			users := make([]string, 0, len(filtered))
			for _, row := range filtered {
				users = append(users, row.UserID)
			}
			assert.Equal(t, tt.expected, users)
		})
	}
}

func TestFilterRows_NaoAlteraEntrada(t *testing.T) {
	rows := sampleRows()
	before := sampleRows()

	FilterRows(rows, domain.FilterState{MonthFromIndex: 1, MonthToIndex: 1, Countries: []string{"Brazil"}})

	assert.Equal(t, before, rows)
}
