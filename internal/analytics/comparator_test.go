package analytics

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
)

func TestPctChange(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		expected float64
	}{
		{"Zero para zero", 0, 0, 0},
		{"Crescimento a partir de zero é limitado a 100", 0, 50, 100},
		{"Aumento de 50%", 100, 150, 50},
		{"Queda de 50%", 100, 50, -50},
		{"Queda total", 80, 0, -100},
		{"Arredonda para duas casas", 3, 4, 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PctChange(tt.a, tt.b))
		})
	}
}

func TestCompareMonths_Totais(t *testing.T) {
	a := &domain.MonthSnapshot{
		Label:  janLabel,
		Totals: domain.SnapshotTotals{Services: 1000, Revenue: 5000, Visits: 300, Grams: 20000},
	}
	b := &domain.MonthSnapshot{
		Label:  febLabel,
		Totals: domain.SnapshotTotals{Services: 1200, Revenue: 6000, Visits: 330, Grams: 21000},
	}

	result := CompareMonths(a, b, true)

	assert.Equal(t, janLabel, result.MonthA)
	assert.Equal(t, febLabel, result.MonthB)
	assert.Equal(t, domain.MetricDelta{A: 1000, B: 1200, Delta: 200, PctChange: 20}, result.Totals.Services)
	assert.Equal(t, domain.MetricDelta{A: 5000, B: 6000, Delta: 1000, PctChange: 20}, result.Totals.Revenue)
	assert.Equal(t, 10.0, result.Totals.Visits.PctChange)
	assert.Equal(t, 5.0, result.Totals.Grams.PctChange)
}

func TestCompareMonths_TipoDeServicoAusenteValeZero(t *testing.T) {
	a := &domain.MonthSnapshot{
		Label:        janLabel,
		ServiceTypes: map[domain.ServiceType]domain.ServiceTypeTotals{domain.ServiceColor: {Services: 10, Revenue: 100}},
	}
	b := &domain.MonthSnapshot{
		Label:        febLabel,
		ServiceTypes: map[domain.ServiceType]domain.ServiceTypeTotals{domain.ServiceToner: {Services: 4}},
	}

	result := CompareMonths(a, b, false)

	require.Len(t, result.ServiceTypes, 5)
	assert.Equal(t, domain.ServiceColor, result.ServiceTypes[0].ServiceType)
	assert.Equal(t, -10.0, result.ServiceTypes[0].Services.Delta)
	assert.Equal(t, -100.0, result.ServiceTypes[0].Services.PctChange)
	assert.Equal(t, "Toner", result.ServiceTypes[2].Label)
	assert.Equal(t, 100.0, result.ServiceTypes[2].Services.PctChange)
	assert.Equal(t, domain.MetricDelta{}, result.ServiceTypes[3].Services)
}

func brandSnapshots() (*domain.MonthSnapshot, *domain.MonthSnapshot) {
	a := &domain.MonthSnapshot{
		Label: janLabel,
		Brands: map[string]domain.BrandTotals{
			"ColorCo":  {Services: 50, Revenue: 500, CustomerCount: 5},
			"GlossPro": {Services: 100, Revenue: 1000, CustomerCount: 8},
		},
		Customers: map[string]domain.CustomerTotals{
			"s1": {Services: 80, Revenue: 800, BrandsUsed: 2},
			"s2": {Services: 70, Revenue: 700, BrandsUsed: 1},
		},
	}
	b := &domain.MonthSnapshot{
		Label: febLabel,
		Brands: map[string]domain.BrandTotals{
			"GlossPro": {Services: 120, Revenue: 1300, CustomerCount: 9},
			"NovaTint": {Services: 10, Revenue: 90, CustomerCount: 1},
		},
		Customers: map[string]domain.CustomerTotals{
			"s2": {Services: 100, Revenue: 1100, BrandsUsed: 2},
			"s3": {Services: 30, Revenue: 290, BrandsUsed: 1},
		},
	}
	return a, b
}

func TestCompareMonths_MarcaPerdidaComFiltroDeSaude(t *testing.T) {
	a, b := brandSnapshots()

	result := CompareMonths(a, b, true)

	require.Len(t, result.Brands, 1)
	assert.Equal(t, "GlossPro", result.Brands[0].Brand)
	assert.Equal(t, domain.EntityShared, result.Brands[0].Status)
	assert.False(t, lo.ContainsBy(result.Brands, func(d domain.BrandDelta) bool { return d.Brand == "ColorCo" }))

	// As partições continuam disponíveis mesmo com o filtro ligado
	assert.Equal(t, []string{"ColorCo"}, result.BrandSets.Lost)
	assert.Equal(t, []string{"NovaTint"}, result.BrandSets.New)

	require.Len(t, result.Customers, 1)
	assert.Equal(t, "s2", result.Customers[0].CustomerID)
	assert.Equal(t, 1.0, result.Customers[0].BrandsUsed.Delta)
}

func TestCompareMonths_MarcaPerdidaSemFiltroDeSaude(t *testing.T) {
	a, b := brandSnapshots()

	result := CompareMonths(a, b, false)

	require.Len(t, result.Brands, 3)

	// Ordenado por |delta de receita|: ColorCo (-500), GlossPro (+300), NovaTint (+90)
	assert.Equal(t, []string{"ColorCo", "GlossPro", "NovaTint"}, lo.Map(result.Brands, func(d domain.BrandDelta, _ int) string {
		return d.Brand
	}))

	colorCo := result.Brands[0]
	assert.True(t, colorCo.IsLost)
	assert.False(t, colorCo.IsNew)
	assert.Equal(t, domain.EntityLost, colorCo.Status)
	assert.Equal(t, 0.0, colorCo.Services.B)
	assert.Equal(t, -50.0, colorCo.Services.Delta)
	assert.Equal(t, -100.0, colorCo.Services.PctChange)
	assert.Equal(t, -5.0, colorCo.CustomerCount.Delta)

	novaTint := result.Brands[2]
	assert.True(t, novaTint.IsNew)
	assert.Equal(t, 100.0, novaTint.Services.PctChange)

	assert.Contains(t, result.BrandSets.Lost, "ColorCo")

	require.Len(t, result.Customers, 3)
	assert.Equal(t, []string{"s1", "s2", "s3"}, lo.Map(result.Customers, func(d domain.CustomerDelta, _ int) string {
		return d.CustomerID
	}))
}

func TestCompareMonths_LeiDaParticao(t *testing.T) {
	a, b := brandSnapshots()
	result := CompareMonths(a, b, false)

	keysA := lo.Keys(a.Brands)
	keysB := lo.Keys(b.Brands)
	sets := result.BrandSets

	assert.ElementsMatch(t, lo.Intersect(keysA, keysB), sets.Shared)
	assert.ElementsMatch(t, lo.Without(keysB, keysA...), sets.New)
	assert.ElementsMatch(t, lo.Without(keysA, keysB...), sets.Lost)

	union := lo.Union(keysA, keysB)
	all := append(append(append([]string{}, sets.Shared...), sets.New...), sets.Lost...)
	assert.ElementsMatch(t, union, all)
	assert.Len(t, lo.Uniq(all), len(all))

	assert.Equal(t, len(sets.Shared), sets.SharedCount)
	assert.Equal(t, len(sets.New), sets.NewCount)
	assert.Equal(t, len(sets.Lost), sets.LostCount)
}

func TestCompareMonths_EmpateOrdenaPorNome(t *testing.T) {
	a := &domain.MonthSnapshot{Label: janLabel, Brands: map[string]domain.BrandTotals{
		"Zeta": {Revenue: 100}, "Alfa": {Revenue: 100}, "Meio": {Revenue: 100},
	}}
	b := &domain.MonthSnapshot{Label: febLabel, Brands: map[string]domain.BrandTotals{
		"Zeta": {Revenue: 200}, "Alfa": {Revenue: 0}, "Meio": {Revenue: 200},
	}}

	result := CompareMonths(a, b, true)

	assert.Equal(t, []string{"Alfa", "Meio", "Zeta"}, lo.Map(result.Brands, func(d domain.BrandDelta, _ int) string {
		return d.Brand
	}))
}

func TestCompareMonths_SnapshotsVazios(t *testing.T) {
	result := CompareMonths(&domain.MonthSnapshot{Label: janLabel}, &domain.MonthSnapshot{Label: febLabel}, false)

	assert.NotNil(t, result.Brands)
	assert.NotNil(t, result.Customers)
	assert.Empty(t, result.Brands)
	assert.Equal(t, 0, result.BrandSets.SharedCount)
	assert.Len(t, result.ServiceTypes, 5)
}
