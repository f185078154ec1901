package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
)

func TestMonthlyTrends(t *testing.T) {
	trends := MonthlyTrends(sampleRows())

	require.Len(t, trends, 2)

	jan := trends[0]
	assert.Equal(t, janLabel, jan.Month)
	assert.Equal(t, 90.0, jan.TotalServices)
	assert.Equal(t, 900.0, jan.TotalCost)
	assert.Equal(t, 45.0, jan.TotalVisits)
	assert.Equal(t, 2, jan.ActiveBrands)
	assert.Equal(t, 3, jan.SalonBrandPairs)
	assert.Equal(t, domain.ServiceRevenue{Services: 70, Revenue: 700}, jan.ByServiceType[domain.ServiceColor])
	assert.Equal(t, domain.ServiceRevenue{Services: 20, Revenue: 200}, jan.ByServiceType[domain.ServiceHighlights])

	feb := trends[1]
	assert.Equal(t, febLabel, feb.Month)
	assert.Equal(t, 85.0, feb.TotalServices)
	assert.Equal(t, 2, feb.ActiveBrands)
}

func TestMonthlyTrends_ArredondaServicosFracionados(t *testing.T) {
	rows := []domain.RawRow{
		{MonthKey: janLabel, SortIndex: 1, UserID: "s1", Brand: "A", Services: 10.4, Cost: 10.005},
		{MonthKey: janLabel, SortIndex: 1, UserID: "s2", Brand: "A", Services: 0.3, Cost: 0.001},
	}

	trends := MonthlyTrends(rows)

	require.Len(t, trends, 1)
	assert.Equal(t, 11.0, trends[0].TotalServices)
	assert.Equal(t, 10.01, trends[0].TotalCost)
}

func TestMonthlyTrends_OrdenaPorIndiceCronologico(t *testing.T) {
	rows := []domain.RawRow{
		{MonthKey: "Mar", SortIndex: 3, Brand: "A"},
		{MonthKey: "Jan", SortIndex: 1, Brand: "A"},
		{MonthKey: "Feb", SortIndex: 2, Brand: "A"},
	}

	trends := MonthlyTrends(rows)

	months := []string{trends[0].Month, trends[1].Month, trends[2].Month}
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, months)
}

func TestBrandPerformance(t *testing.T) {
	performance := BrandPerformance(sampleRows())

	require.Len(t, performance, 3)
	assert.Equal(t, "GlossPro", performance[0].Brand)
	assert.Equal(t, 105.0, performance[0].TotalServices)
	assert.Equal(t, 1050.0, performance[0].TotalRevenue)
	assert.Equal(t, 2, performance[0].MonthsActive)
	assert.Equal(t, 3, performance[0].SalonBrandPairs)
	assert.Equal(t, 200.0, performance[0].GramsByServiceType[domain.ServiceColor])
	assert.Equal(t, 1900.0, performance[0].GramsByServiceType[domain.ServiceHighlights])

	assert.Equal(t, "ColorCo", performance[1].Brand)
	assert.Equal(t, 60.0, performance[1].TotalServices)
	assert.Equal(t, 1, performance[1].MonthsActive)

	assert.Equal(t, domain.UnknownLabel, performance[2].Brand)
	assert.Equal(t, 10.0, performance[2].TotalServices)
}

func TestBrandGramsAnalysis(t *testing.T) {
	analysis := BrandGramsAnalysis(sampleRows())

	require.Len(t, analysis, 3)
	assert.Equal(t, "GlossPro", analysis[0].Brand)
	assert.Equal(t, 2100.0, analysis[0].TotalGrams)
	assert.Equal(t, 60.0, analysis[0].MarketSharePct)
	assert.Equal(t, 20.0, analysis[0].AvgGramsPerService)
	assert.Equal(t, 0.5, analysis[0].CostPerGram)

	assert.Equal(t, "ColorCo", analysis[1].Brand)
	assert.Equal(t, 34.29, analysis[1].MarketSharePct)
	assert.Equal(t, 5.71, analysis[2].MarketSharePct)
}

func TestBrandGramsAnalysis_DivisaoPorZero(t *testing.T) {
	rows := []domain.RawRow{
		{MonthKey: janLabel, SortIndex: 1, UserID: "s1", Brand: "SemUso"},
	}

	analysis := BrandGramsAnalysis(rows)

	require.Len(t, analysis, 1)
	assert.Equal(t, 0.0, analysis[0].MarketSharePct)
	assert.Equal(t, 0.0, analysis[0].AvgGramsPerService)
	assert.Equal(t, 0.0, analysis[0].CostPerGram)
}

func TestServiceBreakdown(t *testing.T) {
	breakdown := ServiceBreakdown(sampleRows())

	require.Len(t, breakdown, 5)
	assert.Equal(t, domain.ServiceBreakdown{
		ServiceType: domain.ServiceColor, Label: "Color", Services: 70, Revenue: 700, Grams: 1400,
	}, breakdown[0])
	assert.Equal(t, 95.0, breakdown[1].Services)
	assert.Equal(t, domain.ServiceToner, breakdown[2].ServiceType)
	assert.Equal(t, 0.0, breakdown[2].Services)
	assert.Equal(t, 10.0, breakdown[4].Services)
}

func TestServiceBreakdown_SemLinhasRetornaCincoBuckets(t *testing.T) {
	breakdown := ServiceBreakdown(nil)

	require.Len(t, breakdown, 5)
	for i, serviceType := range domain.ServiceTypes {
		assert.Equal(t, serviceType, breakdown[i].ServiceType)
		assert.Zero(t, breakdown[i].Services)
	}
}

func TestServiceGramsAnalysis(t *testing.T) {
	analysis := ServiceGramsAnalysis(sampleRows())

	require.Len(t, analysis, 5)
	assert.Equal(t, 40.0, analysis[0].GramsSharePct)
	assert.Equal(t, 20.0, analysis[0].AvgGramsPerService)
	assert.Equal(t, 0.5, analysis[0].CostPerGram)
	assert.Equal(t, 54.29, analysis[1].GramsSharePct)
	assert.Equal(t, 0.0, analysis[2].AvgGramsPerService)
	assert.Equal(t, 0.0, analysis[2].CostPerGram)
	assert.Equal(t, 5.71, analysis[4].GramsSharePct)
}

func TestBrandDominance(t *testing.T) {
	dominance := BrandDominance(sampleRows())

	require.Len(t, dominance, 5)

	color := dominance[domain.ServiceColor]
	require.Len(t, color, 2)
	assert.Equal(t, domain.BrandServiceShare{Brand: "ColorCo", Services: 60, Cost: 600, Grams: 1200, SharePct: 85.71}, color[0])
	assert.Equal(t, domain.BrandServiceShare{Brand: "GlossPro", Services: 10, Cost: 100, Grams: 200, SharePct: 14.29}, color[1])

	highlights := dominance[domain.ServiceHighlights]
	require.Len(t, highlights, 1)
	assert.Equal(t, 100.0, highlights[0].SharePct)

	assert.NotNil(t, dominance[domain.ServiceToner])
	assert.Empty(t, dominance[domain.ServiceToner])
}

func TestGeography(t *testing.T) {
	geo := Geography(sampleRows())

	require.Len(t, geo, 3)
	assert.Equal(t, domain.GeoEntry{Country: "Brazil", Services: 145, Revenue: 1450, Visits: 70, SalonBrandPairs: 4, Salons: 2}, geo[0])
	assert.Equal(t, "Portugal", geo[1].Country)
	assert.Equal(t, domain.UnknownLabel, geo[2].Country)
	assert.Equal(t, 1, geo[2].Salons)
}

func TestPricingTrends(t *testing.T) {
	trends := PricingTrends(sampleRows())

	require.Len(t, trends, 2)

	jan := trends[0]
	// O salão s2 não declarou preço de raiz e fica fora da média
	assert.Equal(t, 90.0, jan.AvgRootColor)
	assert.Equal(t, 2, jan.RootColorSamples)
	assert.Equal(t, 50.0, jan.AvgHaircut)
	assert.Equal(t, 1, jan.HaircutSamples)
	assert.Equal(t, 0.0, jan.AvgHighlights)
	assert.Equal(t, 0, jan.HighlightsSamples)

	feb := trends[1]
	assert.Equal(t, 0.0, feb.AvgRootColor)
	assert.Equal(t, 0, feb.RootColorSamples)
}

func TestSalonSizeBenchmarks(t *testing.T) {
	benchmarks := SalonSizeBenchmarks(sampleRows())

	require.Len(t, benchmarks, 4)
	buckets := []domain.SizeBucket{benchmarks[0].Bucket, benchmarks[1].Bucket, benchmarks[2].Bucket, benchmarks[3].Bucket}
	assert.Equal(t, []domain.SizeBucket{domain.SizeSmall, domain.SizeMedium, domain.SizeEnterprise, domain.SizeUnknown}, buckets)

	small := benchmarks[0]
	assert.Equal(t, "Small (2-5)", small.Label)
	assert.Equal(t, 1, small.Salons)
	assert.Equal(t, 2, small.SalonBrandPairs)
	assert.Equal(t, 80.0, small.TotalServices)
	assert.Equal(t, 80.0, small.AvgServices)
	assert.Equal(t, 40.0, small.AvgVisits)

	unknown := benchmarks[3]
	assert.Equal(t, domain.UnknownLabel, unknown.Label)
	assert.Equal(t, 20.0, unknown.TotalServices)
}

func TestSizeBucketFor(t *testing.T) {
	tests := []struct {
		employees int
		expected  domain.SizeBucket
	}{
		{-1, domain.SizeUnknown},
		{0, domain.SizeUnknown},
		{1, domain.SizeSolo},
		{2, domain.SizeSmall},
		{5, domain.SizeSmall},
		{6, domain.SizeMedium},
		{10, domain.SizeMedium},
		{11, domain.SizeLarge},
		{20, domain.SizeLarge},
		{21, domain.SizeEnterprise},
		{300, domain.SizeEnterprise},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, domain.SizeBucketFor(tt.employees), "funcionários: %d", tt.employees)
	}
}
