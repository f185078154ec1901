package analytics

import "github.com/vfg2006/market-intelligence-api/internal/domain"

const (
	janLabel = "2025-01"
	febLabel = "2025-02"
)

// sampleRows monta um recorte pequeno com dois meses, três marcas (uma sem nome)
// e quatro salões, incluindo um sem país/cidade e um sem número de funcionários
func sampleRows() []domain.RawRow {
	return []domain.RawRow{
		{
			MonthKey: janLabel, SortIndex: 1, UserID: "s1", Country: "Brazil", City: "São Paulo",
			EmployeeCount: 3, Brand: "ColorCo", Visits: 20, Services: 40, Cost: 400, Grams: 800,
			PerServiceType: domain.ServiceTypeMetrics{Color: domain.ServiceMetrics{Services: 40, Cost: 400, Grams: 800}},
			DeclaredPrices: domain.DeclaredPrices{RootColor: 100, Haircut: 50},
		},
		{
			MonthKey: janLabel, SortIndex: 1, UserID: "s2", Country: "Brazil", City: "Rio de Janeiro",
			EmployeeCount: 8, Brand: "GlossPro", Visits: 15, Services: 30, Cost: 300, Grams: 600,
			PerServiceType: domain.ServiceTypeMetrics{
				Color:      domain.ServiceMetrics{Services: 10, Cost: 100, Grams: 200},
				Highlights: domain.ServiceMetrics{Services: 20, Cost: 200, Grams: 400},
			},
		},
		{
			MonthKey: janLabel, SortIndex: 1, UserID: "s3", Country: "Portugal", City: "Lisboa",
			EmployeeCount: 0, Brand: "ColorCo", Visits: 10, Services: 20, Cost: 200, Grams: 400,
			PerServiceType: domain.ServiceTypeMetrics{Color: domain.ServiceMetrics{Services: 20, Cost: 200, Grams: 400}},
			DeclaredPrices: domain.DeclaredPrices{RootColor: 80},
		},
		{
			MonthKey: febLabel, SortIndex: 2, UserID: "s1", Country: "Brazil", City: "São Paulo",
			EmployeeCount: 3, Brand: "GlossPro", Visits: 20, Services: 40, Cost: 400, Grams: 800,
			PerServiceType: domain.ServiceTypeMetrics{Highlights: domain.ServiceMetrics{Services: 40, Cost: 400, Grams: 800}},
		},
		{
			MonthKey: febLabel, SortIndex: 2, UserID: "s2", Country: "Brazil", City: "Rio de Janeiro",
			EmployeeCount: 8, Brand: "GlossPro", Visits: 15, Services: 35, Cost: 350, Grams: 700,
			PerServiceType: domain.ServiceTypeMetrics{Highlights: domain.ServiceMetrics{Services: 35, Cost: 350, Grams: 700}},
		},
		{
			MonthKey: febLabel, SortIndex: 2, UserID: "s4",
			EmployeeCount: 25, Visits: 5, Services: 10, Cost: 100, Grams: 200,
			PerServiceType: domain.ServiceTypeMetrics{Others: domain.ServiceMetrics{Services: 10, Cost: 100, Grams: 200}},
		},
	}
}

func fullRange() domain.FilterState {
	return domain.FilterState{MonthFromIndex: 1, MonthToIndex: 2}
}
