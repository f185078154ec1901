package domain

type SnapshotTotals struct {
	Services float64 `json:"services"`
	Revenue  float64 `json:"revenue"`
	Visits   float64 `json:"visits"`
	Grams    float64 `json:"grams"`
}

type ServiceTypeTotals struct {
	Services float64 `json:"services"`
	Revenue  float64 `json:"revenue"`
	Grams    float64 `json:"grams"`
}

type BrandTotals struct {
	Services      float64 `json:"services"`
	Revenue       float64 `json:"revenue"`
	Visits        float64 `json:"visits"`
	Grams         float64 `json:"grams"`
	CustomerCount int     `json:"customerCount"`
}

type CustomerTotals struct {
	Services   float64 `json:"services"`
	Revenue    float64 `json:"revenue"`
	Visits     float64 `json:"visits"`
	Grams      float64 `json:"grams"`
	BrandsUsed int     `json:"brandsUsed"`
}

// MonthSnapshot é o resumo imutável de um mês, usado na comparação mês a mês
type MonthSnapshot struct {
	Label        string                            `json:"label"`
	SortIndex    int                               `json:"sortIndex"`
	Totals       SnapshotTotals                    `json:"totals"`
	ServiceTypes map[ServiceType]ServiceTypeTotals `json:"serviceTypes"`
	Brands       map[string]BrandTotals            `json:"brands"`
	Customers    map[string]CustomerTotals         `json:"customers"`
}
