package domain

// SnapshotSummary resume um snapshot mensal disponível para comparação
type SnapshotSummary struct {
	Label     string  `json:"label"`
	SortIndex int     `json:"sortIndex"`
	Services  float64 `json:"services"`
	Revenue   float64 `json:"revenue"`
	Brands    int     `json:"brands"`
	Customers int     `json:"customers"`
}
