package domain

// MetricDelta descreve a variação de uma métrica entre o mês A e o mês B
type MetricDelta struct {
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Delta     float64 `json:"delta"`
	PctChange float64 `json:"pctChange"`
}

type TotalsDelta struct {
	Services MetricDelta `json:"services"`
	Revenue  MetricDelta `json:"revenue"`
	Visits   MetricDelta `json:"visits"`
	Grams    MetricDelta `json:"grams"`
}

type ServiceTypeDelta struct {
	ServiceType ServiceType `json:"serviceType"`
	Label       string      `json:"label"`
	Services    MetricDelta `json:"services"`
	Revenue     MetricDelta `json:"revenue"`
	Grams       MetricDelta `json:"grams"`
}

type EntityStatus string

const (
	EntityShared EntityStatus = "shared"
	EntityNew    EntityStatus = "new"
	EntityLost   EntityStatus = "lost"
)

type BrandDelta struct {
	Brand         string       `json:"brand"`
	Status        EntityStatus `json:"status"`
	IsNew         bool         `json:"isNew"`
	IsLost        bool         `json:"isLost"`
	Services      MetricDelta  `json:"services"`
	Revenue       MetricDelta  `json:"revenue"`
	Visits        MetricDelta  `json:"visits"`
	Grams         MetricDelta  `json:"grams"`
	CustomerCount MetricDelta  `json:"customerCount"`
}

type CustomerDelta struct {
	CustomerID string       `json:"customerId"`
	Status     EntityStatus `json:"status"`
	IsNew      bool         `json:"isNew"`
	IsLost     bool         `json:"isLost"`
	Services   MetricDelta  `json:"services"`
	Revenue    MetricDelta  `json:"revenue"`
	Visits     MetricDelta  `json:"visits"`
	Grams      MetricDelta  `json:"grams"`
	BrandsUsed MetricDelta  `json:"brandsUsed"`
}

// SetPartition separa as chaves dos dois meses em compartilhadas, novas e perdidas
type SetPartition struct {
	Shared      []string `json:"shared"`
	New         []string `json:"new"`
	Lost        []string `json:"lost"`
	SharedCount int      `json:"sharedCount"`
	NewCount    int      `json:"newCount"`
	LostCount   int      `json:"lostCount"`
}

type ComparisonResult struct {
	MonthA       string             `json:"monthA"`
	MonthB       string             `json:"monthB"`
	HealthFilter bool               `json:"healthFilter"`
	Totals       TotalsDelta        `json:"totals"`
	ServiceTypes []ServiceTypeDelta `json:"serviceTypes"`
	Brands       []BrandDelta       `json:"brands"`
	Customers    []CustomerDelta    `json:"customers"`
	BrandSets    SetPartition       `json:"brandSets"`
	CustomerSets SetPartition       `json:"customerSets"`
}
