package domain

type ServiceRevenue struct {
	Services float64 `json:"services"`
	Revenue  float64 `json:"revenue"`
}

type MonthlyTrend struct {
	Month           string                         `json:"month"`
	SortIndex       int                            `json:"sortIndex"`
	TotalVisits     float64                        `json:"totalVisits"`
	TotalServices   float64                        `json:"totalServices"`
	TotalCost       float64                        `json:"totalCost"`
	TotalGrams      float64                        `json:"totalGrams"`
	ByServiceType   map[ServiceType]ServiceRevenue `json:"byServiceType"`
	ActiveBrands    int                            `json:"activeBrands"`
	SalonBrandPairs int                            `json:"salonBrandPairs"`
}

type BrandPerformance struct {
	Brand              string                  `json:"brand"`
	TotalServices      float64                 `json:"totalServices"`
	TotalRevenue       float64                 `json:"totalRevenue"`
	TotalVisits        float64                 `json:"totalVisits"`
	TotalGrams         float64                 `json:"totalGrams"`
	GramsByServiceType map[ServiceType]float64 `json:"gramsByServiceType"`
	MonthsActive       int                     `json:"monthsActive"`
	SalonBrandPairs    int                     `json:"salonBrandPairs"`
}

type BrandGramsAnalysis struct {
	Brand              string  `json:"brand"`
	TotalGrams         float64 `json:"totalGrams"`
	TotalServices      float64 `json:"totalServices"`
	TotalRevenue       float64 `json:"totalRevenue"`
	MarketSharePct     float64 `json:"marketSharePct"`
	AvgGramsPerService float64 `json:"avgGramsPerService"`
	CostPerGram        float64 `json:"costPerGram"`
}

type ServiceBreakdown struct {
	ServiceType ServiceType `json:"serviceType"`
	Label       string      `json:"label"`
	Services    float64     `json:"services"`
	Revenue     float64     `json:"revenue"`
	Grams       float64     `json:"grams"`
}

type ServiceGramsAnalysis struct {
	ServiceType        ServiceType `json:"serviceType"`
	Label              string      `json:"label"`
	Grams              float64     `json:"grams"`
	Services           float64     `json:"services"`
	Revenue            float64     `json:"revenue"`
	AvgGramsPerService float64     `json:"avgGramsPerService"`
	CostPerGram        float64     `json:"costPerGram"`
	GramsSharePct      float64     `json:"gramsSharePct"`
}

// BrandServiceShare é uma posição no ranking de marcas de um tipo de serviço
type BrandServiceShare struct {
	Brand    string  `json:"brand"`
	Services float64 `json:"services"`
	Cost     float64 `json:"cost"`
	Grams    float64 `json:"grams"`
	SharePct float64 `json:"sharePct"`
}

// BrandDominance mapeia cada tipo de serviço para seu ranking de marcas
type BrandDominance map[ServiceType][]BrandServiceShare

type GeoEntry struct {
	Country         string  `json:"country"`
	Services        float64 `json:"services"`
	Revenue         float64 `json:"revenue"`
	Visits          float64 `json:"visits"`
	SalonBrandPairs int     `json:"salonBrandPairs"`
	Salons          int     `json:"salons"`
}

type PricingTrend struct {
	Month             string  `json:"month"`
	SortIndex         int     `json:"sortIndex"`
	AvgRootColor      float64 `json:"avgRootColor"`
	AvgHighlights     float64 `json:"avgHighlights"`
	AvgHaircut        float64 `json:"avgHaircut"`
	RootColorSamples  int     `json:"rootColorSamples"`
	HighlightsSamples int     `json:"highlightsSamples"`
	HaircutSamples    int     `json:"haircutSamples"`
}

type SizeBucket string

const (
	SizeSolo       SizeBucket = "solo"
	SizeSmall      SizeBucket = "small"
	SizeMedium     SizeBucket = "medium"
	SizeLarge      SizeBucket = "large"
	SizeEnterprise SizeBucket = "enterprise"
	SizeUnknown    SizeBucket = "unknown"
)

// SizeBuckets lista as faixas de porte na ordem de apresentação
var SizeBuckets = []SizeBucket{SizeSolo, SizeSmall, SizeMedium, SizeLarge, SizeEnterprise, SizeUnknown}

var sizeBucketLabels = map[SizeBucket]string{
	SizeSolo:       "Solo (0-1)",
	SizeSmall:      "Small (2-5)",
	SizeMedium:     "Medium (6-10)",
	SizeLarge:      "Large (11-20)",
	SizeEnterprise: "Enterprise (21+)",
	SizeUnknown:    UnknownLabel,
}

func (b SizeBucket) Label() string {
	if label, ok := sizeBucketLabels[b]; ok {
		return label
	}
	return string(b)
}

// SizeBucketFor classifica um salão pelo número de funcionários.
// Contagens ausentes ou zero caem em Unknown, nunca em Solo.
func SizeBucketFor(employeeCount int) SizeBucket {
	switch {
	case employeeCount <= 0:
		return SizeUnknown
	case employeeCount <= 1:
		return SizeSolo
	case employeeCount <= 5:
		return SizeSmall
	case employeeCount <= 10:
		return SizeMedium
	case employeeCount <= 20:
		return SizeLarge
	default:
		return SizeEnterprise
	}
}

type SalonSizeBenchmark struct {
	Bucket          SizeBucket `json:"bucket"`
	Label           string     `json:"label"`
	Salons          int        `json:"salons"`
	SalonBrandPairs int        `json:"salonBrandPairs"`
	TotalServices   float64    `json:"totalServices"`
	TotalRevenue    float64    `json:"totalRevenue"`
	TotalVisits     float64    `json:"totalVisits"`
	AvgServices     float64    `json:"avgServices"`
	AvgRevenue      float64    `json:"avgRevenue"`
	AvgVisits       float64    `json:"avgVisits"`
}

type BrandPositionClass string

const (
	PositionLeader BrandPositionClass = "Leader"
	PositionStrong BrandPositionClass = "Strong"
	PositionNiche  BrandPositionClass = "Niche"
	PositionLow    BrandPositionClass = "Low"
)

type BrandPosition struct {
	Brand               string             `json:"brand"`
	TotalServices       float64            `json:"totalServices"`
	AdoptingSalons      int                `json:"adoptingSalons"`
	SalonPenetrationPct float64            `json:"salonPenetrationPct"`
	AvgUsageDepth       float64            `json:"avgUsageDepth"`
	Position            BrandPositionClass `json:"position"`
}

// SalonBenchmark compara a média de uma faixa de porte com a média do decil superior
type SalonBenchmark struct {
	Bucket         SizeBucket `json:"bucket"`
	Label          string     `json:"label"`
	Salons         int        `json:"salons"`
	TopDecileCount int        `json:"topDecileCount"`
	AvgServices    float64    `json:"avgServices"`
	AvgCost        float64    `json:"avgCost"`
	AvgGrams       float64    `json:"avgGrams"`
	Top10Services  float64    `json:"top10Services"`
	Top10Cost      float64    `json:"top10Cost"`
	Top10Grams     float64    `json:"top10Grams"`
}

type ConcentrationMetrics struct {
	Top3Brands            []string `json:"top3Brands"`
	Top3ConcentrationPct  float64  `json:"top3ConcentrationPct"`
	DominantBrandSalons   int      `json:"dominantBrandSalons"`
	DominantBrandSalonPct float64  `json:"dominantBrandSalonPct"`
}

type MarketAnalysis struct {
	ActiveSalons         int                  `json:"activeSalons"`
	AvgServicesPerSalon  float64              `json:"avgServicesPerSalon"`
	AvgCostPerSalon      float64              `json:"avgCostPerSalon"`
	AvgGramsPerSalon     float64              `json:"avgGramsPerSalon"`
	AvgVisitsPerSalon    float64              `json:"avgVisitsPerSalon"`
	Concentration        ConcentrationMetrics `json:"concentrationMetrics"`
	BrandPositioning     []BrandPosition      `json:"brandPositioning"`
	SalonBenchmarkBySize []SalonBenchmark     `json:"salonBenchmarkBySize"`
}

// AggregateBundle reúne todas as visões derivadas de um mesmo conjunto filtrado
type AggregateBundle struct {
	Filter              FilterState            `json:"filter"`
	RowCount            int                    `json:"rowCount"`
	MonthlyTrends       []MonthlyTrend         `json:"monthlyTrends"`
	BrandPerformance    []BrandPerformance     `json:"brandPerformance"`
	BrandGrams          []BrandGramsAnalysis   `json:"brandGramsAnalysis"`
	ServiceBreakdown    []ServiceBreakdown     `json:"serviceBreakdown"`
	ServiceGrams        []ServiceGramsAnalysis `json:"serviceGramsAnalysis"`
	BrandDominance      BrandDominance         `json:"brandDominance"`
	Geography           []GeoEntry             `json:"geography"`
	PricingTrends       []PricingTrend         `json:"pricingTrends"`
	SalonSizeBenchmarks []SalonSizeBenchmark   `json:"salonSizeBenchmarks"`
	MarketAnalysis      MarketAnalysis         `json:"marketAnalysis"`
}
