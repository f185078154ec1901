package analytics

import (
	"math"
	"sort"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/utils"
)

// topDecileEpsilon evita que erros de ponto flutuante (ex: 30*0.1 = 3.0000000000000004)
// empurrem o ceil para o inteiro seguinte
const topDecileEpsilon = 1e-9

type salonRollup struct {
	userID        string
	services      float64
	cost          float64
	grams         float64
	visits        float64
	employeeCount int
	brandServices map[string]float64
}

// dominantBrand retorna a marca com mais serviços no salão; empates ficam com o menor nome
func (s *salonRollup) dominantBrand() (string, float64) {
	var (
		dominant string
		best     float64
		found    bool
	)

	for brand, services := range s.brandServices {
		if !found || services > best || (services == best && brand < dominant) {
			dominant = brand
			best = services
			found = true
		}
	}

	return dominant, best
}

// buildSalonRollups consolida as linhas por salão, em ordem de userId
func buildSalonRollups(rows []domain.RawRow) []*salonRollup {
	bySalon := make(map[string]*salonRollup)

	for _, row := range rows {
		salon, exists := bySalon[row.UserID]
		if !exists {
			salon = &salonRollup{
				userID:        row.UserID,
				brandServices: make(map[string]float64),
			}
			bySalon[row.UserID] = salon
		}

		salon.services += row.Services
		salon.cost += row.Cost
		salon.grams += row.Grams
		salon.visits += row.Visits
		salon.brandServices[row.BrandOrUnknown()] += row.Services

		if row.EmployeeCount > salon.employeeCount {
			salon.employeeCount = row.EmployeeCount
		}
	}

	salons := make([]*salonRollup, 0, len(bySalon))
	for _, salon := range bySalon {
		salons = append(salons, salon)
	}

	sort.Slice(salons, func(i, j int) bool {
		return salons[i].userID < salons[j].userID
	})

	return salons
}

type brandAdoption struct {
	brand    string
	services float64
	salons   map[string]struct{}
}

// MarketAnalysis calcula médias por salão, concentração de mercado,
// posicionamento de marcas e o benchmark de salões por porte
func (e *Engine) MarketAnalysis(rows []domain.RawRow) domain.MarketAnalysis {
	salons := buildSalonRollups(rows)
	activeSalons := len(salons)

	analysis := domain.MarketAnalysis{
		ActiveSalons:         activeSalons,
		BrandPositioning:     make([]domain.BrandPosition, 0),
		SalonBenchmarkBySize: make([]domain.SalonBenchmark, 0),
		Concentration: domain.ConcentrationMetrics{
			Top3Brands: make([]string, 0),
		},
	}

	if activeSalons == 0 {
		return analysis
	}

	var totalServices, totalCost, totalGrams, totalVisits float64
	for _, salon := range salons {
		totalServices += salon.services
		totalCost += salon.cost
		totalGrams += salon.grams
		totalVisits += salon.visits
	}

	active := float64(activeSalons)
	analysis.AvgServicesPerSalon = utils.RoundWithTwoDecimalPlace(totalServices / active)
	analysis.AvgCostPerSalon = utils.RoundWithTwoDecimalPlace(totalCost / active)
	analysis.AvgGramsPerSalon = utils.RoundWithTwoDecimalPlace(totalGrams / active)
	analysis.AvgVisitsPerSalon = utils.RoundWithTwoDecimalPlace(totalVisits / active)

	brands := rankAdoptions(rows)
	analysis.Concentration = e.concentration(brands, salons, totalServices)
	analysis.BrandPositioning = brandPositioning(brands, activeSalons)
	analysis.SalonBenchmarkBySize = e.salonBenchmarks(salons)

	return analysis
}

// rankAdoptions agrupa serviços e salões adotantes por marca, ordenando por
// serviços de forma decrescente
func rankAdoptions(rows []domain.RawRow) []*brandAdoption {
	byBrand := make(map[string]*brandAdoption)

	for _, row := range rows {
		brand := row.BrandOrUnknown()
		adoption, exists := byBrand[brand]
		if !exists {
			adoption = &brandAdoption{brand: brand, salons: make(map[string]struct{})}
			byBrand[brand] = adoption
		}

		adoption.services += row.Services
		adoption.salons[row.UserID] = struct{}{}
	}

	ranked := make([]*brandAdoption, 0, len(byBrand))
	for _, adoption := range byBrand {
		ranked = append(ranked, adoption)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].services != ranked[j].services {
			return ranked[i].services > ranked[j].services
		}
		return ranked[i].brand < ranked[j].brand
	})

	return ranked
}

func (e *Engine) concentration(brands []*brandAdoption, salons []*salonRollup, totalServices float64) domain.ConcentrationMetrics {
	metrics := domain.ConcentrationMetrics{Top3Brands: make([]string, 0, 3)}

	var top3Services float64
	for i := 0; i < len(brands) && i < 3; i++ {
		metrics.Top3Brands = append(metrics.Top3Brands, brands[i].brand)
		top3Services += brands[i].services
	}
	metrics.Top3ConcentrationPct = utils.RoundWithTwoDecimalPlace(utils.Percentage(top3Services, totalServices))

	for _, salon := range salons {
		if salon.services <= 0 {
			continue
		}
		_, dominantServices := salon.dominantBrand()
		if dominantServices > e.opts.DominanceThreshold*salon.services {
			metrics.DominantBrandSalons++
		}
	}
	metrics.DominantBrandSalonPct = utils.RoundWithTwoDecimalPlace(
		utils.Percentage(float64(metrics.DominantBrandSalons), float64(len(salons))),
	)

	return metrics
}

// brandPositioning classifica cada marca comparando penetração e profundidade
// de uso com a média das marcas do próprio recorte
func brandPositioning(brands []*brandAdoption, activeSalons int) []domain.BrandPosition {
	if len(brands) == 0 || activeSalons == 0 {
		return make([]domain.BrandPosition, 0)
	}

	penetration := make([]float64, len(brands))
	depth := make([]float64, len(brands))
	var sumPenetration, sumDepth float64

	for i, brand := range brands {
		adopting := float64(len(brand.salons))
		penetration[i] = utils.Percentage(adopting, float64(activeSalons))
		depth[i] = utils.SafeDivide(brand.services, adopting)
		sumPenetration += penetration[i]
		sumDepth += depth[i]
	}

	meanPenetration := sumPenetration / float64(len(brands))
	meanDepth := sumDepth / float64(len(brands))

	positions := make([]domain.BrandPosition, 0, len(brands))
	for i, brand := range brands {
		positions = append(positions, domain.BrandPosition{
			Brand:               brand.brand,
			TotalServices:       brand.services,
			AdoptingSalons:      len(brand.salons),
			SalonPenetrationPct: utils.RoundWithTwoDecimalPlace(penetration[i]),
			AvgUsageDepth:       utils.RoundWithTwoDecimalPlace(depth[i]),
			Position:            classifyPosition(penetration[i], depth[i], meanPenetration, meanDepth),
		})
	}

	apportion(positions, func(p *domain.BrandPosition) *float64 { return &p.TotalServices })

	return positions
}

func classifyPosition(penetration, depth, meanPenetration, meanDepth float64) domain.BrandPositionClass {
	switch {
	case penetration > meanPenetration && depth > meanDepth:
		return domain.PositionLeader
	case penetration > meanPenetration:
		return domain.PositionStrong
	case depth > meanDepth:
		return domain.PositionNiche
	default:
		return domain.PositionLow
	}
}

// TopDecileCount retorna quantos salões compõem o decil superior de uma faixa (mínimo 1)
func TopDecileCount(salons int, fraction float64) int {
	if salons <= 0 {
		return 0
	}

	count := int(math.Ceil(float64(salons)*fraction - topDecileEpsilon))
	if count < 1 {
		count = 1
	}
	if count > salons {
		count = salons
	}

	return count
}

// salonBenchmarks compara a média de cada faixa de porte com a média dos
// salões do decil superior. A faixa Unknown não participa.
func (e *Engine) salonBenchmarks(salons []*salonRollup) []domain.SalonBenchmark {
	byBucket := make(map[domain.SizeBucket][]*salonRollup)
	for _, salon := range salons {
		bucket := domain.SizeBucketFor(salon.employeeCount)
		if bucket == domain.SizeUnknown {
			continue
		}
		byBucket[bucket] = append(byBucket[bucket], salon)
	}

	benchmarks := make([]domain.SalonBenchmark, 0, len(byBucket))
	for _, bucket := range domain.SizeBuckets {
		members := byBucket[bucket]
		if len(members) == 0 {
			continue
		}

		sort.SliceStable(members, func(i, j int) bool {
			return members[i].services > members[j].services
		})

		topCount := TopDecileCount(len(members), e.opts.TopDecileFraction)
		avgServices, avgCost, avgGrams := averageRollups(members)
		topServices, topCost, topGrams := averageRollups(members[:topCount])

		benchmarks = append(benchmarks, domain.SalonBenchmark{
			Bucket:         bucket,
			Label:          bucket.Label(),
			Salons:         len(members),
			TopDecileCount: topCount,
			AvgServices:    avgServices,
			AvgCost:        avgCost,
			AvgGrams:       avgGrams,
			Top10Services:  topServices,
			Top10Cost:      topCost,
			Top10Grams:     topGrams,
		})
	}

	return benchmarks
}

func averageRollups(salons []*salonRollup) (services, cost, grams float64) {
	if len(salons) == 0 {
		return 0, 0, 0
	}

	for _, salon := range salons {
		services += salon.services
		cost += salon.cost
		grams += salon.grams
	}

	n := float64(len(salons))
	return utils.RoundWithTwoDecimalPlace(services / n),
		utils.RoundWithTwoDecimalPlace(cost / n),
		utils.RoundWithTwoDecimalPlace(grams / n)
}
