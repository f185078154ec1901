package analytics

import (
	"sort"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/utils"
)

type brandAccumulator struct {
	performance domain.BrandPerformance
	months      map[string]struct{}
}

// BrandPerformance consolida serviços, receita, visitas e gramas por marca,
// ordenando por serviços de forma decrescente
func BrandPerformance(rows []domain.RawRow) []domain.BrandPerformance {
	byBrand := make(map[string]*brandAccumulator)

	for _, row := range rows {
		brand := row.BrandOrUnknown()
		acc, exists := byBrand[brand]
		if !exists {
			acc = &brandAccumulator{
				performance: domain.BrandPerformance{
					Brand:              brand,
					GramsByServiceType: make(map[domain.ServiceType]float64, len(domain.ServiceTypes)),
				},
				months: make(map[string]struct{}),
			}
			byBrand[brand] = acc
		}

		perf := &acc.performance
		perf.TotalServices += row.Services
		perf.TotalRevenue += row.Cost
		perf.TotalVisits += row.Visits
		perf.TotalGrams += row.Grams
		perf.SalonBrandPairs++

		for _, serviceType := range domain.ServiceTypes {
			perf.GramsByServiceType[serviceType] += row.PerServiceType.Get(serviceType).Grams
		}

		acc.months[row.MonthKey] = struct{}{}
	}

	performance := make([]domain.BrandPerformance, 0, len(byBrand))
	for _, acc := range byBrand {
		perf := acc.performance
		perf.MonthsActive = len(acc.months)
		perf.TotalRevenue = utils.RoundWithTwoDecimalPlace(perf.TotalRevenue)
		perf.TotalGrams = utils.RoundWithTwoDecimalPlace(perf.TotalGrams)
		for serviceType, grams := range perf.GramsByServiceType {
			perf.GramsByServiceType[serviceType] = utils.RoundWithTwoDecimalPlace(grams)
		}
		performance = append(performance, perf)
	}

	sort.Slice(performance, func(i, j int) bool {
		return performance[i].Brand < performance[j].Brand
	})
	apportion(performance, func(p *domain.BrandPerformance) *float64 { return &p.TotalServices })
	apportion(performance, func(p *domain.BrandPerformance) *float64 { return &p.TotalVisits })

	sort.Slice(performance, func(i, j int) bool {
		if performance[i].TotalServices != performance[j].TotalServices {
			return performance[i].TotalServices > performance[j].TotalServices
		}
		return performance[i].Brand < performance[j].Brand
	})

	return performance
}

type brandGramsAccumulator struct {
	grams    float64
	services float64
	revenue  float64
}

// BrandGramsAnalysis calcula a participação de cada marca no total de gramas
// consumidas, além da eficiência por serviço e do custo por grama
func BrandGramsAnalysis(rows []domain.RawRow) []domain.BrandGramsAnalysis {
	byBrand := make(map[string]*brandGramsAccumulator)
	var totalGrams float64

	for _, row := range rows {
		brand := row.BrandOrUnknown()
		acc, exists := byBrand[brand]
		if !exists {
			acc = &brandGramsAccumulator{}
			byBrand[brand] = acc
		}

		acc.grams += row.Grams
		acc.services += row.Services
		acc.revenue += row.Cost
		totalGrams += row.Grams
	}

	analysis := make([]domain.BrandGramsAnalysis, 0, len(byBrand))
	for brand, acc := range byBrand {
		analysis = append(analysis, domain.BrandGramsAnalysis{
			Brand:              brand,
			TotalGrams:         utils.RoundWithTwoDecimalPlace(acc.grams),
			TotalServices:      acc.services,
			TotalRevenue:       utils.RoundWithTwoDecimalPlace(acc.revenue),
			MarketSharePct:     utils.RoundWithTwoDecimalPlace(utils.Percentage(acc.grams, totalGrams)),
			AvgGramsPerService: utils.RoundWithTwoDecimalPlace(utils.SafeDivide(acc.grams, acc.services)),
			CostPerGram:        utils.RoundWithTwoDecimalPlace(utils.SafeDivide(acc.revenue, acc.grams)),
		})
	}

	sort.Slice(analysis, func(i, j int) bool {
		return analysis[i].Brand < analysis[j].Brand
	})
	apportion(analysis, func(a *domain.BrandGramsAnalysis) *float64 { return &a.TotalServices })

	sort.Slice(analysis, func(i, j int) bool {
		if analysis[i].TotalGrams != analysis[j].TotalGrams {
			return analysis[i].TotalGrams > analysis[j].TotalGrams
		}
		return analysis[i].Brand < analysis[j].Brand
	})

	return analysis
}

// BrandDominance monta, para cada tipo de serviço, o ranking de marcas com a
// participação de cada uma nos serviços daquele tipo. Só entram linhas com
// serviços do tipo; tipos sem nenhuma linha retornam lista vazia.
func BrandDominance(rows []domain.RawRow) domain.BrandDominance {
	dominance := make(domain.BrandDominance, len(domain.ServiceTypes))

	for _, serviceType := range domain.ServiceTypes {
		byBrand := make(map[string]*domain.BrandServiceShare)
		var typeServices float64

		for _, row := range rows {
			metrics := row.PerServiceType.Get(serviceType)
			if metrics.Services <= 0 {
				continue
			}

			brand := row.BrandOrUnknown()
			share, exists := byBrand[brand]
			if !exists {
				share = &domain.BrandServiceShare{Brand: brand}
				byBrand[brand] = share
			}

			share.Services += metrics.Services
			share.Cost += metrics.Cost
			share.Grams += metrics.Grams
			typeServices += metrics.Services
		}

		ranking := make([]domain.BrandServiceShare, 0, len(byBrand))
		for _, share := range byBrand {
			ranking = append(ranking, domain.BrandServiceShare{
				Brand:    share.Brand,
				Services: share.Services,
				Cost:     utils.RoundWithTwoDecimalPlace(share.Cost),
				Grams:    utils.RoundWithTwoDecimalPlace(share.Grams),
				SharePct: utils.RoundWithTwoDecimalPlace(utils.Percentage(share.Services, typeServices)),
			})
		}

		sort.Slice(ranking, func(i, j int) bool {
			return ranking[i].Brand < ranking[j].Brand
		})
		apportion(ranking, func(s *domain.BrandServiceShare) *float64 { return &s.Services })

		sort.Slice(ranking, func(i, j int) bool {
			if ranking[i].Services != ranking[j].Services {
				return ranking[i].Services > ranking[j].Services
			}
			return ranking[i].Brand < ranking[j].Brand
		})

		dominance[serviceType] = ranking
	}

	return dominance
}
