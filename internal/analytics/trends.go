package analytics

import (
	"sort"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/utils"
)

type monthAccumulator struct {
	trend  domain.MonthlyTrend
	brands map[string]struct{}
}

// MonthlyTrends agrupa as linhas por mês, ordenando pelo índice cronológico
func MonthlyTrends(rows []domain.RawRow) []domain.MonthlyTrend {
	byMonth := make(map[string]*monthAccumulator)

	for _, row := range rows {
		acc, exists := byMonth[row.MonthKey]
		if !exists {
			acc = &monthAccumulator{
				trend: domain.MonthlyTrend{
					Month:         row.MonthKey,
					SortIndex:     row.SortIndex,
					ByServiceType: make(map[domain.ServiceType]domain.ServiceRevenue, len(domain.ServiceTypes)),
				},
				brands: make(map[string]struct{}),
			}
			byMonth[row.MonthKey] = acc
		}

		trend := &acc.trend
		trend.TotalVisits += row.Visits
		trend.TotalServices += row.Services
		trend.TotalCost += row.Cost
		trend.TotalGrams += row.Grams
		trend.SalonBrandPairs++

		for _, serviceType := range domain.ServiceTypes {
			metrics := row.PerServiceType.Get(serviceType)
			current := trend.ByServiceType[serviceType]
			current.Services += metrics.Services
			current.Revenue += metrics.Cost
			trend.ByServiceType[serviceType] = current
		}

		acc.brands[row.BrandOrUnknown()] = struct{}{}
	}

	trends := make([]domain.MonthlyTrend, 0, len(byMonth))
	for _, acc := range byMonth {
		trend := acc.trend
		trend.ActiveBrands = len(acc.brands)
		trend.TotalCost = utils.RoundWithTwoDecimalPlace(trend.TotalCost)
		trend.TotalGrams = utils.RoundWithTwoDecimalPlace(trend.TotalGrams)

		for serviceType, metrics := range trend.ByServiceType {
			trend.ByServiceType[serviceType] = domain.ServiceRevenue{
				Services: utils.RoundToInt(metrics.Services),
				Revenue:  utils.RoundWithTwoDecimalPlace(metrics.Revenue),
			}
		}

		trends = append(trends, trend)
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].SortIndex != trends[j].SortIndex {
			return trends[i].SortIndex < trends[j].SortIndex
		}
		return trends[i].Month < trends[j].Month
	})

	apportion(trends, func(t *domain.MonthlyTrend) *float64 { return &t.TotalServices })
	apportion(trends, func(t *domain.MonthlyTrend) *float64 { return &t.TotalVisits })

	return trends
}

type priceAverage struct {
	sum     float64
	samples int
}

// add ignora preços zerados ou ausentes, que não representam um preço real
func (p *priceAverage) add(value float64) {
	if value > 0 {
		p.sum += value
		p.samples++
	}
}

func (p priceAverage) value() float64 {
	if p.samples == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(p.sum / float64(p.samples))
}

type pricingAccumulator struct {
	month      string
	sortIndex  int
	rootColor  priceAverage
	highlights priceAverage
	haircut    priceAverage
}

// PricingTrends calcula a média mensal dos preços declarados pelos salões
func PricingTrends(rows []domain.RawRow) []domain.PricingTrend {
	byMonth := make(map[string]*pricingAccumulator)

	for _, row := range rows {
		acc, exists := byMonth[row.MonthKey]
		if !exists {
			acc = &pricingAccumulator{month: row.MonthKey, sortIndex: row.SortIndex}
			byMonth[row.MonthKey] = acc
		}

		acc.rootColor.add(row.DeclaredPrices.RootColor)
		acc.highlights.add(row.DeclaredPrices.Highlights)
		acc.haircut.add(row.DeclaredPrices.Haircut)
	}

	trends := make([]domain.PricingTrend, 0, len(byMonth))
	for _, acc := range byMonth {
		trends = append(trends, domain.PricingTrend{
			Month:             acc.month,
			SortIndex:         acc.sortIndex,
			AvgRootColor:      acc.rootColor.value(),
			AvgHighlights:     acc.highlights.value(),
			AvgHaircut:        acc.haircut.value(),
			RootColorSamples:  acc.rootColor.samples,
			HighlightsSamples: acc.highlights.samples,
			HaircutSamples:    acc.haircut.samples,
		})
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].SortIndex != trends[j].SortIndex {
			return trends[i].SortIndex < trends[j].SortIndex
		}
		return trends[i].Month < trends[j].Month
	})

	return trends
}
