package analytics

import (
	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/utils"
)

func sumByServiceType(rows []domain.RawRow) map[domain.ServiceType]domain.ServiceMetrics {
	totals := make(map[domain.ServiceType]domain.ServiceMetrics, len(domain.ServiceTypes))

	for _, row := range rows {
		for _, serviceType := range domain.ServiceTypes {
			metrics := row.PerServiceType.Get(serviceType)
			current := totals[serviceType]
			current.Services += metrics.Services
			current.Cost += metrics.Cost
			current.Grams += metrics.Grams
			totals[serviceType] = current
		}
	}

	return totals
}

// ServiceBreakdown retorna exatamente um item por tipo de serviço, na ordem fixa
func ServiceBreakdown(rows []domain.RawRow) []domain.ServiceBreakdown {
	totals := sumByServiceType(rows)

	breakdown := make([]domain.ServiceBreakdown, 0, len(domain.ServiceTypes))
	for _, serviceType := range domain.ServiceTypes {
		metrics := totals[serviceType]
		breakdown = append(breakdown, domain.ServiceBreakdown{
			ServiceType: serviceType,
			Label:       serviceType.Label(),
			Services:    utils.RoundToInt(metrics.Services),
			Revenue:     utils.RoundWithTwoDecimalPlace(metrics.Cost),
			Grams:       utils.RoundWithTwoDecimalPlace(metrics.Grams),
		})
	}

	return breakdown
}

// ServiceGramsAnalysis calcula eficiência e participação em gramas por tipo de
// serviço. O total usado na participação é a soma dos cinco tipos.
func ServiceGramsAnalysis(rows []domain.RawRow) []domain.ServiceGramsAnalysis {
	totals := sumByServiceType(rows)

	var totalGrams float64
	for _, metrics := range totals {
		totalGrams += metrics.Grams
	}

	analysis := make([]domain.ServiceGramsAnalysis, 0, len(domain.ServiceTypes))
	for _, serviceType := range domain.ServiceTypes {
		metrics := totals[serviceType]
		analysis = append(analysis, domain.ServiceGramsAnalysis{
			ServiceType:        serviceType,
			Label:              serviceType.Label(),
			Grams:              utils.RoundWithTwoDecimalPlace(metrics.Grams),
			Services:           utils.RoundToInt(metrics.Services),
			Revenue:            utils.RoundWithTwoDecimalPlace(metrics.Cost),
			AvgGramsPerService: utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.Grams, metrics.Services)),
			CostPerGram:        utils.RoundWithTwoDecimalPlace(utils.SafeDivide(metrics.Cost, metrics.Grams)),
			GramsSharePct:      utils.RoundWithTwoDecimalPlace(utils.Percentage(metrics.Grams, totalGrams)),
		})
	}

	return analysis
}
