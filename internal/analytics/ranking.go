package analytics

import (
	"sort"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
)

// RankBrands ordena as marcas do mês por serviços (desempate por receita e nome)
// e calcula a variação de posição em relação ao mês anterior.
// PositionChange positivo indica que a marca subiu; marcas sem posição anterior ficam com 0.
func RankBrands(current, previous *domain.MonthSnapshot) []domain.BrandRankingItem {
	if current == nil {
		return make([]domain.BrandRankingItem, 0)
	}

	ranking := rankSnapshotBrands(current)

	previousPositions := make(map[string]int)
	if previous != nil {
		for _, item := range rankSnapshotBrands(previous) {
			previousPositions[item.Brand] = item.Position
		}
	}

	for i := range ranking {
		previousPosition, exists := previousPositions[ranking[i].Brand]
		if !exists {
			continue
		}
		ranking[i].PreviousPosition = previousPosition
		ranking[i].PositionChange = previousPosition - ranking[i].Position
	}

	return ranking
}

func rankSnapshotBrands(snapshot *domain.MonthSnapshot) []domain.BrandRankingItem {
	ranking := make([]domain.BrandRankingItem, 0, len(snapshot.Brands))
	for brand, totals := range snapshot.Brands {
		ranking = append(ranking, domain.BrandRankingItem{
			Brand:    brand,
			Month:    snapshot.Label,
			Services: totals.Services,
			Revenue:  totals.Revenue,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Services != ranking[j].Services {
			return ranking[i].Services > ranking[j].Services
		}
		if ranking[i].Revenue != ranking[j].Revenue {
			return ranking[i].Revenue > ranking[j].Revenue
		}
		return ranking[i].Brand < ranking[j].Brand
	})

	for i := range ranking {
		ranking[i].Position = i + 1
	}

	return ranking
}
