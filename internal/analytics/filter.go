package analytics

import (
	"github.com/vfg2006/market-intelligence-api/internal/domain"
)

// FilterRows aplica o filtro de período e geografia às linhas.
// Um intervalo invertido ou uma cidade fora dos países selecionados resulta em
// uma lista vazia, nunca em erro.
func FilterRows(rows []domain.RawRow, filter domain.FilterState) []domain.RawRow {
	filtered := make([]domain.RawRow, 0)
	if filter.MonthFromIndex > filter.MonthToIndex {
		return filtered
	}

	countries := toSet(filter.Countries)
	cities := toSet(filter.Cities)

	for _, row := range rows {
		if row.SortIndex < filter.MonthFromIndex || row.SortIndex > filter.MonthToIndex {
			continue
		}
		if len(countries) > 0 && !countries[row.CountryOrUnknown()] {
			continue
		}
		if len(cities) > 0 && !cities[row.CityOrUnknown()] {
			continue
		}
		filtered = append(filtered, row)
	}

	return filtered
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		set[item] = true
	}
	return set
}
