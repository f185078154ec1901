package analytics

import (
	"sort"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/utils"
)

type geoAccumulator struct {
	entry  domain.GeoEntry
	salons map[string]struct{}
}

// Geography agrupa as linhas por país
func Geography(rows []domain.RawRow) []domain.GeoEntry {
	byCountry := make(map[string]*geoAccumulator)

	for _, row := range rows {
		country := row.CountryOrUnknown()
		acc, exists := byCountry[country]
		if !exists {
			acc = &geoAccumulator{
				entry:  domain.GeoEntry{Country: country},
				salons: make(map[string]struct{}),
			}
			byCountry[country] = acc
		}

		acc.entry.Services += row.Services
		acc.entry.Revenue += row.Cost
		acc.entry.Visits += row.Visits
		acc.entry.SalonBrandPairs++
		acc.salons[row.UserID] = struct{}{}
	}

	entries := make([]domain.GeoEntry, 0, len(byCountry))
	for _, acc := range byCountry {
		entry := acc.entry
		entry.Salons = len(acc.salons)
		entry.Revenue = utils.RoundWithTwoDecimalPlace(entry.Revenue)
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Country < entries[j].Country
	})
	apportion(entries, func(e *domain.GeoEntry) *float64 { return &e.Services })
	apportion(entries, func(e *domain.GeoEntry) *float64 { return &e.Visits })

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Services != entries[j].Services {
			return entries[i].Services > entries[j].Services
		}
		return entries[i].Country < entries[j].Country
	})

	return entries
}
