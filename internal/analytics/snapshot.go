package analytics

import (
	"sort"

	"github.com/samber/lo"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/utils"
)

type brandSnapshotAccumulator struct {
	totals    domain.BrandTotals
	customers map[string]struct{}
}

type customerSnapshotAccumulator struct {
	totals domain.CustomerTotals
	brands map[string]struct{}
}

// BuildSnapshot monta o snapshot de um mês a partir das linhas brutas.
// Linhas de outros meses são ignoradas.
func BuildSnapshot(label string, sortIndex int, rows []domain.RawRow) *domain.MonthSnapshot {
	snapshot := &domain.MonthSnapshot{
		Label:        label,
		SortIndex:    sortIndex,
		ServiceTypes: make(map[domain.ServiceType]domain.ServiceTypeTotals, len(domain.ServiceTypes)),
		Brands:       make(map[string]domain.BrandTotals),
		Customers:    make(map[string]domain.CustomerTotals),
	}

	brands := make(map[string]*brandSnapshotAccumulator)
	customers := make(map[string]*customerSnapshotAccumulator)

	for _, serviceType := range domain.ServiceTypes {
		snapshot.ServiceTypes[serviceType] = domain.ServiceTypeTotals{}
	}

	for _, row := range rows {
		if row.MonthKey != label {
			continue
		}

		snapshot.Totals.Services += row.Services
		snapshot.Totals.Revenue += row.Cost
		snapshot.Totals.Visits += row.Visits
		snapshot.Totals.Grams += row.Grams

		for _, serviceType := range domain.ServiceTypes {
			metrics := row.PerServiceType.Get(serviceType)
			current := snapshot.ServiceTypes[serviceType]
			current.Services += metrics.Services
			current.Revenue += metrics.Cost
			current.Grams += metrics.Grams
			snapshot.ServiceTypes[serviceType] = current
		}

		brand := row.BrandOrUnknown()
		brandAcc, exists := brands[brand]
		if !exists {
			brandAcc = &brandSnapshotAccumulator{customers: make(map[string]struct{})}
			brands[brand] = brandAcc
		}
		brandAcc.totals.Services += row.Services
		brandAcc.totals.Revenue += row.Cost
		brandAcc.totals.Visits += row.Visits
		brandAcc.totals.Grams += row.Grams
		brandAcc.customers[row.UserID] = struct{}{}

		customerAcc, exists := customers[row.UserID]
		if !exists {
			customerAcc = &customerSnapshotAccumulator{brands: make(map[string]struct{})}
			customers[row.UserID] = customerAcc
		}
		customerAcc.totals.Services += row.Services
		customerAcc.totals.Revenue += row.Cost
		customerAcc.totals.Visits += row.Visits
		customerAcc.totals.Grams += row.Grams
		customerAcc.brands[brand] = struct{}{}
	}

	snapshot.Totals = domain.SnapshotTotals{
		Services: utils.ApportionRound([]float64{snapshot.Totals.Services})[0],
		Revenue:  utils.RoundWithTwoDecimalPlace(snapshot.Totals.Revenue),
		Visits:   utils.ApportionRound([]float64{snapshot.Totals.Visits})[0],
		Grams:    utils.RoundWithTwoDecimalPlace(snapshot.Totals.Grams),
	}

	for serviceType, totals := range snapshot.ServiceTypes {
		snapshot.ServiceTypes[serviceType] = domain.ServiceTypeTotals{
			Services: utils.RoundToInt(totals.Services),
			Revenue:  utils.RoundWithTwoDecimalPlace(totals.Revenue),
			Grams:    utils.RoundWithTwoDecimalPlace(totals.Grams),
		}
	}

	brandNames := lo.Keys(brands)
	sort.Strings(brandNames)
	brandServices := utils.ApportionRound(lo.Map(brandNames, func(brand string, _ int) float64 {
		return brands[brand].totals.Services
	}))
	brandVisits := utils.ApportionRound(lo.Map(brandNames, func(brand string, _ int) float64 {
		return brands[brand].totals.Visits
	}))

	for i, brand := range brandNames {
		acc := brands[brand]
		snapshot.Brands[brand] = domain.BrandTotals{
			Services:      brandServices[i],
			Revenue:       utils.RoundWithTwoDecimalPlace(acc.totals.Revenue),
			Visits:        brandVisits[i],
			Grams:         utils.RoundWithTwoDecimalPlace(acc.totals.Grams),
			CustomerCount: len(acc.customers),
		}
	}

	userIDs := lo.Keys(customers)
	sort.Strings(userIDs)
	customerServices := utils.ApportionRound(lo.Map(userIDs, func(userID string, _ int) float64 {
		return customers[userID].totals.Services
	}))
	customerVisits := utils.ApportionRound(lo.Map(userIDs, func(userID string, _ int) float64 {
		return customers[userID].totals.Visits
	}))

	for i, userID := range userIDs {
		acc := customers[userID]
		snapshot.Customers[userID] = domain.CustomerTotals{
			Services:   customerServices[i],
			Revenue:    utils.RoundWithTwoDecimalPlace(acc.totals.Revenue),
			Visits:     customerVisits[i],
			Grams:      utils.RoundWithTwoDecimalPlace(acc.totals.Grams),
			BrandsUsed: len(acc.brands),
		}
	}

	return snapshot
}

// BuildSnapshots monta um snapshot para cada mês presente nas linhas
func BuildSnapshots(rows []domain.RawRow) map[string]*domain.MonthSnapshot {
	byMonth := lo.GroupBy(rows, func(row domain.RawRow) string {
		return row.MonthKey
	})

	snapshots := make(map[string]*domain.MonthSnapshot, len(byMonth))
	for month, monthRows := range byMonth {
		snapshots[month] = BuildSnapshot(month, monthRows[0].SortIndex, monthRows)
	}

	return snapshots
}

// BuildFilterOptions lista os valores distintos disponíveis para filtros.
// Meses seguem a ordem cronológica; o resto, ordem alfabética.
func BuildFilterOptions(rows []domain.RawRow) domain.FilterOptions {
	monthIndex := make(map[string]int)
	for _, row := range rows {
		if current, exists := monthIndex[row.MonthKey]; !exists || row.SortIndex < current {
			monthIndex[row.MonthKey] = row.SortIndex
		}
	}

	months := lo.Keys(monthIndex)
	sort.Slice(months, func(i, j int) bool {
		if monthIndex[months[i]] != monthIndex[months[j]] {
			return monthIndex[months[i]] < monthIndex[months[j]]
		}
		return months[i] < months[j]
	})

	serviceTypes := lo.Map(domain.ServiceTypes, func(t domain.ServiceType, _ int) string {
		return t.Label()
	})

	return domain.FilterOptions{
		Months:       months,
		Countries:    sortedDistinct(rows, domain.RawRow.CountryOrUnknown),
		Cities:       sortedDistinct(rows, domain.RawRow.CityOrUnknown),
		Brands:       sortedDistinct(rows, domain.RawRow.BrandOrUnknown),
		ServiceTypes: serviceTypes,
	}
}

func sortedDistinct(rows []domain.RawRow, value func(domain.RawRow) string) []string {
	values := lo.Uniq(lo.Map(rows, func(row domain.RawRow, _ int) string {
		return value(row)
	}))
	sort.Strings(values)
	return values
}
