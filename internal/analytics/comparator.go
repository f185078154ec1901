package analytics

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/utils"
)

// PctChange calcula a variação percentual de a para b.
// Convenção para base zero: 0 -> 0 resulta em 0 e 0 -> qualquer valor resulta em
// 100 (crescimento a partir de zero é limitado a 100%, nunca infinito).
func PctChange(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	if a == 0 {
		return 100
	}

	return utils.RoundWithTwoDecimalPlace((b - a) / a * 100)
}

func newMetricDelta(a, b float64) domain.MetricDelta {
	return domain.MetricDelta{
		A:         utils.RoundWithTwoDecimalPlace(a),
		B:         utils.RoundWithTwoDecimalPlace(b),
		Delta:     utils.RoundWithTwoDecimalPlace(b - a),
		PctChange: PctChange(a, b),
	}
}

// CompareMonths compara dois snapshots mensais. Com healthFilter ligado, as
// listas de marcas e clientes contêm apenas entidades presentes nos dois meses;
// desligado, contêm a união com o lado ausente zerado.
// A rejeição de um mês comparado com ele mesmo é feita por quem chama.
func CompareMonths(a, b *domain.MonthSnapshot, healthFilter bool) *domain.ComparisonResult {
	if a == nil {
		a = &domain.MonthSnapshot{}
	}
	if b == nil {
		b = &domain.MonthSnapshot{}
	}

	brandSets := partition(a.Brands, b.Brands)
	customerSets := partition(a.Customers, b.Customers)

	return &domain.ComparisonResult{
		MonthA:       a.Label,
		MonthB:       b.Label,
		HealthFilter: healthFilter,
		Totals:       compareTotals(a.Totals, b.Totals),
		ServiceTypes: compareServiceTypes(a.ServiceTypes, b.ServiceTypes),
		Brands:       compareBrands(a.Brands, b.Brands, brandSets, healthFilter),
		Customers:    compareCustomers(a.Customers, b.Customers, customerSets, healthFilter),
		BrandSets:    brandSets,
		CustomerSets: customerSets,
	}
}

func compareTotals(a, b domain.SnapshotTotals) domain.TotalsDelta {
	return domain.TotalsDelta{
		Services: newMetricDelta(a.Services, b.Services),
		Revenue:  newMetricDelta(a.Revenue, b.Revenue),
		Visits:   newMetricDelta(a.Visits, b.Visits),
		Grams:    newMetricDelta(a.Grams, b.Grams),
	}
}

func compareServiceTypes(a, b map[domain.ServiceType]domain.ServiceTypeTotals) []domain.ServiceTypeDelta {
	deltas := make([]domain.ServiceTypeDelta, 0, len(domain.ServiceTypes))

	for _, serviceType := range domain.ServiceTypes {
		// Bucket ausente em qualquer lado vale como zerado
		totalsA := a[serviceType]
		totalsB := b[serviceType]

		deltas = append(deltas, domain.ServiceTypeDelta{
			ServiceType: serviceType,
			Label:       serviceType.Label(),
			Services:    newMetricDelta(totalsA.Services, totalsB.Services),
			Revenue:     newMetricDelta(totalsA.Revenue, totalsB.Revenue),
			Grams:       newMetricDelta(totalsA.Grams, totalsB.Grams),
		})
	}

	return deltas
}

// partition separa as chaves de dois mapas em compartilhadas, novas (só em b)
// e perdidas (só em a), todas em ordem alfabética
func partition[V any](a, b map[string]V) domain.SetPartition {
	keysA := lo.Keys(a)
	keysB := lo.Keys(b)

	shared := lo.Intersect(keysA, keysB)
	lost, added := lo.Difference(keysA, keysB)

	sort.Strings(shared)
	sort.Strings(added)
	sort.Strings(lost)

	return domain.SetPartition{
		Shared:      shared,
		New:         added,
		Lost:        lost,
		SharedCount: len(shared),
		NewCount:    len(added),
		LostCount:   len(lost),
	}
}

type keyStatus struct {
	key    string
	status domain.EntityStatus
}

func comparisonKeys(sets domain.SetPartition, healthFilter bool) []keyStatus {
	keys := make([]keyStatus, 0, sets.SharedCount+sets.NewCount+sets.LostCount)
	for _, key := range sets.Shared {
		keys = append(keys, keyStatus{key: key, status: domain.EntityShared})
	}

	if healthFilter {
		return keys
	}

	for _, key := range sets.New {
		keys = append(keys, keyStatus{key: key, status: domain.EntityNew})
	}
	for _, key := range sets.Lost {
		keys = append(keys, keyStatus{key: key, status: domain.EntityLost})
	}

	return keys
}

// byRevenueDelta ordena por |delta de receita| decrescente, com desempate pelo nome
func byRevenueDelta(deltaI, deltaJ float64, keyI, keyJ string) bool {
	absI, absJ := math.Abs(deltaI), math.Abs(deltaJ)
	if absI != absJ {
		return absI > absJ
	}
	return keyI < keyJ
}

func compareBrands(a, b map[string]domain.BrandTotals, sets domain.SetPartition, healthFilter bool) []domain.BrandDelta {
	keys := comparisonKeys(sets, healthFilter)
	deltas := make([]domain.BrandDelta, 0, len(keys))

	for _, k := range keys {
		totalsA := a[k.key]
		totalsB := b[k.key]

		deltas = append(deltas, domain.BrandDelta{
			Brand:         k.key,
			Status:        k.status,
			IsNew:         k.status == domain.EntityNew,
			IsLost:        k.status == domain.EntityLost,
			Services:      newMetricDelta(totalsA.Services, totalsB.Services),
			Revenue:       newMetricDelta(totalsA.Revenue, totalsB.Revenue),
			Visits:        newMetricDelta(totalsA.Visits, totalsB.Visits),
			Grams:         newMetricDelta(totalsA.Grams, totalsB.Grams),
			CustomerCount: newMetricDelta(float64(totalsA.CustomerCount), float64(totalsB.CustomerCount)),
		})
	}

	sort.Slice(deltas, func(i, j int) bool {
		return byRevenueDelta(deltas[i].Revenue.Delta, deltas[j].Revenue.Delta, deltas[i].Brand, deltas[j].Brand)
	})

	return deltas
}

func compareCustomers(a, b map[string]domain.CustomerTotals, sets domain.SetPartition, healthFilter bool) []domain.CustomerDelta {
	keys := comparisonKeys(sets, healthFilter)
	deltas := make([]domain.CustomerDelta, 0, len(keys))

	for _, k := range keys {
		totalsA := a[k.key]
		totalsB := b[k.key]

		deltas = append(deltas, domain.CustomerDelta{
			CustomerID: k.key,
			Status:     k.status,
			IsNew:      k.status == domain.EntityNew,
			IsLost:     k.status == domain.EntityLost,
			Services:   newMetricDelta(totalsA.Services, totalsB.Services),
			Revenue:    newMetricDelta(totalsA.Revenue, totalsB.Revenue),
			Visits:     newMetricDelta(totalsA.Visits, totalsB.Visits),
			Grams:      newMetricDelta(totalsA.Grams, totalsB.Grams),
			BrandsUsed: newMetricDelta(float64(totalsA.BrandsUsed), float64(totalsB.BrandsUsed)),
		})
	}

	sort.Slice(deltas, func(i, j int) bool {
		return byRevenueDelta(deltas[i].Revenue.Delta, deltas[j].Revenue.Delta, deltas[i].CustomerID, deltas[j].CustomerID)
	})

	return deltas
}
