package analytics

import (
	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/utils"
)

type sizeAccumulator struct {
	benchmark domain.SalonSizeBenchmark
	salons    map[string]struct{}
}

// salonSizeBuckets classifica cada salão uma única vez pelo maior número de
// funcionários que ele informou no recorte
func salonSizeBuckets(rows []domain.RawRow) map[string]domain.SizeBucket {
	employees := make(map[string]int)
	for _, row := range rows {
		if current, seen := employees[row.UserID]; !seen || row.EmployeeCount > current {
			employees[row.UserID] = row.EmployeeCount
		}
	}

	buckets := make(map[string]domain.SizeBucket, len(employees))
	for userID, count := range employees {
		buckets[userID] = domain.SizeBucketFor(count)
	}

	return buckets
}

// SalonSizeBenchmarks agrupa as linhas pela faixa de porte do salão.
// As médias são por salão distinto, não por linha.
func SalonSizeBenchmarks(rows []domain.RawRow) []domain.SalonSizeBenchmark {
	salonBuckets := salonSizeBuckets(rows)
	byBucket := make(map[domain.SizeBucket]*sizeAccumulator)

	for _, row := range rows {
		bucket := salonBuckets[row.UserID]
		acc, exists := byBucket[bucket]
		if !exists {
			acc = &sizeAccumulator{
				benchmark: domain.SalonSizeBenchmark{Bucket: bucket, Label: bucket.Label()},
				salons:    make(map[string]struct{}),
			}
			byBucket[bucket] = acc
		}

		acc.benchmark.TotalServices += row.Services
		acc.benchmark.TotalRevenue += row.Cost
		acc.benchmark.TotalVisits += row.Visits
		acc.benchmark.SalonBrandPairs++
		acc.salons[row.UserID] = struct{}{}
	}

	benchmarks := make([]domain.SalonSizeBenchmark, 0, len(byBucket))
	for _, bucket := range domain.SizeBuckets {
		acc, exists := byBucket[bucket]
		if !exists {
			continue
		}

		b := acc.benchmark
		b.Salons = len(acc.salons)
		salons := float64(b.Salons)
		b.AvgServices = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(b.TotalServices, salons))
		b.AvgRevenue = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(b.TotalRevenue, salons))
		b.AvgVisits = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(b.TotalVisits, salons))
		b.TotalRevenue = utils.RoundWithTwoDecimalPlace(b.TotalRevenue)
		benchmarks = append(benchmarks, b)
	}

	apportion(benchmarks, func(b *domain.SalonSizeBenchmark) *float64 { return &b.TotalServices })
	apportion(benchmarks, func(b *domain.SalonSizeBenchmark) *float64 { return &b.TotalVisits })

	return benchmarks
}
