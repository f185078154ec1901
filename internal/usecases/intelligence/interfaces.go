package intelligence

import (
	"context"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
)

type MarketIntelligence interface {
	GetAggregates(ctx context.Context, req AggregateRequest) (*domain.AggregateBundle, error)
	CompareMonths(ctx context.Context, monthA, monthB string, healthFilter bool) (*domain.ComparisonResult, error)
	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	ListSnapshots(ctx context.Context) ([]domain.SnapshotSummary, error)
	GetBrandRanking(ctx context.Context, month string) (*domain.BrandRankingResponse, error)
	Reload(ctx context.Context) error
}

// AggregateCache guarda bundles já calculados. Implementações devem tratar
// ausência de chave como (nil, false, nil).
type AggregateCache interface {
	Get(ctx context.Context, key string) (*domain.AggregateBundle, bool, error)
	Set(ctx context.Context, key string, bundle *domain.AggregateBundle) error
}

// AggregateRequest é o filtro recebido da API, com meses por rótulo.
// Meses vazios significam o primeiro/último mês disponível.
type AggregateRequest struct {
	MonthFrom string
	MonthTo   string
	Countries []string
	Cities    []string
}
