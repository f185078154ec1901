// Package intelligence expõe as consultas de inteligência de mercado sobre o
// conjunto de linhas carregado em memória
package intelligence

import (
	"context"
	"sort"
	"sync"

	"github.com/vfg2006/market-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/market-intelligence-api/internal/analytics"
	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/market-intelligence-api/pkg/log"
)

var _ MarketIntelligence = (*Service)(nil)

type Service struct {
	rawRowRepo   repository.RawRowRepository
	snapshotRepo repository.MonthSnapshotRepository
	cache        AggregateCache
	engine       *analytics.Engine

	loadMu sync.Mutex
	mu     sync.RWMutex
	store  *rowStore
}

// NewService cria o serviço. cache pode ser nil quando o Redis está desabilitado.
func NewService(
	rawRowRepo repository.RawRowRepository,
	snapshotRepo repository.MonthSnapshotRepository,
	cache AggregateCache,
	engine *analytics.Engine,
) *Service {
	if engine == nil {
		engine = analytics.NewEngine()
	}

	return &Service{
		rawRowRepo:   rawRowRepo,
		snapshotRepo: snapshotRepo,
		cache:        cache,
		engine:       engine,
	}
}

func (s *Service) GetAggregates(ctx context.Context, req AggregateRequest) (*domain.AggregateBundle, error) {
	store, err := s.currentStore(ctx)
	if err != nil {
		return nil, err
	}

	filter, err := store.filterState(req)
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithComponent("intelligence").WithFields(log.Fields{
		"filter_from":      filter.MonthFromIndex,
		"filter_to":        filter.MonthToIndex,
		"filter_countries": filter.Countries,
		"filter_cities":    filter.Cities,
	})

	key := aggregateCacheKey(store.fingerprint, filter)
	if s.cache != nil {
		bundle, found, err := s.cache.Get(ctx, key)
		if err != nil {
			logger.WithError(err).Warn("Falha ao consultar cache de agregados, recalculando")
		} else if found {
			logger.WithField("cache_hit", true).Debug("Agregados servidos do cache")
			return bundle, nil
		}
	}

	bundle := s.engine.Aggregate(store.rows, filter)
	logger.WithField("rows", bundle.RowCount).Debug("Agregados calculados")

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, bundle); err != nil {
			logger.WithError(err).Warn("Falha ao gravar agregados no cache")
		}
	}

	return bundle, nil
}

// CompareMonths rejeita a comparação de um mês com ele mesmo antes de chamar o comparador
func (s *Service) CompareMonths(ctx context.Context, monthA, monthB string, healthFilter bool) (*domain.ComparisonResult, error) {
	if monthA == "" || monthB == "" {
		return nil, newMonthError(ErrMissingMonth, apiErrors.ErrMissingRequiredData, "", "month_a e month_b são obrigatórios")
	}

	if monthA == monthB {
		return nil, newMonthError(ErrSameMonth, apiErrors.ErrSameMonth, monthA, "")
	}

	store, err := s.currentStore(ctx)
	if err != nil {
		return nil, err
	}

	snapshotA, err := resolveSnapshot(store, monthA)
	if err != nil {
		return nil, err
	}

	snapshotB, err := resolveSnapshot(store, monthB)
	if err != nil {
		return nil, err
	}

	result := analytics.CompareMonths(snapshotA, snapshotB, healthFilter)

	log.ForContext(ctx).WithComponent("intelligence").WithFields(log.Fields{
		"month_a":       monthA,
		"month_b":       monthB,
		"health_filter": healthFilter,
	}).Debug("Comparação mensal calculada")

	return result, nil
}

func resolveSnapshot(store *rowStore, month string) (*domain.MonthSnapshot, error) {
	snapshot, found := store.snapshot(month)
	if !found {
		return nil, newMonthError(ErrSnapshotNotFound, apiErrors.ErrSnapshotNotFound, month, "")
	}
	return snapshot, nil
}

func (s *Service) GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	store, err := s.currentStore(ctx)
	if err != nil {
		return nil, err
	}

	options := store.options
	return &options, nil
}

// ListSnapshots resume todos os meses disponíveis para comparação
func (s *Service) ListSnapshots(ctx context.Context) ([]domain.SnapshotSummary, error) {
	store, err := s.currentStore(ctx)
	if err != nil {
		return nil, err
	}

	months := store.months()
	summaries := make([]domain.SnapshotSummary, 0, len(months))
	for _, month := range months {
		snapshot, found := store.snapshot(month)
		if !found {
			continue
		}

		summaries = append(summaries, domain.SnapshotSummary{
			Label:     snapshot.Label,
			SortIndex: snapshot.SortIndex,
			Services:  snapshot.Totals.Services,
			Revenue:   snapshot.Totals.Revenue,
			Brands:    len(snapshot.Brands),
			Customers: len(snapshot.Customers),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].SortIndex < summaries[j].SortIndex
	})

	return summaries, nil
}

// GetBrandRanking ranqueia as marcas do mês informado (ou do último mês, quando vazio)
// e compara as posições com o mês anterior
func (s *Service) GetBrandRanking(ctx context.Context, month string) (*domain.BrandRankingResponse, error) {
	store, err := s.currentStore(ctx)
	if err != nil {
		return nil, err
	}

	if month == "" {
		months := store.months()
		if len(months) == 0 {
			return &domain.BrandRankingResponse{Ranking: []domain.BrandRankingItem{}}, nil
		}
		month = months[len(months)-1]
	}

	current, err := resolveSnapshot(store, month)
	if err != nil {
		return nil, err
	}

	response := &domain.BrandRankingResponse{Month: month}

	var previous *domain.MonthSnapshot
	if previousMonth, found := store.previousMonth(month); found {
		previous, _ = store.snapshot(previousMonth)
		response.PreviousMonth = previousMonth
	}

	response.Ranking = analytics.RankBrands(current, previous)
	return response, nil
}

// Reload substitui o conjunto carregado por uma nova leitura da fonte de dados
func (s *Service) Reload(ctx context.Context) error {
	_, err := s.load(ctx, true)
	return err
}

func (s *Service) currentStore(ctx context.Context) (*rowStore, error) {
	s.mu.RLock()
	store := s.store
	s.mu.RUnlock()

	if store != nil {
		return store, nil
	}

	return s.load(ctx, false)
}

func (s *Service) load(ctx context.Context, force bool) (*rowStore, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if !force {
		s.mu.RLock()
		store := s.store
		s.mu.RUnlock()
		if store != nil {
			return store, nil
		}
	}

	logger := log.ForContext(ctx).WithComponent("intelligence")

	rows, err := s.rawRowRepo.ListRows(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar linhas brutas")
		return nil, newDatasetError(err)
	}

	snapshots, err := s.snapshotRepo.List(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar snapshots mensais")
		return nil, newDatasetError(err)
	}

	store, err := newRowStore(rows, snapshots)
	if err != nil {
		return nil, newDatasetError(err)
	}

	s.mu.Lock()
	s.store = store
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"rows":      len(rows),
		"snapshots": len(snapshots),
	}).Info("Conjunto de dados carregado")

	return store, nil
}
