package intelligence

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"github.com/vfg2006/market-intelligence-api/internal/analytics"
	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/apiErrors"
)

// rowStore é a cópia imutável das linhas e snapshots carregados.
// Um Reload substitui a instância inteira, nunca altera a atual.
type rowStore struct {
	rows        []domain.RawRow
	snapshots   map[string]*domain.MonthSnapshot
	options     domain.FilterOptions
	monthIndex  map[string]int
	fingerprint string
}

func newRowStore(rows []domain.RawRow, snapshots []*domain.MonthSnapshot) (*rowStore, error) {
	store := &rowStore{
		rows:       rows,
		snapshots:  make(map[string]*domain.MonthSnapshot, len(snapshots)),
		options:    analytics.BuildFilterOptions(rows),
		monthIndex: make(map[string]int),
	}

	for _, row := range rows {
		if current, exists := store.monthIndex[row.MonthKey]; !exists || row.SortIndex < current {
			store.monthIndex[row.MonthKey] = row.SortIndex
		}
	}

	for _, snapshot := range snapshots {
		if snapshot == nil || snapshot.Label == "" {
			continue
		}
		store.snapshots[snapshot.Label] = snapshot
		if _, exists := store.monthIndex[snapshot.Label]; !exists {
			store.monthIndex[snapshot.Label] = snapshot.SortIndex
		}
	}

	fingerprint, err := fingerprintRows(rows)
	if err != nil {
		return nil, err
	}
	store.fingerprint = fingerprint

	return store, nil
}

// fingerprintRows identifica o conteúdo do conjunto de linhas para a chave de cache
func fingerprintRows(rows []domain.RawRow) (string, error) {
	hash := fnv.New64a()
	encoder := jsoniter.ConfigFastest.NewEncoder(hash)
	for i := range rows {
		if err := encoder.Encode(&rows[i]); err != nil {
			return "", fmt.Errorf("erro ao calcular fingerprint das linhas: %w", err)
		}
	}
	return fmt.Sprintf("%016x", hash.Sum64()), nil
}

// months retorna todos os meses conhecidos (linhas e snapshots) em ordem cronológica
func (s *rowStore) months() []string {
	months := lo.Keys(s.monthIndex)
	sort.Slice(months, func(i, j int) bool {
		if s.monthIndex[months[i]] != s.monthIndex[months[j]] {
			return s.monthIndex[months[i]] < s.monthIndex[months[j]]
		}
		return months[i] < months[j]
	})
	return months
}

// snapshot resolve o snapshot do mês: primeiro o pré-calculado, depois o montado a partir das linhas
func (s *rowStore) snapshot(label string) (*domain.MonthSnapshot, bool) {
	if snapshot, exists := s.snapshots[label]; exists {
		return snapshot, true
	}

	sortIndex, exists := s.monthIndex[label]
	if !exists {
		return nil, false
	}

	return analytics.BuildSnapshot(label, sortIndex, s.rows), true
}

// previousMonth retorna o mês imediatamente anterior ao informado
func (s *rowStore) previousMonth(label string) (string, bool) {
	months := s.months()
	for i, month := range months {
		if month == label && i > 0 {
			return months[i-1], true
		}
	}
	return "", false
}

func (s *rowStore) filterState(req AggregateRequest) (domain.FilterState, error) {
	months := s.months()
	filter := domain.FilterState{
		Countries: canonicalList(req.Countries),
		Cities:    canonicalList(req.Cities),
	}

	if len(months) == 0 {
		return filter, nil
	}

	filter.MonthFromIndex = s.monthIndex[months[0]]
	filter.MonthToIndex = s.monthIndex[months[len(months)-1]]

	if req.MonthFrom != "" {
		index, exists := s.monthIndex[req.MonthFrom]
		if !exists {
			return filter, newMonthError(ErrInvalidMonth, apiErrors.ErrInvalidMonth, req.MonthFrom, "mês inicial desconhecido")
		}
		filter.MonthFromIndex = index
	}

	if req.MonthTo != "" {
		index, exists := s.monthIndex[req.MonthTo]
		if !exists {
			return filter, newMonthError(ErrInvalidMonth, apiErrors.ErrInvalidMonth, req.MonthTo, "mês final desconhecido")
		}
		filter.MonthToIndex = index
	}

	return filter, nil
}

func canonicalList(items []string) []string {
	cleaned := lo.Uniq(lo.FilterMap(items, func(item string, _ int) (string, bool) {
		item = strings.TrimSpace(item)
		return item, item != ""
	}))
	sort.Strings(cleaned)
	return cleaned
}

func aggregateCacheKey(fingerprint string, filter domain.FilterState) string {
	return fmt.Sprintf(
		"aggregates:%s:%d-%d:%s:%s",
		fingerprint,
		filter.MonthFromIndex,
		filter.MonthToIndex,
		strings.Join(filter.Countries, ","),
		strings.Join(filter.Cities, ","),
	)
}
