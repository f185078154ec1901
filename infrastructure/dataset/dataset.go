// Package dataset lê o documento JSON produzido pelo ETL externo e o expõe
// com as mesmas interfaces dos repositórios PostgreSQL
package dataset

import (
	"context"
	"os"
	"sort"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/vfg2006/market-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/market-intelligence-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrReadOnly é retornado pelas operações de escrita nas linhas brutas
var ErrReadOnly = errors.New("fonte de dados em arquivo é somente leitura")

var (
	_ repository.RawRowRepository        = (*FileSource)(nil)
	_ repository.MonthSnapshotRepository = (*FileSource)(nil)
)

// Load decodifica o documento do caminho informado
func Load(path string) (*domain.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir dataset %s", path)
	}
	defer file.Close()

	var document domain.Dataset
	if err := json.NewDecoder(file).Decode(&document); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar dataset %s", path)
	}

	if err := validate(&document); err != nil {
		return nil, errors.Wrapf(err, "dataset %s inválido", path)
	}

	return &document, nil
}

func validate(document *domain.Dataset) error {
	for i, row := range document.RawRows {
		if row.MonthKey == "" {
			return errors.Errorf("linha %d sem monthKey", i)
		}
		if row.UserID == "" {
			return errors.Errorf("linha %d sem userId", i)
		}
	}

	for label, snapshot := range document.MonthlySnapshots {
		if snapshot == nil {
			return errors.Errorf("snapshot %s vazio", label)
		}
		if snapshot.Label == "" {
			snapshot.Label = label
		}
		if snapshot.Label != label {
			return errors.Errorf("snapshot registrado como %s tem label %s", label, snapshot.Label)
		}
	}

	return nil
}

// FileSource relê o arquivo a cada listagem, então um Reload do serviço
// enxerga a versão atual do documento. Snapshots reconstruídos ficam em
// memória e têm precedência sobre os do arquivo.
type FileSource struct {
	path string

	mu        sync.RWMutex
	overrides map[string]*domain.MonthSnapshot
}

func NewFileSource(path string) *FileSource {
	return &FileSource{
		path:      path,
		overrides: make(map[string]*domain.MonthSnapshot),
	}
}

func (s *FileSource) ListRows(_ context.Context) ([]domain.RawRow, error) {
	document, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	return document.RawRows, nil
}

func (s *FileSource) ListRowsByMonths(ctx context.Context, months []string) ([]domain.RawRow, error) {
	rows, err := s.ListRows(ctx)
	if err != nil {
		return nil, err
	}

	if len(months) == 0 {
		return rows, nil
	}

	return lo.Filter(rows, func(row domain.RawRow, _ int) bool {
		return lo.Contains(months, row.MonthKey)
	}), nil
}

func (s *FileSource) SaveBatch(_ context.Context, _ string, _ []domain.RawRow, _ int) (int, error) {
	return 0, ErrReadOnly
}

func (s *FileSource) DeleteAll(_ context.Context) (int64, error) {
	return 0, ErrReadOnly
}

func (s *FileSource) List(_ context.Context) ([]*domain.MonthSnapshot, error) {
	document, err := Load(s.path)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	merged := make(map[string]*domain.MonthSnapshot, len(document.MonthlySnapshots)+len(s.overrides))
	for label, snapshot := range document.MonthlySnapshots {
		merged[label] = snapshot
	}
	for label, snapshot := range s.overrides {
		merged[label] = snapshot
	}
	s.mu.RUnlock()

	snapshots := lo.Values(merged)
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].SortIndex < snapshots[j].SortIndex
	})

	return snapshots, nil
}

func (s *FileSource) GetByLabel(ctx context.Context, label string) (*domain.MonthSnapshot, error) {
	s.mu.RLock()
	snapshot, exists := s.overrides[label]
	s.mu.RUnlock()
	if exists {
		return snapshot, nil
	}

	document, err := Load(s.path)
	if err != nil {
		return nil, err
	}

	return document.MonthlySnapshots[label], nil
}

func (s *FileSource) SaveOrUpdate(_ context.Context, snapshot *domain.MonthSnapshot) error {
	if snapshot == nil || snapshot.Label == "" {
		return errors.New("snapshot sem label")
	}

	s.mu.Lock()
	s.overrides[snapshot.Label] = snapshot
	s.mu.Unlock()

	return nil
}
