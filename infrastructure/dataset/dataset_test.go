package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
)

const sampleDocument = `{
  "rawRows": [
    {"monthKey": "2025-01", "sortIndex": 1, "userId": "s1", "country": "Brazil", "city": "São Paulo", "brand": "ColorCo", "services": 50, "cost": 500,
     "perServiceType": {"color": {"services": 50, "cost": 500, "grams": 1000}},
     "declaredPrices": {"rootColor": 120}},
    {"monthKey": "2025-02", "sortIndex": 2, "userId": "s2", "country": "", "city": "", "brand": "GlossPro", "services": 10, "cost": 100}
  ],
  "monthlySnapshots": {
    "2025-01": {"label": "2025-01", "sortIndex": 1, "totals": {"services": 50, "revenue": 500}}
  },
  "filterOptions": {"months": ["2025-01", "2025-02"]}
}`

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "Documento válido", content: sampleDocument},
		{name: "JSON malformado", content: `{"rawRows": [`, wantErr: true},
		{name: "Linha sem mês", content: `{"rawRows": [{"userId": "s1"}]}`, wantErr: true},
		{name: "Linha sem salão", content: `{"rawRows": [{"monthKey": "2025-01"}]}`, wantErr: true},
		{name: "Snapshot com label divergente", content: `{"monthlySnapshots": {"2025-01": {"label": "2025-02"}}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			document, err := Load(writeDocument(t, tt.content))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Len(t, document.RawRows, 2)
			assert.Equal(t, 1000.0, document.RawRows[0].PerServiceType.Color.Grams)
			assert.Equal(t, 120.0, document.RawRows[0].DeclaredPrices.RootColor)
			assert.Equal(t, domain.UnknownLabel, document.RawRows[1].CountryOrUnknown())
			assert.Equal(t, 50.0, document.MonthlySnapshots["2025-01"].Totals.Services)
		})
	}
}

func TestLoad_ArquivoInexistente(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nao-existe.json"))
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	ctx := context.Background()
	source := NewFileSource(writeDocument(t, sampleDocument))

	rows, err := source.ListRows(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	february, err := source.ListRowsByMonths(ctx, []string{"2025-02"})
	require.NoError(t, err)
	require.Len(t, february, 1)
	assert.Equal(t, "s2", february[0].UserID)

	_, err = source.SaveBatch(ctx, "batch", rows, 10)
	assert.ErrorIs(t, err, ErrReadOnly)
	_, err = source.DeleteAll(ctx)
	assert.ErrorIs(t, err, ErrReadOnly)

	snapshot, err := source.GetByLabel(ctx, "2025-02")
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	require.NoError(t, source.SaveOrUpdate(ctx, &domain.MonthSnapshot{Label: "2025-02", SortIndex: 2}))
	require.NoError(t, source.SaveOrUpdate(ctx, &domain.MonthSnapshot{Label: "2025-01", SortIndex: 1, Totals: domain.SnapshotTotals{Services: 77}}))
	assert.Error(t, source.SaveOrUpdate(ctx, &domain.MonthSnapshot{}))

	snapshots, err := source.List(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "2025-01", snapshots[0].Label)
	assert.Equal(t, 77.0, snapshots[0].Totals.Services)
	assert.Equal(t, "2025-02", snapshots[1].Label)
}
