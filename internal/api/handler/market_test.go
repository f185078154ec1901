package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/internal/scheduler"
	"github.com/vfg2006/market-intelligence-api/internal/usecases/intelligence"
	"github.com/vfg2006/market-intelligence-api/internal/usecases/intelligence/mocks"
	"github.com/vfg2006/market-intelligence-api/pkg/apiErrors"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Brazil", "Portugal", "Chile"}, splitList([]string{"Brazil, Portugal", " Chile ", ""}))
	assert.Nil(t, splitList(nil))
}

func TestGetAggregates(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockMarketIntelligence(ctrl)

	service.EXPECT().GetAggregates(gomock.Any(), intelligence.AggregateRequest{
		MonthFrom: "2025-01",
		MonthTo:   "2025-03",
		Countries: []string{"Brazil", "Portugal"},
		Cities:    []string{"Lisboa"},
	}).Return(&domain.AggregateBundle{RowCount: 12}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/market/aggregates?from=2025-01&to=2025-03&countries=Brazil,Portugal&cities=Lisboa", nil)
	rec := httptest.NewRecorder()

	GetAggregates(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var bundle domain.AggregateBundle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))
	assert.Equal(t, 12, bundle.RowCount)
}

func TestCompareMonths(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(service *mocks.MockMarketIntelligence)
		wantStatus int
		wantCode   string
	}{
		{
			name:  "Filtro de saúde ligado por padrão",
			query: "month_a=2025-01&month_b=2025-02",
			setup: func(service *mocks.MockMarketIntelligence) {
				service.EXPECT().CompareMonths(gomock.Any(), "2025-01", "2025-02", true).
					Return(&domain.ComparisonResult{MonthA: "2025-01", MonthB: "2025-02", HealthFilter: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "Filtro de saúde desligado",
			query: "month_a=2025-01&month_b=2025-02&health=false",
			setup: func(service *mocks.MockMarketIntelligence) {
				service.EXPECT().CompareMonths(gomock.Any(), "2025-01", "2025-02", false).
					Return(&domain.ComparisonResult{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Parâmetro health inválido",
			query:      "month_a=2025-01&month_b=2025-02&health=talvez",
			setup:      func(*mocks.MockMarketIntelligence) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:  "Mesmo mês",
			query: "month_a=2025-01&month_b=2025-01",
			setup: func(service *mocks.MockMarketIntelligence) {
				service.EXPECT().CompareMonths(gomock.Any(), "2025-01", "2025-01", true).
					Return(nil, &intelligence.IntelligenceError{Err: intelligence.ErrSameMonth, Code: apiErrors.ErrSameMonth, Month: "2025-01"})
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrSameMonth,
		},
		{
			name:  "Snapshot inexistente",
			query: "month_a=2025-01&month_b=1999-01",
			setup: func(service *mocks.MockMarketIntelligence) {
				service.EXPECT().CompareMonths(gomock.Any(), "2025-01", "1999-01", true).
					Return(nil, &intelligence.IntelligenceError{Err: intelligence.ErrSnapshotNotFound, Code: apiErrors.ErrSnapshotNotFound, Month: "1999-01"})
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrSnapshotNotFound,
		},
		{
			name:  "Erro inesperado",
			query: "month_a=2025-01&month_b=2025-02",
			setup: func(service *mocks.MockMarketIntelligence) {
				service.EXPECT().CompareMonths(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockMarketIntelligence(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodGet, "/v1/market/compare?"+tt.query, nil)
			rec := httptest.NewRecorder()

			CompareMonths(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestGetBrandRankingEListSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockMarketIntelligence(ctrl)

	service.EXPECT().GetBrandRanking(gomock.Any(), "2025-02").
		Return(&domain.BrandRankingResponse{Month: "2025-02", Ranking: []domain.BrandRankingItem{{Brand: "GlossPro", Position: 1}}}, nil)
	service.EXPECT().ListSnapshots(gomock.Any()).
		Return([]domain.SnapshotSummary{{Label: "2025-01"}, {Label: "2025-02"}}, nil)

	rec := httptest.NewRecorder()
	GetBrandRanking(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/market/brands/ranking?month=2025-02", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"brand":"GlossPro"`)

	rec = httptest.NewRecorder()
	ListSnapshots(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/market/snapshots", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":2`)
}

func TestGetFilterOptions_FonteIndisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockMarketIntelligence(ctrl)
	service.EXPECT().GetFilterOptions(gomock.Any()).
		Return(nil, &intelligence.IntelligenceError{Err: intelligence.ErrDatasetUnavailable, Code: apiErrors.ErrDatasetUnavailable})

	rec := httptest.NewRecorder()
	GetFilterOptions(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/market/filters", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apiErrors.ErrDatasetUnavailable, decodeError(t, rec).Code)
}

type stubSyncer struct {
	err       error
	triggered int
}

func (s *stubSyncer) TriggerManualSync() error {
	s.triggered++
	return s.err
}

func (s *stubSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_running": s.err != nil}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		cronType   string
		syncer     *stubSyncer
		wantStatus int
	}{
		{name: "Reconstrução de snapshots", cronType: "snapshots", syncer: &stubSyncer{}, wantStatus: http.StatusAccepted},
		{name: "Todas as crons", cronType: "all", syncer: &stubSyncer{}, wantStatus: http.StatusAccepted},
		{name: "Já em andamento", cronType: "snapshots", syncer: &stubSyncer{err: scheduler.ErrSyncInProgress}, wantStatus: http.StatusConflict},
		{name: "Tipo desconhecido", cronType: "meta", syncer: &stubSyncer{}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil)
			ctx := context.WithValue(req.Context(), httprouter.ParamsKey, httprouter.Params{{Key: "type", Value: tt.cronType}})
			rec := httptest.NewRecorder()

			RunCronJob(CronJobServices{SnapshotSyncService: tt.syncer}).ServeHTTP(rec, req.WithContext(ctx))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
