package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/market-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/market-intelligence-api/internal/analytics"
	"github.com/vfg2006/market-intelligence-api/internal/config"
	"github.com/vfg2006/market-intelligence-api/internal/usecases/intelligence"
)

// ErrSyncInProgress é retornado quando já existe uma reconstrução em andamento
var ErrSyncInProgress = errors.New("reconstrução de snapshots já em andamento")

// SnapshotSyncConfig representa a configuração do agendador de snapshots mensais
type SnapshotSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	MonthLookBack     int
}

// SyncResult resume uma execução da reconstrução
type SyncResult struct {
	Months []string `json:"months"`
	Saved  int      `json:"saved"`
	Failed int      `json:"failed"`
}

// SnapshotSyncService reconstrói os snapshots mensais a partir das linhas brutas
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	rawRowRepo          repository.RawRowRepository
	snapshotRepo        repository.MonthSnapshotRepository
	intelligenceService intelligence.MarketIntelligence
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *SyncResult
}

func NewSnapshotSyncService(
	rawRowRepo repository.RawRowRepository,
	snapshotRepo repository.MonthSnapshotRepository,
	intelligenceService intelligence.MarketIntelligence,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:      appConfig.SnapshotSync.CronSchedule,
		MaxConcurrentJobs: appConfig.SnapshotSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.SnapshotSync.Enabled,
		MonthLookBack:     appConfig.SnapshotSync.MonthLookBack,
	}

	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"month_lookback":      syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de snapshots mensais carregada")

	return &SnapshotSyncService{
		scheduler:           gocron.NewScheduler(time.Local),
		config:              syncConfig,
		rawRowRepo:          rawRowRepo,
		snapshotRepo:        snapshotRepo,
		intelligenceService: intelligenceService,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconstrução de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconstrução de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Sync(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("Erro na reconstrução agendada de snapshots")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconstrução de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconstrução de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// Sync reconstrói os snapshots e recarrega o serviço de inteligência
func (s *SnapshotSyncService) Sync(ctx context.Context) (*SyncResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconstrução de snapshots já em andamento, ignorando")
		return nil, ErrSyncInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	// Recarrega antes para enxergar linhas importadas depois da última carga
	if err := s.intelligenceService.Reload(ctx); err != nil {
		return nil, fmt.Errorf("erro ao recarregar linhas brutas: %w", err)
	}

	options, err := s.intelligenceService.GetFilterOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar meses disponíveis: %w", err)
	}

	months := s.monthsToRebuild(options.Months)
	result := &SyncResult{Months: months}

	if len(months) == 0 {
		logrus.Info("Nenhum mês encontrado para reconstrução de snapshots")
		s.finish(result)
		return result, nil
	}

	saved := s.processMonths(ctx, months)
	result.Saved = saved
	result.Failed = len(months) - saved

	if err := s.intelligenceService.Reload(ctx); err != nil {
		return result, fmt.Errorf("erro ao recarregar snapshots reconstruídos: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"months":   len(months),
		"saved":    result.Saved,
		"failed":   result.Failed,
	}).Info("Reconstrução de snapshots concluída")

	s.finish(result)
	return result, nil
}

func (s *SnapshotSyncService) finish(result *SyncResult) {
	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastResult = result
	s.syncMutex.Unlock()
}

// monthsToRebuild mantém os últimos MonthLookBack meses (0 = todos)
func (s *SnapshotSyncService) monthsToRebuild(months []string) []string {
	if s.config.MonthLookBack <= 0 || s.config.MonthLookBack >= len(months) {
		return months
	}
	return months[len(months)-s.config.MonthLookBack:]
}

// processMonths reconstrói cada mês com no máximo MaxConcurrentJobs em paralelo
func (s *SnapshotSyncService) processMonths(ctx context.Context, months []string) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var savedMutex sync.Mutex
	saved := 0

	for _, month := range months {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(month string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.rebuildMonth(ctx, month); err != nil {
				logrus.WithError(err).WithField("month", month).Error("Erro ao reconstruir snapshot mensal")
				return
			}

			savedMutex.Lock()
			saved++
			savedMutex.Unlock()
		}(month)
	}

	wg.Wait()
	return saved
}

func (s *SnapshotSyncService) rebuildMonth(ctx context.Context, month string) error {
	rows, err := s.rawRowRepo.ListRowsByMonths(ctx, []string{month})
	if err != nil {
		return fmt.Errorf("erro ao buscar linhas do mês: %w", err)
	}

	if len(rows) == 0 {
		return fmt.Errorf("nenhuma linha encontrada para o mês %s", month)
	}

	snapshot := analytics.BuildSnapshot(month, rows[0].SortIndex, rows)

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"month":    month,
		"rows":     len(rows),
		"brands":   len(snapshot.Brands),
		"services": snapshot.Totals.Services,
	}).Info("Snapshot mensal salvo com sucesso")

	return nil
}

// TriggerManualSync inicia manualmente uma reconstrução em segundo plano
func (s *SnapshotSyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconstrução de snapshots já em andamento, ignorando solicitação manual")
		return ErrSyncInProgress
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reconstrução manual de snapshots")
	go func() {
		if _, err := s.Sync(context.Background()); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("Erro na reconstrução manual de snapshots")
		}
	}()

	return nil
}

// GetStatus retorna o status atual da reconstrução
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_lookback":         s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
