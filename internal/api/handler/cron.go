package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/market-intelligence-api/internal/scheduler"
	"github.com/vfg2006/market-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/market-intelligence-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshots = "snapshots"
	CronJobTypeAll       = "all"
)

// SnapshotSyncer é a parte do agendador usada pelas rotas de cron
type SnapshotSyncer interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

var _ SnapshotSyncer = (*scheduler.SnapshotSyncService)(nil)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SnapshotSyncService SnapshotSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithComponent("cron")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshots, CronJobTypeAll:
			if services.SnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reconstrução de snapshots não disponível", nil)
				return
			}

			if err := services.SnapshotSyncService.TriggerManualSync(); err != nil {
				if errors.Is(err, scheduler.ErrSyncInProgress) {
					apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, err.Error(), nil)
					return
				}
				logger.WithError(err).Error("Erro ao iniciar reconstrução de snapshots")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar cron job", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshots, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("Cron job iniciada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SnapshotSyncService != nil {
			status[CronJobTypeSnapshots] = services.SnapshotSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
