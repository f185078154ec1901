package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/market-intelligence-api/internal/usecases/intelligence"
	"github.com/vfg2006/market-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/market-intelligence-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta com o status informado
func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// handleIntelligenceError traduz os erros do serviço de inteligência para a resposta padronizada
func handleIntelligenceError(w http.ResponseWriter, r *http.Request, err error) {
	var intelErr *intelligence.IntelligenceError
	if errors.As(err, &intelErr) {
		var details map[string]any
		if intelErr.Month != "" {
			details = map[string]any{"month": intelErr.Month}
		}

		logger := log.ForContext(r.Context()).WithError(err).WithField("month", intelErr.Month)
		if intelligence.IsValidationError(err) || errors.Is(err, intelligence.ErrSnapshotNotFound) {
			logger.Warn("Requisição de inteligência rejeitada")
		} else {
			logger.Error("Erro no serviço de inteligência")
		}

		apiErrors.WriteError(w, intelErr.Code, intelErr.Error(), details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no serviço de inteligência")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar a consulta", nil)
}
