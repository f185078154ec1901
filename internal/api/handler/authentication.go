package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/market-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/market-intelligence-api/pkg/log"
)

// Unlock troca o código de acesso por um token JWT
func Unlock(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UnlockRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		response, err := service.Unlock(req.AccessCode)
		if err != nil {
			handleUnlockError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

// handleUnlockError trata erros específicos da liberação e retorna a resposta apropriada
func handleUnlockError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("Falha ao liberar painel")

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Código de acesso inválido", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao liberar painel", nil)
	}
}
