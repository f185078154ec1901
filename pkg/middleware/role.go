package middleware

import (
	"net/http"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/market-intelligence-api/internal/domain"
	"github.com/vfg2006/market-intelligence-api/pkg/apiErrors"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos papéis
// liberados pelo código de acesso
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Painel não liberado", nil)
				return
			}

			if !lo.Contains(allowedRoles, userClaims.Role) {
				logrus.Warningf("Acesso negado para token %s, papel %s", userClaims.ID, userClaims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas com o código de administrador
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin})
}

// AllRoles permite acesso a qualquer painel liberado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleAdmin, domain.RoleViewer})
}
