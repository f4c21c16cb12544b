package middleware

import (
	"net/http"

	"github.com/samber/lo"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

// RequireRoles libera a rota apenas para as claims cujo role está em roles.
// Deve ser aplicado depois do AuthMiddleware.
func RequireRoles(roles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logger.Warn("Rota protegida acessada sem claims no contexto")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !lo.Contains(roles, claims.UserRoleID) {
				logger.WithFields(log.Fields{
					"email":   claims.UserEmail,
					"role_id": claims.UserRoleID,
					"path":    r.URL.Path,
				}).Warn("Acesso negado por role")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly protege as rotas de operação (vínculos e limpeza)
func AdminOnly() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin)
}

// AllRoles protege as rotas de leitura de métricas; o escopo por empresa é aplicado no serviço
func AllRoles() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleClient)
}
