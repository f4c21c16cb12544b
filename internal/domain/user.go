package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = 1
	RoleClient = 2
)

// Claims são as informações do usuário carregadas no token de acesso.
// UserCompanies lista as empresas que um usuário não administrador pode ver.
type Claims struct {
	UserID        int      `json:"user_id"`
	UserEmail     string   `json:"email"`
	UserRoleID    int      `json:"role_id"`
	UserCompanies []string `json:"companies"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.UserRoleID == RoleAdmin
}

// Scope converte as claims no escopo de acesso consumido pelo serviço de métricas
func (c *Claims) Scope() AccessScope {
	if c.IsAdmin() {
		return AccessScope{IsAdmin: true}
	}

	companies := make([]string, 0)
	if c != nil {
		companies = append(companies, c.UserCompanies...)
	}

	return AccessScope{AllowedCompanies: companies}
}
