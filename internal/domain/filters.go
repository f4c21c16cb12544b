package domain

import "time"

// AccessScope é o conjunto de empresas visíveis para quem faz a requisição.
// Para administradores AllowedCompanies é ignorado.
type AccessScope struct {
	IsAdmin          bool
	AllowedCompanies []string
}

func (s AccessScope) Allows(company string) bool {
	if s.IsAdmin {
		return true
	}

	for _, allowed := range s.AllowedCompanies {
		if allowed == company {
			return true
		}
	}
	return false
}

// MetricsQuery são os filtros de uma consulta de métricas.
// StartDay e EndDay são inclusivos. Company vazio significa todas as empresas visíveis.
type MetricsQuery struct {
	StartDay time.Time
	EndDay   time.Time
	Company  string
	Scope    AccessScope
}
