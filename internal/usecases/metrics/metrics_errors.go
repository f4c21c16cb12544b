package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
)

// Erros específicos para o contexto de métricas
var (
	// Erros de validação
	ErrInvalidDateRange = errors.New("start date is after end date")

	// Erros de acesso
	ErrCompanyAccessDenied = errors.New("company not allowed for this user")

	// Erros de integridade
	ErrDuplicateSnapshotID = domain.ErrDuplicateSnapshotID

	// Erros de banco de dados
	ErrFetchSnapshots = errors.New("error fetching metric snapshots")
	ErrFetchCompanies = errors.New("error fetching company mappings")
)

// MetricsError é um erro com contexto adicional para consultas de métricas
type MetricsError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *MetricsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *MetricsError) Unwrap() error {
	return e.Err
}

// NewMetricsError cria um novo MetricsError
func NewMetricsError(err error, code string, details string) *MetricsError {
	return &MetricsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func newStoreError(base error, cause error) *MetricsError {
	if errors.Is(cause, domain.ErrDuplicateSnapshotID) {
		return NewMetricsError(ErrDuplicateSnapshotID, apiErrors.ErrDataIntegrity, cause.Error())
	}
	if errors.Is(cause, context.DeadlineExceeded) {
		return NewMetricsError(fmt.Errorf("%w: %w", base, cause), apiErrors.ErrTimeout, "tempo limite da consulta excedido")
	}
	return NewMetricsError(fmt.Errorf("%w: %w", base, cause), apiErrors.ErrDatabaseOperation, cause.Error())
}
