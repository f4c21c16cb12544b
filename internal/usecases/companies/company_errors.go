package companies

import (
	"errors"
	"fmt"
)

var (
	ErrCompanyRequired   = errors.New("company is required")
	ErrAccountIDRequired = errors.New("ad account ID is required")
	ErrMappingNotFound   = errors.New("mapping not found")
	ErrMappingConflict   = errors.New("ad account already mapped to another company")
	ErrDatabaseOperation = errors.New("database operation error")
)

// CompanyError é um erro com contexto adicional para vínculos empresa/conta
type CompanyError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *CompanyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CompanyError) Unwrap() error {
	return e.Err
}

func NewCompanyError(err error, code string, details string) *CompanyError {
	return &CompanyError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
