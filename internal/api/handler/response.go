package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/companies"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/metrics"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("falha ao serializar resposta")
	}
}

// writeServiceError traduz os erros tipados dos casos de uso para o formato da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var metricsErr *metrics.MetricsError
	if errors.As(err, &metricsErr) {
		if apiErrors.StatusFor(metricsErr.Code) >= http.StatusInternalServerError {
			logger.WithError(err).Error("erro ao consultar métricas")
			apiErrors.WriteError(w, metricsErr.Code, metricsErr.Err.Error(), nil)
			return
		}
		apiErrors.WriteError(w, metricsErr.Code, metricsErr.Err.Error(), metricsErr.Details)
		return
	}

	var companyErr *companies.CompanyError
	if errors.As(err, &companyErr) {
		if apiErrors.StatusFor(companyErr.Code) >= http.StatusInternalServerError {
			logger.WithError(err).Error("erro ao gerenciar vínculos de empresa")
		}
		apiErrors.WriteError(w, companyErr.Code, companyErr.Error(), nil)
		return
	}

	logger.WithError(err).Error("erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}
