package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/metrics"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
	"github.com/vfg2006/campaign-metrics-api/pkg/middleware"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

var nowFunc = time.Now

func GetDailyMetrics(service metrics.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, ok := parseMetricsQuery(w, r, logger)
		if !ok {
			return
		}

		daily, err := service.GetDailyMetrics(r.Context(), query)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithField("days", len(daily)).Debug("metrics: daily aggregates computed")
		writeJSON(w, logger, http.StatusOK, daily)
	})
}

func GetCompanyMetrics(service metrics.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, ok := parseMetricsQuery(w, r, logger)
		if !ok {
			return
		}

		companies, err := service.GetCompanyMetrics(r.Context(), query)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithField("companies", len(companies)).Debug("metrics: company aggregates computed")
		writeJSON(w, logger, http.StatusOK, companies)
	})
}

func ListCompanies(service metrics.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		companies, err := service.GetCompanies(r.Context(), claims.Scope())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, companies)
	})
}

func GetDataDateRange(service metrics.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dateRange, err := service.GetDateRange(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, dateRange)
	})
}

func GetSnapshotStats(service metrics.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stats, err := service.GetStats(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, stats)
	})
}

// parseMetricsQuery lê start_date, end_date e company. Sem nenhuma das datas o período é o mês
// corrente até hoje; apenas uma delas é requisição inválida.
func parseMetricsQuery(w http.ResponseWriter, r *http.Request, logger log.Logger) (domain.MetricsQuery, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return domain.MetricsQuery{}, false
	}

	params := r.URL.Query()
	rawStart := strings.TrimSpace(params.Get("start_date"))
	rawEnd := strings.TrimSpace(params.Get("end_date"))

	query := domain.MetricsQuery{
		Company: strings.TrimSpace(params.Get("company")),
		Scope:   claims.Scope(),
	}

	switch {
	case rawStart == "" && rawEnd == "":
		query.StartDay, query.EndDay = utils.CurrentMonthRange(nowFunc())

	case rawStart == "" || rawEnd == "":
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "start_date e end_date devem ser informados juntos", nil)
		return domain.MetricsQuery{}, false

	default:
		startDay, err := utils.ParseDay(rawStart)
		if err != nil {
			logger.WithFields(log.Fields{"start_date": rawStart, "error": err.Error()}).Warn("metrics: invalid start_date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]string{"start_date": rawStart})
			return domain.MetricsQuery{}, false
		}

		endDay, err := utils.ParseDay(rawEnd)
		if err != nil {
			logger.WithFields(log.Fields{"end_date": rawEnd, "error": err.Error()}).Warn("metrics: invalid end_date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]string{"end_date": rawEnd})
			return domain.MetricsQuery{}, false
		}

		query.StartDay, query.EndDay = startDay, endDay
	}

	return query, true
}
