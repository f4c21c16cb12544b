package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/companies"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/metrics"
	"github.com/vfg2006/campaign-metrics-api/pkg/metric"
	"github.com/vfg2006/campaign-metrics-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{Path: "/healthcheck", Method: http.MethodGet, Handler: HealthcheckHandler(db)},
	}
}

func Prometheus(m *metric.Metrics) []router.Route {
	return []router.Route{
		{Path: "/metrics", Method: http.MethodGet, Handler: m.Handler()},
	}
}

// Metrics expõe as leituras para admins e clientes; o escopo por empresa fica no serviço
func Metrics(service metrics.MetricsService) []router.Route {
	return router.Guarded(middleware.AllRoles(),
		router.Route{Path: "/v1/metrics/daily", Method: http.MethodGet, Handler: GetDailyMetrics(service)},
		router.Route{Path: "/v1/metrics/companies", Method: http.MethodGet, Handler: GetCompanyMetrics(service)},
		router.Route{Path: "/v1/metrics/date-range", Method: http.MethodGet, Handler: GetDataDateRange(service)},
		router.Route{Path: "/v1/metrics/status", Method: http.MethodGet, Handler: GetSnapshotStats(service)},
		router.Route{Path: "/v1/companies", Method: http.MethodGet, Handler: ListCompanies(service)},
	)
}

func CompanyMappings(service companies.CompanyService) []router.Route {
	return router.Guarded(middleware.AdminOnly(),
		router.Route{Path: "/v1/companies/mappings", Method: http.MethodGet, Handler: ListCompanyMappings(service)},
		router.Route{Path: "/v1/companies/mappings", Method: http.MethodPost, Handler: CreateCompanyMapping(service)},
		router.Route{Path: "/v1/companies/mappings/:id", Method: http.MethodDelete, Handler: DeleteCompanyMapping(service)},
	)
}

func SnapshotPrune(pruner SnapshotPruner) []router.Route {
	return router.Guarded(middleware.AdminOnly(),
		router.Route{Path: "/v1/snapshots/prune", Method: http.MethodPost, Handler: RunSnapshotPrune(pruner)},
		router.Route{Path: "/v1/snapshots/prune/status", Method: http.MethodGet, Handler: GetSnapshotPruneStatus(pruner)},
	)
}
