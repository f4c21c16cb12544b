package metrics

import (
	"context"

	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

type MetricsService interface {
	GetDailyMetrics(ctx context.Context, query domain.MetricsQuery) ([]domain.DailyAggregate, error)
	GetCompanyMetrics(ctx context.Context, query domain.MetricsQuery) ([]domain.CompanyAggregate, error)
	GetCompanies(ctx context.Context, scope domain.AccessScope) ([]domain.Company, error)
	GetDateRange(ctx context.Context) (*domain.DataDateRange, error)
	GetStats(ctx context.Context) (*domain.SnapshotStats, error)
}

// Pruner é a limpeza debounced executada antes das leituras quando habilitada
type Pruner interface {
	Prune(ctx context.Context, force bool) (domain.PruneResult, error)
}
