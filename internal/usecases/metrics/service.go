package metrics

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
	"github.com/vfg2006/campaign-metrics-api/pkg/metric"
)

const (
	defaultQueryTimeout       = 15 * time.Second
	defaultPruneOnReadTimeout = 30 * time.Second
)

type Service struct {
	snapshotRepo repository.MetricSnapshotRepository
	companyRepo  repository.CompanyAccountRepository
	queryTimeout time.Duration
	pruneTimeout time.Duration
	pruner       Pruner
	metrics      *metric.Metrics
}

type Option func(*Service)

// WithPruneOnRead executa uma limpeza não forçada antes de cada leitura de snapshots
func WithPruneOnRead(pruner Pruner) Option {
	return func(s *Service) {
		s.pruner = pruner
	}
}

func WithMetrics(m *metric.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(
	snapshotRepo repository.MetricSnapshotRepository,
	companyRepo repository.CompanyAccountRepository,
	cfg config.Metrics,
	opts ...Option,
) *Service {
	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	pruneTimeout := cfg.PruneOnReadTimeout
	if pruneTimeout <= 0 {
		pruneTimeout = defaultPruneOnReadTimeout
	}

	s := &Service{
		snapshotRepo: snapshotRepo,
		companyRepo:  companyRepo,
		queryTimeout: timeout,
		pruneTimeout: pruneTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) GetDailyMetrics(ctx context.Context, query domain.MetricsQuery) (result []domain.DailyAggregate, err error) {
	defer s.observe(ctx, "daily", time.Now(), &err)

	authoritative, resolver, err := s.loadAuthoritative(ctx, query)
	if err != nil {
		return nil, err
	}

	return AggregateByDay(authoritative, resolver), nil
}

func (s *Service) GetCompanyMetrics(ctx context.Context, query domain.MetricsQuery) (result []domain.CompanyAggregate, err error) {
	defer s.observe(ctx, "companies", time.Now(), &err)

	authoritative, resolver, err := s.loadAuthoritative(ctx, query)
	if err != nil {
		return nil, err
	}

	return AggregateByCompany(authoritative, resolver), nil
}

// GetCompanies lista as empresas visíveis para o escopo. Sem nenhum vínculo cadastrado,
// cada conta com snapshots vira uma empresa sintética "Account <id>".
func (s *Service) GetCompanies(ctx context.Context, scope domain.AccessScope) (result []domain.Company, err error) {
	defer s.observe(ctx, "company_list", time.Now(), &err)

	if !scope.IsAdmin && len(scope.AllowedCompanies) == 0 {
		return []domain.Company{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	mappings, err := s.companyRepo.ListMappings(ctx, true)
	if err != nil {
		return nil, newStoreError(ErrFetchCompanies, err)
	}

	companies := make([]domain.Company, 0)

	if len(mappings) == 0 {
		accountIDs, err := s.snapshotRepo.ListAccountIDs(ctx)
		if err != nil {
			return nil, newStoreError(ErrFetchSnapshots, err)
		}

		for _, accountID := range accountIDs {
			name := domain.FallbackCompanyName(accountID)
			if !scope.Allows(name) {
				continue
			}
			companies = append(companies, domain.Company{
				Name:       name,
				AccountIDs: []string{accountID},
				Platform:   domain.DefaultPlatform,
			})
		}
	} else {
		grouped := lo.GroupBy(mappings, func(m *domain.CompanyAccountMapping) string {
			return m.Company
		})

		for name, group := range grouped {
			if !scope.Allows(name) {
				continue
			}
			companies = append(companies, domain.Company{
				Name: name,
				AccountIDs: lo.Uniq(lo.Map(group, func(m *domain.CompanyAccountMapping, _ int) string {
					return m.AccountID
				})),
				Platform: domain.DefaultPlatform,
			})
		}
	}

	sort.Slice(companies, func(i, j int) bool { return companies[i].Name < companies[j].Name })

	return companies, nil
}

func (s *Service) GetDateRange(ctx context.Context) (result *domain.DataDateRange, err error) {
	defer s.observe(ctx, "date_range", time.Now(), &err)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	dateRange, err := s.snapshotRepo.GetDateRange(ctx)
	if err != nil {
		return nil, newStoreError(ErrFetchSnapshots, err)
	}

	return dateRange, nil
}

func (s *Service) GetStats(ctx context.Context) (result *domain.SnapshotStats, err error) {
	defer s.observe(ctx, "stats", time.Now(), &err)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	stats, err := s.snapshotRepo.GetStats(ctx)
	if err != nil {
		return nil, newStoreError(ErrFetchSnapshots, err)
	}

	return stats, nil
}

// loadAuthoritative resolve o escopo, lê os snapshots do período e reduz cada (conta, dia)
// ao snapshot de maior ID
func (s *Service) loadAuthoritative(ctx context.Context, query domain.MetricsQuery) (map[domain.SnapshotKey]*domain.MetricSnapshot, CompanyResolver, error) {
	empty := map[domain.SnapshotKey]*domain.MetricSnapshot{}

	if query.StartDay.After(query.EndDay) {
		return nil, nil, NewMetricsError(ErrInvalidDateRange, apiErrors.ErrInvalidDateRange,
			domain.FormatDay(query.StartDay)+" > "+domain.FormatDay(query.EndDay))
	}

	if query.Company != "" && !query.Scope.Allows(query.Company) {
		return nil, nil, NewMetricsError(ErrCompanyAccessDenied, apiErrors.ErrInsufficientPrivilege, query.Company)
	}

	if query.Company == "" && !query.Scope.IsAdmin && len(query.Scope.AllowedCompanies) == 0 {
		return empty, nil, nil
	}

	accountIDs, err := s.resolveAccounts(ctx, query)
	if err != nil {
		return nil, nil, newStoreError(ErrFetchCompanies, err)
	}

	if accountIDs != nil && len(accountIDs) == 0 {
		return empty, nil, nil
	}

	// a limpeza tem prazo próprio; o prazo da consulta só começa depois dela
	s.pruneBeforeRead(ctx)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	snapshots, err := s.snapshotRepo.FetchSnapshots(ctx, query.StartDay, query.EndDay, accountIDs)
	if err != nil {
		return nil, nil, newStoreError(ErrFetchSnapshots, err)
	}

	authoritative, err := ReduceToAuthoritative(snapshots)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Snapshots com ID duplicado encontrados no armazenamento")
		return nil, nil, newStoreError(ErrFetchSnapshots, err)
	}

	if len(authoritative) == 0 {
		return authoritative, nil, nil
	}

	companyByAccount, err := s.companyRepo.AccountCompanyMap(ctx)
	if err != nil {
		return nil, nil, newStoreError(ErrFetchCompanies, err)
	}

	return authoritative, MapResolver(companyByAccount), nil
}

// resolveAccounts devolve nil quando não há restrição de conta (admin sem filtro)
func (s *Service) resolveAccounts(ctx context.Context, query domain.MetricsQuery) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	switch {
	case query.Company != "":
		accountIDs, err := s.companyRepo.AccountsByCompanies(ctx, []string{query.Company})
		if err != nil {
			return nil, err
		}
		return nonNil(lo.Uniq(accountIDs)), nil

	case !query.Scope.IsAdmin:
		accountIDs, err := s.companyRepo.AccountsByCompanies(ctx, lo.Uniq(query.Scope.AllowedCompanies))
		if err != nil {
			return nil, err
		}
		return nonNil(lo.Uniq(accountIDs)), nil

	default:
		return nil, nil
	}
}

func (s *Service) pruneBeforeRead(ctx context.Context) {
	if s.pruner == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.pruneTimeout)
	defer cancel()

	if _, err := s.pruner.Prune(ctx, false); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Falha na limpeza antes da leitura, seguindo com a consulta")
	}
}

func (s *Service) observe(ctx context.Context, operation string, start time.Time, errp *error) {
	s.metrics.ObserveQuery(operation, start)

	if errp == nil || *errp == nil {
		return
	}

	code := apiErrors.ErrInternalServer
	var metricsErr *MetricsError
	if errors.As(*errp, &metricsErr) {
		code = metricsErr.Code
	}

	s.metrics.QueryFailed(operation, code)
	log.ForContext(ctx).WithField("error", (*errp).Error()).Debugf("Consulta %s falhou com código %s", operation, code)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
