package metrics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

// CompanyResolver devolve a empresa de uma conta e se ela está mapeada
type CompanyResolver func(accountID string) (string, bool)

// MapResolver cria um CompanyResolver a partir do mapa conta -> empresa
func MapResolver(companyByAccount map[string]string) CompanyResolver {
	return func(accountID string) (string, bool) {
		company, ok := companyByAccount[accountID]
		return company, ok
	}
}

func resolveCompany(resolver CompanyResolver, accountID string) string {
	if resolver != nil {
		if company, ok := resolver(accountID); ok && company != "" {
			return company
		}
	}
	return domain.FallbackCompanyName(accountID)
}

// totals acumula somas de um grupo. Os ratios são calculados apenas no final.
type totals struct {
	spend       decimal.Decimal
	clicks      int64
	impressions int64
}

func (t *totals) add(snapshot *domain.MetricSnapshot) {
	t.spend = t.spend.Add(domain.CentsToCurrency(snapshot.SpendCents))
	t.clicks += snapshot.Clicks
	t.impressions += snapshot.Impressions
}

func (t *totals) cpc() float64 {
	if t.clicks == 0 {
		return 0
	}
	return t.spend.Div(decimal.NewFromInt(t.clicks)).InexactFloat64()
}

func (t *totals) ctr() float64 {
	if t.impressions == 0 {
		return 0
	}
	return float64(t.clicks) / float64(t.impressions) * 100
}

// AggregateByDay soma os snapshots autoritativos por dia, em ordem crescente de dia
func AggregateByDay(authoritative map[domain.SnapshotKey]*domain.MetricSnapshot, resolver CompanyResolver) []domain.DailyAggregate {
	type dayGroup struct {
		totals
		companies map[string]struct{}
	}

	groups := make(map[string]*dayGroup)
	for key, snapshot := range authoritative {
		group, ok := groups[key.Day]
		if !ok {
			group = &dayGroup{companies: make(map[string]struct{})}
			groups[key.Day] = group
		}

		group.add(snapshot)
		group.companies[resolveCompany(resolver, snapshot.AccountID)] = struct{}{}
	}

	result := make([]domain.DailyAggregate, 0, len(groups))
	for day, group := range groups {
		result = append(result, domain.DailyAggregate{
			Day:              day,
			TotalSpend:       group.spend.InexactFloat64(),
			TotalClicks:      group.clicks,
			TotalImpressions: group.impressions,
			AvgCPC:           group.cpc(),
			AvgCTR:           group.ctr(),
			CompanyCount:     len(group.companies),
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Day < result[j].Day })

	return result
}

// AggregateByCompany soma os snapshots autoritativos por empresa, em ordem crescente de nome.
// Contas sem empresa aparecem como "Account <id>".
func AggregateByCompany(authoritative map[domain.SnapshotKey]*domain.MetricSnapshot, resolver CompanyResolver) []domain.CompanyAggregate {
	type companyGroup struct {
		totals
		days map[string]struct{}
	}

	groups := make(map[string]*companyGroup)
	for key, snapshot := range authoritative {
		company := resolveCompany(resolver, snapshot.AccountID)

		group, ok := groups[company]
		if !ok {
			group = &companyGroup{days: make(map[string]struct{})}
			groups[company] = group
		}

		group.add(snapshot)
		group.days[key.Day] = struct{}{}
	}

	result := make([]domain.CompanyAggregate, 0, len(groups))
	for company, group := range groups {
		result = append(result, domain.CompanyAggregate{
			Company:          company,
			TotalSpend:       group.spend.InexactFloat64(),
			TotalClicks:      group.clicks,
			TotalImpressions: group.impressions,
			AvgCPC:           group.cpc(),
			AvgCTR:           group.ctr(),
			DaysWithData:     len(group.days),
			Platform:         domain.DefaultPlatform,
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Company < result[j].Company })

	return result
}
