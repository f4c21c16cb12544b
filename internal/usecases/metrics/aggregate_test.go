package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

func reduce(t *testing.T, snapshots ...*domain.MetricSnapshot) map[domain.SnapshotKey]*domain.MetricSnapshot {
	t.Helper()
	result, err := ReduceToAuthoritative(snapshots)
	require.NoError(t, err)
	return result
}

func TestAggregateByCompany_SumThenRatio(t *testing.T) {
	authoritative := reduce(t,
		snapshot(1, "A", "2024-01-06", 10000, 10, 1000),
		snapshot(2, "A", "2024-01-07", 30000, 20, 1000),
	)

	result := AggregateByCompany(authoritative, MapResolver(map[string]string{"A": "Acme"}))

	require.Len(t, result, 1)
	assert.Equal(t, "Acme", result[0].Company)
	assert.Equal(t, 400.0, result[0].TotalSpend)
	assert.InDelta(t, 13.33, result[0].AvgCPC, 0.01)
	assert.NotEqual(t, 12.5, result[0].AvgCPC)
	assert.Equal(t, 2, result[0].DaysWithData)
}

func TestAggregate_DivisionByZeroGuard(t *testing.T) {
	authoritative := reduce(t,
		snapshot(1, "A", "2024-01-06", 5000, 0, 0),
	)

	daily := AggregateByDay(authoritative, nil)
	require.Len(t, daily, 1)
	assert.Equal(t, 0.0, daily[0].AvgCPC)
	assert.Equal(t, 0.0, daily[0].AvgCTR)
	assert.Equal(t, 50.0, daily[0].TotalSpend)

	companies := AggregateByCompany(authoritative, nil)
	require.Len(t, companies, 1)
	assert.Equal(t, 0.0, companies[0].AvgCPC)
	assert.Equal(t, 0.0, companies[0].AvgCTR)
}

func TestAggregateByCompany_FallbackLabel(t *testing.T) {
	authoritative := reduce(t,
		snapshot(1, "act_99", "2024-01-06", 100, 1, 10),
		snapshot(2, "A", "2024-01-06", 100, 1, 10),
	)

	result := AggregateByCompany(authoritative, MapResolver(map[string]string{"A": "Zeta"}))

	require.Len(t, result, 2)
	assert.Equal(t, "Account act_99", result[0].Company)
	assert.Equal(t, "Zeta", result[1].Company)
	assert.Equal(t, domain.DefaultPlatform, result[0].Platform)
}

func TestAggregateByDay_SortedAndCountsCompanies(t *testing.T) {
	authoritative := reduce(t,
		snapshot(1, "A", "2024-01-08", 1000, 10, 100),
		snapshot(2, "B", "2024-01-06", 2000, 20, 200),
		snapshot(3, "C", "2024-01-06", 3000, 30, 300),
		snapshot(4, "A", "2024-01-06", 4000, 40, 400),
	)
	resolver := MapResolver(map[string]string{"A": "Acme", "B": "Acme", "C": "Beta"})

	result := AggregateByDay(authoritative, resolver)

	require.Len(t, result, 2)
	assert.Equal(t, "2024-01-06", result[0].Day)
	assert.Equal(t, "2024-01-08", result[1].Day)

	assert.Equal(t, 90.0, result[0].TotalSpend)
	assert.Equal(t, int64(90), result[0].TotalClicks)
	assert.Equal(t, int64(900), result[0].TotalImpressions)
	assert.Equal(t, 2, result[0].CompanyCount)
	assert.InDelta(t, 1.0, result[0].AvgCPC, 0.0001)
	assert.InDelta(t, 10.0, result[0].AvgCTR, 0.0001)

	assert.Equal(t, 1, result[1].CompanyCount)
}

func TestAggregate_EmptyInput(t *testing.T) {
	assert.Empty(t, AggregateByDay(map[domain.SnapshotKey]*domain.MetricSnapshot{}, nil))
	assert.Empty(t, AggregateByCompany(map[domain.SnapshotKey]*domain.MetricSnapshot{}, nil))
}
