package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func snapshot(id int64, account, d string, spendCents, clicks, impressions int64) *domain.MetricSnapshot {
	return &domain.MetricSnapshot{
		ID:          id,
		AccountID:   account,
		Day:         day(d),
		SpendCents:  spendCents,
		Clicks:      clicks,
		Impressions: impressions,
	}
}

func TestReduceToAuthoritative_MaxIDWins(t *testing.T) {
	snapshots := []*domain.MetricSnapshot{
		snapshot(9, "A", "2024-01-06", 100, 1, 10),
		snapshot(3, "A", "2024-01-06", 200, 2, 20),
		snapshot(12, "A", "2024-01-06", 300, 3, 30),
		snapshot(4, "B", "2024-01-06", 400, 4, 40),
		snapshot(5, "A", "2024-01-07", 500, 5, 50),
	}

	result, err := ReduceToAuthoritative(snapshots)
	require.NoError(t, err)

	require.Len(t, result, 3)
	assert.Equal(t, int64(12), result[domain.SnapshotKey{AccountID: "A", Day: "2024-01-06"}].ID)
	assert.Equal(t, int64(4), result[domain.SnapshotKey{AccountID: "B", Day: "2024-01-06"}].ID)
	assert.Equal(t, int64(5), result[domain.SnapshotKey{AccountID: "A", Day: "2024-01-07"}].ID)
}

func TestReduceToAuthoritative_IsIdempotent(t *testing.T) {
	snapshots := []*domain.MetricSnapshot{
		snapshot(1, "A", "2024-01-06", 15050, 45, 1200),
		snapshot(2, "A", "2024-01-06", 18075, 52, 1350),
		snapshot(3, "A", "2024-01-07", 22025, 65, 1600),
	}

	first, err := ReduceToAuthoritative(snapshots)
	require.NoError(t, err)

	again := make([]*domain.MetricSnapshot, 0, len(first))
	for _, s := range first {
		again = append(again, s)
	}

	second, err := ReduceToAuthoritative(again)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReduceToAuthoritative_InputOrderDoesNotMatter(t *testing.T) {
	forward := []*domain.MetricSnapshot{
		snapshot(1, "A", "2024-01-06", 100, 1, 10),
		snapshot(2, "A", "2024-01-06", 200, 2, 20),
	}
	backward := []*domain.MetricSnapshot{forward[1], forward[0]}

	a, err := ReduceToAuthoritative(forward)
	require.NoError(t, err)
	b, err := ReduceToAuthoritative(backward)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestReduceToAuthoritative_EmptyInput(t *testing.T) {
	result, err := ReduceToAuthoritative(nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestReduceToAuthoritative_DuplicateID(t *testing.T) {
	snapshots := []*domain.MetricSnapshot{
		snapshot(7, "A", "2024-01-06", 100, 1, 10),
		snapshot(7, "A", "2024-01-06", 200, 2, 20),
	}

	_, err := ReduceToAuthoritative(snapshots)
	assert.ErrorIs(t, err, domain.ErrDuplicateSnapshotID)
}
