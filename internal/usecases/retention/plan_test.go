package retention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

func ref(id int64, account, day string) domain.SnapshotRef {
	return domain.SnapshotRef{ID: id, AccountID: account, Day: day}
}

func TestPlanPrune(t *testing.T) {
	tests := []struct {
		name      string
		refs      []domain.SnapshotRef
		retention int
		deleteIDs []int64
		kept      int64
	}{
		{
			name: "Mantém os dois maiores IDs do grupo",
			refs: []domain.SnapshotRef{
				ref(5, "A", "2024-01-10"),
				ref(12, "A", "2024-01-10"),
				ref(7, "A", "2024-01-10"),
				ref(9, "A", "2024-01-10"),
			},
			retention: 2,
			deleteIDs: []int64{5, 7},
			kept:      2,
		},
		{
			name:      "Grupo com uma única linha nunca é removido",
			refs:      []domain.SnapshotRef{ref(3, "A", "2024-01-10")},
			retention: 1,
			deleteIDs: []int64{},
			kept:      1,
		},
		{
			name: "Retenção zero é tratada como um",
			refs: []domain.SnapshotRef{
				ref(1, "A", "2024-01-10"),
				ref(2, "A", "2024-01-10"),
			},
			retention: 0,
			deleteIDs: []int64{1},
			kept:      1,
		},
		{
			name: "Grupos são independentes por conta e dia",
			refs: []domain.SnapshotRef{
				ref(1, "A", "2024-01-10"),
				ref(2, "A", "2024-01-11"),
				ref(3, "B", "2024-01-10"),
				ref(4, "A", "2024-01-10"),
				ref(5, "B", "2024-01-10"),
			},
			retention: 1,
			deleteIDs: []int64{1, 3},
			kept:      3,
		},
		{
			name:      "Tabela vazia",
			refs:      nil,
			retention: 2,
			deleteIDs: []int64{},
			kept:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanPrune(tt.refs, tt.retention)
			require.NoError(t, err)
			assert.Equal(t, tt.deleteIDs, plan.DeleteIDs)
			assert.Equal(t, tt.kept, plan.Kept)
		})
	}
}

func TestPlanPrune_IsIdempotent(t *testing.T) {
	refs := []domain.SnapshotRef{
		ref(5, "A", "2024-01-10"),
		ref(7, "A", "2024-01-10"),
		ref(9, "A", "2024-01-10"),
		ref(12, "A", "2024-01-10"),
		ref(20, "B", "2024-01-10"),
	}

	first, err := PlanPrune(refs, 2)
	require.NoError(t, err)

	deleted := make(map[int64]bool)
	for _, id := range first.DeleteIDs {
		deleted[id] = true
	}

	remaining := make([]domain.SnapshotRef, 0)
	for _, r := range refs {
		if !deleted[r.ID] {
			remaining = append(remaining, r)
		}
	}

	second, err := PlanPrune(remaining, 2)
	require.NoError(t, err)
	assert.Empty(t, second.DeleteIDs)
	assert.Equal(t, first.Kept, second.Kept)
}

func TestPlanPrune_DuplicateID(t *testing.T) {
	refs := []domain.SnapshotRef{
		ref(5, "A", "2024-01-10"),
		ref(5, "B", "2024-01-11"),
	}

	_, err := PlanPrune(refs, 2)
	assert.ErrorIs(t, err, domain.ErrDuplicateSnapshotID)
}
