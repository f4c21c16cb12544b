package retention

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

// PrunePlan é o conjunto de IDs a remover, calculado a partir de uma única leitura
type PrunePlan struct {
	DeleteIDs []int64
	Kept      int64
	Groups    int
}

// PlanPrune mantém os retentionCount maiores IDs de cada grupo (conta, dia) e marca o restante
// para remoção. Um grupo nunca fica vazio: retentionCount abaixo de 1 é tratado como 1.
func PlanPrune(refs []domain.SnapshotRef, retentionCount int) (PrunePlan, error) {
	if retentionCount < 1 {
		retentionCount = 1
	}

	seen := make(map[int64]struct{}, len(refs))
	groups := make(map[domain.SnapshotKey][]int64)

	for _, ref := range refs {
		if _, dup := seen[ref.ID]; dup {
			return PrunePlan{}, errors.Wrapf(domain.ErrDuplicateSnapshotID, "id %d", ref.ID)
		}
		seen[ref.ID] = struct{}{}

		key := ref.Key()
		groups[key] = append(groups[key], ref.ID)
	}

	plan := PrunePlan{
		DeleteIDs: make([]int64, 0),
		Groups:    len(groups),
	}

	for _, ids := range groups {
		sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

		if len(ids) <= retentionCount {
			plan.Kept += int64(len(ids))
			continue
		}

		plan.Kept += int64(retentionCount)
		plan.DeleteIDs = append(plan.DeleteIDs, ids[retentionCount:]...)
	}

	sort.Slice(plan.DeleteIDs, func(i, j int) bool { return plan.DeleteIDs[i] < plan.DeleteIDs[j] })

	return plan, nil
}
