package metrics

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

// ReduceToAuthoritative mantém, para cada (conta, dia), o snapshot de maior ID.
// Dois snapshots com o mesmo ID indicam corrupção e nunca são desempatados.
func ReduceToAuthoritative(snapshots []*domain.MetricSnapshot) (map[domain.SnapshotKey]*domain.MetricSnapshot, error) {
	authoritative := make(map[domain.SnapshotKey]*domain.MetricSnapshot, len(snapshots))
	seen := make(map[int64]struct{}, len(snapshots))

	for _, snapshot := range snapshots {
		if snapshot == nil {
			continue
		}

		if _, dup := seen[snapshot.ID]; dup {
			return nil, errors.Wrapf(domain.ErrDuplicateSnapshotID, "id %d", snapshot.ID)
		}
		seen[snapshot.ID] = struct{}{}

		key := snapshot.Key()
		current, ok := authoritative[key]
		if !ok || snapshot.ID > current.ID {
			authoritative[key] = snapshot
		}
	}

	return authoritative, nil
}
