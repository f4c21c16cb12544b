package retention

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

var ErrInvalidRetentionCount = errors.New("retention count must be at least 1")

const defaultBatchSize = 100

type Service struct {
	snapshotRepo repository.MetricSnapshotRepository
	batchSize    int
	batchPause   time.Duration
}

func NewService(snapshotRepo repository.MetricSnapshotRepository, cfg config.SnapshotPrune) *Service {
	batchSize := cfg.BatchSize
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}

	return &Service{
		snapshotRepo: snapshotRepo,
		batchSize:    batchSize,
		batchPause:   cfg.BatchPause,
	}
}

// PruneSuperseded remove os snapshots substituídos mantendo os retentionCount mais recentes de
// cada (conta, dia). O conjunto removido vem de uma única leitura e é apagado por ID explícito,
// então linhas inseridas durante a execução nunca são removidas.
func (s *Service) PruneSuperseded(ctx context.Context, retentionCount int) (domain.PruneResult, error) {
	logger := log.ForContext(ctx)

	if retentionCount < 1 {
		return domain.PruneResult{}, ErrInvalidRetentionCount
	}

	refs, err := s.snapshotRepo.ListSnapshotRefs(ctx)
	if err != nil {
		return domain.PruneResult{}, errors.Wrap(err, "erro ao listar snapshots para limpeza")
	}

	plan, err := PlanPrune(refs, retentionCount)
	if err != nil {
		return domain.PruneResult{}, err
	}

	result := domain.PruneResult{Kept: plan.Kept}

	if len(plan.DeleteIDs) == 0 {
		logger.Infof("Nenhum snapshot substituído encontrado (%d grupos)", plan.Groups)
		return result, nil
	}

	logger.Infof("Removendo %d snapshots substituídos de %d grupos", len(plan.DeleteIDs), plan.Groups)

	batches := lo.Chunk(plan.DeleteIDs, s.batchSize)
	for i, batch := range batches {
		deleted, err := s.snapshotRepo.DeleteByIDs(ctx, batch)
		if err != nil {
			return result, errors.Wrapf(err, "erro ao remover lote %d de %d", i+1, len(batches))
		}

		result.Deleted += deleted
		logger.Debugf("Lote %d/%d: %d snapshots removidos", i+1, len(batches), deleted)

		if i < len(batches)-1 && s.batchPause > 0 {
			select {
			case <-ctx.Done():
				return result, errors.Wrap(ctx.Err(), "limpeza interrompida")
			case <-time.After(s.batchPause):
			}
		}
	}

	logger.Infof("Limpeza concluída: %d removidos, %d mantidos", result.Deleted, result.Kept)

	return result, nil
}
