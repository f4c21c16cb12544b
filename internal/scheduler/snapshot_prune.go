package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
	"github.com/vfg2006/campaign-metrics-api/pkg/metric"
)

// SnapshotPruner remove snapshots substituídos mantendo retentionCount por (conta, dia)
type SnapshotPruner interface {
	PruneSuperseded(ctx context.Context, retentionCount int) (domain.PruneResult, error)
}

// Locker é a trava compartilhada entre réplicas da API
type Locker interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
	Extend(ctx context.Context, ttl time.Duration) (bool, error)
}

// SnapshotPruneConfig representa a configuração da limpeza agendada
type SnapshotPruneConfig struct {
	CronSchedule   string
	RetentionCount int
	MinInterval    time.Duration
	LockTTL        time.Duration
	Enabled        bool
}

// PruneStatus é o estado exposto pelo endpoint de operação
type PruneStatus struct {
	Enabled         bool                `json:"prune_enabled"`
	CronSchedule    string              `json:"prune_cron"`
	RetentionCount  int                 `json:"retention_count"`
	MinInterval     string              `json:"min_interval"`
	DistributedLock bool                `json:"distributed_lock"`
	Running         bool                `json:"running"`
	LastRunAt       *time.Time          `json:"last_run_at"`
	LastResult      *domain.PruneResult `json:"last_result,omitempty"`
	LastError       string              `json:"last_error,omitempty"`
}

// SnapshotPruneService agenda e serializa a limpeza de snapshots. O debounce (lastRunAt e
// intervalo mínimo) pertence a esta instância.
type SnapshotPruneService struct {
	scheduler *gocron.Scheduler
	config    SnapshotPruneConfig
	pruner    SnapshotPruner
	locker    Locker
	metrics   *metric.Metrics
	now       func() time.Time

	mutex      sync.Mutex
	running    bool
	lastRunAt  time.Time
	lastResult *domain.PruneResult
	lastError  string
}

type PruneOption func(*SnapshotPruneService)

// WithLocker habilita a trava distribuída
func WithLocker(locker Locker) PruneOption {
	return func(s *SnapshotPruneService) {
		s.locker = locker
	}
}

func WithMetrics(m *metric.Metrics) PruneOption {
	return func(s *SnapshotPruneService) {
		s.metrics = m
	}
}

// WithClock substitui o relógio usado no debounce
func WithClock(now func() time.Time) PruneOption {
	return func(s *SnapshotPruneService) {
		s.now = now
	}
}

func NewSnapshotPruneService(pruner SnapshotPruner, appConfig config.SnapshotPrune, opts ...PruneOption) *SnapshotPruneService {
	pruneConfig := SnapshotPruneConfig{
		CronSchedule:   appConfig.CronSchedule,
		RetentionCount: appConfig.RetentionCount,
		MinInterval:    appConfig.MinInterval,
		LockTTL:        appConfig.LockTTL,
		Enabled:        appConfig.Enabled,
	}

	s := &SnapshotPruneService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    pruneConfig,
		pruner:    pruner,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    pruneConfig.CronSchedule,
		"retention_count":  pruneConfig.RetentionCount,
		"min_interval":     pruneConfig.MinInterval.String(),
		"prune_enabled":    pruneConfig.Enabled,
		"distributed_lock": s.locker != nil,
	}).Info("Configuração da limpeza de snapshots carregada")

	return s
}

// Start inicia o agendador
func (s *SnapshotPruneService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Prune(ctx, false); err != nil {
			logrus.WithError(err).Error("Erro na limpeza agendada de snapshots")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// Prune executa a limpeza. Retorna Skipped=true quando outra execução está em andamento,
// quando a trava distribuída pertence a outra réplica ou, sem force, quando a última
// execução terminou há menos de MinInterval.
func (s *SnapshotPruneService) Prune(ctx context.Context, force bool) (domain.PruneResult, error) {
	logger := log.ForContext(ctx)
	startTime := s.now()

	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logger.Info("Limpeza de snapshots já em andamento, ignorando")
		s.metrics.PruneFinished("skipped", 0, startTime)
		return domain.PruneResult{Skipped: true}, nil
	}

	if !force && !s.lastRunAt.IsZero() && startTime.Sub(s.lastRunAt) < s.config.MinInterval {
		s.mutex.Unlock()
		logger.Debugf("Última limpeza em %s, intervalo mínimo de %s não atingido", s.lastRunAt.Format(time.RFC3339), s.config.MinInterval)
		s.metrics.PruneFinished("skipped", 0, startTime)
		return domain.PruneResult{Skipped: true}, nil
	}

	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	if s.locker != nil {
		acquired, err := s.locker.Acquire(ctx)
		if err != nil {
			s.finish(domain.PruneResult{}, err, startTime)
			return domain.PruneResult{}, err
		}

		if !acquired {
			logger.Info("Limpeza de snapshots em andamento em outra instância, ignorando")
			s.metrics.PruneFinished("skipped", 0, startTime)
			return domain.PruneResult{Skipped: true}, nil
		}

		defer func() {
			if err := s.locker.Release(context.WithoutCancel(ctx)); err != nil {
				logger.WithError(err).Warn("Erro ao liberar trava da limpeza de snapshots")
			}
		}()

		stopRenewal := s.renewLock(ctx, logger)
		defer stopRenewal()
	}

	logger.Infof("Iniciando limpeza de snapshots (retenção %d, forçada: %t)", s.config.RetentionCount, force)

	result, err := s.pruner.PruneSuperseded(ctx, s.config.RetentionCount)
	s.finish(result, err, startTime)

	return result, err
}

// renewLock estende a trava a cada TTL/3 enquanto a limpeza roda. A função retornada para a
// renovação e só retorna depois que a goroutine terminou.
func (s *SnapshotPruneService) renewLock(ctx context.Context, logger log.Logger) func() {
	ttl := s.config.LockTTL
	if ttl <= 0 {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(ttl / 3)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				extended, err := s.locker.Extend(ctx, ttl)
				if err != nil {
					logger.WithError(err).Warn("Erro ao renovar trava da limpeza de snapshots")
					continue
				}
				if !extended {
					logger.Warn("Trava da limpeza de snapshots perdida durante a execução")
					return
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func (s *SnapshotPruneService) finish(result domain.PruneResult, err error, startTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err != nil {
		s.lastError = err.Error()
		s.metrics.PruneFinished("failed", 0, startTime)
		return
	}

	s.lastRunAt = s.now()
	s.lastResult = &result
	s.lastError = ""
	s.metrics.PruneFinished("completed", result.Deleted, startTime)
}

// TriggerManualSync dispara uma limpeza forçada em segundo plano
func (s *SnapshotPruneService) TriggerManualSync() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Limpeza de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.mutex.Unlock()

	logrus.Info("Iniciando limpeza manual de snapshots")
	go func() {
		if _, err := s.Prune(context.Background(), true); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual de snapshots")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotPruneService) GetStatus() PruneStatus {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	status := PruneStatus{
		Enabled:         s.config.Enabled,
		CronSchedule:    s.config.CronSchedule,
		RetentionCount:  s.config.RetentionCount,
		MinInterval:     s.config.MinInterval.String(),
		DistributedLock: s.locker != nil,
		Running:         s.running,
		LastResult:      s.lastResult,
		LastError:       s.lastError,
	}

	if !s.lastRunAt.IsZero() {
		lastRunAt := s.lastRunAt
		status.LastRunAt = &lastRunAt
	}

	return status
}
