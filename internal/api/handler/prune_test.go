package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/scheduler"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
)

type fakePruner struct {
	result    domain.PruneResult
	err       error
	forced    []bool
	triggered atomic.Int32
	status    scheduler.PruneStatus
}

func (f *fakePruner) Prune(_ context.Context, force bool) (domain.PruneResult, error) {
	f.forced = append(f.forced, force)
	return f.result, f.err
}

func (f *fakePruner) TriggerManualSync() {
	f.triggered.Add(1)
}

func (f *fakePruner) GetStatus() scheduler.PruneStatus {
	return f.status
}

func TestRunSnapshotPrune(t *testing.T) {
	t.Run("sem corpo força a limpeza", func(t *testing.T) {
		pruner := &fakePruner{result: domain.PruneResult{Deleted: 3, Kept: 4}}
		rec := httptest.NewRecorder()

		RunSnapshotPrune(pruner).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/snapshots/prune", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []bool{true}, pruner.forced)
		assert.JSONEq(t, `{"deleted":3,"kept":4,"skipped":false}`, rec.Body.String())
	})

	t.Run("force false respeita o intervalo mínimo", func(t *testing.T) {
		pruner := &fakePruner{result: domain.PruneResult{Skipped: true}}
		rec := httptest.NewRecorder()

		RunSnapshotPrune(pruner).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/snapshots/prune", strings.NewReader(`{"force":false}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []bool{false}, pruner.forced)
		assert.Contains(t, rec.Body.String(), `"skipped":true`)
	})

	t.Run("async dispara em segundo plano", func(t *testing.T) {
		pruner := &fakePruner{}
		rec := httptest.NewRecorder()

		RunSnapshotPrune(pruner).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/snapshots/prune?async=true", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, int32(1), pruner.triggered.Load())
		assert.Empty(t, pruner.forced)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		pruner := &fakePruner{}
		rec := httptest.NewRecorder()

		RunSnapshotPrune(pruner).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/snapshots/prune", strings.NewReader(`{"force":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, pruner.forced)
	})

	t.Run("falha na limpeza", func(t *testing.T) {
		pruner := &fakePruner{err: errors.New("lock timeout")}
		rec := httptest.NewRecorder()

		RunSnapshotPrune(pruner).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/snapshots/prune", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
	})
}

func TestGetSnapshotPruneStatus(t *testing.T) {
	pruner := &fakePruner{status: scheduler.PruneStatus{Enabled: true, CronSchedule: "*/30 * * * *", RetentionCount: 2, MinInterval: "5m0s"}}
	rec := httptest.NewRecorder()

	GetSnapshotPruneStatus(pruner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshots/prune/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"prune_enabled":true`)
	assert.Contains(t, rec.Body.String(), `"retention_count":2`)
	assert.Contains(t, rec.Body.String(), `"last_run_at":null`)
}
