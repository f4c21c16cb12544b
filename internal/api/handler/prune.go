package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/scheduler"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

// SnapshotPruner é a parte do agendador de limpeza usada pelos endpoints de operação
type SnapshotPruner interface {
	Prune(ctx context.Context, force bool) (domain.PruneResult, error)
	TriggerManualSync()
	GetStatus() scheduler.PruneStatus
}

type pruneRequest struct {
	Force *bool `json:"force"`
}

// RunSnapshotPrune executa a limpeza de forma síncrona. force é true quando omitido.
// Com ?async=true a limpeza forçada roda em segundo plano e a resposta é 202.
func RunSnapshotPrune(pruner SnapshotPruner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunSnapshotPrune")

		if r.URL.Query().Get("async") == "true" {
			pruner.TriggerManualSync()
			writeJSON(w, logger, http.StatusAccepted, map[string]any{
				"message": "Limpeza de snapshots iniciada com sucesso",
			})
			return
		}

		var req pruneRequest
		if r.Body != nil {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
				return
			}
		}

		force := true
		if req.Force != nil {
			force = *req.Force
		}

		result, err := pruner.Prune(r.Context(), force)
		if err != nil {
			logger.WithError(err).Error("Erro na limpeza manual de snapshots")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao limpar snapshots", nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, result)
	})
}

func GetSnapshotPruneStatus(pruner SnapshotPruner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, pruner.GetStatus())
	})
}
