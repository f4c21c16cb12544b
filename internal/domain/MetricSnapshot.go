package domain

import (
	"time"
)

// MetricSnapshot representa uma linha da tabela metric_snapshots, anexada pelo ingestor externo.
// O ID é o único sinal confiável de "mais recente" dentro de um grupo (conta, dia).
type MetricSnapshot struct {
	ID          int64     `json:"id"`
	AccountID   string    `json:"ad_account_id"`
	Day         time.Time `json:"date_start"`
	SpendCents  int64     `json:"spend"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	CPC         float64   `json:"cpc"`
	CTR         float64   `json:"ctr"`
	CreatedAt   time.Time `json:"created_at"`
}

// SnapshotKey identifica o grupo (conta, dia) de um snapshot
type SnapshotKey struct {
	AccountID string
	Day       string
}

// DayKey retorna o dia no formato canônico YYYY-MM-DD
func (s *MetricSnapshot) DayKey() string {
	return FormatDay(s.Day)
}

// Key retorna a chave de agrupamento (conta, dia) do snapshot
func (s *MetricSnapshot) Key() SnapshotKey {
	return SnapshotKey{AccountID: s.AccountID, Day: s.DayKey()}
}

// SnapshotRef é a projeção mínima de um snapshot usada pela rotina de retenção
type SnapshotRef struct {
	ID        int64
	AccountID string
	Day       string
}

func (r SnapshotRef) Key() SnapshotKey {
	return SnapshotKey{AccountID: r.AccountID, Day: r.Day}
}

// SnapshotStats resume o conteúdo da tabela de snapshots
type SnapshotStats struct {
	TotalSnapshots   int64      `json:"total_snapshots"`
	DistinctAccounts int64      `json:"distinct_accounts"`
	LastDay          *string    `json:"last_day"`
	LastInsertedAt   *time.Time `json:"last_inserted_at"`
	HasData          bool       `json:"has_data"`
}

// DataDateRange é o intervalo de dias com dados disponíveis
type DataDateRange struct {
	StartDay string `json:"start_date"`
	EndDay   string `json:"end_date"`
	HasData  bool   `json:"has_data"`
}

// PruneResult é o resultado de uma execução da limpeza de snapshots substituídos
type PruneResult struct {
	Deleted int64 `json:"deleted"`
	Kept    int64 `json:"kept"`
	Skipped bool  `json:"skipped"`
}
