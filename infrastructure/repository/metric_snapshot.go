package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

const (
	metricSnapshotsTable = "metric_snapshots ms"
	snapshotColumns      = "ms.id, ms.ad_account_id, ms.date_start, ms.spend, ms.impressions, ms.clicks, ms.cpc, ms.ctr, ms.created_at"
)

//go:generate mockgen -source=metric_snapshot.go -destination=mocks/metric_snapshot_mock.go -package=mocks
type MetricSnapshotRepository interface {
	// FetchSnapshots retorna os snapshots brutos entre startDay e endDay (inclusivos).
	// accountIDs nil significa sem restrição de conta.
	FetchSnapshots(ctx context.Context, startDay, endDay time.Time, accountIDs []string) ([]*domain.MetricSnapshot, error)
	ListSnapshotRefs(ctx context.Context) ([]domain.SnapshotRef, error)
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	ListAccountIDs(ctx context.Context) ([]string, error)
	GetStats(ctx context.Context) (*domain.SnapshotStats, error)
	GetDateRange(ctx context.Context) (*domain.DataDateRange, error)
}

type metricSnapshotRepository struct {
	conn postgres.Queryer
}

func NewMetricSnapshotRepository(conn postgres.Queryer) MetricSnapshotRepository {
	return &metricSnapshotRepository{
		conn: conn,
	}
}

func (r *metricSnapshotRepository) FetchSnapshots(ctx context.Context, startDay, endDay time.Time, accountIDs []string) ([]*domain.MetricSnapshot, error) {
	builder := squirrel.
		Select(snapshotColumns).
		From(metricSnapshotsTable).
		Where(squirrel.GtOrEq{"ms.date_start": domain.FormatDay(startDay)}).
		Where(squirrel.LtOrEq{"ms.date_start": domain.FormatDay(endDay)}).
		PlaceholderFormat(squirrel.Dollar)

	if accountIDs != nil {
		builder = builder.Where(squirrel.Eq{"ms.ad_account_id": accountIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MetricSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// ListSnapshotRefs lê (id, conta, dia) da tabela inteira em uma única consulta
func (r *metricSnapshotRepository) ListSnapshotRefs(ctx context.Context) ([]domain.SnapshotRef, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.ad_account_id, ms.date_start").
		From(metricSnapshotsTable).
		OrderBy("ms.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	refs := make([]domain.SnapshotRef, 0)
	for rows.Next() {
		var ref domain.SnapshotRef
		var day time.Time

		if err := rows.Scan(&ref.ID, &ref.AccountID, &day); err != nil {
			return nil, fmt.Errorf("erro ao escanear referência de snapshot: %w", err)
		}

		ref.Day = domain.FormatDay(day)
		refs = append(refs, ref)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return refs, nil
}

// DeleteByIDs remove apenas os IDs informados. Zero linhas afetadas não é erro.
func (r *metricSnapshotRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Delete("metric_snapshots").
		Where("id = ANY(?)", pq.Array(ids)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *metricSnapshotRepository) ListAccountIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT ms.ad_account_id").
		From(metricSnapshotsTable).
		OrderBy("ms.ad_account_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accountIDs := make([]string, 0)
	for rows.Next() {
		var accountID string
		if err := rows.Scan(&accountID); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accountIDs = append(accountIDs, accountID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accountIDs, nil
}

func (r *metricSnapshotRepository) GetStats(ctx context.Context) (*domain.SnapshotStats, error) {
	query, args, err := squirrel.
		Select("COUNT(*), COUNT(DISTINCT ms.ad_account_id), MAX(ms.date_start), MAX(ms.created_at)").
		From(metricSnapshotsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	stats := &domain.SnapshotStats{}
	var lastDay, lastInsertedAt sql.NullTime

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalSnapshots,
		&stats.DistinctAccounts,
		&lastDay,
		&lastInsertedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear estatísticas: %w", err)
	}

	if lastDay.Valid {
		day := domain.FormatDay(lastDay.Time)
		stats.LastDay = &day
	}

	if lastInsertedAt.Valid {
		stats.LastInsertedAt = &lastInsertedAt.Time
	}

	stats.HasData = stats.TotalSnapshots > 0

	return stats, nil
}

func (r *metricSnapshotRepository) GetDateRange(ctx context.Context) (*domain.DataDateRange, error) {
	query, args, err := squirrel.
		Select("MIN(ms.date_start), MAX(ms.date_start)").
		From(metricSnapshotsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var first, last sql.NullTime
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&first, &last); err != nil {
		return nil, fmt.Errorf("erro ao escanear intervalo de datas: %w", err)
	}

	if !first.Valid || !last.Valid {
		return &domain.DataDateRange{HasData: false}, nil
	}

	return &domain.DataDateRange{
		StartDay: domain.FormatDay(first.Time),
		EndDay:   domain.FormatDay(last.Time),
		HasData:  true,
	}, nil
}

func (r *metricSnapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.MetricSnapshot, error) {
	snapshot := &domain.MetricSnapshot{}
	var cpc, ctr sql.NullFloat64

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.AccountID,
		&snapshot.Day,
		&snapshot.SpendCents,
		&snapshot.Impressions,
		&snapshot.Clicks,
		&cpc,
		&ctr,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Day = domain.TruncateDay(snapshot.Day)
	snapshot.CPC = cpc.Float64
	snapshot.CTR = ctr.Float64

	return snapshot, nil
}
