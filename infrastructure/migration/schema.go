package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
)

type step struct {
	name      string
	statement string
}

var schemaSteps = []step{
	{
		name: "tabela metric_snapshots",
		statement: `CREATE TABLE IF NOT EXISTS metric_snapshots (
			id BIGSERIAL PRIMARY KEY,
			ad_account_id TEXT NOT NULL,
			date_start DATE NOT NULL,
			spend BIGINT NOT NULL DEFAULT 0,
			impressions BIGINT NOT NULL DEFAULT 0,
			clicks BIGINT NOT NULL DEFAULT 0,
			cpc DOUBLE PRECISION,
			ctr DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name:      "índice metric_snapshots (conta, dia, id)",
		statement: `CREATE INDEX IF NOT EXISTS metric_snapshots_account_day_id_idx ON metric_snapshots (ad_account_id, date_start, id DESC)`,
	},
	{
		name: "tabela company_ad_accounts",
		statement: `CREATE TABLE IF NOT EXISTS company_ad_accounts (
			id TEXT PRIMARY KEY,
			company TEXT NOT NULL,
			ad_account_id TEXT NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name:      "índice company_ad_accounts (empresa)",
		statement: `CREATE INDEX IF NOT EXISTS company_ad_accounts_company_idx ON company_ad_accounts (company) WHERE active`,
	},
}

const activeAccountConstraint = "company_ad_accounts_active_account_unique"

// Apply cria as tabelas e índices usados pela API. Pode ser executado mais de uma vez.
func Apply(ctx context.Context, conn postgres.Conn) error {
	logrus.Info("Iniciando migração do schema...")
	startTime := time.Now()

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, s := range schemaSteps {
			if _, err := tx.ExecContext(ctx, s.statement); err != nil {
				return fmt.Errorf("erro ao aplicar %s: %w", s.name, err)
			}
			logrus.Debugf("Aplicado: %s", s.name)
		}

		return ensureActiveAccountIndex(ctx, tx)
	})
	if err != nil {
		return err
	}

	logrus.Infof("Migração do schema concluída em %v", time.Since(startTime))
	return nil
}

// ensureActiveAccountIndex garante no banco que uma conta tenha no máximo um vínculo ativo
func ensureActiveAccountIndex(ctx context.Context, q postgres.Queryer) error {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pg_indexes
			WHERE tablename = 'company_ad_accounts'
			AND indexname = $1
		)
	`, activeAccountConstraint).Scan(&exists)
	if err != nil {
		return fmt.Errorf("erro ao verificar índice existente: %w", err)
	}

	if exists {
		logrus.Debugf("Índice %s já existe", activeAccountConstraint)
		return nil
	}

	statement := fmt.Sprintf(
		"CREATE UNIQUE INDEX %s ON company_ad_accounts (ad_account_id) WHERE active",
		activeAccountConstraint,
	)
	if _, err := q.ExecContext(ctx, statement); err != nil {
		return fmt.Errorf("erro ao criar índice %s: %w", activeAccountConstraint, err)
	}

	logrus.Infof("Índice %s criado", activeAccountConstraint)
	return nil
}
