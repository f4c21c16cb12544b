package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

// app guarda as dependências compartilhadas pelos subcomandos
type app struct {
	cfg          *config.Config
	conn         *postgres.Connection
	snapshotRepo repository.MetricSnapshotRepository
	companyRepo  repository.CompanyAccountRepository
}

func (a *app) connect(ctx context.Context) error {
	if a.conn != nil {
		return nil
	}

	conn, err := postgres.NewConnection(ctx, a.cfg.Database)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	a.conn = conn
	a.snapshotRepo = repository.NewMetricSnapshotRepository(conn)
	a.companyRepo = repository.NewCompanyAccountRepository(conn)
	return nil
}

func (a *app) close() {
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
		}
	}
}

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:           "metricsctl",
		Short:         "Ferramentas de operação da API de métricas de campanhas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			log.Configure(cfg.App.LogLevel)
			a.cfg = cfg
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.close()
		},
	}

	root.AddCommand(newMigrateCommand(a))
	root.AddCommand(newPruneCommand(a))
	root.AddCommand(newDailyCommand(a))
	root.AddCommand(newCompaniesCommand(a))
	root.AddCommand(newTokenCommand(a))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
