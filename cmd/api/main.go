package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/redisdb"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/lock"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/api"
	"github.com/vfg2006/campaign-metrics-api/internal/config"
	"github.com/vfg2006/campaign-metrics-api/internal/scheduler"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/companies"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/metrics"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/retention"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
	"github.com/vfg2006/campaign-metrics-api/pkg/metric"
)

const pruneLockKey = "snapshot-prune"

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	level := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewMetricSnapshotRepository(pgConn)
	companyRepo := repository.NewCompanyAccountRepository(pgConn)

	appMetrics := metric.NewMetrics()

	pruneOpts := []scheduler.PruneOption{scheduler.WithMetrics(appMetrics)}

	redisClient, err := redisdb.NewClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
		pruneOpts = append(pruneOpts, scheduler.WithLocker(lock.NewRedisLock(redisClient, pruneLockKey, cfg.SnapshotPrune.LockTTL)))
		logrus.Info("Trava distribuída da limpeza de snapshots habilitada")
	}

	retentionService := retention.NewService(snapshotRepo, cfg.SnapshotPrune)
	pruneService := scheduler.NewSnapshotPruneService(retentionService, cfg.SnapshotPrune, pruneOpts...)

	metricsOpts := []metrics.Option{metrics.WithMetrics(appMetrics)}
	if cfg.Metrics.PruneOnRead {
		metricsOpts = append(metricsOpts, metrics.WithPruneOnRead(pruneService))
	}

	metricsService := metrics.NewService(snapshotRepo, companyRepo, cfg.Metrics, metricsOpts...)
	companyService := companies.NewService(companyRepo)
	authenticator := authenticating.NewService(cfg.Auth)

	if err := pruneService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de snapshots")
	} else {
		logrus.Info("Agendador de limpeza de snapshots iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		DB:             pgConn,
		Authenticator:  authenticator,
		MetricsService: metricsService,
		CompanyService: companyService,
		PruneService:   pruneService,
		Metrics:        appMetrics,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite que o .env da raiz seja encontrado em execuções locais
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
