package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/migration"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/metrics"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/retention"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

func newMigrateCommand(a *app) *cobra.Command {
	var seeds []string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Cria tabelas e índices e cadastra vínculos iniciais",
		Long:  "Cria o schema usado pela API. Vínculos podem ser informados com --seed empresa=conta.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.connect(ctx); err != nil {
				return err
			}

			if err := migration.Apply(ctx, a.conn); err != nil {
				return err
			}

			parsed, err := parseSeeds(seeds)
			if err != nil {
				return err
			}
			if len(parsed) == 0 {
				return nil
			}

			result := migration.SeedMappings(ctx, a.companyRepo, parsed)
			fmt.Fprintf(cmd.OutOrStdout(), "vínculos criados: %d, existentes: %d, erros: %d\n", result.Created, result.Existing, result.Errors)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&seeds, "seed", nil, "vínculo empresa=conta a cadastrar (pode repetir)")
	return cmd
}

func parseSeeds(values []string) ([]migration.Seed, error) {
	seeds := make([]migration.Seed, 0, len(values))
	for _, value := range values {
		company, accountID, ok := strings.Cut(value, "=")
		company, accountID = strings.TrimSpace(company), strings.TrimSpace(accountID)
		if !ok || company == "" || accountID == "" {
			return nil, fmt.Errorf("seed inválido %q, use empresa=conta", value)
		}
		seeds = append(seeds, migration.Seed{Company: company, AccountID: accountID})
	}
	return seeds, nil
}

func newPruneCommand(a *app) *cobra.Command {
	var retentionCount int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove snapshots substituídos mantendo os mais recentes por conta/dia",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.connect(ctx); err != nil {
				return err
			}

			if !cmd.Flags().Changed("retention") {
				retentionCount = a.cfg.SnapshotPrune.RetentionCount
			}

			result, err := retention.NewService(a.snapshotRepo, a.cfg.SnapshotPrune).PruneSuperseded(ctx, retentionCount)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removidos: %d, mantidos: %d\n", result.Deleted, result.Kept)
			return nil
		},
	}

	cmd.Flags().IntVar(&retentionCount, "retention", 0, "snapshots mantidos por conta/dia (padrão: PRUNE_RETENTION_COUNT)")
	return cmd
}

type queryFlags struct {
	start   string
	end     string
	company string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "", "data inicial (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "data final (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.company, "company", "", "filtra por empresa")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

func (f *queryFlags) query() (domain.MetricsQuery, error) {
	startDay, err := utils.ParseDay(f.start)
	if err != nil {
		return domain.MetricsQuery{}, fmt.Errorf("--start: %w", err)
	}

	endDay, err := utils.ParseDay(f.end)
	if err != nil {
		return domain.MetricsQuery{}, fmt.Errorf("--end: %w", err)
	}

	return domain.MetricsQuery{
		StartDay: startDay,
		EndDay:   endDay,
		Company:  strings.TrimSpace(f.company),
		Scope:    domain.AccessScope{IsAdmin: true},
	}, nil
}

func newDailyCommand(a *app) *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Mostra as métricas agregadas por dia",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := flags.query()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := a.connect(ctx); err != nil {
				return err
			}

			service := metrics.NewService(a.snapshotRepo, a.companyRepo, a.cfg.Metrics)
			daily, err := service.GetDailyMetrics(ctx, query)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DIA\tGASTO\tCLIQUES\tIMPRESSÕES\tCPC\tCTR\tEMPRESAS")
			for _, d := range daily {
				fmt.Fprintf(w, "%s\t%.2f\t%d\t%d\t%.2f\t%.2f\t%d\n",
					d.Day,
					d.TotalSpend,
					d.TotalClicks,
					d.TotalImpressions,
					utils.RoundWithTwoDecimalPlace(d.AvgCPC),
					utils.RoundWithTwoDecimalPlace(d.AvgCTR),
					d.CompanyCount,
				)
			}
			return w.Flush()
		},
	}

	flags.register(cmd)
	return cmd
}

func newCompaniesCommand(a *app) *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Mostra as métricas agregadas por empresa",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := flags.query()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := a.connect(ctx); err != nil {
				return err
			}

			service := metrics.NewService(a.snapshotRepo, a.companyRepo, a.cfg.Metrics)
			byCompany, err := service.GetCompanyMetrics(ctx, query)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EMPRESA\tGASTO\tCLIQUES\tIMPRESSÕES\tCPC\tCTR\tDIAS")
			for _, c := range byCompany {
				fmt.Fprintf(w, "%s\t%.2f\t%d\t%d\t%.2f\t%.2f\t%d\n",
					c.Company,
					c.TotalSpend,
					c.TotalClicks,
					c.TotalImpressions,
					utils.RoundWithTwoDecimalPlace(c.AvgCPC),
					utils.RoundWithTwoDecimalPlace(c.AvgCTR),
					c.DaysWithData,
				)
			}
			return w.Flush()
		},
	}

	flags.register(cmd)
	return cmd
}

func newTokenCommand(a *app) *cobra.Command {
	var (
		email     string
		role      int
		companies []string
		ttl       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token de acesso para testes e integrações",
		RunE: func(cmd *cobra.Command, _ []string) error {
			authCfg := a.cfg.Auth
			if ttl > 0 {
				authCfg.TokenTTL = ttl
			}

			token, err := authenticating.NewService(authCfg).IssueToken(domain.Claims{
				UserEmail:  email,
				UserRoleID: role,
				UserCompanies: lo.Compact(lo.Map(companies, func(c string, _ int) string {
					return strings.TrimSpace(c)
				})),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "e-mail do usuário")
	cmd.Flags().IntVar(&role, "role", domain.RoleClient, "papel (1 admin, 2 cliente)")
	cmd.Flags().StringSliceVar(&companies, "companies", nil, "empresas visíveis para o cliente")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "validade do token (padrão: AUTH_TOKEN_TTL)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
