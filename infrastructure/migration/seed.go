package migration

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
)

// Seed é um vínculo empresa/conta usado na carga inicial
type Seed struct {
	Company   string
	AccountID string
}

type SeedResult struct {
	Created  int
	Existing int
	Errors   int
}

// SeedMappings cadastra os vínculos informados. Falhas em um vínculo não interrompem os demais.
func SeedMappings(ctx context.Context, repo repository.CompanyAccountRepository, seeds []Seed) SeedResult {
	logrus.Infof("Iniciando carga de %d vínculos...", len(seeds))

	var result SeedResult
	for i, seed := range seeds {
		_, created, err := repo.CreateMapping(ctx, seed.Company, seed.AccountID)
		if err != nil {
			logrus.Warnf("ERRO ao inserir vínculo [%d/%d] %s/%s: %v", i+1, len(seeds), seed.Company, seed.AccountID, err)
			result.Errors++
			continue
		}

		if created {
			result.Created++
		} else {
			result.Existing++
		}
	}

	logrus.Infof("Carga de vínculos concluída. Criados: %d, Existentes: %d, Erros: %d", result.Created, result.Existing, result.Errors)
	return result
}
