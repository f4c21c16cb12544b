package companies

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

type CompanyService interface {
	ListMappings(ctx context.Context, onlyActive bool) ([]*domain.CompanyAccountMapping, error)
	CreateMapping(ctx context.Context, req domain.CreateMappingRequest) (*domain.CompanyAccountMapping, bool, error)
	DeleteMapping(ctx context.Context, id string) error
}

type Service struct {
	companyRepo repository.CompanyAccountRepository
}

func NewService(companyRepo repository.CompanyAccountRepository) *Service {
	return &Service{
		companyRepo: companyRepo,
	}
}

func (s *Service) ListMappings(ctx context.Context, onlyActive bool) ([]*domain.CompanyAccountMapping, error) {
	mappings, err := s.companyRepo.ListMappings(ctx, onlyActive)
	if err != nil {
		return nil, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return mappings, nil
}

// CreateMapping vincula uma conta a uma empresa. Repetir o mesmo vínculo devolve o existente com created=false.
func (s *Service) CreateMapping(ctx context.Context, req domain.CreateMappingRequest) (*domain.CompanyAccountMapping, bool, error) {
	company := strings.TrimSpace(req.Company)
	accountID := strings.TrimSpace(req.AccountID)

	if company == "" {
		return nil, false, NewCompanyError(ErrCompanyRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if accountID == "" {
		return nil, false, NewCompanyError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	mapping, created, err := s.companyRepo.CreateMapping(ctx, company, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountMappedToOtherCompany) {
			return nil, false, NewCompanyError(ErrMappingConflict, apiErrors.ErrConflict, accountID)
		}
		return nil, false, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"company":    company,
		"account_id": accountID,
		"created":    created,
	}).Info("Vínculo empresa/conta registrado")

	return mapping, created, nil
}

func (s *Service) DeleteMapping(ctx context.Context, id string) error {
	if !utils.IsMappingID(id) {
		return NewCompanyError(ErrMappingNotFound, apiErrors.ErrNotFound, id)
	}

	deleted, err := s.companyRepo.DeleteMapping(ctx, id)
	if err != nil {
		return NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if !deleted {
		return NewCompanyError(ErrMappingNotFound, apiErrors.ErrNotFound, id)
	}

	return nil
}
