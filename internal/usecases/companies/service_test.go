package companies

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var companyErr *CompanyError
	require.True(t, errors.As(err, &companyErr))
	return companyErr.Code
}

func TestService_CreateMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCompanyAccountRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	t.Run("Cria vínculo com campos normalizados", func(t *testing.T) {
		expected := &domain.CompanyAccountMapping{ID: "abc", Company: "Acme", AccountID: "act_1", Active: true}
		mockRepo.EXPECT().CreateMapping(gomock.Any(), "Acme", "act_1").Return(expected, true, nil)

		mapping, created, err := service.CreateMapping(ctx, domain.CreateMappingRequest{Company: " Acme ", AccountID: "act_1 "})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, expected, mapping)
	})

	t.Run("Campos obrigatórios", func(t *testing.T) {
		_, _, err := service.CreateMapping(ctx, domain.CreateMappingRequest{AccountID: "act_1"})
		assert.ErrorIs(t, err, ErrCompanyRequired)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, codeOf(t, err))

		_, _, err = service.CreateMapping(ctx, domain.CreateMappingRequest{Company: "Acme"})
		assert.ErrorIs(t, err, ErrAccountIDRequired)
	})

	t.Run("Conta vinculada a outra empresa", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateMapping(gomock.Any(), "Beta", "act_1").
			Return(nil, false, fmt.Errorf("tx: %w", repository.ErrAccountMappedToOtherCompany))

		_, _, err := service.CreateMapping(ctx, domain.CreateMappingRequest{Company: "Beta", AccountID: "act_1"})
		assert.ErrorIs(t, err, ErrMappingConflict)
		assert.Equal(t, apiErrors.ErrConflict, codeOf(t, err))
	})
}

func TestService_DeleteMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCompanyAccountRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteMapping(gomock.Any(), "map_abc123def456").Return(true, nil)
	assert.NoError(t, service.DeleteMapping(ctx, "map_abc123def456"))

	mockRepo.EXPECT().DeleteMapping(gomock.Any(), "map_000000000000").Return(false, nil)
	err := service.DeleteMapping(ctx, "map_000000000000")
	assert.ErrorIs(t, err, ErrMappingNotFound)
	assert.Equal(t, apiErrors.ErrNotFound, codeOf(t, err))

	// ID fora do formato não chega ao banco
	err = service.DeleteMapping(ctx, "missing")
	assert.ErrorIs(t, err, ErrMappingNotFound)

	mockRepo.EXPECT().DeleteMapping(gomock.Any(), "map_b00mb00mb00m").Return(false, errors.New("connection refused"))
	err = service.DeleteMapping(ctx, "map_b00mb00mb00m")
	assert.Equal(t, apiErrors.ErrDatabaseOperation, codeOf(t, err))
}
