package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func expectSchema(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS metric_snapshots`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS metric_snapshots_account_day_id_idx`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS company_ad_accounts`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS company_ad_accounts_company_idx`).WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestApply(t *testing.T) {
	t.Run("cria índice de vínculo ativo quando ausente", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchema(mock)
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(activeAccountConstraint).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(`CREATE UNIQUE INDEX company_ad_accounts_active_account_unique`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		require.NoError(t, Apply(context.Background(), &postgres.Connection{DB: db}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("execução repetida não recria o índice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchema(mock)
		mock.ExpectQuery(`SELECT EXISTS`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectCommit()

		require.NoError(t, Apply(context.Background(), &postgres.Connection{DB: db}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha em um passo desfaz a transação", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS metric_snapshots`).WillReturnError(errors.New("permission denied"))
		mock.ExpectRollback()

		err = Apply(context.Background(), &postgres.Connection{DB: db})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "metric_snapshots")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSeedMappings(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCompanyAccountRepository(ctrl)

	repo.EXPECT().CreateMapping(gomock.Any(), "Acme", "acc-1").Return(&domain.CompanyAccountMapping{ID: "m1"}, true, nil)
	repo.EXPECT().CreateMapping(gomock.Any(), "Acme", "acc-2").Return(&domain.CompanyAccountMapping{ID: "m2"}, false, nil)
	repo.EXPECT().CreateMapping(gomock.Any(), "Beta", "acc-1").Return(nil, false, repository.ErrAccountMappedToOtherCompany)

	result := SeedMappings(context.Background(), repo, []Seed{
		{Company: "Acme", AccountID: "acc-1"},
		{Company: "Acme", AccountID: "acc-2"},
		{Company: "Beta", AccountID: "acc-1"},
	})

	assert.Equal(t, SeedResult{Created: 1, Existing: 1, Errors: 1}, result)
}
