package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

const (
	companyAccountsTable = "company_ad_accounts ca"
	mappingColumns       = "ca.id, ca.company, ca.ad_account_id, ca.active, ca.created_at"
)

const uniqueViolation = "23505"

// ErrAccountMappedToOtherCompany indica que a conta já pertence a outra empresa ativa
var ErrAccountMappedToOtherCompany = errors.New("ad account already mapped to another company")

// errConcurrentMapping indica que outra transação criou o vínculo ativo da conta entre a leitura e o insert
var errConcurrentMapping = errors.New("active mapping created concurrently")

//go:generate mockgen -source=company_account.go -destination=mocks/company_account_mock.go -package=mocks
type CompanyAccountRepository interface {
	ListMappings(ctx context.Context, onlyActive bool) ([]*domain.CompanyAccountMapping, error)
	AccountsByCompanies(ctx context.Context, companies []string) ([]string, error)
	AccountCompanyMap(ctx context.Context) (map[string]string, error)
	CreateMapping(ctx context.Context, company, accountID string) (*domain.CompanyAccountMapping, bool, error)
	DeleteMapping(ctx context.Context, id string) (bool, error)
}

type companyAccountRepository struct {
	conn postgres.Conn
}

func NewCompanyAccountRepository(conn postgres.Conn) CompanyAccountRepository {
	return &companyAccountRepository{
		conn: conn,
	}
}

func (r *companyAccountRepository) ListMappings(ctx context.Context, onlyActive bool) ([]*domain.CompanyAccountMapping, error) {
	builder := squirrel.
		Select(mappingColumns).
		From(companyAccountsTable).
		OrderBy("ca.company ASC", "ca.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"ca.active": true})
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

	mappings := make([]*domain.CompanyAccountMapping, 0)
	for rows.Next() {
		mapping := &domain.CompanyAccountMapping{}
		if err := rows.Scan(&mapping.ID, &mapping.Company, &mapping.AccountID, &mapping.Active, &mapping.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear mapeamento: %w", err)
		}
		mappings = append(mappings, mapping)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return mappings, nil
}

// AccountsByCompanies resolve nomes de empresas para as contas ativas vinculadas
func (r *companyAccountRepository) AccountsByCompanies(ctx context.Context, companies []string) ([]string, error) {
	if len(companies) == 0 {
		return []string{}, nil
	}

	query, args, err := squirrel.
		Select("DISTINCT ca.ad_account_id").
		From(companyAccountsTable).
		Where(squirrel.Eq{"ca.active": true}).
		Where(squirrel.Eq{"ca.company": companies}).
		OrderBy("ca.ad_account_id ASC").
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

// AccountCompanyMap retorna o mapeamento ad_account_id -> empresa dos vínculos ativos
func (r *companyAccountRepository) AccountCompanyMap(ctx context.Context) (map[string]string, error) {
	mappings, err := r.ListMappings(ctx, true)
	if err != nil {
		return nil, err
	}

	companyByAccount := make(map[string]string, len(mappings))
	for _, mapping := range mappings {
		companyByAccount[mapping.AccountID] = mapping.Company
	}

	return companyByAccount, nil
}

// CreateMapping cria o vínculo empresa/conta. Se o vínculo já existir ele é retornado com created=false.
func (r *companyAccountRepository) CreateMapping(ctx context.Context, company, accountID string) (*domain.CompanyAccountMapping, bool, error) {
	var mapping *domain.CompanyAccountMapping
	created := false

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		existing, err := r.findActiveByAccount(ctx, tx, accountID)
		if err != nil {
			return err
		}

		if existing != nil {
			mapping, err = sameCompany(existing, company)
			return err
		}

		id, err := utils.NewMappingID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do mapeamento: %w", err)
		}

		query, args, err := squirrel.StatementBuilder.
			Insert("company_ad_accounts").
			Columns("id", "company", "ad_account_id", "active").
			Values(id, company, accountID, true).
			Suffix("RETURNING created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		mapping = &domain.CompanyAccountMapping{
			ID:        id,
			Company:   company,
			AccountID: accountID,
			Active:    true,
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&mapping.CreatedAt); err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
				return errConcurrentMapping
			}
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao inserir mapeamento: %w", err)
		}

		created = true
		return nil
	})
	if errors.Is(err, errConcurrentMapping) {
		// a transação abortada não serve para reler; o vínculo vencedor já está confirmado
		existing, findErr := r.findActiveByAccount(ctx, r.conn, accountID)
		if findErr != nil {
			return nil, false, findErr
		}
		if existing == nil {
			return nil, false, fmt.Errorf("vínculo ativo da conta %s não encontrado após conflito: %w", accountID, err)
		}

		mapping, err = sameCompany(existing, company)
		if err != nil {
			return nil, false, err
		}
		return mapping, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return mapping, created, nil
}

func sameCompany(existing *domain.CompanyAccountMapping, company string) (*domain.CompanyAccountMapping, error) {
	if existing.Company != company {
		return nil, ErrAccountMappedToOtherCompany
	}
	return existing, nil
}

func (r *companyAccountRepository) findActiveByAccount(ctx context.Context, q postgres.Queryer, accountID string) (*domain.CompanyAccountMapping, error) {
	query, args, err := squirrel.
		Select(mappingColumns).
		From(companyAccountsTable).
		Where(squirrel.Eq{"ca.ad_account_id": accountID, "ca.active": true}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	mapping := &domain.CompanyAccountMapping{}
	err = q.QueryRowContext(ctx, query, args...).Scan(
		&mapping.ID,
		&mapping.Company,
		&mapping.AccountID,
		&mapping.Active,
		&mapping.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear mapeamento: %w", err)
	}

	return mapping, nil
}

func (r *companyAccountRepository) DeleteMapping(ctx context.Context, id string) (bool, error) {
	query, args, err := squirrel.
		Delete("company_ad_accounts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}
