package domain

import (
	"fmt"
	"time"
)

// CompanyAccountMapping vincula uma conta de anúncios a uma empresa
type CompanyAccountMapping struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	AccountID string    `json:"ad_account_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateMappingRequest struct {
	Company   string `json:"company"`
	AccountID string `json:"ad_account_id"`
}

// Company é uma empresa visível no filtro do dashboard
type Company struct {
	Name       string   `json:"name"`
	AccountIDs []string `json:"ad_account_ids"`
	Platform   string   `json:"platform"`
}

const DefaultPlatform = "Facebook"

// FallbackCompanyName é o rótulo usado quando a conta não possui empresa mapeada
func FallbackCompanyName(accountID string) string {
	return fmt.Sprintf("Account %s", accountID)
}
