package dto

import (
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
)

// CreateAccountRequest is the payload for creating a chart-of-accounts entry.
// The accounttype validation is registered on gin's binding engine at startup.
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required"`
	AccountType string `json:"accountType" binding:"required,accounttype"`
	DetailType  string `json:"detailType"`
	Description string `json:"description"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	AccountID   string `json:"accountID"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
	DetailType  string `json:"detailType"`
	Description string `json:"description"`
	Balance     string `json:"balance"`
	IsActive    bool   `json:"isActive"`
}

// ToAccountResponse converts a domain account into its API representation.
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   account.AccountID,
		Name:        account.Name,
		AccountType: string(account.AccountType),
		DetailType:  account.DetailType,
		Description: account.Description,
		Balance:     account.Balance.StringFixed(2),
		IsActive:    account.IsActive,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}
