package mapping

import (
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	"github.com/RusingAcademy/accounting-engine/internal/models"
)

// ToModelAccount converts a domain account to its database model.
func ToModelAccount(account domain.Account) models.Account {
	return models.Account{
		AccountID:   account.AccountID,
		Name:        account.Name,
		AccountType: string(account.AccountType),
		DetailType:  account.DetailType,
		Description: account.Description,
		Balance:     account.Balance,
		IsActive:    account.IsActive,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
}

// ToDomainAccount converts a database account model to its domain form.
func ToDomainAccount(account models.Account) domain.Account {
	return domain.Account{
		AccountID:   account.AccountID,
		Name:        account.Name,
		AccountType: domain.AccountType(account.AccountType),
		DetailType:  account.DetailType,
		Description: account.Description,
		Balance:     account.Balance,
		IsActive:    account.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt: account.CreatedAt,
			UpdatedAt: account.UpdatedAt,
		},
	}
}
