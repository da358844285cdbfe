package services

import (
	"context"

	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	"github.com/RusingAcademy/accounting-engine/internal/dto"
)

// AccountSvcFacade manages the chart of accounts and account balances.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string) error

	// GetOrCreateSystemAccount looks an account up by exact (name, type) pair,
	// lazily creating it with a zero balance when absent.
	GetOrCreateSystemAccount(ctx context.Context, name string, accountType domain.AccountType) (*domain.Account, error)

	// EnsureSystemAccounts materializes the full set of well-known system
	// accounts and returns their resolved ids. Run once at startup.
	EnsureSystemAccounts(ctx context.Context) (*domain.SystemAccounts, error)

	// RecalculateBalances recomputes each account's cached balance from the
	// full history of posted lines.
	RecalculateBalances(ctx context.Context, accountIDs []string) error
}
