package repositories

import (
	"context"
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountByNameAndType retrieves an account by its exact (name, type) pair.
	FindAccountByNameAndType(ctx context.Context, name string, accountType domain.AccountType) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, now time.Time) error

	// RecalculateBalances recomputes and persists each account's balance from
	// the full history of lines posted against it.
	RecalculateBalances(ctx context.Context, accountIDs []string) error
}

// AccountTransactionSupport defines balance operations that run inside an
// existing database transaction, used by the journal repository.
type AccountTransactionSupport interface {
	// RecalculateBalancesInTx recomputes account balances within the given transaction.
	RecalculateBalancesInTx(ctx context.Context, tx pgx.Tx, accountIDs []string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
