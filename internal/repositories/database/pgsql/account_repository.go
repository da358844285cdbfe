package pgsql

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/apperrors"
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	portsrepo "github.com/RusingAcademy/accounting-engine/internal/core/ports/repositories"
	"github.com/RusingAcademy/accounting-engine/internal/models"
	"github.com/RusingAcademy/accounting-engine/internal/utils/accounting"
	"github.com/RusingAcademy/accounting-engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, name, account_type, detail_type, description, balance, is_active, created_at, updated_at`

// PgxAccountRepository persists chart-of-accounts data.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.AccountType,
		&m.DetailType,
		&m.Description,
		&m.Balance,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAccount persists a new account. Violating the unique (name, type)
// index maps to ErrDuplicate so callers can re-fetch.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	if err := r.Ready(); err != nil {
		return err
	}
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.Name, m.AccountType, m.DetailType, m.Description,
		m.Balance, m.IsActive, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert account "+m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its id.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+accountID, err)
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

// FindAccountByNameAndType retrieves an account by its exact (name, type) pair.
func (r *PgxAccountRepository) FindAccountByNameAndType(ctx context.Context, name string, accountType domain.AccountType) (*domain.Account, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE name = $1 AND account_type = $2;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, name, string(accountType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by name "+name, err)
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

// FindAccountsByIDs retrieves multiple accounts keyed by id. Absent ids are
// simply missing from the returned map.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		result[m.AccountID] = mapping.ToDomainAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating account rows", err)
	}
	return result, nil
}

// ListAccounts retrieves accounts ordered by type then name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY account_type, name LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating account rows", err)
	}
	return accounts, nil
}

// DeactivateAccount marks an account as inactive.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, now time.Time) error {
	if err := r.Ready(); err != nil {
		return err
	}
	query := `UPDATE accounts SET is_active = false, updated_at = $2 WHERE account_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, accountID, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RecalculateBalances recomputes each account's balance from full history.
func (r *PgxAccountRepository) RecalculateBalances(ctx context.Context, accountIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.RecalculateBalancesInTx(ctx, tx, accountIDs); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// RecalculateBalancesInTx recomputes balances within an existing transaction.
// For each account it sums every debit and credit ever posted against it and
// applies the account type's normal balance side. A full recompute is the
// simplest correct derivation; incremental deltas would drift on crash.
func (r *PgxAccountRepository) RecalculateBalancesInTx(ctx context.Context, tx pgx.Tx, accountIDs []string) error {
	// Lock accounts in a stable order so concurrent postings touching the
	// same accounts cannot deadlock on each other's row locks.
	for _, accountID := range distinctSortedIDs(accountIDs) {
		var accountType string
		err := tx.QueryRow(ctx, `SELECT account_type FROM accounts WHERE account_id = $1 FOR UPDATE;`, accountID).Scan(&accountType)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return apperrors.NewAppError(500, "failed to lock account "+accountID, err)
		}

		var totalDebit, totalCredit decimal.Decimal
		err = tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
			FROM journal_entry_lines
			WHERE account_id = $1;
		`, accountID).Scan(&totalDebit, &totalCredit)
		if err != nil {
			return apperrors.NewAppError(500, "failed to sum lines for account "+accountID, err)
		}

		balance := accounting.NetBalance(domain.AccountType(accountType), totalDebit, totalCredit)
		_, err = tx.Exec(ctx, `UPDATE accounts SET balance = $2, updated_at = now() WHERE account_id = $1;`, accountID, balance)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update balance for account "+accountID, err)
		}
	}
	return nil
}

// distinctSortedIDs deduplicates the IDs and sorts them so every caller
// acquires row locks in the same order.
func distinctSortedIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	distinct := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	sort.Strings(distinct)
	return distinct
}
