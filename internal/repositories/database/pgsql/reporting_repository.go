package pgsql

import (
	"context"
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/apperrors"
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	portsrepo "github.com/RusingAcademy/accounting-engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxReportingRepository runs the aggregation queries reports are built from.
// Reversal entries are regular entries, so their lines flow through the same
// sums and cancel the originals without special handling here.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetAccountActivity sums debit and credit per account over entries dated
// within [from, to].
func (r *PgxReportingRepository) GetAccountActivity(ctx context.Context, from, to time.Time) ([]domain.AccountActivity, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	query := `
		SELECT a.account_id, a.name, a.account_type,
		       COALESCE(SUM(l.debit), 0) AS debit,
		       COALESCE(SUM(l.credit), 0) AS credit
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE e.entry_date >= $1 AND e.entry_date <= $2
		GROUP BY a.account_id, a.name, a.account_type
		ORDER BY a.account_type, a.name;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account activity", err)
	}
	defer rows.Close()

	activity := []domain.AccountActivity{}
	for rows.Next() {
		var row domain.AccountActivity
		if err := rows.Scan(&row.AccountID, &row.Name, &row.AccountType, &row.Debit, &row.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account activity row", err)
		}
		activity = append(activity, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating account activity rows", err)
	}
	return activity, nil
}

// GetMonthlyActivity sums debit and credit per calendar month and account
// type over the given year.
func (r *PgxReportingRepository) GetMonthlyActivity(ctx context.Context, year int) ([]domain.MonthlyActivity, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	query := `
		SELECT EXTRACT(MONTH FROM e.entry_date)::int AS month,
		       a.account_type,
		       COALESCE(SUM(l.debit), 0) AS debit,
		       COALESCE(SUM(l.credit), 0) AS credit
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE EXTRACT(YEAR FROM e.entry_date) = $1
		GROUP BY month, a.account_type
		ORDER BY month, a.account_type;
	`
	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query monthly activity", err)
	}
	defer rows.Close()

	activity := []domain.MonthlyActivity{}
	for rows.Next() {
		var row domain.MonthlyActivity
		if err := rows.Scan(&row.Month, &row.AccountType, &row.Debit, &row.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan monthly activity row", err)
		}
		activity = append(activity, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating monthly activity rows", err)
	}
	return activity, nil
}

// GetTrialBalanceData sums debit and credit per account over entries dated on
// or before asOf. Accounts with no activity are omitted.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	query := `
		SELECT a.account_id, a.name, a.account_type,
		       COALESCE(SUM(l.debit), 0) AS debit,
		       COALESCE(SUM(l.credit), 0) AS credit
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE e.entry_date <= $1
		GROUP BY a.account_id, a.name, a.account_type
		ORDER BY a.account_type, a.name;
	`
	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance data", err)
	}
	defer rows.Close()

	trialRows := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(&row.AccountID, &row.AccountName, &row.AccountType, &row.Debit, &row.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		trialRows = append(trialRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating trial balance rows", err)
	}
	return trialRows, nil
}

// GetCustomerARTotals sums debit and credit over Accounts Receivable lines
// tagged with the given customer.
func (r *PgxReportingRepository) GetCustomerARTotals(ctx context.Context, customerID string) (decimal.Decimal, decimal.Decimal, error) {
	return r.partyTotals(ctx, `l.customer_id`, customerID, domain.AccountsReceivable)
}

// GetSupplierAPTotals sums debit and credit over Accounts Payable lines
// tagged with the given supplier.
func (r *PgxReportingRepository) GetSupplierAPTotals(ctx context.Context, supplierID string) (decimal.Decimal, decimal.Decimal, error) {
	return r.partyTotals(ctx, `l.supplier_id`, supplierID, domain.AccountsPayable)
}

func (r *PgxReportingRepository) partyTotals(ctx context.Context, partyColumn, partyID string, accountType domain.AccountType) (decimal.Decimal, decimal.Decimal, error) {
	if err := r.Ready(); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	query := `
		SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_entry_lines l
		JOIN accounts a ON l.account_id = a.account_id
		WHERE ` + partyColumn + ` = $1 AND a.account_type = $2;
	`
	var debit, credit decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, partyID, string(accountType)).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to query party ledger totals", err)
	}
	return debit, credit, nil
}
