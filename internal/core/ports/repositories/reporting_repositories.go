package repositories

import (
	"context"
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only aggregations financial reports
// are built from. None of these mutate state and none are cached.
type ReportingRepository interface {
	// GetAccountActivity sums debit and credit per account for entries dated
	// within [from, to], inclusive.
	GetAccountActivity(ctx context.Context, from, to time.Time) ([]domain.AccountActivity, error)

	// GetMonthlyActivity sums debit and credit per calendar month and account
	// type for entries dated within the given year.
	GetMonthlyActivity(ctx context.Context, year int) ([]domain.MonthlyActivity, error)

	// GetTrialBalanceData sums debit and credit per account for entries dated
	// on or before asOf.
	GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// GetCustomerARTotals sums debit and credit over Accounts Receivable lines
	// tagged with the given customer.
	GetCustomerARTotals(ctx context.Context, customerID string) (debit, credit decimal.Decimal, err error)

	// GetSupplierAPTotals sums debit and credit over Accounts Payable lines
	// tagged with the given supplier.
	GetSupplierAPTotals(ctx context.Context, supplierID string) (debit, credit decimal.Decimal, err error)
}
