package services

import (
	"context"
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade derives financial reports from ledger lines. All
// operations are pure reads; none mutate state and none are cached.
type ReportingSvcFacade interface {
	// ProfitAndLoss reports income and expense activity for [start, end].
	// start defaults to January 1 of the current year, end to now.
	ProfitAndLoss(ctx context.Context, start, end *time.Time) (*domain.ProfitAndLossReport, error)

	// BalanceSheet reports assets, liabilities and equity as of a date,
	// defaulting to now, including retained earnings accumulated since inception.
	BalanceSheet(ctx context.Context, asOf *time.Time) (*domain.BalanceSheetReport, error)

	// MonthlyProfitAndLoss reports P&L activity bucketed per calendar month.
	MonthlyProfitAndLoss(ctx context.Context, year int) ([]domain.MonthlyPnLRow, error)

	// MonthlyBalanceSheet reports a full as-of snapshot at each of the year's
	// twelve month ends.
	MonthlyBalanceSheet(ctx context.Context, year int) ([]domain.MonthlyBalanceRow, error)

	// TrialBalance reports per-account debit and credit totals as of a date.
	TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// CustomerBalance sums debit minus credit over AR lines tagged with the
	// customer; positive means the customer owes us.
	CustomerBalance(ctx context.Context, customerID string) (decimal.Decimal, error)

	// SupplierBalance sums credit minus debit over AP lines tagged with the
	// supplier; positive means we owe the supplier.
	SupplierBalance(ctx context.Context, supplierID string) (decimal.Decimal, error)
}
