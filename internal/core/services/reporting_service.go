package services

import (
	"context"
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	portsrepo "github.com/RusingAcademy/accounting-engine/internal/core/ports/repositories"
	portssvc "github.com/RusingAcademy/accounting-engine/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: repo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ProfitAndLoss reports per-account income and expense activity for
// [start, end]. start defaults to January 1 of the current year, end to now.
func (s *reportingService) ProfitAndLoss(ctx context.Context, start, end *time.Time) (*domain.ProfitAndLossReport, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	if start != nil {
		from = *start
	}
	to := now
	if end != nil {
		to = *end
	}
	activity, err := s.reportingRepo.GetAccountActivity(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return buildProfitAndLoss(activity), nil
}

func buildProfitAndLoss(activity []domain.AccountActivity) *domain.ProfitAndLossReport {
	report := domain.ProfitAndLossReport{
		Income:        []domain.ReportLine{},
		Expenses:      []domain.ReportLine{},
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, row := range activity {
		switch {
		case row.AccountType.IsIncome():
			amount := row.Credit.Sub(row.Debit)
			if amount.IsZero() {
				continue
			}
			report.Income = append(report.Income, domain.ReportLine{
				AccountID: row.AccountID,
				Name:      row.Name,
				Amount:    amount,
			})
			report.TotalIncome = report.TotalIncome.Add(amount)
		case row.AccountType.IsExpense():
			amount := row.Debit.Sub(row.Credit)
			if amount.IsZero() {
				continue
			}
			report.Expenses = append(report.Expenses, domain.ReportLine{
				AccountID: row.AccountID,
				Name:      row.Name,
				Amount:    amount,
			})
			report.TotalExpenses = report.TotalExpenses.Add(amount)
		}
	}
	report.NetProfit = report.TotalIncome.Sub(report.TotalExpenses)
	return &report
}

// RetainedEarningsLineName labels the synthetic equity line that carries net
// income accumulated since inception.
const RetainedEarningsLineName = "Retained Earnings (Net Income)"

// BalanceSheet reports assets, liabilities and equity as of a date,
// defaulting to now. Net income since inception is injected as a synthetic
// retained-earnings equity line so the accounting identity
// assets == liabilities + equity holds on every snapshot.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf *time.Time) (*domain.BalanceSheetReport, error) {
	at := time.Now().UTC()
	if asOf != nil {
		at = *asOf
	}
	activity, err := s.reportingRepo.GetAccountActivity(ctx, time.Time{}, at)
	if err != nil {
		return nil, err
	}
	return buildBalanceSheet(activity), nil
}

func buildBalanceSheet(activity []domain.AccountActivity) *domain.BalanceSheetReport {
	report := domain.BalanceSheetReport{
		Assets:           []domain.ReportLine{},
		Liabilities:      []domain.ReportLine{},
		Equity:           []domain.ReportLine{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, row := range activity {
		switch {
		case row.AccountType.IsAsset():
			amount := row.Debit.Sub(row.Credit)
			if amount.IsZero() {
				continue
			}
			report.Assets = append(report.Assets, domain.ReportLine{
				AccountID: row.AccountID,
				Name:      row.Name,
				Amount:    amount,
			})
			report.TotalAssets = report.TotalAssets.Add(amount)
		case row.AccountType.IsLiability():
			amount := row.Credit.Sub(row.Debit)
			if amount.IsZero() {
				continue
			}
			report.Liabilities = append(report.Liabilities, domain.ReportLine{
				AccountID: row.AccountID,
				Name:      row.Name,
				Amount:    amount,
			})
			report.TotalLiabilities = report.TotalLiabilities.Add(amount)
		case row.AccountType.IsEquity():
			amount := row.Credit.Sub(row.Debit)
			if amount.IsZero() {
				continue
			}
			report.Equity = append(report.Equity, domain.ReportLine{
				AccountID: row.AccountID,
				Name:      row.Name,
				Amount:    amount,
			})
			report.TotalEquity = report.TotalEquity.Add(amount)
		}
	}

	// Income and expense activity over the same window is what keeps the two
	// sides of the sheet equal; fold it in as retained earnings.
	retained := buildProfitAndLoss(activity).NetProfit
	if !retained.IsZero() {
		report.Equity = append(report.Equity, domain.ReportLine{
			Name:   RetainedEarningsLineName,
			Amount: retained,
		})
		report.TotalEquity = report.TotalEquity.Add(retained)
	}
	return &report
}

// MonthlyProfitAndLoss reports income, expense and net totals per calendar
// month of the given year.
func (s *reportingService) MonthlyProfitAndLoss(ctx context.Context, year int) ([]domain.MonthlyPnLRow, error) {
	activity, err := s.reportingRepo.GetMonthlyActivity(ctx, year)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.MonthlyPnLRow, 12)
	for m := 1; m <= 12; m++ {
		rows[m-1] = domain.MonthlyPnLRow{
			Month:     m,
			MonthName: time.Month(m).String()[:3],
			Income:    decimal.Zero,
			Expenses:  decimal.Zero,
			NetProfit: decimal.Zero,
		}
	}
	for _, a := range activity {
		if a.Month < 1 || a.Month > 12 {
			continue
		}
		row := &rows[a.Month-1]
		switch {
		case a.AccountType.IsIncome():
			row.Income = row.Income.Add(a.Credit.Sub(a.Debit))
		case a.AccountType.IsExpense():
			row.Expenses = row.Expenses.Add(a.Debit.Sub(a.Credit))
		}
	}
	for i := range rows {
		rows[i].NetProfit = rows[i].Income.Sub(rows[i].Expenses)
	}
	return rows, nil
}

// MonthlyBalanceSheet reports a full as-of snapshot at each month end of the
// given year. Twelve full scans, acceptable at this ledger's scale.
func (s *reportingService) MonthlyBalanceSheet(ctx context.Context, year int) ([]domain.MonthlyBalanceRow, error) {
	rows := make([]domain.MonthlyBalanceRow, 12)
	for m := 1; m <= 12; m++ {
		monthEnd := time.Date(year, time.Month(m)+1, 0, 23, 59, 59, 0, time.UTC)
		sheet, err := s.BalanceSheet(ctx, &monthEnd)
		if err != nil {
			return nil, err
		}
		rows[m-1] = domain.MonthlyBalanceRow{
			Month:       m,
			MonthName:   time.Month(m).String()[:3],
			Assets:      sheet.TotalAssets,
			Liabilities: sheet.TotalLiabilities,
			Equity:      sheet.TotalEquity,
		}
	}
	return rows, nil
}

// TrialBalance reports per-account debit and credit totals as of a date.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	return s.reportingRepo.GetTrialBalanceData(ctx, asOf)
}

// CustomerBalance sums debit minus credit over Accounts Receivable lines
// tagged with the customer. Positive means the customer owes us.
func (s *reportingService) CustomerBalance(ctx context.Context, customerID string) (decimal.Decimal, error) {
	debit, credit, err := s.reportingRepo.GetCustomerARTotals(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}
	return debit.Sub(credit), nil
}

// SupplierBalance sums credit minus debit over Accounts Payable lines tagged
// with the supplier. Positive means we owe the supplier.
func (s *reportingService) SupplierBalance(ctx context.Context, supplierID string) (decimal.Decimal, error) {
	debit, credit, err := s.reportingRepo.GetSupplierAPTotals(ctx, supplierID)
	if err != nil {
		return decimal.Zero, err
	}
	return credit.Sub(debit), nil
}
