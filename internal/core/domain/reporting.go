package domain

import (
	"github.com/shopspring/decimal"
)

// ReportLine is one account's net amount within a financial report.
type ReportLine struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// ProfitAndLossReport aggregates income and expense activity over a period.
type ProfitAndLossReport struct {
	Income        []ReportLine    `json:"income"`
	Expenses      []ReportLine    `json:"expenses"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// BalanceSheetReport is a point-in-time snapshot of assets, liabilities and
// equity, including a synthetic retained-earnings line for accumulated net income.
type BalanceSheetReport struct {
	Assets           []ReportLine    `json:"assets"`
	Liabilities      []ReportLine    `json:"liabilities"`
	Equity           []ReportLine    `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// MonthlyPnLRow is one month of the monthly profit-and-loss trend.
type MonthlyPnLRow struct {
	Month     int             `json:"month"`
	MonthName string          `json:"monthName"`
	Income    decimal.Decimal `json:"income"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetProfit decimal.Decimal `json:"netProfit"`
}

// MonthlyBalanceRow is one month-end snapshot of the monthly balance-sheet trend.
type MonthlyBalanceRow struct {
	Month       int             `json:"month"`
	MonthName   string          `json:"monthName"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}

// TrialBalanceRow is one account's debit and credit totals as of a date.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// AccountActivity is one account's summed debit and credit activity within a
// date range, as returned by the reporting repository.
type AccountActivity struct {
	AccountID   string
	Name        string
	AccountType AccountType
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// MonthlyActivity is summed debit/credit activity per calendar month and account type.
type MonthlyActivity struct {
	Month       int
	AccountType AccountType
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}
