package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account within the chart of accounts.
// The values follow the conventional small-business taxonomy so that
// reports can bucket accounts without a separate mapping table.
type AccountType string

const (
	Bank                    AccountType = "Bank"
	AccountsReceivable      AccountType = "Accounts Receivable"
	AccountsPayable         AccountType = "Accounts Payable"
	OtherCurrentAssets      AccountType = "Other Current Assets"
	FixedAssets             AccountType = "Fixed Assets"
	OtherAssets             AccountType = "Other Assets"
	CreditCard              AccountType = "Credit Card"
	OtherCurrentLiabilities AccountType = "Other Current Liabilities"
	LongTermLiabilities     AccountType = "Long Term Liabilities"
	Equity                  AccountType = "Equity"
	Income                  AccountType = "Income"
	OtherIncome             AccountType = "Other Income"
	CostOfGoodsSold         AccountType = "Cost of Goods Sold"
	Expenses                AccountType = "Expenses"
	OtherExpenses           AccountType = "Other Expenses"
)

// AccountTypes lists every valid account type.
var AccountTypes = []AccountType{
	Bank, AccountsReceivable, AccountsPayable, OtherCurrentAssets,
	FixedAssets, OtherAssets, CreditCard, OtherCurrentLiabilities,
	LongTermLiabilities, Equity, Income, OtherIncome, CostOfGoodsSold,
	Expenses, OtherExpenses,
}

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NormalDebit reports whether the account type's normal balance side is debit.
// A debit increases asset and expense accounts; everything else grows on credit.
func (t AccountType) NormalDebit() bool {
	switch t {
	case Bank, AccountsReceivable, OtherCurrentAssets, FixedAssets, OtherAssets,
		CostOfGoodsSold, Expenses, OtherExpenses:
		return true
	}
	return false
}

// IsAsset reports whether the account type belongs on the asset side of the balance sheet.
func (t AccountType) IsAsset() bool {
	switch t {
	case Bank, AccountsReceivable, OtherCurrentAssets, FixedAssets, OtherAssets:
		return true
	}
	return false
}

// IsLiability reports whether the account type belongs on the liability side of the balance sheet.
func (t AccountType) IsLiability() bool {
	switch t {
	case AccountsPayable, CreditCard, OtherCurrentLiabilities, LongTermLiabilities:
		return true
	}
	return false
}

// IsEquity reports whether the account type is equity.
func (t AccountType) IsEquity() bool {
	return t == Equity
}

// IsIncome reports whether the account type appears on the income side of the P&L.
func (t AccountType) IsIncome() bool {
	return t == Income || t == OtherIncome
}

// IsExpense reports whether the account type appears on the expense side of the P&L.
func (t AccountType) IsExpense() bool {
	return t == Expenses || t == OtherExpenses || t == CostOfGoodsSold
}

// Account represents one account in the chart of accounts.
// Balance is a cached projection of the lines posted against the account;
// it is recomputed from full history, never maintained independently.
type Account struct {
	AccountID   string          `json:"accountID"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	DetailType  string          `json:"detailType"`
	Description string          `json:"description"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// Well-known system account names, materialized lazily on first use.
const (
	SystemAccountBank             = "RusingAcademy"
	SystemAccountAR               = "Accounts Receivable"
	SystemAccountAP               = "Accounts Payable"
	SystemAccountSales            = "Sales"
	SystemAccountTaxPayable       = "GST/HST Payable"
	SystemAccountTaxReceivable    = "GST/HST Receivable"
	SystemAccountUndepositedFunds = "Undeposited Funds"
	SystemAccountMiscExpenses     = "Miscellaneous Expenses"
)

// SystemAccounts holds the resolved well-known accounts the journalizers
// post against. It is materialized once at startup so journalizers work
// with concrete account ids instead of doing per-post lookups.
type SystemAccounts struct {
	Bank               Account
	AccountsReceivable Account
	AccountsPayable    Account
	Sales              Account
	TaxPayable         Account
	TaxReceivable      Account
	UndepositedFunds   Account
	MiscExpenses       Account
}
