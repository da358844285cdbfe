package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// The business records below are read-only inputs to the journalizers.
// Their owning stores live in the wider application; the ledger only ever
// reads the fields needed to derive a balanced line set.

// Invoice is a customer invoice to be recognized as revenue.
type Invoice struct {
	InvoiceID     string
	InvoiceNumber string
	CustomerID    string
	InvoiceDate   time.Time
	Subtotal      decimal.Decimal
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal
}

// Payment is a customer payment applied against receivables.
type Payment struct {
	PaymentID   string
	CustomerID  string
	PaymentDate time.Time
	Amount      decimal.Decimal
}

// Expense is a paid-out expense, optionally categorized to a specific account.
type Expense struct {
	ExpenseID   string
	PayeeName   string
	AccountID   string // optional category account; empty falls back to Miscellaneous Expenses
	ExpenseDate time.Time
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	Total       decimal.Decimal
}

// Bill is a supplier bill recorded as a payable.
type Bill struct {
	BillID     string
	BillNumber string
	SupplierID string
	BillDate   time.Time
	Total      decimal.Decimal
}
