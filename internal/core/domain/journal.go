package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceType identifies the kind of business record a journal entry was
// generated from. Entries posted directly through the API carry no source.
type SourceType string

const (
	SourceInvoice     SourceType = "invoice"
	SourcePayment     SourceType = "payment"
	SourceExpense     SourceType = "expense"
	SourceBill        SourceType = "bill"
	SourceBillPayment SourceType = "bill_payment"
)

// JournalEntry is an atomic, balanced set of postings recorded on one date.
// Entries are immutable once created; corrections happen through a new
// reversing entry, never by updating or deleting the original.
type JournalEntry struct {
	EntryID     string     `json:"entryID"`
	EntryNumber string     `json:"entryNumber"`
	EntryDate   time.Time  `json:"entryDate"`
	Memo        string     `json:"memo"`
	IsAdjusting bool       `json:"isAdjusting"`
	SourceType  SourceType `json:"sourceType,omitempty"`
	SourceID    string     `json:"sourceID,omitempty"`
	AuditFields
	Lines []EntryLine `json:"lines,omitempty"`
}

// EntryLine is one debit-or-credit posting of a journal entry against one
// account. Exactly one of Debit/Credit is strictly positive; the other is zero.
type EntryLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
	CustomerID  string          `json:"customerID,omitempty"`
	SupplierID  string          `json:"supplierID,omitempty"`
	SortOrder   int             `json:"sortOrder"`
}
