package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database representation of a journal entry header.
// source_type and source_id are nullable; Go empty strings map to NULL.
type JournalEntry struct {
	EntryID     string    `db:"entry_id"`
	EntryNumber string    `db:"entry_number"`
	EntryDate   time.Time `db:"entry_date"`
	Memo        string    `db:"memo"`
	IsAdjusting bool      `db:"is_adjusting"`
	SourceType  string    `db:"source_type"`
	SourceID    string    `db:"source_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// EntryLine is the database representation of one journal entry line.
type EntryLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	AccountID   string          `db:"account_id"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Description string          `db:"description"`
	CustomerID  string          `db:"customer_id"`
	SupplierID  string          `db:"supplier_id"`
	SortOrder   int             `db:"sort_order"`
}
