package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the database representation of a chart-of-accounts entry.
type Account struct {
	AccountID   string          `db:"account_id"`
	Name        string          `db:"name"`
	AccountType string          `db:"account_type"`
	DetailType  string          `db:"detail_type"`
	Description string          `db:"description"`
	Balance     decimal.Decimal `db:"balance"`
	IsActive    bool            `db:"is_active"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
