package services

import (
	"context"
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalizerSvcFacade derives balanced journal entries from business
// records. Record-driven operations return (nil, nil) when the record is
// missing or zero-valued, so callers can skip gracefully.
type JournalizerSvcFacade interface {
	JournalizeInvoice(ctx context.Context, invoiceID string) (*domain.JournalEntry, error)
	JournalizePayment(ctx context.Context, paymentID string) (*domain.JournalEntry, error)
	JournalizeExpense(ctx context.Context, expenseID string) (*domain.JournalEntry, error)
	JournalizeBill(ctx context.Context, billID string) (*domain.JournalEntry, error)

	// JournalizeBillPayment debits Accounts Payable and credits the
	// caller-specified payment account.
	JournalizeBillPayment(ctx context.Context, billID string, amount decimal.Decimal, paymentAccountID string) (*domain.JournalEntry, error)

	// JournalizeTransfer moves an amount between two accounts on the given date.
	JournalizeTransfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, date time.Time, memo string) (*domain.JournalEntry, error)
}
