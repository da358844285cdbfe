package repositories

import (
	"context"

	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
)

// BusinessRecordReader reads the business records the journalizers derive
// entries from. These stores are owned by the wider application; the ledger
// never writes to them.
type BusinessRecordReader interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)
}
