package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/RusingAcademy/accounting-engine/internal/apperrors"
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	portsrepo "github.com/RusingAcademy/accounting-engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBusinessRecordRepository reads the business records that feed the
// journalizers. The ledger never writes these tables.
type PgxBusinessRecordRepository struct {
	BaseRepository
}

func newPgxBusinessRecordRepository(pool *pgxpool.Pool) portsrepo.BusinessRecordReader {
	return &PgxBusinessRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BusinessRecordReader = (*PgxBusinessRecordRepository)(nil)

// FindInvoiceByID retrieves an invoice by its id.
func (r *PgxBusinessRecordRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	query := `
		SELECT invoice_id, invoice_number, customer_id, invoice_date, subtotal, tax_amount, total
		FROM invoices
		WHERE invoice_id = $1;
	`
	var inv domain.Invoice
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&inv.InvoiceID,
		&inv.InvoiceNumber,
		&inv.CustomerID,
		&inv.InvoiceDate,
		&inv.Subtotal,
		&inv.TaxAmount,
		&inv.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}
	return &inv, nil
}

// FindPaymentByID retrieves a customer payment by its id.
func (r *PgxBusinessRecordRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	query := `
		SELECT payment_id, customer_id, payment_date, amount
		FROM payments
		WHERE payment_id = $1;
	`
	var p domain.Payment
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&p.PaymentID,
		&p.CustomerID,
		&p.PaymentDate,
		&p.Amount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, err)
	}
	return &p, nil
}

// FindExpenseByID retrieves an expense by its id.
func (r *PgxBusinessRecordRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	query := `
		SELECT expense_id, payee_name, account_id, expense_date, subtotal, tax_amount, total
		FROM expenses
		WHERE expense_id = $1;
	`
	var e domain.Expense
	var accountID sql.NullString
	err := r.Pool.QueryRow(ctx, query, expenseID).Scan(
		&e.ExpenseID,
		&e.PayeeName,
		&accountID,
		&e.ExpenseDate,
		&e.Subtotal,
		&e.TaxAmount,
		&e.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find expense by ID "+expenseID, err)
	}
	e.AccountID = accountID.String
	return &e, nil
}

// FindBillByID retrieves a supplier bill by its id.
func (r *PgxBusinessRecordRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	query := `
		SELECT bill_id, bill_number, supplier_id, bill_date, total
		FROM bills
		WHERE bill_id = $1;
	`
	var b domain.Bill
	err := r.Pool.QueryRow(ctx, query, billID).Scan(
		&b.BillID,
		&b.BillNumber,
		&b.SupplierID,
		&b.BillDate,
		&b.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find bill by ID "+billID, err)
	}
	return &b, nil
}
