package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/apperrors"
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	portsrepo "github.com/RusingAcademy/accounting-engine/internal/core/ports/repositories"
	portssvc "github.com/RusingAcademy/accounting-engine/internal/core/ports/services"
	"github.com/RusingAcademy/accounting-engine/internal/dto"
	"github.com/shopspring/decimal"
)

// sourceJournalizer derives a candidate journal entry from one kind of
// business record. Build returns (nil, nil) when the record is missing or
// zero-valued, meaning nothing should be posted.
type sourceJournalizer interface {
	Kind() domain.SourceType
	Build(ctx context.Context, sourceID string) (*dto.CreateEntryRequest, error)
}

type journalizerService struct {
	BaseService
	journalSvc portssvc.JournalSvcFacade
	accountSvc portssvc.AccountSvcFacade
	recordRepo portsrepo.BusinessRecordReader
	builders   map[domain.SourceType]sourceJournalizer
	system     domain.SystemAccounts
}

// NewJournalizerService creates the journalizer service. The system account
// set must already be resolved; journalizers never look accounts up mid-post.
func NewJournalizerService(
	journalSvc portssvc.JournalSvcFacade,
	accountSvc portssvc.AccountSvcFacade,
	recordRepo portsrepo.BusinessRecordReader,
	system domain.SystemAccounts,
) portssvc.JournalizerSvcFacade {
	s := &journalizerService{
		journalSvc: journalSvc,
		accountSvc: accountSvc,
		recordRepo: recordRepo,
		system:     system,
	}
	builders := []sourceJournalizer{
		&invoiceJournalizer{records: recordRepo, system: system},
		&paymentJournalizer{records: recordRepo, system: system},
		&expenseJournalizer{records: recordRepo, accounts: accountSvc, system: system},
		&billJournalizer{records: recordRepo, system: system},
	}
	s.builders = make(map[domain.SourceType]sourceJournalizer, len(builders))
	for _, b := range builders {
		s.builders[b.Kind()] = b
	}
	return s
}

var _ portssvc.JournalizerSvcFacade = (*journalizerService)(nil)

// journalize runs the shared build-then-post pipeline for one source kind.
func (s *journalizerService) journalize(ctx context.Context, kind domain.SourceType, sourceID string) (*domain.JournalEntry, error) {
	builder, ok := s.builders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: no journalizer for source type %q", apperrors.ErrValidation, kind)
	}
	req, err := builder.Build(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		// Missing or zero-valued record: nothing to post.
		s.LogDebug(ctx, "nothing to journalize",
			slog.String("source_type", string(kind)),
			slog.String("source_id", sourceID))
		return nil, nil
	}
	req.SourceType = string(kind)
	req.SourceID = sourceID
	return s.journalSvc.PostEntry(ctx, *req)
}

func (s *journalizerService) JournalizeInvoice(ctx context.Context, invoiceID string) (*domain.JournalEntry, error) {
	return s.journalize(ctx, domain.SourceInvoice, invoiceID)
}

func (s *journalizerService) JournalizePayment(ctx context.Context, paymentID string) (*domain.JournalEntry, error) {
	return s.journalize(ctx, domain.SourcePayment, paymentID)
}

func (s *journalizerService) JournalizeExpense(ctx context.Context, expenseID string) (*domain.JournalEntry, error) {
	return s.journalize(ctx, domain.SourceExpense, expenseID)
}

func (s *journalizerService) JournalizeBill(ctx context.Context, billID string) (*domain.JournalEntry, error) {
	return s.journalize(ctx, domain.SourceBill, billID)
}

// JournalizeBillPayment settles (part of) a bill: debit Accounts Payable,
// credit the caller-specified payment account.
func (s *journalizerService) JournalizeBillPayment(ctx context.Context, billID string, amount decimal.Decimal, paymentAccountID string) (*domain.JournalEntry, error) {
	bill, err := s.recordRepo.FindBillByID(ctx, billID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if amount.Round(2).IsZero() {
		return nil, nil
	}

	billRef := bill.BillNumber
	if billRef == "" {
		billRef = billID
	}
	req := dto.CreateEntryRequest{
		EntryDate:  time.Now().UTC(),
		Memo:       fmt.Sprintf("Bill payment for Bill #%s", billRef),
		SourceType: string(domain.SourceBillPayment),
		SourceID:   billID,
		Lines: []dto.EntryLineRequest{
			{
				AccountID:   s.system.AccountsPayable.AccountID,
				Debit:       amount,
				Description: fmt.Sprintf("Payment on Bill #%s", billRef),
				SupplierID:  bill.SupplierID,
			},
			{
				AccountID:   paymentAccountID,
				Credit:      amount,
				Description: "Payment from account",
			},
		},
	}
	return s.journalSvc.PostEntry(ctx, req)
}

// JournalizeTransfer moves an amount between two accounts on the given date.
func (s *journalizerService) JournalizeTransfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, date time.Time, memo string) (*domain.JournalEntry, error) {
	if amount.Round(2).IsZero() {
		return nil, nil
	}
	if fromAccountID == toAccountID {
		return nil, fmt.Errorf("%w: transfer requires two distinct accounts", apperrors.ErrValidation)
	}
	if memo == "" {
		memo = "Transfer between accounts"
	}
	req := dto.CreateEntryRequest{
		EntryDate: date,
		Memo:      memo,
		Lines: []dto.EntryLineRequest{
			{AccountID: toAccountID, Debit: amount, Description: "Transfer in"},
			{AccountID: fromAccountID, Credit: amount, Description: "Transfer out"},
		},
	}
	return s.journalSvc.PostEntry(ctx, req)
}

// invoiceJournalizer records revenue recognition:
// debit AR for the total, credit Sales for the pre-tax amount, credit the tax
// liability for the tax portion when present.
type invoiceJournalizer struct {
	records portsrepo.BusinessRecordReader
	system  domain.SystemAccounts
}

func (j *invoiceJournalizer) Kind() domain.SourceType { return domain.SourceInvoice }

func (j *invoiceJournalizer) Build(ctx context.Context, sourceID string) (*dto.CreateEntryRequest, error) {
	inv, err := j.records.FindInvoiceByID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	total := inv.Total.Round(2)
	if total.IsZero() {
		return nil, nil
	}
	tax := inv.TaxAmount.Round(2)
	subtotal := total.Sub(tax)

	lines := []dto.EntryLineRequest{
		{
			AccountID:   j.system.AccountsReceivable.AccountID,
			Debit:       total,
			Description: fmt.Sprintf("Invoice %s", inv.InvoiceNumber),
			CustomerID:  inv.CustomerID,
		},
		{
			AccountID:   j.system.Sales.AccountID,
			Credit:      subtotal,
			Description: fmt.Sprintf("Invoice %s - Sales", inv.InvoiceNumber),
		},
	}
	if tax.IsPositive() {
		lines = append(lines, dto.EntryLineRequest{
			AccountID:   j.system.TaxPayable.AccountID,
			Credit:      tax,
			Description: fmt.Sprintf("Invoice %s - Tax", inv.InvoiceNumber),
		})
	}
	return &dto.CreateEntryRequest{
		EntryDate: inv.InvoiceDate,
		Memo:      fmt.Sprintf("Invoice %s to customer #%s", inv.InvoiceNumber, inv.CustomerID),
		Lines:     lines,
	}, nil
}

// paymentJournalizer records cash receipt against receivables:
// debit Undeposited Funds, credit AR, both tagged with the customer.
type paymentJournalizer struct {
	records portsrepo.BusinessRecordReader
	system  domain.SystemAccounts
}

func (j *paymentJournalizer) Kind() domain.SourceType { return domain.SourcePayment }

func (j *paymentJournalizer) Build(ctx context.Context, sourceID string) (*dto.CreateEntryRequest, error) {
	pmt, err := j.records.FindPaymentByID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	amount := pmt.Amount.Round(2)
	if amount.IsZero() {
		return nil, nil
	}
	return &dto.CreateEntryRequest{
		EntryDate: pmt.PaymentDate,
		Memo:      fmt.Sprintf("Payment received from customer #%s", pmt.CustomerID),
		Lines: []dto.EntryLineRequest{
			{
				AccountID:   j.system.UndepositedFunds.AccountID,
				Debit:       amount,
				Description: "Payment received",
				CustomerID:  pmt.CustomerID,
			},
			{
				AccountID:   j.system.AccountsReceivable.AccountID,
				Credit:      amount,
				Description: "Payment applied",
				CustomerID:  pmt.CustomerID,
			},
		},
	}, nil
}

// expenseJournalizer records a paid expense:
// debit the category account (or Miscellaneous Expenses) for the pre-tax
// amount, debit the tax receivable for the tax portion, credit Bank in full.
type expenseJournalizer struct {
	records  portsrepo.BusinessRecordReader
	accounts portssvc.AccountSvcFacade
	system   domain.SystemAccounts
}

func (j *expenseJournalizer) Kind() domain.SourceType { return domain.SourceExpense }

func (j *expenseJournalizer) Build(ctx context.Context, sourceID string) (*dto.CreateEntryRequest, error) {
	exp, err := j.records.FindExpenseByID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	total := exp.Total.Round(2)
	if total.IsZero() {
		return nil, nil
	}

	categoryID := j.system.MiscExpenses.AccountID
	if exp.AccountID != "" {
		category, err := j.accounts.GetAccountByID(ctx, exp.AccountID)
		if err != nil {
			return nil, err
		}
		categoryID = category.AccountID
	}

	payee := exp.PayeeName
	if payee == "" {
		payee = "Unknown"
	}
	tax := exp.TaxAmount.Round(2)
	subtotal := total.Sub(tax)

	lines := []dto.EntryLineRequest{
		{
			AccountID:   categoryID,
			Debit:       subtotal,
			Description: fmt.Sprintf("Expense: %s", payee),
		},
	}
	if tax.IsPositive() {
		lines = append(lines, dto.EntryLineRequest{
			AccountID:   j.system.TaxReceivable.AccountID,
			Debit:       tax,
			Description: "Tax on expense",
		})
	}
	lines = append(lines, dto.EntryLineRequest{
		AccountID:   j.system.Bank.AccountID,
		Credit:      total,
		Description: "Payment for expense",
	})

	return &dto.CreateEntryRequest{
		EntryDate: exp.ExpenseDate,
		Memo:      fmt.Sprintf("Expense paid to %s", payee),
		Lines:     lines,
	}, nil
}

// billJournalizer records a received supplier bill:
// debit Miscellaneous Expenses, credit AP, both tagged with the supplier.
type billJournalizer struct {
	records portsrepo.BusinessRecordReader
	system  domain.SystemAccounts
}

func (j *billJournalizer) Kind() domain.SourceType { return domain.SourceBill }

func (j *billJournalizer) Build(ctx context.Context, sourceID string) (*dto.CreateEntryRequest, error) {
	bill, err := j.records.FindBillByID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	total := bill.Total.Round(2)
	if total.IsZero() {
		return nil, nil
	}
	return &dto.CreateEntryRequest{
		EntryDate: bill.BillDate,
		Memo:      fmt.Sprintf("Bill %s from supplier #%s", bill.BillNumber, bill.SupplierID),
		Lines: []dto.EntryLineRequest{
			{
				AccountID:   j.system.MiscExpenses.AccountID,
				Debit:       total,
				Description: fmt.Sprintf("Bill %s", bill.BillNumber),
				SupplierID:  bill.SupplierID,
			},
			{
				AccountID:   j.system.AccountsPayable.AccountID,
				Credit:      total,
				Description: fmt.Sprintf("Bill %s", bill.BillNumber),
				SupplierID:  bill.SupplierID,
			},
		},
	}, nil
}
