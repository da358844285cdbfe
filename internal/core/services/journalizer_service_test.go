package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/apperrors"
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	portsrepo "github.com/RusingAcademy/accounting-engine/internal/core/ports/repositories"
	portssvc "github.com/RusingAcademy/accounting-engine/internal/core/ports/services"
	"github.com/RusingAcademy/accounting-engine/internal/core/services"
	"github.com/RusingAcademy/accounting-engine/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalService (as used by JournalizerService) ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) PostEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockJournalService) ListAccountLines(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.EntryLine, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.EntryLine), returnedNextToken, args.Error(2)
}

func (m *MockJournalService) ReverseEntry(ctx context.Context, entryID string, reason string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ReverseBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, sourceType, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Mock BusinessRecordReader ---
type MockBusinessRecordReader struct {
	mock.Mock
}

var _ portsrepo.BusinessRecordReader = (*MockBusinessRecordReader)(nil)

func (m *MockBusinessRecordReader) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockBusinessRecordReader) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockBusinessRecordReader) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockBusinessRecordReader) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

// --- Test Suite Setup ---
type JournalizerServiceTestSuite struct {
	suite.Suite
	mockJournalSvc *MockJournalService
	mockAccountSvc *MockAccountService
	mockRecords    *MockBusinessRecordReader
	service        portssvc.JournalizerSvcFacade
	system         domain.SystemAccounts
}

func (suite *JournalizerServiceTestSuite) SetupTest() {
	suite.mockJournalSvc = new(MockJournalService)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockRecords = new(MockBusinessRecordReader)

	suite.system = domain.SystemAccounts{
		Bank:               domain.Account{AccountID: uuid.NewString(), Name: domain.SystemAccountBank, AccountType: domain.Bank, IsActive: true},
		AccountsReceivable: domain.Account{AccountID: uuid.NewString(), Name: domain.SystemAccountAR, AccountType: domain.AccountsReceivable, IsActive: true},
		AccountsPayable:    domain.Account{AccountID: uuid.NewString(), Name: domain.SystemAccountAP, AccountType: domain.AccountsPayable, IsActive: true},
		Sales:              domain.Account{AccountID: uuid.NewString(), Name: domain.SystemAccountSales, AccountType: domain.Income, IsActive: true},
		TaxPayable:         domain.Account{AccountID: uuid.NewString(), Name: domain.SystemAccountTaxPayable, AccountType: domain.OtherCurrentLiabilities, IsActive: true},
		TaxReceivable:      domain.Account{AccountID: uuid.NewString(), Name: domain.SystemAccountTaxReceivable, AccountType: domain.OtherCurrentAssets, IsActive: true},
		UndepositedFunds:   domain.Account{AccountID: uuid.NewString(), Name: domain.SystemAccountUndepositedFunds, AccountType: domain.OtherCurrentAssets, IsActive: true},
		MiscExpenses:       domain.Account{AccountID: uuid.NewString(), Name: domain.SystemAccountMiscExpenses, AccountType: domain.Expenses, IsActive: true},
	}
	suite.service = services.NewJournalizerService(suite.mockJournalSvc, suite.mockAccountSvc, suite.mockRecords, suite.system)
}

// capturePostedRequest arranges for PostEntry to succeed while recording the
// request it was handed, so assertions can inspect the derived line set.
func (suite *JournalizerServiceTestSuite) capturePostedRequest(captured *dto.CreateEntryRequest) {
	suite.mockJournalSvc.On("PostEntry", mock.Anything, mock.AnythingOfType("dto.CreateEntryRequest")).
		Run(func(args mock.Arguments) {
			*captured = args.Get(1).(dto.CreateEntryRequest)
		}).
		Return(&domain.JournalEntry{EntryID: uuid.NewString(), EntryNumber: "JE-0001"}, nil).Once()
}

// --- Test Cases ---

func (suite *JournalizerServiceTestSuite) TestJournalizeInvoice_WithTax() {
	ctx := context.Background()
	invoiceDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	invoice := &domain.Invoice{
		InvoiceID:     "inv-1",
		InvoiceNumber: "INV-100",
		CustomerID:    "cust-7",
		InvoiceDate:   invoiceDate,
		Subtotal:      decimal.RequireFromString("100.00"),
		TaxAmount:     decimal.RequireFromString("13.00"),
		Total:         decimal.RequireFromString("113.00"),
	}

	suite.mockRecords.On("FindInvoiceByID", ctx, "inv-1").Return(invoice, nil).Once()
	var posted dto.CreateEntryRequest
	suite.capturePostedRequest(&posted)

	entry, err := suite.service.JournalizeInvoice(ctx, "inv-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("Invoice INV-100 to customer #cust-7", posted.Memo)
	suite.Equal(string(domain.SourceInvoice), posted.SourceType)
	suite.Equal("inv-1", posted.SourceID)
	suite.Equal(invoiceDate, posted.EntryDate)

	suite.Require().Len(posted.Lines, 3)
	ar := posted.Lines[0]
	suite.Equal(suite.system.AccountsReceivable.AccountID, ar.AccountID)
	suite.True(ar.Debit.Equal(decimal.RequireFromString("113.00")))
	suite.Equal("Invoice INV-100", ar.Description)
	suite.Equal("cust-7", ar.CustomerID)

	sales := posted.Lines[1]
	suite.Equal(suite.system.Sales.AccountID, sales.AccountID)
	suite.True(sales.Credit.Equal(decimal.RequireFromString("100.00")))
	suite.Equal("Invoice INV-100 - Sales", sales.Description)

	tax := posted.Lines[2]
	suite.Equal(suite.system.TaxPayable.AccountID, tax.AccountID)
	suite.True(tax.Credit.Equal(decimal.RequireFromString("13.00")))
	suite.Equal("Invoice INV-100 - Tax", tax.Description)

	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *JournalizerServiceTestSuite) TestJournalizeInvoice_NoTaxOmitsTaxLine() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID:     "inv-2",
		InvoiceNumber: "INV-101",
		CustomerID:    "cust-7",
		InvoiceDate:   time.Now().UTC(),
		Subtotal:      decimal.RequireFromString("50.00"),
		Total:         decimal.RequireFromString("50.00"),
	}

	suite.mockRecords.On("FindInvoiceByID", ctx, "inv-2").Return(invoice, nil).Once()
	var posted dto.CreateEntryRequest
	suite.capturePostedRequest(&posted)

	entry, err := suite.service.JournalizeInvoice(ctx, "inv-2")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Require().Len(posted.Lines, 2)
	suite.True(posted.Lines[1].Credit.Equal(decimal.RequireFromString("50.00")),
		"full total should be recognized as sales when there is no tax")
}

func (suite *JournalizerServiceTestSuite) TestJournalizeInvoice_SubtotalDerivedFromTotal() {
	ctx := context.Background()
	// A stored subtotal that disagrees with total-tax must not unbalance the entry.
	invoice := &domain.Invoice{
		InvoiceID:     "inv-3",
		InvoiceNumber: "INV-102",
		CustomerID:    "cust-7",
		InvoiceDate:   time.Now().UTC(),
		Subtotal:      decimal.RequireFromString("999.99"),
		TaxAmount:     decimal.RequireFromString("13.00"),
		Total:         decimal.RequireFromString("113.00"),
	}

	suite.mockRecords.On("FindInvoiceByID", ctx, "inv-3").Return(invoice, nil).Once()
	var posted dto.CreateEntryRequest
	suite.capturePostedRequest(&posted)

	_, err := suite.service.JournalizeInvoice(ctx, "inv-3")

	suite.Require().NoError(err)
	suite.True(posted.Lines[1].Credit.Equal(decimal.RequireFromString("100.00")),
		"sales line should be total minus tax, not the stored subtotal")
}

func (suite *JournalizerServiceTestSuite) TestJournalizeInvoice_MissingRecordPostsNothing() {
	ctx := context.Background()

	suite.mockRecords.On("FindInvoiceByID", ctx, "inv-gone").Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.JournalizeInvoice(ctx, "inv-gone")

	suite.Require().NoError(err)
	suite.Nil(entry)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything)
}

func (suite *JournalizerServiceTestSuite) TestJournalizeInvoice_ZeroTotalPostsNothing() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID:     "inv-zero",
		InvoiceNumber: "INV-103",
		CustomerID:    "cust-7",
		Total:         decimal.Zero,
	}

	suite.mockRecords.On("FindInvoiceByID", ctx, "inv-zero").Return(invoice, nil).Once()

	entry, err := suite.service.JournalizeInvoice(ctx, "inv-zero")

	suite.Require().NoError(err)
	suite.Nil(entry)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything)
}

func (suite *JournalizerServiceTestSuite) TestJournalizePayment_DebitsUndepositedFunds() {
	ctx := context.Background()
	paymentDate := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	payment := &domain.Payment{
		PaymentID:   "pay-1",
		CustomerID:  "cust-3",
		PaymentDate: paymentDate,
		Amount:      decimal.RequireFromString("113.00"),
	}

	suite.mockRecords.On("FindPaymentByID", ctx, "pay-1").Return(payment, nil).Once()
	var posted dto.CreateEntryRequest
	suite.capturePostedRequest(&posted)

	entry, err := suite.service.JournalizePayment(ctx, "pay-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("Payment received from customer #cust-3", posted.Memo)
	suite.Equal(paymentDate, posted.EntryDate)

	suite.Require().Len(posted.Lines, 2)
	suite.Equal(suite.system.UndepositedFunds.AccountID, posted.Lines[0].AccountID,
		"receipts land in Undeposited Funds, not Bank")
	suite.True(posted.Lines[0].Debit.Equal(payment.Amount))
	suite.Equal("Payment received", posted.Lines[0].Description)
	suite.Equal("cust-3", posted.Lines[0].CustomerID)

	suite.Equal(suite.system.AccountsReceivable.AccountID, posted.Lines[1].AccountID)
	suite.True(posted.Lines[1].Credit.Equal(payment.Amount))
	suite.Equal("Payment applied", posted.Lines[1].Description)
	suite.Equal("cust-3", posted.Lines[1].CustomerID)
}

func (suite *JournalizerServiceTestSuite) TestJournalizePayment_ZeroAmountPostsNothing() {
	ctx := context.Background()
	payment := &domain.Payment{PaymentID: "pay-0", CustomerID: "cust-3", Amount: decimal.Zero}

	suite.mockRecords.On("FindPaymentByID", ctx, "pay-0").Return(payment, nil).Once()

	entry, err := suite.service.JournalizePayment(ctx, "pay-0")

	suite.Require().NoError(err)
	suite.Nil(entry)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything)
}

func (suite *JournalizerServiceTestSuite) TestJournalizeExpense_CategorizedWithTax() {
	ctx := context.Background()
	categoryAccount := &domain.Account{
		AccountID:   uuid.NewString(),
		Name:        "Software Subscriptions",
		AccountType: domain.Expenses,
		IsActive:    true,
	}
	expense := &domain.Expense{
		ExpenseID:   "exp-1",
		PayeeName:   "Acme Hosting",
		AccountID:   categoryAccount.AccountID,
		ExpenseDate: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		TaxAmount:   decimal.RequireFromString("2.60"),
		Total:       decimal.RequireFromString("22.60"),
	}

	suite.mockRecords.On("FindExpenseByID", ctx, "exp-1").Return(expense, nil).Once()
	suite.mockAccountSvc.On("GetAccountByID", ctx, categoryAccount.AccountID).Return(categoryAccount, nil).Once()
	var posted dto.CreateEntryRequest
	suite.capturePostedRequest(&posted)

	entry, err := suite.service.JournalizeExpense(ctx, "exp-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("Expense paid to Acme Hosting", posted.Memo)

	suite.Require().Len(posted.Lines, 3)
	suite.Equal(categoryAccount.AccountID, posted.Lines[0].AccountID)
	suite.True(posted.Lines[0].Debit.Equal(decimal.RequireFromString("20.00")))
	suite.Equal("Expense: Acme Hosting", posted.Lines[0].Description)

	suite.Equal(suite.system.TaxReceivable.AccountID, posted.Lines[1].AccountID)
	suite.True(posted.Lines[1].Debit.Equal(decimal.RequireFromString("2.60")))
	suite.Equal("Tax on expense", posted.Lines[1].Description)

	suite.Equal(suite.system.Bank.AccountID, posted.Lines[2].AccountID)
	suite.True(posted.Lines[2].Credit.Equal(decimal.RequireFromString("22.60")))
	suite.Equal("Payment for expense", posted.Lines[2].Description)

	suite.mockAccountSvc.AssertExpectations(suite.T())
}

func (suite *JournalizerServiceTestSuite) TestJournalizeExpense_UncategorizedFallsBackToMiscExpenses() {
	ctx := context.Background()
	expense := &domain.Expense{
		ExpenseID:   "exp-2",
		ExpenseDate: time.Now().UTC(),
		Total:       decimal.RequireFromString("40.00"),
	}

	suite.mockRecords.On("FindExpenseByID", ctx, "exp-2").Return(expense, nil).Once()
	var posted dto.CreateEntryRequest
	suite.capturePostedRequest(&posted)

	entry, err := suite.service.JournalizeExpense(ctx, "exp-2")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("Expense paid to Unknown", posted.Memo, "missing payee falls back to Unknown")

	suite.Require().Len(posted.Lines, 2)
	suite.Equal(suite.system.MiscExpenses.AccountID, posted.Lines[0].AccountID)
	suite.True(posted.Lines[0].Debit.Equal(decimal.RequireFromString("40.00")))
	suite.Equal("Expense: Unknown", posted.Lines[0].Description)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "GetAccountByID", mock.Anything, mock.Anything)
}

func (suite *JournalizerServiceTestSuite) TestJournalizeBill_DebitsMiscCreditsPayable() {
	ctx := context.Background()
	billDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	bill := &domain.Bill{
		BillID:     "bill-1",
		BillNumber: "B-55",
		SupplierID: "supp-9",
		BillDate:   billDate,
		Total:      decimal.RequireFromString("250.00"),
	}

	suite.mockRecords.On("FindBillByID", ctx, "bill-1").Return(bill, nil).Once()
	var posted dto.CreateEntryRequest
	suite.capturePostedRequest(&posted)

	entry, err := suite.service.JournalizeBill(ctx, "bill-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("Bill B-55 from supplier #supp-9", posted.Memo)
	suite.Equal(billDate, posted.EntryDate)

	suite.Require().Len(posted.Lines, 2)
	suite.Equal(suite.system.MiscExpenses.AccountID, posted.Lines[0].AccountID)
	suite.True(posted.Lines[0].Debit.Equal(bill.Total))
	suite.Equal("Bill B-55", posted.Lines[0].Description)
	suite.Equal("supp-9", posted.Lines[0].SupplierID)

	suite.Equal(suite.system.AccountsPayable.AccountID, posted.Lines[1].AccountID)
	suite.True(posted.Lines[1].Credit.Equal(bill.Total))
	suite.Equal("Bill B-55", posted.Lines[1].Description)
	suite.Equal("supp-9", posted.Lines[1].SupplierID)
}

func (suite *JournalizerServiceTestSuite) TestJournalizeBillPayment_Success() {
	ctx := context.Background()
	bill := &domain.Bill{
		BillID:     "bill-1",
		BillNumber: "B-55",
		SupplierID: "supp-9",
		Total:      decimal.RequireFromString("250.00"),
	}
	paymentAccountID := uuid.NewString()

	suite.mockRecords.On("FindBillByID", ctx, "bill-1").Return(bill, nil).Once()
	var posted dto.CreateEntryRequest
	suite.capturePostedRequest(&posted)

	entry, err := suite.service.JournalizeBillPayment(ctx, "bill-1", decimal.RequireFromString("100.00"), paymentAccountID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("Bill payment for Bill #B-55", posted.Memo)
	suite.Equal(string(domain.SourceBillPayment), posted.SourceType)
	suite.Equal("bill-1", posted.SourceID)

	suite.Require().Len(posted.Lines, 2)
	suite.Equal(suite.system.AccountsPayable.AccountID, posted.Lines[0].AccountID)
	suite.True(posted.Lines[0].Debit.Equal(decimal.RequireFromString("100.00")))
	suite.Equal("Payment on Bill #B-55", posted.Lines[0].Description)
	suite.Equal("supp-9", posted.Lines[0].SupplierID)

	suite.Equal(paymentAccountID, posted.Lines[1].AccountID)
	suite.True(posted.Lines[1].Credit.Equal(decimal.RequireFromString("100.00")))
	suite.Equal("Payment from account", posted.Lines[1].Description)
}

func (suite *JournalizerServiceTestSuite) TestJournalizeBillPayment_FallsBackToBillID() {
	ctx := context.Background()
	bill := &domain.Bill{
		BillID:     "bill-7",
		SupplierID: "supp-9",
		Total:      decimal.RequireFromString("80.00"),
	}

	suite.mockRecords.On("FindBillByID", ctx, "bill-7").Return(bill, nil).Once()
	var posted dto.CreateEntryRequest
	suite.capturePostedRequest(&posted)

	_, err := suite.service.JournalizeBillPayment(ctx, "bill-7", decimal.RequireFromString("80.00"), uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("Bill payment for Bill #bill-7", posted.Memo, "bill id stands in for a missing bill number")
}

func (suite *JournalizerServiceTestSuite) TestJournalizeBillPayment_MissingBillPostsNothing() {
	ctx := context.Background()

	suite.mockRecords.On("FindBillByID", ctx, "bill-gone").Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.JournalizeBillPayment(ctx, "bill-gone", decimal.RequireFromString("10.00"), uuid.NewString())

	suite.Require().NoError(err)
	suite.Nil(entry)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything)
}

func (suite *JournalizerServiceTestSuite) TestJournalizeBillPayment_ZeroAmountPostsNothing() {
	ctx := context.Background()
	bill := &domain.Bill{BillID: "bill-1", SupplierID: "supp-9", Total: decimal.RequireFromString("250.00")}

	suite.mockRecords.On("FindBillByID", ctx, "bill-1").Return(bill, nil).Once()

	entry, err := suite.service.JournalizeBillPayment(ctx, "bill-1", decimal.Zero, uuid.NewString())

	suite.Require().NoError(err)
	suite.Nil(entry)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything)
}

func (suite *JournalizerServiceTestSuite) TestJournalizeTransfer_Success() {
	ctx := context.Background()
	fromID := uuid.NewString()
	toID := uuid.NewString()
	date := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	var posted dto.CreateEntryRequest
	suite.capturePostedRequest(&posted)

	entry, err := suite.service.JournalizeTransfer(ctx, fromID, toID, decimal.RequireFromString("500.00"), date, "Move to savings")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("Move to savings", posted.Memo)
	suite.Equal(date, posted.EntryDate)

	suite.Require().Len(posted.Lines, 2)
	suite.Equal(toID, posted.Lines[0].AccountID)
	suite.True(posted.Lines[0].Debit.Equal(decimal.RequireFromString("500.00")))
	suite.Equal("Transfer in", posted.Lines[0].Description)
	suite.Equal(fromID, posted.Lines[1].AccountID)
	suite.True(posted.Lines[1].Credit.Equal(decimal.RequireFromString("500.00")))
	suite.Equal("Transfer out", posted.Lines[1].Description)
}

func (suite *JournalizerServiceTestSuite) TestJournalizeTransfer_DefaultMemo() {
	ctx := context.Background()

	var posted dto.CreateEntryRequest
	suite.capturePostedRequest(&posted)

	_, err := suite.service.JournalizeTransfer(ctx, uuid.NewString(), uuid.NewString(), decimal.RequireFromString("10.00"), time.Now().UTC(), "")

	suite.Require().NoError(err)
	suite.Equal("Transfer between accounts", posted.Memo)
}

func (suite *JournalizerServiceTestSuite) TestJournalizeTransfer_SameAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()

	entry, err := suite.service.JournalizeTransfer(ctx, accountID, accountID, decimal.RequireFromString("10.00"), time.Now().UTC(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything)
}

func (suite *JournalizerServiceTestSuite) TestJournalizeTransfer_ZeroAmountPostsNothing() {
	ctx := context.Background()

	entry, err := suite.service.JournalizeTransfer(ctx, uuid.NewString(), uuid.NewString(), decimal.Zero, time.Now().UTC(), "")

	suite.Require().NoError(err)
	suite.Nil(entry)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything)
}

func TestJournalizerService(t *testing.T) {
	suite.Run(t, new(JournalizerServiceTestSuite))
}
