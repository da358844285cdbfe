package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/apperrors"
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	portsrepo "github.com/RusingAcademy/accounting-engine/internal/core/ports/repositories"
	portssvc "github.com/RusingAcademy/accounting-engine/internal/core/ports/services"
	"github.com/RusingAcademy/accounting-engine/internal/core/services"
	"github.com/RusingAcademy/accounting-engine/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNameAndType(ctx context.Context, name string, accountType domain.AccountType) (*domain.Account, error) {
	args := m.Called(ctx, name, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, now time.Time) error {
	args := m.Called(ctx, accountID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) RecalculateBalances(ctx context.Context, accountIDs []string) error {
	args := m.Called(ctx, accountIDs)
	return args.Error(0)
}

func (m *MockAccountRepository) RecalculateBalancesInTx(ctx context.Context, tx pgx.Tx, accountIDs []string) error {
	args := m.Called(ctx, tx, accountIDs)
	return args.Error(0)
}

// --- Test Suite Setup ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Office Rent",
		AccountType: string(domain.Expenses),
		Description: "Monthly office lease",
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(domain.Account)
			suite.NotEmpty(account.AccountID)
			suite.Equal(domain.Expenses, account.AccountType)
			suite.True(account.Balance.IsZero(), "new accounts start with a zero balance")
			suite.True(account.IsActive)
			suite.False(account.CreatedAt.IsZero())
		}).
		Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("Office Rent", created.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Bad", AccountType: "Not A Type"}

	created, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Bank", AccountType: string(domain.Bank)}
	saveErr := errors.New("db down")

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(saveErr).Once()

	created, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, saveErr)
	suite.Nil(created)
}

func (suite *AccountServiceTestSuite) TestGetAccountsByIDs_EmptyInput() {
	ctx := context.Background()

	accounts, err := suite.service.GetAccountsByIDs(ctx, nil)

	suite.Require().NoError(err)
	suite.Empty(accounts)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("DeactivateAccount", ctx, accountID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, accountID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetOrCreateSystemAccount_AlreadyExists() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountID:   uuid.NewString(),
		Name:        domain.SystemAccountSales,
		AccountType: domain.Income,
		IsActive:    true,
	}

	suite.mockRepo.On("FindAccountByNameAndType", ctx, domain.SystemAccountSales, domain.Income).Return(existing, nil).Once()

	account, err := suite.service.GetOrCreateSystemAccount(ctx, domain.SystemAccountSales, domain.Income)

	suite.Require().NoError(err)
	suite.Equal(existing.AccountID, account.AccountID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetOrCreateSystemAccount_CreatesWhenMissing() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByNameAndType", ctx, domain.SystemAccountSales, domain.Income).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.GetOrCreateSystemAccount(ctx, domain.SystemAccountSales, domain.Income)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(domain.SystemAccountSales, account.Name)
	suite.Equal(domain.Income, account.AccountType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetOrCreateSystemAccount_LosesCreationRace() {
	ctx := context.Background()
	winner := &domain.Account{
		AccountID:   uuid.NewString(),
		Name:        domain.SystemAccountAR,
		AccountType: domain.AccountsReceivable,
		IsActive:    true,
	}

	// Not there on first read, duplicate on write, winner's row on re-read.
	suite.mockRepo.On("FindAccountByNameAndType", ctx, domain.SystemAccountAR, domain.AccountsReceivable).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindAccountByNameAndType", ctx, domain.SystemAccountAR, domain.AccountsReceivable).Return(winner, nil).Once()

	account, err := suite.service.GetOrCreateSystemAccount(ctx, domain.SystemAccountAR, domain.AccountsReceivable)

	suite.Require().NoError(err)
	suite.Equal(winner.AccountID, account.AccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestEnsureSystemAccounts_ResolvesFullSet() {
	ctx := context.Background()
	wanted := map[string]domain.AccountType{
		domain.SystemAccountBank:             domain.Bank,
		domain.SystemAccountAR:               domain.AccountsReceivable,
		domain.SystemAccountAP:               domain.AccountsPayable,
		domain.SystemAccountSales:            domain.Income,
		domain.SystemAccountTaxPayable:       domain.OtherCurrentLiabilities,
		domain.SystemAccountTaxReceivable:    domain.OtherCurrentAssets,
		domain.SystemAccountUndepositedFunds: domain.OtherCurrentAssets,
		domain.SystemAccountMiscExpenses:     domain.Expenses,
	}
	for name, typ := range wanted {
		account := &domain.Account{
			AccountID:   uuid.NewString(),
			Name:        name,
			AccountType: typ,
			IsActive:    true,
		}
		suite.mockRepo.On("FindAccountByNameAndType", ctx, name, typ).Return(account, nil).Once()
	}

	system, err := suite.service.EnsureSystemAccounts(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(system)
	suite.Equal(domain.SystemAccountBank, system.Bank.Name)
	suite.Equal(domain.Bank, system.Bank.AccountType)
	suite.Equal(domain.AccountsReceivable, system.AccountsReceivable.AccountType)
	suite.Equal(domain.AccountsPayable, system.AccountsPayable.AccountType)
	suite.Equal(domain.Income, system.Sales.AccountType)
	suite.Equal(domain.OtherCurrentLiabilities, system.TaxPayable.AccountType)
	suite.Equal(domain.OtherCurrentAssets, system.TaxReceivable.AccountType)
	suite.Equal(domain.SystemAccountUndepositedFunds, system.UndepositedFunds.Name)
	suite.Equal(domain.Expenses, system.MiscExpenses.AccountType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestEnsureSystemAccounts_PropagatesFailure() {
	ctx := context.Background()
	repoErr := errors.New("db down")

	suite.mockRepo.On("FindAccountByNameAndType", ctx, domain.SystemAccountBank, domain.Bank).Return(nil, repoErr).Once()

	system, err := suite.service.EnsureSystemAccounts(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.Contains(err.Error(), domain.SystemAccountBank)
	suite.Nil(system)
}

func (suite *AccountServiceTestSuite) TestRecalculateBalances_Delegates() {
	ctx := context.Background()
	accountIDs := []string{uuid.NewString(), uuid.NewString()}

	suite.mockRepo.On("RecalculateBalances", ctx, accountIDs).Return(nil).Once()

	err := suite.service.RecalculateBalances(ctx, accountIDs)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
