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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: repo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount validates and persists a new account in the chart of accounts.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	accountType := domain.AccountType(req.AccountType)
	if !accountType.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		AccountType: accountType,
		DetailType:  req.DetailType,
		Description: req.Description,
		Balance:     decimal.Zero,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to save account", slog.String("name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "account created",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

// GetAccountByID retrieves an account by its id.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// GetAccountsByIDs retrieves multiple accounts keyed by id.
func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}

// ListAccounts retrieves a page of accounts.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// DeactivateAccount marks an account inactive. Its posted history remains.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, time.Now().UTC()); err != nil {
		return err
	}
	s.LogInfo(ctx, "account deactivated", slog.String("account_id", accountID))
	return nil
}

// GetOrCreateSystemAccount resolves an account by its exact (name, type) pair,
// creating it with a zero balance when absent. A concurrent creator losing the
// unique-index race is handled by re-reading the winner's row.
func (s *accountService) GetOrCreateSystemAccount(ctx context.Context, name string, accountType domain.AccountType) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNameAndType(ctx, name, accountType)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	created, err := s.CreateAccount(ctx, dto.CreateAccountRequest{
		Name:        name,
		AccountType: string(accountType),
		Description: "System account: " + name,
	})
	if err == nil {
		return created, nil
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		// Another caller created it between our read and write.
		return s.accountRepo.FindAccountByNameAndType(ctx, name, accountType)
	}
	return nil, err
}

// EnsureSystemAccounts materializes every well-known system account and
// returns the resolved set. Idempotent, run once at startup.
func (s *accountService) EnsureSystemAccounts(ctx context.Context) (*domain.SystemAccounts, error) {
	wanted := []struct {
		name string
		typ  domain.AccountType
	}{
		{domain.SystemAccountBank, domain.Bank},
		{domain.SystemAccountAR, domain.AccountsReceivable},
		{domain.SystemAccountAP, domain.AccountsPayable},
		{domain.SystemAccountSales, domain.Income},
		{domain.SystemAccountTaxPayable, domain.OtherCurrentLiabilities},
		{domain.SystemAccountTaxReceivable, domain.OtherCurrentAssets},
		{domain.SystemAccountUndepositedFunds, domain.OtherCurrentAssets},
		{domain.SystemAccountMiscExpenses, domain.Expenses},
	}

	var sys domain.SystemAccounts
	targets := []*domain.Account{
		&sys.Bank, &sys.AccountsReceivable, &sys.AccountsPayable, &sys.Sales,
		&sys.TaxPayable, &sys.TaxReceivable, &sys.UndepositedFunds, &sys.MiscExpenses,
	}
	for i, w := range wanted {
		account, err := s.GetOrCreateSystemAccount(ctx, w.name, w.typ)
		if err != nil {
			return nil, fmt.Errorf("resolving system account %q: %w", w.name, err)
		}
		*targets[i] = *account
	}
	s.LogInfo(ctx, "system accounts ready", slog.Int("count", len(wanted)))
	return &sys, nil
}

// RecalculateBalances recomputes cached balances from full posted history.
func (s *accountService) RecalculateBalances(ctx context.Context, accountIDs []string) error {
	return s.accountRepo.RecalculateBalances(ctx, accountIDs)
}
