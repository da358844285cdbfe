package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/apperrors"
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	portsrepo "github.com/RusingAcademy/accounting-engine/internal/core/ports/repositories"
	portssvc "github.com/RusingAcademy/accounting-engine/internal/core/ports/services"
	"github.com/RusingAcademy/accounting-engine/internal/dto"
	"github.com/RusingAcademy/accounting-engine/internal/utils/accounting"
	"github.com/google/uuid"
)

type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(repo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: repo,
		accountSvc:  accountSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostEntry validates the candidate line set, checks every referenced account,
// and persists the entry. All writes happen in one database transaction inside
// the repository, so validation failures never leave partial state behind.
func (s *journalService) PostEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	now := time.Now().UTC()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryNumber: req.EntryNumber,
		EntryDate:   req.EntryDate,
		Memo:        req.Memo,
		IsAdjusting: req.IsAdjusting,
		SourceType:  domain.SourceType(req.SourceType),
		SourceID:    req.SourceID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	lines := make([]domain.EntryLine, len(req.Lines))
	for i, lr := range req.Lines {
		lines[i] = domain.EntryLine{
			LineID:      uuid.NewString(),
			EntryID:     entry.EntryID,
			AccountID:   lr.AccountID,
			Debit:       accounting.RoundCents(lr.Debit),
			Credit:      accounting.RoundCents(lr.Credit),
			Description: lr.Description,
			CustomerID:  lr.CustomerID,
			SupplierID:  lr.SupplierID,
			SortOrder:   i,
		}
	}

	if err := accounting.ValidateEntryLines(lines); err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		accountIDs = append(accountIDs, line.AccountID)
	}
	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range accountIDs {
		account, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, id)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}

	saved, err := s.journalRepo.SaveEntry(ctx, entry, lines)
	if err != nil {
		s.LogError(ctx, err, "failed to save journal entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}
	s.LogInfo(ctx, "journal entry posted",
		slog.String("entry_id", saved.EntryID),
		slog.String("entry_number", saved.EntryNumber),
		slog.Int("lines", len(lines)))
	return saved, nil
}

// GetEntryByID retrieves an entry together with its ordered lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a token-paginated page of entries, newest first.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	entries, nextToken, err := s.journalRepo.ListEntries(ctx, params.Limit, params.NextToken, params.IncludeAdjusting)
	if err != nil {
		return nil, err
	}
	resp := dto.ListEntriesResponse{
		Entries:   make([]dto.EntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries[i] = dto.ToEntryResponse(&entries[i])
	}
	return &resp, nil
}

// ListAccountLines retrieves a token-paginated register of one account's lines.
func (s *journalService) ListAccountLines(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.EntryLine, *string, error) {
	return s.journalRepo.ListLinesByAccountID(ctx, accountID, limit, nextToken)
}

// ReverseEntry posts a new adjusting entry whose lines mirror the original
// with debit and credit swapped. The original entry is left untouched.
func (s *journalService) ReverseEntry(ctx context.Context, entryID string, reason string) (*domain.JournalEntry, error) {
	original, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if reason == "" {
		reason = "Voided"
	}
	req := dto.CreateEntryRequest{
		EntryDate:   time.Now().UTC(),
		Memo:        fmt.Sprintf("Reversal of %s: %s", original.EntryNumber, reason),
		IsAdjusting: true,
		// Reversals keep the original's source tags for traceability, but the
		// adjusting flag keeps them out of source scans so a record cannot be
		// reversed twice through its already-cancelled entries.
		SourceType: string(original.SourceType),
		SourceID:   original.SourceID,
		Lines:      make([]dto.EntryLineRequest, len(original.Lines)),
	}
	for i, line := range original.Lines {
		req.Lines[i] = dto.EntryLineRequest{
			AccountID:   line.AccountID,
			Debit:       line.Credit,
			Credit:      line.Debit,
			Description: "REVERSAL: " + line.Description,
			CustomerID:  line.CustomerID,
			SupplierID:  line.SupplierID,
		}
	}

	reversal, err := s.PostEntry(ctx, req)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "journal entry reversed",
		slog.String("original_entry_id", original.EntryID),
		slog.String("reversal_entry_id", reversal.EntryID))
	return reversal, nil
}

// ReverseBySource reverses every non-adjusting entry generated from the given
// business record. Reversing zero entries is not an error.
func (s *journalService) ReverseBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.FindEntriesBySource(ctx, sourceType, sourceID)
	if err != nil {
		return nil, err
	}

	reversals := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		reversal, err := s.ReverseEntry(ctx, entry.EntryID, "Voided")
		if err != nil {
			return nil, err
		}
		reversals = append(reversals, *reversal)
	}
	s.LogInfo(ctx, "entries reversed by source",
		slog.String("source_type", string(sourceType)),
		slog.String("source_id", sourceID),
		slog.Int("count", len(reversals)))
	return reversals, nil
}
