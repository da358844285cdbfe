package services

import (
	"context"

	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	"github.com/RusingAcademy/accounting-engine/internal/dto"
)

// JournalSvcFacade is the write-and-read surface of the journal store.
type JournalSvcFacade interface {
	// PostEntry validates and persists a journal entry with its lines,
	// recomputing touched account balances. It fails with ErrValidation before
	// any write when the line set is structurally or numerically invalid.
	PostEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error)

	// GetEntryByID retrieves an entry together with its ordered lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a token-paginated list of entries.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// ListAccountLines retrieves a token-paginated register of lines posted
	// against one account, newest entry first.
	ListAccountLines(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.EntryLine, *string, error)

	// ReverseEntry posts a new adjusting entry that exactly negates the given
	// entry. The original is never altered or deleted.
	ReverseEntry(ctx context.Context, entryID string, reason string) (*domain.JournalEntry, error)

	// ReverseBySource reverses every non-adjusting entry generated from the
	// given business record, returning the reversing entries.
	ReverseBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) ([]domain.JournalEntry, error)
}
