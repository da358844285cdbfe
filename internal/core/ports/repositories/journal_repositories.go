package repositories

import (
	"context"

	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entry data.
type JournalEntryReader interface {
	// FindEntryByID retrieves a specific journal entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves the lines of one entry, ordered by sort order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.EntryLine, error)

	// FindEntriesBySource retrieves all non-adjusting entries generated from
	// the given business record, via the indexed (source_type, source_id) pair.
	FindEntriesBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) ([]domain.JournalEntry, error)

	// ListEntries retrieves a token-paginated list of journal entries, newest first.
	ListEntries(ctx context.Context, limit int, nextToken *string, includeAdjusting bool) ([]domain.JournalEntry, *string, error)

	// ListLinesByAccountID retrieves a token-paginated list of lines posted
	// against one account, newest entry first.
	ListLinesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.EntryLine, *string, error)
}

// JournalEntryWriter defines write operations for journal entry data.
type JournalEntryWriter interface {
	// SaveEntry persists an entry and its lines and recomputes the balances of
	// every touched account, all within a single database transaction. When the
	// entry carries no number, one is assigned from the entry-number sequence.
	// The returned entry carries the assigned number.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.EntryLine) (*domain.JournalEntry, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
