package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/apperrors"
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	portsrepo "github.com/RusingAcademy/accounting-engine/internal/core/ports/repositories"
	"github.com/RusingAcademy/accounting-engine/internal/models"
	"github.com/RusingAcademy/accounting-engine/internal/utils/mapping"
	"github.com/RusingAcademy/accounting-engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxJournalRepository persists journal entries and their lines.
type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
}

func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// nullIfEmpty maps "" to NULL for nullable text columns.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// SaveEntry persists an entry and its lines, then recomputes balances for
// every distinct touched account, all within one database transaction so a
// crash can never leave a partial entry or a stale balance behind.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.EntryLine) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Entry numbers come from a database sequence: a count-then-insert scheme
	// would hand two concurrent writers the same number.
	if entry.EntryNumber == "" {
		var seq int64
		if err := tx.QueryRow(ctx, `SELECT nextval('journal_entry_number_seq');`).Scan(&seq); err != nil {
			return nil, apperrors.NewAppError(500, "failed to obtain entry number", err)
		}
		entry.EntryNumber = fmt.Sprintf("JE-%04d", seq)
	}

	modelEntry := mapping.ToModelEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (
			entry_id, entry_number, entry_date, memo, is_adjusting,
			source_type, source_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.EntryNumber,
		modelEntry.EntryDate,
		modelEntry.Memo,
		modelEntry.IsAdjusting,
		nullIfEmpty(modelEntry.SourceType),
		nullIfEmpty(modelEntry.SourceID),
		modelEntry.CreatedAt,
		modelEntry.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert journal entry "+modelEntry.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (
			line_id, entry_id, account_id, debit, credit, description,
			customer_id, supplier_id, sort_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		modelLine := mapping.ToModelLine(line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.AccountID,
			modelLine.Debit,
			modelLine.Credit,
			modelLine.Description,
			nullIfEmpty(modelLine.CustomerID),
			nullIfEmpty(modelLine.SupplierID),
			modelLine.SortOrder,
		)
		accountIDs = append(accountIDs, line.AccountID)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert lines for entry "+modelEntry.EntryID, err)
	}

	if err := r.accountRepo.RecalculateBalancesInTx(ctx, tx, accountIDs); err != nil {
		return nil, apperrors.NewAppError(500, "failed to recalculate balances for entry "+modelEntry.EntryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	entry.Lines = lines
	return &entry, nil
}

func scanEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	var sourceType, sourceID sql.NullString
	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Memo,
		&m.IsAdjusting,
		&sourceType,
		&sourceID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.SourceType = sourceType.String
	m.SourceID = sourceID.String
	return &m, nil
}

const entryColumns = `entry_id, entry_number, entry_date, memo, is_adjusting, source_type, source_id, created_at, updated_at`

// FindEntryByID retrieves a journal entry header by its id.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID, err)
	}
	entry := mapping.ToDomainEntry(*m)
	return &entry, nil
}

func scanLines(rows pgx.Rows) ([]domain.EntryLine, error) {
	lines := []domain.EntryLine{}
	for rows.Next() {
		var m models.EntryLine
		var customerID, supplierID sql.NullString
		err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.Description,
			&customerID,
			&supplierID,
			&m.SortOrder,
		)
		if err != nil {
			return nil, err
		}
		m.CustomerID = customerID.String
		m.SupplierID = supplierID.String
		lines = append(lines, mapping.ToDomainLine(m))
	}
	return lines, rows.Err()
}

const lineColumns = `line_id, entry_id, account_id, debit, credit, description, customer_id, supplier_id, sort_order`

// FindLinesByEntryID retrieves the lines of one entry in sort order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.EntryLine, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	query := `SELECT ` + lineColumns + ` FROM journal_entry_lines WHERE entry_id = $1 ORDER BY sort_order;`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines, err := scanLines(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan lines for entry "+entryID, err)
	}
	return lines, nil
}

// FindEntriesBySource retrieves non-adjusting entries generated from one
// business record. The (source_type, source_id) index makes this an exact
// lookup rather than a scan.
func (r *PgxJournalRepository) FindEntriesBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) ([]domain.JournalEntry, error) {
	if err := r.Ready(); err != nil {
		return nil, err
	}
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE source_type = $1 AND source_id = $2 AND is_adjusting = false
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, string(sourceType), sourceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries by source", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, mapping.ToDomainEntry(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating journal entry rows", err)
	}
	return entries, nil
}

// ListEntries retrieves a page of entries ordered newest first, using an
// opaque (entry_date, created_at) cursor token.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string, includeAdjusting bool) ([]domain.JournalEntry, *string, error) {
	if err := r.Ready(); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	args := []any{}
	conditions := ""
	if !includeAdjusting {
		conditions = ` WHERE is_adjusting = false`
	}
	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if conditions == "" {
			conditions = ` WHERE`
		} else {
			conditions += ` AND`
		}
		conditions += fmt.Sprintf(` (entry_date, created_at) < ($%d, $%d)`, len(args)+1, len(args)+2)
		args = append(args, entryDate, createdAt)
	}
	query += conditions + fmt.Sprintf(` ORDER BY entry_date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // fetch one extra to detect the next page

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list journal entries", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, mapping.ToDomainEntry(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed iterating journal entry rows", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		token = &t
	}
	return entries, token, nil
}

// ListLinesByAccountID retrieves a page of one account's lines, newest entry
// first, using an opaque (entry_date, line_id) cursor token.
func (r *PgxJournalRepository) ListLinesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.EntryLine, *string, error) {
	if err := r.Ready(); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT l.line_id, l.entry_id, l.account_id, l.debit, l.credit, l.description,
		       l.customer_id, l.supplier_id, l.sort_order, e.entry_date
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE l.account_id = $1`
	args := []any{accountID}
	if nextToken != nil && *nextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(*nextToken)
		if err != nil || len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(` AND (e.entry_date, l.line_id) < ($%d::timestamptz, $%d)`, len(args)+1, len(args)+2)
		args = append(args, fields[0], fields[1])
	}
	query += fmt.Sprintf(` ORDER BY e.entry_date DESC, l.line_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list lines for account "+accountID, err)
	}
	defer rows.Close()

	lines := []domain.EntryLine{}
	entryDates := []time.Time{}
	for rows.Next() {
		var m models.EntryLine
		var customerID, supplierID sql.NullString
		var entryDate time.Time
		err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.Description,
			&customerID,
			&supplierID,
			&m.SortOrder,
			&entryDate,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan lines for account "+accountID, err)
		}
		m.CustomerID = customerID.String
		m.SupplierID = supplierID.String
		lines = append(lines, mapping.ToDomainLine(m))
		entryDates = append(entryDates, entryDate)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan lines for account "+accountID, err)
	}

	var token *string
	if len(lines) > limit {
		lines = lines[:limit]
		last := lines[len(lines)-1]
		t := pagination.EncodeMultiFieldToken(entryDates[len(lines)-1].UTC().Format(time.RFC3339Nano), last.LineID)
		token = &t
	}
	return lines, token, nil
}
