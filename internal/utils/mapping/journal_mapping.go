package mapping

import (
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	"github.com/RusingAcademy/accounting-engine/internal/models"
)

// ToModelEntry converts a domain journal entry to its database model.
func ToModelEntry(entry domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     entry.EntryID,
		EntryNumber: entry.EntryNumber,
		EntryDate:   entry.EntryDate,
		Memo:        entry.Memo,
		IsAdjusting: entry.IsAdjusting,
		SourceType:  string(entry.SourceType),
		SourceID:    entry.SourceID,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}

// ToDomainEntry converts a database journal entry model to its domain form.
func ToDomainEntry(entry models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     entry.EntryID,
		EntryNumber: entry.EntryNumber,
		EntryDate:   entry.EntryDate,
		Memo:        entry.Memo,
		IsAdjusting: entry.IsAdjusting,
		SourceType:  domain.SourceType(entry.SourceType),
		SourceID:    entry.SourceID,
		AuditFields: domain.AuditFields{
			CreatedAt: entry.CreatedAt,
			UpdatedAt: entry.UpdatedAt,
		},
	}
}

// ToModelLine converts a domain entry line to its database model.
func ToModelLine(line domain.EntryLine) models.EntryLine {
	return models.EntryLine{
		LineID:      line.LineID,
		EntryID:     line.EntryID,
		AccountID:   line.AccountID,
		Debit:       line.Debit,
		Credit:      line.Credit,
		Description: line.Description,
		CustomerID:  line.CustomerID,
		SupplierID:  line.SupplierID,
		SortOrder:   line.SortOrder,
	}
}

// ToDomainLine converts a database entry line model to its domain form.
func ToDomainLine(line models.EntryLine) domain.EntryLine {
	return domain.EntryLine{
		LineID:      line.LineID,
		EntryID:     line.EntryID,
		AccountID:   line.AccountID,
		Debit:       line.Debit,
		Credit:      line.Credit,
		Description: line.Description,
		CustomerID:  line.CustomerID,
		SupplierID:  line.SupplierID,
		SortOrder:   line.SortOrder,
	}
}
