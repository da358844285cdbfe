package dto

import (
	"time"

	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryLineRequest is one candidate line of a journal entry to be posted.
type EntryLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
	CustomerID  string          `json:"customerID"`
	SupplierID  string          `json:"supplierID"`
}

// CreateEntryRequest is the payload for posting a journal entry.
type CreateEntryRequest struct {
	EntryDate   time.Time          `json:"entryDate" binding:"required"`
	Memo        string             `json:"memo"`
	EntryNumber string             `json:"entryNumber"`
	IsAdjusting bool               `json:"isAdjusting"`
	SourceType  string             `json:"sourceType"`
	SourceID    string             `json:"sourceID"`
	Lines       []EntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ReverseEntryRequest carries the optional reason for a reversal.
type ReverseEntryRequest struct {
	Reason string `json:"reason"`
}

// ReverseBySourceRequest identifies the business record whose generated
// entries should be reversed.
type ReverseBySourceRequest struct {
	SourceType string `json:"sourceType" binding:"required"`
	SourceID   string `json:"sourceID" binding:"required"`
}

// ListEntriesParams holds query parameters for listing journal entries.
type ListEntriesParams struct {
	Limit            int     `form:"limit"`
	NextToken        *string `form:"nextToken"`
	IncludeAdjusting bool    `form:"includeAdjusting"`
}

// EntryLineResponse is the API representation of one posted line.
type EntryLineResponse struct {
	LineID      string `json:"lineID"`
	AccountID   string `json:"accountID"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Description string `json:"description"`
	CustomerID  string `json:"customerID,omitempty"`
	SupplierID  string `json:"supplierID,omitempty"`
	SortOrder   int    `json:"sortOrder"`
}

// EntryResponse is the API representation of a posted journal entry.
type EntryResponse struct {
	EntryID     string              `json:"entryID"`
	EntryNumber string              `json:"entryNumber"`
	EntryDate   time.Time           `json:"entryDate"`
	Memo        string              `json:"memo"`
	IsAdjusting bool                `json:"isAdjusting"`
	SourceType  string              `json:"sourceType,omitempty"`
	SourceID    string              `json:"sourceID,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	Lines       []EntryLineResponse `json:"lines,omitempty"`
}

// ListEntriesResponse is a page of journal entries with the pagination token
// for the next page, if any.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain journal entry into its API representation.
func ToEntryResponse(entry *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:     entry.EntryID,
		EntryNumber: entry.EntryNumber,
		EntryDate:   entry.EntryDate,
		Memo:        entry.Memo,
		IsAdjusting: entry.IsAdjusting,
		SourceType:  string(entry.SourceType),
		SourceID:    entry.SourceID,
		CreatedAt:   entry.CreatedAt,
	}
	if len(entry.Lines) > 0 {
		resp.Lines = ToEntryLineResponses(entry.Lines)
	}
	return resp
}

// ToEntryLineResponses converts domain lines into their API representation.
func ToEntryLineResponses(lines []domain.EntryLine) []EntryLineResponse {
	out := make([]EntryLineResponse, len(lines))
	for i, line := range lines {
		out[i] = EntryLineResponse{
			LineID:      line.LineID,
			AccountID:   line.AccountID,
			Debit:       line.Debit.StringFixed(2),
			Credit:      line.Credit.StringFixed(2),
			Description: line.Description,
			CustomerID:  line.CustomerID,
			SupplierID:  line.SupplierID,
			SortOrder:   line.SortOrder,
		}
	}
	return out
}
