package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalizeRequest identifies the business record to journalize.
type JournalizeRequest struct {
	SourceID string `json:"sourceID" binding:"required"`
}

// JournalizeBillPaymentRequest carries the parameters for posting a bill payment.
type JournalizeBillPaymentRequest struct {
	BillID           string          `json:"billID" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	PaymentAccountID string          `json:"paymentAccountID" binding:"required"`
}

// JournalizeTransferRequest carries the parameters for posting an account transfer.
type JournalizeTransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	Memo          string          `json:"memo"`
}
