package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/RusingAcademy/accounting-engine/internal/apperrors"
	"github.com/RusingAcademy/accounting-engine/internal/core/domain"
	portssvc "github.com/RusingAcademy/accounting-engine/internal/core/ports/services"
	"github.com/RusingAcademy/accounting-engine/internal/dto"
	"github.com/RusingAcademy/accounting-engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalizeHandler exposes the transaction journalizers over HTTP.
type journalizeHandler struct {
	journalizerService portssvc.JournalizerSvcFacade
}

func newJournalizeHandler(journalizerService portssvc.JournalizerSvcFacade) *journalizeHandler {
	return &journalizeHandler{
		journalizerService: journalizerService,
	}
}

// registerJournalizeRoutes registers journalizer routes
func registerJournalizeRoutes(group *gin.RouterGroup, journalizerService portssvc.JournalizerSvcFacade) {
	h := newJournalizeHandler(journalizerService)

	journalize := group.Group("/journalize")
	{
		journalize.POST("/invoice", h.journalizeRecord(h.journalizerService.JournalizeInvoice))
		journalize.POST("/payment", h.journalizeRecord(h.journalizerService.JournalizePayment))
		journalize.POST("/expense", h.journalizeRecord(h.journalizerService.JournalizeExpense))
		journalize.POST("/bill", h.journalizeRecord(h.journalizerService.JournalizeBill))
		journalize.POST("/bill-payment", h.journalizeBillPayment)
		journalize.POST("/transfer", h.journalizeTransfer)
	}
}

// journalizeRecord builds a handler for the record-driven journalizers, which
// share one request shape and one response contract: 201 with the posted
// entry, or 204 when the record is missing or zero-valued.
func (h *journalizeHandler) journalizeRecord(journalize func(ctx context.Context, sourceID string) (*domain.JournalEntry, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		req := dto.JournalizeRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for journalize", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		entry, err := journalize(c.Request.Context(), req.SourceID)
		if err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to journalize record", slog.String("error", err.Error()), slog.String("source_id", req.SourceID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to journalize record"})
			return
		}
		if entry == nil {
			// Missing or zero-valued record, nothing was posted.
			c.Status(http.StatusNoContent)
			return
		}

		c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
	}
}

// journalizeBillPayment godoc
// @Summary Journalize a bill payment
// @Description Posts a payment against a bill: debit Accounts Payable, credit the payment account
// @Tags journalize
// @Accept  json
// @Produce  json
// @Param   payment body dto.JournalizeBillPaymentRequest true "Bill payment details"
// @Success 201 {object} dto.EntryResponse
// @Success 204 "Bill missing or amount zero, nothing posted"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to journalize"
// @Router /journalize/bill-payment [post]
func (h *journalizeHandler) journalizeBillPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.JournalizeBillPaymentRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for journalizeBillPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.journalizerService.JournalizeBillPayment(c.Request.Context(), req.BillID, req.Amount, req.PaymentAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to journalize bill payment", slog.String("error", err.Error()), slog.String("bill_id", req.BillID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to journalize bill payment"})
		return
	}
	if entry == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// journalizeTransfer godoc
// @Summary Journalize an account transfer
// @Description Posts a transfer between two accounts: debit the destination, credit the source
// @Tags journalize
// @Accept  json
// @Produce  json
// @Param   transfer body dto.JournalizeTransferRequest true "Transfer details"
// @Success 201 {object} dto.EntryResponse
// @Success 204 "Amount zero, nothing posted"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to journalize"
// @Router /journalize/transfer [post]
func (h *journalizeHandler) journalizeTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.JournalizeTransferRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for journalizeTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.journalizerService.JournalizeTransfer(c.Request.Context(), req.FromAccountID, req.ToAccountID, req.Amount, req.Date, req.Memo)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to journalize transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to journalize transfer"})
		return
	}
	if entry == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}
