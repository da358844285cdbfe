package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/RusingAcademy/accounting-engine/internal/core/ports/services"
	"github.com/RusingAcademy/accounting-engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/monthly-profit-and-loss", h.getMonthlyProfitAndLoss)
		reportingGroup.GET("/monthly-balance-sheet", h.getMonthlyBalanceSheet)
		reportingGroup.GET("/customer-balance/:customerID", h.getCustomerBalance)
		reportingGroup.GET("/supplier-balance/:supplierID", h.getSupplierBalance)
	}
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter. The bool result
// reports whether parsing failed (the handler has already responded).
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, false
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format. Use YYYY-MM-DD"})
		return nil, true
	}
	return &t, false
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Generates a profit and loss report for a period, defaulting to the current year to date
// @Tags reports
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)" default(Jan 1 of current year)
// @Param end query string false "End date (YYYY-MM-DD)" default(today)
// @Success 200 {object} domain.ProfitAndLossReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, failed := parseDateQuery(c, "start")
	if failed {
		return
	}
	end, failed := parseDateQuery(c, "end")
	if failed {
		return
	}
	if start != nil && end != nil && start.After(*end) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be before or equal to end"})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), start, end)
	if err != nil {
		logger.Error("Failed to generate profit and loss report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate profit and loss report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Generates a balance sheet snapshot as of a date, defaulting to today
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(today)
// @Success 200 {object} domain.BalanceSheetReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, failed := parseDateQuery(c, "asOf")
	if failed {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to generate balance sheet report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate balance sheet report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates per-account debit and credit totals as of a date, defaulting to today
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(today)
// @Success 200 {object} map[string]interface{} "Trial balance rows"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOfPtr, failed := parseDateQuery(c, "asOf")
	if failed {
		return
	}
	asOf := time.Now().UTC()
	if asOfPtr != nil {
		asOf = *asOfPtr
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to generate trial balance report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trial balance report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"asOf": asOf.Format("2006-01-02"), "rows": rows})
}

// yearQuery reads the year query parameter, defaulting to the current year.
func yearQuery(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("year", strconv.Itoa(time.Now().Year()))
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return 0, true
	}
	return year, false
}

// getMonthlyProfitAndLoss godoc
// @Summary Generate monthly profit and loss trend
// @Description Generates income, expense and net totals per calendar month of a year
// @Tags reports
// @Produce json
// @Param year query int false "Calendar year" default(current year)
// @Success 200 {object} map[string]interface{} "Twelve monthly rows"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/monthly-profit-and-loss [get]
func (h *reportingHandler) getMonthlyProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, failed := yearQuery(c)
	if failed {
		return
	}

	rows, err := h.reportingService.MonthlyProfitAndLoss(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to generate monthly profit and loss", slog.String("error", err.Error()), slog.Int("year", year))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate monthly profit and loss"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "months": rows})
}

// getMonthlyBalanceSheet godoc
// @Summary Generate monthly balance sheet trend
// @Description Generates asset, liability and equity totals at each month end of a year
// @Tags reports
// @Produce json
// @Param year query int false "Calendar year" default(current year)
// @Success 200 {object} map[string]interface{} "Twelve monthly rows"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/monthly-balance-sheet [get]
func (h *reportingHandler) getMonthlyBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, failed := yearQuery(c)
	if failed {
		return
	}

	rows, err := h.reportingService.MonthlyBalanceSheet(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to generate monthly balance sheet", slog.String("error", err.Error()), slog.Int("year", year))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate monthly balance sheet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "months": rows})
}

// getCustomerBalance godoc
// @Summary Get a customer's receivable balance
// @Description Sums debit minus credit over Accounts Receivable lines tagged with the customer
// @Tags reports
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} map[string]string "Customer balance"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /reports/customer-balance/{customerID} [get]
func (h *reportingHandler) getCustomerBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("customerID")

	balance, err := h.reportingService.CustomerBalance(c.Request.Context(), customerID)
	if err != nil {
		logger.Error("Failed to compute customer balance", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute customer balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customerID": customerID, "balance": balance.StringFixed(2)})
}

// getSupplierBalance godoc
// @Summary Get a supplier's payable balance
// @Description Sums credit minus debit over Accounts Payable lines tagged with the supplier
// @Tags reports
// @Produce json
// @Param supplierID path string true "Supplier ID"
// @Success 200 {object} map[string]string "Supplier balance"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /reports/supplier-balance/{supplierID} [get]
func (h *reportingHandler) getSupplierBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	balance, err := h.reportingService.SupplierBalance(c.Request.Context(), supplierID)
	if err != nil {
		logger.Error("Failed to compute supplier balance", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute supplier balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"supplierID": supplierID, "balance": balance.StringFixed(2)})
}
