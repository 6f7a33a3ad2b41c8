package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nurpe/ops-backend/internal/service"
)

type expenseRequest struct {
	Title         string           `json:"title" binding:"required,max=70"`
	Justification string           `json:"justification" binding:"max=255"`
	Supplier      *string          `json:"supplier" binding:"omitempty,max=255"`
	TotalAmount   *decimal.Decimal `json:"totalAmount" binding:"required"`
	Date          string           `json:"date" binding:"required"`
	Category      *string          `json:"category" binding:"omitempty,max=64"`
	URLFile       *string          `json:"urlFile" binding:"omitempty,url"`
}

type createExpenseReportRequest struct {
	Title       string           `json:"title" binding:"required,max=70"`
	Description string           `json:"description" binding:"max=255"`
	StartDate   string           `json:"startDate" binding:"required"`
	EndDate     *string          `json:"endDate"`
	Expenses    []expenseRequest `json:"expenses" binding:"dive"`
}

func (h *Handler) listExpenseReports(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	reports, err := h.expenses.ListExpenseReports(c.Request.Context(), principal.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *Handler) getExpenseReport(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	report, err := h.expenses.GetReportByID(c.Request.Context(), id, principal.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) createExpenseReport(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req createExpenseReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}

	input := service.CreateExpenseReportInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		Expenses:    make([]service.ExpenseInput, 0, len(req.Expenses)),
	}
	for _, expense := range req.Expenses {
		date, err := parseDate(expense.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense date"})
			return
		}
		input.Expenses = append(input.Expenses, service.ExpenseInput{
			Title:         expense.Title,
			Justification: expense.Justification,
			Supplier:      expense.Supplier,
			TotalAmount:   expense.TotalAmount,
			Date:          date,
			Category:      expense.Category,
			URLFile:       expense.URLFile,
		})
	}

	report, err := h.expenses.CreateExpenseReport(c.Request.Context(), principal.Email, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *Handler) deleteExpenseReport(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	report, err := h.expenses.DeleteExpenseReport(c.Request.Context(), id, principal.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
