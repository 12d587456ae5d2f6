package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expenseinsight/expense-api/middleware"
	"github.com/expenseinsight/expense-api/models"
	"github.com/expenseinsight/expense-api/services"
)

type ExpenseHandler struct {
	Expenses    *services.ExpenseService
	Aggregation *services.AggregationService
}

// ListExpenses returns the caller's expenses, optionally filtered by
// ?category= and ?month=YYYY-MM.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filter := models.ExpenseFilter{
		Category: c.Query("category"),
		Month:    c.Query("month"),
	}

	expenses, err := h.Expenses.List(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// CreateExpense records a new expense owned by the caller. Any owner field
// in the body is ignored.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Expenses.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Expense not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Expense created successfully",
		"expenseId": id,
	})
}

// UpdateExpense replaces the mutable fields of one of the caller's expenses.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Expenses.Update(c.Request.Context(), c.Param("id"), userID, &req); err != nil {
		respondError(c, err, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense updated successfully"})
}

// DeleteExpense removes one of the caller's expenses.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Expenses.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// MonthlyTotal returns the caller's total spend for ?month=YYYY-MM.
func (h *ExpenseHandler) MonthlyTotal(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	total, err := h.Aggregation.MonthlyTotal(c.Request.Context(), userID, c.Query("month"))
	if err != nil {
		respondError(c, err, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}
