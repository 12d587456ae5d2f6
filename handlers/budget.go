package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expenseinsight/expense-api/middleware"
	"github.com/expenseinsight/expense-api/models"
	"github.com/expenseinsight/expense-api/services"
)

type BudgetHandler struct {
	Budgets *services.BudgetService
}

// GetBudget returns the caller's monthly budget, 0 when never set.
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	amount, err := h.Budgets.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Budget not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": amount})
}

// SetBudget upserts the caller's monthly budget.
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	if err := h.Budgets.Set(c.Request.Context(), userID, *req.Amount); err != nil {
		respondError(c, err, "Budget not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget saved successfully"})
}
