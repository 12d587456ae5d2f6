package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/expenseinsight/expense-api/handlers"
	"github.com/expenseinsight/expense-api/middleware"
	"github.com/expenseinsight/expense-api/services"
)

// SetupRoutes mounts the whole API surface: public auth routes, then the
// session-guarded resource routes.
func SetupRoutes(router *gin.Engine, db *sql.DB) {
	SetupAuthRoutes(&router.RouterGroup, db)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupExpenseRoutes(protected, db)
		SetupBudgetRoutes(protected, db)
		SetupProfileRoutes(protected, db)
	}
}

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{Users: services.NewUserService(db)}

	rg.POST("/auth/register", authHandler.Register)
	rg.POST("/auth/login", authHandler.Login)
}

// SetupExpenseRoutes sets up protected expense and aggregation routes.
func SetupExpenseRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.ExpenseHandler{
		Expenses:    services.NewExpenseService(db),
		Aggregation: services.NewAggregationService(db),
	}

	rg.GET("/expenses", h.ListExpenses)
	rg.POST("/expenses", h.CreateExpense)
	rg.GET("/expenses/total", h.MonthlyTotal)
	rg.PUT("/expenses/:id", h.UpdateExpense)
	rg.DELETE("/expenses/:id", h.DeleteExpense)
}

// SetupBudgetRoutes sets up protected budget routes.
func SetupBudgetRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.BudgetHandler{Budgets: services.NewBudgetService(db)}

	rg.GET("/budget", h.GetBudget)
	rg.POST("/budget", h.SetBudget)
}

// SetupProfileRoutes sets up protected user profile routes.
func SetupProfileRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{Users: services.NewUserService(db)}

	rg.GET("/profile", userHandler.GetProfile)
	rg.PUT("/profile", userHandler.UpdateProfile)
	rg.DELETE("/profile", userHandler.DeleteAccount)
	rg.POST("/profile/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/profile/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/profile/2fa/disable", userHandler.DisableTOTP)
}
