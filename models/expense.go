package models

import "time"

// ============================================================================
// EXPENSE MODEL
// ============================================================================

type Expense struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Categories an expense can belong to. Fixed set, validated on every write.
var ExpenseCategories = []string{"Food", "Transport", "Utilities", "Other"}

func IsValidCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ============================================================================
// REQUESTS
// ============================================================================

// ExpenseRequest is the body for both create and update. Any userId field
// sent by the client is ignored; ownership always comes from the session.
type ExpenseRequest struct {
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// ExpenseFilter narrows a listing. Category "all" (or empty) means no
// category restriction; Month is YYYY-MM or empty.
type ExpenseFilter struct {
	Category string
	Month    string
}
