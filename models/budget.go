package models

import "time"

// Budget is the single monthly budget record a user can hold. One row per
// user, upserted in place.
type Budget struct {
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SetBudgetRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}
