package services

import (
	"context"
	"database/sql"
	"time"
)

type BudgetService struct {
	db *sql.DB
}

func NewBudgetService(db *sql.DB) *BudgetService {
	return &BudgetService{db: db}
}

// Get returns the user's monthly budget. Absence is not an error; a user
// who never set a budget simply has 0.
func (s *BudgetService) Get(ctx context.Context, userID string) (float64, error) {
	var cents int64
	err := s.db.QueryRowContext(ctx, `
		SELECT amount_cents FROM budgets WHERE user_id = $1
	`, userID).Scan(&cents)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return FromCents(cents), nil
}

// Set upserts the user's budget. The creation timestamp survives updates;
// only amount and updated_at move. Last write wins on concurrent calls.
func (s *BudgetService) Set(ctx context.Context, userID string, amount float64) error {
	if amount < 0 {
		return validationErr("Invalid amount")
	}

	cents := ToCents(amount)
	now := time.Now()

	result, err := s.db.ExecContext(ctx, `
		UPDATE budgets SET amount_cents = $1, updated_at = $2 WHERE user_id = $3
	`, cents, now, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO budgets (user_id, amount_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, userID, cents, now, now)
	return err
}
