package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expenseinsight/expense-api/models"
)

type ExpenseService struct {
	db *sql.DB
}

func NewExpenseService(db *sql.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

// validateExpense checks an incoming expense body and returns the parsed
// date and the amount in cents. Validation runs before any storage call.
func validateExpense(req *models.ExpenseRequest) (time.Time, int64, error) {
	if req.Title == "" || req.Category == "" || req.Date == "" || req.Amount == 0 {
		return time.Time{}, 0, validationErr("All fields are required")
	}
	if req.Amount <= 0 {
		return time.Time{}, 0, validationErr("Amount must be greater than 0")
	}
	if !models.IsValidCategory(req.Category) {
		return time.Time{}, 0, validationErr("Invalid category")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return time.Time{}, 0, validationErr("Invalid date")
	}

	return date, ToCents(req.Amount), nil
}

// parseDate accepts full RFC3339 timestamps or bare YYYY-MM-DD days from
// the client; bare days are taken in server-local time.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// List returns the user's expenses, newest first, optionally narrowed by
// category and YYYY-MM month.
func (s *ExpenseService) List(ctx context.Context, userID string, filter models.ExpenseFilter) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, title, category, amount_cents, date, created_at, updated_at
		FROM expenses
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if filter.Category != "" && filter.Category != "all" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	if filter.Month != "" {
		start, end, err := MonthWindow(filter.Month)
		if err != nil {
			return nil, err
		}
		args = append(args, start)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
		args = append(args, end)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	query += " ORDER BY date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		var cents int64
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Category, &cents, &e.Date, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.Amount = FromCents(cents)
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// Create persists a new expense owned by userID and returns its id.
func (s *ExpenseService) Create(ctx context.Context, userID string, req *models.ExpenseRequest) (string, error) {
	date, cents, err := validateExpense(req)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	now := time.Now()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, title, category, amount_cents, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, userID, req.Title, req.Category, cents, date, now, now)
	if err != nil {
		return "", err
	}

	return id, nil
}

// Update replaces the four mutable fields of an expense. The WHERE clause
// carries the ownership check: an id owned by someone else reports
// ErrNotFound exactly like a missing one.
func (s *ExpenseService) Update(ctx context.Context, id, userID string, req *models.ExpenseRequest) error {
	date, cents, err := validateExpense(req)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE expenses
		SET title = $1, category = $2, amount_cents = $3, date = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`, req.Title, req.Category, cents, date, time.Now(), id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an expense under the same ownership rule as Update.
func (s *ExpenseService) Delete(ctx context.Context, id, userID string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM expenses WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
