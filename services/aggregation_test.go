package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseinsight/expense-api/models"
)

func TestMonthWindow(t *testing.T) {
	start, end, err := MonthWindow("2024-02")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), start)
	// 2024 is a leap year: the window runs through Feb 29.
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.Local), end)
}

func TestMonthWindowRejectsMalformedInput(t *testing.T) {
	for _, month := range []string{"", "2024", "2024-2", "202401", "2024-01-15", "abcd-ef"} {
		_, _, err := MonthWindow(month)
		require.Error(t, err, "month %q should be rejected", month)
		assert.True(t, IsValidation(err))
	}
}

func TestMonthlyTotal(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	users := NewUserService(db)
	alice, err := users.Register(ctx, "Alice", "alice@example.com", "password1")
	require.NoError(t, err)
	bob, err := users.Register(ctx, "Bob", "bob@example.com", "password2")
	require.NoError(t, err)

	expenses := NewExpenseService(db)
	agg := NewAggregationService(db)

	add := func(userID string, amount float64, date time.Time) {
		_, err := expenses.Create(ctx, userID, &models.ExpenseRequest{
			Title:    "expense",
			Category: "Other",
			Amount:   amount,
			Date:     date.Format(time.RFC3339),
		})
		require.NoError(t, err)
	}

	add(alice.ID, 10.10, time.Date(2024, 1, 5, 9, 0, 0, 0, time.Local))
	add(alice.ID, 20.20, time.Date(2024, 1, 31, 23, 59, 59, 0, time.Local))
	add(alice.ID, 99, time.Date(2024, 2, 1, 0, 0, 1, 0, time.Local))
	add(bob.ID, 500, time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local))

	total, err := agg.MonthlyTotal(ctx, alice.ID, "2024-01")
	require.NoError(t, err)
	// Integer-cent summation: no float drift on 10.10 + 20.20.
	assert.Equal(t, 30.30, total)

	total, err = agg.MonthlyTotal(ctx, alice.ID, "2024-02")
	require.NoError(t, err)
	assert.Equal(t, 99.0, total)

	total, err = agg.MonthlyTotal(ctx, alice.ID, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, 0.0, total, "empty month totals zero")

	_, err = agg.MonthlyTotal(ctx, alice.ID, "January")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
