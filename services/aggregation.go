package services

import (
	"context"
	"database/sql"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// MonthWindow computes the inclusive range spanning a YYYY-MM calendar
// month in server-local time: first day 00:00:00.000 through the last
// millisecond of the last day.
func MonthWindow(month string) (time.Time, time.Time, error) {
	if !monthPattern.MatchString(month) {
		return time.Time{}, time.Time{}, validationErr("Invalid or missing month")
	}

	parts := strings.SplitN(month, "-", 2)
	year, _ := strconv.Atoi(parts[0])
	mon, _ := strconv.Atoi(parts[1])

	start := time.Date(year, time.Month(mon), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end, nil
}

// AggregationService computes spend totals over month windows.
type AggregationService struct {
	db *sql.DB
}

func NewAggregationService(db *sql.DB) *AggregationService {
	return &AggregationService{db: db}
}

// MonthlyTotal sums the user's expenses inside the month window. Summing
// happens on integer cents in SQL; an empty window totals 0.
func (s *AggregationService) MonthlyTotal(ctx context.Context, userID, month string) (float64, error) {
	start, end, err := MonthWindow(month)
	if err != nil {
		return 0, err
	}

	var totalCents int64
	err = s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`, userID, start, end).Scan(&totalCents)
	if err != nil {
		return 0, err
	}

	return FromCents(totalCents), nil
}
