package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceSuite struct {
	suite.Suite
	db    *sql.DB
	svc   *BudgetService
	ctx   context.Context
	alice string
}

func (s *BudgetServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.svc = NewBudgetService(s.db)
	s.ctx = context.Background()

	alice, err := NewUserService(s.db).Register(s.ctx, "Alice", "alice@example.com", "password1")
	require.NoError(s.T(), err)
	s.alice = alice.ID
}

func (s *BudgetServiceSuite) TestGetWithoutSetIsZero() {
	amount, err := s.svc.Get(s.ctx, s.alice)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 0.0, amount)
}

func (s *BudgetServiceSuite) TestSetThenGet() {
	require.NoError(s.T(), s.svc.Set(s.ctx, s.alice, 1200.50))

	amount, err := s.svc.Get(s.ctx, s.alice)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1200.50, amount)
}

func (s *BudgetServiceSuite) TestSetNegativeIsValidationError() {
	err := s.svc.Set(s.ctx, s.alice, -1)
	require.Error(s.T(), err)
	assert.True(s.T(), IsValidation(err))
}

func (s *BudgetServiceSuite) TestZeroIsAllowed() {
	require.NoError(s.T(), s.svc.Set(s.ctx, s.alice, 0))

	amount, err := s.svc.Get(s.ctx, s.alice)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 0.0, amount)
}

func (s *BudgetServiceSuite) TestUpsertKeepsSingleRowAndCreationTime() {
	require.NoError(s.T(), s.svc.Set(s.ctx, s.alice, 50))

	var createdAt time.Time
	err := s.db.QueryRow(`SELECT created_at FROM budgets WHERE user_id = $1`, s.alice).Scan(&createdAt)
	require.NoError(s.T(), err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(s.T(), s.svc.Set(s.ctx, s.alice, 75))

	var count int
	require.NoError(s.T(), s.db.QueryRow(`SELECT COUNT(*) FROM budgets WHERE user_id = $1`, s.alice).Scan(&count))
	assert.Equal(s.T(), 1, count, "upsert must not create a second row")

	amount, err := s.svc.Get(s.ctx, s.alice)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 75.0, amount)

	var createdAfter, updatedAfter time.Time
	err = s.db.QueryRow(`SELECT created_at, updated_at FROM budgets WHERE user_id = $1`, s.alice).Scan(&createdAfter, &updatedAfter)
	require.NoError(s.T(), err)
	assert.True(s.T(), createdAfter.Equal(createdAt), "creation timestamp must survive updates")
	assert.True(s.T(), updatedAfter.After(createdAt), "updated_at should move forward")
}

func (s *BudgetServiceSuite) TestBudgetsAreScopedToUser() {
	bob, err := NewUserService(s.db).Register(s.ctx, "Bob", "bob@example.com", "password2")
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.svc.Set(s.ctx, s.alice, 500))

	amount, err := s.svc.Get(s.ctx, bob.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 0.0, amount)
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceSuite))
}
