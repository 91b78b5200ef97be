package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"finbuddy/internal/models"
	"finbuddy/pkg/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// RepositorySuite runs against a real Postgres named by TEST_DATABASE_URL
// and is skipped when the variable is unset.
type RepositorySuite struct {
	suite.Suite
	ctx        context.Context
	pool       *pgxpool.Pool
	expenses   *ExpenseRepository
	goals      *GoalRepository
	categories *CategoryRepository
}

func TestRepositorySuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	s.ctx = context.Background()
	logger := zap.NewNop()

	pool, err := pgxpool.New(s.ctx, os.Getenv("TEST_DATABASE_URL"))
	require.NoError(s.T(), err, "failed to connect to test database")
	require.NoError(s.T(), postgres.Migrate(s.ctx, pool, logger))

	s.pool = pool
	s.expenses = NewExpenseRepository(pool, logger)
	s.goals = NewGoalRepository(pool, logger)
	s.categories = NewCategoryRepository(pool, logger)
}

func (s *RepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *RepositorySuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE expenses, goals, categories RESTART IDENTITY")
	require.NoError(s.T(), err)
}

func (s *RepositorySuite) today(daysAgo int) string {
	return time.Now().AddDate(0, 0, -daysAgo).Format("2006-01-02")
}

func (s *RepositorySuite) TestExpenseRoundTrip() {
	id, err := s.expenses.Create(s.ctx, &models.Expense{
		Amount:        450.50,
		Category:      "Food",
		Date:          s.today(1),
		PaymentMethod: "upi",
		Description:   "Groceries",
	})
	require.NoError(s.T(), err)
	assert.Positive(s.T(), id)

	listed, err := s.expenses.List(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), listed, 1)

	got := listed[0]
	assert.Equal(s.T(), id, got.ID)
	assert.InDelta(s.T(), 450.50, got.Amount, 0.001)
	assert.Equal(s.T(), "Food", got.Category)
	assert.Equal(s.T(), s.today(1), got.Date)
	assert.Equal(s.T(), "upi", got.PaymentMethod)
	assert.Equal(s.T(), "Groceries", got.Description)
	assert.False(s.T(), got.CreatedAt.IsZero())
}

func (s *RepositorySuite) TestExpenseListNewestDateFirst() {
	for _, daysAgo := range []int{5, 1, 3} {
		_, err := s.expenses.Create(s.ctx, &models.Expense{
			Amount: 10, Category: "Food", Date: s.today(daysAgo), PaymentMethod: "cash",
		})
		require.NoError(s.T(), err)
	}

	listed, err := s.expenses.List(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), listed, 3)
	assert.Equal(s.T(), s.today(1), listed[0].Date)
	assert.Equal(s.T(), s.today(3), listed[1].Date)
	assert.Equal(s.T(), s.today(5), listed[2].Date)
}

func (s *RepositorySuite) TestExpenseUpdateOverwritesAllFields() {
	id, err := s.expenses.Create(s.ctx, &models.Expense{
		Amount: 100, Category: "Food", Date: s.today(1), PaymentMethod: "cash", Description: "lunch",
	})
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.expenses.Update(s.ctx, id, &models.Expense{
		Amount: 250, Category: "Transport", Date: s.today(2), PaymentMethod: "card", Description: "",
	}))

	listed, err := s.expenses.List(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), listed, 1)
	assert.InDelta(s.T(), 250.0, listed[0].Amount, 0.001)
	assert.Equal(s.T(), "Transport", listed[0].Category)
	assert.Equal(s.T(), "", listed[0].Description)
}

func (s *RepositorySuite) TestDeleteMissingIDSucceeds() {
	assert.NoError(s.T(), s.expenses.Delete(s.ctx, 99999))
	assert.NoError(s.T(), s.goals.Delete(s.ctx, 99999))
}

func (s *RepositorySuite) TestAnalyticsPartitionConsistency() {
	samples := []struct {
		amount   float64
		category string
		payment  string
		daysAgo  int
	}{
		{120.50, "Food", "upi", 2},
		{60.25, "Transport", "cash", 4},
		{30.25, "Food", "card", 6},
		{500.00, "Rent", "bank_transfer", 500}, // outside every window
	}
	for _, smp := range samples {
		_, err := s.expenses.Create(s.ctx, &models.Expense{
			Amount: smp.amount, Category: smp.category, Date: s.today(smp.daysAgo), PaymentMethod: smp.payment,
		})
		require.NoError(s.T(), err)
	}

	cutoff := s.today(30)

	total, err := s.expenses.TotalSince(s.ctx, cutoff)
	require.NoError(s.T(), err)
	assert.InDelta(s.T(), 211.0, total, 0.001)

	byCategory, err := s.expenses.TotalsByCategorySince(s.ctx, cutoff)
	require.NoError(s.T(), err)
	var categorySum float64
	for _, entry := range byCategory {
		categorySum += entry.Total
	}
	assert.InDelta(s.T(), total, categorySum, 0.001)

	byPayment, err := s.expenses.TotalsByPaymentSince(s.ctx, cutoff)
	require.NoError(s.T(), err)
	var paymentSum float64
	for _, entry := range byPayment {
		paymentSum += entry.Total
	}
	assert.InDelta(s.T(), total, paymentSum, 0.001)
}

func (s *RepositorySuite) TestTotalSinceEmptyWindowIsZero() {
	total, err := s.expenses.TotalSince(s.ctx, s.today(7))
	require.NoError(s.T(), err)
	assert.Zero(s.T(), total)
}

func (s *RepositorySuite) TestGoalsOrderedByDeadline() {
	deadlines := []string{"2027-06-01", "2026-12-01", "2027-01-15"}
	for _, d := range deadlines {
		_, err := s.goals.Create(s.ctx, &models.Goal{
			Name: "goal " + d, Target: 1000, Deadline: d, Priority: "medium",
		})
		require.NoError(s.T(), err)
	}

	listed, err := s.goals.List(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), listed, 3)
	assert.Equal(s.T(), "2026-12-01", listed[0].Deadline)
	assert.Equal(s.T(), "2027-01-15", listed[1].Deadline)
	assert.Equal(s.T(), "2027-06-01", listed[2].Deadline)
	// Current progress defaults to 0 at the column level.
	assert.Zero(s.T(), listed[0].Current)
}

func (s *RepositorySuite) TestDuplicateCategoryLeavesStateUnchanged() {
	require.NoError(s.T(), s.categories.Create(s.ctx, "Food"))

	err := s.categories.Create(s.ctx, "Food")
	assert.ErrorIs(s.T(), err, ErrDuplicateCategory)

	names, err := s.categories.ListNames(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"Food"}, names)
}
