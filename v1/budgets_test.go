package v1

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func monthlyBudget(amount, spent int64) Budget {
	return Budget{
		ID:           1,
		CustomerID:   42,
		Period:       BudgetPeriodMonth,
		CurrencyCode: "GBP",
		Amount:       decimal.NewFromInt(amount),
		Spent:        decimal.NewFromInt(spent),
		StartsAt:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBudgetRemaining(t *testing.T) {
	b := monthlyBudget(500, 120)
	assert.True(t, b.Remaining().Equal(decimal.NewFromInt(380)))

	overspent := monthlyBudget(500, 620)
	assert.True(t, overspent.Remaining().IsNegative())
}

func TestBudgetCanSpend(t *testing.T) {
	b := monthlyBudget(500, 120)

	assert.True(t, b.CanSpend(decimal.NewFromInt(380)))
	assert.False(t, b.CanSpend(decimal.NewFromInt(381)))
	assert.False(t, b.CanSpend(decimal.Zero))
	assert.False(t, b.CanSpend(decimal.NewFromInt(-10)))
}

func TestBudgetActiveAt(t *testing.T) {
	b := monthlyBudget(500, 0)

	assert.True(t, b.ActiveAt(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)))
	assert.True(t, b.ActiveAt(b.StartsAt))
	assert.False(t, b.ActiveAt(b.EndsAt))
	assert.False(t, b.ActiveAt(time.Date(2026, 7, 31, 23, 59, 0, 0, time.UTC)))
}

func TestBudgetPeriodIsValid(t *testing.T) {
	for _, p := range AllBudgetPeriods() {
		assert.True(t, p.IsValid(), "period %s should be valid", p)
	}
	assert.False(t, BudgetPeriod("fortnight").IsValid())
}
