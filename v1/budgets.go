package v1

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the renewal cadence of a budget
type BudgetPeriod string

const (
	BudgetPeriodWeek    BudgetPeriod = "week"
	BudgetPeriodMonth   BudgetPeriod = "month"
	BudgetPeriodQuarter BudgetPeriod = "quarter"
	BudgetPeriodYear    BudgetPeriod = "year"
)

// IsValid checks if the period is a valid BudgetPeriod
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case BudgetPeriodWeek, BudgetPeriodMonth, BudgetPeriodQuarter, BudgetPeriodYear:
		return true
	}
	return false
}

// String returns the string representation of BudgetPeriod
func (p BudgetPeriod) String() string {
	return string(p)
}

// AllBudgetPeriods returns all valid budget periods
func AllBudgetPeriods() []BudgetPeriod {
	return []BudgetPeriod{
		BudgetPeriodWeek,
		BudgetPeriodMonth,
		BudgetPeriodQuarter,
		BudgetPeriodYear,
	}
}

// Budget is a spending allowance attached to a customer or a department for
// one period window.
type Budget struct {
	ID           int
	CustomerID   int // zero when the budget belongs to a department
	DepartmentID int // zero when the budget belongs to a customer
	Period       BudgetPeriod
	CurrencyCode string
	Amount       decimal.Decimal
	Spent        decimal.Decimal
	StartsAt     time.Time
	EndsAt       time.Time
}

// Remaining returns the unspent part of the budget.
func (b Budget) Remaining() decimal.Decimal {
	return b.Amount.Sub(b.Spent)
}

// CanSpend reports whether a positive amount fits in the remaining budget.
func (b Budget) CanSpend(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}
	return b.Remaining().GreaterThanOrEqual(amount)
}

// ActiveAt reports whether the budget window covers the given instant.
func (b Budget) ActiveAt(t time.Time) bool {
	return !t.Before(b.StartsAt) && t.Before(b.EndsAt)
}

// Budgets is the budget namespace of the host API.
type Budgets interface {
	// ForCustomer returns the budgets attached to a customer.
	ForCustomer(ctx context.Context, customerID int) ([]Budget, error)

	// ForDepartment returns the budgets attached to a department.
	ForDepartment(ctx context.Context, departmentID int) ([]Budget, error)

	// Adjust changes the spent amount of a budget by delta (positive to
	// record spend, negative to release it) and returns the updated budget.
	// Overspending fails with ErrInvalidState.
	Adjust(ctx context.Context, budgetID int, delta decimal.Decimal, reason string) (Budget, error)
}
