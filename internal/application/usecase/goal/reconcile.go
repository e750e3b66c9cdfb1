// Package goal contains monthly-goal use cases.
package goal

import (
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// EffectiveGoalValue resolves the absolute currency amount a stored goal
// represents for a month. Stored values are percentages of that month's total
// income: effective = round(income * value / 100, 2).
func EffectiveGoalValue(monthIncome, storedValue decimal.Decimal) decimal.Decimal {
	return monthIncome.Mul(storedValue).Div(oneHundred).Round(2)
}

// Met reports whether the actual summed amount meets the effective goal value.
// The comparison is non-strict: exactly meeting the goal counts as met.
func Met(actual, effectiveGoal decimal.Decimal) bool {
	return actual.GreaterThanOrEqual(effectiveGoal)
}
