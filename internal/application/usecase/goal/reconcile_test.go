// Package goal contains monthly-goal use cases.
package goal

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEffectiveGoalValue(t *testing.T) {
	t.Run("converts a stored percentage to an absolute amount", func(t *testing.T) {
		income := decimal.NewFromInt(1000)
		stored := decimal.NewFromInt(60)

		got := EffectiveGoalValue(income, stored)

		want := decimal.NewFromInt(600)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("rounds to two decimal places", func(t *testing.T) {
		income := decimal.NewFromFloat(1234.56)
		stored := decimal.NewFromFloat(33.33)

		got := EffectiveGoalValue(income, stored)

		// 1234.56 * 33.33 / 100 = 411.478848
		want := decimal.NewFromFloat(411.48)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("zero income yields a zero goal", func(t *testing.T) {
		got := EffectiveGoalValue(decimal.Zero, decimal.NewFromInt(50))

		if !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})
}

func TestMet(t *testing.T) {
	t.Run("actual below the goal is not met", func(t *testing.T) {
		if Met(decimal.NewFromInt(150), decimal.NewFromInt(600)) {
			t.Error("expected goal not to be met")
		}
	})

	t.Run("actual equal to the goal is met", func(t *testing.T) {
		if !Met(decimal.NewFromInt(600), decimal.NewFromInt(600)) {
			t.Error("expected goal to be met at exact equality")
		}
	})

	t.Run("actual above the goal is met", func(t *testing.T) {
		if !Met(decimal.NewFromInt(601), decimal.NewFromInt(600)) {
			t.Error("expected goal to be met")
		}
	})
}
