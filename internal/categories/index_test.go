package categories

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestIndex_AddAndSubtractExpense(t *testing.T) {
	ix := New()
	ix.AddExpense("Food", amount("30"))
	ix.AddExpense("Food", amount("20.50"))

	assert.True(t, ix.Total("Food").Equal(amount("50.50")))

	ix.SubtractExpense("Food", amount("10.50"))
	assert.True(t, ix.Total("Food").Equal(amount("40")))
}

func TestIndex_SubtractClampsAtZero(t *testing.T) {
	ix := New()
	ix.AddExpense("Food", amount("10"))
	ix.SubtractExpense("Food", amount("25"))

	assert.True(t, ix.Total("Food").IsZero())

	// Subtracting from a category never seen stays at zero too.
	ix.SubtractExpense("Ghost", amount("5"))
	assert.True(t, ix.Total("Ghost").IsZero())
}

func TestIndex_BudgetMirrorsTotal(t *testing.T) {
	ix := New()
	ix.AddExpense("Food", amount("30"))

	_, existed := ix.SetBudget("Food", amount("100"))
	assert.False(t, existed)

	b, ok := ix.Budget("Food")
	require.True(t, ok)
	assert.True(t, b.Spent.Equal(amount("30")), "new budget picks up the running total")

	ix.AddExpense("Food", amount("50"))
	b, _ = ix.Budget("Food")
	assert.True(t, b.Spent.Equal(amount("80")))

	ix.SubtractExpense("Food", amount("80"))
	b, _ = ix.Budget("Food")
	assert.True(t, b.Spent.IsZero())
}

func TestIndex_SetBudgetReturnsPreviousLimit(t *testing.T) {
	ix := New()
	ix.SetBudget("Food", amount("100"))

	prev, existed := ix.SetBudget("Food", amount("200"))
	require.True(t, existed)
	assert.True(t, prev.Equal(amount("100")))

	b, _ := ix.Budget("Food")
	assert.True(t, b.Limit.Equal(amount("200")))
	assert.Equal(t, 1, ix.BudgetCount(), "update must not create a second budget")
}

func TestIndex_RestoreLimit(t *testing.T) {
	ix := New()
	ix.AddExpense("Food", amount("40"))
	ix.SetBudget("Food", amount("200"))

	require.True(t, ix.RestoreLimit("Food", amount("100")))
	b, _ := ix.Budget("Food")
	assert.True(t, b.Limit.Equal(amount("100")))
	assert.True(t, b.Spent.Equal(amount("40")), "restore touches only the limit")

	assert.False(t, ix.RestoreLimit("Ghost", amount("10")))
}

func TestIndex_RemoveBudget(t *testing.T) {
	ix := New()
	ix.AddExpense("Food", amount("40"))
	ix.SetBudget("Food", amount("100"))

	assert.True(t, ix.RemoveBudget("Food"))
	assert.False(t, ix.RemoveBudget("Food"))

	_, ok := ix.Budget("Food")
	assert.False(t, ok)
	assert.True(t, ix.Total("Food").Equal(amount("40")), "totals outlive budgets")
}

func TestIndex_BudgetsSortedByCategory(t *testing.T) {
	ix := New()
	ix.SetBudget("Transport", amount("50"))
	ix.SetBudget("Food", amount("100"))
	ix.SetBudget("Rent", amount("900"))

	budgets := ix.Budgets()
	require.Len(t, budgets, 3)
	assert.Equal(t, "Food", budgets[0].Category)
	assert.Equal(t, "Rent", budgets[1].Category)
	assert.Equal(t, "Transport", budgets[2].Category)
}

func TestIndex_ResetTotals(t *testing.T) {
	ix := New()
	ix.AddExpense("Food", amount("75"))
	ix.SetBudget("Food", amount("100"))

	ix.ResetTotals()

	assert.True(t, ix.Total("Food").IsZero())
	b, ok := ix.Budget("Food")
	require.True(t, ok, "budgets survive a reset")
	assert.True(t, b.Spent.IsZero())
	assert.True(t, b.Limit.Equal(amount("100")))
}

func TestIndex_TotalsReturnsCopy(t *testing.T) {
	ix := New()
	ix.AddExpense("Food", amount("10"))

	totals := ix.Totals()
	totals["Food"] = amount("999")

	assert.True(t, ix.Total("Food").Equal(amount("10")))
}
