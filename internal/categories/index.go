// Package categories tracks per-category running expense totals and the
// budget records that mirror them.
package categories

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/coinscribe/coinscribe/internal/model"
)

// Index keeps two associative stores keyed by category: running expense
// totals and budgets. Budget.Spent is re-synced here on every total
// mutation, so callers never observe the two disagreeing.
type Index struct {
	totals  map[string]decimal.Decimal
	budgets map[string]model.Budget
}

// New returns an empty index.
func New() *Index {
	return &Index{
		totals:  make(map[string]decimal.Decimal),
		budgets: make(map[string]model.Budget),
	}
}

// AddExpense raises the running total for the category.
func (ix *Index) AddExpense(category string, amount decimal.Decimal) {
	ix.setTotal(category, ix.Total(category).Add(amount))
}

// SubtractExpense lowers the running total, clamping at zero: subtracting
// more than the current total never drives it negative.
func (ix *Index) SubtractExpense(category string, amount decimal.Decimal) {
	next := ix.Total(category).Sub(amount)
	if next.IsNegative() {
		next = decimal.Zero
	}
	ix.setTotal(category, next)
}

func (ix *Index) setTotal(category string, total decimal.Decimal) {
	ix.totals[category] = total
	if b, ok := ix.budgets[category]; ok {
		b.Spent = total
		ix.budgets[category] = b
	}
}

// Total returns the running expense total for the category, zero if unseen.
func (ix *Index) Total(category string) decimal.Decimal {
	if t, ok := ix.totals[category]; ok {
		return t
	}
	return decimal.Zero
}

// Totals returns a copy of every running total.
func (ix *Index) Totals() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(ix.totals))
	for c, t := range ix.totals {
		out[c] = t
	}
	return out
}

// SetBudget creates or replaces the limit for a category, returning the
// limit being replaced when one existed. Spent is always the current
// running total, never caller-supplied.
func (ix *Index) SetBudget(category string, limit decimal.Decimal) (prev decimal.Decimal, existed bool) {
	if b, ok := ix.budgets[category]; ok {
		prev = b.Limit
		b.Limit = limit
		ix.budgets[category] = b
		return prev, true
	}
	ix.budgets[category] = model.Budget{
		Category: category,
		Limit:    limit,
		Spent:    ix.Total(category),
	}
	return decimal.Zero, false
}

// RestoreLimit rewrites the limit of an existing budget, leaving Spent
// alone. No-op when the category has no budget.
func (ix *Index) RestoreLimit(category string, limit decimal.Decimal) bool {
	b, ok := ix.budgets[category]
	if !ok {
		return false
	}
	b.Limit = limit
	ix.budgets[category] = b
	return true
}

// Budget returns the budget for a category.
func (ix *Index) Budget(category string) (model.Budget, bool) {
	b, ok := ix.budgets[category]
	return b, ok
}

// Budgets returns every budget, sorted by category for deterministic output.
func (ix *Index) Budgets() []model.Budget {
	out := make([]model.Budget, 0, len(ix.budgets))
	for _, b := range ix.budgets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// RemoveBudget deletes the budget for a category, reporting whether one
// existed. The running total is untouched.
func (ix *Index) RemoveBudget(category string) bool {
	if _, ok := ix.budgets[category]; !ok {
		return false
	}
	delete(ix.budgets, category)
	return true
}

// BudgetCount reports the number of budgets.
func (ix *Index) BudgetCount() int {
	return len(ix.budgets)
}

// ResetTotals zeroes every running total and every budget's Spent. Budget
// records themselves survive; budgets are never implicitly deleted.
func (ix *Index) ResetTotals() {
	ix.totals = make(map[string]decimal.Decimal)
	for c, b := range ix.budgets {
		b.Spent = decimal.Zero
		ix.budgets[c] = b
	}
}
