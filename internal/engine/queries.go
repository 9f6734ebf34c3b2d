package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/coinscribe/coinscribe/internal/model"
	"github.com/coinscribe/coinscribe/internal/ranking"
	"github.com/coinscribe/coinscribe/internal/undo"
)

// DefaultRecentCount is how many recent transactions are returned when the
// caller passes no count.
const DefaultRecentCount = 10

// AllTransactions returns the ledger in its own order: interactively added
// entries most recent first, loaded entries in load order at the back.
func (e *Engine) AllTransactions() []model.Transaction {
	return e.ledger.All()
}

// TransactionsByDateAsc returns every transaction in ascending date order.
func (e *Engine) TransactionsByDateAsc() []model.Transaction {
	return e.dates.Ascending()
}

// TransactionsByDateDesc returns every transaction newest date first.
func (e *Engine) TransactionsByDateDesc() []model.Transaction {
	return e.dates.Descending()
}

// TransactionsInRange returns the transactions dated within [start, end]
// inclusive, ascending.
func (e *Engine) TransactionsInRange(start, end string) []model.Transaction {
	return e.dates.Range(start, end)
}

// RecentTransactions returns the n most recently entered transactions;
// n <= 0 falls back to DefaultRecentCount. Deleted transactions may still
// appear here until they age out of the view.
func (e *Engine) RecentTransactions(n int) []model.Transaction {
	if n <= 0 {
		n = DefaultRecentCount
	}
	return e.recentView.TopN(n)
}

// TransactionsByCategory returns the ledger records in one category.
func (e *Engine) TransactionsByCategory(category string) []model.Transaction {
	return e.ledger.FilterByCategory(category)
}

// GetBudget returns the budget for a category.
func (e *Engine) GetBudget(category string) (model.Budget, bool) {
	return e.categories.Budget(category)
}

// AllBudgets returns every budget, sorted by category.
func (e *Engine) AllBudgets() []model.Budget {
	return e.categories.Budgets()
}

// BudgetAlerts reports every budget past its normal band. Alerts are
// computed on demand, never stored.
func (e *Engine) BudgetAlerts() []model.BudgetAlert {
	var alerts []model.BudgetAlert
	for _, b := range e.categories.Budgets() {
		level := b.Level()
		if level == model.AlertNormal {
			continue
		}
		alerts = append(alerts, model.BudgetAlert{
			Category:    b.Category,
			Level:       level,
			PercentUsed: b.PercentUsed(),
			Spent:       b.Spent,
			Limit:       b.Limit,
		})
	}
	return alerts
}

// AllBills returns every bill in arrival order.
func (e *Engine) AllBills() []model.Bill {
	return e.billQueue.All()
}

// UnpaidBills returns the bills not yet paid, in arrival order.
func (e *Engine) UnpaidBills() []model.Bill {
	return e.billQueue.Unpaid()
}

// OverdueBills returns the unpaid bills due strictly before asOf.
func (e *Engine) OverdueBills(asOf string) []model.Bill {
	return e.billQueue.Overdue(asOf)
}

// NextBill returns the bill at the front of the schedule: the one waiting
// longest, which is not necessarily the one due soonest.
func (e *Engine) NextBill() (model.Bill, bool) {
	return e.billQueue.PeekFront()
}

// TopExpenses recomputes the k largest expenses from the live ledger.
func (e *Engine) TopExpenses(k int) []model.Transaction {
	return ranking.TopExpenses(e.ledger.FilterByKind(model.KindExpense), k)
}

// TopCategories recomputes the k biggest-spending categories from the
// running totals.
func (e *Engine) TopCategories(k int) []model.CategoryAmount {
	return ranking.TopCategories(e.categories.Totals(), k)
}

// MonthlySummary aggregates one YYYY-MM month from the date index. The
// category breakdown covers expenses only and is sorted by category.
func (e *Engine) MonthlySummary(yearMonth string) model.MonthlySummary {
	summary := model.MonthlySummary{
		Month:         yearMonth,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		NetSavings:    decimal.Zero,
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, t := range e.dates.Month(yearMonth) {
		summary.TransactionCount++
		if t.Kind == model.KindIncome {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		} else {
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount)
			byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		}
	}
	summary.NetSavings = summary.TotalIncome.Sub(summary.TotalExpenses)

	breakdown := make([]model.CategoryAmount, 0, len(byCategory))
	for category, total := range byCategory {
		breakdown = append(breakdown, model.CategoryAmount{Category: category, Total: total})
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Category < breakdown[j].Category })
	summary.CategoryBreakdown = breakdown

	return summary
}

// CategorySuggestions returns category completions for a prefix,
// case-insensitive, original casing preserved.
func (e *Engine) CategorySuggestions(prefix string) []string {
	return e.categoryTrie.WordsWithPrefix(prefix, e.maxSuggestions)
}

// AllCategories returns every category ever seen, including the seeds.
func (e *Engine) AllCategories() []string {
	return e.categoryTrie.AllWords()
}

// PayeeSuggestions returns description completions for a prefix.
func (e *Engine) PayeeSuggestions(prefix string) []string {
	return e.payeeTrie.WordsWithPrefix(prefix, e.maxSuggestions)
}

// CanUndo reports whether the undo log holds anything.
func (e *Engine) CanUndo() bool {
	return e.undoLog.Len() > 0
}

// ActionHistory returns the undo log newest-first, for display.
func (e *Engine) ActionHistory() []undo.Action {
	return e.undoLog.Actions()
}

// TransactionCount reports the number of live ledger records.
func (e *Engine) TransactionCount() int {
	return e.ledger.Len()
}

// BudgetCount reports the number of budgets.
func (e *Engine) BudgetCount() int {
	return e.categories.BudgetCount()
}

// BillCount reports the number of bills in the schedule.
func (e *Engine) BillCount() int {
	return e.billQueue.Len()
}

// TotalBalance scans the full ledger: income minus expenses. Recomputed on
// every call, never cached.
func (e *Engine) TotalBalance() decimal.Decimal {
	balance := decimal.Zero
	for _, t := range e.ledger.All() {
		if t.Kind == model.KindIncome {
			balance = balance.Add(t.Amount)
		} else {
			balance = balance.Sub(t.Amount)
		}
	}
	return balance
}

// TotalIncome sums every income record.
func (e *Engine) TotalIncome() decimal.Decimal {
	return sumAmounts(e.ledger.FilterByKind(model.KindIncome))
}

// TotalExpenses sums every expense record.
func (e *Engine) TotalExpenses() decimal.Decimal {
	return sumAmounts(e.ledger.FilterByKind(model.KindExpense))
}

func sumAmounts(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	return total
}
