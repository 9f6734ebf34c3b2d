// Package engine orchestrates the bookkeeping structures behind a single
// synchronous API. One Engine owns one instance of everything; no method
// is safe for concurrent use, so callers needing shared access must
// serialize around the Engine as a whole.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coinscribe/coinscribe/internal/autocomplete"
	"github.com/coinscribe/coinscribe/internal/bills"
	"github.com/coinscribe/coinscribe/internal/categories"
	"github.com/coinscribe/coinscribe/internal/dateindex"
	"github.com/coinscribe/coinscribe/internal/ledger"
	"github.com/coinscribe/coinscribe/internal/model"
	"github.com/coinscribe/coinscribe/internal/recent"
	"github.com/coinscribe/coinscribe/internal/undo"
)

// DefaultCategories seeds the category trie so suggestions work before the
// first transaction arrives.
var DefaultCategories = []string{
	"Food", "Transport", "Shopping", "Entertainment", "Bills",
	"Healthcare", "Education", "Salary", "Freelance", "Investment",
	"Rent", "Utilities", "Groceries", "Dining", "Travel",
}

// Config holds the tunables for a new Engine.
type Config struct {
	DefaultCategories []string
	UndoDepth         int
	RecentDepth       int
	MaxSuggestions    int
}

// DefaultConfig returns the stock configuration. The seed list is copied
// so callers mutating their Config cannot reach the package-level slice.
func DefaultConfig() Config {
	seed := make([]string, len(DefaultCategories))
	copy(seed, DefaultCategories)
	return Config{
		DefaultCategories: seed,
		UndoDepth:         undo.DefaultDepth,
		RecentDepth:       recent.DefaultDepth,
		MaxSuggestions:    autocomplete.DefaultMaxResults,
	}
}

// Engine is the single entry point external collaborators call.
type Engine struct {
	ledger       *ledger.Ledger
	dates        *dateindex.Index
	categories   *categories.Index
	billQueue    *bills.Schedule
	undoLog      *undo.Log
	recentView   *recent.View
	categoryTrie *autocomplete.Trie
	payeeTrie    *autocomplete.Trie

	now            func() time.Time
	maxSuggestions int
	txnSeq         int
	billSeq        int
}

// New creates an engine with the default configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an engine with custom limits and seed categories.
func NewWithConfig(cfg Config) *Engine {
	e := &Engine{
		ledger:         ledger.New(),
		dates:          dateindex.New(),
		categories:     categories.New(),
		billQueue:      bills.New(),
		undoLog:        undo.New(cfg.UndoDepth),
		recentView:     recent.New(cfg.RecentDepth),
		categoryTrie:   autocomplete.New(),
		payeeTrie:      autocomplete.New(),
		now:            time.Now,
		maxSuggestions: cfg.MaxSuggestions,
	}
	if e.maxSuggestions <= 0 {
		e.maxSuggestions = autocomplete.DefaultMaxResults
	}
	for _, category := range cfg.DefaultCategories {
		e.categoryTrie.Insert(category)
	}
	return e
}

// nextTransactionID and nextBillID combine the clock with engine-owned
// sequence counters; the counter alone guarantees uniqueness within one
// engine, the timestamp keeps ids distinct across rehydrated sessions.
func (e *Engine) nextTransactionID() string {
	e.txnSeq++
	return fmt.Sprintf("txn_%d_%d", e.now().Unix(), e.txnSeq)
}

func (e *Engine) nextBillID() string {
	e.billSeq++
	return fmt.Sprintf("bill_%d_%d", e.now().Unix(), e.billSeq)
}

// AddTransaction records a new transaction and fans it out to every index:
// ledger front, date index, recent view, category totals, tries, then the
// undo log.
func (e *Engine) AddTransaction(kind model.Kind, amount decimal.Decimal, category, description, date string) model.Transaction {
	t := model.Transaction{
		ID:          e.nextTransactionID(),
		Kind:        kind,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
	e.insertTransaction(t, true)
	e.undoLog.Push(undo.Action{Kind: undo.AddTransaction, Transaction: &t})

	slog.Debug("transaction added",
		"id", t.ID,
		"kind", t.Kind,
		"amount", t.Amount,
		"category", t.Category,
		"date", t.Date)
	return t
}

// DeleteTransaction removes the transaction from the ledger, date index
// and category totals, recording the full record so the deletion can be
// undone. The recent view is deliberately left alone; stale entries age
// out. Returns false when the id is unknown.
func (e *Engine) DeleteTransaction(id string) bool {
	t, ok := e.ledger.FindByID(id)
	if !ok {
		return false
	}
	e.undoLog.Push(undo.Action{Kind: undo.DeleteTransaction, Transaction: &t})

	e.ledger.RemoveByID(id)
	e.dates.DeleteByID(id)
	if t.Kind == model.KindExpense {
		e.categories.SubtractExpense(t.Category, t.Amount)
	}

	slog.Debug("transaction deleted", "id", id, "category", t.Category)
	return true
}

// SetBudget creates or updates the budget for a category. Only the limit
// is caller-controlled: Spent always mirrors the current running expense
// total. An update logs the limit it replaced so it can be undone.
func (e *Engine) SetBudget(category string, limit decimal.Decimal) {
	prev, existed := e.categories.SetBudget(category, limit)
	if existed {
		e.undoLog.Push(undo.Action{Kind: undo.UpdateBudget, Category: category, PrevLimit: prev})
	} else {
		e.undoLog.Push(undo.Action{Kind: undo.AddBudget, Category: category})
	}
	e.categoryTrie.Insert(category)

	slog.Debug("budget set", "category", category, "limit", limit, "updated", existed)
}

// AddBill enqueues a new payable at the back of the schedule.
func (e *Engine) AddBill(name string, amount decimal.Decimal, dueDate, category string) model.Bill {
	b := model.Bill{
		ID:       e.nextBillID(),
		Name:     name,
		Amount:   amount,
		DueDate:  dueDate,
		Category: category,
	}
	e.billQueue.Enqueue(b)
	e.undoLog.Push(undo.Action{Kind: undo.AddBill, Bill: &b})

	slog.Debug("bill added", "id", b.ID, "name", b.Name, "due", b.DueDate)
	return b
}

// PayBill marks the bill paid. The action lands on the undo log but Undo
// currently applies no inverse for bill actions.
func (e *Engine) PayBill(id string) bool {
	if _, ok := e.billQueue.FindByID(id); !ok {
		return false
	}
	e.undoLog.Push(undo.Action{Kind: undo.PayBill, BillID: id})
	e.billQueue.MarkPaidByID(id)

	slog.Debug("bill paid", "id", id)
	return true
}

// RemoveBill deletes the bill from the schedule, from the middle if need be.
func (e *Engine) RemoveBill(id string) bool {
	b, ok := e.billQueue.FindByID(id)
	if !ok {
		return false
	}
	e.undoLog.Push(undo.Action{Kind: undo.DeleteBill, Bill: &b})
	e.billQueue.RemoveByID(id)

	slog.Debug("bill removed", "id", id, "name", b.Name)
	return true
}

// Undo pops the most recent action and applies its structural inverse.
// Bill actions are consumed without effect. Returns false only when the
// log is empty.
func (e *Engine) Undo() bool {
	action, ok := e.undoLog.Pop()
	if !ok {
		return false
	}

	switch action.Kind {
	case undo.AddTransaction:
		// The deletion pushes its own compensating record; drop it so
		// the log does not grow during an undo.
		if e.DeleteTransaction(action.Transaction.ID) {
			e.undoLog.Pop()
		}
	case undo.DeleteTransaction:
		e.restoreTransaction(*action.Transaction)
	case undo.AddBudget:
		e.categories.RemoveBudget(action.Category)
	case undo.UpdateBudget:
		// Only the limit is restored; Spent stays derived from the
		// running totals.
		e.categories.RestoreLimit(action.Category, action.PrevLimit)
	case undo.AddBill, undo.DeleteBill, undo.PayBill:
		// No inverse implemented for bill actions.
	}

	slog.Debug("undo applied", "action", action.Kind.String())
	return true
}

// restoreTransaction is the inverse of a deletion: back into the ledger
// (at the back), the date index and the category totals. The recent view
// and tries are not touched.
func (e *Engine) restoreTransaction(t model.Transaction) {
	e.ledger.AddBack(t)
	e.dates.Insert(t)
	if t.Kind == model.KindExpense {
		e.categories.AddExpense(t.Category, t.Amount)
	}
}

// ClearAll drops every transaction, bill, recent entry and undo record.
// Budgets survive with Spent reset to zero so the spent-mirror invariant
// holds against the now-empty ledger; the tries are append-only and keep
// their words.
func (e *Engine) ClearAll() {
	e.ledger.Clear()
	e.dates.Clear()
	e.recentView.Clear()
	e.undoLog.Clear()
	e.billQueue.Clear()
	e.categories.ResetTotals()

	slog.Info("engine state cleared")
}

// LoadTransaction rehydrates a persisted transaction: ledger back to keep
// the source order, no undo record. The caller guarantees id uniqueness
// and the YYYY-MM-DD date format.
func (e *Engine) LoadTransaction(id string, kind model.Kind, amount decimal.Decimal, category, description, date string) {
	e.insertTransaction(model.Transaction{
		ID:          id,
		Kind:        kind,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}, false)
}

// LoadBudget rehydrates a persisted budget; Spent is picked up from the
// running totals, not the persisted value.
func (e *Engine) LoadBudget(category string, limit decimal.Decimal) {
	e.categories.SetBudget(category, limit)
	e.categoryTrie.Insert(category)
}

// LoadBill rehydrates a persisted bill including its paid state.
func (e *Engine) LoadBill(id, name string, amount decimal.Decimal, dueDate, category string, isPaid bool) {
	e.billQueue.Enqueue(model.Bill{
		ID:       id,
		Name:     name,
		Amount:   amount,
		DueDate:  dueDate,
		Category: category,
		IsPaid:   isPaid,
	})
}

// insertTransaction applies the fixed fan-out order: ledger, date index,
// recent view, category totals, tries.
func (e *Engine) insertTransaction(t model.Transaction, front bool) {
	if front {
		e.ledger.AddFront(t)
	} else {
		e.ledger.AddBack(t)
	}
	e.dates.Insert(t)
	e.recentView.Push(t)
	if t.Kind == model.KindExpense {
		e.categories.AddExpense(t.Category, t.Amount)
	}
	e.categoryTrie.Insert(t.Category)
	if t.Description != "" {
		e.payeeTrie.Insert(t.Description)
	}
}
