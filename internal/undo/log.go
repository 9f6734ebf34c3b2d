// Package undo records reversible engine actions in a bounded LIFO log.
package undo

import (
	"github.com/shopspring/decimal"

	"github.com/coinscribe/coinscribe/internal/model"
)

// ActionKind tags what a logged action did.
type ActionKind int

// Action kinds, one per undoable engine mutation.
const (
	AddTransaction ActionKind = iota
	DeleteTransaction
	AddBudget
	UpdateBudget
	AddBill
	DeleteBill
	PayBill
)

// String returns the kind's wire-friendly name.
func (k ActionKind) String() string {
	switch k {
	case AddTransaction:
		return "add_transaction"
	case DeleteTransaction:
		return "delete_transaction"
	case AddBudget:
		return "add_budget"
	case UpdateBudget:
		return "update_budget"
	case AddBill:
		return "add_bill"
	case DeleteBill:
		return "delete_bill"
	case PayBill:
		return "pay_bill"
	default:
		return "unknown"
	}
}

// Action carries the minimal payload needed to reverse one mutation.
// Which fields are set depends on the kind: transaction actions carry the
// full transaction, budget actions the category (plus, for updates, the
// limit being replaced), bill actions the full bill or just its id.
type Action struct {
	Kind        ActionKind
	Transaction *model.Transaction
	Bill        *model.Bill
	BillID      string
	Category    string
	PrevLimit   decimal.Decimal
}

// DefaultDepth bounds the log when no explicit depth is configured.
const DefaultDepth = 50

// Log is a strictly-LIFO history with a fixed depth. Pushing onto a full
// log discards the oldest entry first.
type Log struct {
	stack []Action
	depth int
}

// New returns an empty log holding at most depth actions. Non-positive
// depths fall back to DefaultDepth.
func New(depth int) *Log {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Log{depth: depth}
}

// Push records an action, trimming the oldest entry when the log is full.
// The trim shifts the whole stack; acceptable for the small bound.
func (l *Log) Push(a Action) {
	if len(l.stack) >= l.depth {
		n := copy(l.stack, l.stack[len(l.stack)-(l.depth-1):])
		l.stack = l.stack[:n]
	}
	l.stack = append(l.stack, a)
}

// Pop removes and returns the most recent action.
func (l *Log) Pop() (Action, bool) {
	if len(l.stack) == 0 {
		return Action{}, false
	}
	a := l.stack[len(l.stack)-1]
	l.stack = l.stack[:len(l.stack)-1]
	return a, true
}

// Peek returns the most recent action without removing it.
func (l *Log) Peek() (Action, bool) {
	if len(l.stack) == 0 {
		return Action{}, false
	}
	return l.stack[len(l.stack)-1], true
}

// Actions returns the history newest-first, for display.
func (l *Log) Actions() []Action {
	out := make([]Action, 0, len(l.stack))
	for i := len(l.stack) - 1; i >= 0; i-- {
		out = append(out, l.stack[i])
	}
	return out
}

// Len reports the number of recorded actions.
func (l *Log) Len() int {
	return len(l.stack)
}

// Clear drops the whole history.
func (l *Log) Clear() {
	l.stack = nil
}
