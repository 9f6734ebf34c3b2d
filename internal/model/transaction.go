// Package model defines the value types shared across the bookkeeping engine.
package model

import "github.com/shopspring/decimal"

// Kind distinguishes money coming in from money going out.
type Kind string

const (
	// KindIncome marks a transaction that increases the balance.
	KindIncome Kind = "income"
	// KindExpense marks a transaction that decreases the balance.
	KindExpense Kind = "expense"
)

// Transaction is a single ledger entry. It is immutable once created;
// secondary indexes hold copies, never references into the ledger.
type Transaction struct {
	ID          string
	Kind        Kind
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        string // YYYY-MM-DD, so string order is chronological order
}
