// Package ledger holds the canonical ordered store of live transactions.
// Every secondary index in the engine derives from it.
package ledger

import "github.com/coinscribe/coinscribe/internal/model"

// Ledger is an ordered record store. Interactive adds go to the front so
// the natural iteration order is most-recent-first; bulk loads append to
// the back to preserve the original order of the source.
type Ledger struct {
	records []model.Transaction
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// AddFront prepends a transaction.
func (l *Ledger) AddFront(t model.Transaction) {
	l.records = append([]model.Transaction{t}, l.records...)
}

// AddBack appends a transaction.
func (l *Ledger) AddBack(t model.Transaction) {
	l.records = append(l.records, t)
}

// RemoveByID deletes the record with the given id, reporting whether it
// was present. Linear scan; relative order of the rest is unchanged.
func (l *Ledger) RemoveByID(id string) bool {
	for i, t := range l.records {
		if t.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns the record with the given id.
func (l *Ledger) FindByID(id string) (model.Transaction, bool) {
	for _, t := range l.records {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// All returns a copy of every record in ledger order.
func (l *Ledger) All() []model.Transaction {
	out := make([]model.Transaction, len(l.records))
	copy(out, l.records)
	return out
}

// FilterByCategory returns the records in the given category, in ledger order.
func (l *Ledger) FilterByCategory(category string) []model.Transaction {
	var out []model.Transaction
	for _, t := range l.records {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// FilterByKind returns the records of the given kind, in ledger order.
func (l *Ledger) FilterByKind(kind model.Kind) []model.Transaction {
	var out []model.Transaction
	for _, t := range l.records {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// Len reports the number of live records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Clear releases every record.
func (l *Ledger) Clear() {
	l.records = nil
}
