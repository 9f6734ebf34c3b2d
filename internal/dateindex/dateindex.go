// Package dateindex maintains a date-ordered secondary index over the
// ledger, answering chronological and range queries independently of
// ledger order.
package dateindex

import (
	"github.com/google/btree"

	"github.com/coinscribe/coinscribe/internal/model"
)

// bucket groups the transactions sharing one date. The slice preserves
// insertion order within the date.
type bucket struct {
	date string
	txns []model.Transaction
}

// Index orders transactions by their YYYY-MM-DD date string, which is also
// chronological order.
type Index struct {
	tree *btree.BTreeG[*bucket]
	size int
}

// New returns an empty index.
func New() *Index {
	return &Index{
		tree: btree.NewG(8, func(a, b *bucket) bool { return a.date < b.date }),
	}
}

// Insert files the transaction under its date.
func (ix *Index) Insert(t model.Transaction) {
	if b, ok := ix.tree.Get(&bucket{date: t.Date}); ok {
		b.txns = append(b.txns, t)
	} else {
		ix.tree.ReplaceOrInsert(&bucket{date: t.Date, txns: []model.Transaction{t}})
	}
	ix.size++
}

// DeleteByID removes the transaction wherever it is filed, reporting
// whether it was present. Scans buckets in order.
func (ix *Index) DeleteByID(id string) bool {
	var found *bucket
	at := -1
	ix.tree.Ascend(func(b *bucket) bool {
		for i, t := range b.txns {
			if t.ID == id {
				found, at = b, i
				return false
			}
		}
		return true
	})
	if found == nil {
		return false
	}
	found.txns = append(found.txns[:at], found.txns[at+1:]...)
	if len(found.txns) == 0 {
		ix.tree.Delete(found)
	}
	ix.size--
	return true
}

// Ascending returns every indexed transaction in ascending date order,
// insertion order within a date.
func (ix *Index) Ascending() []model.Transaction {
	out := make([]model.Transaction, 0, ix.size)
	ix.tree.Ascend(func(b *bucket) bool {
		out = append(out, b.txns...)
		return true
	})
	return out
}

// Descending returns every indexed transaction newest date first. Within a
// date, insertion order is kept.
func (ix *Index) Descending() []model.Transaction {
	out := make([]model.Transaction, 0, ix.size)
	ix.tree.Descend(func(b *bucket) bool {
		out = append(out, b.txns...)
		return true
	})
	return out
}

// Range returns the transactions dated within [start, end] inclusive, in
// ascending date order. Iteration begins at the first in-range bucket and
// stops past the end bound, so out-of-range subtrees are never visited.
func (ix *Index) Range(start, end string) []model.Transaction {
	var out []model.Transaction
	ix.tree.AscendGreaterOrEqual(&bucket{date: start}, func(b *bucket) bool {
		if b.date > end {
			return false
		}
		out = append(out, b.txns...)
		return true
	})
	return out
}

// Month returns the transactions of one YYYY-MM month. The "-31" end bound
// is a string-comparison convenience, not calendar arithmetic: no
// transaction can carry a date past the month's real last day, so the
// loose bound is harmless.
func (ix *Index) Month(yearMonth string) []model.Transaction {
	return ix.Range(yearMonth+"-01", yearMonth+"-31")
}

// Len reports the number of indexed transactions.
func (ix *Index) Len() int {
	return ix.size
}

// Clear drops every bucket.
func (ix *Index) Clear() {
	ix.tree.Clear(false)
	ix.size = 0
}
