// Package recent keeps a bounded most-recent-first cache of transactions
// for quick display. It is fed on insertion only and never compacted when
// a transaction is deleted; stale entries age out as new ones arrive.
package recent

import "github.com/coinscribe/coinscribe/internal/model"

// DefaultDepth bounds the view when no explicit depth is configured.
const DefaultDepth = 100

// View is the bounded cache. Its order is independent of the ledger's.
type View struct {
	entries []model.Transaction
	depth   int
}

// New returns an empty view holding at most depth entries. Non-positive
// depths fall back to DefaultDepth.
func New(depth int) *View {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &View{depth: depth}
}

// Push prepends a transaction, trimming everything beyond the depth from
// the tail.
func (v *View) Push(t model.Transaction) {
	v.entries = append([]model.Transaction{t}, v.entries...)
	if len(v.entries) > v.depth {
		v.entries = v.entries[:v.depth]
	}
}

// TopN returns the first n entries, or fewer if the view holds fewer.
func (v *View) TopN(n int) []model.Transaction {
	if n > len(v.entries) {
		n = len(v.entries)
	}
	if n <= 0 {
		return nil
	}
	out := make([]model.Transaction, n)
	copy(out, v.entries[:n])
	return out
}

// All returns a copy of the whole view, most recent first.
func (v *View) All() []model.Transaction {
	return v.TopN(len(v.entries))
}

// Len reports the number of cached entries.
func (v *View) Len() int {
	return len(v.entries)
}

// Clear empties the view.
func (v *View) Clear() {
	v.entries = nil
}
