// Package ranking extracts top-K views on demand. Nothing here is
// incrementally maintained: each call builds a fresh max-heap from the
// caller's snapshot and pops from it, so a deleted record can never
// reappear in a ranking.
package ranking

import (
	"container/heap"

	"github.com/shopspring/decimal"

	"github.com/coinscribe/coinscribe/internal/model"
)

type txnHeap []model.Transaction

func (h txnHeap) Len() int           { return len(h) }
func (h txnHeap) Less(i, j int) bool { return h[i].Amount.GreaterThan(h[j].Amount) }
func (h txnHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *txnHeap) Push(x any)        { *h = append(*h, x.(model.Transaction)) }
func (h *txnHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// TopExpenses returns the k largest transactions by amount, descending.
// Tie order between equal amounts is unspecified. k <= 0 yields nothing;
// k beyond the input yields everything. The input slice is not modified.
func TopExpenses(txns []model.Transaction, k int) []model.Transaction {
	if k <= 0 || len(txns) == 0 {
		return nil
	}
	h := make(txnHeap, len(txns))
	copy(h, txns)
	heap.Init(&h)

	if k > h.Len() {
		k = h.Len()
	}
	out := make([]model.Transaction, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, heap.Pop(&h).(model.Transaction))
	}
	return out
}

type categoryHeap []model.CategoryAmount

func (h categoryHeap) Len() int           { return len(h) }
func (h categoryHeap) Less(i, j int) bool { return h[i].Total.GreaterThan(h[j].Total) }
func (h categoryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *categoryHeap) Push(x any)        { *h = append(*h, x.(model.CategoryAmount)) }
func (h *categoryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// TopCategories ranks categories by running expense total, descending.
// Categories whose total has decayed to zero are excluded. The totals map
// is not modified.
func TopCategories(totals map[string]decimal.Decimal, k int) []model.CategoryAmount {
	if k <= 0 || len(totals) == 0 {
		return nil
	}
	h := make(categoryHeap, 0, len(totals))
	for category, total := range totals {
		if total.IsPositive() {
			h = append(h, model.CategoryAmount{Category: category, Total: total})
		}
	}
	heap.Init(&h)

	if k > h.Len() {
		k = h.Len()
	}
	out := make([]model.CategoryAmount, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, heap.Pop(&h).(model.CategoryAmount))
	}
	return out
}
