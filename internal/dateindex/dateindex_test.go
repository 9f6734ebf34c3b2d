package dateindex

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinscribe/coinscribe/internal/model"
)

func txn(id, date string) model.Transaction {
	return model.Transaction{
		ID:       id,
		Kind:     model.KindExpense,
		Amount:   decimal.NewFromInt(10),
		Category: "Food",
		Date:     date,
	}
}

func ids(txns []model.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, t := range txns {
		out = append(out, t.ID)
	}
	return out
}

func TestIndex_AscendingAndDescending(t *testing.T) {
	ix := New()
	ix.Insert(txn("mid", "2024-01-15"))
	ix.Insert(txn("late", "2024-01-25"))
	ix.Insert(txn("early", "2024-01-05"))

	assert.Equal(t, []string{"early", "mid", "late"}, ids(ix.Ascending()))
	assert.Equal(t, []string{"late", "mid", "early"}, ids(ix.Descending()))
	assert.Equal(t, 3, ix.Len())
}

func TestIndex_SameDateKeepsInsertionOrder(t *testing.T) {
	ix := New()
	ix.Insert(txn("first", "2024-03-10"))
	ix.Insert(txn("second", "2024-03-10"))
	ix.Insert(txn("third", "2024-03-10"))

	assert.Equal(t, []string{"first", "second", "third"}, ids(ix.Ascending()))
	// Descending visits buckets newest date first but keeps insertion
	// order within a date.
	assert.Equal(t, []string{"first", "second", "third"}, ids(ix.Descending()))
}

func TestIndex_RangeIsInclusive(t *testing.T) {
	ix := New()
	ix.Insert(txn("a", "2024-01-05"))
	ix.Insert(txn("b", "2024-01-10"))
	ix.Insert(txn("c", "2024-01-15"))
	ix.Insert(txn("d", "2024-01-20"))
	ix.Insert(txn("e", "2024-01-25"))

	assert.Equal(t, []string{"b", "c", "d"}, ids(ix.Range("2024-01-10", "2024-01-20")))
	assert.Equal(t, []string{"c"}, ids(ix.Range("2024-01-11", "2024-01-19")))
	assert.Empty(t, ix.Range("2024-02-01", "2024-02-28"))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(ix.Range("2023-01-01", "2025-01-01")))
}

func TestIndex_MonthHandlesShortMonths(t *testing.T) {
	ix := New()
	ix.Insert(txn("jan31", "2024-01-31"))
	ix.Insert(txn("feb1", "2024-02-01"))
	ix.Insert(txn("feb29", "2024-02-29"))
	ix.Insert(txn("mar1", "2024-03-01"))

	// February has no day 30 or 31, but the textual -31 bound is harmless
	// because no transaction can be dated past the month's last day.
	assert.Equal(t, []string{"feb1", "feb29"}, ids(ix.Month("2024-02")))
	assert.Equal(t, []string{"jan31"}, ids(ix.Month("2024-01")))
}

func TestIndex_DeleteByID(t *testing.T) {
	ix := New()
	ix.Insert(txn("a", "2024-01-05"))
	ix.Insert(txn("b", "2024-01-05"))
	ix.Insert(txn("c", "2024-01-10"))

	require.True(t, ix.DeleteByID("a"))
	assert.Equal(t, []string{"b", "c"}, ids(ix.Ascending()))
	assert.Equal(t, 2, ix.Len())

	// Removing the last transaction of a date drops its bucket entirely.
	require.True(t, ix.DeleteByID("c"))
	assert.Equal(t, []string{"b"}, ids(ix.Ascending()))
	assert.Empty(t, ix.Range("2024-01-10", "2024-01-10"))

	assert.False(t, ix.DeleteByID("missing"))
}

func TestIndex_Clear(t *testing.T) {
	ix := New()
	ix.Insert(txn("a", "2024-01-05"))
	ix.Clear()

	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.Ascending())
}
