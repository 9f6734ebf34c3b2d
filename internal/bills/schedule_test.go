package bills

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinscribe/coinscribe/internal/model"
)

func bill(id, dueDate string) model.Bill {
	return model.Bill{
		ID:       id,
		Name:     "bill " + id,
		Amount:   decimal.NewFromInt(40),
		DueDate:  dueDate,
		Category: "Utilities",
	}
}

func TestSchedule_ArrivalOrderNotDueDate(t *testing.T) {
	s := New()
	s.Enqueue(bill("late-due", "2024-06-01"))
	s.Enqueue(bill("early-due", "2024-01-01"))

	front, ok := s.PeekFront()
	require.True(t, ok)
	assert.Equal(t, "late-due", front.ID, "front is the longest-waiting bill, not the next due")

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "late-due", all[0].ID)
	assert.Equal(t, "early-due", all[1].ID)
}

func TestSchedule_DequeueAndPeek(t *testing.T) {
	s := New()
	_, ok := s.Dequeue()
	assert.False(t, ok)
	_, ok = s.PeekFront()
	assert.False(t, ok)

	s.Enqueue(bill("a", "2024-01-01"))
	s.Enqueue(bill("b", "2024-02-01"))

	got, ok := s.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, 1, s.Len())
}

func TestSchedule_RemoveByIDFromMiddle(t *testing.T) {
	s := New()
	s.Enqueue(bill("a", "2024-01-01"))
	s.Enqueue(bill("b", "2024-02-01"))
	s.Enqueue(bill("c", "2024-03-01"))

	require.True(t, s.RemoveByID("b"))
	assert.False(t, s.RemoveByID("b"))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[1].ID)
}

func TestSchedule_MarkPaidAndUnpaid(t *testing.T) {
	s := New()
	s.Enqueue(bill("a", "2024-01-01"))
	s.Enqueue(bill("b", "2024-02-01"))

	require.True(t, s.MarkPaidByID("a"))
	assert.False(t, s.MarkPaidByID("missing"))

	unpaid := s.Unpaid()
	require.Len(t, unpaid, 1)
	assert.Equal(t, "b", unpaid[0].ID)

	found, ok := s.FindByID("a")
	require.True(t, ok)
	assert.True(t, found.IsPaid)
}

func TestSchedule_OverdueIsStrict(t *testing.T) {
	s := New()
	s.Enqueue(bill("past", "2024-01-01"))
	s.Enqueue(bill("today", "2024-02-01"))
	s.Enqueue(bill("future", "2024-03-01"))

	overdue := s.Overdue("2024-02-01")
	require.Len(t, overdue, 1)
	assert.Equal(t, "past", overdue[0].ID, "a bill due exactly on asOf is not overdue")

	// Paying the overdue bill takes it out of the overdue view.
	require.True(t, s.MarkPaidByID("past"))
	assert.Empty(t, s.Overdue("2024-02-01"))
}

func TestSchedule_Clear(t *testing.T) {
	s := New()
	s.Enqueue(bill("a", "2024-01-01"))
	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
}
