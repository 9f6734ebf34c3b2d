// Package bills keeps payables in strict arrival order.
package bills

import "github.com/coinscribe/coinscribe/internal/model"

// Schedule is a FIFO of bills ordered by enqueue time, deliberately not by
// due date: the front of the queue is the longest-waiting bill, not the
// next one due.
type Schedule struct {
	queue []model.Bill
}

// New returns an empty schedule.
func New() *Schedule {
	return &Schedule{}
}

// Enqueue appends a bill to the back of the queue.
func (s *Schedule) Enqueue(b model.Bill) {
	s.queue = append(s.queue, b)
}

// Dequeue removes and returns the front bill.
func (s *Schedule) Dequeue() (model.Bill, bool) {
	if len(s.queue) == 0 {
		return model.Bill{}, false
	}
	b := s.queue[0]
	s.queue = s.queue[1:]
	return b, true
}

// PeekFront returns the front bill without removing it.
func (s *Schedule) PeekFront() (model.Bill, bool) {
	if len(s.queue) == 0 {
		return model.Bill{}, false
	}
	return s.queue[0], true
}

// FindByID returns the bill with the given id.
func (s *Schedule) FindByID(id string) (model.Bill, bool) {
	for _, b := range s.queue {
		if b.ID == id {
			return b, true
		}
	}
	return model.Bill{}, false
}

// RemoveByID deletes the bill with the given id, re-linking the queue
// around it. Arrival order of the rest is unchanged.
func (s *Schedule) RemoveByID(id string) bool {
	for i, b := range s.queue {
		if b.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return true
		}
	}
	return false
}

// MarkPaidByID flips the bill to paid, reporting whether it was found.
func (s *Schedule) MarkPaidByID(id string) bool {
	for i := range s.queue {
		if s.queue[i].ID == id {
			s.queue[i].IsPaid = true
			return true
		}
	}
	return false
}

// All returns a copy of the queue in arrival order.
func (s *Schedule) All() []model.Bill {
	out := make([]model.Bill, len(s.queue))
	copy(out, s.queue)
	return out
}

// Unpaid returns the bills not yet paid, in arrival order.
func (s *Schedule) Unpaid() []model.Bill {
	var out []model.Bill
	for _, b := range s.queue {
		if !b.IsPaid {
			out = append(out, b)
		}
	}
	return out
}

// Overdue returns the unpaid bills strictly past asOf. A bill due exactly
// on asOf is not overdue.
func (s *Schedule) Overdue(asOf string) []model.Bill {
	var out []model.Bill
	for _, b := range s.queue {
		if !b.IsPaid && b.DueDate < asOf {
			out = append(out, b)
		}
	}
	return out
}

// Len reports the number of bills in the queue.
func (s *Schedule) Len() int {
	return len(s.queue)
}

// Clear empties the queue.
func (s *Schedule) Clear() {
	s.queue = nil
}
