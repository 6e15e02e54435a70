package booking

import "sort"

// Selection is the set of seats the user is choosing before confirming. It
// keeps seats distinct in pick order; gating against unavailable seats is the
// workflow's job, not the selection's.
type Selection struct {
	seats []int
}

// Toggle adds the seat if absent, removes it if present.
func (s *Selection) Toggle(n int) {
	for i, seat := range s.seats {
		if seat == n {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return
		}
	}
	s.seats = append(s.seats, n)
}

// Contains reports whether the seat is currently selected.
func (s *Selection) Contains(n int) bool {
	for _, seat := range s.seats {
		if seat == n {
			return true
		}
	}
	return false
}

// Count reports how many seats are selected.
func (s *Selection) Count() int { return len(s.seats) }

// Seats returns the selected seats sorted ascending.
func (s *Selection) Seats() []int {
	out := make([]int, len(s.seats))
	copy(out, s.seats)
	sort.Ints(out)
	return out
}

// Clear empties the selection, as on confirm or fresh entry to the seat
// screen.
func (s *Selection) Clear() { s.seats = nil }
