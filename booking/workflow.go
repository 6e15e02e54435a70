package booking

import (
	"errors"

	"github.com/google/uuid"

	"cinema-booking-cli/model"
	"cinema-booking-cli/store"
)

// TicketPrice is the flat per-seat price in dollars.
const TicketPrice = 12

// ErrNoSeatsSelected is returned by Confirm when the selection is empty. The
// UI keeps the confirm action disabled in that state, so reaching it is a
// caller bug rather than a user-facing condition.
var ErrNoSeatsSelected = errors.New("no seats selected")

// Workflow drives one seat-selection session. It owns the selection, answers
// per-seat status against the booking store, and commits confirmed bookings.
// A workflow lives as long as the seat screen that opened it.
type Workflow struct {
	store       *store.Store
	session     model.Session
	selection   Selection
	unavailable []int
}

// NewWorkflow opens a workflow for the given session with an empty selection.
func NewWorkflow(st *store.Store, session model.Session) *Workflow {
	return &Workflow{store: st, session: session}
}

// SetUnavailable overrides the demo pre-booked seat set.
func (w *Workflow) SetUnavailable(seats []int) { w.unavailable = seats }

// Session returns the session this workflow books for.
func (w *Workflow) Session() model.Session { return w.session }

// SeatStatus recomputes the seat map from the current store contents. It must
// be consulted again after every confirm or cancel.
func (w *Workflow) SeatStatus() map[int]SeatStatus {
	return ComputeSeatStatus(w.session, w.store.Bookings(), w.unavailable)
}

// Toggle flips the selection state of a seat. Toggling a seat that is taken,
// or a number outside the grid, is a no-op.
func (w *Workflow) Toggle(n int) {
	if n < 1 || n > TotalSeats {
		return
	}
	if w.SeatStatus()[n] != SeatAvailable {
		return
	}
	w.selection.Toggle(n)
}

// Selected returns the selected seat numbers sorted ascending.
func (w *Workflow) Selected() []int { return w.selection.Seats() }

// IsSelected reports whether the seat is part of the current selection.
func (w *Workflow) IsSelected(n int) bool { return w.selection.Contains(n) }

// SelectedCount reports how many seats are selected.
func (w *Workflow) SelectedCount() int { return w.selection.Count() }

// Total is the price of the current selection in dollars.
func (w *Workflow) Total() int { return w.selection.Count() * TicketPrice }

// ClearSelection resets the selection without touching the store.
func (w *Workflow) ClearSelection() { w.selection.Clear() }

// Confirm commits the current selection as a booking: seats sorted ascending,
// a fresh id, appended to the store, selection cleared. With nothing selected
// it returns ErrNoSeatsSelected and performs no mutation. If persisting
// fails, the booking is still returned, since it is part of the in-memory
// list, along with the *store.PersistenceError for the caller to surface.
func (w *Workflow) Confirm() (*model.Booking, error) {
	numbers := w.selection.Seats()
	if len(numbers) == 0 {
		return nil, ErrNoSeatsSelected
	}

	seats := make([]model.Seat, 0, len(numbers))
	for _, n := range numbers {
		seats = append(seats, model.Seat{ID: uuid.NewString(), Number: n, IsBooked: true})
	}
	b := model.Booking{
		ID:          uuid.NewString(),
		Movie:       w.session.Movie,
		Seats:       seats,
		SessionDate: w.session.Date,
		SessionTime: w.session.Time,
	}

	err := w.store.Append(b)
	w.selection.Clear()
	return &b, err
}
