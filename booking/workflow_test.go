package booking

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"cinema-booking-cli/store"
)

func testWorkflow(t *testing.T) *Workflow {
	t.Helper()
	st := store.Open(filepath.Join(t.TempDir(), "bookings.json"))
	return NewWorkflow(st, testSession())
}

func TestWorkflowToggleTakenSeatIsNoop(t *testing.T) {
	w := testWorkflow(t)

	w.Toggle(3) // demo pre-booked seat
	assert.Equal(t, 0, w.SelectedCount())

	w.Toggle(0)
	w.Toggle(61)
	assert.Equal(t, 0, w.SelectedCount())
}

func TestWorkflowToggleAndTotal(t *testing.T) {
	w := testWorkflow(t)

	w.Toggle(10)
	w.Toggle(2)
	assert.Equal(t, []int{2, 10}, w.Selected())
	assert.True(t, w.IsSelected(10))
	assert.Equal(t, 2*TicketPrice, w.Total())

	w.Toggle(10)
	assert.Equal(t, []int{2}, w.Selected())
	assert.Equal(t, TicketPrice, w.Total())
}

func TestWorkflowConfirmEmptySelection(t *testing.T) {
	w := testWorkflow(t)

	b, err := w.Confirm()

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrNoSeatsSelected)
	assert.Equal(t, 0, w.store.Len())
}

func TestWorkflowConfirm(t *testing.T) {
	w := testWorkflow(t)
	w.Toggle(10)
	w.Toggle(2)

	b, err := w.Confirm()

	assert.NoError(t, err)
	if assert.NotNil(t, b) {
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, []int{2, 10}, b.SeatNumbers())
		assert.Equal(t, testSession().Time, b.SessionTime)
		for _, seat := range b.Seats {
			assert.NotEmpty(t, seat.ID)
			assert.True(t, seat.IsBooked)
		}
	}

	assert.Equal(t, 0, w.SelectedCount(), "selection clears on confirm")
	assert.Equal(t, 1, w.store.Len())

	status := w.SeatStatus()
	assert.Equal(t, SeatTakenByMe, status[2])
	assert.Equal(t, SeatTakenByMe, status[10])
}

func TestWorkflowConfirmedSeatsBlockReselection(t *testing.T) {
	w := testWorkflow(t)
	w.Toggle(5)
	_, err := w.Confirm()
	assert.NoError(t, err)

	w.Toggle(5)
	assert.Equal(t, 0, w.SelectedCount())
}

func TestWorkflowConfirmSurfacesPersistenceError(t *testing.T) {
	// The store path is a directory, so every save fails.
	st := store.Open(t.TempDir())
	w := NewWorkflow(st, testSession())
	w.Toggle(4)

	b, err := w.Confirm()

	var perr *store.PersistenceError
	assert.True(t, errors.As(err, &perr))
	if assert.NotNil(t, b) {
		assert.Equal(t, []int{4}, b.SeatNumbers())
	}
	assert.Equal(t, 1, st.Len(), "booking stays in memory")
}

func TestWorkflowSetUnavailable(t *testing.T) {
	w := testWorkflow(t)
	w.SetUnavailable([]int{1})

	status := w.SeatStatus()
	assert.Equal(t, SeatTakenByOther, status[1])
	assert.Equal(t, SeatAvailable, status[3])

	w.Toggle(1)
	assert.Equal(t, 0, w.SelectedCount())
	w.Toggle(3)
	assert.Equal(t, 1, w.SelectedCount())
}
