// Package booking implements the seat-selection and booking-confirmation
// engine: per-session seat availability, the in-progress selection, and the
// workflow that turns a selection into a persisted booking.
package booking

import "cinema-booking-cli/model"

// Seat grid geometry. Seat numbers are 1-indexed and are the persisted
// identity of a booked seat: 1..30 fill the left block row-major across five
// columns, 31..60 the right block.
const (
	RowCount    = 6
	SeatsPerRow = 10
	TotalSeats  = RowCount * SeatsPerRow
	BlockSize   = TotalSeats / 2
	BlockCols   = SeatsPerRow / 2
)

// SeatStatus is the availability of one seat for one session.
type SeatStatus int

const (
	SeatAvailable SeatStatus = iota
	SeatTakenByOther
	SeatTakenByMe
)

// DefaultUnavailable stands in for other customers' bookings: the same seats
// are pre-booked for every session. A real inventory service would replace
// this set.
var DefaultUnavailable = []int{3, 7, 12, 22, 30, 34, 41, 45}

// ComputeSeatStatus reports the status of every seat 1..TotalSeats for one
// session, given a snapshot of the user's bookings. Seats held by a booking
// matching the session win over the unavailable set: a seat the user already
// holds is never shown as generically taken. Passing nil for unavailable
// applies DefaultUnavailable.
func ComputeSeatStatus(session model.Session, bookings []model.Booking, unavailable []int) map[int]SeatStatus {
	status := make(map[int]SeatStatus, TotalSeats)
	for n := 1; n <= TotalSeats; n++ {
		status[n] = SeatAvailable
	}

	if unavailable == nil {
		unavailable = DefaultUnavailable
	}
	for _, n := range unavailable {
		if n >= 1 && n <= TotalSeats {
			status[n] = SeatTakenByOther
		}
	}

	for _, b := range bookings {
		if !session.Matches(b) {
			continue
		}
		for _, seat := range b.Seats {
			if seat.Number >= 1 && seat.Number <= TotalSeats {
				status[seat.Number] = SeatTakenByMe
			}
		}
	}
	return status
}

// Position maps a seat number to its grid cell: block 0 is screen-left,
// block 1 screen-right; row and col are 0-indexed within the block.
func Position(n int) (block int, row int, col int) {
	idx := n - 1
	block = idx / BlockSize
	idx %= BlockSize
	return block, idx / BlockCols, idx % BlockCols
}

// SeatAt is the inverse of Position.
func SeatAt(block int, row int, col int) int {
	return block*BlockSize + row*BlockCols + col + 1
}
