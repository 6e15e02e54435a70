package model

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Seat is one booked seat inside a booking. Seat numbers are scoped to a
// session, not globally unique.
type Seat struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	IsBooked bool   `json:"isBooked"`
}

// Booking is a confirmed, persisted reservation of one or more seats for a
// single session. It lives until the user cancels it.
type Booking struct {
	ID          string    `json:"id"`
	Movie       Movie     `json:"movie"`
	Seats       []Seat    `json:"seats"`
	SessionDate time.Time `json:"sessionDate"`
	SessionTime string    `json:"sessionTime"`
}

// SeatNumbers returns the booked seat numbers sorted ascending.
func (b Booking) SeatNumbers() []int {
	numbers := make([]int, 0, len(b.Seats))
	for _, seat := range b.Seats {
		numbers = append(numbers, seat.Number)
	}
	sort.Ints(numbers)
	return numbers
}

// SeatLabel formats the booked seat numbers as "3, 10".
func (b Booking) SeatLabel() string {
	numbers := b.SeatNumbers()
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, ", ")
}

// HasSeat reports whether the booking contains the given seat number.
func (b Booking) HasSeat(number int) bool {
	for _, seat := range b.Seats {
		if seat.Number == number {
			return true
		}
	}
	return false
}
