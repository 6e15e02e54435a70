package tui

import (
	"strings"
	"testing"

	"cinema-booking-cli/booking"
)

func TestMoveCursorWithinBlock(t *testing.T) {
	if got := moveCursor(1, 1, 0); got != 2 {
		t.Fatalf("right from 1 = %d", got)
	}
	if got := moveCursor(1, 0, 1); got != 6 {
		t.Fatalf("down from 1 = %d", got)
	}
}

func TestMoveCursorCrossesAisle(t *testing.T) {
	// Seat 5 is the last column of the left block; one step right lands on
	// the right block's first column of the same row.
	if got := moveCursor(5, 1, 0); got != 31 {
		t.Fatalf("right from 5 = %d, want 31", got)
	}
	if got := moveCursor(31, -1, 0); got != 5 {
		t.Fatalf("left from 31 = %d, want 5", got)
	}
}

func TestMoveCursorClampsAtEdges(t *testing.T) {
	if got := moveCursor(1, -1, 0); got != 1 {
		t.Fatalf("left from 1 = %d", got)
	}
	if got := moveCursor(1, 0, -1); got != 1 {
		t.Fatalf("up from 1 = %d", got)
	}
	if got := moveCursor(35, 1, 0); got != 35 {
		t.Fatalf("right from 35 = %d", got)
	}
	if got := moveCursor(60, 0, 1); got != 60 {
		t.Fatalf("down from 60 = %d", got)
	}
}

func TestMoveCursorOutOfRangeResets(t *testing.T) {
	if got := moveCursor(0, 0, 0); got != 1 {
		t.Fatalf("moveCursor(0) = %d", got)
	}
	if got := moveCursor(99, 1, 0); got != 1 {
		t.Fatalf("moveCursor(99) = %d", got)
	}
}

func TestRenderSeatGrid(t *testing.T) {
	status := map[int]booking.SeatStatus{
		3: booking.SeatTakenByOther,
	}
	out := renderSeatGrid(status, func(n int) bool { return n == 10 }, 1)

	if !strings.Contains(out, "SCREEN") {
		t.Fatal("screen bar missing")
	}
	if !strings.Contains(out, "XX") {
		t.Fatal("taken seat marker missing")
	}
	if lines := strings.Count(out, "\n"); lines < booking.RowCount {
		t.Fatalf("grid has %d lines", lines)
	}
}

func TestRenderSeatGridReadOnly(t *testing.T) {
	out := renderSeatGrid(nil, func(n int) bool { return n == 42 }, 0)
	if !strings.Contains(out, "42") {
		t.Fatal("booked seat number missing from read-only grid")
	}
	if strings.Contains(out, "XX") {
		t.Fatal("read-only grid shows taken markers")
	}
}

func TestFirstAvailableSkipsTaken(t *testing.T) {
	status := map[int]booking.SeatStatus{
		1: booking.SeatTakenByOther,
		2: booking.SeatTakenByMe,
	}
	if got := firstAvailable(status); got != 3 {
		t.Fatalf("firstAvailable = %d", got)
	}

	full := map[int]booking.SeatStatus{}
	for n := 1; n <= booking.TotalSeats; n++ {
		full[n] = booking.SeatTakenByOther
	}
	if got := firstAvailable(full); got != 1 {
		t.Fatalf("firstAvailable on full house = %d", got)
	}
}

func TestSeatNumbersLabel(t *testing.T) {
	if got := seatNumbersLabel(nil); got != "None" {
		t.Fatalf("empty label = %q", got)
	}
	if got := seatNumbersLabel([]int{3, 10}); got != "3, 10" {
		t.Fatalf("label = %q", got)
	}
}
