package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinema-booking-cli/booking"
)

const aisleWidth = 4

var (
	seatStyleAvailable = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	seatStyleSelected  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("4")).Bold(true)
	seatStyleTaken     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	seatStyleMine      = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("8"))
	seatStyleCursor    = lipgloss.NewStyle().Reverse(true).Bold(true)
)

// renderSeatGrid draws the 6x10 auditorium: two blocks of five columns with
// an aisle between them, screen at the top. status may be nil for a read-only
// grid (booking detail). cursor < 1 hides the cursor.
func renderSeatGrid(status map[int]booking.SeatStatus, isSelected func(int) bool, cursor int) string {
	var b strings.Builder

	gridWidth := 2*(booking.BlockCols*3-1) + aisleWidth
	b.WriteString(screenBar(gridWidth))
	b.WriteString("\n\n")

	for row := 0; row < booking.RowCount; row++ {
		for block := 0; block < 2; block++ {
			if block == 1 {
				b.WriteString(strings.Repeat(" ", aisleWidth))
			}
			for col := 0; col < booking.BlockCols; col++ {
				if col > 0 {
					b.WriteString(" ")
				}
				n := booking.SeatAt(block, row, col)
				b.WriteString(renderSeat(n, status, isSelected, cursor))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderSeat(n int, status map[int]booking.SeatStatus, isSelected func(int) bool, cursor int) string {
	text := fmt.Sprintf("%2d", n)
	st := booking.SeatAvailable
	if status != nil {
		st = status[n]
	}

	var rendered string
	switch {
	case isSelected != nil && isSelected(n):
		rendered = seatStyleSelected.Render(text)
	case st == booking.SeatTakenByOther:
		rendered = seatStyleTaken.Render("XX")
	case st == booking.SeatTakenByMe:
		rendered = seatStyleMine.Render(text)
	default:
		rendered = seatStyleAvailable.Render(text)
	}
	if n == cursor {
		rendered = seatStyleCursor.Render(text)
	}
	return rendered
}

func screenBar(width int) string {
	label := "SCREEN"
	if width < len(label)+4 {
		width = len(label) + 4
	}
	pad := width - len(label)
	left := pad / 2
	bar := strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left)
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214")).
		Render(bar)
}

func seatLegend() string {
	return strings.Join([]string{
		seatStyleAvailable.Render("nn") + " available",
		seatStyleSelected.Render("nn") + " selected",
		seatStyleTaken.Render("XX") + " booked",
		seatStyleMine.Render("nn") + " your booking",
	}, "  •  ")
}

// moveCursor shifts the seat cursor by whole cells. Columns run 0..9 across
// both blocks so left/right movement crosses the aisle; movement clamps at
// the grid edges.
func moveCursor(n int, dCol int, dRow int) int {
	if n < 1 || n > booking.TotalSeats {
		return 1
	}
	block, row, col := booking.Position(n)

	row = clamp(row+dRow, 0, booking.RowCount-1)
	abs := clamp(block*booking.BlockCols+col+dCol, 0, booking.SeatsPerRow-1)

	return booking.SeatAt(abs/booking.BlockCols, row, abs%booking.BlockCols)
}

func clamp(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
