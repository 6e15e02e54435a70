package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

func (m appModel) View() string {
	header := m.headerView()

	var body string
	switch m.state {
	case stateMovieList:
		body = m.movieList.View()
	case stateMovieDetail:
		body = m.movieDetailView()
	case stateSelectDate:
		body = m.dateList.View()
	case stateSelectSeats:
		body = m.seatView()
	case statePayment:
		body = m.paymentView()
	case stateBookingList:
		body = m.bookingListView()
	case stateBookingDetail:
		body = m.bookingDetailView()
	case stateError:
		body = m.errorView()
	}
	return header + "\n\n" + body
}

func (m appModel) headerView() string {
	title := titleStyle.Render("Cinema Booking")

	var sub []string
	switch m.state {
	case stateMovieDetail, stateSelectDate, stateSelectSeats, statePayment:
		sub = append(sub, m.movie.Title)
		sub = append(sub, m.date.Format("Mon 02 Jan"))
	}
	if m.workflow != nil && (m.state == stateSelectSeats || m.state == statePayment) {
		sub = append(sub, m.workflow.Session().Time)
	}

	line := title
	if len(sub) > 0 {
		line += "\n" + hint(strings.Join(sub, " • "))
	}
	return line + "\n" + hint(m.keyHints())
}

func (m appModel) keyHints() string {
	switch m.state {
	case stateMovieList:
		return "type to filter • enter details • tab bookings • ctrl+c quit"
	case stateMovieDetail:
		return "enter pick showtime • ctrl+d change date • esc back"
	case stateSelectDate:
		return "enter select date • esc back"
	case stateSelectSeats:
		return "arrows move • space toggle seat • enter pay • esc back"
	case statePayment:
		return "tab next field • enter confirm • esc back"
	case stateBookingList:
		return "type to filter • enter details • tab movies • esc back"
	case stateBookingDetail:
		return "x cancel booking • esc back"
	default:
		return "esc back • ctrl+c quit"
	}
}

func (m appModel) movieDetailView() string {
	rating := fmt.Sprintf("%.1f/10", m.movie.Rating)
	if live, ok := m.liveRatings[m.movie.Title]; ok {
		rating = fmt.Sprintf("%s/10 (IMDb)", live)
	}
	info := hint(fmt.Sprintf("%s • %s", rating, m.movie.RuntimeLabel()))

	width := m.width - 4
	if width < 20 || width > 76 {
		width = 76
	}
	desc := lipgloss.NewStyle().Width(width).Render(m.movie.Description)

	return strings.Join([]string{
		titleStyle.Render(m.movie.Title),
		info,
		"",
		desc,
		"",
		m.timeList.View(),
	}, "\n")
}

func (m appModel) seatView() string {
	if m.workflow == nil {
		return ""
	}
	grid := renderSeatGrid(m.seatStatus, m.workflow.IsSelected, m.seatCursor)

	summary := fmt.Sprintf("Selected Seats: %s", seatNumbersLabel(m.workflow.Selected()))
	if m.workflow.SelectedCount() > 0 {
		summary += fmt.Sprintf(" • Total %s", formatPrice(m.workflow.Total()))
	}

	lines := []string{grid, seatLegend(), "", summary}
	if m.confirmed != nil {
		lines = append(lines, "", confirmStyle.Render(fmt.Sprintf(
			"Booking confirmed: %s at %s on %s, seats %s.",
			m.confirmed.Movie.Title,
			m.confirmed.SessionTime,
			m.confirmed.SessionDate.Format("Jan 2, 2006"),
			m.confirmed.SeatLabel(),
		)))
	}
	if m.saveWarn != nil {
		lines = append(lines, "", warnStyle.Render(
			fmt.Sprintf("Warning: booking kept in memory only: %v", m.saveWarn)))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) paymentView() string {
	now := time.Now()
	session := m.workflow.Session()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Booking Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s • %s • %s\n", session.Movie.Title,
		session.Date.Format("Jan 2, 2006"), session.Time))
	b.WriteString(fmt.Sprintf("Seats: %s\n", seatNumbersLabel(m.workflow.Selected())))
	b.WriteString(fmt.Sprintf("Total: %s\n\n", formatPrice(m.workflow.Total())))

	b.WriteString(titleStyle.Render("Card Details"))
	b.WriteString("\n")
	labels := [numPaymentFields]string{"Card Number", "Cardholder Name", "Expiry Date", "CVV"}
	for field, label := range labels {
		b.WriteString(hint(label) + "\n")
		b.WriteString(m.payment.inputs[field].View() + "\n")
		if text := m.payment.fieldError(field, now); text != "" {
			b.WriteString(errStyle.Render(text) + "\n")
		}
	}

	if m.payment.message != "" {
		b.WriteString("\n" + errStyle.Render(m.payment.message) + "\n")
	}
	if m.payment.processing {
		b.WriteString(fmt.Sprintf("\n%s Processing Payment...\n", m.spinner.View()))
	} else {
		b.WriteString(fmt.Sprintf("\nPay %s\n", formatPrice(m.workflow.Total())))
	}
	return b.String()
}

func (m appModel) bookingListView() string {
	if m.store.Len() == 0 {
		return "You have no bookings yet.\n\n" + hint("Press tab to browse movies.")
	}
	return m.bookingList.View()
}

func (m appModel) bookingDetailView() string {
	b := m.detail

	lines := []string{
		titleStyle.Render(b.Movie.Title),
		hint(fmt.Sprintf("%s • %s", b.SessionDate.Format("Jan 2, 2006"), b.SessionTime)),
		fmt.Sprintf("Your Seats: %s", b.SeatLabel()),
		"",
		renderSeatGrid(nil, b.HasSeat, 0),
	}
	if m.confirmingCancel {
		lines = append(lines, warnStyle.Render(
			"Cancel this booking? Press x again to confirm, n to keep it."))
	}
	if m.saveWarn != nil {
		lines = append(lines, warnStyle.Render(
			fmt.Sprintf("Warning: %v", m.saveWarn)))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) errorView() string {
	text := "something went wrong"
	if m.err != nil {
		text = m.err.Error()
	}
	return errStyle.Render(text) + "\n\n" + hint("Press esc to go back.")
}
