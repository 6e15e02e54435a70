// Package tui is the interactive front end: movie browsing, seat selection,
// the simulated checkout, and booking management. All booking state changes
// go through the booking workflow and store; the TUI never mutates them
// directly.
package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinema-booking-cli/booking"
	"cinema-booking-cli/model"
	"cinema-booking-cli/service"
	"cinema-booking-cli/store"
)

type appState int

const (
	stateMovieList appState = iota
	stateMovieDetail
	stateSelectDate
	stateSelectSeats
	statePayment
	stateBookingList
	stateBookingDetail
	stateError
)

type appModel struct {
	movies  []model.Movie
	store   *store.Store
	ratings *service.Client

	state     appState
	lastState appState
	err       error

	width  int
	height int

	movieList   list.Model
	bookingList list.Model
	dateList    list.Model
	timeList    list.Model

	movie model.Movie
	date  time.Time

	liveRatings map[string]string

	workflow   *booking.Workflow
	seatStatus map[int]booking.SeatStatus
	seatCursor int
	confirmed  *model.Booking
	saveWarn   error

	payment paymentModel

	detail           model.Booking
	confirmingCancel bool

	spinner spinner.Model
}

type errMsg struct {
	err error
}

type ratingMsg struct {
	title  string
	rating string
	err    error
}

type paymentResultMsg struct {
	approved bool
}

// New builds the application model over an already loaded catalog and an
// opened booking store.
func New(movies []model.Movie, st *store.Store, ratings *service.Client) tea.Model {
	m := appModel{
		movies:      movies,
		store:       st,
		ratings:     ratings,
		state:       stateMovieList,
		date:        truncateDate(time.Now()),
		liveRatings: map[string]string{},
	}

	m.movieList = newList("Movies")
	m.movieList.SetItems(buildMovieItems(movies))
	m.bookingList = newList("Your Bookings")
	m.dateList = newList("Select Date")
	m.dateList.SetFilteringEnabled(false)
	m.timeList = newList("Showtimes")
	m.timeList.SetFilteringEnabled(false)
	m.timeList.SetItems(buildShowtimeItems())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.state == statePayment {
			return m.updatePayment(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
		// fallthrough to component update

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.payment.processing {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		m.lastState = m.state
		m.state = stateError
		return m, nil

	case ratingMsg:
		// Any failure falls back to the catalog's static rating.
		if msg.err == nil && msg.rating != "" && msg.rating != service.NotRated {
			m.liveRatings[msg.title] = msg.rating
		}
		return m, nil

	case paymentResultMsg:
		return m.finishPayment(msg.approved)
	}

	var cmd tea.Cmd
	switch m.state {
	case stateMovieList:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateMovieDetail:
		m.timeList, cmd = m.timeList.Update(msg)
	case stateSelectDate:
		m.dateList, cmd = m.dateList.Update(msg)
	case stateBookingList:
		m.bookingList, cmd = m.bookingList.Update(msg)
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		next, cmd := m.goBack()
		return next, cmd, true
	case "tab":
		switch m.state {
		case stateMovieList:
			return m.openBookings()
		case stateBookingList:
			m.state = stateMovieList
			return m, nil, true
		}
	case "ctrl+d":
		if m.state == stateMovieDetail {
			m.dateList.SetItems(buildDateItems(time.Now()))
			m.state = stateSelectDate
			return m, nil, true
		}
	}

	if m.state == stateSelectSeats {
		return m.handleSeatKey(msg)
	}

	if m.state == stateBookingDetail {
		switch msg.String() {
		case "x":
			if !m.confirmingCancel {
				m.confirmingCancel = true
				return m, nil, true
			}
			return m.cancelDetailBooking()
		case "n":
			m.confirmingCancel = false
			return m, nil, true
		}
		return m, nil, true
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateMovieList:
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			m.movie = item.movie
			m.state = stateMovieDetail
			return m, m.fetchRatingCmd(m.movie.Title), true

		case stateMovieDetail:
			item, ok := m.timeList.SelectedItem().(showtimeItem)
			if !ok {
				return m, nil, true
			}
			session := model.Session{Movie: m.movie, Date: m.date, Time: item.label}
			m.workflow = booking.NewWorkflow(m.store, session)
			m.seatStatus = m.workflow.SeatStatus()
			m.seatCursor = firstAvailable(m.seatStatus)
			m.confirmed = nil
			m.saveWarn = nil
			m.state = stateSelectSeats
			return m, nil, true

		case stateSelectDate:
			item, ok := m.dateList.SelectedItem().(dateItem)
			if !ok {
				return m, nil, true
			}
			m.date = item.date
			m.state = stateMovieDetail
			return m, nil, true

		case stateBookingList:
			item, ok := m.bookingList.SelectedItem().(bookingItem)
			if !ok {
				return m, nil, true
			}
			m.detail = item.booking
			m.confirmingCancel = false
			m.state = stateBookingDetail
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "left", "h":
		m.seatCursor = moveCursor(m.seatCursor, -1, 0)
	case "right", "l":
		m.seatCursor = moveCursor(m.seatCursor, 1, 0)
	case "up", "k":
		m.seatCursor = moveCursor(m.seatCursor, 0, -1)
	case "down", "j":
		m.seatCursor = moveCursor(m.seatCursor, 0, 1)
	case " ":
		m.workflow.Toggle(m.seatCursor)
		m.confirmed = nil
	case "enter":
		// Payment is unreachable with an empty selection.
		if m.workflow.SelectedCount() == 0 {
			return m, nil, true
		}
		m.payment = newPaymentModel()
		m.state = statePayment
	}
	return m, nil, true
}

func (m appModel) updatePayment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.payment.processing {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateSelectSeats
		return m, nil
	case "tab", "down":
		m.payment.nextField()
		return m, nil
	case "shift+tab", "up":
		m.payment.prevField()
		return m, nil
	case "enter":
		if m.payment.focus < numPaymentFields-1 {
			m.payment.nextField()
			return m, nil
		}
		if !m.payment.valid(time.Now()) {
			m.payment.message = "Please fill in valid card details."
			return m, nil
		}
		m.payment.message = ""
		m.payment.processing = true
		return m, tea.Batch(m.spinner.Tick, processPaymentCmd(paymentApproved(m.payment.cardNumber())))
	}

	var cmd tea.Cmd
	m.payment.inputs[m.payment.focus], cmd = m.payment.inputs[m.payment.focus].Update(msg)
	m.payment.applyFormatting()
	return m, cmd
}

// finishPayment runs once per checkout: confirm is only invoked after the
// simulated gateway approved, with exactly the seats the user was shown.
func (m appModel) finishPayment(approved bool) (tea.Model, tea.Cmd) {
	m.payment.processing = false
	if !approved {
		m.payment.message = "Payment failed. Please check your card details and try again."
		return m, nil
	}

	b, err := m.workflow.Confirm()
	if err != nil {
		var perr *store.PersistenceError
		if errors.As(err, &perr) {
			// The booking exists in memory; warn, but show it as confirmed.
			m.saveWarn = perr
		} else {
			return m, errCmd(err)
		}
	}
	m.confirmed = b
	m.seatStatus = m.workflow.SeatStatus()
	m.state = stateSelectSeats
	return m, nil
}

func (m appModel) openBookings() (tea.Model, tea.Cmd, bool) {
	m.bookingList.SetItems(buildBookingItems(m.store.Bookings()))
	m.state = stateBookingList
	return m, nil, true
}

func (m appModel) cancelDetailBooking() (tea.Model, tea.Cmd, bool) {
	m.confirmingCancel = false
	if err := m.store.Cancel(m.detail.ID); err != nil {
		m.saveWarn = err
	}
	m.bookingList.SetItems(buildBookingItems(m.store.Bookings()))
	// A cancel can free seats on a seat screen still open for the session.
	if m.workflow != nil {
		m.seatStatus = m.workflow.SeatStatus()
	}
	m.state = stateBookingList
	return m, nil, true
}

func (m appModel) goBack() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMovieDetail:
		m.state = stateMovieList
	case stateSelectDate:
		m.state = stateMovieDetail
	case stateSelectSeats:
		m.workflow = nil
		m.confirmed = nil
		m.state = stateMovieDetail
	case statePayment:
		if !m.payment.processing {
			m.state = stateSelectSeats
		}
	case stateBookingList:
		m.state = stateMovieList
	case stateBookingDetail:
		m.confirmingCancel = false
		m.state = stateBookingList
	case stateError:
		m.state = m.lastState
	}
	return m, nil
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	listPtr.SetFilterText(listPtr.FilterValue() + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateMovieList:
		return &m.movieList
	case stateMovieDetail:
		return &m.timeList
	case stateSelectDate:
		return &m.dateList
	case stateBookingList:
		return &m.bookingList
	default:
		return nil
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.bookingList.SetSize(m.width, h)
	m.dateList.SetSize(m.width, h)

	th := 15
	if th > h {
		th = h
	}
	m.timeList.SetSize(m.width, th)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func (m appModel) fetchRatingCmd(title string) tea.Cmd {
	if m.ratings == nil || !m.ratings.Enabled() {
		return nil
	}
	if _, ok := m.liveRatings[title]; ok {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		rating, err := m.ratings.GetRating(ctx, title)
		return ratingMsg{title: title, rating: rating, err: err}
	}
}

func processPaymentCmd(approved bool) tea.Cmd {
	return tea.Tick(paymentProcessingDelay, func(time.Time) tea.Msg {
		return paymentResultMsg{approved: approved}
	})
}

func firstAvailable(status map[int]booking.SeatStatus) int {
	for n := 1; n <= booking.TotalSeats; n++ {
		if status[n] == booking.SeatAvailable {
			return n
		}
	}
	return 1
}

func seatNumbersLabel(numbers []int) string {
	if len(numbers) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, ", ")
}
