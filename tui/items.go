package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"cinema-booking-cli/model"
)

// Showtimes offered for every movie. The time label is part of the session
// identity persisted with each booking, so these strings must stay stable.
var showtimes = []string{
	"12:30 PM",
	"3:00 PM",
	"6:15 PM",
	"9:30 PM",
}

type movieItem struct {
	movie model.Movie
}

func (i movieItem) Title() string {
	return i.movie.Title
}

func (i movieItem) Description() string {
	return fmt.Sprintf("%.1f/10 • %s", i.movie.Rating, i.movie.RuntimeLabel())
}

func (i movieItem) FilterValue() string {
	return strings.ToLower(i.movie.Title)
}

func buildMovieItems(movies []model.Movie) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

type showtimeItem struct {
	label string
}

func (i showtimeItem) Title() string       { return i.label }
func (i showtimeItem) Description() string { return "" }
func (i showtimeItem) FilterValue() string { return strings.ToLower(i.label) }

func buildShowtimeItems() []list.Item {
	items := make([]list.Item, 0, len(showtimes))
	for _, label := range showtimes {
		items = append(items, showtimeItem{label: label})
	}
	return items
}

type dateItem struct {
	date time.Time
}

func (d dateItem) Title() string {
	if model.SameDay(d.date, time.Now()) {
		return fmt.Sprintf("%s • %s (Today)", d.date.Format("Mon"), d.date.Format("02/01"))
	}
	return fmt.Sprintf("%s • %s", d.date.Format("Mon"), d.date.Format("02/01"))
}

func (d dateItem) Description() string {
	return d.date.Format(time.DateOnly)
}

func (d dateItem) FilterValue() string {
	return d.Title()
}

func buildDateItems(base time.Time) []list.Item {
	start := truncateDate(base)
	items := make([]list.Item, 0, 7)
	for i := 0; i < 7; i++ {
		items = append(items, dateItem{date: start.AddDate(0, 0, i)})
	}
	return items
}

type bookingItem struct {
	booking model.Booking
}

func (i bookingItem) Title() string {
	return i.booking.Movie.Title
}

func (i bookingItem) Description() string {
	return fmt.Sprintf("%s • %s • Seats %s",
		i.booking.SessionDate.Format("Mon 02 Jan"),
		i.booking.SessionTime,
		i.booking.SeatLabel(),
	)
}

func (i bookingItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{
		i.booking.Movie.Title,
		i.booking.SessionTime,
		i.booking.SessionDate.Format(time.DateOnly),
	}, " "))
}

func buildBookingItems(bookings []model.Booking) []list.Item {
	items := make([]list.Item, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, bookingItem{booking: b})
	}
	return items
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
