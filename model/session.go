package model

import "time"

// Session identifies one showing. It is never persisted on its own; a session
// is keyed loosely by movie title, calendar day and time label. Exact
// timestamps and theater rooms are deliberately not part of the identity,
// matching how bookings have always been stored.
type Session struct {
	Movie Movie
	Date  time.Time
	Time  string
}

// Matches reports whether a booking belongs to this session.
func (s Session) Matches(b Booking) bool {
	return b.Movie.Title == s.Movie.Title &&
		b.SessionTime == s.Time &&
		SameDay(b.SessionDate, s.Date)
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a time.Time, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
