package model

import "fmt"

// Movie is an immutable catalog entry. Titles are unique within the catalog
// and double as the movie's identity in persisted bookings.
type Movie struct {
	Title       string  `json:"title"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Runtime     int     `json:"runtime"`
}

// RuntimeLabel formats the runtime in minutes as "2h 08m".
func (m Movie) RuntimeLabel() string {
	return fmt.Sprintf("%dh %02dm", m.Runtime/60, m.Runtime%60)
}

// MovieRating is the shape of the external rating service response.
type MovieRating struct {
	ImdbRating string `json:"imdbRating"`
}
