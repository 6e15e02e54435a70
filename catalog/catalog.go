// Package catalog holds the bundled, read-only movie catalog. It is loaded
// once at startup; the running application never mutates it.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cinema-booking-cli/model"
)

//go:embed movies.json
var bundled []byte

// Load parses the bundled movie catalog. Failure here is a startup error: the
// binary itself is broken.
func Load() ([]model.Movie, error) {
	return Parse(bundled)
}

// Parse decodes a catalog document.
func Parse(data []byte) ([]model.Movie, error) {
	var movies []model.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("parse movie catalog: %w", err)
	}
	if len(movies) == 0 {
		return nil, errors.New("movie catalog is empty")
	}
	return movies, nil
}

// FindByTitle looks a movie up by its title, case-insensitively.
func FindByTitle(movies []model.Movie, title string) (model.Movie, bool) {
	for _, movie := range movies {
		if strings.EqualFold(movie.Title, title) {
			return movie, true
		}
	}
	return model.Movie{}, false
}
