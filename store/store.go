// Package store persists the local user's bookings as a single JSON document.
// Every mutation rewrites the whole file; there is no incremental log and no
// cross-process coordination. The store is written from the application's
// interaction sequence only.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cinema-booking-cli/model"
)

const fileVersion = 1

// PersistenceError reports a failed write of the bookings file. The in-memory
// list keeps the mutation; on-disk state stays stale until the next
// successful save.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save bookings to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

type bookingsFile struct {
	Version   int             `json:"version"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Bookings  []model.Booking `json:"bookings"`
}

// Store holds the bookings in confirmation order and mirrors every mutation
// to the file it was opened with.
type Store struct {
	path     string
	bookings []model.Booking
}

// Open loads the bookings file at path. A missing, unreadable or malformed
// file yields an empty store rather than an error; whatever was on disk is
// only replaced on the next successful save.
func Open(path string) *Store {
	return &Store{path: path, bookings: load(path)}
}

func load(path string) []model.Booking {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var file bookingsFile
	if err := json.Unmarshal(data, &file); err == nil && file.Version >= 1 {
		return file.Bookings
	}

	// Files written before the versioned envelope are a bare array.
	var legacy []model.Booking
	if err := json.Unmarshal(data, &legacy); err == nil {
		return legacy
	}
	return nil
}

// Reload re-reads the file, replacing the in-memory list.
func (s *Store) Reload() {
	s.bookings = load(s.path)
}

// Bookings returns a copy of the bookings in confirmation order.
func (s *Store) Bookings() []model.Booking {
	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Len reports the number of bookings.
func (s *Store) Len() int { return len(s.bookings) }

// Find returns the booking with the given id.
func (s *Store) Find(id string) (model.Booking, bool) {
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// Append adds a booking and rewrites the file. On a write failure the booking
// stays in the in-memory list and a *PersistenceError is returned.
func (s *Store) Append(b model.Booking) error {
	s.bookings = append(s.bookings, b)
	return s.save()
}

// Cancel removes the booking with the given id and rewrites the file.
// Cancelling an unknown id is not an error.
func (s *Store) Cancel(id string) error {
	next := make([]model.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.ID != id {
			next = append(next, b)
		}
	}
	s.bookings = next
	return s.save()
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	payload, err := json.MarshalIndent(bookingsFile{
		Version:   fileVersion,
		UpdatedAt: time.Now(),
		Bookings:  s.bookings,
	}, "", "  ")
	if err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	return nil
}
