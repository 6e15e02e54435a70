package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testClient(server *httptest.Server) *Client {
	c := NewClient(server.Client(), "test-key")
	c.baseURL = server.URL
	c.retryBase = time.Millisecond
	c.retryCap = 5 * time.Millisecond
	return c
}

func TestGetRating(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("apikey = %q", got)
		}
		if got := r.URL.Query().Get("t"); got != "The Glass Harbor" {
			t.Errorf("title = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"imdbRating":"8.3"}`))
	}))
	defer server.Close()

	rating, err := testClient(server).GetRating(context.Background(), "The Glass Harbor")
	if err != nil {
		t.Fatalf("GetRating: %v", err)
	}
	if rating != "8.3" {
		t.Fatalf("rating = %q, want 8.3", rating)
	}
}

func TestGetRatingMissingRating(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Title":"Obscure"}`))
	}))
	defer server.Close()

	rating, err := testClient(server).GetRating(context.Background(), "Obscure")
	if err != nil {
		t.Fatalf("GetRating: %v", err)
	}
	if rating != NotRated {
		t.Fatalf("rating = %q, want %q", rating, NotRated)
	}
}

func TestGetRatingRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"imdbRating":"7.1"}`))
	}))
	defer server.Close()

	rating, err := testClient(server).GetRating(context.Background(), "Red Static")
	if err != nil {
		t.Fatalf("GetRating: %v", err)
	}
	if rating != "7.1" {
		t.Fatalf("rating = %q, want 7.1", rating)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestGetRatingDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := testClient(server).GetRating(context.Background(), "Red Static")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", apiErr.StatusCode)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 attempt, got %d", calls.Load())
	}
}

func TestGetRatingGivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := testClient(server).GetRating(context.Background(), "Night Orchard")
	if err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != defaultMaxAttempts {
		t.Fatalf("expected %d attempts, got %d", defaultMaxAttempts, calls.Load())
	}
}

func TestGetRatingRequiresTitle(t *testing.T) {
	c := NewClient(nil, "test-key")
	if _, err := c.GetRating(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestGetRatingRequiresKey(t *testing.T) {
	c := NewClient(nil, "")
	if c.Enabled() {
		t.Fatal("client without key reports enabled")
	}
	if _, err := c.GetRating(context.Background(), "Anything"); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestRetryDelayBackoffCapped(t *testing.T) {
	c := NewClient(nil, "k")
	c.retryBase = 100 * time.Millisecond
	c.retryCap = 350 * time.Millisecond

	if got := c.retryDelay(1); got != 100*time.Millisecond {
		t.Fatalf("attempt 1 delay = %v", got)
	}
	if got := c.retryDelay(2); got != 200*time.Millisecond {
		t.Fatalf("attempt 2 delay = %v", got)
	}
	if got := c.retryDelay(5); got != 350*time.Millisecond {
		t.Fatalf("attempt 5 delay = %v, want cap", got)
	}
}
