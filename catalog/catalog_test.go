package catalog

import "testing"

func TestLoadBundledCatalog(t *testing.T) {
	movies, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(movies) == 0 {
		t.Fatal("bundled catalog is empty")
	}
	for _, movie := range movies {
		if movie.Title == "" {
			t.Fatal("movie without title")
		}
		if movie.Rating <= 0 || movie.Rating > 10 {
			t.Fatalf("%s: rating %v out of range", movie.Title, movie.Rating)
		}
		if movie.Runtime <= 0 {
			t.Fatalf("%s: runtime %d", movie.Title, movie.Runtime)
		}
		if movie.Description == "" {
			t.Fatalf("%s: missing description", movie.Title)
		}
	}
}

func TestParseRejectsInvalidDocument(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatal("expected error for invalid json")
	}
	if _, err := Parse([]byte("[]")); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestFindByTitle(t *testing.T) {
	movies, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	movie, ok := FindByTitle(movies, "the glass harbor")
	if !ok {
		t.Fatal("case-insensitive lookup failed")
	}
	if movie.Title != "The Glass Harbor" {
		t.Fatalf("got %q", movie.Title)
	}

	if _, ok := FindByTitle(movies, "No Such Movie"); ok {
		t.Fatal("lookup of unknown title succeeded")
	}
}
