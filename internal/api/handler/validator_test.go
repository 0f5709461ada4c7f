package handler

import (
	"strings"
	"testing"
)

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	year := 1979
	err := NewValidator().Validate(&itemRequest{
		Type:      "movie",
		Year:      &year,
		PosterURL: "/posters/" + strings.Repeat("p", 1024),
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{"title is required", "posterUrl must be at most 1024 characters"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestValidator_Valid(t *testing.T) {
	year := 1999
	rating := 85.0
	req := &itemRequest{Title: "The Matrix", Type: "movie", Year: &year, PosterURL: "/posters/matrix.jpg", Rating: &rating}
	if err := NewValidator().Validate(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidator_Credentials(t *testing.T) {
	err := NewValidator().Validate(&credentialsRequest{Email: "alice", Password: "abc"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "email must be a valid email") || !strings.Contains(msg, "password must be at least 6 characters") {
		t.Fatalf("unexpected message %q", msg)
	}
}
