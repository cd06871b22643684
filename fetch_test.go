package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "4 8\n6 5\n")
	}))
	defer srv.Close()

	tokens, err := fetchTokens(srv.URL)
	if err != nil {
		t.Fatalf("fetchTokens error: %v", err)
	}
	want := []string{"4", "8", "6", "5"}
	if len(tokens) != len(want) {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("token %d: got %q want %q", i, tokens[i], want[i])
		}
	}
}

func TestFetchTokensErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := fetchTokens(srv.URL); err == nil {
		t.Fatalf("expected error for 404 response")
	}
}
