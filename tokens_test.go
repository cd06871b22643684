package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	content := "4 8\t6\n5 3 2\n\n8 9 2 5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tokens, err := readTokens(path)
	if err != nil {
		t.Fatalf("readTokens error: %v", err)
	}
	want := []string{"4", "8", "6", "5", "3", "2", "8", "9", "2", "5"}
	if len(tokens) != len(want) {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("token %d: got %q want %q", i, tokens[i], want[i])
		}
	}
}

func TestReadTokensMissingFile(t *testing.T) {
	if _, err := readTokens(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSplitTokensEmptyInput(t *testing.T) {
	tokens, err := splitTokens(strings.NewReader(""))
	if err != nil {
		t.Fatalf("splitTokens error: %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %v", tokens)
	}
}
