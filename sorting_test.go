package main

import "testing"

func TestSelectionSortOrdersCopy(t *testing.T) {
	input := []float64{5, 1, 4, 1.5, -2}
	got := selectionSort(input)

	want := []float64{-2, 1, 1.5, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order at %d: got %v want %v", i, got, want)
		}
	}
	if input[0] != 5 || input[4] != -2 {
		t.Fatalf("input slice was mutated: %v", input)
	}
}

func TestSelectionSortIdempotent(t *testing.T) {
	once := selectionSort([]float64{3, 3, 2, 9, -1})
	twice := selectionSort(once)
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("sorting a sorted slice changed it: %v vs %v", once, twice)
		}
	}
}

func TestSelectionSortEmptyAndSingle(t *testing.T) {
	if got := selectionSort(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if got := selectionSort([]float64{7}); len(got) != 1 || got[0] != 7 {
		t.Fatalf("unexpected single-element result: %v", got)
	}
}

func TestSelectionSortStrings(t *testing.T) {
	input := []string{"pear", "apple", "banana", "apple"}
	got := selectionSortStrings(input)
	want := []string{"apple", "apple", "banana", "pear"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: got %v want %v", got, want)
		}
	}
	if input[0] != "pear" {
		t.Fatalf("input slice was mutated: %v", input)
	}
}
