package main

// selectionSort returns an ascending copy of values. The input slice is never
// mutated; callers rely on keeping the original encounter order.
func selectionSort(values []float64) []float64 {
	sorted := append([]float64(nil), values...)
	n := len(sorted)
	for i := 0; i < n; i++ {
		minIndex := i
		for j := i + 1; j < n; j++ {
			if sorted[j] < sorted[minIndex] {
				minIndex = j
			}
		}
		sorted[i], sorted[minIndex] = sorted[minIndex], sorted[i]
	}
	return sorted
}

// selectionSortStrings is the string counterpart, used to order the word
// count report.
func selectionSortStrings(values []string) []string {
	sorted := append([]string(nil), values...)
	n := len(sorted)
	for i := 0; i < n; i++ {
		minIndex := i
		for j := i + 1; j < n; j++ {
			if sorted[j] < sorted[minIndex] {
				minIndex = j
			}
		}
		sorted[i], sorted[minIndex] = sorted[minIndex], sorted[i]
	}
	return sorted
}
