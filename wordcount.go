package main

import (
	"fmt"
	"strings"
	"time"
)

func isLetterOrDigit(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

// normalizeWord strips non-alphanumeric characters from both edges and
// lowercases the rest. An empty result means the token carried no word.
func normalizeWord(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	left := 0
	right := len(s) - 1
	for left <= right && !isLetterOrDigit(s[left]) {
		left++
	}
	for right >= left && !isLetterOrDigit(s[right]) {
		right--
	}
	if left > right {
		return ""
	}
	return strings.ToLower(s[left : right+1])
}

// countWords tallies normalized words. Tokens that normalize to nothing are
// counted as invalid and skipped.
func countWords(tokens []string) (counts map[string]int, valid, invalid int) {
	counts = make(map[string]int)
	for _, t := range tokens {
		word := normalizeWord(t)
		if word == "" {
			invalid++
			fmt.Println("Invalid token skipped: " + t)
			continue
		}
		valid++
		counts[word]++
	}
	return counts, valid, invalid
}

func buildWordCountReport(inputFile string, counts map[string]int, valid, invalid int, elapsedSeconds float64) []string {
	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	words = selectionSortStrings(words)

	lines := []string{
		"Word Count Results",
		"Input file: " + inputFile,
		"",
		fmt.Sprintf("Valid words: %d", valid),
		fmt.Sprintf("Invalid tokens: %d", invalid),
		fmt.Sprintf("Distinct words: %d", len(words)),
		"",
		fmt.Sprintf("%-25s %10s", "WORD", "COUNT"),
		strings.Repeat("-", 36),
	}
	for _, w := range words {
		lines = append(lines, fmt.Sprintf("%-25s %10d", w, counts[w]))
	}
	lines = append(lines, "", "Elapsed time: "+ftoa(elapsedSeconds)+" seconds")
	return lines
}

// runWordCount is the word frequency pipeline entry point.
func runWordCount(inputFile string, tokens []string, start time.Time) error {
	counts, valid, invalid := countWords(tokens)
	lines := buildWordCountReport(inputFile, counts, valid, invalid, time.Since(start).Seconds())
	return emitReport(buildOutputFilename("WordCountResults", inputFile), lines)
}
