package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// buildOutputFilename derives the report file name from the input file:
// <prefix>_<inputBaseName>.txt, always in the current directory.
func buildOutputFilename(prefix, inputFile string) string {
	base := filepath.Base(inputFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return prefix + "_" + base + ".txt"
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func formatModes(modes []float64) string {
	if len(modes) == 0 {
		return "None"
	}
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = strconv.FormatFloat(m, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// buildStatsReport renders a computed Stats into the report lines shared by
// the console and the output file.
func buildStatsReport(inputFile string, st Stats, elapsedSeconds float64) []string {
	return []string{
		"Statistics Results",
		"Input file: " + inputFile,
		"Count: " + strconv.Itoa(st.Count),
		"Invalid: " + strconv.Itoa(st.Invalid),
		"",
		"Mean: " + ftoa(st.Mean),
		"Median: " + ftoa(st.Median),
		"Mode: " + formatModes(st.Modes),
		"Variance: " + ftoa(st.Variance),
		"Std Dev: " + ftoa(st.StdDev),
		"",
		"Elapsed time: " + ftoa(elapsedSeconds) + " seconds",
	}
}

// buildEmptyStatsReport is the terminal "no data" report: no aggregates are
// printed because none exist.
func buildEmptyStatsReport(inputFile string, invalid int, elapsedSeconds float64) []string {
	return []string{
		"Statistics Results",
		"Input file: " + inputFile,
		"",
		"ERROR: No valid numbers found.",
		"Invalid: " + strconv.Itoa(invalid),
		"Elapsed time: " + ftoa(elapsedSeconds) + " seconds",
	}
}

func writeReport(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}

// emitReport prints the report and mirrors it to the output file, announcing
// where it was saved.
func emitReport(outputFile string, lines []string) error {
	fmt.Println(strings.Join(lines, "\n"))
	if err := writeReport(outputFile, lines); err != nil {
		return fmt.Errorf("write report %s: %w", outputFile, err)
	}
	fmt.Printf("\nResults saved to: %s\n", outputFile)
	return nil
}
