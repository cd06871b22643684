package main

import "errors"

// errNoValidNumbers marks a computation whose input held no parseable number
// at all. It is a distinct outcome, not a zero-filled Stats: a mean of 0 over
// no data would be a lie in the report.
var errNoValidNumbers = errors.New("no valid numbers found")

type Stats struct {
	Count    int
	Invalid  int
	Mean     float64
	Median   float64
	Modes    []float64
	Variance float64
	StdDev   float64
}

// computeStatistics partitions tokens into numbers and rejects, then derives
// the descriptive aggregates. Invalid tokens are counted and skipped, never
// fatal. When nothing parses it returns errNoValidNumbers.
func computeStatistics(tokens []string) (Stats, error) {
	values := make([]float64, 0, len(tokens))
	invalid := 0
	for _, t := range tokens {
		v, err := parseNumber(t)
		if err != nil {
			invalid++
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return Stats{Invalid: invalid}, errNoValidNumbers
	}

	n := len(values)

	// Mean is accumulated in encounter order; the summation order is part of
	// the defined behavior.
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	sorted := selectionSort(values)
	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2.0
	}

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	return Stats{
		Count:    n,
		Invalid:  invalid,
		Mean:     mean,
		Median:   median,
		Modes:    modalValues(values),
		Variance: variance,
		StdDev:   newtonSqrt(variance),
	}, nil
}

// modalValues returns every value sharing the maximum frequency, in order of
// each value's first occurrence. A data set where nothing repeats has no mode
// and yields an empty slice. Go map iteration is randomized, so the
// first-seen order is tracked explicitly.
func modalValues(values []float64) []float64 {
	counts := make(map[float64]int, len(values))
	firstSeen := make([]float64, 0, len(values))
	for _, v := range values {
		if _, ok := counts[v]; !ok {
			firstSeen = append(firstSeen, v)
		}
		counts[v]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount <= 1 {
		return nil
	}

	modes := make([]float64, 0, len(firstSeen))
	for _, v := range firstSeen {
		if counts[v] == maxCount {
			modes = append(modes, v)
		}
	}
	return modes
}
