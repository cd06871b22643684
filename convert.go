package main

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var errInvalidInteger = errors.New("invalid integer")

const hexDigits = "0123456789ABCDEF"

// parseInt parses a signed base-10 integer by manual accumulation. Unlike
// parseNumber it accepts no decimal point.
func parseInt(token string) (int64, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return 0, errInvalidInteger
	}

	sign := int64(1)
	i := 0
	if s[0] == '-' {
		sign = -1
		i = 1
	} else if s[0] == '+' {
		i = 1
	}
	if i >= len(s) {
		return 0, errInvalidInteger
	}

	value := int64(0)
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errInvalidInteger
		}
		value = value*10 + int64(s[i]-'0')
	}
	return sign * value, nil
}

// toBinary renders n in base 2 by repeated division.
func toBinary(n int64) string {
	return toBase(n, 2)
}

// toHex renders n in base 16 with uppercase digits.
func toHex(n int64) string {
	return toBase(n, 16)
}

func toBase(n, base int64) string {
	if n == 0 {
		return "0"
	}
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append(digits, hexDigits[n%base])
		n /= base
	}
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}
	return sign + string(digits)
}

// buildConversionReport converts every token and renders the tabular report.
// Invalid tokens become in-place error lines and are tallied, mirroring the
// stats pipeline's skip-and-count policy.
func buildConversionReport(inputFile string, tokens []string) (lines []string, valid, invalid int) {
	lines = []string{
		"Conversion Results",
		"Input file: " + inputFile,
		"",
		fmt.Sprintf("%12s  %32s  %12s", "DECIMAL", "BINARY", "HEXADECIMAL"),
		fmt.Sprintf("%s  %s  %s", strings.Repeat("-", 12), strings.Repeat("-", 32), strings.Repeat("-", 12)),
	}

	for _, t := range tokens {
		n, err := parseInt(t)
		if err != nil {
			invalid++
			msg := "Invalid token skipped: " + t
			fmt.Println(msg)
			lines = append(lines, "ERROR: "+msg)
			continue
		}
		lines = append(lines, fmt.Sprintf("%12d  %32s  %12s", n, toBinary(n), toHex(n)))
		valid++
	}
	return lines, valid, invalid
}

// runConvert is the number conversion pipeline entry point.
func runConvert(inputFile string, tokens []string, start time.Time) error {
	lines, valid, invalid := buildConversionReport(inputFile, tokens)
	lines = append(lines,
		"",
		fmt.Sprintf("Valid items: %d", valid),
		fmt.Sprintf("Invalid items: %d", invalid),
		"Elapsed time: "+ftoa(time.Since(start).Seconds())+" seconds",
	)
	return emitReport(buildOutputFilename("ConversionResults", inputFile), lines)
}
