package main

import (
	"errors"
	"strings"
)

var errInvalidNumber = errors.New("invalid number")

// parseNumber converts a token to a float64 by digit-by-digit accumulation,
// without strconv. Accepted form: optional leading sign, decimal digits, at
// most one decimal point. Anything else (including scientific notation and
// thousands separators) is rejected.
func parseNumber(token string) (float64, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return 0, errInvalidNumber
	}

	sign := 1.0
	i := 0
	if s[0] == '-' {
		sign = -1.0
		i = 1
	} else if s[0] == '+' {
		i = 1
	}

	intPart := 0.0
	hasDigit := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		hasDigit = true
		intPart = intPart*10 + float64(s[i]-'0')
		i++
	}

	fracPart := 0.0
	fracDiv := 1.0
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			hasDigit = true
			fracPart = fracPart*10 + float64(s[i]-'0')
			fracDiv *= 10
			i++
		}
	}

	// The whole token must be consumed; a trailing second dot, stray sign or
	// letter means the token is not a plain decimal number.
	if !hasDigit || i != len(s) {
		return 0, errInvalidNumber
	}

	return sign * (intPart + fracPart/fracDiv), nil
}
