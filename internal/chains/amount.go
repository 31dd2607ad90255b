package chains

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseAmount converts a decimal amount string to smallest-unit integer form,
// e.g. ParseAmount("1.5", 6) = 1_500_000.
//
// Only plain decimal numerals are accepted: digits with at most one dot.
// Signs, exponents, whitespace, and empty input are invalid. Amounts are
// unsigned, so a leading minus is invalid input rather than a wrap-around.
// Fractional digits beyond the asset's precision round half-up.
func ParseAmount(text string, decimals int) (*big.Int, error) {
	if decimals < 0 {
		return nil, fmt.Errorf("decimals must be non-negative, got %d", decimals)
	}

	intPart, fracPart, hasDot := strings.Cut(text, ".")
	if hasDot && strings.Contains(fracPart, ".") {
		return nil, fmt.Errorf("invalid decimal amount: %q", text)
	}
	if intPart == "" && fracPart == "" {
		return nil, fmt.Errorf("invalid decimal amount: %q", text)
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return nil, fmt.Errorf("invalid decimal amount: %q", text)
	}

	keep := fracPart
	roundUp := false
	if len(fracPart) > decimals {
		keep = fracPart[:decimals]
		// half-up on the first dropped digit
		roundUp = fracPart[decimals] >= '5'
	}
	if len(keep) < decimals {
		keep += strings.Repeat("0", decimals-len(keep))
	}

	digits := intPart + keep
	if digits == "" {
		digits = "0"
	}

	value, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount: %q", text)
	}
	if roundUp {
		value.Add(value, big.NewInt(1))
	}

	return value, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
