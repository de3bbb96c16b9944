package domain

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for amounts outside the fixed-point grammar.
var ErrInvalidAmount = errors.New("invalid amount")

var (
	amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	rawPattern    = regexp.MustCompile(`^\d+$`)
)

// ValidateAmount checks a human-entered amount: digits, optionally a dot and one or two digits.
func ValidateAmount(human string) error {
	if human == "" {
		return fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}
	if !amountPattern.MatchString(human) {
		return fmt.Errorf("%w: %q is not a number with at most 2 decimals", ErrInvalidAmount, human)
	}
	return nil
}

// ToRawUnits scales a human amount up to base units, truncating toward zero.
//
//	ToRawUnits("1000", 6)  == "1000000000"
//	ToRawUnits("1.25", 1)  == "12"
func ToRawUnits(human string, decimals int) (string, error) {
	if err := ValidateAmount(human); err != nil {
		return "", err
	}
	if decimals < 0 {
		return "", fmt.Errorf("%w: negative decimals %d", ErrInvalidAmount, decimals)
	}
	d, err := decimal.NewFromString(human)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return d.Shift(int32(decimals)).Truncate(0).String(), nil
}

// ToHumanUnits scales base units down for display. Never feed the result back into a transaction.
func ToHumanUnits(raw string, decimals int) (float64, error) {
	d, err := parseRaw(raw, decimals)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// FormatHuman renders base units as an exact decimal string, or the raw input when it cannot be parsed.
func FormatHuman(raw string, decimals int) string {
	d, err := parseRaw(raw, decimals)
	if err != nil {
		return raw
	}
	return d.String()
}

func parseRaw(raw string, decimals int) (decimal.Decimal, error) {
	if !rawPattern.MatchString(raw) {
		return decimal.Zero, fmt.Errorf("%w: %q is not a base-unit integer", ErrInvalidAmount, raw)
	}
	if decimals < 0 {
		return decimal.Zero, fmt.Errorf("%w: negative decimals %d", ErrInvalidAmount, decimals)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return d.Shift(-int32(decimals)), nil
}
