package coinchange

import (
	"strconv"
	"strings"
	"unicode"

	apperrors "github.com/agbru/coincalc/internal/errors"
)

// Validate checks that amount is non-negative and that coins is a non-empty
// list of positive denominations. Every counter calls it before doing any
// work.
func Validate(amount int, coins []int) error {
	if amount < 0 {
		return apperrors.NewValidationError("amount", "must be a non-negative integer, got %d", amount)
	}
	if len(coins) == 0 {
		return apperrors.NewValidationError("coins", "must be a non-empty list of positive integers")
	}
	for i, c := range coins {
		if c <= 0 {
			return apperrors.NewValidationError("coins", "must contain only positive integers, got %d at position %d", c, i)
		}
	}
	return nil
}

// ParseAmount parses a textual amount. Non-integer text such as "2.5" and
// negative values are rejected with an invalid-argument error.
func ParseAmount(s string) (int, error) {
	s = strings.TrimSpace(s)
	amount, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.NewValidationError("amount", "must be an integer, got %q", s)
	}
	if amount < 0 {
		return 0, apperrors.NewValidationError("amount", "must be a non-negative integer, got %d", amount)
	}
	return amount, nil
}

// ParseDenominations parses a list such as "1,5,7", "1 5 7" or "[1, 5, 7]".
// The list must be non-empty and every value a positive integer.
func ParseDenominations(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, apperrors.NewValidationError("coins", "must be a non-empty list of positive integers")
	}

	coins := make([]int, 0, len(fields))
	for i, f := range fields {
		c, err := strconv.Atoi(f)
		if err != nil {
			return nil, apperrors.NewValidationError("coins", "value %q at position %d is not an integer", f, i)
		}
		if c <= 0 {
			return nil, apperrors.NewValidationError("coins", "must contain only positive integers, got %d at position %d", c, i)
		}
		coins = append(coins, c)
	}
	return coins, nil
}
