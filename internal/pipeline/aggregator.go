package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidNumericFormat is the only input failure: a value written in
// exponential notation.
var ErrInvalidNumericFormat = errors.New("invalid numeric format")

// InvalidInputError names the exact text that tripped the validator.
type InvalidInputError struct {
	Match string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("Invalid Input: %s", e.Match)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidNumericFormat
}

// Sum sanitizes, validates and adds values in order. It stops at the first
// invalid value and returns an *InvalidInputError for it.
func Sum(values []string) (float64, error) {
	var total float64
	for _, raw := range values {
		clean := Sanitize(raw)
		if IsInvalid(clean) {
			return 0, &InvalidInputError{Match: FindExponent(clean)}
		}
		total += ParseNumber(clean)
	}
	return total, nil
}
