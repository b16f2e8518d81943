package validation

import (
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// maxExactFloat is the largest magnitude at which every whole float64 is exact.
const maxExactFloat = 1 << 53

// Field checks value against a validator tag and reports message on failure.
func Field(value any, tag, message string) error {
	if err := validate.Var(value, tag); err != nil {
		return Invalid("%s", message)
	}
	return nil
}

// Integer converts a decoded JSON value to an int. It reports false for anything
// that is not a whole number.
func Integer(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) || v > maxExactFloat || v < -maxExactFloat {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// PositiveInteger reports whether value is a whole number greater than zero.
func PositiveInteger(value any) (int, bool) {
	n, ok := Integer(value)
	if !ok || validate.Var(n, "gt=0") != nil {
		return 0, false
	}
	return n, true
}
