// Package validate holds the field validators and the form state machine
// used by entry and authentication forms. Validators return an empty string
// for valid input and a single human-readable message otherwise; they never
// panic on unexpected types.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinPasswordLength is the default minimum for Password.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator checks a single form value.
type Validator func(value any) string

// Email validates an address of the shape local@domain.tld.
func Email(value any) string {
	s := asString(value)
	if !emailPattern.MatchString(s) {
		return "Please enter a valid email address"
	}
	return ""
}

// Password requires at least MinPasswordLength characters.
func Password(value any) string {
	return PasswordMin(MinPasswordLength)(value)
}

// PasswordMin returns a validator requiring at least min characters.
func PasswordMin(min int) Validator {
	return func(value any) string {
		s := asString(value)
		if len(s) < min {
			return fmt.Sprintf("Password must be at least %d characters", min)
		}
		return ""
	}
}

// Number returns a validator that accepts values parseable as a real
// number greater than or equal to min.
func Number(min float64) Validator {
	return func(value any) string {
		n, ok := AsFloat(value)
		if !ok || n < min {
			return "Please enter a valid number"
		}
		return ""
	}
}

// Required rejects nil and whitespace-only values.
func Required(value any) string {
	if value == nil || strings.TrimSpace(asString(value)) == "" {
		return "This field is required"
	}
	return ""
}

// AsFloat coerces numeric types and numeric strings to float64.
func AsFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
