package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ToInt converts various types to int.
// It handles integer types, floats, strings, and byte slices; unparseable input yields 0.
func ToInt(val any) int {
	if b, ok := val.([]byte); ok {
		val = string(b)
	}
	if s, ok := val.(string); ok {
		val = strings.TrimSpace(s)
	}
	return cast.ToInt(val)
}

// ToString converts various types to string.
func ToString(val any) string {
	if val == nil {
		return ""
	}
	return cast.ToString(val)
}

// ToBool converts various types to bool.
// It handles bool, numeric types (non-zero=true), and strings ("1", "true", "on", "yes").
func ToBool(val any) bool {
	b, _ := ToBoolE(val)
	return b
}

// ToBoolE is ToBool with an error for values that are not recognisable booleans.
func ToBoolE(val any) (bool, error) {
	if b, ok := val.([]byte); ok {
		val = string(b)
	}
	if s, ok := val.(string); ok {
		s = strings.ToLower(strings.TrimSpace(s))
		switch s {
		case "on", "yes", "y":
			return true, nil
		case "off", "no", "n", "":
			return false, nil
		}
		val = s
	}
	return cast.ToBoolE(val)
}

// ToFloatE converts various types to float64, returning an error when the value
// cannot be represented as a finite number. Booleans are not numbers.
func ToFloatE(val any) (float64, error) {
	switch v := val.(type) {
	case bool:
		return 0, fmt.Errorf("unable to cast %v of type bool to float64", v)
	case []byte:
		val = string(v)
	}
	if s, ok := val.(string); ok {
		val = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(val)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not a finite number", val)
	}
	return f, nil
}
