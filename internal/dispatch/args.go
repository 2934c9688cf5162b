package dispatch

import (
	"fmt"
	"math"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// Args is the argument mapping of an operation request. Values arrive as
// JSON types: float64 for all numbers, string, bool.
type Args map[string]any

// Float returns the named argument as a float64, or def when absent.
func (a Args) Float(name string, def float64) (float64, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return def, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, invalidType(name, "number", v)
	}
	return f, nil
}

// Int returns the named argument as an int, or def when absent. A number
// with a fractional part is rejected.
func (a Args) Int(name string, def int) (int, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return def, nil
	}
	return intValue(name, v)
}

// RequiredInt returns the named argument as an int, failing when absent.
func (a Args) RequiredInt(name string) (int, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return 0, errors.New(errors.ErrInvalidArgument,
			fmt.Sprintf("Missing required argument '%s'", name),
			"")
	}
	return intValue(name, v)
}

// String returns the named argument as a string, or def when absent.
func (a Args) String(name, def string) (string, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", invalidType(name, "string", v)
	}
	return s, nil
}

// Bool returns the named argument as a bool, or def when absent.
func (a Args) Bool(name string, def bool) (bool, error) {
	v, ok := a[name]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, invalidType(name, "boolean", v)
	}
	return b, nil
}

func intValue(name string, v any) (int, error) {
	f, ok := toFloat(v)
	if !ok {
		return 0, invalidType(name, "integer", v)
	}
	if f != math.Trunc(f) {
		return 0, errors.New(errors.ErrInvalidArgument,
			fmt.Sprintf("Argument '%s' must be a whole number, got %v", name, v),
			"")
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, errors.New(errors.ErrInvalidArgument,
			fmt.Sprintf("Argument '%s' is out of range: %v", name, v),
			"")
	}
	return int(f), nil
}

// toFloat accepts the numeric types JSON decoding and in-process callers
// actually produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func invalidType(name, want string, got any) error {
	return errors.New(errors.ErrInvalidArgument,
		fmt.Sprintf("Argument '%s' must be a %s, got %T", name, want, got),
		"")
}
