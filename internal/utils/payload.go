package utils

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ErrWrongType is returned when a payload member is present but is not the
// JSON type the analyzer needs.
var ErrWrongType = errors.New("unexpected JSON type")

// Object returns payload[key] as a JSON object. A missing or null member
// yields an empty object.
func Object(payload map[string]any, key string) (map[string]any, error) {
	v, ok := payload[key]
	if !ok || v == nil {
		return map[string]any{}, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected object, got %s: %w", key, TypeName(v), ErrWrongType)
	}
	return obj, nil
}

// Array returns payload[key] as a JSON array. A missing or null member yields
// an empty array.
func Array(payload map[string]any, key string) ([]any, error) {
	v, ok := payload[key]
	if !ok || v == nil {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected array, got %s: %w", key, TypeName(v), ErrWrongType)
	}
	return arr, nil
}

// Objects converts every element of arr to a JSON object.
func Objects(key string, arr []any) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(arr))
	for i, v := range arr {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: expected object, got %s: %w", key, i, TypeName(v), ErrWrongType)
		}
		out = append(out, obj)
	}
	return out, nil
}

// String returns payload[key] if it is a string, otherwise def.
func String(payload map[string]any, key, def string) string {
	if s, ok := payload[key].(string); ok {
		return s
	}
	return def
}

// Number coerces payload[key] to a finite float64. Missing or null members
// return def with ok=true; values that cannot be coerced return def with
// ok=false so the caller can log it.
func Number(payload map[string]any, key string, def float64) (float64, bool) {
	v, present := payload[key]
	if !present || v == nil {
		return def, true
	}
	return ToNumber(v, def)
}

// ToNumber coerces v to a finite float64. Booleans count as 1 and 0, numeric
// strings are parsed.
func ToNumber(v any, def float64) (float64, bool) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def, false
	}
	return f, true
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// TypeName names the JSON type of a decoded value.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, int32:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
