package schema

import (
	"errors"
	"fmt"
)

// ErrShape is returned when a value cannot be stored in a field.
var ErrShape = errors.New("value does not fit field")

// convert adapts v to T. Plain strings become Text, integers widen to
// float64, and subtype objects are narrowed to the embedded supertype value.
func convert[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	switch p := any(&zero).(type) {
	case *Text:
		if s, ok := v.(string); ok {
			*p = Text{Value: s}
			return zero, nil
		}
	case *float64:
		if n, ok := v.(int64); ok {
			*p = float64(n)
			return zero, nil
		}
	case *string:
		if t, ok := v.(Text); ok {
			*p = t.Value
			return zero, nil
		}
	}
	for d, ok := v.(Derived); ok; d, ok = d.Base().(Derived) {
		if t, ok := d.Base().(T); ok {
			return t, nil
		}
	}
	return zero, fmt.Errorf("%w: cannot use %T as %T", ErrShape, v, zero)
}

// Assign stores v into a single-valued field.
func Assign[T any](dst *T, v any) error {
	t, err := convert[T](v)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

// AssignPtr stores v into an optional single-valued field.
func AssignPtr[T any](dst **T, v any) error {
	t, err := convert[T](v)
	if err != nil {
		return err
	}
	*dst = &t
	return nil
}

// Append adds v to a list field.
func Append[T any](dst *[]T, v any) error {
	t, err := convert[T](v)
	if err != nil {
		return err
	}
	*dst = append(*dst, t)
	return nil
}

func convertEnum[T ~string](v any) (T, error) {
	switch s := v.(type) {
	case T:
		return s, nil
	case string:
		return T(s), nil
	case fmt.Stringer:
		return T(s.String()), nil
	}
	var zero T
	return zero, fmt.Errorf("%w: cannot use %T as %T", ErrShape, v, zero)
}

// AssignEnum stores an enumeration member or raw string into a field.
func AssignEnum[T ~string](dst *T, v any) error {
	t, err := convertEnum[T](v)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

// AssignEnumPtr stores an enumeration member into an optional field.
func AssignEnumPtr[T ~string](dst **T, v any) error {
	t, err := convertEnum[T](v)
	if err != nil {
		return err
	}
	*dst = &t
	return nil
}

// AppendEnum adds an enumeration member to a list field.
func AppendEnum[T ~string](dst *[]T, v any) error {
	t, err := convertEnum[T](v)
	if err != nil {
		return err
	}
	*dst = append(*dst, t)
	return nil
}

// One returns a required single value.
func One[T any](v T) []any {
	return []any{v}
}

// Value returns the pointed-to value of an optional field.
func Value[T any](p *T) []any {
	if p == nil {
		return nil
	}
	return []any{*p}
}

// Ref returns an object reference field.
func Ref[T any](p *T) []any {
	if p == nil {
		return nil
	}
	return []any{p}
}

// Iface returns an interface-typed field.
func Iface[T any](v T) []any {
	if any(v) == nil {
		return nil
	}
	return []any{v}
}

// Values returns the elements of a list field.
func Values[T any](s []T) []any {
	if len(s) == 0 {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
