package compiler

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmappableRange is returned when a property range has no type mapping.
	ErrUnmappableRange = errors.New("unmappable range")

	// ErrNameCollision is returned when two generated identifiers clash.
	ErrNameCollision = errors.New("name collision")

	// ErrUnknownType is returned when a listed type has no description in the graph.
	ErrUnknownType = errors.New("unknown type")
)

// RangeError reports the property whose declared range could not be mapped.
type RangeError struct {
	Resource string
	Property string
	Range    string
	Reason   string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s of %s: range %q: %s", e.Property, e.Resource, e.Range, e.Reason)
}

func (e *RangeError) Unwrap() error {
	return ErrUnmappableRange
}
