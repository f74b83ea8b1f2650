package ontology

import "errors"

var (
	// ErrNotEnumeration is returned when an enumeration query hits another kind.
	ErrNotEnumeration = errors.New("not an enumeration")
)
