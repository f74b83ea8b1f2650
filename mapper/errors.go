package mapper

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnregisteredType is returned when none of a subject's declared
	// types is in the registry.
	ErrUnregisteredType = errors.New("unregistered type")

	// ErrInstantiation is returned when collected field values do not
	// produce a valid instance.
	ErrInstantiation = errors.New("instantiation failed")

	// ErrMissingField is the cause of an instantiation failure when a
	// required field has no value.
	ErrMissingField = errors.New("missing required field")
)

// UnregisteredTypeError names the subject and every type that was tried.
type UnregisteredTypeError struct {
	Subject string
	Types   []string
}

func (e *UnregisteredTypeError) Error() string {
	return fmt.Sprintf("subject %s: %s: none of [%s]", e.Subject, ErrUnregisteredType, strings.Join(e.Types, ", "))
}

func (e *UnregisteredTypeError) Unwrap() error {
	return ErrUnregisteredType
}

// InstantiationError reports why a subject could not be built as Type.
type InstantiationError struct {
	Subject string
	Type    string
	Cause   error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("subject %s: %s as %s: %v", e.Subject, ErrInstantiation, e.Type, e.Cause)
}

func (e *InstantiationError) Unwrap() []error {
	return []error{ErrInstantiation, e.Cause}
}
