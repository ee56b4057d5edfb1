package tlrt

import (
	"errors"
	"fmt"
)

var (
	// ErrMissing is returned for a required property that is absent
	ErrMissing = errors.New("missing required property")

	// ErrInvalidRequest is returned when a client call receives no request
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotRegistered is returned by registry lookups of unknown classes
	ErrNotRegistered = errors.New("class not registered")

	// ErrAlreadyRegistered is returned when a class or client is defined twice
	ErrAlreadyRegistered = errors.New("already registered")
)

// TypeError reports an external value of the wrong shape
type TypeError struct {
	Expected string
	Got      Value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, describe(e.Got))
}

// ParseError reports a string that does not hold a valid number
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as integer: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LengthError reports a fixed-width buffer of the wrong size
type LengthError struct {
	Expected int
	Got      int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("wrong length: expected %d bytes, got %d", e.Expected, e.Got)
}

// FieldError attributes a decode failure to a property
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ElementError attributes a decode failure to a vector element
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// UnknownConstructorError reports a constructor name or tag that is not part
// of a dispatch category
type UnknownConstructorError struct {
	Category string
	Name     string
	Tag      int32
}

func (e *UnknownConstructorError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown constructor %q for %s", e.Name, e.Category)
	}
	return fmt.Sprintf("unknown constructor 0x%08x for %s", uint32(e.Tag), e.Category)
}

// UnknownMethodError reports a client call to a method that does not exist
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown method %q", e.Method)
}
