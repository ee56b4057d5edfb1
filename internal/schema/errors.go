package schema

import "errors"

var (
	// Decoding errors
	ErrInvalidType = errors.New("invalid type expression")
	ErrInvalidTag  = errors.New("invalid tag")
	ErrEmptySchema = errors.New("schema file is empty")

	// Validation errors
	ErrDuplicateType     = errors.New("duplicate type name")
	ErrDuplicateTag      = errors.New("duplicate tag")
	ErrDuplicateField    = errors.New("duplicate field name")
	ErrDuplicateName     = errors.New("duplicate class name")
	ErrNoConstructors    = errors.New("type has no constructors")
	ErrUnresolvedType    = errors.New("unresolved type reference")
	ErrMissingName       = errors.New("missing name")
)
