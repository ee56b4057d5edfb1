package tlrt

// DecodeField decodes the required property key into dst. An absent property
// is an error; an explicit null leaves dst at its zero value. dst is only
// written when decoding succeeds.
func DecodeField[T any](props Props, key string, dst *T, decode func(Value) (T, error)) error {
	v, ok := props.Get(key)
	if !ok {
		return &FieldError{Field: key, Err: ErrMissing}
	}
	return decodeInto(key, v, dst, decode)
}

// DecodeOptionalField decodes a nullable reference. Both an absent property and
// an explicit null mean "not set".
func DecodeOptionalField[T any](props Props, key string, dst *T, decode func(Value) (T, error)) error {
	v, ok := props.Get(key)
	if !ok {
		return nil
	}
	return decodeInto(key, v, dst, decode)
}

func decodeInto[T any](key string, v Value, dst *T, decode func(Value) (T, error)) error {
	if v == nil {
		return nil
	}
	x, err := decode(v)
	if err != nil {
		return &FieldError{Field: key, Err: err}
	}
	*dst = x
	return nil
}
