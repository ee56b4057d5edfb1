package tlrt

// VectorEncoder lifts an element encoder to a vector encoder. Nesting encoders
// handles vectors of any depth: VectorEncoder(VectorEncoder(EncodeBytes)).
func VectorEncoder[T any](elem func(T) Value) func([]T) Value {
	return func(xs []T) Value {
		out := make([]Value, len(xs))
		for i, x := range xs {
			out[i] = elem(x)
		}
		return out
	}
}

// VectorOf lifts an element decoder to a vector decoder. The first failing
// element aborts the whole vector. Empty arrays decode to nil, so a round trip
// through VectorEncoder preserves vectors only up to nil versus empty.
func VectorOf[T any](elem func(Value) (T, error)) func(Value) ([]T, error) {
	return func(v Value) ([]T, error) {
		items, ok := v.([]Value)
		if !ok {
			return nil, &TypeError{Expected: "array", Got: v}
		}
		if len(items) == 0 {
			return nil, nil
		}
		out := make([]T, len(items))
		for i, item := range items {
			x, err := elem(item)
			if err != nil {
				return nil, &ElementError{Index: i, Err: err}
			}
			out[i] = x
		}
		return out, nil
	}
}
