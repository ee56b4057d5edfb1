package tlrt

import "fmt"

// Codec converts one constructor of a dispatch category in both directions
type Codec[T any] struct {
	Encode func(T) Value
	Decode func(Value) (T, error)
}

// Bind adapts the concrete encoder and decoder of a constructor (U) to a
// dispatch category (T). U must implement T.
func Bind[T any, U any](encode func(U) Value, decode func(Value) (U, error)) Codec[T] {
	return Codec[T]{
		Encode: func(v T) Value {
			return encode(any(v).(U))
		},
		Decode: func(v Value) (T, error) {
			u, err := decode(v)
			if err != nil {
				var zero T
				return zero, err
			}
			return any(u).(T), nil
		},
	}
}

// Placeholder is an empty internal value carrying only a tag. Decoding builds
// one from the resolved constructor name and downcasts it through the same
// table encoding uses.
type Placeholder struct {
	Tag int32
}

// ConstructorID implements Object
func (p Placeholder) ConstructorID() int32 {
	return p.Tag
}

// Dispatch is the closed, tag-keyed table of a sum type or umbrella category
type Dispatch[T any] struct {
	category string
	names    map[string]int32
	codecs   map[int32]Codec[T]
}

// NewDispatch builds the table of a category. names maps constructor names to
// tags; codecs must hold exactly one entry per tag in names.
func NewDispatch[T any](category string, names map[string]int32, codecs map[int32]Codec[T]) *Dispatch[T] {
	if len(names) != len(codecs) {
		panic(fmt.Sprintf("tlrt: %s has %d names but %d codecs", category, len(names), len(codecs)))
	}
	for name, tag := range names {
		if _, ok := codecs[tag]; !ok {
			panic(fmt.Sprintf("tlrt: %s has no codec for %s", category, name))
		}
	}
	return &Dispatch[T]{
		category: category,
		names:    names,
		codecs:   codecs,
	}
}

// Category returns the name of the sum type or umbrella category
func (d *Dispatch[T]) Category() string {
	return d.category
}

// Len returns the number of constructors in the category
func (d *Dispatch[T]) Len() int {
	return len(d.codecs)
}

// Tag resolves a constructor name to its tag
func (d *Dispatch[T]) Tag(name string) (int32, error) {
	tag, ok := d.names[name]
	if !ok {
		return 0, &UnknownConstructorError{Category: d.category, Name: name}
	}
	return tag, nil
}

// Downcast returns the codec for the tag of obj
func (d *Dispatch[T]) Downcast(obj Object) (Codec[T], error) {
	codec, ok := d.codecs[obj.ConstructorID()]
	if !ok {
		return Codec[T]{}, &UnknownConstructorError{Category: d.category, Tag: obj.ConstructorID()}
	}
	return codec, nil
}

// Encode forwards v to the encoder of its constructor. A nil value encodes to nil.
// Values outside the category violate the generated table and panic.
func (d *Dispatch[T]) Encode(v T) Value {
	out, err := d.EncodeChecked(v)
	if err != nil {
		panic("tlrt: " + err.Error())
	}
	return out
}

// EncodeChecked is Encode for values that did not come from generated code,
// such as engine results. A value outside the category returns an
// *UnknownConstructorError.
func (d *Dispatch[T]) EncodeChecked(v T) (Value, error) {
	obj, ok := any(v).(Object)
	if !ok || obj == nil {
		return nil, nil
	}
	codec, err := d.Downcast(obj)
	if err != nil {
		return nil, err
	}
	return codec.Encode(v), nil
}

// Decode reads the constructor name of v, resolves it to a tag and forwards to
// the decoder of that constructor. Null decodes to the zero value.
func (d *Dispatch[T]) Decode(v Value) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}

	name, err := ConstructorName(v)
	if err != nil {
		return zero, err
	}
	tag, err := d.Tag(name)
	if err != nil {
		return zero, err
	}
	codec, err := d.Downcast(Placeholder{Tag: tag})
	if err != nil {
		return zero, err
	}
	return codec.Decode(v)
}
