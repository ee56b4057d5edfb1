// Package tlrt is the runtime support library for bindings generated by tlbind.
//
// Generated converters move values between the internal representation (Go
// structs implementing Object) and the external representation exchanged with
// the host embedding environment:
//
//   - numbers are float64 (any Go integer or float is accepted on decode)
//   - 64-bit integers are decimal strings
//   - binary data is []byte
//   - vectors are []Value
//   - objects are Props, or a Wrapper created by a registered class
//
// The constructor name of an object travels under TypeKey.
package tlrt

import "fmt"

// TypeKey is the property holding the constructor name of an external object
const TypeKey = "@type"

// Value is any value of the external representation
type Value = any

// Props is the property bag of an external object
type Props map[string]Value

// Get returns the property stored under key and whether it is present
func (p Props) Get(key string) (Value, bool) {
	v, ok := p[key]
	return v, ok
}

// Wrapper is implemented by generated wrapper types
type Wrapper interface {
	ClassName() string
	Props() Props
}

// Object is implemented by every internal schema value
type Object interface {
	ConstructorID() int32
}

// Function is implemented by internal values of remote-call requests
type Function interface {
	Object
}

// Unwrap returns the constructor name and property bag of an external object.
// The name is empty for property bags without a TypeKey entry.
func Unwrap(v Value) (string, Props, error) {
	switch obj := v.(type) {
	case Wrapper:
		return obj.ClassName(), obj.Props(), nil
	case Props:
		name, _ := obj[TypeKey].(string)
		return name, obj, nil
	case map[string]Value:
		name, _ := obj[TypeKey].(string)
		return name, Props(obj), nil
	default:
		return "", nil, &TypeError{Expected: "object", Got: v}
	}
}

// ConstructorName returns the constructor name carried by an external object
func ConstructorName(v Value) (string, error) {
	name, _, err := Unwrap(v)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", &TypeError{Expected: "object with constructor", Got: v}
	}
	return name, nil
}

// describe names the external kind of v for error messages
func describe(v Value) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []byte:
		return "buffer"
	case []Value:
		return "array"
	case Props, map[string]Value, Wrapper:
		return "object"
	}
	if _, ok := toFloat(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
