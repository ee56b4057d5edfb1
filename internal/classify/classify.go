// Package classify maps schema field types to conversion rules.
//
// A Rule tells the emitters how a field crosses between the internal and the
// external representation: which runtime function boxes it, whether it may be
// absent, and which type it has on either side. Vectors carry the rule of
// their element, so one traversal handles any nesting depth.
package classify

import (
	"fmt"

	"github.com/okra-platform/tlbind/internal/naming"
	"github.com/okra-platform/tlbind/internal/schema"
)

// Transport is the external boxing category of a field
type Transport int

const (
	// Plain values pass as numbers, strings or booleans
	Plain Transport = iota
	// Int64String values pass as decimal strings
	Int64String
	// Buffer values pass as byte buffers, optionally of fixed width
	Buffer
	// Container values are vectors of their element rule
	Container
	// NullableRef values are objects that may be absent
	NullableRef
)

func (t Transport) String() string {
	switch t {
	case Plain:
		return "plain"
	case Int64String:
		return "int64-string"
	case Buffer:
		return "buffer"
	case Container:
		return "container"
	case NullableRef:
		return "nullable-ref"
	default:
		return fmt.Sprintf("Transport(%d)", int(t))
	}
}

// Rule is the conversion rule of one field type
type Rule struct {
	Kind      schema.Kind
	Transport Transport
	// Width is the byte length of fixed-width buffers, 0 otherwise
	Width int
	// Elem is the element rule of a container
	Elem *Rule
	// Type is the referenced custom type of a KindCustom rule
	Type *schema.CustomType
}

// Classify returns the rule for ref. Custom references must be linked.
func Classify(ref schema.TypeRef) Rule {
	r := Rule{Kind: ref.Kind}
	switch ref.Kind {
	case schema.KindInt32, schema.KindDouble, schema.KindString, schema.KindSecureString,
		schema.KindBool, schema.KindTrue:
		r.Transport = Plain
	case schema.KindInt53, schema.KindInt64:
		r.Transport = Int64String
	case schema.KindBytes, schema.KindSecureBytes:
		r.Transport = Buffer
	case schema.KindInt128:
		r.Transport = Buffer
		r.Width = 16
	case schema.KindInt256:
		r.Transport = Buffer
		r.Width = 32
	case schema.KindVector:
		r.Transport = Container
		if ref.Elem != nil {
			elem := Classify(*ref.Elem)
			r.Elem = &elem
		}
	case schema.KindCustom:
		r.Transport = NullableRef
		r.Type = ref.Custom
	case schema.KindObject, schema.KindFunction:
		r.Transport = NullableRef
	}
	return r
}

// Nullable reports whether the field may be absent
func (r Rule) Nullable() bool {
	return r.Transport == NullableRef
}

// Product reports whether the rule references a single-constructor type
func (r Rule) Product() bool {
	return r.Kind == schema.KindCustom && r.Type != nil && r.Type.IsProduct()
}

// Runtime names the scalar rule pair of the runtime package, e.g. "Int64" for
// EncodeInt64/DecodeInt64. It is empty for containers and references.
func (r Rule) Runtime() string {
	switch r.Kind {
	case schema.KindInt32:
		return "Int32"
	case schema.KindInt53, schema.KindInt64:
		return "Int64"
	case schema.KindDouble:
		return "Double"
	case schema.KindString, schema.KindSecureString:
		return "String"
	case schema.KindBool, schema.KindTrue:
		return "Bool"
	case schema.KindBytes, schema.KindSecureBytes:
		return "Bytes"
	case schema.KindInt128:
		return "Int128"
	case schema.KindInt256:
		return "Int256"
	}
	return ""
}

// Category names the converter pair of a reference: the constructor class for
// product types, the type name for sum types, and the umbrella categories
// "Object" and "Function".
func (r Rule) Category() string {
	switch r.Kind {
	case schema.KindObject:
		return "Object"
	case schema.KindFunction:
		return "Function"
	case schema.KindCustom:
		if r.Type == nil {
			return ""
		}
		if r.Type.IsProduct() {
			return naming.BasicClassName(r.Type.Constructors[0].Name)
		}
		return naming.BasicClassName(r.Type.Name)
	}
	return ""
}

func (r Rule) String() string {
	switch r.Transport {
	case Container:
		if r.Elem == nil {
			return "vector<?>"
		}
		return "vector<" + r.Elem.String() + ">"
	case NullableRef:
		return r.Category() + "?"
	case Buffer:
		if r.Width > 0 {
			return fmt.Sprintf("buffer[%d]", r.Width)
		}
		return "buffer"
	default:
		return r.Kind.String()
	}
}
