package schema

import (
	"fmt"
	"strings"
)

// Kind enumerates the field type categories a TypeRef can describe
type Kind int

const (
	KindInt32 Kind = iota
	KindInt53
	KindInt64
	KindDouble
	KindString
	KindSecureString
	KindBytes
	KindSecureBytes
	KindInt128
	KindInt256
	KindBool
	KindTrue
	KindVector
	KindCustom
	KindObject
	KindFunction
)

// kindNames maps scalar kinds to their spelling in type expressions
var kindNames = map[Kind]string{
	KindInt32:        "int32",
	KindInt53:        "int53",
	KindInt64:        "int64",
	KindDouble:       "double",
	KindString:       "string",
	KindSecureString: "secureString",
	KindBytes:        "bytes",
	KindSecureBytes:  "secureBytes",
	KindInt128:       "int128",
	KindInt256:       "int256",
	KindBool:         "Bool",
	KindTrue:         "true",
	KindObject:       "Object",
	KindFunction:     "Function",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindCustom:
		return "custom"
	}
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TypeRef describes the type of a field or the return type of a function
type TypeRef struct {
	Kind Kind
	// Elem is the element type of a vector
	Elem *TypeRef
	// Name is the referenced type name for KindCustom
	Name string
	// Custom is the resolved type for KindCustom. Set by Link.
	Custom *CustomType
}

// Scalar returns a TypeRef of a non-parameterized kind
func Scalar(k Kind) TypeRef {
	return TypeRef{Kind: k}
}

// Vector returns a vector TypeRef with the given element type
func Vector(elem TypeRef) TypeRef {
	return TypeRef{Kind: KindVector, Elem: &elem}
}

// Custom returns an unresolved reference to a custom type
func Custom(name string) TypeRef {
	return TypeRef{Kind: KindCustom, Name: name}
}

// ParseTypeRef parses a type expression such as "int64", "vector<bytes>" or "AccountAddress"
func ParseTypeRef(expr string) (TypeRef, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return TypeRef{}, fmt.Errorf("%w: empty type expression", ErrInvalidType)
	}

	// Handle vector types
	lower := strings.ToLower(expr)
	if strings.HasPrefix(lower, "vector<") {
		if !strings.HasSuffix(expr, ">") {
			return TypeRef{}, fmt.Errorf("%w: unterminated vector in %q", ErrInvalidType, expr)
		}
		inner := expr[len("vector<") : len(expr)-1]
		if strings.TrimSpace(inner) == "" {
			return TypeRef{}, fmt.Errorf("%w: vector without element type", ErrInvalidType)
		}
		elem, err := ParseTypeRef(inner)
		if err != nil {
			return TypeRef{}, err
		}
		return Vector(elem), nil
	}

	if k, ok := kindsByName[expr]; ok {
		return Scalar(k), nil
	}

	for _, r := range expr {
		if !isIdentRune(r) {
			return TypeRef{}, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidType, r, expr)
		}
	}
	return Custom(expr), nil
}

func isIdentRune(r rune) bool {
	return r == '.' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// String renders the type expression
func (t TypeRef) String() string {
	switch t.Kind {
	case KindVector:
		if t.Elem == nil {
			return "vector<?>"
		}
		return "vector<" + t.Elem.String() + ">"
	case KindCustom:
		return t.Name
	default:
		return t.Kind.String()
	}
}

// MarshalText implements encoding.TextMarshaler
func (t TypeRef) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TypeRef) UnmarshalText(text []byte) error {
	parsed, err := ParseTypeRef(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Innermost returns the non-vector type at the bottom of any vector nesting
func (t TypeRef) Innermost() TypeRef {
	for t.Kind == KindVector && t.Elem != nil {
		t = *t.Elem
	}
	return t
}
