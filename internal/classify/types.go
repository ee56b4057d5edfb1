package classify

import (
	"fmt"

	"github.com/okra-platform/tlbind/internal/naming"
	"github.com/okra-platform/tlbind/internal/schema"
)

// Umbrella type names in the external declarations
const (
	AnyDataObject = "AnyDataObject"
	AnyFunction   = "AnyFunction"
)

// TSType returns the external declaration type of r. Nullability is not
// included; declaration emitters add "| null" for nullable fields.
func TSType(r Rule) string {
	switch r.Transport {
	case Container:
		if r.Elem == nil {
			return "unknown[]"
		}
		elem := TSType(*r.Elem)
		return elem + "[]"
	case Buffer:
		return "ArrayBuffer"
	case Int64String:
		return "string"
	case NullableRef:
		switch r.Kind {
		case schema.KindObject:
			return AnyDataObject
		case schema.KindFunction:
			return AnyFunction
		}
		return r.Category()
	}

	switch r.Kind {
	case schema.KindInt32, schema.KindDouble:
		return "number"
	case schema.KindBool, schema.KindTrue:
		return "boolean"
	default:
		return "string"
	}
}

// GoType returns the internal Go type of r. pkg is the package name the
// internal api is referred to by, rt the runtime package name.
//
//	int64                     -> int64
//	vector<accountAddress>    -> []*api.AccountAddress
//	KeyStoreType (sum)        -> api.KeyStoreType
func GoType(r Rule, pkg, rt string) string {
	switch r.Transport {
	case Container:
		if r.Elem == nil {
			return "[]any"
		}
		return "[]" + GoType(*r.Elem, pkg, rt)
	case NullableRef:
		switch r.Kind {
		case schema.KindObject:
			return rt + ".Object"
		case schema.KindFunction:
			return rt + ".Function"
		}
		if r.Type == nil {
			return "any"
		}
		if r.Type.IsProduct() {
			return "*" + pkg + "." + naming.GoName(r.Type.Constructors[0].Name)
		}
		return pkg + "." + naming.GoName(r.Type.Name)
	case Buffer:
		if r.Width > 0 {
			return fmt.Sprintf("[%d]byte", r.Width)
		}
		return "[]byte"
	case Int64String:
		return "int64"
	}

	switch r.Kind {
	case schema.KindInt32:
		return "int32"
	case schema.KindDouble:
		return "float64"
	case schema.KindBool, schema.KindTrue:
		return "bool"
	default:
		return "string"
	}
}
