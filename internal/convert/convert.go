// Package convert is a schema-driven reference converter. It interprets the
// classifier rules at run time over a generic internal representation and
// produces the same external values the generated converters produce. The
// build uses it to verify a schema before emitting code for it.
package convert

import (
	"github.com/okra-platform/tlbind/internal/classify"
	"github.com/okra-platform/tlbind/internal/naming"
	"github.com/okra-platform/tlbind/internal/schema"
	"github.com/okra-platform/tlbind/pkg/tlrt"
)

// Instance is the generic internal value of a constructor or function.
// Fields hold, in schema order:
//
//	int32, int64, float64, string, bool  scalars
//	[]byte, [16]byte, [32]byte           buffers
//	[]any                                vectors
//	*Instance                            references (nil when not set)
type Instance struct {
	Constructor *schema.Constructor
	Fields      []any
}

// ConstructorID implements tlrt.Object
func (i *Instance) ConstructorID() int32 {
	return int32(i.Constructor.Tag)
}

// Converter converts Instances of one linked schema
type Converter struct {
	schema    *schema.Schema
	objects   map[string]*schema.Constructor
	functions map[string]*schema.Constructor
}

// New creates a converter for a linked schema
func New(s *schema.Schema) *Converter {
	c := &Converter{
		schema:    s,
		objects:   make(map[string]*schema.Constructor),
		functions: make(map[string]*schema.Constructor),
	}
	for _, ctor := range s.Constructors() {
		c.objects[naming.BasicClassName(ctor.Name)] = ctor
	}
	for _, fn := range s.FunctionConstructors() {
		c.functions[naming.BasicClassName(fn.Name)] = fn
	}
	return c
}

// Encode converts an instance to its external form. A nil instance encodes to nil.
func (c *Converter) Encode(inst *Instance) tlrt.Value {
	if inst == nil {
		return nil
	}
	to := tlrt.Props{tlrt.TypeKey: naming.BasicClassName(inst.Constructor.Name)}
	for i, f := range inst.Constructor.Fields {
		rule := classify.Classify(f.Type)
		v := inst.Fields[i]
		if rule.Nullable() && isUnset(v) {
			continue
		}
		to[naming.FieldName(f.Name)] = c.EncodeValue(rule, v)
	}
	return to
}

// EncodeValue converts one internal value following rule
func (c *Converter) EncodeValue(rule classify.Rule, v any) tlrt.Value {
	switch rule.Transport {
	case classify.Container:
		elems, _ := v.([]any)
		return tlrt.VectorEncoder(func(e any) tlrt.Value {
			return c.EncodeValue(*rule.Elem, e)
		})(elems)
	case classify.NullableRef:
		inst, _ := v.(*Instance)
		return c.Encode(inst)
	}

	switch rule.Runtime() {
	case "Int32":
		return tlrt.EncodeInt32(v.(int32))
	case "Int64":
		return tlrt.EncodeInt64(v.(int64))
	case "Double":
		return tlrt.EncodeDouble(v.(float64))
	case "String":
		return tlrt.EncodeString(v.(string))
	case "Bool":
		return tlrt.EncodeBool(v.(bool))
	case "Bytes":
		b, _ := v.([]byte)
		return tlrt.EncodeBytes(b)
	case "Int128":
		return tlrt.EncodeInt128(v.([16]byte))
	case "Int256":
		return tlrt.EncodeInt256(v.([32]byte))
	}
	return nil
}

// Decode converts an external object of the given constructor. Null decodes
// to nil. Like generated product decoders, the constructor name is not checked.
func (c *Converter) Decode(ctor *schema.Constructor, v tlrt.Value) (*Instance, error) {
	if v == nil {
		return nil, nil
	}
	_, props, err := tlrt.Unwrap(v)
	if err != nil {
		return nil, err
	}

	to := &Instance{Constructor: ctor, Fields: make([]any, len(ctor.Fields))}
	for i, f := range ctor.Fields {
		rule := classify.Classify(f.Type)
		to.Fields[i] = Zero(rule)
		decode := func(v tlrt.Value) (any, error) {
			return c.DecodeValue(rule, v)
		}
		key := naming.FieldName(f.Name)
		if rule.Nullable() {
			err = tlrt.DecodeOptionalField(props, key, &to.Fields[i], decode)
		} else {
			err = tlrt.DecodeField(props, key, &to.Fields[i], decode)
		}
		if err != nil {
			return nil, err
		}
	}
	return to, nil
}

// DecodeValue converts one external value following rule
func (c *Converter) DecodeValue(rule classify.Rule, v tlrt.Value) (any, error) {
	switch rule.Transport {
	case classify.Container:
		elems, err := tlrt.VectorOf(func(e tlrt.Value) (any, error) {
			return c.DecodeValue(*rule.Elem, e)
		})(v)
		if err != nil {
			return nil, err
		}
		return elems, nil
	case classify.NullableRef:
		inst, err := c.decodeRef(rule, v)
		if err != nil {
			return nil, err
		}
		return inst, nil
	}

	switch rule.Runtime() {
	case "Int32":
		return unbox(tlrt.DecodeInt32(v))
	case "Int64":
		return unbox(tlrt.DecodeInt64(v))
	case "Double":
		return unbox(tlrt.DecodeDouble(v))
	case "String":
		return unbox(tlrt.DecodeString(v))
	case "Bool":
		return unbox(tlrt.DecodeBool(v))
	case "Bytes":
		return unbox(tlrt.DecodeBytes(v))
	case "Int128":
		return unbox(tlrt.DecodeInt128(v))
	case "Int256":
		return unbox(tlrt.DecodeInt256(v))
	}
	return nil, &tlrt.TypeError{Expected: rule.String(), Got: v}
}

// DecodeObject decodes any custom-type constructor by its name
func (c *Converter) DecodeObject(v tlrt.Value) (*Instance, error) {
	return c.decodeRef(classify.Classify(schema.Scalar(schema.KindObject)), v)
}

// DecodeFunction decodes any function request by its name
func (c *Converter) DecodeFunction(v tlrt.Value) (*Instance, error) {
	return c.decodeRef(classify.Classify(schema.Scalar(schema.KindFunction)), v)
}

func (c *Converter) decodeRef(rule classify.Rule, v tlrt.Value) (*Instance, error) {
	if v == nil {
		return nil, nil
	}
	if rule.Product() {
		return c.Decode(rule.Type.Constructors[0], v)
	}

	name, err := tlrt.ConstructorName(v)
	if err != nil {
		return nil, err
	}
	ctor, ok := c.lookup(rule, name)
	if !ok {
		return nil, &tlrt.UnknownConstructorError{Category: rule.Category(), Name: name}
	}
	return c.Decode(ctor, v)
}

// lookup resolves a constructor name inside the category of rule
func (c *Converter) lookup(rule classify.Rule, name string) (*schema.Constructor, bool) {
	switch rule.Kind {
	case schema.KindObject:
		ctor, ok := c.objects[name]
		return ctor, ok
	case schema.KindFunction:
		ctor, ok := c.functions[name]
		return ctor, ok
	}
	if rule.Type == nil {
		return nil, false
	}
	for _, ctor := range rule.Type.Constructors {
		if naming.BasicClassName(ctor.Name) == name {
			return ctor, true
		}
	}
	return nil, false
}

// Zero returns the value a field holds when its property is null
func Zero(rule classify.Rule) any {
	switch rule.Transport {
	case classify.Container:
		return []any(nil)
	case classify.NullableRef:
		return (*Instance)(nil)
	}
	switch rule.Runtime() {
	case "Int32":
		return int32(0)
	case "Int64":
		return int64(0)
	case "Double":
		return float64(0)
	case "Bool":
		return false
	case "Bytes":
		return []byte(nil)
	case "Int128":
		return [16]byte{}
	case "Int256":
		return [32]byte{}
	}
	return ""
}

func isUnset(v any) bool {
	inst, _ := v.(*Instance)
	return inst == nil
}

func unbox[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
