package schema

// Schema is the root of a compiled type schema
type Schema struct {
	Types     []*CustomType `json:"types" yaml:"types"`
	Functions []*Function   `json:"functions" yaml:"functions"`
	Meta      Metadata      `json:"meta" yaml:"meta"`
}

// Metadata describes the schema as a whole
type Metadata struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// CustomType is a named sum type. A type with a single constructor is a product type.
type CustomType struct {
	Name         string         `json:"name" yaml:"name"`
	Doc          string         `json:"doc,omitempty" yaml:"doc,omitempty"`
	Constructors []*Constructor `json:"constructors" yaml:"constructors"`
}

// IsSum reports whether values of the type need a tag-based downcast
func (t *CustomType) IsSum() bool {
	return len(t.Constructors) > 1
}

// IsProduct reports whether the type has exactly one constructor
func (t *CustomType) IsProduct() bool {
	return len(t.Constructors) == 1
}

// Constructor is one variant of a CustomType
type Constructor struct {
	Name   string  `json:"name" yaml:"name"`
	Doc    string  `json:"doc,omitempty" yaml:"doc,omitempty"`
	Tag    Tag     `json:"tag" yaml:"tag"`
	Fields []Field `json:"fields" yaml:"fields"`

	// Type is the owning custom type; nil for functions. Set by Link.
	Type *CustomType `json:"-" yaml:"-"`
}

// Function is a remote call: a constructor with a declared return type
type Function struct {
	Constructor `yaml:",inline"`
	Returns     TypeRef `json:"returns" yaml:"returns"`
}

// Field is a named, typed member of a constructor. Field order is significant.
type Field struct {
	Name string  `json:"name" yaml:"name"`
	Type TypeRef `json:"type" yaml:"type"`
	Doc  string  `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Constructors returns every custom-type constructor in schema order
func (s *Schema) Constructors() []*Constructor {
	var all []*Constructor
	for _, typ := range s.Types {
		all = append(all, typ.Constructors...)
	}
	return all
}

// FunctionConstructors returns the constructor part of every function in schema order
func (s *Schema) FunctionConstructors() []*Constructor {
	all := make([]*Constructor, 0, len(s.Functions))
	for _, fn := range s.Functions {
		all = append(all, &fn.Constructor)
	}
	return all
}

// SumTypes returns the custom types that have two or more constructors
func (s *Schema) SumTypes() []*CustomType {
	var sums []*CustomType
	for _, typ := range s.Types {
		if typ.IsSum() {
			sums = append(sums, typ)
		}
	}
	return sums
}
